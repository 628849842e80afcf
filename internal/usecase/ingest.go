package usecase

import (
	"fmt"

	"jdoc/internal/adapter/archive"
	"jdoc/internal/adapter/fs"
	"jdoc/internal/adapter/store"
	"jdoc/internal/domain"
)

// IngestUseCase loads javadoc archives into the documentation index.
type IngestUseCase struct {
	store  *store.BoltStore
	walker *fs.Walker
}

// NewIngestUseCase creates an ingest use case.
func NewIngestUseCase(store *store.BoltStore, walker *fs.Walker) *IngestUseCase {
	return &IngestUseCase{
		store:  store,
		walker: walker,
	}
}

// IngestResult summarizes an ingest run.
type IngestResult struct {
	Archives int
	Classes  int
	Errors   []string
}

// ProgressFunc reports ingest progress: the archive being read and how many
// of its classes have been parsed so far.
type ProgressFunc func(archivePath string, done, total int)

// Ingest discovers archives under root and writes each library's classes to
// the index. A broken archive is recorded and skipped; it does not abort the
// run. Re-ingesting a library replaces its previous contents.
func (u *IngestUseCase) Ingest(root string, progress ProgressFunc) (*IngestResult, error) {
	archives, err := u.walker.Walk(root)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s for archives: %w", root, err)
	}

	result := &IngestResult{}
	for _, path := range archives {
		classes, lib, err := u.readArchive(path, progress)
		if err != nil {
			result.Errors = append(result.Errors, err.Error())
			continue
		}

		if err := u.store.ReplaceLibrary(lib, classes); err != nil {
			return nil, fmt.Errorf("failed to write library %q: %w", lib.Name, err)
		}

		result.Archives++
		result.Classes += len(classes)
	}

	return result, nil
}

func (u *IngestUseCase) readArchive(path string, progress ProgressFunc) ([]*domain.ClassRecord, domain.LibraryRecord, error) {
	a, err := archive.Open(path)
	if err != nil {
		return nil, domain.LibraryRecord{}, err
	}
	defer a.Close()

	lib := a.Library()
	if lib.Name == "" {
		// An archive without metadata is still usable; key it by its path.
		lib.Name = path
	}

	names := a.ClassNames()
	classes := make([]*domain.ClassRecord, 0, len(names))
	for i, name := range names {
		rec, err := a.Class(name)
		if err != nil {
			return nil, domain.LibraryRecord{}, err
		}
		if rec == nil {
			continue
		}
		classes = append(classes, rec)
		if progress != nil {
			progress(path, i+1, len(names))
		}
	}

	return classes, lib, nil
}
