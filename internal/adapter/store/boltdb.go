package store

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"go.etcd.io/bbolt"
	"jdoc/internal/domain"
)

var (
	bucketClasses   = []byte("classes")
	bucketNames     = []byte("names")
	bucketLibraries = []byte("libraries")
)

// BoltStore is the bbolt-backed documentation index. Classes are keyed by
// lowercased fully qualified name; a second bucket maps lowercased simple
// names to the qualified names that carry them, which is what makes
// ambiguous lookups cheap.
type BoltStore struct {
	db *bbolt.DB
}

type libraryMeta struct {
	Library domain.LibraryRecord `json:"library"`
	Classes []string             `json:"classes"`
}

// LibrarySummary describes one ingested library.
type LibrarySummary struct {
	Library    domain.LibraryRecord
	ClassCount int
}

// NewBoltStore opens (or creates) the index database.
func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketClasses, bucketNames, bucketLibraries} {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", b, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

// Close closes the database.
func (s *BoltStore) Close() error {
	return s.db.Close()
}

// ReplaceLibrary writes a library's classes in one transaction, removing
// whatever an earlier ingest of the same library left behind.
func (s *BoltStore) ReplaceLibrary(lib domain.LibraryRecord, classes []*domain.ClassRecord) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		classesB := tx.Bucket(bucketClasses)
		namesB := tx.Bucket(bucketNames)
		libsB := tx.Bucket(bucketLibraries)

		libKey := []byte(strings.ToLower(lib.Name))

		// Drop the previous ingest of this library.
		if prev := libsB.Get(libKey); prev != nil {
			var meta libraryMeta
			if err := json.Unmarshal(prev, &meta); err == nil {
				for _, fqn := range meta.Classes {
					if err := removeClass(classesB, namesB, fqn); err != nil {
						return err
					}
				}
			}
		}

		meta := libraryMeta{Library: lib, Classes: make([]string, 0, len(classes))}
		for _, rec := range classes {
			if err := putClass(classesB, namesB, rec); err != nil {
				return err
			}
			meta.Classes = append(meta.Classes, rec.Name.FullyQualified)
		}

		data, err := json.Marshal(meta)
		if err != nil {
			return err
		}
		return libsB.Put(libKey, data)
	})
}

func putClass(classesB, namesB *bbolt.Bucket, rec *domain.ClassRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	fqn := rec.Name.FullyQualified
	if err := classesB.Put([]byte(strings.ToLower(fqn)), data); err != nil {
		return err
	}
	return addName(namesB, rec.Name.Simple, fqn)
}

func removeClass(classesB, namesB *bbolt.Bucket, fqn string) error {
	key := []byte(strings.ToLower(fqn))
	data := classesB.Get(key)
	if data == nil {
		return nil
	}
	var rec domain.ClassRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	if err := classesB.Delete(key); err != nil {
		return err
	}
	return removeName(namesB, rec.Name.Simple, fqn)
}

func addName(namesB *bbolt.Bucket, simple, fqn string) error {
	key := []byte(strings.ToLower(simple))
	var fqns []string
	if data := namesB.Get(key); data != nil {
		if err := json.Unmarshal(data, &fqns); err != nil {
			return err
		}
	}
	for _, existing := range fqns {
		if existing == fqn {
			return nil
		}
	}
	fqns = append(fqns, fqn)
	data, err := json.Marshal(fqns)
	if err != nil {
		return err
	}
	return namesB.Put(key, data)
}

func removeName(namesB *bbolt.Bucket, simple, fqn string) error {
	key := []byte(strings.ToLower(simple))
	data := namesB.Get(key)
	if data == nil {
		return nil
	}
	var fqns []string
	if err := json.Unmarshal(data, &fqns); err != nil {
		return err
	}
	kept := fqns[:0]
	for _, existing := range fqns {
		if existing != fqn {
			kept = append(kept, existing)
		}
	}
	if len(kept) == 0 {
		return namesB.Delete(key)
	}
	out, err := json.Marshal(kept)
	if err != nil {
		return err
	}
	return namesB.Put(key, out)
}

// Lookup resolves a class name. Fully qualified names resolve directly;
// simple names resolve through the name index and report ambiguity when more
// than one class carries the name.
func (s *BoltStore) Lookup(name string) (domain.LookupResult, error) {
	var result domain.LookupResult

	err := s.db.View(func(tx *bbolt.Tx) error {
		classesB := tx.Bucket(bucketClasses)
		key := strings.ToLower(name)

		if data := classesB.Get([]byte(key)); data != nil {
			rec := &domain.ClassRecord{}
			if err := json.Unmarshal(data, rec); err != nil {
				return err
			}
			result.Class = rec
			return nil
		}

		data := tx.Bucket(bucketNames).Get([]byte(key))
		if data == nil {
			return nil
		}
		var fqns []string
		if err := json.Unmarshal(data, &fqns); err != nil {
			return err
		}
		switch len(fqns) {
		case 0:
		case 1:
			classData := classesB.Get([]byte(strings.ToLower(fqns[0])))
			if classData == nil {
				return nil
			}
			rec := &domain.ClassRecord{}
			if err := json.Unmarshal(classData, rec); err != nil {
				return err
			}
			result.Class = rec
		default:
			result.Candidates = fqns
		}
		return nil
	})
	if err != nil {
		return domain.LookupResult{}, fmt.Errorf("failed to look up %q: %w", name, err)
	}

	return result, nil
}

// ClassNames returns every fully qualified class name in the index, sorted.
func (s *BoltStore) ClassNames() ([]string, error) {
	var names []string

	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketClasses).ForEach(func(_, v []byte) error {
			var rec domain.ClassRecord
			if err := json.Unmarshal(v, &rec); err != nil {
				return err
			}
			names = append(names, rec.Name.FullyQualified)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate classes: %w", err)
	}

	sort.Strings(names)
	return names, nil
}

// Libraries returns a summary of every ingested library, sorted by name.
func (s *BoltStore) Libraries() ([]LibrarySummary, error) {
	var libs []LibrarySummary

	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketLibraries).ForEach(func(_, v []byte) error {
			var meta libraryMeta
			if err := json.Unmarshal(v, &meta); err != nil {
				return err
			}
			libs = append(libs, LibrarySummary{
				Library:    meta.Library,
				ClassCount: len(meta.Classes),
			})
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list libraries: %w", err)
	}

	sort.Slice(libs, func(i, j int) bool {
		return libs[i].Library.Name < libs[j].Library.Name
	})
	return libs, nil
}
