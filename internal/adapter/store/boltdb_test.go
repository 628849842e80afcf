package store

import (
	"path/filepath"
	"reflect"
	"testing"

	"jdoc/internal/domain"
)

func newTestStore(t *testing.T) *BoltStore {
	t.Helper()
	s, err := NewBoltStore(filepath.Join(t.TempDir(), "index.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func classRecord(fqn string) *domain.ClassRecord {
	return &domain.ClassRecord{Name: domain.NewClassName(fqn)}
}

func TestLookup_Found(t *testing.T) {
	s := newTestStore(t)
	lib := domain.LibraryRecord{Name: "Java"}
	err := s.ReplaceLibrary(lib, []*domain.ClassRecord{
		classRecord("java.lang.String"),
	})
	if err != nil {
		t.Fatal(err)
	}

	// Fully qualified, case-insensitive.
	res, err := s.Lookup("JAVA.LANG.STRING")
	if err != nil {
		t.Fatal(err)
	}
	if !res.Found() || res.Class.Name.FullyQualified != "java.lang.String" {
		t.Errorf("expected found java.lang.String, got %#v", res)
	}

	// Simple name with a single owner.
	res, err = s.Lookup("string")
	if err != nil {
		t.Fatal(err)
	}
	if !res.Found() {
		t.Errorf("expected found, got %#v", res)
	}
}

func TestLookup_Ambiguous(t *testing.T) {
	s := newTestStore(t)
	err := s.ReplaceLibrary(domain.LibraryRecord{Name: "Java"}, []*domain.ClassRecord{
		classRecord("java.util.List"),
		classRecord("java.awt.List"),
	})
	if err != nil {
		t.Fatal(err)
	}

	res, err := s.Lookup("List")
	if err != nil {
		t.Fatal(err)
	}
	if !res.Ambiguous() {
		t.Fatalf("expected ambiguous result, got %#v", res)
	}
	if len(res.Candidates) != 2 {
		t.Errorf("expected 2 candidates, got %v", res.Candidates)
	}

	// Qualifying the name resolves it.
	res, err = s.Lookup("java.awt.List")
	if err != nil {
		t.Fatal(err)
	}
	if !res.Found() || res.Class.Name.FullyQualified != "java.awt.List" {
		t.Errorf("expected found java.awt.List, got %#v", res)
	}
}

func TestLookup_NotFound(t *testing.T) {
	s := newTestStore(t)

	res, err := s.Lookup("java.lang.Nope")
	if err != nil {
		t.Fatal(err)
	}
	if !res.NotFound() {
		t.Errorf("expected not-found, got %#v", res)
	}
}

func TestReplaceLibrary_DropsPreviousIngest(t *testing.T) {
	s := newTestStore(t)
	lib := domain.LibraryRecord{Name: "Guava"}

	err := s.ReplaceLibrary(lib, []*domain.ClassRecord{
		classRecord("com.google.common.collect.Multimap"),
		classRecord("com.google.common.collect.Table"),
	})
	if err != nil {
		t.Fatal(err)
	}

	// Re-ingest with one class removed.
	err = s.ReplaceLibrary(lib, []*domain.ClassRecord{
		classRecord("com.google.common.collect.Multimap"),
	})
	if err != nil {
		t.Fatal(err)
	}

	res, err := s.Lookup("Table")
	if err != nil {
		t.Fatal(err)
	}
	if !res.NotFound() {
		t.Errorf("expected Table to be gone after re-ingest, got %#v", res)
	}

	names, err := s.ClassNames()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"com.google.common.collect.Multimap"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("expected %v, got %v", want, names)
	}
}

func TestLibraries(t *testing.T) {
	s := newTestStore(t)

	err := s.ReplaceLibrary(domain.LibraryRecord{Name: "Java", Version: "8"}, []*domain.ClassRecord{
		classRecord("java.lang.Object"),
		classRecord("java.lang.String"),
	})
	if err != nil {
		t.Fatal(err)
	}
	err = s.ReplaceLibrary(domain.LibraryRecord{Name: "Guava"}, []*domain.ClassRecord{
		classRecord("com.google.common.collect.Multimap"),
	})
	if err != nil {
		t.Fatal(err)
	}

	libs, err := s.Libraries()
	if err != nil {
		t.Fatal(err)
	}
	if len(libs) != 2 {
		t.Fatalf("expected 2 libraries, got %d", len(libs))
	}
	if libs[0].Library.Name != "Guava" || libs[0].ClassCount != 1 {
		t.Errorf("unexpected first library: %#v", libs[0])
	}
	if libs[1].Library.Name != "Java" || libs[1].ClassCount != 2 {
		t.Errorf("unexpected second library: %#v", libs[1])
	}
}
