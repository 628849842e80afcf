package usecase

import (
	"sort"
	"strings"
	"testing"

	"jdoc/internal/domain"
)

// fakeIndex is an in-memory DocIndex for pipeline tests.
type fakeIndex struct {
	classes map[string]*domain.ClassRecord
	err     error
}

func newFakeIndex(classes ...*domain.ClassRecord) *fakeIndex {
	idx := &fakeIndex{classes: make(map[string]*domain.ClassRecord)}
	for _, c := range classes {
		idx.classes[strings.ToLower(c.Name.FullyQualified)] = c
	}
	return idx
}

func (f *fakeIndex) Lookup(name string) (domain.LookupResult, error) {
	if f.err != nil {
		return domain.LookupResult{}, f.err
	}

	key := strings.ToLower(name)
	if c, ok := f.classes[key]; ok {
		return domain.LookupResult{Class: c}, nil
	}

	var candidates []string
	for _, c := range f.classes {
		if strings.EqualFold(c.Name.Simple, name) {
			candidates = append(candidates, c.Name.FullyQualified)
		}
	}
	switch len(candidates) {
	case 0:
		return domain.LookupResult{}, nil
	case 1:
		return domain.LookupResult{Class: f.classes[strings.ToLower(candidates[0])]}, nil
	default:
		sort.Strings(candidates)
		return domain.LookupResult{Candidates: candidates}, nil
	}
}

func (f *fakeIndex) ClassNames() ([]string, error) {
	var names []string
	for _, c := range f.classes {
		names = append(names, c.Name.FullyQualified)
	}
	sort.Strings(names)
	return names, nil
}

func param(fqType string, array bool) domain.ParameterRecord {
	return domain.ParameterRecord{Type: domain.NewClassName(fqType), Array: array}
}

func method(name, description string, params ...domain.ParameterRecord) domain.MethodRecord {
	return domain.MethodRecord{
		Name:        name,
		Modifiers:   []string{"public"},
		Parameters:  params,
		Description: description,
	}
}

func class(fqn string, methods ...domain.MethodRecord) *domain.ClassRecord {
	return &domain.ClassRecord{
		Name:      domain.NewClassName(fqn),
		Modifiers: []string{"public", "class"},
		Methods:   methods,
	}
}

func TestMatchMethods_NameOnly(t *testing.T) {
	c := class("java.lang.String",
		method("indexOf", "one arg", param("int", false)),
		method("indexOf", "two args", param("int", false), param("int", false)),
		method("trim", "trims"),
	)
	idx := newFakeIndex(c)

	matches, err := matchMethods(idx, c, "indexof", nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(matches.NameMatches) != 2 {
		t.Errorf("expected 2 name matches, got %d", len(matches.NameMatches))
	}
	if matches.Exact != nil {
		t.Errorf("expected no exact match without a parameter constraint, got %v", matches.Exact)
	}
}

func TestMatchMethods_ExactSignature(t *testing.T) {
	c := class("java.lang.String",
		method("indexOf", "one arg", param("int", false)),
		method("indexOf", "two args", param("int", false), param("int", false)),
	)
	idx := newFakeIndex(c)

	matches, err := matchMethods(idx, c, "indexOf", []string{"int", "int"})
	if err != nil {
		t.Fatal(err)
	}
	if matches.Exact == nil {
		t.Fatal("expected an exact match")
	}
	if matches.Exact.Description != "two args" {
		t.Errorf("wrong overload matched: %q", matches.Exact.Description)
	}
}

func TestMatchMethods_ArrayParameter(t *testing.T) {
	c := class("java.util.Arrays",
		method("sort", "object arrays", param("java.lang.Object", true)),
		method("sort", "int arrays", param("int", true)),
	)
	idx := newFakeIndex(c)

	matches, err := matchMethods(idx, c, "sort", []string{"Object[]"})
	if err != nil {
		t.Fatal(err)
	}
	if matches.Exact == nil || matches.Exact.Description != "object arrays" {
		t.Errorf("expected the Object[] overload, got %v", matches.Exact)
	}
}

func TestMatchMethods_ZeroArgConstraint(t *testing.T) {
	c := class("java.lang.String",
		method("split", "one arg", param("java.lang.String", false)),
		method("trim", "zero args"),
	)
	idx := newFakeIndex(c)

	matches, err := matchMethods(idx, c, "trim", []string{})
	if err != nil {
		t.Fatal(err)
	}
	if matches.Exact == nil || matches.Exact.Description != "zero args" {
		t.Errorf("expected the zero-arg overload as exact, got %v", matches.Exact)
	}

	matches, err = matchMethods(idx, c, "split", []string{})
	if err != nil {
		t.Fatal(err)
	}
	if matches.Exact != nil {
		t.Errorf("zero-arg constraint must not match a one-arg method, got %v", matches.Exact)
	}
}

func TestMatchMethods_OverrideDedup(t *testing.T) {
	super := class("java.util.AbstractList",
		method("add", "inherited", param("java.lang.Object", false)),
	)
	sub := class("java.util.ArrayList",
		method("add", "overridden", param("java.lang.Object", false)),
	)
	superName := domain.NewClassName("java.util.AbstractList")
	sub.SuperClass = &superName
	idx := newFakeIndex(super, sub)

	matches, err := matchMethods(idx, sub, "add", nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(matches.NameMatches) != 1 {
		t.Fatalf("expected the override to shadow the inherited signature, got %d matches", len(matches.NameMatches))
	}
	if matches.NameMatches[0].Description != "overridden" {
		t.Errorf("the subtype's declaration should win, got %q", matches.NameMatches[0].Description)
	}
}

func TestMatchMethods_WalksInterfaces(t *testing.T) {
	iface := class("java.util.Collection",
		method("size", "collection size"),
	)
	iface.Modifiers = []string{"public", "interface"}
	c := class("java.util.ArrayList")
	c.Interfaces = []domain.ClassName{domain.NewClassName("java.util.Collection")}
	idx := newFakeIndex(iface, c)

	matches, err := matchMethods(idx, c, "size", nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(matches.NameMatches) != 1 || matches.NameMatches[0].Description != "collection size" {
		t.Errorf("expected the interface method, got %v", matches.NameMatches)
	}
}

func TestMatchMethods_UnindexedSuperclassSkipped(t *testing.T) {
	c := class("com.example.Widget", method("paint", "paints"))
	missing := domain.NewClassName("com.example.Base")
	c.SuperClass = &missing
	idx := newFakeIndex(c)

	matches, err := matchMethods(idx, c, "paint", nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(matches.NameMatches) != 1 {
		t.Errorf("expected the walk to skip the unindexed superclass, got %v", matches.NameMatches)
	}
}

func TestMatchMethods_CyclicHierarchyTerminates(t *testing.T) {
	a := class("com.example.A", method("run", "a"))
	b := class("com.example.B", method("run", "b", param("int", false)))
	aName := domain.NewClassName("com.example.A")
	bName := domain.NewClassName("com.example.B")
	a.SuperClass = &bName
	b.SuperClass = &aName
	idx := newFakeIndex(a, b)

	matches, err := matchMethods(idx, a, "run", nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(matches.NameMatches) != 2 {
		t.Errorf("expected both signatures despite the cycle, got %d", len(matches.NameMatches))
	}
}
