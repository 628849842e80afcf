package urban

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestDefine(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/define" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("term"); got != "snake case" {
			t.Errorf("unexpected term %q", got)
		}
		w.Write([]byte(`{"list":[{"word":"snake case","definition":"words_like_this","permalink":"https://example.com/1"}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	defs, err := c.Define("snake case")
	if err != nil {
		t.Fatal(err)
	}
	if len(defs) != 1 {
		t.Fatalf("expected 1 definition, got %d", len(defs))
	}
	if defs[0].Word != "snake case" || defs[0].Definition != "words_like_this" {
		t.Errorf("unexpected definition: %#v", defs[0])
	}
}

func TestDefine_NoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"list":[]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	defs, err := c.Define("qwzx")
	if err != nil {
		t.Fatal(err)
	}
	if len(defs) != 0 {
		t.Errorf("expected no definitions, got %v", defs)
	}
}

func TestDefine_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	if _, err := c.Define("word"); err == nil {
		t.Error("expected an error for a 500 response")
	}
}
