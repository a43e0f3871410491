package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-flux/pkg/dom"
)

// NewDocument parses a document whose body holds the supplied markup.
func NewDocument(t *testing.T, body string) *dom.Document {
	t.Helper()

	doc, err := dom.ParseString("<!DOCTYPE html><html><head></head><body>" + body + "</body></html>")
	if err != nil {
		t.Fatalf("parse document: %v", err)
	}
	return doc
}

// Querier is satisfied by *dom.Document and *dom.Element.
type Querier interface {
	QuerySelector(selector string) (*dom.Element, error)
}

// MustQuery returns the first element matching selector or fails the test.
func MustQuery(t *testing.T, scope Querier, selector string) *dom.Element {
	t.Helper()

	el, err := scope.QuerySelector(selector)
	if err != nil {
		t.Fatalf("query %q: %v", selector, err)
	}
	if el == nil {
		t.Fatalf("query %q: no match", selector)
	}
	return el
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// AssertGolden compares got with the golden file at path, rewriting the
// golden instead when UPDATE_GOLDENS is set.
func AssertGolden(t *testing.T, path, got string) {
	t.Helper()
	if WriteMaybeGolden(t, path, []byte(got)) {
		return
	}
	want := MustReadGoldenString(t, path)
	if diff := CompareGolden(want, got); diff != "" {
		t.Fatalf("golden mismatch for %s (-want +got):\n%s", path, diff)
	}
}
