package port

import "jdoc/internal/domain"

// DocIndex supplies indexed javadoc class records.
type DocIndex interface {
	// Lookup resolves a simple or fully qualified class name,
	// case-insensitively. The result is a tagged variant: a single class, a
	// set of candidate fully qualified names when the name is ambiguous
	// across libraries, or not-found. The error is reserved for index I/O
	// failures.
	Lookup(name string) (domain.LookupResult, error)

	// ClassNames returns every fully qualified class name in the index.
	ClassNames() ([]string, error)
}
