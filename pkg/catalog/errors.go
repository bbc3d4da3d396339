package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrCatalogMismatch marks an inconsistency between product cards and dropdown options.
	ErrCatalogMismatch = errors.New("catalog and dropdown are inconsistent")

	// ErrInvalidCatalog is returned when a product breaks a per-product invariant.
	ErrInvalidCatalog = errors.New("invalid catalog")

	// ErrEmptyCatalog is returned when a catalog source holds no products.
	ErrEmptyCatalog = errors.New("catalog has no products")

	// ErrDecodeCatalog is returned when a catalog file cannot be parsed.
	ErrDecodeCatalog = errors.New("failed to decode catalog")
)

// ProblemKind classifies a single consistency problem.
type ProblemKind string

const (
	DuplicateName      ProblemKind = "duplicate_name"
	MissingOption      ProblemKind = "missing_option"
	DuplicateOption    ProblemKind = "duplicate_option"
	SoldListed         ProblemKind = "sold_listed"
	UnknownOption      ProblemKind = "unknown_option"
	PriceMismatch      ProblemKind = "price_mismatch"
	MissingPlaceholder ProblemKind = "missing_placeholder"
	MissingOther       ProblemKind = "missing_other"
)

// Problem describes one broken relationship between the catalog and the dropdown.
type Problem struct {
	Kind    ProblemKind `json:"kind"`
	Product string      `json:"product,omitempty"`
	Detail  string      `json:"detail"`
}

func (p Problem) String() string {
	if p.Product == "" {
		return fmt.Sprintf("%s: %s", p.Kind, p.Detail)
	}
	return fmt.Sprintf("%s %q: %s", p.Kind, p.Product, p.Detail)
}

// MismatchError lists every problem found by ValidateConsistency.
// It matches ErrCatalogMismatch with errors.Is.
type MismatchError struct {
	Problems []Problem
}

func (e *MismatchError) Error() string {
	parts := make([]string, 0, len(e.Problems))
	for _, p := range e.Problems {
		parts = append(parts, p.String())
	}
	return fmt.Sprintf("%s: %s", ErrCatalogMismatch, strings.Join(parts, "; "))
}

func (e *MismatchError) Is(target error) bool {
	return target == ErrCatalogMismatch
}

// Has reports whether a problem of the given kind was recorded for product.
// An empty product matches any product.
func (e *MismatchError) Has(kind ProblemKind, product string) bool {
	for _, p := range e.Problems {
		if p.Kind == kind && (product == "" || p.Product == product) {
			return true
		}
	}
	return false
}

// AsMismatch extracts a *MismatchError from err.
func AsMismatch(err error) (*MismatchError, bool) {
	var me *MismatchError
	if errors.As(err, &me) {
		return me, true
	}
	return nil, false
}
