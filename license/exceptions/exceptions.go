// Package exceptions holds the compiled-in SPDX license exception catalog.
//
// The package mirrors the shape of the license catalog: one zero-size struct
// per SPDX exception identifier, all satisfying license.Exception, with data
// embedded at build time. Entries are immutable and safe to share across
// goroutines.
//
// Identifier matching is case-insensitive; ID always returns the canonical
// casing.
package exceptions

import (
	"fmt"
	"iter"
	"strings"

	"github.com/LerianStudio/lib-license/license"
)

// FromID resolves an SPDX exception identifier to its catalog entry.
//
// When no entry matches, the error wraps license.ErrNotFound; no default
// entry is ever substituted.
func FromID(id string) (license.Exception, error) {
	if exc, ok := index[strings.ToLower(id)]; ok {
		return exc, nil
	}

	return nil, fmt.Errorf("exception %q: %w", id, license.ErrNotFound)
}

// All yields every exception in the catalog in ascending identifier order.
// The sequence is finite and restartable.
func All() iter.Seq[license.Exception] {
	return func(yield func(license.Exception) bool) {
		for _, exc := range all {
			if !yield(exc) {
				return
			}
		}
	}
}

// Count returns the number of exceptions in the catalog.
func Count() int {
	return len(all)
}
