// Package licenses holds the compiled-in SPDX license catalog.
//
// One zero-size struct exists per SPDX identifier; all of them satisfy
// license.License and the curated subset additionally satisfies
// license.LicenseExt. The catalog is immutable after process start: entries
// embed their data at build time and FromID only reads the identifier table,
// so handles may be shared across goroutines without synchronization.
//
// Identifier matching is case-insensitive: the table is keyed by the
// lowercased canonical id and the input is lowercased once before lookup.
// ID always returns the canonical casing regardless of how the entry was
// resolved.
package licenses

import (
	"fmt"
	"iter"
	"strings"

	"github.com/LerianStudio/lib-license/license"
)

// FromID resolves an SPDX license identifier to its catalog entry.
//
// Deprecated identifiers remain resolvable and report IsDeprecated. When no
// entry matches, the error wraps license.ErrNotFound; no default entry is
// ever substituted.
func FromID(id string) (license.License, error) {
	if lic, ok := index[strings.ToLower(id)]; ok {
		return lic, nil
	}

	return nil, fmt.Errorf("license %q: %w", id, license.ErrNotFound)
}

// FromIDExt resolves an identifier to an entry curated with permission,
// condition, and limitation facts.
//
// The second return is false both when the identifier is unknown and when the
// license exists but has no curated facts; absence of facts is "not tracked",
// never inferred.
func FromIDExt(id string) (license.LicenseExt, bool) {
	lic, err := FromID(id)
	if err != nil {
		return nil, false
	}

	ext, ok := lic.(license.LicenseExt)

	return ext, ok
}

// All yields every license in the catalog in ascending identifier order.
// The sequence is finite and restartable; ranging over it twice yields the
// same entries in the same order.
func All() iter.Seq[license.License] {
	return func(yield func(license.License) bool) {
		for _, lic := range all {
			if !yield(lic) {
				return
			}
		}
	}
}

// Count returns the number of licenses in the catalog.
func Count() int {
	return len(all)
}
