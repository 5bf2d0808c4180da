package license

import "errors"

// ErrNotFound is returned when an identifier matches no catalog entry of the
// requested kind. Resolution never substitutes a default or deprecated entry.
var ErrNotFound = errors.New("SPDX id not found")

// License is the read-only contract satisfied by every license in the catalog.
//
// All accessors are pure functions over data embedded at build time; they
// cannot fail and never allocate beyond returning the embedded values.
type License interface {
	// ID returns the SPDX identifier, as published. Never empty.
	//
	// Corresponds to the Identifier column on spdx.org/licenses.
	ID() string

	// Name returns the full license name. Never empty.
	Name() string

	// Text returns the complete license text. Never empty.
	Text() string

	// Header returns the standard license header to prepend to source files,
	// when the license defines one.
	Header() (string, bool)

	// IsOSIApproved reports whether the license is OSI approved.
	IsOSIApproved() bool

	// IsFSFLibre reports whether the license is FSF Free/Libre.
	IsFSFLibre() bool

	// IsDeprecated reports whether the identifier has been superseded in the
	// SPDX list. Deprecated entries remain resolvable for backward lookup.
	IsDeprecated() bool

	// Comments returns the SPDX annotation for the license, when present.
	Comments() (string, bool)

	// SeeAlso returns reference URLs in citation order. May be empty.
	SeeAlso() []string
}

// Exception is the read-only contract satisfied by every license exception in
// the catalog. Exceptions and licenses are distinct kinds; their identifier
// namespaces are independent.
type Exception interface {
	// ID returns the SPDX exception identifier. Never empty.
	ID() string

	// Name returns the full exception name. Never empty.
	Name() string

	// Text returns the complete exception text. Never empty.
	Text() string

	// IsDeprecated reports whether the identifier has been superseded.
	IsDeprecated() bool

	// Comments returns the SPDX annotation for the exception, when present.
	Comments() (string, bool)

	// SeeAlso returns reference URLs in citation order. May be empty.
	SeeAlso() []string
}
