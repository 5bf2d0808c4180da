// Package codec serializes license and exception handles as their SPDX
// identifier strings.
//
// A handle marshals to its canonical id; unmarshaling resolves the id against
// the compiled-in catalog and fails when the id is unknown. The wrappers
// implement both the JSON and plain-text marshaler interfaces so they work in
// struct fields, map keys, and flag values alike.
package codec

import (
	"encoding/json"
	"fmt"

	"github.com/LerianStudio/lib-license/license"
	"github.com/LerianStudio/lib-license/license/exceptions"
	"github.com/LerianStudio/lib-license/license/licenses"
)

// License wraps a catalog license handle for serialization.
//
// The zero value is not marshalable; populate it by unmarshaling or by
// wrapping a resolved handle.
type License struct {
	license.License
}

// MarshalText encodes the handle as its canonical SPDX id.
func (l License) MarshalText() ([]byte, error) {
	if l.License == nil {
		return nil, fmt.Errorf("codec: marshal of zero license handle")
	}

	return []byte(l.ID()), nil
}

// UnmarshalText resolves the id against the license catalog.
func (l *License) UnmarshalText(data []byte) error {
	lic, err := licenses.FromID(string(data))
	if err != nil {
		return err
	}

	l.License = lic

	return nil
}

// MarshalJSON encodes the handle as a JSON string holding its canonical id.
func (l License) MarshalJSON() ([]byte, error) {
	text, err := l.MarshalText()
	if err != nil {
		return nil, err
	}

	return json.Marshal(string(text))
}

// UnmarshalJSON decodes a JSON string and resolves it as an SPDX id.
func (l *License) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err != nil {
		return err
	}

	return l.UnmarshalText([]byte(id))
}

// Exception wraps a catalog exception handle for serialization.
type Exception struct {
	license.Exception
}

// MarshalText encodes the handle as its canonical SPDX id.
func (e Exception) MarshalText() ([]byte, error) {
	if e.Exception == nil {
		return nil, fmt.Errorf("codec: marshal of zero exception handle")
	}

	return []byte(e.ID()), nil
}

// UnmarshalText resolves the id against the exception catalog.
func (e *Exception) UnmarshalText(data []byte) error {
	exc, err := exceptions.FromID(string(data))
	if err != nil {
		return err
	}

	e.Exception = exc

	return nil
}

// MarshalJSON encodes the handle as a JSON string holding its canonical id.
func (e Exception) MarshalJSON() ([]byte, error) {
	text, err := e.MarshalText()
	if err != nil {
		return nil, err
	}

	return json.Marshal(string(text))
}

// UnmarshalJSON decodes a JSON string and resolves it as an SPDX id.
func (e *Exception) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err != nil {
		return err
	}

	return e.UnmarshalText([]byte(id))
}
