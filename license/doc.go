// Package license defines the capability contracts for the embedded SPDX
// catalog.
//
// Every catalog entry is a distinct zero-size type that satisfies License or
// Exception, so callers can hold any entry behind a single interface while the
// concrete type stays available for compile-time dispatch:
//
//	lic, err := licenses.FromID("Apache-2.0")
//	if err != nil {
//		// license.ErrNotFound
//	}
//	fmt.Println(lic.Name()) // Apache License 2.0
//
// Entries curated with permission, condition, and limitation facts additionally
// satisfy LicenseExt, discovered with a plain type assertion:
//
//	if ext, ok := lic.(license.LicenseExt); ok {
//		fmt.Print(ext.Permissions())
//	}
//
// This package is intentionally dependency-free; the compiled-in catalog lives
// in the licenses and exceptions subpackages, and specialized surfaces live in
// codec and server.
package license
