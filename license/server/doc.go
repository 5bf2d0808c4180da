// Package server exposes the compiled-in SPDX catalog over a read-only
// HTTP API built on fiber.
package server
