package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// IDEntry is one line of a curated identifier list. Asset names the text
// asset the entry embeds; deprecated family members point at the asset of
// their successor instead of carrying a duplicate payload.
type IDEntry struct {
	ID    string
	Asset string
}

// readIDList parses a curated identifier list: one id per line, optionally
// followed by "=asset" to share a text asset, with "#" comments.
func readIDList(path string) ([]IDEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var entries []IDEntry

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		entry := IDEntry{ID: line}
		if id, asset, found := strings.Cut(line, "="); found {
			entry.ID = strings.TrimSpace(id)
			entry.Asset = strings.TrimSpace(asset)
		}

		if entry.Asset == "" {
			entry.Asset = entry.ID
		}

		entries = append(entries, entry)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// licenseDetail mirrors the fields of an SPDX per-license detail JSON file
// that the generator consumes.
type licenseDetail struct {
	LicenseID             string   `json:"licenseId"`
	Name                  string   `json:"name"`
	LicenseText           string   `json:"licenseText"`
	StandardLicenseHeader string   `json:"standardLicenseHeader"`
	IsOsiApproved         bool     `json:"isOsiApproved"`
	IsFsfLibre            bool     `json:"isFsfLibre"`
	IsDeprecated          bool     `json:"isDeprecatedLicenseId"`
	LicenseComments       string   `json:"licenseComments"`
	SeeAlso               []string `json:"seeAlso"`
}

// exceptionDetail mirrors the fields of an SPDX exception JSON file.
type exceptionDetail struct {
	LicenseExceptionID   string   `json:"licenseExceptionId"`
	Name                 string   `json:"name"`
	LicenseExceptionText string   `json:"licenseExceptionText"`
	IsDeprecated         bool     `json:"isDeprecatedLicenseId"`
	LicenseComments      string   `json:"licenseComments"`
	SeeAlso              []string `json:"seeAlso"`
}

// LicenseEntry is a fully resolved license for emission.
type LicenseEntry struct {
	Detail licenseDetail
	Asset  string
}

// ExceptionEntry is a fully resolved exception for emission.
type ExceptionEntry struct {
	Detail exceptionDetail
	Asset  string
}

func loadLicenses(dir string, ids []IDEntry) ([]LicenseEntry, error) {
	entries := make([]LicenseEntry, 0, len(ids))

	for _, id := range ids {
		var detail licenseDetail
		if err := readJSON(filepath.Join(dir, id.ID+".json"), &detail); err != nil {
			return nil, fmt.Errorf("license %q: %w", id.ID, err)
		}

		if detail.LicenseID != id.ID {
			return nil, fmt.Errorf("license %q: detail file declares id %q", id.ID, detail.LicenseID)
		}

		entries = append(entries, LicenseEntry{Detail: detail, Asset: id.Asset})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Detail.LicenseID < entries[j].Detail.LicenseID
	})

	return entries, nil
}

func loadExceptions(dir string, ids []IDEntry) ([]ExceptionEntry, error) {
	entries := make([]ExceptionEntry, 0, len(ids))

	for _, id := range ids {
		var detail exceptionDetail
		if err := readJSON(filepath.Join(dir, id.ID+".json"), &detail); err != nil {
			return nil, fmt.Errorf("exception %q: %w", id.ID, err)
		}

		if detail.LicenseExceptionID != id.ID {
			return nil, fmt.Errorf("exception %q: detail file declares id %q", id.ID, detail.LicenseExceptionID)
		}

		entries = append(entries, ExceptionEntry{Detail: detail, Asset: id.Asset})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Detail.LicenseExceptionID < entries[j].Detail.LicenseExceptionID
	})

	return entries, nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}

	return nil
}
