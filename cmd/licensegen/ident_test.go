//go:build unit

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGoIdent(t *testing.T) {
	t.Parallel()

	cases := []struct {
		id   string
		want string
	}{
		{"MIT", "MIT"},
		{"MIT-0", "MIT_0"},
		{"Apache-2.0", "Apache_2_0"},
		{"BSD-3-Clause-Clear", "BSD_3_Clause_Clear"},
		{"AGPL-3.0-or-later", "AGPL_3_0_Or_Later"},
		{"GPL-2.0+", "GPL_2_0_Plus"},
		{"0BSD", "BSD_0"},
		{"389-exception", "Exception_389"},
		{"Autoconf-exception-3.0", "Autoconf_Exception_3_0"},
		{"Linux-syscall-note", "Linux_Syscall_Note"},
		{"CC0-1.0", "CC0_1_0"},
		{"PostgreSQL", "PostgreSQL"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, GoIdent(tc.id), "id %q", tc.id)
	}
}

func TestTextVar(t *testing.T) {
	t.Parallel()

	cases := []struct {
		id   string
		want string
	}{
		{"MIT", "textMIT"},
		{"0BSD", "text0BSD"},
		{"AFL-3.0", "textAFL_3_0"},
		{"389-exception", "text389_Exception"},
		{"BSD-3-Clause-Clear", "textBSD_3_Clause_Clear"},
		{"Linux-syscall-note", "textLinux_Syscall_Note"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, TextVar(tc.id), "id %q", tc.id)
	}
}

func TestSplitDigitPrefix(t *testing.T) {
	t.Parallel()

	digits, rest, ok := splitDigitPrefix("0BSD")
	assert.True(t, ok)
	assert.Equal(t, "0", digits)
	assert.Equal(t, "BSD", rest)

	_, _, ok = splitDigitPrefix("389")
	assert.False(t, ok, "all-digit segment is not a prefix split")

	_, _, ok = splitDigitPrefix("BSD")
	assert.False(t, ok)
}
