package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllNamesUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, c := range All(Options{}) {
		assert.False(t, seen[c.Name()], "duplicate category name %q", c.Name())
		seen[c.Name()] = true
		assert.NotEmpty(t, c.Label())
	}
}

func TestFind(t *testing.T) {
	c, ok := Find("duplicates", Options{})
	require.True(t, ok)
	assert.Equal(t, "Duplicate Files", c.Label())

	_, ok = Find("no-such-category", Options{})
	assert.False(t, ok)
}

func TestSafeCategories(t *testing.T) {
	want := []string{
		"system-caches",
		"app-logs",
		"browser-caches",
		"trash",
		"ds-store",
		"empty-folders",
		"screenshots",
	}
	assert.ElementsMatch(t, want, SafeCategories())

	// Destructive or judgment-call categories stay out of smart clean.
	for _, name := range []string{"duplicates", "old-files", "privacy", "large-files", "homebrew"} {
		assert.False(t, IsSafe(name), name)
	}
}

func TestAllSkipsDisabled(t *testing.T) {
	total := len(All(Options{}))
	filtered := All(Options{Disabled: []string{"trash", "privacy"}})

	assert.Len(t, filtered, total-2)
	for _, c := range filtered {
		assert.NotEqual(t, "trash", c.Name())
		assert.NotEqual(t, "privacy", c.Name())
	}
}

func TestReportOnly(t *testing.T) {
	assert.True(t, ReportOnly("large-files"))
	assert.False(t, ReportOnly("trash"))
}
