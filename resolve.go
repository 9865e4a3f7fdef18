package main

import (
	"path/filepath"
	"strings"
)

func hasGlobMeta(pattern string) bool { return strings.ContainsAny(pattern, "*?[") }

// expandGlob returns the sorted paths matching pattern; malformed patterns
// match nothing.
func expandGlob(pattern string) []string {
	matches, err := filepath.Glob(expandHome(pattern))
	if err != nil {
		return nil
	}
	return matches
}
