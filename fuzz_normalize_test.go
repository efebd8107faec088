//go:build go1.18
// +build go1.18

package main

import (
	"strings"
	"testing"
)

// FuzzNormalizePath checks the fixed-point property: normalizing twice must
// equal normalizing once, and the result never keeps a leading slash or
// scope segment.
func FuzzNormalizePath(f *testing.F) {
	seeds := []string{
		"a.txt", "/a.txt", "./a.txt", " scope-x/a.txt ", "scope-/a",
		"scope-a/scope-b/c", "///x", "..", "scope-1", "",
	}
	for _, s := range seeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, p string) {
		once := normalizePath(p)
		if twice := normalizePath(once); twice != once {
			t.Fatalf("not idempotent: %q -> %q -> %q", p, once, twice)
		}
		if strings.HasPrefix(once, "/") {
			t.Fatalf("leading slash survived: %q -> %q", p, once)
		}
	})
}
