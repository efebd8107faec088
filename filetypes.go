package main

import (
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// defaultTypePatterns is the fixed whitelist of text file types the
// operations accept, expressed as glob patterns over the lowercased base
// name.
var defaultTypePatterns = []string{
	"*.txt", "*.md", "*.markdown", "*.rst",
	"*.csv", "*.tsv", "*.json", "*.jsonl", "*.yaml", "*.yml", "*.toml",
	"*.xml", "*.html", "*.htm", "*.css",
	"*.js", "*.ts", "*.go", "*.py", "*.java", "*.c", "*.h", "*.sh", "*.sql",
	"*.log", "*.conf", "*.cfg", "*.ini", "*.properties", "*.env",
}

// TypeWhitelist answers whether a logical path names a supported text file.
// Directory-style paths (trailing slash) are always supported.
type TypeWhitelist struct {
	patterns []string
}

// newTypeWhitelist builds the whitelist from the fixed patterns plus any
// extra extensions ("rst", ".adoc", ...) supplied by configuration.
func newTypeWhitelist(extra []string) *TypeWhitelist {
	patterns := append([]string(nil), defaultTypePatterns...)
	for _, e := range extra {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		e = strings.TrimPrefix(e, "*")
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		patterns = append(patterns, "*"+e)
	}
	return &TypeWhitelist{patterns: patterns}
}

func (w *TypeWhitelist) Supported(p string) bool {
	if p == "" {
		return false
	}
	if strings.HasSuffix(p, "/") {
		return true
	}
	base := strings.ToLower(path.Base(p))
	for _, pat := range w.patterns {
		if ok, err := doublestar.Match(pat, base); err == nil && ok {
			return true
		}
	}
	return false
}
