package main

import (
	"fmt"
	"os"
	"regexp"
	"sync"

	"gopkg.in/yaml.v3"
)

// shortURLPrefix is the token format emitted by the upstream shortener.
// Tokens are the prefix followed by digits.
const shortURLPrefix = "http://s@Url.a/"

var shortURLPattern = regexp.MustCompile(regexp.QuoteMeta(shortURLPrefix) + `\d+`)

// URLExpander maps short URL tokens back to their real targets for a scope.
// The production service lives outside this server; it is consumed here as
// an opaque collaborator.
type URLExpander interface {
	Expand(scopeID, short string) (string, bool)
}

// expandShortURLs replaces every resolvable short URL token in text.
// Unknown tokens are kept so the caller can see what failed to resolve.
func expandShortURLs(x URLExpander, scopeID, text string) string {
	if x == nil || text == "" || scopeID == "" {
		return text
	}
	return shortURLPattern.ReplaceAllStringFunc(text, func(tok string) string {
		if real, ok := x.Expand(scopeID, tok); ok {
			dprintf("expanded short url %s", tok)
			return real
		}
		dprintf("short url not found in mapping: %s", tok)
		return tok
	})
}

// staticExpander is an in-memory URLExpander keyed by scope and token.
type staticExpander struct {
	mu sync.RWMutex
	m  map[string]map[string]string
}

func newStaticExpander() *staticExpander {
	return &staticExpander{m: make(map[string]map[string]string)}
}

func (s *staticExpander) Add(scopeID, short, real string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.m[scopeID] == nil {
		s.m[scopeID] = make(map[string]string)
	}
	s.m[scopeID][short] = real
}

func (s *staticExpander) Expand(scopeID, short string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	real, ok := s.m[scopeID][short]
	return real, ok
}

// loadShortURLs reads a YAML file mapping scope ids to token/target pairs
// into a staticExpander. An empty path disables expansion.
func loadShortURLs(path string) (URLExpander, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading short URL mappings: %w", err)
	}
	var m map[string]map[string]string
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing short URL mappings: %w", err)
	}
	x := newStaticExpander()
	for scope, pairs := range m {
		for short, real := range pairs {
			x.Add(scope, short, real)
		}
	}
	return x, nil
}
