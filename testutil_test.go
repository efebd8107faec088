package main

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

const testScope = "scope-a1"

func mustWrite(t *testing.T, p string, b []byte, mode os.FileMode) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(p, b, mode); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func makeSymlink(t *testing.T, target, link string) error {
	t.Helper()
	// Windows often needs admin privileges for symlinks.
	if runtime.GOOS == "windows" {
		return os.ErrPermission
	}
	return os.Symlink(target, link)
}

func newTestEnv(t *testing.T) *toolEnv {
	t.Helper()
	return &toolEnv{
		resolver:     &Resolver{workspaceBase: t.TempDir(), externalRoot: t.TempDir()},
		maxReadLines: defaultMaxReadLines,
	}
}

// testCtx carries an OpContext the way scopeMiddleware would build it.
func testCtx(scope string) context.Context {
	return withOpContext(context.Background(), OpContext{
		ScopeID: scope,
		Types:   newTypeWhitelist(nil),
	})
}

// wsPath is the on-disk location of a logical path inside the test scope's
// workspace root.
func wsPath(env *toolEnv, name string) string {
	return filepath.Join(env.resolver.workspaceBase, testScope, filepath.FromSlash(name))
}

func extPath(env *toolEnv, name string) string {
	return filepath.Join(env.resolver.externalRoot, filepath.FromSlash(name))
}
