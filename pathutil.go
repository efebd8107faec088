package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sandbox root kinds. Workspace roots are derived per scope; the
// external-link root is a single shared folder configured globally.
type rootKind int

const (
	rootWorkspace rootKind = iota
	rootExternal
)

func (k rootKind) String() string {
	if k == rootExternal {
		return "external"
	}
	return "workspace"
}

const scopePrefix = "scope-"

// normalizePath turns a caller-supplied logical path into the relative form
// the resolver joins under a sandbox root. The rules are applied until a
// fixed point so normalizing an already-normalized path is a no-op:
//
//   - surrounding whitespace is trimmed
//   - leading slashes are dropped
//   - a leading "./" is dropped
//   - a leading "scope-<token>/" segment is dropped, where token is any
//     non-empty run of characters other than '/'
func normalizePath(p string) string {
	n := p
	for {
		prev := n
		n = strings.TrimSpace(n)
		for strings.HasPrefix(n, "/") {
			n = n[1:]
		}
		if strings.HasPrefix(n, "./") {
			n = n[2:]
		}
		n = stripScopeSegment(n)
		if n == prev {
			return n
		}
	}
}

// stripScopeSegment removes one leading "scope-<token>/" segment. The token
// must be non-empty and the segment must be followed by a slash; anything
// else is a real file name and is left alone.
func stripScopeSegment(n string) string {
	if !strings.HasPrefix(n, scopePrefix) {
		return n
	}
	rest := n[len(scopePrefix):]
	slash := strings.IndexByte(rest, '/')
	if slash <= 0 {
		return n
	}
	return rest[slash+1:]
}

// Resolver maps normalized logical paths into absolute locations confined to
// a sandbox root. Every filesystem operation in this server runs only
// against a path it has produced.
type Resolver struct {
	workspaceBase string // parent of the per-scope workspace roots
	externalRoot  string // shared external-link folder; may be unset
}

// rootFor returns the sandbox root for kind, creating per-scope workspace
// roots on demand. An unconfigured base is a ConfigError, not a crash.
func (r *Resolver) rootFor(kind rootKind, scopeID string) (string, error) {
	switch kind {
	case rootExternal:
		if r.externalRoot == "" {
			return "", &ConfigError{
				Key: envExternalRoot,
				Msg: "External linked folder is not configured",
			}
		}
		return r.externalRoot, nil
	default:
		if r.workspaceBase == "" {
			return "", &ConfigError{
				Key: envWorkspaceBase,
				Msg: "Workspace base folder is not configured",
			}
		}
		root := filepath.Join(r.workspaceBase, scopeID)
		if err := os.MkdirAll(root, 0o755); err != nil {
			return "", fmt.Errorf("creating workspace root: %w", err)
		}
		return root, nil
	}
}

// resolve joins a normalized path under the sandbox root for kind and
// verifies containment. Both sides are compared in canonical
// (symlink-resolved) form; when the target does not exist yet the deepest
// existing ancestor is canonicalized and containment-checked before the
// missing tail is appended, so a symlinked directory inside the root cannot
// smuggle a new file outside it.
func (r *Resolver) resolve(scopeID, name string, kind rootKind) (string, error) {
	if strings.TrimSpace(scopeID) == "" {
		return "", &ConfigError{
			Key: "scope",
			Msg: "A scope identifier is required for file operations but none is active",
		}
	}
	root, err := r.rootFor(kind, scopeID)
	if err != nil {
		return "", err
	}
	rootAbs := mustAbs(root)
	rootCanon := rootAbs
	if rc, cerr := filepath.EvalSymlinks(rootAbs); cerr == nil {
		rootCanon = rc
	}
	joined := mustAbs(filepath.Join(rootAbs, filepath.FromSlash(name)))
	canon, cerr := filepath.EvalSymlinks(joined)
	if cerr == nil {
		canonAbs := mustAbs(canon)
		if !contained(rootCanon, canonAbs) {
			return "", errOutsideRoot(name)
		}
		return canonAbs, nil
	}
	if errors.Is(cerr, os.ErrNotExist) {
		if !contained(rootAbs, joined) && !contained(rootCanon, joined) {
			return "", errOutsideRoot(name)
		}
		rel := filepath.Base(joined)
		dir := filepath.Dir(joined)
		for {
			canonDir, derr := filepath.EvalSymlinks(dir)
			if derr == nil {
				dirAbs := mustAbs(canonDir)
				if !contained(rootCanon, dirAbs) && !contained(rootAbs, dirAbs) {
					return "", errOutsideRoot(name)
				}
				return filepath.Join(dirAbs, rel), nil
			}
			if !errors.Is(derr, os.ErrNotExist) {
				return "", fmt.Errorf("resolving path: %w", derr)
			}
			// Nothing between a missing root and the target exists yet,
			// so there is no symlink left to follow.
			if dir == rootAbs || dir == rootCanon {
				return joined, nil
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				return joined, nil
			}
			rel = filepath.Join(filepath.Base(dir), rel)
			dir = parent
		}
	}
	return "", fmt.Errorf("resolving path: %w", cerr)
}

func contained(root, p string) bool {
	sep := string(os.PathSeparator)
	return p == root || strings.HasPrefix(p+sep, root+sep)
}

// validateScopedPath normalizes and whitelists a logical path, then resolves
// it for the active scope. Directory-style paths (trailing slash) and the
// root itself skip the type check.
func validateScopedPath(octx OpContext, r *Resolver, p string, kind rootKind) (string, error) {
	n := normalizePath(p)
	if n != "" && !strings.HasSuffix(n, "/") && !octx.Types.Supported(n) {
		return "", errUnsupportedType()
	}
	return r.resolve(octx.ScopeID, n, kind)
}

// validateScopedDir resolves a directory path for the active scope. The
// file-type whitelist applies only to file operations, so directory names
// without an extension are fine here.
func validateScopedDir(octx OpContext, r *Resolver, p string, kind rootKind) (string, error) {
	return r.resolve(octx.ScopeID, normalizePath(p), kind)
}
