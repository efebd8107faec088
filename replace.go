package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
)

func formatReplaceResult(r ReplaceResult) string {
	return r.Message
}

// handleReplace substitutes exactly one occurrence of old_string. A missing
// target file is created empty first, so replace never reports NotFound.
func handleReplace(env *toolEnv, kind rootKind) mcp.StructuredToolHandlerFunc[ReplaceArgs, ReplaceResult] {
	return func(ctx context.Context, req mcp.CallToolRequest, args ReplaceArgs) (ReplaceResult, error) {
		start := time.Now()
		dprintf("%s -> %s replace path=%q", scopeContext(ctx), kind, args.FilePath)
		var res ReplaceResult
		octx := opContextFrom(ctx)
		target := octx.expand(args.FilePath)
		if target == "" {
			return res, &MissingParamError{Param: "file_path"}
		}
		if args.OldString == nil || args.NewString == nil {
			return res, &MissingParamError{Param: "old_string and new_string"}
		}
		oldStr := octx.expand(*args.OldString)
		newStr := octx.expand(*args.NewString)
		full, err := validateScopedPath(octx, env.resolver, target, kind)
		if err != nil {
			dprintf("replace error: %v", err)
			return res, err
		}
		if _, statErr := os.Stat(full); errors.Is(statErr, os.ErrNotExist) {
			if err := ensureParent(full); err != nil {
				return res, fmt.Errorf("creating parent directories: %w", err)
			}
			if err := os.WriteFile(full, nil, 0o644); err != nil {
				return res, fmt.Errorf("creating file: %w", err)
			}
			dprintf("replace created missing file %q", full)
		}
		if oldStr == newStr {
			return res, errors.New("new_string must be different from old_string. No changes would be made.")
		}
		data, err := os.ReadFile(full)
		if err != nil {
			dprintf("replace read error: %v", err)
			return res, fmt.Errorf("reading file: %w", err)
		}
		content := string(data)
		if !strings.Contains(content, oldStr) {
			dprintf("replace: old_string not found in %q", full)
			return res, fmt.Errorf("old_string was not found in file: %s", target)
		}
		if n := strings.Count(content, oldStr); n > 1 {
			return res, &AmbiguousError{Count: n}
		}
		updated := strings.Replace(content, oldStr, newStr, 1)
		if err := syncWrite(full, []byte(updated)); err != nil {
			dprintf("replace write error: %v", err)
			return res, fmt.Errorf("writing file: %w", err)
		}
		res = ReplaceResult{Path: target, Message: "Replacement successful in file: " + target}
		dprintf("<- replace ok dur=%s", time.Since(start))
		return res, nil
	}
}
