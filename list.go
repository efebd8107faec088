package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
)

func formatListResult(r ListResult) string {
	return r.Text
}

func handleList(env *toolEnv, kind rootKind) mcp.StructuredToolHandlerFunc[ListArgs, ListResult] {
	return func(ctx context.Context, req mcp.CallToolRequest, args ListArgs) (ListResult, error) {
		start := time.Now()
		dprintf("%s -> %s list path=%q", scopeContext(ctx), kind, args.target())
		var res ListResult
		octx := opContextFrom(ctx)
		target := octx.expand(args.target())
		full, err := validateScopedDir(octx, env.resolver, target, kind)
		if err != nil {
			dprintf("list error: %v", err)
			return res, err
		}
		info, err := os.Stat(full)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return res, &NotFoundError{Kind: "Directory", Path: target}
			}
			return res, fmt.Errorf("listing directory: %w", err)
		}
		if !info.IsDir() {
			return res, fmt.Errorf("not a directory: %s", target)
		}
		entries, err := os.ReadDir(full)
		if err != nil {
			dprintf("list error: %v", err)
			return res, fmt.Errorf("listing directory: %w", err)
		}
		sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

		var b strings.Builder
		b.WriteString("Files: \n")
		rel := normalizePath(target)
		if rel != "" && rel != "." {
			b.WriteString(rel + "\n")
		}
		if len(entries) == 0 {
			b.WriteString("(empty directory)")
			res = ListResult{Path: target, Entries: 0, Text: b.String()}
			dprintf("<- list ok empty dur=%s", time.Since(start))
			return res, nil
		}
		for _, e := range entries {
			if e.IsDir() {
				fmt.Fprintf(&b, "[DIR] %s/\n", e.Name())
				continue
			}
			fi, err := e.Info()
			if err != nil {
				fmt.Fprintf(&b, "[ERROR] %s (error reading)\n", e.Name())
				continue
			}
			fmt.Fprintf(&b, "[FILE] %s (%s)\n", e.Name(), formatFileSize(fi.Size()))
		}
		res = ListResult{Path: target, Entries: len(entries), Text: strings.TrimSuffix(b.String(), "\n")}
		dprintf("<- list ok entries=%d dur=%s", res.Entries, time.Since(start))
		return res, nil
	}
}
