package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
)

func formatCountResult(r CountResult) string {
	return r.Text
}

func handleCount(env *toolEnv, kind rootKind) mcp.StructuredToolHandlerFunc[CountArgs, CountResult] {
	return func(ctx context.Context, req mcp.CallToolRequest, args CountArgs) (CountResult, error) {
		start := time.Now()
		dprintf("%s -> %s count path=%q", scopeContext(ctx), kind, args.FilePath)
		var res CountResult
		octx := opContextFrom(ctx)
		target := octx.expand(args.FilePath)
		if target == "" {
			return res, &MissingParamError{Param: "file_path"}
		}
		full, err := validateScopedPath(octx, env.resolver, target, kind)
		if err != nil {
			dprintf("count error: %v", err)
			return res, err
		}
		info, err := os.Stat(full)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return res, &NotFoundError{Path: target}
			}
			return res, fmt.Errorf("reading file: %w", err)
		}
		data, err := os.ReadFile(full)
		if err != nil {
			dprintf("count error: %v", err)
			return res, fmt.Errorf("reading file: %w", err)
		}
		lines := splitLines(string(data))
		chars := 0
		words := 0
		for _, l := range lines {
			chars += len(l)
			words += len(strings.Fields(l))
		}

		sep := strings.Repeat("=", 60)
		var b strings.Builder
		b.WriteString(sep + "\n")
		fmt.Fprintf(&b, "File Statistics for: %s\n", filepath.Base(target))
		b.WriteString(sep + "\n")
		fmt.Fprintf(&b, "Total Lines: %d\n", len(lines))
		fmt.Fprintf(&b, "Total Characters (including newlines): %d\n", len(data))
		fmt.Fprintf(&b, "Total Characters (excluding newlines): %d\n", chars)
		fmt.Fprintf(&b, "Total Words: %d\n", words)
		fmt.Fprintf(&b, "File Size: %d bytes\n", info.Size())
		b.WriteString(sep)

		res = CountResult{
			Path:       target,
			Lines:      len(lines),
			Bytes:      info.Size(),
			Characters: chars,
			Words:      words,
			Text:       b.String(),
		}
		dprintf("<- count ok lines=%d dur=%s", res.Lines, time.Since(start))
		return res, nil
	}
}
