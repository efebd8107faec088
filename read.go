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

func formatReadResult(r ReadResult) string {
	return r.Content
}

func handleRead(env *toolEnv, kind rootKind) mcp.StructuredToolHandlerFunc[ReadArgs, ReadResult] {
	return func(ctx context.Context, req mcp.CallToolRequest, args ReadArgs) (ReadResult, error) {
		start := time.Now()
		dprintf("%s -> %s read path=%q offset=%v limit=%v bypass=%v", scopeContext(ctx), kind, args.target(), args.Offset, args.Limit, args.BypassLimit)
		var res ReadResult
		octx := opContextFrom(ctx)
		target := octx.expand(args.target())
		if target == "" {
			return res, &MissingParamError{Param: "path or file_path"}
		}
		full, err := validateScopedPath(octx, env.resolver, target, kind)
		if err != nil {
			dprintf("read error: %v", err)
			return res, err
		}
		if _, err := os.Stat(full); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return res, &NotFoundError{Path: target}
			}
			return res, fmt.Errorf("reading file: %w", err)
		}
		data, err := os.ReadFile(full)
		if err != nil {
			dprintf("read error: %v", err)
			return res, fmt.Errorf("reading file: %w", err)
		}
		lines := splitLines(string(data))
		if len(lines) == 0 {
			return ReadResult{Path: target, Content: "File is empty."}, nil
		}

		// Guard full reads of large files unless the caller opted out.
		fullRead := args.Offset == nil && args.Limit == nil
		if fullRead && !args.BypassLimit && len(lines) > env.maxReadLines {
			chars := len(lines)
			for _, l := range lines {
				chars += len(l)
			}
			advisory := fmt.Sprintf("File is too large (%d lines, %d characters, exceeds limit of %d lines). "+
				"Please use one of the following approaches:\n"+
				"1. Use offset and limit parameters to read specific line ranges (e.g., offset=1, limit=100)\n"+
				"2. Use search functionality to find relevant sections\n"+
				"3. Set bypass_limit=true to read the entire file (use with caution for very large files)\n\n"+
				"Example: Read first 100 lines with offset=1, limit=100",
				len(lines), chars, env.maxReadLines)
			dprintf("<- read advisory lines=%d dur=%s", len(lines), time.Since(start))
			return ReadResult{Path: target, Lines: len(lines), Advisory: true, Content: advisory}, nil
		}

		startIdx := 0
		endIdx := len(lines)
		if args.Offset != nil {
			if *args.Offset < 1 {
				return res, errors.New("offset must be >= 1 (line numbers start from 1)")
			}
			if *args.Offset > len(lines) {
				return res, fmt.Errorf("offset exceeds file range (file has %d lines)", len(lines))
			}
			startIdx = *args.Offset - 1
		}
		if args.Limit != nil {
			if *args.Limit < 1 {
				return res, errors.New("limit must be >= 1")
			}
			if e := startIdx + *args.Limit; e < endIdx {
				endIdx = e
			}
		}

		var b strings.Builder
		for i := startIdx; i < endIdx; i++ {
			fmt.Fprintf(&b, "%6d|%s\n", i+1, lines[i])
		}
		res = ReadResult{Path: target, Lines: endIdx - startIdx, Content: b.String()}
		dprintf("<- read ok lines=%d dur=%s", res.Lines, time.Since(start))
		return res, nil
	}
}
