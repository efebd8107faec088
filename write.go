package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
)

func formatWriteResult(r WriteResult) string {
	return r.Message
}

func handleWrite(env *toolEnv, kind rootKind) mcp.StructuredToolHandlerFunc[WriteArgs, WriteResult] {
	return func(ctx context.Context, req mcp.CallToolRequest, args WriteArgs) (WriteResult, error) {
		start := time.Now()
		dprintf("%s -> %s write path=%q", scopeContext(ctx), kind, args.FilePath)
		var res WriteResult
		octx := opContextFrom(ctx)
		target := octx.expand(args.FilePath)
		if target == "" {
			return res, &MissingParamError{Param: "file_path"}
		}
		if args.Contents == nil {
			return res, &MissingParamError{Param: "contents"}
		}
		contents := octx.expand(*args.Contents)
		full, err := validateScopedPath(octx, env.resolver, target, kind)
		if err != nil {
			dprintf("write error: %v", err)
			return res, err
		}
		_, statErr := os.Lstat(full)
		existed := statErr == nil
		if err := ensureParent(full); err != nil {
			dprintf("write error: %v", err)
			return res, fmt.Errorf("creating parent directories: %w", err)
		}
		if err := syncWrite(full, []byte(contents)); err != nil {
			dprintf("write error: %v", err)
			return res, fmt.Errorf("writing file: %w", err)
		}
		msg := "File written successfully (created): " + target
		if existed {
			msg = "File written successfully (overwritten): " + target
		}
		res = WriteResult{Path: target, Created: !existed, Bytes: len(contents), Message: msg}
		dprintf("<- write ok created=%v bytes=%d dur=%s", res.Created, res.Bytes, time.Since(start))
		return res, nil
	}
}
