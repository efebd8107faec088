package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
)

func formatDeleteResult(r DeleteResult) string {
	return r.Message
}

func handleDelete(env *toolEnv, kind rootKind) mcp.StructuredToolHandlerFunc[DeleteArgs, DeleteResult] {
	return func(ctx context.Context, req mcp.CallToolRequest, args DeleteArgs) (DeleteResult, error) {
		start := time.Now()
		dprintf("%s -> %s delete path=%q", scopeContext(ctx), kind, args.FilePath)
		var res DeleteResult
		octx := opContextFrom(ctx)
		target := octx.expand(args.FilePath)
		if target == "" {
			return res, &MissingParamError{Param: "file_path"}
		}
		full, err := validateScopedPath(octx, env.resolver, target, kind)
		if err != nil {
			dprintf("delete error: %v", err)
			return res, err
		}
		if _, err := os.Stat(full); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return res, &NotFoundError{Path: target}
			}
			return res, fmt.Errorf("deleting file: %w", err)
		}
		if err := os.Remove(full); err != nil {
			dprintf("delete error: %v", err)
			return res, fmt.Errorf("deleting file: %w", err)
		}
		res = DeleteResult{Path: target, Message: "File deleted successfully: " + target}
		dprintf("<- delete ok dur=%s", time.Since(start))
		return res, nil
	}
}
