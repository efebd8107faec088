package main

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// wrapTextHandler adapts a typed handler to the plain-text wire contract:
// success renders through format, failure renders through errorText with the
// error flag set. This is the default mode; -structured switches to JSON.
func wrapTextHandler[TArgs any, TResult any](h mcp.StructuredToolHandlerFunc[TArgs, TResult], format func(TResult) string) func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args TArgs
		if err := req.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(errorText(fmt.Errorf("failed to bind arguments: %w", err))), nil
		}
		res, err := h(ctx, req, args)
		if err != nil {
			return mcp.NewToolResultError(errorText(err)), nil
		}
		return mcp.NewToolResultText(format(res)), nil
	}
}

// recoverMiddleware converts a handler panic into an error result so a single
// bad call cannot take down the stdio session.
func recoverMiddleware() server.ToolHandlerMiddleware {
	return func(next server.ToolHandlerFunc) server.ToolHandlerFunc {
		return func(ctx context.Context, req mcp.CallToolRequest) (res *mcp.CallToolResult, err error) {
			defer func() {
				if r := recover(); r != nil {
					dprintf("panic in %s: %v", req.Params.Name, r)
					res = mcp.NewToolResultError(fmt.Sprintf("Tool execution failed: %v", r))
					err = nil
				}
			}()
			return next(ctx, req)
		}
	}
}

func addTool[TArgs any, TResult any](s *server.MCPServer, structured bool, name, desc string, h mcp.StructuredToolHandlerFunc[TArgs, TResult], format func(TResult) string, opts ...mcp.ToolOption) {
	all := append([]mcp.ToolOption{mcp.WithDescription(desc)}, opts...)
	if structured {
		all = append(all, mcp.WithOutputSchema[TResult]())
		s.AddTool(mcp.NewTool(name, all...), mcp.NewStructuredToolHandler(h))
		return
	}
	s.AddTool(mcp.NewTool(name, all...), wrapTextHandler(h, format))
}

// setupServer registers the two file tool families (fs_* for the per-scope
// workspace, ext_* for the external linked folder) plus the scope tools. Both
// families share handler implementations and differ only in sandbox root.
func setupServer(cfg serverConfig, env *toolEnv, catalog *descriptionCatalog, expand URLExpander) *server.MCPServer {
	types := newTypeWhitelist(cfg.ExtraTypes)
	s := server.NewMCPServer("planfs", "0.1.0",
		server.WithToolHandlerMiddleware(recoverMiddleware()),
		server.WithToolHandlerMiddleware(scopeMiddleware(types, expand)),
	)

	families := []struct {
		prefix string
		kind   rootKind
	}{
		{"fs", rootWorkspace},
		{"ext", rootExternal},
	}
	for _, f := range families {
		addTool(s, cfg.Structured, f.prefix+"_read", catalog.text(f.prefix+"_read"), handleRead(env, f.kind), formatReadResult,
			mcp.WithString("file_path", mcp.Description("File path relative to the sandbox root")),
			mcp.WithString("path", mcp.Description("Alias for file_path")),
			mcp.WithNumber("offset", mcp.Min(1), mcp.Description("1-based first line to read")),
			mcp.WithNumber("limit", mcp.Min(1), mcp.Description("Number of lines to read")),
			mcp.WithBoolean("bypass_limit", mcp.Description("Read the whole file even past the size guard")),
		)
		addTool(s, cfg.Structured, f.prefix+"_write", catalog.text(f.prefix+"_write"), handleWrite(env, f.kind), formatWriteResult,
			mcp.WithString("file_path", mcp.Required(), mcp.Description("File path relative to the sandbox root")),
			mcp.WithString("contents", mcp.Required(), mcp.Description("Full file contents; an empty string truncates")),
		)
		addTool(s, cfg.Structured, f.prefix+"_replace", catalog.text(f.prefix+"_replace"), handleReplace(env, f.kind), formatReplaceResult,
			mcp.WithString("file_path", mcp.Required(), mcp.Description("File path relative to the sandbox root")),
			mcp.WithString("old_string", mcp.Required(), mcp.Description("Exact text to replace; must occur exactly once")),
			mcp.WithString("new_string", mcp.Required(), mcp.Description("Replacement text")),
		)
		addTool(s, cfg.Structured, f.prefix+"_delete", catalog.text(f.prefix+"_delete"), handleDelete(env, f.kind), formatDeleteResult,
			mcp.WithString("file_path", mcp.Required(), mcp.Description("File path relative to the sandbox root")),
		)
		addTool(s, cfg.Structured, f.prefix+"_list", catalog.text(f.prefix+"_list"), handleList(env, f.kind), formatListResult,
			mcp.WithString("path", mcp.Description("Directory relative to the sandbox root; empty lists the root")),
			mcp.WithString("file_path", mcp.Description("Alias for path")),
		)
		addTool(s, cfg.Structured, f.prefix+"_count", catalog.text(f.prefix+"_count"), handleCount(env, f.kind), formatCountResult,
			mcp.WithString("file_path", mcp.Required(), mcp.Description("File path relative to the sandbox root")),
		)
		addTool(s, cfg.Structured, f.prefix+"_split", catalog.text(f.prefix+"_split"), handleSplit(env, f.kind), formatSplitResult,
			mcp.WithString("file_path", mcp.Required(), mcp.Description("File path relative to the sandbox root")),
			mcp.WithNumber("split_count", mcp.Min(1), mcp.Description("Number of pieces (default 10)")),
			mcp.WithString("header", mcp.Description("Optional header line prepended to each piece")),
		)
	}

	addTool(s, cfg.Structured, "scope_create", catalog.text("scope_create"), handleScopeCreate(), formatScopeCreateResult,
		mcp.WithString("id", mcp.Description("Scope id to create; generated when empty")),
	)
	addTool(s, cfg.Structured, "scope_switch", catalog.text("scope_switch"), handleScopeSwitch(), formatScopeSwitchResult,
		mcp.WithString("id", mcp.Required(), mcp.Description("Scope id to activate")),
	)
	addTool(s, cfg.Structured, "scope_list", catalog.text("scope_list"), handleScopeList(), formatScopeListResult)

	return s
}
