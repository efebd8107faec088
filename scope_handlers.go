package main

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
)

func formatScopeCreateResult(r ScopeCreateResult) string {
	return "Scope created and activated: " + r.ID
}

func handleScopeCreate() mcp.StructuredToolHandlerFunc[ScopeCreateArgs, ScopeCreateResult] {
	return func(ctx context.Context, req mcp.CallToolRequest, args ScopeCreateArgs) (ScopeCreateResult, error) {
		id := strings.TrimSpace(args.ID)
		if id == "" {
			id = uuid.NewString()
		}
		setActiveScopeID(ctx, id)
		dprintf("scope created id=%s", id)
		return ScopeCreateResult{ID: id}, nil
	}
}

func formatScopeSwitchResult(r ScopeSwitchResult) string {
	return "Active scope switched to: " + r.ID
}

func handleScopeSwitch() mcp.StructuredToolHandlerFunc[ScopeSwitchArgs, ScopeSwitchResult] {
	return func(ctx context.Context, req mcp.CallToolRequest, args ScopeSwitchArgs) (ScopeSwitchResult, error) {
		id := strings.TrimSpace(args.ID)
		if id == "" {
			return ScopeSwitchResult{}, &MissingParamError{Param: "id"}
		}
		setActiveScopeID(ctx, id)
		dprintf("scope switched id=%s", id)
		return ScopeSwitchResult{ID: id}, nil
	}
}

func formatScopeListResult(r ScopeListResult) string {
	var b strings.Builder
	b.WriteString("Known scopes:\n")
	for _, id := range r.Scopes {
		marker := "  "
		if id == r.Active {
			marker = "* "
		}
		fmt.Fprintf(&b, "%s%s\n", marker, id)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func handleScopeList() mcp.StructuredToolHandlerFunc[struct{}, ScopeListResult] {
	return func(ctx context.Context, req mcp.CallToolRequest, _ struct{}) (ScopeListResult, error) {
		ids := knownScopeIDs(ctx)
		sort.Strings(ids)
		return ScopeListResult{Scopes: ids, Active: activeScopeID(ctx)}, nil
	}
}
