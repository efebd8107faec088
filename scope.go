package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// scopeManager tracks the active scope id for a connection, plus the ids it
// has seen, so the scope tools can switch between them. File operations
// never read it directly; they see an immutable OpContext instead.
type scopeManager struct {
	mu    sync.RWMutex
	id    string
	known map[string]struct{}
}

func newScopeManager(initial string) *scopeManager {
	m := &scopeManager{id: initial, known: make(map[string]struct{})}
	if initial != "" {
		m.known[initial] = struct{}{}
	}
	return m
}

type scopeManagerKey struct{}

func withScopeManager(ctx context.Context, m *scopeManager) context.Context {
	return context.WithValue(ctx, scopeManagerKey{}, m)
}

func activeScopeID(ctx context.Context) string {
	if m, ok := ctx.Value(scopeManagerKey{}).(*scopeManager); ok {
		m.mu.RLock()
		defer m.mu.RUnlock()
		return m.id
	}
	return ""
}

func setActiveScopeID(ctx context.Context, id string) {
	if m, ok := ctx.Value(scopeManagerKey{}).(*scopeManager); ok {
		m.mu.Lock()
		m.id = id
		m.known[id] = struct{}{}
		m.mu.Unlock()
	}
}

func knownScopeIDs(ctx context.Context) []string {
	if m, ok := ctx.Value(scopeManagerKey{}).(*scopeManager); ok {
		m.mu.RLock()
		defer m.mu.RUnlock()
		ids := make([]string, 0, len(m.known))
		for id := range m.known {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

func scopeContext(ctx context.Context) string {
	id := activeScopeID(ctx)
	if id == "" {
		id = "unknown"
	}
	return fmt.Sprintf("scope=%s", id)
}

// OpContext is the per-call scope every operation receives: the sandbox it
// is confined to, the file-type whitelist, and the optional short-URL
// expansion. It is built fresh for each call and never mutated.
type OpContext struct {
	ScopeID string
	Types   *TypeWhitelist
	Expand  URLExpander // nil when short URL expansion is disabled
}

// expand applies short-URL expansion to a request string when enabled.
func (o OpContext) expand(s string) string {
	return expandShortURLs(o.Expand, o.ScopeID, s)
}

type opContextKey struct{}

func withOpContext(ctx context.Context, o OpContext) context.Context {
	return context.WithValue(ctx, opContextKey{}, o)
}

func opContextFrom(ctx context.Context) OpContext {
	if o, ok := ctx.Value(opContextKey{}).(OpContext); ok {
		return o
	}
	return OpContext{}
}

// scopeMiddleware attaches an OpContext to each tool call. The scope id
// comes from the connection's scope manager, falling back to the MCP client
// session id for connections that never switched scope.
func scopeMiddleware(types *TypeWhitelist, expand URLExpander) server.ToolHandlerMiddleware {
	return func(next server.ToolHandlerFunc) server.ToolHandlerFunc {
		return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			sid := activeScopeID(ctx)
			if sid == "" {
				if s := server.ClientSessionFromContext(ctx); s != nil {
					sid = s.SessionID()
				}
			}
			octx := OpContext{ScopeID: sid, Types: types, Expand: expand}
			return next(withOpContext(ctx, octx), req)
		}
	}
}
