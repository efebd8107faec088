package main

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
)

func TestReadFullFile(t *testing.T) {
	env := newTestEnv(t)
	mustWrite(t, wsPath(env, "a.txt"), []byte("a\nbb\nccc\n"), 0o644)

	h := handleRead(env, rootWorkspace)
	res, err := h(testCtx(testScope), mcp.CallToolRequest{}, ReadArgs{FilePath: "a.txt"})
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	want := "     1|a\n     2|bb\n     3|ccc\n"
	if res.Content != want {
		t.Fatalf("content = %q, want %q", res.Content, want)
	}
	if res.Lines != 3 || res.Advisory {
		t.Fatalf("lines=%d advisory=%v", res.Lines, res.Advisory)
	}
}

func TestReadWindow(t *testing.T) {
	env := newTestEnv(t)
	mustWrite(t, wsPath(env, "a.txt"), []byte("a\nbb\nccc\ndddd\n"), 0o644)

	h := handleRead(env, rootWorkspace)
	offset, limit := 2, 2
	res, err := h(testCtx(testScope), mcp.CallToolRequest{}, ReadArgs{Path: "a.txt", Offset: &offset, Limit: &limit})
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	want := "     2|bb\n     3|ccc\n"
	if res.Content != want {
		t.Fatalf("content = %q, want %q", res.Content, want)
	}

	// A limit past the end clamps instead of failing.
	offset, limit = 4, 10
	res, err = h(testCtx(testScope), mcp.CallToolRequest{}, ReadArgs{Path: "a.txt", Offset: &offset, Limit: &limit})
	if err != nil || res.Content != "     4|dddd\n" {
		t.Fatalf("tail read: %q err=%v", res.Content, err)
	}
}

func TestReadWindowErrors(t *testing.T) {
	env := newTestEnv(t)
	mustWrite(t, wsPath(env, "a.txt"), []byte("one\ntwo\n"), 0o644)
	h := handleRead(env, rootWorkspace)

	bad := 0
	if _, err := h(testCtx(testScope), mcp.CallToolRequest{}, ReadArgs{Path: "a.txt", Offset: &bad}); err == nil ||
		!strings.Contains(err.Error(), "offset must be >= 1") {
		t.Fatalf("zero offset: %v", err)
	}
	over := 3
	if _, err := h(testCtx(testScope), mcp.CallToolRequest{}, ReadArgs{Path: "a.txt", Offset: &over}); err == nil ||
		!strings.Contains(err.Error(), "file has 2 lines") {
		t.Fatalf("offset past end: %v", err)
	}
	one, zero := 1, 0
	if _, err := h(testCtx(testScope), mcp.CallToolRequest{}, ReadArgs{Path: "a.txt", Offset: &one, Limit: &zero}); err == nil ||
		!strings.Contains(err.Error(), "limit must be >= 1") {
		t.Fatalf("zero limit: %v", err)
	}
}

func TestReadEmptyFile(t *testing.T) {
	env := newTestEnv(t)
	mustWrite(t, wsPath(env, "empty.txt"), nil, 0o644)
	h := handleRead(env, rootWorkspace)
	res, err := h(testCtx(testScope), mcp.CallToolRequest{}, ReadArgs{Path: "empty.txt"})
	if err != nil || res.Content != "File is empty." {
		t.Fatalf("empty read: %q err=%v", res.Content, err)
	}
}

func TestReadLargeFileAdvisory(t *testing.T) {
	env := newTestEnv(t)
	var b strings.Builder
	for i := 0; i < defaultMaxReadLines+1; i++ {
		fmt.Fprintf(&b, "line %d\n", i)
	}
	mustWrite(t, wsPath(env, "big.txt"), []byte(b.String()), 0o644)
	h := handleRead(env, rootWorkspace)

	res, err := h(testCtx(testScope), mcp.CallToolRequest{}, ReadArgs{Path: "big.txt"})
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !res.Advisory {
		t.Fatalf("expected advisory for %d lines", defaultMaxReadLines+1)
	}
	if !strings.Contains(res.Content, "File is too large") ||
		!strings.Contains(res.Content, "bypass_limit=true") {
		t.Fatalf("advisory text: %q", res.Content)
	}
	if strings.Contains(res.Content, "line 0") {
		t.Fatalf("advisory leaked file content")
	}

	// bypass_limit returns the full numbered content.
	res, err = h(testCtx(testScope), mcp.CallToolRequest{}, ReadArgs{Path: "big.txt", BypassLimit: true})
	if err != nil || res.Advisory {
		t.Fatalf("bypass read: advisory=%v err=%v", res.Advisory, err)
	}
	if res.Lines != defaultMaxReadLines+1 {
		t.Fatalf("bypass lines = %d", res.Lines)
	}

	// A windowed read of a large file is not guarded.
	offset, limit := 1, 5
	res, err = h(testCtx(testScope), mcp.CallToolRequest{}, ReadArgs{Path: "big.txt", Offset: &offset, Limit: &limit})
	if err != nil || res.Advisory || res.Lines != 5 {
		t.Fatalf("windowed large read: lines=%d advisory=%v err=%v", res.Lines, res.Advisory, err)
	}
}

func TestReadAtGuardBoundary(t *testing.T) {
	env := newTestEnv(t)
	content := strings.Repeat("x\n", defaultMaxReadLines)
	mustWrite(t, wsPath(env, "edge.txt"), []byte(content), 0o644)
	h := handleRead(env, rootWorkspace)
	res, err := h(testCtx(testScope), mcp.CallToolRequest{}, ReadArgs{Path: "edge.txt"})
	if err != nil || res.Advisory {
		t.Fatalf("file at exactly the limit should read fully: advisory=%v err=%v", res.Advisory, err)
	}
}

func TestReadMissing(t *testing.T) {
	env := newTestEnv(t)
	h := handleRead(env, rootWorkspace)
	var nf *NotFoundError
	_, err := h(testCtx(testScope), mcp.CallToolRequest{}, ReadArgs{Path: "nope.txt"})
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if got := err.Error(); got != "File does not exist: nope.txt" {
		t.Fatalf("message: %q", got)
	}
}

func TestReadMissingParam(t *testing.T) {
	env := newTestEnv(t)
	h := handleRead(env, rootWorkspace)
	var mp *MissingParamError
	_, err := h(testCtx(testScope), mcp.CallToolRequest{}, ReadArgs{})
	if !errors.As(err, &mp) {
		t.Fatalf("expected MissingParamError, got %v", err)
	}
}

func TestReadExternalRoot(t *testing.T) {
	env := newTestEnv(t)
	mustWrite(t, extPath(env, "shared.txt"), []byte("ext\n"), 0o644)
	h := handleRead(env, rootExternal)
	res, err := h(testCtx(testScope), mcp.CallToolRequest{}, ReadArgs{Path: "shared.txt"})
	if err != nil || res.Content != "     1|ext\n" {
		t.Fatalf("external read: %q err=%v", res.Content, err)
	}
}
