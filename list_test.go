package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
)

func TestListDirectory(t *testing.T) {
	env := newTestEnv(t)
	mustWrite(t, wsPath(env, "docs/a.txt"), []byte("12345"), 0o644)
	mustWrite(t, wsPath(env, "docs/sub/inner.txt"), []byte("x"), 0o644)
	mustWrite(t, wsPath(env, "docs/big.log"), make([]byte, 2048), 0o644)
	h := handleList(env, rootWorkspace)

	res, err := h(testCtx(testScope), mcp.CallToolRequest{}, ListArgs{Path: "docs"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if res.Entries != 3 {
		t.Fatalf("entries = %d", res.Entries)
	}
	lines := strings.Split(res.Text, "\n")
	want := []string{
		"Files: ",
		"docs",
		"[FILE] a.txt (5 B)",
		"[FILE] big.log (2.0 KB)",
		"[DIR] sub/",
	}
	if len(lines) != len(want) {
		t.Fatalf("lines = %q", lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestListEmptyDirectory(t *testing.T) {
	env := newTestEnv(t)
	h := handleList(env, rootWorkspace)
	// Listing the workspace root creates it on demand; a fresh scope
	// starts out empty.
	res, err := h(testCtx(testScope), mcp.CallToolRequest{}, ListArgs{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if res.Text != "Files: \n(empty directory)" || res.Entries != 0 {
		t.Fatalf("empty listing: %q entries=%d", res.Text, res.Entries)
	}
}

func TestListRootOmitsPathLine(t *testing.T) {
	env := newTestEnv(t)
	mustWrite(t, wsPath(env, "a.txt"), []byte("x"), 0o644)
	h := handleList(env, rootWorkspace)
	res, err := h(testCtx(testScope), mcp.CallToolRequest{}, ListArgs{Path: "/"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if res.Text != "Files: \n[FILE] a.txt (1 B)" {
		t.Fatalf("root listing: %q", res.Text)
	}
}

func TestListMissingDirectory(t *testing.T) {
	env := newTestEnv(t)
	h := handleList(env, rootWorkspace)
	var nf *NotFoundError
	_, err := h(testCtx(testScope), mcp.CallToolRequest{}, ListArgs{Path: "nope/"})
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if err.Error() != "Directory does not exist: nope/" {
		t.Fatalf("message: %q", err.Error())
	}
}

func TestListFileIsNotADirectory(t *testing.T) {
	env := newTestEnv(t)
	mustWrite(t, wsPath(env, "plain.txt"), []byte("x"), 0o644)
	h := handleList(env, rootWorkspace)
	_, err := h(testCtx(testScope), mcp.CallToolRequest{}, ListArgs{Path: "plain.txt"})
	if err == nil || !strings.Contains(err.Error(), "not a directory") {
		t.Fatalf("expected not-a-directory error, got %v", err)
	}
}
