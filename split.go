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

func formatSplitResult(r SplitResult) string {
	return r.Text
}

// handleSplit divides a file into N pieces of near-equal line counts. With L
// lines and N pieces the first L%N pieces get one extra line; pieces that
// would receive zero lines (N > L) are skipped rather than written empty.
func handleSplit(env *toolEnv, kind rootKind) mcp.StructuredToolHandlerFunc[SplitArgs, SplitResult] {
	return func(ctx context.Context, req mcp.CallToolRequest, args SplitArgs) (SplitResult, error) {
		start := time.Now()
		dprintf("%s -> %s split path=%q count=%v", scopeContext(ctx), kind, args.FilePath, args.SplitCount)
		var res SplitResult
		octx := opContextFrom(ctx)
		target := octx.expand(args.FilePath)
		if target == "" {
			return res, &MissingParamError{Param: "file_path"}
		}
		pieces := 10
		if args.SplitCount != nil {
			pieces = *args.SplitCount
		}
		if pieces < 1 {
			return res, errors.New("split_count must be positive")
		}
		full, err := validateScopedPath(octx, env.resolver, target, kind)
		if err != nil {
			dprintf("split error: %v", err)
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
			dprintf("split error: %v", err)
			return res, fmt.Errorf("reading file: %w", err)
		}
		lines := splitLines(string(data))
		if len(lines) == 0 {
			return res, fmt.Errorf("file is empty, nothing to split: %s", target)
		}

		base, ext := splitBaseExt(filepath.Base(target))
		dir := filepath.Dir(full)
		perPiece := len(lines) / pieces
		remainder := len(lines) % pieces
		header := strings.TrimSpace(octx.expand(args.Header))

		var written []string
		cursor := 0
		for idx := 0; idx < pieces; idx++ {
			size := perPiece
			if idx < remainder {
				size++
			}
			if size == 0 {
				continue
			}
			var b strings.Builder
			if header != "" {
				b.WriteString(header + "\n")
			}
			for j := 0; j < size; j++ {
				b.WriteString(lines[cursor+j])
				// Every line keeps its newline except the file's last.
				if cursor+j < len(lines)-1 || j < size-1 {
					b.WriteString("\n")
				}
			}
			cursor += size
			pieceName := fmt.Sprintf("%d-%s%s", idx, base, ext)
			if err := syncWrite(filepath.Join(dir, pieceName), []byte(b.String())); err != nil {
				dprintf("split write error: %v", err)
				return res, fmt.Errorf("writing piece %s: %w", pieceName, err)
			}
			written = append(written, pieceName)
		}

		sep := strings.Repeat("=", 60)
		var b strings.Builder
		fmt.Fprintf(&b, "Successfully split file '%s' into %d pieces:\n", filepath.Base(target), len(written))
		b.WriteString(sep + "\n")
		for _, p := range written {
			fmt.Fprintf(&b, "  - %s\n", p)
		}
		fmt.Fprintf(&b, "\nTotal lines in original file: %d\n", len(lines))
		fmt.Fprintf(&b, "Lines per piece: approximately %d\n", perPiece)
		if header != "" {
			b.WriteString("Header added to each split file\n")
		}

		res = SplitResult{Path: target, Pieces: written, Lines: len(lines), Text: b.String()}
		dprintf("<- split ok pieces=%d dur=%s", len(written), time.Since(start))
		return res, nil
	}
}
