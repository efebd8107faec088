package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func mustAbs(p string) string {
	ap, err := filepath.Abs(p)
	if err != nil {
		panic(err)
	}
	return ap
}

func ensureParent(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}

// syncWrite writes data and forces it to stable storage before returning,
// so the result message is only produced once the bytes are durable.
func syncWrite(target string, data []byte) error {
	f, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// splitLines splits content into logical lines. A trailing newline does not
// produce a phantom empty line, and an empty file has no lines at all.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	content = strings.ReplaceAll(content, "\r\n", "\n")
	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// formatFileSize renders a byte count in binary units with one decimal
// place once the value reaches a kibibyte.
func formatFileSize(size int64) string {
	if size < 1024 {
		return fmt.Sprintf("%d B", size)
	}
	if size < 1024*1024 {
		return fmt.Sprintf("%.1f KB", float64(size)/1024.0)
	}
	if size < 1024*1024*1024 {
		return fmt.Sprintf("%.1f MB", float64(size)/(1024.0*1024))
	}
	return fmt.Sprintf("%.1f GB", float64(size)/(1024.0*1024*1024))
}

// splitBaseExt splits a path into base and extension, keeping the dot on the
// extension. Only the final path segment is inspected, and dotfiles or
// extensionless names keep everything in base.
func splitBaseExt(name string) (base, ext string) {
	seg := strings.LastIndexAny(name, "/\\")
	i := strings.LastIndexByte(name, '.')
	if i <= seg+1 {
		return name, ""
	}
	return name[:i], name[i:]
}
