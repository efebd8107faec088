package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"
)

func main() {
	_ = godotenv.Load(".env")
	flag.Parse()
	cfg := loadConfig()
	initDebug(cfg.DebugPath)

	release, err := ensureSingleInstance()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to claim pid file: %v\n", err)
		os.Exit(1)
	}
	defer release()

	catalog, err := loadDescriptions(cfg.Lang)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load tool descriptions: %v\n", err)
		os.Exit(1)
	}
	expand, err := loadShortURLs(cfg.ShortURLFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load short URL mappings: %v\n", err)
		os.Exit(1)
	}

	initialScope := cfg.Scope
	if initialScope == "" {
		initialScope = uuid.NewString()
	}
	mgr := newScopeManager(initialScope)
	dprintf("server start workspace=%q external=%q scope=%s structured=%v lang=%s",
		cfg.WorkspaceBase, cfg.ExternalRoot, initialScope, cfg.Structured, cfg.Lang)

	env := newToolEnv(cfg)
	s := setupServer(cfg, env, catalog, expand)

	stdioOpt := server.WithStdioContextFunc(func(ctx context.Context) context.Context {
		return withScopeManager(ctx, mgr)
	})
	if err := server.ServeStdio(s, stdioOpt); err != nil {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		dprintf("server error: %v", err)
		os.Exit(1)
	}
}
