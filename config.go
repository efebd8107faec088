package main

import (
	"flag"
	"os"
	"strings"
)

// Environment keys. Flags take precedence; the keys double as the
// remediation hints carried by ConfigError.
const (
	envWorkspaceBase = "PLANFS_WORKSPACE"
	envExternalRoot  = "PLANFS_EXTERNAL_ROOT"
	envLang          = "PLANFS_LANG"
	envShortURLs     = "PLANFS_SHORT_URLS"
	envExtraTypes    = "PLANFS_EXTRA_TYPES"
)

// defaultMaxReadLines caps unbounded reads; larger files come back as an
// advisory instead of content unless the caller bypasses the guard.
const defaultMaxReadLines = 300

var workspaceFlag = flag.String("workspace", "", "base folder holding per-scope workspace roots (defaults to $"+envWorkspaceBase+")")
var externalRootFlag = flag.String("external-root", "", "shared external linked folder (defaults to $"+envExternalRoot+")")
var scopeFlag = flag.String("scope", "", "initial scope id; a random one is generated when empty")
var debugFlag = flag.String("debug", "", "write debug logs to this file")
var structuredFlag = flag.Bool("structured", false, "return tool results as JSON instead of plain text")
var langFlag = flag.String("lang", "", "tool description language (defaults to $"+envLang+" or en)")
var shortURLsFlag = flag.String("short-urls", "", "YAML file of short URL mappings (defaults to $"+envShortURLs+")")
var extraTypesFlag = flag.String("extra-types", "", "comma-separated extra file extensions to allow (defaults to $"+envExtraTypes+")")

type serverConfig struct {
	WorkspaceBase string
	ExternalRoot  string
	Scope         string
	DebugPath     string
	Structured    bool
	Lang          string
	ShortURLFile  string
	ExtraTypes    []string
}

func firstNonEmpty(flagVal, envKey string) string {
	if flagVal != "" {
		return flagVal
	}
	return os.Getenv(envKey)
}

// loadConfig assembles configuration from flags and environment. Unset roots
// are not an error here; the resolver reports a ConfigError at call time so
// the client gets a remediation hint instead of a dead server.
func loadConfig() serverConfig {
	cfg := serverConfig{
		WorkspaceBase: firstNonEmpty(*workspaceFlag, envWorkspaceBase),
		ExternalRoot:  firstNonEmpty(*externalRootFlag, envExternalRoot),
		Scope:         *scopeFlag,
		DebugPath:     *debugFlag,
		Structured:    *structuredFlag,
		Lang:          firstNonEmpty(*langFlag, envLang),
		ShortURLFile:  firstNonEmpty(*shortURLsFlag, envShortURLs),
	}
	if cfg.WorkspaceBase != "" {
		cfg.WorkspaceBase = mustAbs(cfg.WorkspaceBase)
	}
	if cfg.ExternalRoot != "" {
		cfg.ExternalRoot = mustAbs(cfg.ExternalRoot)
	}
	if cfg.Lang == "" {
		cfg.Lang = "en"
	}
	if raw := firstNonEmpty(*extraTypesFlag, envExtraTypes); raw != "" {
		for _, e := range strings.Split(raw, ",") {
			if e = strings.TrimSpace(e); e != "" {
				cfg.ExtraTypes = append(cfg.ExtraTypes, e)
			}
		}
	}
	return cfg
}

// toolEnv bundles what every file operation needs: the path resolver and the
// read guard threshold.
type toolEnv struct {
	resolver     *Resolver
	maxReadLines int
}

func newToolEnv(cfg serverConfig) *toolEnv {
	return &toolEnv{
		resolver:     &Resolver{workspaceBase: cfg.WorkspaceBase, externalRoot: cfg.ExternalRoot},
		maxReadLines: defaultMaxReadLines,
	}
}
