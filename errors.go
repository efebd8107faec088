package main

import (
	"errors"
	"fmt"
)

// ConfigError reports a sandbox root (or the scope id that selects one)
// that has not been configured. It is a call-time failure, never a crash.
type ConfigError struct {
	Key string // configuration key the caller must set
	Msg string
}

func (e *ConfigError) Error() string { return e.Msg }

// MissingParamError reports a required request parameter that was absent.
type MissingParamError struct {
	Param string
}

func (e *MissingParamError) Error() string {
	return fmt.Sprintf("%s parameter is required", e.Param)
}

// AccessError reports a path rejected by the sandbox boundary,
// either because it escapes its root or because the file type is not allowed.
type AccessError struct {
	Path   string
	Reason string
}

func (e *AccessError) Error() string {
	if e.Path == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Reason, e.Path)
}

// NotFoundError reports a missing file or directory.
type NotFoundError struct {
	Kind string // "File" or "Directory"
	Path string
}

func (e *NotFoundError) Error() string {
	kind := e.Kind
	if kind == "" {
		kind = "File"
	}
	return fmt.Sprintf("%s does not exist: %s", kind, e.Path)
}

// AmbiguousError reports a replace target that matched more than once.
type AmbiguousError struct {
	Count int
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("old_string is not unique (found %d occurrences). "+
		"Please provide a larger string with more surrounding context to make it unique, "+
		"or use a more specific match.", e.Count)
}

func errUnsupportedType() error {
	return &AccessError{Reason: "Unsupported file type. Only text-based files are supported"}
}

func errOutsideRoot(path string) error {
	return &AccessError{Path: path, Reason: "Access denied: path is outside the sandbox"}
}

// errorText renders any handler failure as the textual payload sent back to
// the agent. Raw filesystem faults never cross this boundary unwrapped, and
// ConfigError always carries its remediation hint no matter which operation
// tripped it.
func errorText(err error) string {
	var cfg *ConfigError
	if errors.As(err, &cfg) {
		return fmt.Sprintf("Error: %s. Please configure '%s' in server settings before using these file tools.",
			cfg.Msg, cfg.Key)
	}
	return "Error: " + err.Error()
}
