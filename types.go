package main

// ReadArgs selects a line window from a text file. Accepts the path under
// either parameter name.
type ReadArgs struct {
	FilePath    string `json:"file_path,omitempty"`
	Path        string `json:"path,omitempty"`
	Offset      *int   `json:"offset,omitempty"`       // 1-based first line
	Limit       *int   `json:"limit,omitempty"`        // number of lines
	BypassLimit bool   `json:"bypass_limit,omitempty"` // allow full reads past the guard
}

func (a ReadArgs) target() string {
	if a.Path != "" {
		return a.Path
	}
	return a.FilePath
}

// ReadResult carries the rendered line window, an empty-file notice, or the
// oversized-file advisory.
type ReadResult struct {
	Path     string `json:"path"`
	Lines    int    `json:"lines"`
	Advisory bool   `json:"advisory,omitempty"`
	Content  string `json:"content"`
}

type WriteArgs struct {
	FilePath string  `json:"file_path,omitempty"`
	Contents *string `json:"contents,omitempty"` // required; empty string is a valid value
}

type WriteResult struct {
	Path    string `json:"path"`
	Created bool   `json:"created"`
	Bytes   int    `json:"bytes"`
	Message string `json:"message"`
}

type ReplaceArgs struct {
	FilePath  string  `json:"file_path,omitempty"`
	OldString *string `json:"old_string,omitempty"`
	NewString *string `json:"new_string,omitempty"`
}

type ReplaceResult struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

type DeleteArgs struct {
	FilePath string `json:"file_path,omitempty"`
}

type DeleteResult struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// ListArgs names a directory under the sandbox root; empty means the root
// itself. Accepts the path under either parameter name.
type ListArgs struct {
	Path     string `json:"path,omitempty"`
	FilePath string `json:"file_path,omitempty"`
}

func (a ListArgs) target() string {
	if a.Path != "" {
		return a.Path
	}
	return a.FilePath
}

type ListResult struct {
	Path    string `json:"path"`
	Entries int    `json:"entries"`
	Text    string `json:"text"`
}

type CountArgs struct {
	FilePath string `json:"file_path,omitempty"`
}

type CountResult struct {
	Path       string `json:"path"`
	Lines      int    `json:"lines"`
	Bytes      int64  `json:"bytes"`
	Characters int    `json:"characters"` // excluding line terminators
	Words      int    `json:"words"`
	Text       string `json:"text"`
}

type SplitArgs struct {
	FilePath   string `json:"file_path,omitempty"`
	Header     string `json:"header,omitempty"`
	SplitCount *int   `json:"split_count,omitempty"`
}

type SplitResult struct {
	Path   string   `json:"path"`
	Pieces []string `json:"pieces"`
	Lines  int      `json:"lines"`
	Text   string   `json:"text"`
}

type ScopeCreateArgs struct {
	ID string `json:"id,omitempty"`
}

type ScopeCreateResult struct {
	ID string `json:"id"`
}

type ScopeSwitchArgs struct {
	ID string `json:"id,omitempty"`
}

type ScopeSwitchResult struct {
	ID string `json:"id"`
}

type ScopeListResult struct {
	Scopes []string `json:"scopes"`
	Active string   `json:"active"`
}
