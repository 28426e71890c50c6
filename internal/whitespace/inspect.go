package whitespace

import (
	"bytes"
	"os"
	"strings"

	wserrors "github.com/nathan8299/wscheck/internal/errors"
)

// Status is the set of issues found in a single file.
type Status uint8

const (
	// StatusExecutable marks a file with an executable permission bit set.
	StatusExecutable Status = 1 << iota
	// StatusTabs marks a file containing tab bytes.
	StatusTabs
	// StatusTrailing marks a file with a blank run before a line terminator.
	StatusTrailing
	// StatusDOS marks a file containing carriage-return bytes.
	StatusDOS
)

// Clean reports whether no issue was found.
func (s Status) Clean() bool {
	return s == 0
}

// Label renders the status in the fixed reporting format: exactly ":" for a
// clean file, otherwise the triggered names in order, each suffixed with ":".
func (s Status) Label() string {
	if s.Clean() {
		return ":"
	}
	var b strings.Builder
	if s&StatusExecutable != 0 {
		b.WriteString("executable:")
	}
	if s&StatusTabs != 0 {
		b.WriteString("tabs:")
	}
	if s&StatusTrailing != 0 {
		b.WriteString("trailingWhitespace:")
	}
	if s&StatusDOS != 0 {
		b.WriteString("DOS:")
	}
	return b.String()
}

// execMask covers the executable bits for all principals.
const execMask = 0o111

// Inspect examines a single file without mutating it and returns the set of
// issues found. The executable check applies regardless of extension; the
// content checks run only for matching extensions.
func Inspect(path string, opts Options) (Status, error) {
	var status Status

	info, err := os.Stat(path)
	if err != nil {
		return 0, wserrors.PathError(path, "cannot stat file", err)
	}
	if opts.CheckExec && info.Mode().Perm()&execMask != 0 {
		status |= StatusExecutable
	}

	if !opts.matches(path) {
		return status, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return 0, wserrors.PathError(path, "cannot read file", err)
	}

	// Cheap combined test first; the per-condition re-tests run only when
	// something triggered.
	if !hasContentIssue(data) {
		return status, nil
	}
	if bytes.IndexByte(data, '\t') >= 0 {
		status |= StatusTabs
	}
	if hasTrailingBlank(data) {
		status |= StatusTrailing
	}
	if bytes.IndexByte(data, '\r') >= 0 {
		status |= StatusDOS
	}
	return status, nil
}

// hasContentIssue reports whether data contains a tab byte, a carriage
// return, or a blank run immediately preceding a line terminator or EOF.
func hasContentIssue(data []byte) bool {
	for i, b := range data {
		switch b {
		case '\t', '\r':
			return true
		case ' ':
			if i+1 == len(data) || data[i+1] == '\n' || data[i+1] == '\r' {
				return true
			}
		}
	}
	return false
}

// hasTrailingBlank reports whether data contains a space or tab immediately
// before a line terminator or at end of file. Blank means space or tab
// only, never other whitespace.
func hasTrailingBlank(data []byte) bool {
	for i, b := range data {
		if b != ' ' && b != '\t' {
			continue
		}
		if i+1 == len(data) || data[i+1] == '\n' || data[i+1] == '\r' {
			return true
		}
	}
	return false
}
