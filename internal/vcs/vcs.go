// Package vcs resolves the candidate file set from a version-control
// system. The VCS is an external collaborator: every query shells out to
// the hg or git binary and consumes one path per output line.
package vcs

import (
	"errors"
	"os/exec"
	"strings"
)

// ErrUnavailable marks a file source that cannot be produced by the current
// collaborator (command failed, no patch queue, no upstream). The resolver
// falls through to the next source instead of failing the run.
var ErrUnavailable = errors.New("file source unavailable")

// VCS is the narrow collaborator interface the rest of the program sees:
// given a mode and optional revision spec, produce path strings.
type VCS interface {
	// Manifest lists all tracked files.
	Manifest() ([]string, error)
	// Changed lists uncommitted modified and added files.
	Changed() ([]string, error)
	// PatchQueue lists files touched by the applied patch stack.
	PatchQueue() ([]string, error)
	// Outgoing lists files touched by unpushed changesets.
	Outgoing() ([]string, error)
	// Revisions lists files touched by the given revision range.
	Revisions(spec string) ([]string, error)
	// Name identifies the collaborator ("hg" or "git").
	Name() string
}

// Runner executes an external command in a directory and returns its
// trimmed stdout. Pluggable so tests can substitute a fake collaborator.
type Runner func(dir, name string, args ...string) (string, error)

// ExecRunner runs the command via os/exec and returns stdout with the
// trailing newline removed.
func ExecRunner(dir, name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	return strings.TrimRight(string(out), "\n"), err
}

// splitLines splits command output into non-empty lines, deduplicated while
// preserving first-seen order.
func splitLines(out string) []string {
	if out == "" {
		return nil
	}
	seen := make(map[string]struct{})
	var paths []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		paths = append(paths, line)
	}
	return paths
}
