package vcs

import (
	"fmt"
	"strings"
)

// Git drives a git working tree.
type Git struct {
	dir string
	run Runner
}

// NewGit creates a git collaborator rooted at dir.
func NewGit(dir string, run Runner) *Git {
	return &Git{dir: dir, run: run}
}

// Name implements VCS.
func (g *Git) Name() string { return "git" }

func (g *Git) git(args ...string) (string, error) {
	out, err := g.run(g.dir, "git", args...)
	if err != nil {
		return "", fmt.Errorf("%w: git %s: %v", ErrUnavailable, args[0], err)
	}
	return out, nil
}

// Manifest implements VCS via `git ls-files`.
func (g *Git) Manifest() ([]string, error) {
	out, err := g.git("ls-files")
	if err != nil {
		return nil, err
	}
	return splitLines(out), nil
}

// Changed implements VCS by parsing `git status --porcelain` for modified
// and added entries. Untracked files are not part of the change set.
func (g *Git) Changed() ([]string, error) {
	out, err := g.git("status", "--porcelain")
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, line := range strings.Split(out, "\n") {
		if len(line) < 4 {
			continue
		}
		code := line[:2]
		if code == "??" || code == "!!" {
			continue
		}
		if !strings.ContainsAny(code, "MAR") {
			continue
		}
		path := line[3:]
		// Renames report "old -> new"; the new path is the candidate.
		if idx := strings.Index(path, " -> "); idx >= 0 {
			path = path[idx+4:]
		}
		paths = append(paths, unquotePath(path))
	}
	return dedup(paths), nil
}

// PatchQueue implements VCS. Git has no applied-patch stack.
func (g *Git) PatchQueue() ([]string, error) {
	return nil, fmt.Errorf("%w: git has no patch queue", ErrUnavailable)
}

// Outgoing implements VCS: files named by commits not yet pushed upstream.
// Falls back to everything not reachable from any remote when no upstream
// is configured.
func (g *Git) Outgoing() ([]string, error) {
	out, err := g.git("log", "--name-only", "--format=", "@{upstream}..HEAD")
	if err != nil {
		out, err = g.git("log", "--name-only", "--format=", "HEAD", "--not", "--remotes")
		if err != nil {
			return nil, err
		}
	}
	return splitLines(out), nil
}

// Revisions implements VCS via `git log --name-only <spec>`.
func (g *Git) Revisions(spec string) ([]string, error) {
	out, err := g.git("log", "--name-only", "--format=", spec)
	if err != nil {
		return nil, err
	}
	return splitLines(out), nil
}

// unquotePath strips the C-style quoting git applies to unusual paths.
// Escaped bytes inside are left as-is; such paths never match the checked
// extension sets anyway.
func unquotePath(path string) string {
	if len(path) >= 2 && path[0] == '"' && path[len(path)-1] == '"' {
		return path[1 : len(path)-1]
	}
	return path
}

func dedup(paths []string) []string {
	seen := make(map[string]struct{}, len(paths))
	var out []string
	for _, p := range paths {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
