package vcs

import (
	"os"
	"path/filepath"

	wserrors "github.com/nathan8299/wscheck/internal/errors"
)

// Detect picks the collaborator for dir: a .hg directory selects Mercurial,
// otherwise a successful `git rev-parse` selects git. force ("hg" or "git",
// usually from project config) skips detection.
func Detect(dir, force string, run Runner) (VCS, error) {
	switch force {
	case "hg":
		return NewHg(dir, run), nil
	case "git":
		return NewGit(dir, run), nil
	case "":
	default:
		return nil, wserrors.Configf("unknown vcs %q (expected hg or git)", force)
	}

	if info, err := os.Stat(filepath.Join(dir, ".hg")); err == nil && info.IsDir() {
		return NewHg(dir, run), nil
	}
	if _, err := run(dir, "git", "rev-parse", "--git-dir"); err == nil {
		return NewGit(dir, run), nil
	}
	return nil, wserrors.Environment("no Mercurial or git working copy found")
}
