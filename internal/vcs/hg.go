package vcs

import "fmt"

// fileTemplate renders one touched file per line for hg log queries.
const fileTemplate = "{files % '{file}\\n'}"

// Hg drives a Mercurial working copy.
type Hg struct {
	dir string
	run Runner
}

// NewHg creates a Mercurial collaborator rooted at dir.
func NewHg(dir string, run Runner) *Hg {
	return &Hg{dir: dir, run: run}
}

// Name implements VCS.
func (h *Hg) Name() string { return "hg" }

func (h *Hg) hg(args ...string) ([]string, error) {
	out, err := h.run(h.dir, "hg", args...)
	if err != nil {
		return nil, fmt.Errorf("%w: hg %s: %v", ErrUnavailable, args[0], err)
	}
	return splitLines(out), nil
}

// Manifest implements VCS via `hg manifest`.
func (h *Hg) Manifest() ([]string, error) {
	return h.hg("manifest")
}

// Changed implements VCS via `hg status -m -a -n`.
func (h *Hg) Changed() ([]string, error) {
	return h.hg("status", "-m", "-a", "-n")
}

// PatchQueue implements VCS. The queue exists when `hg qapplied` succeeds
// and reports at least one patch; the touched files are everything changed
// since the queue parent.
func (h *Hg) PatchQueue() ([]string, error) {
	applied, err := h.hg("qapplied")
	if err != nil {
		return nil, err
	}
	if len(applied) == 0 {
		return nil, fmt.Errorf("%w: no patches applied", ErrUnavailable)
	}
	return h.hg("status", "--rev", "qparent", "-m", "-a", "-n")
}

// Outgoing implements VCS by logging the outgoing() revset.
func (h *Hg) Outgoing() ([]string, error) {
	return h.hg("log", "-r", "outgoing()", "--template", fileTemplate)
}

// Revisions implements VCS via `hg log -r <spec>`.
func (h *Hg) Revisions(spec string) ([]string, error) {
	return h.hg("log", "-r", spec, "--template", fileTemplate)
}
