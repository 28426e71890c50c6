// Package runner drives the per-file checks and fixes over a candidate
// path sequence.
package runner

import (
	wserrors "github.com/nathan8299/wscheck/internal/errors"
	"github.com/nathan8299/wscheck/internal/output"
	"github.com/nathan8299/wscheck/internal/vcs"
	"github.com/nathan8299/wscheck/internal/whitespace"
)

// Mode selects what the driver does per path.
type Mode int

const (
	// Check reports violations without touching files.
	Check Mode = iota
	// Fix repairs violations in place.
	Fix
)

// Runner consumes a path sequence and applies the selected mode to every
// file, strictly sequentially. It owns the failure counter.
type Runner struct {
	out  *output.Writer
	opts whitespace.Options
	mode Mode
}

// New creates a Runner.
func New(out *output.Writer, opts whitespace.Options, mode Mode) *Runner {
	return &Runner{out: out, opts: opts, mode: mode}
}

// Run processes every path from src and returns the number of paths that
// were flagged or fixed. A fatal error from the fixer aborts immediately;
// any other per-file error is reported, counted, and skipped.
func (r *Runner) Run(src vcs.Source) (int, error) {
	count := 0
	for {
		path, ok := src.Next()
		if !ok {
			break
		}
		failed, err := r.process(path)
		if err != nil {
			if wserrors.IsFatal(err) {
				return count, err
			}
			r.out.Warning("%v", err)
			count++
			continue
		}
		if failed {
			count++
		}
	}
	if err := src.Err(); err != nil {
		return count, wserrors.Wrap(err, "reading file list")
	}
	return count, nil
}

func (r *Runner) process(path string) (bool, error) {
	if r.mode == Fix {
		return r.fix(path)
	}
	return r.check(path)
}

func (r *Runner) check(path string) (bool, error) {
	status, err := whitespace.Inspect(path, r.opts)
	if err != nil {
		return false, err
	}
	if status.Clean() {
		r.out.Info("%s :OK", path)
		return false, nil
	}
	r.out.Println("%s %s", path, status.Label())
	return true, nil
}

func (r *Runner) fix(path string) (bool, error) {
	outcome, err := whitespace.Fix(path, r.opts)
	if err != nil {
		return false, err
	}
	if outcome.ExecCorrected {
		r.out.Println("%s: execute corrected", path)
	}
	if outcome.ContentFixed {
		r.out.Println("%s: fixed", path)
	}
	if !outcome.Fixed() {
		r.out.Info("%s: no change", path)
	}
	return outcome.Fixed(), nil
}
