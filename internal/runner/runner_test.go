package runner

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	wserrors "github.com/nathan8299/wscheck/internal/errors"
	"github.com/nathan8299/wscheck/internal/output"
	"github.com/nathan8299/wscheck/internal/vcs"
	"github.com/nathan8299/wscheck/internal/whitespace"
)

// pathSource adapts a path slice to vcs.Source for driver tests.
type pathSource struct {
	paths []string
	pos   int
}

func (s *pathSource) Next() (string, bool) {
	if s.pos >= len(s.paths) {
		return "", false
	}
	p := s.paths[s.pos]
	s.pos++
	return p, true
}

func (s *pathSource) Err() error           { return nil }
func (s *pathSource) Kind() vcs.SourceKind { return vcs.KindStdin }

func writeFile(t *testing.T, dir, name string, content []byte, perm os.FileMode) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, perm); err != nil {
		t.Fatal(err)
	}
	return path
}

func newTestRunner(mode Mode, opts whitespace.Options) (*Runner, *bytes.Buffer, *bytes.Buffer) {
	var out, errBuf bytes.Buffer
	w := output.NewWithWriters(&out, &errBuf, false)
	return New(w, opts, mode), &out, &errBuf
}

func TestRun_CheckCountsDirtyFiles(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	dirty := writeFile(t, dir, "dirty.h", []byte("x\t\n"), 0o644)
	clean := writeFile(t, dir, "clean.cpp", []byte("int x;\n"), 0o644)

	r, out, _ := newTestRunner(Check, whitespace.Options{})
	count, err := r.Run(&pathSource{paths: []string{dirty, clean}})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
	if !strings.Contains(out.String(), "dirty.h tabs:") {
		t.Errorf("output = %q, want dirty.h flagged", out.String())
	}
	if strings.Contains(out.String(), "clean.cpp") {
		t.Errorf("output = %q, clean file should be silent", out.String())
	}
}

func TestRun_CheckVerbosePrintsOK(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	clean := writeFile(t, dir, "clean.c", []byte("int x;\n"), 0o644)

	var out, errBuf bytes.Buffer
	w := output.NewWithWriters(&out, &errBuf, false)
	w.SetVerbosity(output.Verbose)
	r := New(w, whitespace.Options{}, Check)

	count, err := r.Run(&pathSource{paths: []string{clean}})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if count != 0 {
		t.Errorf("count = %d, want 0", count)
	}
	if !strings.Contains(out.String(), "clean.c :OK") {
		t.Errorf("output = %q, want :OK line", out.String())
	}
}

func TestRun_FixRewritesAndCounts(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := writeFile(t, dir, "a.c", []byte("a\tb \r\n"), 0o644)

	r, out, _ := newTestRunner(Fix, whitespace.Options{})
	count, err := r.Run(&pathSource{paths: []string{path}})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
	if !strings.Contains(out.String(), "a.c: fixed") {
		t.Errorf("output = %q, want fixed line", out.String())
	}
	got, _ := os.ReadFile(path)
	if string(got) != "a   b\n" {
		t.Errorf("content = %q, want %q", got, "a   b\n")
	}
}

func TestRun_FixCountsOncePerPath(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	// Executable and content-dirty: two corrections, one unit of credit.
	path := writeFile(t, dir, "a.c", []byte("x\t\n"), 0o755)

	r, out, _ := newTestRunner(Fix, whitespace.Options{CheckExec: true})
	count, err := r.Run(&pathSource{paths: []string{path}})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
	if !strings.Contains(out.String(), "a.c: execute corrected") {
		t.Errorf("output = %q, want execute corrected", out.String())
	}
	if !strings.Contains(out.String(), "a.c: fixed") {
		t.Errorf("output = %q, want fixed", out.String())
	}
}

func TestRun_FixVerboseNoChange(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := writeFile(t, dir, "a.c", []byte("int x;\n"), 0o644)

	var out, errBuf bytes.Buffer
	w := output.NewWithWriters(&out, &errBuf, false)
	w.SetVerbosity(output.Verbose)
	r := New(w, whitespace.Options{}, Fix)

	count, err := r.Run(&pathSource{paths: []string{path}})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if count != 0 {
		t.Errorf("count = %d, want 0", count)
	}
	if !strings.Contains(out.String(), "a.c: no change") {
		t.Errorf("output = %q, want no change line", out.String())
	}
}

func TestRun_MissingFileCountsAndContinues(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	missing := filepath.Join(dir, "gone.c")
	dirty := writeFile(t, dir, "dirty.c", []byte("x \n"), 0o644)

	r, _, errBuf := newTestRunner(Check, whitespace.Options{})
	count, err := r.Run(&pathSource{paths: []string{missing, dirty}})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
	if !strings.Contains(errBuf.String(), "warning:") {
		t.Errorf("stderr = %q, want warning", errBuf.String())
	}
}

func TestRun_FatalAbortsBatch(t *testing.T) {
	t.Parallel()
	if os.Geteuid() == 0 {
		t.Skip("read-only directories are not enforced for root")
	}
	dir := t.TempDir()
	sub := filepath.Join(dir, "ro")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	blocked := writeFile(t, sub, "a.c", []byte("x\t\n"), 0o644)
	never := writeFile(t, dir, "later.c", []byte("y\t\n"), 0o644)
	if err := os.Chmod(sub, 0o555); err != nil {
		t.Fatal(err)
	}
	defer os.Chmod(sub, 0o755)

	r, _, _ := newTestRunner(Fix, whitespace.Options{})
	_, err := r.Run(&pathSource{paths: []string{blocked, never}})
	if err == nil {
		t.Fatal("expected fatal error")
	}
	if !wserrors.IsFatal(err) {
		t.Errorf("IsFatal(err) = false for %v", err)
	}
	// The batch stopped before the second file.
	got, _ := os.ReadFile(never)
	if string(got) != "y\t\n" {
		t.Error("file after the fatal error was modified")
	}
}

func TestRun_EmptySource(t *testing.T) {
	t.Parallel()
	r, out, _ := newTestRunner(Check, whitespace.Options{})
	count, err := r.Run(&pathSource{})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if count != 0 {
		t.Errorf("count = %d, want 0", count)
	}
	if out.Len() != 0 {
		t.Errorf("output = %q, want empty", out.String())
	}
}
