package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrintln_GoesToStdout(t *testing.T) {
	t.Parallel()
	var out, errBuf bytes.Buffer
	w := NewWithWriters(&out, &errBuf, false)
	w.Println("src/a.c tabs:")
	if out.String() != "src/a.c tabs:\n" {
		t.Errorf("stdout = %q", out.String())
	}
	if errBuf.Len() != 0 {
		t.Errorf("stderr = %q, want empty", errBuf.String())
	}
}

func TestInfo_SkippedAtNormalVerbosity(t *testing.T) {
	t.Parallel()
	var out, errBuf bytes.Buffer
	w := NewWithWriters(&out, &errBuf, false)
	w.Info("src/a.c :OK")
	if out.Len() != 0 {
		t.Errorf("stdout = %q, want empty", out.String())
	}
	w.SetVerbosity(Verbose)
	w.Info("src/a.c :OK")
	if out.String() != "src/a.c :OK\n" {
		t.Errorf("stdout = %q", out.String())
	}
}

func TestDebug_OnlyAtDebugVerbosity(t *testing.T) {
	t.Parallel()
	var out, errBuf bytes.Buffer
	w := NewWithWriters(&out, &errBuf, false)
	w.SetVerbosity(Verbose)
	w.Debug("running: hg manifest")
	if errBuf.Len() != 0 {
		t.Errorf("stderr = %q, want empty", errBuf.String())
	}
	w.SetVerbosity(Debug)
	w.Debug("running: hg manifest")
	if errBuf.String() != "running: hg manifest\n" {
		t.Errorf("stderr = %q", errBuf.String())
	}
}

func TestWarning_Format(t *testing.T) {
	t.Parallel()
	var out, errBuf bytes.Buffer
	w := NewWithWriters(&out, &errBuf, false)
	w.Warning("cannot read %s", "a.c")
	if errBuf.String() != "warning: cannot read a.c\n" {
		t.Errorf("stderr = %q", errBuf.String())
	}
}

func TestErrorPrefix_Format(t *testing.T) {
	t.Parallel()
	var out, errBuf bytes.Buffer
	w := NewWithWriters(&out, &errBuf, false)
	w.ErrorPrefix("unknown flag -z")
	if errBuf.String() != "wscheck: unknown flag -z\n" {
		t.Errorf("stderr = %q", errBuf.String())
	}
}

func TestWarning_ColorCodes(t *testing.T) {
	t.Parallel()
	var out, errBuf bytes.Buffer
	w := NewWithWriters(&out, &errBuf, true)
	w.Warning("x")
	if !strings.Contains(errBuf.String(), "\033[33m") {
		t.Errorf("expected ANSI color in %q", errBuf.String())
	}
}

func TestHelpFlag_Alignment(t *testing.T) {
	t.Parallel()
	var out, errBuf bytes.Buffer
	w := NewWithWriters(&out, &errBuf, false)
	w.HelpFlag("-F", "Fix mode", 10)
	if errBuf.String() != "  -F          Fix mode\n" {
		t.Errorf("stderr = %q", errBuf.String())
	}
}
