package whitespace

import (
	"os"
	"path/filepath"

	wserrors "github.com/nathan8299/wscheck/internal/errors"
)

// tabWidth is the fixed tab expansion width. Columns are counted from the
// start of each line.
const tabWidth = 4

// Outcome describes what Fix did to a single file.
type Outcome struct {
	ExecCorrected bool // Executable bit was cleared
	ContentFixed  bool // File contents were rewritten
}

// Fixed reports whether any correction was applied. A path with both an
// executable and a content issue still yields a single unit of credit.
func (o Outcome) Fixed() bool {
	return o.ExecCorrected || o.ContentFixed
}

// Fix repairs a single file in place: clears the executable bit when
// enabled and set, and rewrites the contents with tabs expanded, carriage
// returns stripped, and trailing blanks trimmed. Content is rewritten via a
// temporary sibling file replaced atomically; failure to create that file
// is fatal for the whole batch.
func Fix(path string, opts Options) (Outcome, error) {
	var outcome Outcome

	info, err := os.Stat(path)
	if err != nil {
		return outcome, wserrors.PathError(path, "cannot stat file", err)
	}
	perm := info.Mode().Perm()

	if opts.CheckExec && perm&execMask != 0 {
		perm &^= execMask
		if err := os.Chmod(path, perm); err != nil {
			return outcome, wserrors.PathError(path, "cannot clear executable bit", err)
		}
		outcome.ExecCorrected = true
	}

	if !opts.matches(path) {
		return outcome, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return outcome, wserrors.PathError(path, "cannot read file", err)
	}
	if !hasContentIssue(data) {
		return outcome, nil
	}

	fixed := Transform(data)
	if err := replaceContents(path, fixed, perm); err != nil {
		return outcome, err
	}
	outcome.ContentFixed = true
	return outcome, nil
}

// replaceContents writes data to a temporary sibling of path and renames it
// over the original. Both failures abort the batch: a half-written or
// half-replaced tree cannot be recovered per-file.
func replaceContents(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*")
	if err != nil {
		return wserrors.Fatal(path, "cannot create temporary file", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return wserrors.Fatal(path, "cannot write temporary file", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return wserrors.Fatal(path, "cannot close temporary file", err)
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		os.Remove(tmpName)
		return wserrors.Fatal(path, "cannot set temporary file mode", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return wserrors.Fatal(path, "cannot replace file", err)
	}
	return nil
}

// Transform returns data with tabs expanded to spaces (width 4, columns
// counted from line start), carriage returns removed, and trailing blank
// runs trimmed from every line. The transformation is idempotent.
func Transform(data []byte) []byte {
	out := make([]byte, 0, len(data))
	line := make([]byte, 0, 128)
	col := 0

	flush := func(terminated bool) {
		line = trimTrailingBlanks(line)
		out = append(out, line...)
		if terminated {
			out = append(out, '\n')
		}
		line = line[:0]
		col = 0
	}

	for _, b := range data {
		switch b {
		case '\n':
			flush(true)
		case '\t':
			n := tabWidth - col%tabWidth
			for i := 0; i < n; i++ {
				line = append(line, ' ')
			}
			col += n
		case '\r':
			// Occupies a column during expansion, then dropped.
			col++
		default:
			line = append(line, b)
			col++
		}
	}
	if len(line) > 0 {
		flush(false)
	}
	return out
}

// trimTrailingBlanks removes the trailing run of spaces and tabs. Blank
// means space or tab only.
func trimTrailingBlanks(line []byte) []byte {
	end := len(line)
	for end > 0 && (line[end-1] == ' ' || line[end-1] == '\t') {
		end--
	}
	return line[:end]
}
