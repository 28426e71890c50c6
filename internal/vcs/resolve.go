package vcs

import (
	"bufio"
	"errors"
	"io"
)

// SourceKind identifies where the candidate paths came from.
type SourceKind int

const (
	// KindStdin reads an explicit file list from standard input.
	KindStdin SourceKind = iota
	// KindManifest lists every tracked file.
	KindManifest
	// KindChanged lists uncommitted modified/added files.
	KindChanged
	// KindPatchQueue lists files touched by the applied patch stack.
	KindPatchQueue
	// KindOutgoing lists files touched by unpushed changesets.
	KindOutgoing
	// KindRevisions lists files touched by an explicit revision range.
	KindRevisions
)

func (k SourceKind) String() string {
	switch k {
	case KindStdin:
		return "standard input"
	case KindManifest:
		return "manifest"
	case KindChanged:
		return "uncommitted changes"
	case KindPatchQueue:
		return "patch queue"
	case KindOutgoing:
		return "outgoing changesets"
	case KindRevisions:
		return "revision range"
	default:
		return "unknown"
	}
}

// Source is a lazy, finite, non-restartable sequence of candidate paths.
type Source interface {
	// Next returns the next path; ok is false once the sequence is done.
	Next() (path string, ok bool)
	// Err reports a read failure after Next returned ok == false.
	Err() error
	// Kind identifies the origin of the sequence.
	Kind() SourceKind
}

// ResolveOptions selects the file source.
type ResolveOptions struct {
	Stdin    bool   // -S: read the list from standard input
	Manifest bool   // -a: full tracked-file listing
	RevSpec  string // -r: explicit revision range
}

// Resolve produces the candidate path sequence. Explicit modes (stdin,
// manifest, revision range) are authoritative; otherwise the fallback chain
// is uncommitted changes, then the applied patch queue, then outgoing
// changesets. A collaborator failure inside the chain means "source
// unavailable" and falls through to the next source.
func Resolve(v VCS, opts ResolveOptions, stdin io.Reader) (Source, error) {
	switch {
	case opts.Stdin:
		return newReaderSource(stdin, KindStdin), nil
	case opts.Manifest:
		paths, err := v.Manifest()
		if err != nil {
			return nil, err
		}
		return newSliceSource(paths, KindManifest), nil
	case opts.RevSpec != "":
		paths, err := v.Revisions(opts.RevSpec)
		if err != nil {
			return nil, err
		}
		return newSliceSource(paths, KindRevisions), nil
	}

	if paths, err := v.Changed(); err == nil && len(paths) > 0 {
		return newSliceSource(paths, KindChanged), nil
	} else if err != nil && !errors.Is(err, ErrUnavailable) {
		return nil, err
	}

	if paths, err := v.PatchQueue(); err == nil && len(paths) > 0 {
		return newSliceSource(paths, KindPatchQueue), nil
	} else if err != nil && !errors.Is(err, ErrUnavailable) {
		return nil, err
	}

	paths, err := v.Outgoing()
	if err != nil {
		if errors.Is(err, ErrUnavailable) {
			return newSliceSource(nil, KindOutgoing), nil
		}
		return nil, err
	}
	return newSliceSource(paths, KindOutgoing), nil
}

type sliceSource struct {
	paths []string
	pos   int
	kind  SourceKind
}

func newSliceSource(paths []string, kind SourceKind) *sliceSource {
	return &sliceSource{paths: paths, kind: kind}
}

func (s *sliceSource) Next() (string, bool) {
	if s.pos >= len(s.paths) {
		return "", false
	}
	p := s.paths[s.pos]
	s.pos++
	return p, true
}

func (s *sliceSource) Err() error       { return nil }
func (s *sliceSource) Kind() SourceKind { return s.kind }

// readerSource streams lines from an io.Reader, as-is, skipping blanks.
type readerSource struct {
	scanner *bufio.Scanner
	kind    SourceKind
}

func newReaderSource(r io.Reader, kind SourceKind) *readerSource {
	return &readerSource{scanner: bufio.NewScanner(r), kind: kind}
}

func (s *readerSource) Next() (string, bool) {
	for s.scanner.Scan() {
		line := s.scanner.Text()
		if line != "" {
			return line, true
		}
	}
	return "", false
}

func (s *readerSource) Err() error       { return s.scanner.Err() }
func (s *readerSource) Kind() SourceKind { return s.kind }
