// Package mocks provides shared test doubles for wscheck packages.
package mocks

import (
	"fmt"

	"github.com/nathan8299/wscheck/internal/vcs"
)

// VCS implements vcs.VCS for testing.
// Use NewVCS() to create instances with a fluent builder API.
type VCS struct {
	name      string
	manifest  []string
	changed   []string
	patches   []string
	outgoing  []string
	revisions map[string][]string

	// Errs maps method names ("Manifest", "Changed", "PatchQueue",
	// "Outgoing", "Revisions") to forced errors.
	Errs map[string]error

	// Calls records method invocations in order.
	Calls []string
}

// NewVCS creates a new mock collaborator.
func NewVCS() *VCS {
	return &VCS{
		name:      "mock",
		revisions: make(map[string][]string),
		Errs:      make(map[string]error),
	}
}

// WithName sets the collaborator name.
func (m *VCS) WithName(name string) *VCS {
	m.name = name
	return m
}

// WithManifest sets the tracked-file listing.
func (m *VCS) WithManifest(paths ...string) *VCS {
	m.manifest = paths
	return m
}

// WithChanged sets the uncommitted modified/added files.
func (m *VCS) WithChanged(paths ...string) *VCS {
	m.changed = paths
	return m
}

// WithPatchQueue sets the files touched by the applied patch stack.
func (m *VCS) WithPatchQueue(paths ...string) *VCS {
	m.patches = paths
	return m
}

// WithOutgoing sets the files touched by unpushed changesets.
func (m *VCS) WithOutgoing(paths ...string) *VCS {
	m.outgoing = paths
	return m
}

// WithRevisions sets the files for a revision spec.
func (m *VCS) WithRevisions(spec string, paths ...string) *VCS {
	m.revisions[spec] = paths
	return m
}

// WithError forces an error for a method.
func (m *VCS) WithError(method string, err error) *VCS {
	m.Errs[method] = err
	return m
}

func (m *VCS) call(method string, paths []string) ([]string, error) {
	m.Calls = append(m.Calls, method)
	if err := m.Errs[method]; err != nil {
		return nil, err
	}
	return paths, nil
}

// Manifest implements vcs.VCS.
func (m *VCS) Manifest() ([]string, error) {
	return m.call("Manifest", m.manifest)
}

// Changed implements vcs.VCS.
func (m *VCS) Changed() ([]string, error) {
	return m.call("Changed", m.changed)
}

// PatchQueue implements vcs.VCS. With no configured patches it reports the
// source unavailable, matching real collaborators.
func (m *VCS) PatchQueue() ([]string, error) {
	m.Calls = append(m.Calls, "PatchQueue")
	if err := m.Errs["PatchQueue"]; err != nil {
		return nil, err
	}
	if len(m.patches) == 0 {
		return nil, fmt.Errorf("%w: no patches applied", vcs.ErrUnavailable)
	}
	return m.patches, nil
}

// Outgoing implements vcs.VCS.
func (m *VCS) Outgoing() ([]string, error) {
	return m.call("Outgoing", m.outgoing)
}

// Revisions implements vcs.VCS.
func (m *VCS) Revisions(spec string) ([]string, error) {
	return m.call("Revisions", m.revisions[spec])
}

// Name implements vcs.VCS.
func (m *VCS) Name() string { return m.name }

var _ vcs.VCS = (*VCS)(nil)
