// Package whitespace implements the whitespace hygiene checks and fixes.
package whitespace

import (
	"path/filepath"
	"strings"
)

// baseExtensions is the set of extensions always content-checked.
var baseExtensions = []string{
	".java", ".c", ".h", ".cpp", ".hpp",
}

// extraExtensions is added to the base set when the extended list is enabled.
var extraExtensions = []string{
	".cc", ".jsl", ".fxml", ".css", ".m", ".mm",
	".frag", ".vert", ".hlsl", ".gradle", ".groovy",
}

// Match reports whether path has an extension that belongs to the checked
// set. The match is a case-sensitive suffix test against the final path
// component; no normalization is performed.
func Match(path string, extended bool) bool {
	name := filepath.Base(path)
	for _, ext := range baseExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	if !extended {
		return false
	}
	for _, ext := range extraExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// Options configures inspection and fixing. It is immutable once built.
type Options struct {
	Extended  bool     // Use the extended extension list
	CheckExec bool     // Check/clear the executable permission bit
	Extra     []string // Additional extensions from project config
	Exclude   []string // Path prefixes never content-checked
}

// matches reports whether path should be content-checked under opts.
// The executable-bit check is independent of this decision.
func (o Options) matches(path string) bool {
	for _, prefix := range o.Exclude {
		if strings.HasPrefix(path, prefix) {
			return false
		}
	}
	if Match(path, o.Extended) {
		return true
	}
	name := filepath.Base(path)
	for _, ext := range o.Extra {
		if ext != "" && strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
