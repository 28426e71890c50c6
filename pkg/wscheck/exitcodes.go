// Package wscheck provides public constants for external tools integrating
// with the wscheck CLI.
package wscheck

// Exit codes returned by the wscheck CLI.
// These constants allow external tools to check exit codes symbolically
// rather than using magic numbers.
const (
	// ExitSuccess indicates a clean run: nothing flagged, nothing fixed.
	ExitSuccess = 0

	// ExitFailure indicates issues were found (check mode), issues were
	// corrected (fix mode), or the invocation was invalid.
	ExitFailure = 1

	// ExitFatal indicates an unrecoverable failure while rewriting a file;
	// the batch was aborted and already-fixed files stay fixed.
	ExitFatal = 2

	// ExitEnvError indicates an environment error (no usable version
	// control system found).
	ExitEnvError = 3
)
