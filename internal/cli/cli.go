// Package cli provides command-line interface functionality for wscheck.
package cli

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nathan8299/wscheck/internal/config"
	wserrors "github.com/nathan8299/wscheck/internal/errors"
	"github.com/nathan8299/wscheck/internal/output"
	"github.com/nathan8299/wscheck/internal/runner"
	"github.com/nathan8299/wscheck/internal/vcs"
	"github.com/nathan8299/wscheck/internal/whitespace"
)

// Version is set at build time.
var Version = "dev"

// out is the shared output writer for CLI commands.
var out = output.New()

// Options holds the parsed run configuration. Immutable once parsed.
type Options struct {
	Manifest  bool   // -a: check the full tracked-file listing
	Verbose   bool   // -v: report clean files too
	Debug     bool   // -V: echo collaborator commands (implies -v)
	Stdin     bool   // -S: read the file list from standard input
	Extended  bool   // -E: use the extended extension list
	Fix       bool   // -F: repair files instead of reporting
	ExecCheck bool   // -x: check/clear the executable bit
	RevSpec   string // -r: explicit revision range
}

// Run executes the CLI with the given arguments and returns an exit code.
func Run(args []string) int {
	for _, arg := range args {
		switch arg {
		case "-h", "--help":
			printUsage()
			return wserrors.ExitSuccess
		case "--version":
			fmt.Printf("wscheck %s\n", Version)
			return wserrors.ExitSuccess
		}
	}

	opts, err := parseFlags(args)
	if err != nil {
		out.ErrorPrefix("%v", err)
		printUsage()
		return wserrors.ExitFailure
	}

	applyVerbosity(opts)

	cfg, err := config.LoadAndValidate(config.ConfigFileName)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return wserrors.GetExitCode(err)
	}

	wopts := whitespace.Options{
		Extended:  opts.Extended,
		CheckExec: opts.ExecCheck,
		Extra:     cfg.Extensions,
		Exclude:   cfg.Exclude,
	}

	src, code := resolveSource(opts, cfg)
	if src == nil {
		return code
	}
	announceSource(src)

	mode := runner.Check
	if opts.Fix {
		mode = runner.Fix
	}

	count, err := runner.New(out, wopts, mode).Run(src)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return wserrors.GetExitCode(err)
	}

	return summarize(opts, count)
}

// parseFlags parses the single-letter flags, allowing clustered groups
// (-vF) the way the original interface does. The stdlib flag package does
// not support clustering, so parsing is manual.
func parseFlags(args []string) (*Options, error) {
	opts := &Options{}

	i := 0
	for i < len(args) {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") || arg == "-" {
			return nil, fmt.Errorf("unexpected argument %q", arg)
		}
		j := 1
		for j < len(arg) {
			switch arg[j] {
			case 'a':
				opts.Manifest = true
			case 'v':
				opts.Verbose = true
			case 'V':
				opts.Debug = true
			case 'S':
				opts.Stdin = true
			case 'E':
				opts.Extended = true
			case 'F':
				opts.Fix = true
			case 'x':
				opts.ExecCheck = true
			case 'r':
				if j+1 < len(arg) {
					opts.RevSpec = arg[j+1:]
					j = len(arg)
					continue
				}
				if i+1 >= len(args) {
					return nil, fmt.Errorf("-r requires a revision spec")
				}
				i++
				opts.RevSpec = args[i]
			default:
				return nil, fmt.Errorf("unknown flag -%c", arg[j])
			}
			j++
		}
		i++
	}

	if err := validateOptions(opts); err != nil {
		return nil, err
	}
	return opts, nil
}

// validateOptions checks that the selected file-source modes are compatible.
func validateOptions(opts *Options) error {
	modes := 0
	for _, set := range []bool{opts.Manifest, opts.Stdin, opts.RevSpec != ""} {
		if set {
			modes++
		}
	}
	if modes > 1 {
		return fmt.Errorf("-a, -S and -r are mutually exclusive")
	}
	return nil
}

func applyVerbosity(opts *Options) {
	switch {
	case opts.Debug:
		out.SetVerbosity(output.Debug)
	case opts.Verbose:
		out.SetVerbosity(output.Verbose)
	}
}

// resolveSource builds the candidate path sequence. Returns a nil source
// and an exit code when resolution fails.
func resolveSource(opts *Options, cfg *config.Config) (vcs.Source, int) {
	resolveOpts := vcs.ResolveOptions{
		Stdin:    opts.Stdin,
		Manifest: opts.Manifest,
		RevSpec:  opts.RevSpec,
	}

	if opts.Stdin {
		src, err := vcs.Resolve(nil, resolveOpts, os.Stdin)
		if err != nil {
			out.ErrorPrefix("%v", err)
			return nil, wserrors.GetExitCode(err)
		}
		return src, 0
	}

	run := vcs.ExecRunner
	if out.Verbosity() >= output.Debug {
		run = debugRunner(run)
	}

	v, err := vcs.Detect(".", cfg.VCS, run)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return nil, wserrors.GetExitCode(err)
	}

	src, err := vcs.Resolve(v, resolveOpts, os.Stdin)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return nil, wserrors.GetExitCode(err)
	}
	return src, 0
}

// announceSource reports where the candidate paths come from.
func announceSource(src vcs.Source) {
	caser := cases.Title(language.English)
	out.Info("Checking files from: %s", caser.String(src.Kind().String()))
}

// debugRunner wraps a vcs.Runner to echo every collaborator command.
func debugRunner(run vcs.Runner) vcs.Runner {
	return func(dir, name string, args ...string) (string, error) {
		out.Debug("running: %s %s", name, strings.Join(args, " "))
		return run(dir, name, args...)
	}
}

// summarize prints the end-of-run message and picks the exit code.
func summarize(opts *Options, count int) int {
	if count == 0 {
		out.FinalSuccess("All files clean.")
		return wserrors.ExitSuccess
	}
	if opts.Fix {
		out.FinalFailure("Corrected %d file(s).", count)
		return wserrors.ExitFailure
	}
	out.FinalFailure("Found %d file(s) with whitespace issues.", count)
	out.Println("To fix, run: %s", fixInvocation(opts))
	return wserrors.ExitFailure
}

// fixInvocation renders the fix-mode command equivalent to this run.
func fixInvocation(opts *Options) string {
	parts := []string{"wscheck", "-F"}
	if opts.ExecCheck {
		parts = append(parts, "-x")
	}
	if opts.Extended {
		parts = append(parts, "-E")
	}
	switch {
	case opts.Manifest:
		parts = append(parts, "-a")
	case opts.Stdin:
		parts = append(parts, "-S")
	case opts.RevSpec != "":
		parts = append(parts, "-r", opts.RevSpec)
	}
	return strings.Join(parts, " ")
}

func printUsage() {
	out.HelpTitle("wscheck - whitespace hygiene checker")

	out.HelpSection("Usage:")
	out.HelpUsage("wscheck [flags]           Check files for whitespace issues")
	out.HelpUsage("wscheck -F [flags]        Fix whitespace issues in place")

	out.HelpSection("Flags:")
	out.HelpFlag("-a", "Check all tracked files (full manifest)", widthFlag)
	out.HelpFlag("-S", "Read the file list from standard input", widthFlag)
	out.HelpFlag("-r <spec>", "Check files touched by a revision range", widthFlag)
	out.HelpFlag("-F", "Fix mode: repair files instead of reporting", widthFlag)
	out.HelpFlag("-x", "Also check (and fix) the executable bit", widthFlag)
	out.HelpFlag("-E", "Use the extended extension list", widthFlag)
	out.HelpFlag("-v", "Verbose: report clean files too", widthFlag)
	out.HelpFlag("-V", "Debug: echo version-control commands", widthFlag)
	out.HelpFlag("-h, --help", "Show this help", widthFlag)
	out.HelpFlag("--version", "Show version", widthFlag)

	out.HelpSection("Examples:")
	out.HelpExample("wscheck", "Check uncommitted changes")
	out.HelpExample("wscheck -a -x", "Check every tracked file and the executable bit")
	out.HelpExample("wscheck -F -r tip", "Fix files touched by revision tip")
	out.HelpExample("hg manifest | wscheck -S", "Check an explicit file list")
	out.Errorln("")
}

// widthFlag aligns flag descriptions in help output.
const widthFlag = 10
