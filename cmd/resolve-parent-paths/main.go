// Package main provides the resolve-parent-paths CLI, which prints the
// paths matched by walking up from a base directory.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jaspreet-dot-casa/parentpaths/pkg/globalconfig"
	"github.com/jaspreet-dot-casa/parentpaths/pkg/parentpaths"
)

// version is set via -ldflags during build
var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd(stdout, stderr)
	rootCmd.SetArgs(args)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", err)
		return 1
	}
	return 0
}

// rootOptions holds the flag values of the root command.
type rootOptions struct {
	dir     string
	mode    string
	preset  string
	format  string
	verbose bool
	trace   bool
}

// newRootCmd creates the root command. Results go to stdout; help,
// version, trace and log output go to stderr.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "resolve-parent-paths [flags] <path> [<path>...]",
		Short: "Resolve paths by walking parent directories",
		Long: `resolve-parent-paths searches for one or more relative paths, starting at a
base directory and moving up through each parent directory until the paths
are found.

Modes:
  first  the first path found at the nearest level that has any
  some   every path found at the nearest level that has any
  all    every path, found together at a single level (default)
  each   every path, each at the nearest level it exists

Presets and a default mode can be defined in ~/.config/parentpaths/config.yaml
and in a .parentpaths.yaml in any parent of the base directory.`,
		Example: `  resolve-parent-paths --mode first package.json
  resolve-parent-paths --mode each --dir ./src go.mod .git
  resolve-parent-paths --preset node --format json`,
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			return runResolve(opts, args, stdout, stderr)
		},
	}

	rootCmd.SetOut(stderr)
	rootCmd.SetErr(stderr)
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	flags := rootCmd.Flags()
	flags.StringVar(&opts.dir, "dir", "", "Base directory (defaults to the current working directory)")
	flags.StringVar(&opts.mode, "mode", "", "Mode of operation: first, some, all, each (defaults to all)")
	flags.StringVarP(&opts.preset, "preset", "p", "", "Named set of paths from the config file")
	flags.StringVarP(&opts.format, "format", "f", formatText, "Output format: text, json, yaml")
	flags.BoolVar(&opts.verbose, "verbose", false, "Log each directory level to stderr")
	flags.BoolVar(&opts.trace, "trace", false, "Print every existence check to stderr")
	flags.BoolP("version", "V", false, "Print the version and exit")

	return rootCmd
}

// runResolve resolves the positional paths, plus any preset paths, and
// writes the result to stdout.
func runResolve(opts *rootOptions, args []string, stdout, stderr io.Writer) error {
	if err := validateFormat(opts.format); err != nil {
		return err
	}
	if len(args) == 0 && opts.preset == "" {
		return nil
	}

	// Config only supplies presets and the default mode.
	cfg := globalconfig.NewConfig()
	if opts.preset != "" || opts.mode == "" {
		loaded, err := globalconfig.Load(opts.dir)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	resolveOpts := &parentpaths.Options{
		Dir:  opts.dir,
		Mode: parentpaths.Mode(opts.mode),
	}
	fragments := args

	if opts.preset != "" {
		preset, err := cfg.Preset(opts.preset)
		if err != nil {
			return err
		}
		presetFragments, err := preset.Fragments()
		if err != nil {
			return fmt.Errorf("preset %s: %w", opts.preset, err)
		}
		presetOpts, err := preset.Options()
		if err != nil {
			return fmt.Errorf("preset %s: %w", opts.preset, err)
		}

		fragments = append(presetFragments, args...)
		if resolveOpts.Dir == "" {
			resolveOpts.Dir = presetOpts.Dir
		}
		if resolveOpts.Mode == "" {
			resolveOpts.Mode = presetOpts.Mode
		}
	}
	if resolveOpts.Mode == "" {
		resolveOpts.Mode = cfg.DefaultMode()
	}

	logger := newLogger(stderr, opts.verbose)
	defer func() { _ = logger.Sync() }()
	resolveOpts.Logger = logger

	var probes []parentpaths.Probe
	if opts.trace {
		resolveOpts.Probe = func(p parentpaths.Probe) {
			probes = append(probes, p)
		}
	}

	paths, err := parentpaths.Resolve(fragments, resolveOpts)
	if err != nil {
		return err
	}

	if opts.trace {
		renderTrace(stderr, probes)
	}

	return render(stdout, opts.format, paths)
}
