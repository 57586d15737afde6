package cli

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/idelchi/dirtop/internal/dirtop"
)

// EnvPrefix prefixes the environment variables that can replace flags.
const EnvPrefix = "DIRTOP"

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// AllowedOutputs lists the accepted values of --output.
//
//nolint:gochecknoglobals // Config constant
var AllowedOutputs = []string{"live", "table", "json"}

// flagAliases maps alternative flag names to their canonical name.
//
//nolint:gochecknoglobals // Config constant
var flagAliases = map[string]string{
	"nb-line": "lines",
}

func normalizeFlag(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	if canonical, ok := flagAliases[name]; ok {
		name = canonical
	}

	return pflag.NormalizedName(name)
}

// Execute runs the CLI with the process arguments.
func (c CLI) Execute() error {
	return c.command(func(ctx context.Context, options dirtop.Options) error {
		return logic(ctx, options, stdStreams())
	}).ExecuteContext(context.Background())
}

// command builds the root command. run receives the validated options.
func (c CLI) command(run func(context.Context, dirtop.Options) error) *cobra.Command {
	cfg := viper.New()

	cmd := &cobra.Command{
		Use:   "dirtop [flags] [path]",
		Short: "Show the largest directories while scanning",
		Long: heredoc.Docf(`
			dirtop scans a directory tree and keeps a live list of the largest directories
			by cumulative size, refreshed in place while the scan is running.

			Positional Arguments:
			  path                   Directory to scan. Overrides --path. Defaults to the current directory.

			Only the filesystem of the root directory is scanned; symbolic links are not followed.

			Every flag can also be set through the environment as %s_<FLAG>,
			with dashes replaced by underscores (e.g. %s_NO_PARENT=true).
		`, EnvPrefix, EnvPrefix),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.BindPFlags(cmd.Flags()); err != nil {
				return fmt.Errorf("binding flags: %w", err)
			}

			// Show the version even when other settings are invalid
			if cfg.GetBool("version") {
				fmt.Fprintln(cmd.OutOrStdout(), c.version)

				return nil
			}

			options, err := resolve(cfg, args)
			if err != nil {
				return err
			}

			return run(cmd.Context(), options)
		},
	}

	flags := cmd.Flags()
	flags.SortFlags = false

	flags.StringP("path", "p", ".", "Root directory to scan")
	flags.IntP("interval", "i", int(dirtop.DefaultInterval/time.Millisecond),
		"Milliseconds between live refreshes (0=render once at the end)")
	flags.IntP("lines", "n", 0,
		fmt.Sprintf("Number of directories to display (0=terminal height, at most %d)", dirtop.DefaultLines))
	flags.BoolP("no-parent", "s", false, "Do not display parents of the displayed directories")
	flags.IntP("depth", "d", 0, "Maximum traversal depth (0=unlimited)")
	flags.Bool("dir-size", false, "Count the metadata size of directories themselves")
	flags.StringP("output", "o", "live", fmt.Sprintf("Output format: one of %v", AllowedOutputs))
	flags.Bool("debug", false, "Enable debug output")
	flags.BoolP("version", "v", false, "Show version and exit")
	flags.SetNormalizeFunc(normalizeFlag)

	cfg.SetEnvPrefix(EnvPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	cfg.AutomaticEnv()

	return cmd
}

// resolve reads the merged flag and environment settings into options.
// Explicitly set flags take precedence over the environment.
func resolve(cfg *viper.Viper, args []string) (dirtop.Options, error) {
	var (
		options dirtop.Options
		errs    []error
	)

	intSetting := func(key string) int {
		raw := strings.TrimSpace(cfg.GetString(key))

		value, err := strconv.Atoi(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid %s %q: must be an integer", key, raw))
		} else if value < 0 {
			errs = append(errs, fmt.Errorf("%s cannot be negative", key))
		}

		return value
	}

	boolSetting := func(key string) bool {
		raw := strings.TrimSpace(cfg.GetString(key))

		value, err := strconv.ParseBool(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid %s %q: must be a boolean", key, raw))
		}

		return value
	}

	options.Interval = time.Duration(intSetting("interval")) * time.Millisecond
	options.Lines = intSetting("lines")
	options.Depth = intSetting("depth")
	options.NoParent = boolSetting("no-parent")
	options.DirSize = boolSetting("dir-size")
	options.Debug = boolSetting("debug")
	options.Version = boolSetting("version")
	options.Output = strings.ToLower(strings.TrimSpace(cfg.GetString("output")))

	if err := errors.Join(errs...); err != nil {
		return options, err
	}

	if !slices.Contains(AllowedOutputs, options.Output) {
		return options, fmt.Errorf("invalid output format %q: must be one of %v", options.Output, AllowedOutputs)
	}

	if len(args) > 0 {
		options.Path = args[0]
	} else {
		options.Path = cfg.GetString("path")
	}

	if options.Path == "" {
		options.Path = "."
	}

	return options, nil
}
