package main

import (
	"fmt"
	"os"

	"github.com/heyitswin/patchkit/cmd/patchkit/commands"
	"github.com/heyitswin/patchkit/cmd/patchkit/opts"
	"github.com/heyitswin/patchkit/pkg/config"
	"github.com/heyitswin/patchkit/pkg/log"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
)

var (
	// Flags
	configFile string
	rootDir    string
	debugFlag  bool
)

// NewCommand creates the root command with all subcommands attached
func NewCommand() *cobra.Command {
	o := &opts.RootOpts{}

	rootCmd := &cobra.Command{
		Use:   "patchkit",
		Short: "A tool for applying idempotent source patches across services",
		Long: `patchkit rewrites source files in place from a declarative ruleset:
insert an import line where it belongs, swap hardcoded values for the
shared environment module, and leave files that are already patched alone.

Run without arguments to apply the ruleset.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupRootOpts(cmd, o)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.RunApply(cmd.Context(), o, commands.ApplyFlags{})
		},
	}

	// Add shared flags
	addRootFlags(rootCmd)

	// Add commands
	rootCmd.AddCommand(
		commands.NewApplyCmd(o),
		commands.NewStatusCmd(o),
		newVersionCmd(),
	)

	return rootCmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", config.DefaultFileName, "ruleset file path")
	cmd.PersistentFlags().StringVar(&rootDir, "root", "", "directory rule paths resolve against")
	cmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "d", false, "enable debug logging")
}

// setupRootOpts configures logging and loads the ruleset once flags are parsed
func setupRootOpts(cmd *cobra.Command, o *opts.RootOpts) error {
	logLevel := zerolog.InfoLevel
	if debugFlag {
		logLevel = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(logLevel)
	zlog := zerolog.New(os.Stderr).Level(logLevel).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &zlog
	cmd.SetContext(zlog.WithContext(cmd.Context()))

	o.Logger = log.New(os.Stdout, logLevel)

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	o.Config = cfg

	o.Root = cfg.Root
	if rootDir != "" {
		o.Root = rootDir
	}

	return nil
}

// loadConfig loads the ruleset file, falling back to the builtin ruleset when
// the default file is absent
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if _, err := os.Stat(configFile); err != nil {
		if os.IsNotExist(err) && !cmd.Root().PersistentFlags().Changed("config") {
			return config.Default(), nil
		}
		return nil, errors.Errorf("reading ruleset file %s: %w", configFile, err)
	}

	cfg, err := config.Load(cmd.Context(), configFile)
	if err != nil {
		return nil, errors.Errorf("loading ruleset: %w", err)
	}
	return cfg, nil
}

// newVersionCmd creates the version command
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Print(FormatVersion())
		},
	}
}
