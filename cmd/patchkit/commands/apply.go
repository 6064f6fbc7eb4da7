package commands

import (
	"context"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/heyitswin/patchkit/cmd/patchkit/opts"
	"github.com/heyitswin/patchkit/pkg/patch"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
)

// ApplyFlags holds the apply-specific flag values
type ApplyFlags struct {
	DryRun bool   // compute outcomes without writing files
	Async  bool   // process files concurrently
	Only   string // glob pattern limiting which files are patched
}

// NewApplyCmd creates a new apply command
func NewApplyCmd(opts *opts.RootOpts) *cobra.Command {
	var flags ApplyFlags

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply the configured patches to the working tree",
		Long: `Apply rewrites each configured file in place.
It will:
1. Skip files that already carry the import marker
2. Insert the import line at the configured position
3. Run the configured replacements in order
4. Report a per-file outcome line`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunApply(cmd.Context(), opts, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.DryRun, "dry-run", false, "compute outcomes without writing files")
	cmd.Flags().BoolVar(&flags.Async, "async", false, "process files concurrently")
	cmd.Flags().StringVar(&flags.Only, "only", "", "glob pattern limiting which files are patched")

	return cmd
}

// RunApply runs the patch rules and reports per-file outcomes
func RunApply(ctx context.Context, opts *opts.RootOpts, flags ApplyFlags) error {
	logger := opts.Logger
	cfg := opts.Config

	rules, err := filterRules(cfg.Rules(), flags.Only)
	if err != nil {
		return err
	}

	engine := patch.New(patch.Options{
		Root:   opts.Root,
		DryRun: flags.DryRun,
		Async:  flags.Async,
	})

	logger.StartRun(ctx, cfg.Title)
	outcomes := engine.Apply(ctx, rules)

	for _, outcome := range outcomes {
		switch outcome.Status {
		case patch.StatusPatched:
			logger.Successf("Fixed %s", outcome.Path)
		case patch.StatusSkippedMissing:
			logger.Warningf("File not found: %s", outcome.Path)
		case patch.StatusNoOp:
			logger.Skipped("Already patched " + outcome.Path)
		case patch.StatusFailed:
			logger.Errorf("Failed %s: %v", outcome.Path, outcome.Err)
		}
		if outcome.AnchorMissing {
			logger.Warningf("Anchor not found in %s; import line not inserted", outcome.Path)
		}
	}
	logger.EndRun(ctx)

	summary := patch.Summarize(outcomes)
	logger.LogNewline()
	if summary.Failed > 0 {
		return errors.Errorf("%d of %d file(s) failed", summary.Failed, summary.Total())
	}
	logger.Success("All files fixed!")

	if !flags.DryRun {
		printNextSteps(cfg.NextSteps)
	}
	return nil
}

// filterRules keeps the rules whose path matches the glob pattern
func filterRules(rules []patch.Rule, pattern string) ([]patch.Rule, error) {
	if pattern == "" {
		return rules, nil
	}

	filtered := make([]patch.Rule, 0, len(rules))
	for _, rule := range rules {
		ok, err := doublestar.Match(pattern, rule.Path)
		if err != nil {
			return nil, errors.Errorf("invalid --only pattern %q: %w", pattern, err)
		}
		if ok {
			filtered = append(filtered, rule)
		}
	}
	return filtered, nil
}

// printNextSteps echoes the configured follow-up commands
func printNextSteps(steps []string) {
	if len(steps) == 0 {
		return
	}

	pterm.Println()
	pterm.Println("Next steps:")
	for i, step := range steps {
		pterm.Printf("%d. %s\n", i+1, step)
	}
}
