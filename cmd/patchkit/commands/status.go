package commands

import (
	"context"

	"github.com/heyitswin/patchkit/cmd/patchkit/opts"
	"github.com/heyitswin/patchkit/pkg/log"
	"github.com/heyitswin/patchkit/pkg/patch"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
)

// NewStatusCmd creates a new status command
func NewStatusCmd(opts *opts.RootOpts) *cobra.Command {
	var showDiff bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Check which files still need patching",
		Long: `Status runs the patch rules without writing anything.
It will:
1. Read each configured file
2. Compute the patched content in memory
3. Report per file whether the patch is pending, applied, or impossible`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(cmd.Context(), opts, showDiff)
		},
	}

	cmd.Flags().BoolVar(&showDiff, "diff", false, "print a preview of pending changes")

	return cmd
}

// runStatus reports per-file patch state without touching the filesystem
func runStatus(ctx context.Context, opts *opts.RootOpts, showDiff bool) error {
	logger := opts.Logger

	engine := patch.New(patch.Options{
		Root:   opts.Root,
		DryRun: true,
		Diff:   showDiff,
	})

	logger.Header("patch status")
	outcomes := engine.Apply(ctx, opts.Config.Rules())

	pending := 0
	failed := 0
	for _, outcome := range outcomes {
		op := log.FileOperation{
			Path:           outcome.Path,
			ImportInserted: outcome.ImportInserted,
			AnchorMissing:  outcome.AnchorMissing,
			Replacements:   outcome.Replacements,
		}
		switch outcome.Status {
		case patch.StatusPatched:
			op.Status = "pending"
			op.IsPatched = true
			pending++
		case patch.StatusNoOp:
			op.Status = "applied"
		case patch.StatusSkippedMissing:
			op.Status = "missing"
			op.IsMissing = true
		case patch.StatusFailed:
			op.Status = "failed"
			op.IsFailed = true
			failed++
		}
		logger.LogFileOperation(ctx, op)

		if showDiff && outcome.Diff != "" {
			pterm.Println(outcome.Diff)
		}
	}

	logger.LogNewline()
	if pending > 0 {
		return errors.Errorf("%d file(s) pending", pending)
	}
	if failed > 0 {
		return errors.Errorf("%d file(s) could not be checked", failed)
	}
	logger.Success("All files up to date")
	return nil
}
