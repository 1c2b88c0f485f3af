package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/inkwell-sh/inkwell/internal/config"
	"github.com/inkwell-sh/inkwell/internal/gitexec"
	"github.com/inkwell-sh/inkwell/internal/journal"
	"github.com/inkwell-sh/inkwell/internal/tracker"
	"github.com/inkwell-sh/inkwell/internal/ui"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Execute the pending units of the plan as git commits",
	RunE:  runRun,
}

func init() {
	addPlanFlags(runCmd)
	runCmd.Flags().Int("limit", 0, "stop after this many units (0 = all)")
	runCmd.Flags().String("repo", "", "git repository to commit in (default: config repo_dir)")

	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	applyFlagOverrides(cmd, &cfg)
	if v, _ := cmd.Flags().GetInt("limit"); v > 0 {
		cfg.BatchLimit = v
	}
	if v, _ := cmd.Flags().GetString("repo"); v != "" {
		cfg.RepoDir = v
	}
	printer := ui.New(cfg.NoColor)
	printer.Banner()

	p, err := buildPlan(cfg)
	if err != nil {
		printer.Error(err.Error())
		return err
	}
	printer.Warnings(p.Warnings)
	if len(p.Units) == 0 {
		printer.Info("empty plan — nothing to execute")
		return nil
	}

	store, closeStore, err := openStore(cfg)
	if err != nil {
		printer.Error(err.Error())
		return err
	}
	defer closeStore()

	trk, err := tracker.New(store)
	if err != nil {
		printer.Error(err.Error())
		return err
	}

	pending := tracker.Pending(p, trk.Snapshot())
	printer.PendingSummary(len(p.Units), pending)
	if len(pending) == 0 {
		return nil
	}

	ctx, cancel := setupSignalContext(printer)
	defer cancel()

	committer, err := gitexec.New(ctx, cfg.RepoDir)
	if err != nil {
		printer.Error(err.Error())
		return err
	}

	jrnl, err := journal.NewEmitter(cfg.JournalPath())
	if err != nil {
		printer.Warn(err.Error())
		jrnl = nil // run without a journal
	}
	defer jrnl.Close()
	jrnl.RunStart(cfg.Text, cfg.Year, len(pending))

	executed, execErr := executePending(ctx, pending, committer, trk, jrnl, printer, cfg.BatchLimit)
	jrnl.RunDone(executed, execErr)
	if execErr != nil {
		if errors.Is(execErr, context.Canceled) {
			printer.Info("interrupted after %d unit(s); run again to resume", executed)
			return nil
		}
		printer.Error(execErr.Error())
		return execErr
	}

	if cfg.BatchLimit > 0 && executed == cfg.BatchLimit {
		printer.Info("batch limit reached (%d unit(s)); run again to continue", executed)
	} else {
		printer.Info("done: %d unit(s) executed", executed)
	}
	return nil
}

// executePending consumes pending units sequentially, in plan order,
// marking each day complete with the commits actually made. The tracker is
// only ever told the achieved count, so a partial day stays pending for its
// shortfall.
func executePending(
	ctx context.Context,
	pending []tracker.PendingUnit,
	committer *gitexec.Committer,
	trk *tracker.Tracker,
	jrnl *journal.Emitter,
	printer *ui.Printer,
	limit int,
) (int, error) {
	executed := 0
	for _, u := range pending {
		if limit > 0 && executed >= limit {
			break
		}
		if err := ctx.Err(); err != nil {
			return executed, err
		}

		made, err := committer.CommitDay(ctx, u.Date, u.PendingCommits, u.Char)
		total := u.DoneCommits + made
		if made > 0 {
			if markErr := trk.MarkCompleted(u.Date, total); markErr != nil {
				return executed, markErr
			}
		}
		jrnl.UnitDone(u.Date, u.Char, u.PendingCommits, made, err)
		printer.UnitDone(u.Date, total, u.Commits)
		if err != nil {
			return executed, err
		}
		executed++
	}
	return executed, nil
}

// setupSignalContext returns a context canceled on SIGINT/SIGTERM so a
// second Ctrl-C is never needed: each unit is atomic and the next run
// resumes from the ledger.
func setupSignalContext(printer *ui.Printer) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		printer.Info("\nstopping after the current unit...")
		cancel()
	}()
	return ctx, cancel
}
