package cmd

import (
	"github.com/spf13/cobra"

	"github.com/inkwell-sh/inkwell/internal/config"
	"github.com/inkwell-sh/inkwell/internal/plan"
	"github.com/inkwell-sh/inkwell/internal/tracker"
	"github.com/inkwell-sh/inkwell/internal/ui"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show how much of the plan has been executed",
	RunE:  runStatus,
}

func init() {
	addPlanFlags(statusCmd)
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	applyFlagOverrides(cmd, &cfg)
	printer := ui.New(cfg.NoColor)

	p, err := buildPlan(cfg)
	if err != nil {
		printer.Error(err.Error())
		return err
	}
	printer.Warnings(p.Warnings)

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

	printer.Grid(plan.BuildGrid(p))
	printer.PlanSummary(p, plan.Summarize(p))

	ledger := trk.Snapshot()
	if ledger.LastRun != nil {
		printer.Info("last run: %s", ledger.LastRun.Format("2006-01-02 15:04:05"))
	}
	printer.PendingSummary(len(p.Units), tracker.Pending(p, ledger))
	return nil
}
