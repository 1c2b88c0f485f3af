package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/inkwell-sh/inkwell/internal/config"
	"github.com/inkwell-sh/inkwell/internal/plan"
	"github.com/inkwell-sh/inkwell/internal/ui"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Build the commit schedule and preview the heatmap",
	RunE:  runPlan,
}

func init() {
	addPlanFlags(planCmd)
	planCmd.Flags().Bool("json", false, "output the plan as JSON to stdout")
	planCmd.Flags().Bool("save", false, "save the plan snapshot to the state dir")
	planCmd.Flags().Bool("diff", false, "diff against the previously saved snapshot")

	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	applyFlagOverrides(cmd, &cfg)
	printer := ui.New(cfg.NoColor)

	p, err := buildPlan(cfg)
	if err != nil {
		printer.Error(err.Error())
		return err
	}
	printer.Warnings(p.Warnings)

	jsonFlag, _ := cmd.Flags().GetBool("json")
	saveFlag, _ := cmd.Flags().GetBool("save")
	diffFlag, _ := cmd.Flags().GetBool("diff")

	if diffFlag {
		prev, loadErr := plan.LoadSnapshot(cfg.StateDir)
		if loadErr != nil {
			printer.Error(fmt.Sprintf("no previous plan snapshot: %v", loadErr))
			return fmt.Errorf("loading plan snapshot: %w", loadErr)
		}
		printer.PlanDiff(plan.Diff(prev, p))
		return nil
	}

	if jsonFlag {
		return writePlanJSON(os.Stdout, p)
	}

	printer.Grid(plan.BuildGrid(p))
	printer.PlanSummary(p, plan.Summarize(p))

	if saveFlag {
		if err := os.MkdirAll(cfg.StateDir, 0755); err != nil {
			return fmt.Errorf("creating state dir: %w", err)
		}
		if err := plan.SaveSnapshot(cfg.StateDir, p); err != nil {
			return err
		}
		printer.Info("plan saved to %s", plan.SnapshotPath(cfg.StateDir))
	}
	return nil
}

func writePlanJSON(w io.Writer, p plan.Plan) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("encoding plan: %w", err)
	}
	return nil
}
