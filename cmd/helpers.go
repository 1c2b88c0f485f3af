package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/inkwell-sh/inkwell/internal/config"
	"github.com/inkwell-sh/inkwell/internal/counts"
	"github.com/inkwell-sh/inkwell/internal/plan"
	"github.com/inkwell-sh/inkwell/internal/tracker"
)

// addPlanFlags registers the planner parameter flags shared by every
// command that needs a plan.
func addPlanFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("text", "t", "", "text to draw")
	cmd.Flags().IntP("year", "y", 0, "target year (default: current)")
	cmd.Flags().Int("commits-per-pixel", 0, "commits per filled glyph pixel")
	cmd.Flags().Int("start-week", -1, "week columns before the first glyph")
	cmd.Flags().Int("background-level", -1, "level every day up to this many commits (-1 = off)")
	cmd.Flags().String("counts-file", "", "JSON file of existing per-day commit counts")
}

// applyFlagOverrides layers CLI flags over the loaded config. Only flags
// the user actually set override config-file and env values.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	if v, _ := cmd.Flags().GetString("text"); v != "" {
		cfg.Text = v
	}
	if v, _ := cmd.Flags().GetInt("year"); v > 0 {
		cfg.Year = v
	}
	if v, _ := cmd.Flags().GetInt("commits-per-pixel"); v > 0 {
		cfg.CommitsPerPixel = v
	}
	if v, _ := cmd.Flags().GetInt("start-week"); v >= 0 {
		cfg.StartWeek = v
	}
	if cmd.Flags().Changed("background-level") {
		cfg.BackgroundLevel, _ = cmd.Flags().GetInt("background-level")
	}
	if v, _ := cmd.Flags().GetString("counts-file"); v != "" {
		cfg.CountsFile = v
	}
	if v, _ := rootCmd.PersistentFlags().GetBool("verbose"); v {
		cfg.Verbose = true
	}
	if v, _ := rootCmd.PersistentFlags().GetBool("no-color"); v {
		cfg.NoColor = true
	}
}

// buildPlan loads existing counts (when leveling needs them) and builds the
// plan from the effective config.
func buildPlan(cfg config.Config) (plan.Plan, error) {
	var existing map[string]int
	if cfg.BackgroundLevel >= 0 && cfg.CountsFile != "" {
		provider := &counts.FileProvider{Path: cfg.CountsFile}
		m, err := provider.Counts(cfg.Year)
		if err != nil {
			return plan.Plan{}, err
		}
		existing = m
	}
	return plan.Build(cfg.PlanParams(existing)), nil
}

// openStore returns the ledger store for the configured backend plus a
// close function. The state directory is created on demand.
func openStore(cfg config.Config) (tracker.Store, func(), error) {
	if err := os.MkdirAll(cfg.StateDir, 0755); err != nil {
		return nil, nil, fmt.Errorf("creating state dir: %w", err)
	}
	if cfg.LedgerBackend == config.BackendSQLite {
		store, err := tracker.OpenSQLite(cfg.LedgerPath())
		if err != nil {
			return nil, nil, err
		}
		return store, func() { store.Close() }, nil
	}
	return &tracker.FileStore{Path: cfg.LedgerPath()}, func() {}, nil
}
