package cmd

import (
	"github.com/spf13/cobra"

	"github.com/inkwell-sh/inkwell/internal/config"
	"github.com/inkwell-sh/inkwell/internal/tui"
	"github.com/inkwell-sh/inkwell/internal/ui"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Live status view that refreshes as units are executed",
	RunE:  runWatch,
}

func init() {
	addPlanFlags(watchCmd)
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	applyFlagOverrides(cmd, &cfg)
	printer := ui.New(cfg.NoColor)

	p, err := buildPlan(cfg)
	if err != nil {
		printer.Error(err.Error())
		return err
	}

	store, closeStore, err := openStore(cfg)
	if err != nil {
		printer.Error(err.Error())
		return err
	}
	defer closeStore()

	prog, watcher, err := tui.NewProgram(p, store, cfg.LedgerPath())
	if err != nil {
		printer.Error(err.Error())
		return err
	}
	defer watcher.Stop()

	_, err = prog.Run()
	return err
}
