package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/inkwell-sh/inkwell/internal/config"
	"github.com/inkwell-sh/inkwell/internal/tracker"
	"github.com/inkwell-sh/inkwell/internal/ui"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard the ledger and start tracking from scratch",
	RunE:  runReset,
}

func init() {
	resetCmd.Flags().Bool("force", false, "skip the confirmation prompt")
	rootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	if v, _ := rootCmd.PersistentFlags().GetBool("no-color"); v {
		cfg.NoColor = true
	}
	printer := ui.New(cfg.NoColor)

	if force, _ := cmd.Flags().GetBool("force"); !force {
		fmt.Fprintf(os.Stderr, "discard ledger at %s? [y/N] ", cfg.LedgerPath())
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(answer)) != "y" {
			printer.Info("aborted")
			return nil
		}
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
	if err := trk.Reset(); err != nil {
		printer.Error(err.Error())
		return err
	}
	printer.Info("ledger reset")
	return nil
}
