package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/forthic-lang/forthic/forthic"
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Run a Forthic source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runFile,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runFile(_ *cobra.Command, args []string) error {
	source, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	interp, logger, err := newInterpreter()
	if err != nil {
		return err
	}
	defer logger.Sync()

	if err := interp.Run(string(source)); err != nil {
		var stop *forthic.IntentionalStopError
		if errors.As(err, &stop) {
			return nil
		}
		return err
	}
	return nil
}
