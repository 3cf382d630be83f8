package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/forthic-lang/forthic/forthic"
)

var evalCode string

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Evaluate inline Forthic code and print the resulting top-of-stack",
	Args:  cobra.NoArgs,
	RunE:  runEval,
}

func init() {
	evalCmd.Flags().StringVarP(&evalCode, "code", "e", "", "Forthic code to evaluate")
	evalCmd.MarkFlagRequired("code")
	rootCmd.AddCommand(evalCmd)
}

func runEval(_ *cobra.Command, _ []string) error {
	interp, logger, err := newInterpreter()
	if err != nil {
		return err
	}
	defer logger.Sync()

	if err := interp.Run(evalCode); err != nil {
		var stop *forthic.IntentionalStopError
		if errors.As(err, &stop) {
			return nil
		}
		return err
	}

	if interp.GetStack().Length() == 0 {
		return nil
	}
	top, err := interp.GetStack().Peek()
	if err != nil {
		return err
	}

	out, err := json.Marshal(top)
	if err != nil {
		fmt.Println(top)
		return nil
	}
	fmt.Println(string(out))
	return nil
}
