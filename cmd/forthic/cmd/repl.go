package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/forthic-lang/forthic/forthic"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive Forthic session",
	Args:  cobra.NoArgs,
	RunE:  runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(_ *cobra.Command, _ []string) error {
	interp, logger, err := newInterpreter()
	if err != nil {
		return err
	}
	defer logger.Sync()

	scanner := bufio.NewScanner(os.Stdin)
	var pending strings.Builder

	prompt := func() {
		if pending.Len() == 0 {
			fmt.Print("forthic> ")
		} else {
			fmt.Print("...      ")
		}
	}

	prompt()
	for scanner.Scan() {
		line := scanner.Text()
		if pending.Len() == 0 && strings.TrimSpace(line) == ":q" {
			break
		}

		if pending.Len() > 0 {
			pending.WriteString("\n")
		}
		pending.WriteString(line)

		err := interp.RunStreaming(pending.String())
		var incomplete *forthic.IncompleteInputError
		switch {
		case err == nil:
			pending.Reset()
			printTop(interp)
		case errors.As(err, &incomplete):
			// keep accumulating lines
		default:
			var stop *forthic.IntentionalStopError
			if !errors.As(err, &stop) {
				fmt.Fprintln(os.Stderr, err)
			}
			pending.Reset()
		}

		prompt()
	}
	fmt.Println()
	return scanner.Err()
}

func printTop(interp *forthic.Interpreter) {
	if interp.GetStack().Length() == 0 {
		return
	}
	top, err := interp.GetStack().Peek()
	if err != nil {
		return
	}
	fmt.Printf("=> %v\n", top)
}
