package cmd

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/require"
)

// captureStdout runs fn with os.Stdout redirected to a pipe and returns
// whatever it printed. runEval and runRepl print with fmt.Println/Printf
// rather than taking a writer, so tests capture at the file-descriptor level.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	require.NoError(t, w.Close())
	os.Stdout = old

	var buf bytes.Buffer
	_, err = io.Copy(&buf, r)
	require.NoError(t, err)
	return buf.String()
}

func TestRunEval_Snapshots(t *testing.T) {
	programs := map[string]string{
		"arithmetic":    "3 4 +",
		"string_concat": `"Hello, " "World!" CONCAT`,
		"array_literal": "[ 1 2 3 ]",
		"record":        `["name" "age"] ["Alice" 30] ZIP REC "name" REC@`,
		"definition":    ": SQUARE   DUP * ;   6 SQUARE",
	}

	for name, program := range programs {
		t.Run(name, func(t *testing.T) {
			evalCode = program
			out := captureStdout(t, func() {
				err := runEval(evalCmd, nil)
				require.NoError(t, err)
			})
			snaps.MatchSnapshot(t, name, out)
		})
	}
}

func TestRunEval_IntentionalStopSkipsTopOfStackPrint(t *testing.T) {
	// PEEK! prints the stack itself and raises an IntentionalStopError;
	// runEval must treat that as a clean exit rather than also JSON-printing
	// the top of the stack.
	evalCode = `1 PEEK!`
	out := captureStdout(t, func() {
		err := runEval(evalCmd, nil)
		require.NoError(t, err)
	})
	require.Equal(t, "1\n", out)
}
