package forthic

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTransport struct {
	gotWord  string
	gotStack []interface{}
	results  []interface{}
	err      error
}

func (f *fakeTransport) Execute(ctx context.Context, word string, stack []interface{}) ([]interface{}, error) {
	f.gotWord = word
	f.gotStack = stack
	return f.results, f.err
}

func TestRemoteWord_ReplacesStackWithResults(t *testing.T) {
	transport := &fakeTransport{results: []interface{}{int64(1), "two"}}
	word := NewRemoteWord("ECHO", transport, nil)

	interp := NewInterpreter()
	interp.StackPush("leftover")
	interp.CurModule().AddWord(word)

	err := interp.Run("ECHO")
	require.NoError(t, err)

	assert.Equal(t, "ECHO", transport.gotWord)
	assert.Equal(t, []interface{}{"leftover"}, transport.gotStack)
	assert.Equal(t, []interface{}{int64(1), "two"}, interp.GetStack().Items())
}

func TestRemoteWord_TransportErrorLeavesStack(t *testing.T) {
	transport := &fakeTransport{err: errors.New("connection refused")}
	word := NewRemoteWord("ECHO", transport, nil)

	interp := NewInterpreter()
	interp.StackPush("kept")
	interp.CurModule().AddWord(word)

	err := interp.Run("ECHO")
	require.Error(t, err)

	var remoteErr *RemoteExecutionError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, "ECHO", remoteErr.Word)
	assert.Equal(t, []interface{}{"kept"}, interp.GetStack().Items())
}
