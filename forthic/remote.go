package forthic

import "context"

// Transport carries a Remote word's name and the interpreter's current
// stack to an external collaborator and returns the values it pushes in
// reply. Implementations live outside the core package (see forthic/rpc)
// so the interpreter never depends on a specific wire protocol.
type Transport interface {
	Execute(ctx context.Context, word string, stack []interface{}) ([]interface{}, error)
}

// RemoteWord delegates execution to an external collaborator over a
// Transport. Per the remote word contract: it snapshots the stack, invokes
// the transport, and on success replaces the stack wholesale with the
// values the transport returned, in order. On transport failure it raises
// RemoteExecutionError and leaves the stack untouched.
type RemoteWord struct {
	*BaseWord
	transport Transport
	ctx       context.Context
}

// NewRemoteWord creates a Remote word named name, delegating to transport.
// If ctx is nil, context.Background() is used.
func NewRemoteWord(name string, transport Transport, ctx context.Context) *RemoteWord {
	if ctx == nil {
		ctx = context.Background()
	}
	return &RemoteWord{
		BaseWord:  NewBaseWord(name),
		transport: transport,
		ctx:       ctx,
	}
}

func (w *RemoteWord) Execute(interp *Interpreter) error {
	snapshot := interp.GetStack().Items()

	results, err := w.transport.Execute(w.ctx, w.GetName(), snapshot)
	if err != nil {
		return NewRemoteExecutionError(w.GetName(), err)
	}

	interp.GetStack().Clear()
	for _, v := range results {
		interp.StackPush(v)
	}
	return nil
}

func (w *RemoteWord) GetRuntimeInfo() *RuntimeInfo {
	return &RuntimeInfo{
		Runtime:     "remote",
		IsRemote:    true,
		IsStandard:  false,
		AvailableIn: []string{},
	}
}
