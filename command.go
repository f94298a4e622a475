package respcore

// Request is implemented by Command and Pipeline: anything Serialize
// knows how to frame as RESP-encoded request bytes. The method is
// unexported so Request cannot be implemented outside this package —
// Serialize's type switch is meant to be exhaustive.
type Request interface {
	respRequest()
}

// Command is a single RESP request: an ordered list of arguments, the
// first conventionally the command name (e.g. "LLEN"). Arguments are
// borrowed byte sequences; Serialize does not mutate or retain them
// beyond the call.
type Command struct {
	Args [][]byte
}

// NewCommand builds a Command from string arguments, copying each into
// its own []byte. Use Command{Args: ...} directly to avoid the copy when
// the caller already owns []byte slices it's willing to lend.
func NewCommand(args ...string) Command {
	out := make([][]byte, len(args))
	for i, a := range args {
		out[i] = []byte(a)
	}
	return Command{Args: out}
}

func (Command) respRequest() {}

// Pipeline is an ordered batch of Commands sent before reading any
// reply; the server returns replies in the same order.
type Pipeline struct {
	Commands []Command
}

// NewPipeline builds a Pipeline from its Commands.
func NewPipeline(cmds ...Command) Pipeline {
	return Pipeline{Commands: cmds}
}

func (Pipeline) respRequest() {}
