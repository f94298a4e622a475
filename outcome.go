package respcore

// Status discriminates the three shapes a parse can produce. Go has no
// sum types, so exhaustiveness here is a convention enforced by review
// and tests (a switch over Status in every caller), not the compiler.
type Status int

const (
	// StatusNotEnoughData means buf is a valid RESP prefix but
	// incomplete: call Parse again once more bytes arrive, passing the
	// same bytes plus whatever was appended. No bytes were consumed.
	StatusNotEnoughData Status = iota
	// StatusPositive means buf's prefix is one complete RESP value.
	// Outcome.Consumed (and, under the Keep policy, Outcome.Marker) are
	// valid.
	StatusPositive
	// StatusProtocolError means buf's prefix violates RESP. Outcome.Err
	// carries the ErrorKind. RESP has no resynchronization primitive:
	// treat this as fatal for the stream it came from.
	StatusProtocolError
)

// Outcome is the result of a single Parse call. Marker is the zero Marker
// unless Status == StatusPositive and the call used the Keep policy.
type Outcome struct {
	Status   Status
	Consumed int
	Marker   Marker
	Err      error
}

// Keep and Drop are the two Policy type arguments to Parse. They carry no
// data; they exist purely to select, at compile time, which behavior
// Parse monomorphizes to.
type (
	// Keep selects the policy that materializes a Marker tree.
	Keep struct{}
	// Drop selects the policy that reports only how many bytes a value
	// consumed, never allocating a Marker tree. MatchN uses this policy
	// to frame pipelined replies cheaply before a caller commits to a
	// full Parse.
	Drop struct{}
)

// Policy constrains Parse's type parameter to the two recognized parsing
// policies.
type Policy interface {
	Keep | Drop
}

// ParseOptions configures a Parse call beyond the RESP grammar itself.
type ParseOptions struct {
	// MaxDepth bounds array nesting. Zero means DefaultMaxDepth. The
	// original C++ source this package descends from has no such limit;
	// this package adds one because an unbounded-recursion parser fed
	// attacker-influenced bytes is a real denial-of-service surface for
	// a client.
	MaxDepth int
}

// DefaultMaxDepth is the array nesting limit Parse enforces when
// ParseOptions.MaxDepth is zero.
const DefaultMaxDepth = 512

func (o ParseOptions) maxDepth() int {
	if o.MaxDepth > 0 {
		return o.MaxDepth
	}
	return DefaultMaxDepth
}

// Parse parses a single top-level RESP value from the front of buf. It is
// a pure function: it never mutates buf, never blocks, and allocates
// nothing beyond the Marker tree itself (and only under the Keep policy).
//
// At most one ParseOptions may be passed; additional values are ignored.
// Call with an explicit type argument: Parse[Keep](buf) to materialize a
// Marker tree, Parse[Drop](buf) to only learn how many bytes one value
// would consume.
func Parse[P Policy](buf []byte, opts ...ParseOptions) Outcome {
	var o ParseOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	var zero P
	_, keep := any(zero).(Keep)

	consumed, marker, status, err := parseOne(buf, keep, 0, o.maxDepth())
	switch status {
	case StatusNotEnoughData:
		return Outcome{Status: StatusNotEnoughData}
	case StatusProtocolError:
		return Outcome{Status: StatusProtocolError, Err: err}
	default:
		return Outcome{Status: StatusPositive, Consumed: consumed, Marker: marker}
	}
}

// ParseValue is Parse[Keep]: the common case of materializing a Marker
// tree for a single reply.
func ParseValue(buf []byte, opts ...ParseOptions) Outcome {
	return Parse[Keep](buf, opts...)
}

// ParseFrame is Parse[Drop]: learn how many bytes one complete reply
// occupies without building a Marker tree. MatchN is built on this.
func ParseFrame(buf []byte, opts ...ParseOptions) Outcome {
	return Parse[Drop](buf, opts...)
}
