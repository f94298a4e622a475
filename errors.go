package respcore

import "fmt"

// ErrorKind enumerates the ways a byte slice can fail to be legal RESP.
// NotEnoughData is deliberately absent from this taxonomy: it is a
// normal outcome ("call me again with more bytes"), not a protocol
// violation, and is represented by Outcome.Status instead of an error.
type ErrorKind int

const (
	// ErrKindWrongIntroduction means the first byte of a value is not
	// one of '+', '-', ':', '$', '*'.
	ErrKindWrongIntroduction ErrorKind = iota
	// ErrKindCountConversion means a bulk-string or array count (or an
	// integer marker's text, at extraction time) is not a valid signed
	// decimal, or overflows 64 bits.
	ErrKindCountConversion
	// ErrKindCountRange means a count decoded to a value less than -1.
	ErrKindCountRange
	// ErrKindBulkTerminator means a bulk string's declared-length
	// payload was not followed by exactly "\r\n".
	ErrKindBulkTerminator
	// ErrKindNestingTooDeep means an array nested past the configured
	// depth limit. Not part of the original protocol taxonomy; added
	// because a client parsing attacker-influenced replies needs a way
	// to bound recursion (see ParseOptions.MaxDepth).
	ErrKindNestingTooDeep
	// ErrKindProtocolGeneric covers protocol violations that do not
	// fit a more specific kind.
	ErrKindProtocolGeneric
)

func (k ErrorKind) String() string {
	switch k {
	case ErrKindWrongIntroduction:
		return "wrong introduction"
	case ErrKindCountConversion:
		return "count conversion"
	case ErrKindCountRange:
		return "count range"
	case ErrKindBulkTerminator:
		return "bulk terminator"
	case ErrKindNestingTooDeep:
		return "nesting too deep"
	case ErrKindProtocolGeneric:
		return "protocol error"
	default:
		return "unknown error kind"
	}
}

// ProtocolError reports a RESP framing violation. RESP has no
// resynchronization primitive, so any ProtocolError is fatal for the
// byte stream it came from; the surrounding connection code is expected
// to treat it that way.
type ProtocolError struct {
	Kind ErrorKind
	msg  string
}

func (e *ProtocolError) Error() string {
	return e.msg
}

func newProtocolError(kind ErrorKind, msg string) *ProtocolError {
	return &ProtocolError{Kind: kind, msg: msg}
}

// Sentinel errors, one per kind, for use with errors.Is. Wrapping one of
// these with fmt.Errorf("%w: ...", ErrWrongIntroduction, detail) keeps
// errors.Is(err, ErrWrongIntroduction) working while still carrying a
// human-readable detail in Error().
var (
	ErrWrongIntroduction = newProtocolError(ErrKindWrongIntroduction, "wrong introduction")
	ErrCountConversion   = newProtocolError(ErrKindCountConversion, "cannot convert count to number")
	ErrCountRange        = newProtocolError(ErrKindCountRange, "unacceptable count value")
	ErrBulkTerminator    = newProtocolError(ErrKindBulkTerminator, "terminator for bulk string not found")
	ErrNestingTooDeep    = newProtocolError(ErrKindNestingTooDeep, "array nesting too deep")
	ErrProtocolGeneric   = newProtocolError(ErrKindProtocolGeneric, "protocol error")
)

func wrapf(sentinel *ProtocolError, format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{sentinel}, args...)...)
}
