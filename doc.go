/*
Package respcore implements the wire-protocol engine for a RESP (REdis
Serialization Protocol) client: a streaming incremental parser that turns
an arbitrary-length byte slice into typed reply values, the command
serializer that produces protocol-framed request bytes, and the small set
of helpers built on top of both (value extraction, reply stringizing,
subscription-confirmation matching).

Scope

This package is deliberately transport-free. It never opens a socket,
never logs, and never retries. Apart from Reader (see below), which blocks
on the io.Reader it wraps, everything it exports is a pure, non-blocking
function over caller-owned byte slices:

  - Parse/Parse[Keep]/Parse[Drop] turn a byte slice into an Outcome —
    "not enough data yet", a typed Marker tree plus how many bytes it
    consumed, or a protocol error.
  - Serialize writes a Command or Pipeline as RESP-framed bytes to any
    io.Writer.
  - Extract walks a Marker tree into an owned Value tree with integers
    decoded from their wire text.
  - MatchN frames N replies out of a growing buffer before the caller
    commits to a full parse, the same role a Boost.Asio match_condition
    plays for async_read_until.

Driving actual sockets, buffering policy beyond "give me a contiguous
slice", and connection-level concerns (pooling, pub/sub bookkeeping,
clustering) are left to the surrounding application; DynamicBuffer and
Reader in buffer.go are the one deliberately thin seam this package
offers toward that code, not a transport layer in disguise.

Aliasing

Every Marker returned under the Keep policy holds slices into the buffer
passed to Parse. Those slices are valid only as long as the caller keeps
the underlying bytes alive and unmodified, and only until the caller
advances past the consumed prefix. Copy out (via Extract, or a manual
byte copy) anything that needs to outlive the next read.
*/
package respcore
