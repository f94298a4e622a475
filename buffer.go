package respcore

import (
	"bytes"
	"io"
)

// DynamicBuffer is the read-side surface of a growable byte buffer: its
// unread tail, and that tail's length. Reader itself holds a concrete
// *bytes.Buffer rather than this interface. *bytes.Buffer already
// satisfies this — its Bytes() method returns the live, contiguous unread
// region without copying, which is exactly the zero-copy contract this
// package relies on everywhere else.
type DynamicBuffer interface {
	Bytes() []byte
	Len() int
}

const readChunkSize = 4096

// Reader pulls bytes from src into an internal DynamicBuffer on demand and
// hands out views into that buffer's unread tail. It is the glue between a
// blocking io.Reader (a net.Conn, typically) and the non-blocking Parse/
// MatchN primitives, which only ever see an already-buffered []byte.
//
// A slice returned by ReadUntil aliases the internal buffer. Extract (or
// otherwise copy) anything you need to keep before calling Advance or
// ReadUntil again — both can invalidate or overwrite that memory.
type Reader struct {
	src io.Reader
	buf *bytes.Buffer
	tmp []byte
}

// NewReader wraps src. buf may be nil, in which case Reader allocates its
// own *bytes.Buffer.
func NewReader(src io.Reader, buf *bytes.Buffer) *Reader {
	if buf == nil {
		buf = new(bytes.Buffer)
	}
	return &Reader{src: src, buf: buf, tmp: make([]byte, readChunkSize)}
}

// Bytes returns the buffer's current unread tail, for callers that want to
// drive Parse directly instead of going through ReadUntil.
func (r *Reader) Bytes() []byte {
	return r.buf.Bytes()
}

// Fill makes one Read call on src, of at most readChunkSize bytes, appends
// whatever it returned to the buffer, and reports how many bytes were added. It blocks on src.Read like any io.Reader consumer.
func (r *Reader) Fill() (int, error) {
	n, err := r.src.Read(r.tmp)
	if n > 0 {
		r.buf.Write(r.tmp[:n])
	}
	return n, err
}

// ReadUntil reads from src, growing the internal buffer, until m reports a
// complete frame (see MatchN), then returns the buffer's unread tail up to
// and including that frame. The returned slice aliases the internal
// buffer and is only valid until the next Advance or ReadUntil call.
//
// ReadUntil does not itself advance the buffer past the matched frame;
// call Advance(consumed) once the caller is done reading that frame, where
// consumed is the length of the returned slice (or whatever shorter
// prefix Parse actually consumed from it).
func (r *Reader) ReadUntil(m *MatchN) ([]byte, error) {
	for {
		consumed, complete := m.Match(r.buf.Bytes())
		if complete {
			return r.buf.Bytes()[:consumed], nil
		}
		if _, err := r.Fill(); err != nil {
			return nil, err
		}
	}
}

// Advance discards the first n bytes of the buffer's unread tail, typically
// the bytes Parse or ReadUntil just reported as consumed.
func (r *Reader) Advance(n int) {
	r.buf.Next(n)
}

// Len reports the number of unread bytes currently buffered.
func (r *Reader) Len() int {
	return r.buf.Len()
}
