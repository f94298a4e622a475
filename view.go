package respcore

import "bytes"

// terminator is the two-byte RESP line ending. RESP has no other concept
// of "end of line": a lone '\n' is not a terminator, and simple strings
// and errors may not contain '\r' or '\n' themselves.
var terminator = []byte{'\r', '\n'}

// View is an immutable, contiguous slice of bytes borrowed from a larger
// buffer. Markers never copy payload bytes out of the buffer handed to
// Parse; every View aliases that buffer directly. A Go slice already is
// such a view (it shares backing storage with its parent), so View adds
// nothing at runtime — it exists so marker fields read as protocol
// concepts rather than bare []byte, and so it can carry comparison and
// stringizing helpers without widening the Marker struct.
type View []byte

// String copies the view into an owned string. Callers on the hot parse
// path should prefer Equal, which never allocates.
func (v View) String() string {
	return string(v)
}

// Equal reports whether v and other hold byte-for-byte identical content.
func (v View) Equal(other View) bool {
	return bytes.Equal(v, other)
}

// indexCRLF returns the offset of the first terminator in buf, or -1 if
// none is present yet.
func indexCRLF(buf []byte) int {
	return bytes.Index(buf, terminator)
}
