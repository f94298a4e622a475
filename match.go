package respcore

// MatchN frames exactly N complete top-level RESP replies out of a
// growing buffer, the way a Boost.Asio match_condition drives
// async_read_until: it is handed the buffer currently available, and
// reports how much of it forms N complete replies and whether framing is
// done yet. It parses under the Drop policy internally, so framing a
// large pipeline never builds Marker trees that will be thrown away.
//
// A MatchN is single-use: instantiate one per read operation, not one
// per connection. Its matched count is monotonically non-decreasing
// across calls to Match.
type MatchN struct {
	expected int
	matched  int
	consumed int
}

// NewMatchN returns a MatchN waiting for expected complete replies.
func NewMatchN(expected int) *MatchN {
	return &MatchN{expected: expected}
}

// Matched reports how many complete replies have been framed so far.
func (m *MatchN) Matched() int {
	return m.matched
}

// Match advances through as many complete replies as buf currently
// contains. It returns the total number of bytes, from the start of buf,
// that make up the replies matched so far, and whether exactly the
// expected count has now been reached.
//
// On a protocol error, Match stops immediately and reports complete with
// a consumed offset of 0. Replies framed before the error still count
// toward Matched, and the caller is expected to hand buf to Parse directly to
// surface and classify the error. This avoids MatchN needing its own
// copy of the error taxonomy.
func (m *MatchN) Match(buf []byte) (consumed int, complete bool) {
	for m.matched < m.expected {
		res := Parse[Drop](buf[m.consumed:])
		switch res.Status {
		case StatusNotEnoughData:
			return m.consumed, false
		case StatusProtocolError:
			return 0, true
		default:
			m.consumed += res.Consumed
			m.matched++
		}
	}
	return m.consumed, true
}
