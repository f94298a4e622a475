package respcore

import "strings"

// Stringize produces a human-readable dump of a Marker tree, prefixed by
// type tags: "[str] ", "[err] ", "[int] ", "[nil] ", and "[array] {...}"
// with each element followed by ", " (including the last). It is for
// diagnostics and logging only — nothing in this package parses its own
// output back.
func Stringize(m Marker) string {
	switch m.Kind {
	case KindSimpleString:
		return "[str] " + m.Text.String()
	case KindError:
		return "[err] " + m.Text.String()
	case KindInteger:
		return "[int] " + m.Text.String()
	case KindNil:
		return "[nil] "
	case KindArray:
		var b strings.Builder
		b.WriteString("[array] {")
		for _, elem := range m.Array {
			b.WriteString(Stringize(elem))
			b.WriteString(", ")
		}
		b.WriteString("}")
		return b.String()
	default:
		return ""
	}
}

// Equal reports whether m is a scalar marker (SimpleString, Error,
// Integer, or Nil) whose byte view equals literal exactly. It always
// returns false for arrays.
func Equal(m Marker, literal string) bool {
	switch m.Kind {
	case KindSimpleString, KindError, KindInteger, KindNil:
		return m.Text.Equal(View(literal))
	default:
		return false
	}
}

// asciiUpper upper-cases a single ASCII byte, leaving anything else
// untouched. RESP command keywords are always ASCII, so this is the
// entire case-folding MatchesSubscription needs.
func asciiUpper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

func asciiEqualFold(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if asciiUpper(a[i]) != asciiUpper(b[i]) {
			return false
		}
	}
	return true
}

// MatchesSubscription reports whether reply is the three-element
// subscription-confirmation array Redis sends in response to cmd (a
// SUBSCRIBE or PSUBSCRIBE command), per this package's grounding in
// bredis's check_subscription:
//
//  1. reply is an Array of exactly 3 elements.
//  2. cmd has at least 2 arguments (the command name plus >= 1 channel).
//  3. reply[0] is a string equal to cmd.Args[0] case-insensitively (so
//     both "subscribe"/"SUBSCRIBE" and "psubscribe" match).
//  4. reply[2] is an Integer whose decoded value idx satisfies
//     1 <= idx < len(cmd.Args).
//  5. reply[1] is a string equal, case-sensitively, to cmd.Args[idx] —
//     the channel name at that position.
//
// Any failure returns false; MatchesSubscription never panics or
// propagates an error.
func MatchesSubscription(cmd Command, reply Marker) bool {
	if reply.Kind != KindArray || len(reply.Array) != 3 {
		return false
	}
	if len(cmd.Args) < 2 {
		return false
	}

	name := reply.Array[0]
	if name.Kind != KindSimpleString {
		return false
	}
	if !asciiEqualFold(name.Text, cmd.Args[0]) {
		return false
	}

	idxMarker := reply.Array[2]
	if idxMarker.Kind != KindInteger {
		return false
	}
	idx, err := extractSmallInt(idxMarker.Text)
	if err != nil {
		return false
	}
	if idx < 1 || idx >= len(cmd.Args) {
		return false
	}

	channel := reply.Array[1]
	if channel.Kind != KindSimpleString {
		return false
	}
	return channel.Text.Equal(View(cmd.Args[idx]))
}

func extractSmallInt(text View) (int, error) {
	v, err := Extract(Marker{Kind: KindInteger, Text: text})
	if err != nil {
		return 0, err
	}
	return int(v.Int), nil
}
