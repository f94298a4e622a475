package respcore

import "strconv"

// ValueKind discriminates the five shapes a Value can hold. It mirrors
// MarkerKind, but Value is owned data, not a borrowed view.
type ValueKind int

const (
	ValueString ValueKind = iota
	ValueError
	ValueInteger
	ValueNil
	ValueArray
)

// Value is an owned, decoded RESP reply: the first thing downstream of
// Parse that is safe to keep around after the source buffer is reused.
// Only the field matching Kind is meaningful.
type Value struct {
	Kind  ValueKind
	Str   string
	Int   int64
	Array []Value
}

// Extract walks a Marker tree and produces an owned Value tree, copying
// string/error payloads and decoding the Integer marker's text into a
// signed 64-bit integer. It is the first step that materializes and
// validates numeric payloads, deliberately kept out of the hot parsing
// path.
//
// Extract is total except on an Integer marker whose text is not a valid
// signed decimal or overflows 64 bits, in which case it returns an error
// wrapping ErrCountConversion.
func Extract(m Marker) (Value, error) {
	switch m.Kind {
	case KindSimpleString:
		return Value{Kind: ValueString, Str: m.Text.String()}, nil
	case KindError:
		return Value{Kind: ValueError, Str: m.Text.String()}, nil
	case KindInteger:
		n, err := strconv.ParseInt(m.Text.String(), 10, 64)
		if err != nil {
			return Value{}, wrapf(ErrCountConversion, "%q", m.Text)
		}
		return Value{Kind: ValueInteger, Int: n}, nil
	case KindNil:
		return Value{Kind: ValueNil}, nil
	case KindArray:
		out := make([]Value, 0, len(m.Array))
		for _, elem := range m.Array {
			v, err := Extract(elem)
			if err != nil {
				return Value{}, err
			}
			out = append(out, v)
		}
		return Value{Kind: ValueArray, Array: out}, nil
	default:
		return Value{}, wrapf(ErrProtocolGeneric, "unknown marker kind %d", m.Kind)
	}
}
