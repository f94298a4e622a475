package respcore

import (
	"fmt"
	"io"
	"strconv"
)

// Serialize writes req to w as RESP-encoded bytes: a Command becomes one
// array of bulk strings, a Pipeline becomes its Commands written
// back-to-back with no extra separator. Arguments are written verbatim
// as binary-safe bulk strings — Serialize never escapes their content.
// Serialize does not flush w.
func Serialize(w io.Writer, req Request) error {
	switch v := req.(type) {
	case Command:
		return serializeCommand(w, v)
	case Pipeline:
		for _, c := range v.Commands {
			if err := serializeCommand(w, c); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("respcore: unsupported request type %T", req)
	}
}

func serializeCommand(w io.Writer, c Command) error {
	if _, err := io.WriteString(w, "*"+strconv.Itoa(len(c.Args))+"\r\n"); err != nil {
		return err
	}
	for _, arg := range c.Args {
		if _, err := io.WriteString(w, "$"+strconv.Itoa(len(arg))+"\r\n"); err != nil {
			return err
		}
		if _, err := w.Write(arg); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\r\n"); err != nil {
			return err
		}
	}
	return nil
}
