// Command respcat is a small interactive RESP client for poking at a
// Redis-protocol server from the terminal: it reads whitespace-separated
// commands from stdin, sends each as a RESP array, and prints the
// stringized reply. It is a demo of the respcore API, not part of it —
// nothing under cmd/ is imported by the library.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"net"
	"os"
	"strings"

	"github.com/l00pss/respcore"
)

func main() {
	addr := flag.String("addr", "localhost:6379", "address to dial")
	flag.Parse()

	conn, err := net.Dial("tcp", *addr)
	if err != nil {
		log.Fatalf("respcat: dial %s: %v", *addr, err)
	}
	defer conn.Close()

	reader := respcore.NewReader(conn, nil)
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Printf("connected to %s\n", *addr)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		cmd := respcore.NewCommand(strings.Fields(line)...)
		if err := respcore.Serialize(conn, cmd); err != nil {
			log.Fatalf("respcat: write: %v", err)
		}

		m := respcore.NewMatchN(1)
		frame, err := reader.ReadUntil(m)
		if err != nil {
			log.Fatalf("respcat: read: %v", err)
		}

		outcome := respcore.ParseValue(frame)
		switch outcome.Status {
		case respcore.StatusProtocolError:
			log.Fatalf("respcat: protocol error: %v", outcome.Err)
		case respcore.StatusNotEnoughData:
			log.Fatalf("respcat: framed reply did not fully parse")
		default:
			fmt.Println(respcore.Stringize(outcome.Marker))
			reader.Advance(outcome.Consumed)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("respcat: stdin: %v", err)
	}
}
