// Package prompt provides simple interactive prompts for terminal input.
package prompt

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Input is where prompts read answers from.
var Input io.Reader = os.Stdin

// scanLine reads a single line byte-by-byte with no buffering, so that
// nothing is left behind for a later term.ReadPassword on the same descriptor.
func scanLine() (string, bool) {
	var buf []byte
	b := make([]byte, 1)
	for {
		n, err := Input.Read(b)
		if err != nil || n == 0 {
			if len(buf) > 0 {
				return strings.TrimSpace(string(buf)), true
			}
			return "", false
		}
		if b[0] == '\n' {
			return strings.TrimSpace(string(buf)), true
		}
		if b[0] != '\r' {
			buf = append(buf, b[0])
		}
	}
}

// Confirm asks a yes/no question and returns true for yes.
func Confirm(question string) bool {
	fmt.Fprintf(os.Stderr, "%s (yes/no): ", question)
	answer, ok := scanLine()
	if !ok {
		return false
	}
	answer = strings.ToLower(answer)
	return answer == "yes" || answer == "y"
}

// IsTerminal reports whether stdin is an interactive terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// ReadSecret reads input with terminal echo disabled (for tokens/passwords).
// Falls back to a plain line read if stdin is not a terminal.
func ReadSecret(label string) string {
	fmt.Fprintf(os.Stderr, "%s: ", label)
	if Input == os.Stdin && IsTerminal() {
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err == nil {
			return strings.TrimSpace(string(raw))
		}
	}
	line, _ := scanLine()
	return line
}
