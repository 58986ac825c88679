// Package prompt reads secrets from the user without echoing them.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrEmpty is returned when the user enters nothing.
var ErrEmpty = errors.New("no value entered")

// Secret prints label to stderr and reads one line from stdin. When stdin is
// a terminal the input is not echoed.
func Secret(label string) (string, error) {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		fmt.Fprint(os.Stderr, label)
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr) // newline after hidden input
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return clean(string(b))
	}
	return ReadLine(os.Stdin, os.Stderr, label)
}

// ReadLine prints label to w and reads a single line from r.
// Used when input is piped, e.g. `echo $KEY | stargate config set api-key`.
func ReadLine(r io.Reader, w io.Writer, label string) (string, error) {
	fmt.Fprint(w, label)
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read input: %w", err)
	}
	return clean(line)
}

func clean(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmpty
	}
	return s, nil
}
