package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/dmitrijs2005/inkwell/internal/common"
)

// Terminal seams, replaced in tests.
var (
	isTerminal   = term.IsTerminal
	readPassword = term.ReadPassword
)

// nextLine reads up to and including '\n' and strips the line ending. A last
// line without a newline is returned as is; io.EOF is reported only when
// nothing was read.
func nextLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ReadLine shows "prompt: " and returns the trimmed answer.
func ReadLine(r *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprintf(w, "%s: ", prompt); err != nil {
		return "", err
	}
	line, err := nextLine(r)
	return strings.TrimSpace(line), err
}

// ReadWithDefault shows current in brackets; an empty answer keeps it.
func ReadWithDefault(r *bufio.Reader, prompt, current string, w io.Writer) (string, error) {
	if current != "" {
		prompt += " [" + current + "]"
	}
	v, err := ReadLine(r, prompt, w)
	if err != nil || v == "" {
		return current, err
	}
	return v, nil
}

// ReadSecret reads a password without echo. Off a terminal (pipes, tests)
// the line is read from r as typed.
func ReadSecret(r *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprintf(w, "%s: ", prompt); err != nil {
		return "", err
	}

	fd := int(os.Stdin.Fd())
	if !isTerminal(fd) {
		return nextLine(r)
	}

	raw, err := readPassword(fd)
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(raw)
	return string(raw), nil
}

// ReadText collects lines until a blank one or end of input and joins them
// with '\n'.
func ReadText(r *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprintf(w, "%s (blank line ends):\n", prompt); err != nil {
		return "", err
	}

	var b strings.Builder
	for {
		line, err := nextLine(r)
		if err != nil || line == "" {
			break
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
	}
	return strings.TrimSpace(b.String()), nil
}

// ReadList reads one comma-separated line. Blank items are dropped;
// normalization is left to the caller.
func ReadList(r *bufio.Reader, prompt string, w io.Writer) ([]string, error) {
	line, err := ReadLine(r, prompt+" (comma-separated)", w)
	if err != nil {
		return nil, err
	}
	return splitList(line), nil
}

func splitList(line string) []string {
	items := strings.FieldsFunc(line, func(r rune) bool { return r == ',' })
	out := make([]string, 0, len(items))
	for _, it := range items {
		if it = strings.TrimSpace(it); it != "" {
			out = append(out, it)
		}
	}
	return out
}
