// Package prompt asks for missing values on a line-oriented terminal using
// plain text questions and numbered menus.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

var (
	// ErrNoChoices is returned by Select when there is nothing to choose from.
	ErrNoChoices = errors.New("no choices available")
	// ErrEmpty is returned by Text when the answer is blank and there is no default.
	ErrEmpty = errors.New("empty answer")
)

// Prompter reads answers from r and writes questions to w.
type Prompter struct {
	reader *bufio.Reader
	w      io.Writer
}

// New creates a Prompter.
func New(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{reader: bufio.NewReader(r), w: w}
}

// IsInteractive reports whether f is attached to a terminal.
func IsInteractive(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Text asks a free-form question. A blank answer selects def.
func (p *Prompter) Text(label, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(p.w, "%s [%s]: ", label, def)
	} else {
		fmt.Fprintf(p.w, "%s: ", label)
	}

	line, err := p.readLine()
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", strings.ToLower(label), err)
	}
	if line == "" {
		if def == "" {
			return "", fmt.Errorf("%s: %w", strings.ToLower(label), ErrEmpty)
		}
		return def, nil
	}
	return line, nil
}

// Select presents a numbered list and returns the chosen index.
func (p *Prompter) Select(label string, items []string) (int, error) {
	if len(items) == 0 {
		return 0, fmt.Errorf("%s: %w", strings.ToLower(label), ErrNoChoices)
	}

	fmt.Fprintf(p.w, "\n%s\n", label)
	for i, item := range items {
		fmt.Fprintf(p.w, "  %d) %s\n", i+1, item)
	}
	fmt.Fprintf(p.w, "Enter number [1-%d]: ", len(items))

	line, err := p.readLine()
	if err != nil {
		return 0, fmt.Errorf("reading selection: %w", err)
	}

	num, err := strconv.Atoi(line)
	if err != nil || num < 1 || num > len(items) {
		return 0, fmt.Errorf("invalid selection %q: choose 1-%d", line, len(items))
	}
	return num - 1, nil
}

// readLine returns the next trimmed line. A final line without a newline is
// accepted.
func (p *Prompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
