// Package prompt asks the user for the project name and the template.
// Invalid answers are explained and the question is asked again; only a
// closed input stream or a cancelled context ends a prompt with an error.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/wyx2333333/create-rac/internal/catalog"
)

// DefaultProjectName is offered when the user just presses enter.
const DefaultProjectName = "react-awesome-project"

// Validation messages shown before the prompt is repeated.
var (
	ErrEmptyName     = errors.New("Please specify the project directory")
	ErrProjectExists = errors.New("The project directory already exists")
)

// ValidateProjectName rejects blank names and names that already exist in
// the working directory.
func ValidateProjectName(value string) error {
	name := strings.TrimSpace(value)
	if name == "" {
		return ErrEmptyName
	}
	if _, err := os.Lstat("./" + name); err == nil {
		return ErrProjectExists
	}
	return nil
}

// Prompter reads answers from an input stream and writes questions to an
// output stream.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer

	// pending carries the result of a read still in flight after a
	// cancelled prompt, so the next prompt picks it up instead of racing a
	// second reader on the same input.
	pending chan lineResult
}

type lineResult struct {
	line string
	err  error
}

// New returns a Prompter reading from r and writing to w.
func New(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(r), out: w}
}

// ProjectName asks for the project directory name until a valid one is
// given. An empty answer selects DefaultProjectName.
func (p *Prompter) ProjectName(ctx context.Context) (string, error) {
	for {
		fmt.Fprintf(p.out, "? Project Name: (%s) ", DefaultProjectName)

		line, err := p.readLine(ctx)
		if err != nil {
			return "", fmt.Errorf("reading project name: %w", err)
		}
		if line == "" {
			line = DefaultProjectName
		}

		if err := ValidateProjectName(line); err != nil {
			fmt.Fprintf(p.out, ">> %v\n", err)
			continue
		}
		fmt.Fprintln(p.out)
		return strings.TrimSpace(line), nil
	}
}

// Template lists the catalog entries and returns the chosen one. An empty
// answer selects the default entry.
func (p *Prompter) Template(ctx context.Context, entries []catalog.Entry) (catalog.Entry, error) {
	if len(entries) == 0 {
		return catalog.Entry{}, fmt.Errorf("no templates available")
	}
	def := defaultIndex(entries)

	for {
		fmt.Fprintln(p.out, "? Target Template:")
		for i, e := range entries {
			fmt.Fprintf(p.out, "  %d) %s\n", i+1, e.DisplayName())
		}
		fmt.Fprintf(p.out, "Enter number [1-%d] (%d): ", len(entries), def+1)

		line, err := p.readLine(ctx)
		if err != nil {
			return catalog.Entry{}, fmt.Errorf("reading template selection: %w", err)
		}
		line = strings.TrimSpace(line)
		if line == "" {
			fmt.Fprintln(p.out)
			return entries[def], nil
		}

		num, convErr := strconv.Atoi(line)
		if convErr != nil || num < 1 || num > len(entries) {
			fmt.Fprintf(p.out, ">> invalid selection %q: choose 1-%d\n", line, len(entries))
			continue
		}
		fmt.Fprintln(p.out)
		return entries[num-1], nil
	}
}

// readLine returns the next line without its terminator. A final line
// without a newline is accepted; io.EOF is only returned when nothing was
// read. It returns ctx.Err() as soon as ctx is cancelled, even while the
// read is blocked.
func (p *Prompter) readLine(ctx context.Context) (string, error) {
	if p.pending == nil {
		ch := make(chan lineResult, 1)
		go func() {
			line, err := p.in.ReadString('\n')
			ch <- lineResult{line: line, err: err}
		}()
		p.pending = ch
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-p.pending:
		p.pending = nil
		if res.err != nil && !(errors.Is(res.err, io.EOF) && res.line != "") {
			return "", res.err
		}
		return strings.TrimRight(res.line, "\r\n"), nil
	}
}

func defaultIndex(entries []catalog.Entry) int {
	for i, e := range entries {
		if e.ID == catalog.DefaultID {
			return i
		}
	}
	return 0
}
