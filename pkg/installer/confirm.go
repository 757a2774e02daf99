package installer

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// ConfirmationRequest asks the operator whether an existing real file
// or directory at Target may be backed up and replaced with a symlink.
type ConfirmationRequest struct {
	// Name is the mapping being processed.
	Name string

	// Target is the occupied path.
	Target string

	// Default is the answer used on empty input. Replacing operator
	// data defaults to "no".
	Default bool
}

// Confirmer decides whether an occupied target may be replaced.
// Implementations must be safe to call once per mapping, sequentially.
type Confirmer interface {
	Confirm(req ConfirmationRequest) (bool, error)
}

// ConfirmerFunc adapts a function to the Confirmer interface.
type ConfirmerFunc func(req ConfirmationRequest) (bool, error)

// Confirm implements Confirmer.
func (f ConfirmerFunc) Confirm(req ConfirmationRequest) (bool, error) {
	return f(req)
}

// AlwaysApprove returns a Confirmer that approves every request.
// Used by the --yes flag.
func AlwaysApprove() Confirmer {
	return ConfirmerFunc(func(ConfirmationRequest) (bool, error) {
		return true, nil
	})
}

// ConsoleConfirmer prompts the operator on the terminal with a yes/no
// question. Empty input means the request's default answer.
type ConsoleConfirmer struct {
	In  io.Reader
	Out io.Writer

	// Interactive forces prompting even when stdin is not a terminal.
	// Left false, non-terminal input answers the default immediately so
	// piped runs never hang.
	Interactive bool

	reader *bufio.Reader
}

// NewConsoleConfirmer creates a confirmer reading from stdin and
// writing prompts to stderr.
func NewConsoleConfirmer() *ConsoleConfirmer {
	return &ConsoleConfirmer{In: os.Stdin, Out: os.Stderr}
}

// Confirm implements Confirmer.
func (c *ConsoleConfirmer) Confirm(req ConfirmationRequest) (bool, error) {
	if !c.Interactive {
		if f, ok := c.In.(*os.File); ok && !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
			return req.Default, nil
		}
	}

	marker := "[y/N]"
	if req.Default {
		marker = "[Y/n]"
	}
	fmt.Fprintf(c.Out, "%s exists and is not a symlink. Back it up and replace? %s: ", req.Target, marker)

	// One reader per confirmer: buffered input must survive across prompts.
	if c.reader == nil {
		c.reader = bufio.NewReader(c.In)
	}
	line, err := c.reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read confirmation input: %w", err)
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	if answer == "" {
		return req.Default, nil
	}
	return answer == "y" || answer == "yes", nil
}
