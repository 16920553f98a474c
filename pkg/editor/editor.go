// Package editor runs the operator's editor of choice over a temp file to
// collect edits to a structured text document.
package editor

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
	"github.com/zvault/zvault/pkg/config"
)

// Spawn implements config.Editor by handing the text to an external editor
// process and reading it back. When the edited text fails the validate
// predicate, the operator is asked whether to edit again or give up.
type Spawn struct {
	command string
	in      io.Reader
	err     io.Writer
	stdio   bool
}

// Option configures a Spawn.
type Option func(*Spawn)

// WithPrompt redirects the re-edit prompt streams. Defaults to stdin/stderr.
func WithPrompt(in io.Reader, errw io.Writer) Option {
	return func(s *Spawn) {
		if in != nil {
			s.in = in
		}
		if errw != nil {
			s.err = errw
		}
	}
}

// withoutStdio detaches the editor process from the terminal, for tests.
func withoutStdio() Option {
	return func(s *Spawn) {
		s.stdio = false
	}
}

// New builds a Spawn for the given editor command. An empty command falls
// back to $EDITOR, then to vi.
func New(command string, opts ...Option) *Spawn {
	if command == "" {
		command = os.Getenv("EDITOR")
	}
	if command == "" {
		command = "vi"
	}
	s := &Spawn{
		command: command,
		in:      os.Stdin,
		err:     os.Stderr,
		stdio:   true,
	}
	for _, apply := range opts {
		apply(s)
	}
	return s
}

// Edit writes text to a temp file, runs the editor on it and returns the
// edited content. Invalid content loops back through the editor until the
// operator produces a valid document or declines to continue, in which case
// config.ErrEditAborted is returned.
func (s *Spawn) Edit(text string, validate func(string) bool) (string, error) {
	f, err := os.CreateTemp("", "zvault-config-*.yaml")
	if err != nil {
		return "", errors.Wrap(err, "create temp file for editor")
	}
	path := f.Name()
	defer os.Remove(path)

	if _, err = io.WriteString(f, text); err != nil {
		_ = f.Close()
		return "", errors.Wrap(err, "write config for editor")
	}
	if err = f.Close(); err != nil {
		return "", errors.Wrap(err, "close config for editor")
	}

	prompt := bufio.NewReader(s.in)
	for {
		if err = s.run(path); err != nil {
			return "", err
		}
		edited, rerr := os.ReadFile(path)
		if rerr != nil {
			return "", errors.Wrap(rerr, "read back edited config")
		}
		if validate == nil || validate(string(edited)) {
			return string(edited), nil
		}
		fmt.Fprintf(s.err, "Config file is not valid. Edit again? (y/n) ")
		if !confirm(prompt) {
			return "", errors.Wrap(config.ErrEditAborted, "operator declined to fix invalid config")
		}
	}
}

func (s *Spawn) run(path string) error {
	cmd := exec.Command(s.command, path)
	if s.stdio {
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}
	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "editor %q failed", s.command)
	}
	return nil
}

func confirm(r *bufio.Reader) bool {
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
