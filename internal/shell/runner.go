// Package shell executes external commands on behalf of the operator.
package shell

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/briandowns/spinner"

	"github.com/conn-castle/valet-php/internal/logging"
	"github.com/conn-castle/valet-php/internal/messages"
)

var (
	commandFunc = exec.Command
	geteuidFunc = os.Geteuid
)

// CommandError reports a failed external command together with its captured output.
type CommandError struct {
	Command string
	Output  string
	Err     error
}

func (e *CommandError) Error() string {
	if strings.TrimSpace(e.Output) == "" {
		return fmt.Sprintf(messages.ShellCommandFailedFmt, e.Command, e.Err)
	}
	return fmt.Sprintf(messages.ShellCommandFailedOutputFmt, e.Command, e.Err, strings.TrimRight(e.Output, "\n"))
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Options configures an Exec runner.
type Options struct {
	// User is the unprivileged account RunAsUser drops to when the process runs as root.
	User   string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	// Spinner shows progress on Stderr while captured commands run.
	Spinner bool
}

// Exec runs commands with os/exec.
type Exec struct {
	opts Options
}

// New returns an Exec runner. Nil streams default to the process streams.
func New(opts Options) *Exec {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	return &Exec{opts: opts}
}

// RunAsUser runs a command as the operating user and returns its combined output.
func (e *Exec) RunAsUser(name string, args ...string) (string, error) {
	name, args = e.asUser(name, args)
	display := render(name, args)
	logging.Debug("Shell", "run %s", display)

	stop := e.startSpinner(display)
	var buf bytes.Buffer
	cmd := commandFunc(name, args...)
	cmd.Stdout = &buf
	cmd.Stderr = &buf
	err := cmd.Run()
	stop()

	output := buf.String()
	if err != nil {
		logging.Debug("Shell", "failed %s: %v", display, err)
		return output, &CommandError{Command: display, Output: output, Err: err}
	}
	return output, nil
}

// Passthrough runs a command attached to the operator's terminal streams.
func (e *Exec) Passthrough(name string, args ...string) error {
	display := render(name, args)
	logging.Debug("Shell", "passthrough %s", display)

	cmd := commandFunc(name, args...)
	cmd.Stdin = e.opts.Stdin
	cmd.Stdout = e.opts.Stdout
	cmd.Stderr = e.opts.Stderr
	if err := cmd.Run(); err != nil {
		return &CommandError{Command: display, Err: err}
	}
	return nil
}

// asUser wraps the command in sudo -u when running as root on behalf of another user.
func (e *Exec) asUser(name string, args []string) (string, []string) {
	user := strings.TrimSpace(e.opts.User)
	if geteuidFunc() != 0 || user == "" || user == "root" {
		return name, args
	}
	wrapped := append([]string{"-u", user, name}, args...)
	return "sudo", wrapped
}

func (e *Exec) startSpinner(display string) func() {
	if !e.opts.Spinner {
		return func() {}
	}
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(e.opts.Stderr))
	s.Suffix = " " + display
	s.Start()
	return s.Stop
}

func render(name string, args []string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}
