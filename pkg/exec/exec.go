// Package exec starts the interpreter as a child process and reports how it
// exited.
package exec

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// ErrLaunch is wrapped by every LaunchError.
var ErrLaunch = errors.New("launch failed")

// LaunchError reports that the child process could not be started.
type LaunchError struct {
	Argv []string
	Err  error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("failed to start %q: %v", strings.Join(e.Argv, " "), e.Err)
}

func (e *LaunchError) Unwrap() []error { return []error{ErrLaunch, e.Err} }

// Details lists the command that failed for display.
func (e *LaunchError) Details() []string {
	if len(e.Argv) == 0 {
		return nil
	}
	return []string{"command: " + strings.Join(e.Argv, " ")}
}

// Runner starts a process and waits for it.
type Runner interface {
	// Run starts argv[0] with argv as its argument vector and env as its
	// complete environment, then blocks until it exits. A child that exits
	// non-zero is not an error: its code is returned with a nil error.
	Run(argv, env []string) (int, error)
}

// RealRunner is the production implementation. Nil streams are inherited
// from the current process.
type RealRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run implements Runner.
func (r *RealRunner) Run(argv, env []string) (int, error) {
	if len(argv) == 0 {
		return 0, &LaunchError{Argv: argv, Err: errors.New("empty command")}
	}

	// #nosec G204 -- argv is assembled from the launcher's own tree and the caller's arguments.
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Args = argv
	cmd.Env = env
	cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr
	if r.Stdin != nil {
		cmd.Stdin = r.Stdin
	}
	if r.Stdout != nil {
		cmd.Stdout = r.Stdout
	}
	if r.Stderr != nil {
		cmd.Stderr = r.Stderr
	}

	if err := cmd.Start(); err != nil {
		return 0, &LaunchError{Argv: argv, Err: err}
	}

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) && cmd.ProcessState == nil {
			return 0, err
		}
	}
	return exitCode(cmd.ProcessState), nil
}
