//go:build unix

package exec

import (
	"os"
	"syscall"
)

// exitCode returns the child's exit status. A child killed by a signal is
// reported as 128+signo, matching the shell.
func exitCode(state *os.ProcessState) int {
	if ws, ok := state.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal())
	}
	return state.ExitCode()
}
