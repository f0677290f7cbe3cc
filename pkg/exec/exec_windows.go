//go:build windows

package exec

import "os"

// exitCode returns the child's exit status.
func exitCode(state *os.ProcessState) int {
	return state.ExitCode()
}
