package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vertti/regent/pkg/environ"
	"github.com/vertti/regent/pkg/exec"
	"github.com/vertti/regent/pkg/launcher"
	"github.com/vertti/regent/pkg/output"
	"github.com/vertti/regent/pkg/searchpath"
)

// selfPath locates the running launcher. Replaced in tests.
var selfPath = os.Executable

// ExitError carries a non-zero child exit status back to main.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

var rootCmd = &cobra.Command{
	Use:   "regent [args...]",
	Short: "Run Regent programs with the Terra interpreter",
	Long: "regent sets TERRA_PATH, INCLUDE_PATH and the dynamic library search path " +
		"for the bundled Terra interpreter and runs it with the given arguments. " +
		"Set LAUNCHER to run it under a job launcher such as mpirun.",
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE:               runRegent,
}

func runRegent(cmd *cobra.Command, args []string) error {
	self, err := selfPath()
	if err != nil {
		return fmt.Errorf("%w: %w", searchpath.ErrResolveRoots, err)
	}

	logger := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		Prefix: "regent",
		Level:  log.WarnLevel,
	})

	l := launcher.New(logger)
	l.Runner = &exec.RealRunner{
		Stdin:  cmd.InOrStdin(),
		Stdout: cmd.OutOrStdout(),
		Stderr: cmd.ErrOrStderr(),
	}

	code, err := l.Launch(launcher.Request{
		SelfPath: self,
		Env:      environ.Current(),
		Args:     args,
	})
	if err != nil {
		return err
	}
	if code != 0 {
		return &ExitError{Code: code}
	}
	return nil
}

// exitCode maps the result of Execute to the process exit status. Child
// failures pass through; launcher failures are reported and exit 1.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	output.PrintError(rootCmd.ErrOrStderr(), err)
	return 1
}

func main() {
	os.Exit(exitCode(rootCmd.Execute()))
}
