// Package launcher turns a regent invocation into a Terra process: it
// computes the search paths, assembles the child environment and runs the
// interpreter.
package launcher

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vertti/regent/pkg/config"
	"github.com/vertti/regent/pkg/environ"
	"github.com/vertti/regent/pkg/exec"
	"github.com/vertti/regent/pkg/platform"
	"github.com/vertti/regent/pkg/searchpath"
)

// Spec is a fully resolved launch. Build a new one for every invocation.
type Spec struct {
	Path string      // Terra interpreter
	Argv []string    // launch prefix, Path, forwarded arguments
	Env  environ.Env // complete child environment
}

// Request is the input of a single invocation.
type Request struct {
	SelfPath string      // path of the running launcher
	Env      environ.Env // inherited environment
	Args     []string    // arguments to forward
}

// Launcher plans and runs Terra invocations.
type Launcher struct {
	Platform platform.Platform
	Runner   exec.Runner
	Logger   *log.Logger // optional
}

// New returns a Launcher for the host platform using the real runner.
func New(logger *log.Logger) *Launcher {
	return &Launcher{
		Platform: platform.Current(),
		Runner:   &exec.RealRunner{},
		Logger:   logger,
	}
}

// BuildArgv splits prefix on whitespace and returns it followed by exePath
// and args. An empty prefix contributes nothing.
func BuildArgv(prefix, exePath string, args []string) []string {
	argv := strings.Fields(prefix)
	argv = append(argv, exePath)
	return append(argv, args...)
}

// Plan resolves everything needed to start Terra without starting it.
func (l *Launcher) Plan(req Request) (Spec, error) {
	roots, err := searchpath.ResolveRoots(req.SelfPath)
	if err != nil {
		return Spec{}, err
	}

	cfg, err := config.Load(req.Env, roots.Tool)
	if err != nil {
		return Spec{}, err
	}
	if cfg.Verbose && l.Logger != nil {
		l.Logger.SetLevel(log.DebugLevel)
	}
	l.debug("resolved roots", "tool", roots.Tool, "parent", roots.Parent)

	modules := searchpath.BuildModuleSearchPath(roots)
	includes := searchpath.BuildIncludeSearchPath(roots, cfg.SDKInclude)
	libVar := platform.SelectLibraryVariableName(l.Platform)
	libValue := searchpath.BuildLibrarySearchPath(roots, req.Env.Get(libVar))

	l.debug("module search path", environ.ModulePathVar, modules.Join(searchpath.ModuleSeparator))
	l.debug("include search path", environ.IncludePathVar, includes.Join(searchpath.ModuleSeparator))
	l.debug("library search path", libVar, libValue, "platform", l.Platform)

	env := environ.AssembleEnvironment(req.Env, modules, libVar, libValue, includes)

	exe := roots.Executable()
	argv := BuildArgv(cfg.Launcher, exe, req.Args)
	l.debug("launching", "argv", argv)

	return Spec{Path: exe, Argv: argv, Env: env}, nil
}

// Run starts the planned process and waits for it. The child's exit code is
// returned as-is; err is non-nil only when the process could not be run.
func (l *Launcher) Run(spec Spec) (int, error) {
	code, err := l.Runner.Run(spec.Argv, spec.Env.Environ())
	if err != nil {
		return 0, fmt.Errorf("run %s: %w", spec.Path, err)
	}
	l.debug("child exited", "code", code)
	return code, nil
}

// Launch plans and runs req.
func (l *Launcher) Launch(req Request) (int, error) {
	spec, err := l.Plan(req)
	if err != nil {
		return 0, err
	}
	return l.Run(spec)
}

func (l *Launcher) debug(msg string, keyvals ...interface{}) {
	if l.Logger != nil {
		l.Logger.Debug(msg, keyvals...)
	}
}
