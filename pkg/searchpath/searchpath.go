// Package searchpath computes the module, include and library search paths
// handed to the Terra interpreter.
package searchpath

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrResolveRoots is returned when the launcher cannot locate itself.
var ErrResolveRoots = errors.New("cannot resolve install location")

const (
	// RuntimeDir is the embedded Terra tree under the tool root.
	RuntimeDir = "terra"
	// BindingName is the bindings subdirectory for the Terra language.
	BindingName = "terra"
	// ModulePattern is the wildcard Terra substitutes module names into.
	ModulePattern = "?.t"
	// DefaultSDKInclude is the CUDA header directory used unless overridden.
	DefaultSDKInclude = "/usr/local/cuda/include"

	// ModuleSeparator joins TERRA_PATH and INCLUDE_PATH entries.
	ModuleSeparator = ";"
)

// List is an ordered list of path patterns. Earlier entries win.
type List []string

// Join joins the entries with sep.
func (l List) Join(sep string) string {
	return strings.Join(l, sep)
}

// Roots holds the directories every other path is derived from.
type Roots struct {
	Tool   string // directory containing the launcher
	Parent string // parent project root
}

// Bindings returns the Terra bindings directory of the parent project.
func (r Roots) Bindings() string {
	return filepath.Join(r.Parent, "bindings", BindingName)
}

// Runtime returns the native runtime directory of the parent project.
func (r Roots) Runtime() string {
	return filepath.Join(r.Parent, "runtime")
}

// Terra returns the embedded Terra tree.
func (r Roots) Terra() string {
	return filepath.Join(r.Tool, RuntimeDir)
}

// Executable returns the path of the Terra interpreter.
func (r Roots) Executable() string {
	return filepath.Join(r.Terra(), "terra")
}

// ResolveRoots derives the tool root from the launcher's own path, following
// symlinks, and the parent root as its parent directory.
func ResolveRoots(selfPath string) (Roots, error) {
	abs, err := filepath.Abs(selfPath)
	if err != nil {
		return Roots{}, fmt.Errorf("%w: %w", ErrResolveRoots, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return Roots{}, fmt.Errorf("%w: %w", ErrResolveRoots, err)
	}
	tool := filepath.Dir(resolved)
	return Roots{Tool: tool, Parent: filepath.Dir(tool)}, nil
}

// BuildModuleSearchPath returns the TERRA_PATH entries in lookup order.
func BuildModuleSearchPath(r Roots) List {
	return List{
		ModulePattern,
		filepath.Join(r.Tool, "src", ModulePattern),
		filepath.Join(r.Terra(), "tests", "lib", ModulePattern),
		filepath.Join(r.Terra(), "release", "include", ModulePattern),
		filepath.Join(r.Bindings(), ModulePattern),
	}
}

// BuildIncludeSearchPath returns the INCLUDE_PATH entries. An empty
// sdkInclude falls back to DefaultSDKInclude.
func BuildIncludeSearchPath(r Roots, sdkInclude string) List {
	if sdkInclude == "" {
		sdkInclude = DefaultSDKInclude
	}
	return List{
		r.Bindings(),
		r.Runtime(),
		sdkInclude,
	}
}

// BuildLibrarySearchPath appends the Terra build directory and the bindings
// directory to an existing loader search value. Existing entries are kept
// as-is and stay in front.
func BuildLibrarySearchPath(r Roots, existing string) string {
	entries := filepath.SplitList(existing)
	entries = append(entries, filepath.Join(r.Terra(), "build"), r.Bindings())
	return strings.Join(entries, string(filepath.ListSeparator))
}
