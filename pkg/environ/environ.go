// Package environ provides an ordered, immutable view of a process
// environment.
package environ

import (
	"os"
	"slices"
	"strings"
)

const (
	// ModulePathVar is read by Terra to locate importable modules.
	ModulePathVar = "TERRA_PATH"
	// IncludePathVar is read by Terra to locate C headers.
	IncludePathVar = "INCLUDE_PATH"
	// LauncherVar holds an optional command prefix such as "mpirun -n 4".
	LauncherVar = "LAUNCHER"
)

// Getter looks up a single variable.
type Getter interface {
	LookupEnv(key string) (string, bool)
}

// Env is an ordered set of environment variables with unique keys.
// The zero value is empty and ready to use. Methods never modify the
// receiver.
type Env struct {
	keys   []string
	values map[string]string
}

// Parse builds an Env from KEY=VALUE strings as returned by os.Environ.
// A key seen twice keeps its first position and its last value. Entries
// without '=' are ignored.
func Parse(list []string) Env {
	e := Env{values: make(map[string]string, len(list))}
	for _, kv := range list {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		if _, seen := e.values[k]; !seen {
			e.keys = append(e.keys, k)
		}
		e.values[k] = v
	}
	return e
}

// Current snapshots the process environment.
func Current() Env {
	return Parse(os.Environ())
}

// LookupEnv reports the value of key and whether it is set.
func (e Env) LookupEnv(key string) (string, bool) {
	v, ok := e.values[key]
	return v, ok
}

// Get returns the value of key, or "" when unset.
func (e Env) Get(key string) string {
	return e.values[key]
}

// Len returns the number of variables.
func (e Env) Len() int {
	return len(e.keys)
}

// Keys returns the variable names in order.
func (e Env) Keys() []string {
	return slices.Clone(e.keys)
}

// With returns a copy of e with key set to value. An existing key keeps
// its position; a new key is appended.
func (e Env) With(key, value string) Env {
	out := Env{
		keys:   slices.Clone(e.keys),
		values: make(map[string]string, len(e.values)+1),
	}
	for k, v := range e.values {
		out.values[k] = v
	}
	if _, ok := out.values[key]; !ok {
		out.keys = append(out.keys, key)
	}
	out.values[key] = value
	return out
}

// Environ returns the variables as KEY=VALUE strings, suitable for
// exec.Cmd.Env.
func (e Env) Environ() []string {
	out := make([]string, 0, len(e.keys))
	for _, k := range e.keys {
		out = append(out, k+"="+e.values[k])
	}
	return out
}

// Map returns a copy of the variables as a map.
func (e Env) Map() map[string]string {
	out := make(map[string]string, len(e.values))
	for k, v := range e.values {
		out[k] = v
	}
	return out
}

// AssembleEnvironment returns base with the module, library and include
// search variables overwritten. Lists are joined with ';'; libValue is used
// verbatim. Every other variable passes through in its original order.
func AssembleEnvironment(base Env, modules []string, libVar, libValue string, includes []string) Env {
	return base.
		With(ModulePathVar, strings.Join(modules, ";")).
		With(libVar, libValue).
		With(IncludePathVar, strings.Join(includes, ";"))
}
