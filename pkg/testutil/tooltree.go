// Package testutil builds fake regent installations for tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// ToolTree is a temporary <parent>/language tree with a launcher and a
// Terra interpreter stand-in.
type ToolTree struct {
	Parent string // project root
	Tool   string // directory holding the launcher
	Self   string // launcher path
	Terra  string // interpreter path
}

// NewToolTree creates a tool tree whose interpreter is a /bin/sh script
// running script. Paths are symlink-resolved so they compare equal to what
// the launcher computes.
func NewToolTree(t *testing.T, script string) ToolTree {
	t.Helper()

	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("failed to resolve temp dir: %v", err)
	}
	parent := filepath.Join(dir, "legion")
	tool := filepath.Join(parent, "language")
	terraDir := filepath.Join(tool, "terra")
	if err := os.MkdirAll(terraDir, 0o755); err != nil {
		t.Fatalf("failed to create tool tree: %v", err)
	}

	tree := ToolTree{
		Parent: parent,
		Tool:   tool,
		Self:   filepath.Join(tool, "regent"),
		Terra:  filepath.Join(terraDir, "terra"),
	}
	WriteExecutable(t, tree.Self, "exit 0")
	if script != "" {
		WriteExecutable(t, tree.Terra, script)
	}
	return tree
}

// WriteConfig writes regent.toml into the tool root.
func (tt ToolTree) WriteConfig(t *testing.T, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(tt.Tool, "regent.toml"), []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
}

// WriteExecutable writes a /bin/sh script to path.
func WriteExecutable(t *testing.T, path, script string) {
	t.Helper()
	content := "#!/bin/sh\n" + script + "\n"
	if err := os.WriteFile(path, []byte(content), 0o755); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

// EnvValue returns the value of key in a KEY=VALUE list.
func EnvValue(env []string, key string) (string, bool) {
	for _, kv := range env {
		if k, v, ok := strings.Cut(kv, "="); ok && k == key {
			return v, true
		}
	}
	return "", false
}

// ContainsLine checks if any line of output contains the given substring.
func ContainsLine(output, substr string) bool {
	for _, line := range strings.Split(output, "\n") {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}
