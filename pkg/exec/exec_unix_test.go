//go:build unix

package exec

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "terra")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755); err != nil {
		t.Fatalf("failed to write script: %v", err)
	}
	return path
}

func TestRealRunner_ExitCode(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{"success", "exit 0", 0},
		{"exit 7", "exit 7", 7},
		{"exit 255", "exit 255", 255},
		{"killed by SIGKILL", "kill -9 $$", 128 + 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			script := writeScript(t, tt.body)
			r := &RealRunner{}

			code, err := r.Run([]string{script}, nil)
			if err != nil {
				t.Fatalf("Run() error = %v, want nil", err)
			}
			if code != tt.want {
				t.Errorf("Run() code = %d, want %d", code, tt.want)
			}
		})
	}
}

func TestRealRunner_PassesArgvAndEnv(t *testing.T) {
	script := writeScript(t, `echo "$@"; echo "TERRA_PATH=$TERRA_PATH"; echo "HOME=${HOME:-unset}"`)
	var stdout bytes.Buffer
	r := &RealRunner{Stdout: &stdout}

	code, err := r.Run([]string{script, "foo.rg", "--verbose"}, []string{"TERRA_PATH=?.t"})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if code != 0 {
		t.Fatalf("Run() code = %d, want 0", code)
	}

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	want := []string{"foo.rg --verbose", "TERRA_PATH=?.t", "HOME=unset"}
	if len(lines) != len(want) {
		t.Fatalf("output = %q, want %d lines", stdout.String(), len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestRealRunner_Stdin(t *testing.T) {
	script := writeScript(t, "cat")
	var stdout bytes.Buffer
	r := &RealRunner{Stdin: strings.NewReader("hello"), Stdout: &stdout}

	if _, err := r.Run([]string{script}, nil); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if stdout.String() != "hello" {
		t.Errorf("stdout = %q, want hello", stdout.String())
	}
}

func TestRealRunner_NotExecutable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "terra")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	r := &RealRunner{}
	if _, err := r.Run([]string{path}, nil); err == nil {
		t.Error("expected launch error for non-executable file")
	}
}
