package exec

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// MockRunner is a test implementation of Runner.
type MockRunner struct {
	RunFunc func(argv, env []string) (int, error)
}

func (m *MockRunner) Run(argv, env []string) (int, error) {
	if m.RunFunc != nil {
		return m.RunFunc(argv, env)
	}
	return 0, nil
}

func TestRunnerInterface(t *testing.T) {
	var _ Runner = &MockRunner{}
	var _ Runner = &RealRunner{}
}

func TestMockRunner(t *testing.T) {
	tests := []struct {
		name     string
		runFunc  func(argv, env []string) (int, error)
		wantCode int
		wantErr  bool
	}{
		{
			name:     "nil func",
			wantCode: 0,
		},
		{
			name: "child exit code",
			runFunc: func(argv, env []string) (int, error) {
				return 3, nil
			},
			wantCode: 3,
		},
		{
			name: "launch error",
			runFunc: func(argv, env []string) (int, error) {
				return 0, &LaunchError{Argv: argv, Err: errors.New("boom")}
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &MockRunner{RunFunc: tt.runFunc}
			code, err := m.Run([]string{"terra"}, nil)
			if (err != nil) != tt.wantErr {
				t.Errorf("Run() error = %v, wantErr %v", err, tt.wantErr)
			}
			if code != tt.wantCode {
				t.Errorf("Run() code = %d, want %d", code, tt.wantCode)
			}
		})
	}
}

func TestRealRunner_CommandNotFound(t *testing.T) {
	r := &RealRunner{}
	missing := filepath.Join(t.TempDir(), "nonexistent-terra")

	code, err := r.Run([]string{missing, "foo.rg"}, os.Environ())
	if err == nil {
		t.Fatal("expected error for nonexistent command")
	}
	if !errors.Is(err, ErrLaunch) {
		t.Errorf("error = %v, want ErrLaunch", err)
	}
	var launchErr *LaunchError
	if !errors.As(err, &launchErr) {
		t.Fatalf("error type = %T, want *LaunchError", err)
	}
	if launchErr.Argv[0] != missing {
		t.Errorf("Argv[0] = %q, want %q", launchErr.Argv[0], missing)
	}
	if code != 0 {
		t.Errorf("code = %d, want 0 when nothing ran", code)
	}
}

func TestRealRunner_EmptyArgv(t *testing.T) {
	r := &RealRunner{}
	_, err := r.Run(nil, nil)
	if !errors.Is(err, ErrLaunch) {
		t.Errorf("Run(nil) error = %v, want ErrLaunch", err)
	}
}

func TestLaunchError(t *testing.T) {
	cause := os.ErrNotExist
	err := &LaunchError{Argv: []string{"mpirun", "-n", "4", "/opt/terra"}, Err: cause}

	if !strings.Contains(err.Error(), "mpirun -n 4 /opt/terra") {
		t.Errorf("Error() = %q, want it to name the command", err.Error())
	}
	if !errors.Is(err, ErrLaunch) {
		t.Error("errors.Is(err, ErrLaunch) = false")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Error("errors.Is(err, os.ErrNotExist) = false")
	}
	if d := err.Details(); len(d) != 1 || d[0] != "command: mpirun -n 4 /opt/terra" {
		t.Errorf("Details() = %q", d)
	}
	if d := (&LaunchError{Err: cause}).Details(); d != nil {
		t.Errorf("Details() with empty argv = %q, want nil", d)
	}
}
