package e2e

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/you-not-fish/suro/internal/interp"
)

// TestE2E runs every .suro file in testdata/ and compares its transcript
// with the .golden file next to it. The transcript is everything the
// program printed followed by "=> value" or "error: message".
//
// Set UPDATE_GOLDEN=1 to rewrite the golden files.
func TestE2E(t *testing.T) {
	testFiles, err := filepath.Glob("testdata/*.suro")
	if err != nil {
		t.Fatal(err)
	}
	if len(testFiles) == 0 {
		t.Fatal("no .suro test files found in testdata/")
	}

	for _, testFile := range testFiles {
		name := strings.TrimSuffix(filepath.Base(testFile), ".suro")
		t.Run(name, func(t *testing.T) {
			runE2ETest(t, testFile)
		})
	}
}

// runE2ETest runs a single program in-process.
func runE2ETest(t *testing.T, suroFile string) {
	t.Helper()

	src, err := os.ReadFile(suroFile)
	if err != nil {
		t.Fatalf("reading source: %v", err)
	}

	got := transcript(filepath.Base(suroFile), string(src))

	goldenFile := strings.TrimSuffix(suroFile, ".suro") + ".golden"
	if os.Getenv("UPDATE_GOLDEN") != "" {
		if err := os.WriteFile(goldenFile, []byte(got), 0644); err != nil {
			t.Fatalf("writing golden file: %v", err)
		}
		return
	}
	expected, err := os.ReadFile(goldenFile)
	if err != nil {
		t.Fatalf("reading golden file: %v", err)
	}

	if want := string(expected); got != want {
		t.Errorf("output mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func transcript(filename, src string) string {
	var out bytes.Buffer
	v, err := interp.Run(filename, src, &interp.Config{Stdout: &out})
	if err != nil {
		out.WriteString("error: " + err.Error() + "\n")
	} else {
		out.WriteString("=> " + v.Inspect() + "\n")
	}
	return out.String()
}

// TestCLI builds the suro command and checks its exit codes and streams.
func TestCLI(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping CLI build in short mode")
	}
	goBin, err := exec.LookPath("go")
	if err != nil {
		t.Skip("go not found, skipping CLI tests")
	}

	bin := filepath.Join(t.TempDir(), "suro")
	build := exec.Command(goBin, "build", "-o", bin, "../../cmd/suro")
	if out, err := build.CombinedOutput(); err != nil {
		t.Fatalf("go build failed:\n%s\n%v", out, err)
	}

	tests := []struct {
		name     string
		args     []string
		code     int
		stdout   string
		inStderr string
	}{
		{
			name:   "print",
			args:   []string{"testdata/print_order.suro"},
			stdout: "a\nb\n1\ntrue\n",
		},
		{
			name:     "runtime error",
			args:     []string{"testdata/change_undefined.suro"},
			code:     1,
			inStderr: "reassignment of undefined",
		},
		{
			name:     "syntax error",
			args:     []string{"testdata/syntax_error.suro"},
			code:     1,
			inStderr: "expected ;, got }",
		},
		{
			name:     "usage",
			args:     nil,
			code:     2,
			inStderr: "expected exactly one input file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			cmd := exec.Command(bin, append([]string{"-no-color"}, tt.args...)...)
			cmd.Stdout = &stdout
			cmd.Stderr = &stderr

			code := 0
			if err := cmd.Run(); err != nil {
				var exitErr *exec.ExitError
				if !errors.As(err, &exitErr) {
					t.Fatalf("running suro: %v", err)
				}
				code = exitErr.ExitCode()
			}

			if code != tt.code {
				t.Errorf("exit=%d, want %d\nstderr:\n%s", code, tt.code, stderr.String())
			}
			if tt.stdout != "" && stdout.String() != tt.stdout {
				t.Errorf("stdout = %q, want %q", stdout.String(), tt.stdout)
			}
			if !strings.Contains(stderr.String(), tt.inStderr) {
				t.Errorf("stderr missing %q:\n%s", tt.inStderr, stderr.String())
			}
		})
	}
}
