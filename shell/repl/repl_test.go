// File: repl_test.go
// Title: Interactive Shell Loop Tests
// Description: Tests the read-eval loop against scripted input and the
//              history persistence helpers.

package repl

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/amw-zero/ion/core/config"
	"github.com/amw-zero/ion/shell"
)

func newTestRepl(t *testing.T, cfg *config.Config, input string) (*Repl, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	engine := shell.New(shell.Options{
		Stdin:  strings.NewReader(""),
		Stdout: &stdout,
		Stderr: &stderr,
	})
	t.Cleanup(func() { engine.Close() })

	r := New(Options{
		Engine: engine,
		Config: cfg,
		Input:  strings.NewReader(input),
		Output: &stdout,
		ErrOut: &stderr,
	})
	return r, &stdout, &stderr
}

func TestRunExecutesLines(t *testing.T) {
	cfg := config.Default()
	cfg.NoColor = true
	cfg.History.File = ""

	r, stdout, _ := newTestRepl(t, cfg, "echo hello\n")
	status := r.Run(context.Background())
	if status != 0 {
		t.Errorf("Run() = %d, want 0", status)
	}
	if !strings.Contains(stdout.String(), "hello") {
		t.Errorf("stdout = %q, missing command output", stdout.String())
	}
}

func TestRunContinuationPrompt(t *testing.T) {
	cfg := config.Default()
	cfg.NoColor = true
	cfg.Prompt = "MAIN> "
	cfg.ContinuationPrompt = "CONT> "
	cfg.History.File = ""

	r, stdout, _ := newTestRepl(t, cfg, "if true\necho in\nend\n")
	r.Run(context.Background())

	out := stdout.String()
	if !strings.Contains(out, "CONT> ") {
		t.Errorf("output %q missing continuation prompt", out)
	}
	if !strings.Contains(out, "in\n") {
		t.Errorf("output %q missing block body output", out)
	}
}

func TestRunReportsErrorsAndRecovers(t *testing.T) {
	cfg := config.Default()
	cfg.NoColor = true
	cfg.History.File = ""

	r, stdout, stderr := newTestRepl(t, cfg, "fn\necho still-alive\n")
	r.Run(context.Background())

	if !strings.Contains(stderr.String(), "ion:") {
		t.Errorf("stderr = %q, missing error report", stderr.String())
	}
	if !strings.Contains(stdout.String(), "still-alive") {
		t.Error("loop did not continue after an error")
	}
}

func TestRunExitStatus(t *testing.T) {
	cfg := config.Default()
	cfg.NoColor = true
	cfg.History.File = ""

	r, _, _ := newTestRepl(t, cfg, "exit 3\necho unreachable\n")
	if status := r.Run(context.Background()); status != 3 {
		t.Errorf("Run() = %d, want 3", status)
	}
}

func TestHistoryRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")

	commands := []string{"echo one", "echo two", "let x = 1"}
	if err := SaveHistory(path, commands, 0); err != nil {
		t.Fatalf("SaveHistory() error = %v", err)
	}

	loaded, err := LoadHistory(path)
	if err != nil {
		t.Fatalf("LoadHistory() error = %v", err)
	}
	if len(loaded) != len(commands) {
		t.Fatalf("loaded %d entries, want %d", len(loaded), len(commands))
	}
	for i, cmd := range commands {
		if loaded[i] != cmd {
			t.Errorf("entry %d = %q, want %q", i, loaded[i], cmd)
		}
	}
}

func TestSaveHistoryLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")

	commands := []string{"a", "b", "c", "d"}
	if err := SaveHistory(path, commands, 2); err != nil {
		t.Fatalf("SaveHistory() error = %v", err)
	}

	loaded, err := LoadHistory(path)
	if err != nil {
		t.Fatalf("LoadHistory() error = %v", err)
	}
	if len(loaded) != 2 || loaded[0] != "c" || loaded[1] != "d" {
		t.Errorf("loaded = %v, want [c d]", loaded)
	}
}

func TestLoadHistoryMissingFile(t *testing.T) {
	loaded, err := LoadHistory(filepath.Join(t.TempDir(), "absent"))
	if err != nil {
		t.Fatalf("LoadHistory() error = %v", err)
	}
	if loaded != nil {
		t.Errorf("loaded = %v, want nil", loaded)
	}
}

func TestRunPersistsHistory(t *testing.T) {
	cfg := config.Default()
	cfg.NoColor = true
	cfg.History.File = filepath.Join(t.TempDir(), "history")
	cfg.History.Limit = 100

	r, _, _ := newTestRepl(t, cfg, "echo first\necho second\n")
	r.Run(context.Background())

	data, err := os.ReadFile(cfg.History.File)
	if err != nil {
		t.Fatalf("reading history file: %v", err)
	}
	if got := string(data); got != "echo first\necho second\n" {
		t.Errorf("history file = %q", got)
	}
}
