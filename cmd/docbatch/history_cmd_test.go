package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/raphi011/docbatch/internal/config"
	"github.com/raphi011/docbatch/internal/history"
)

func executeWithHistory(t *testing.T, historyPath, stdin string, args ...string) (string, string, error) {
	t.Helper()

	cfg := config.Default()
	cfg.OutputDir = filepath.Join(t.TempDir(), "out")

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(rootEnv{historyPath: historyPath})
	cmd.SetContext(config.WithConfig(context.Background(), &cfg))
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestHistory_RecordedBySession(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "history.json")

	if _, _, err := executeWithHistory(t, path, "Invoice-100\n2\n3\nn\n"); err != nil {
		t.Fatalf("session failed: %v", err)
	}

	h, err := history.Load(path)
	if err != nil {
		t.Fatalf("load history: %v", err)
	}
	if h.MostRecent() != "Invoice-100" {
		t.Errorf("MostRecent() = %q, want %q", h.MostRecent(), "Invoice-100")
	}

	stdout, _, err := executeWithHistory(t, path, "", "history")
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	plain := ansi.Strip(stdout)
	if !strings.Contains(plain, "Invoice-100") || !strings.Contains(plain, ".xlsx") {
		t.Errorf("history output missing entry:\n%s", plain)
	}
}

func TestHistory_NoHistoryFlag(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "history.json")

	if _, _, err := executeWithHistory(t, path, "Doc\n1\n1\nn\n", "--no-history"); err != nil {
		t.Fatalf("session failed: %v", err)
	}

	h, err := history.Load(path)
	if err != nil {
		t.Fatalf("load history: %v", err)
	}
	if len(h.Entries) != 0 {
		t.Errorf("--no-history recorded %d entries", len(h.Entries))
	}
}

func TestHistory_Clear(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "history.json")
	if err := history.Record(path, "Doc", ".md", 1); err != nil {
		t.Fatal(err)
	}

	if _, _, err := executeWithHistory(t, path, "", "history", "--clear"); err != nil {
		t.Fatalf("history --clear failed: %v", err)
	}

	_, stderr, err := executeWithHistory(t, path, "", "history")
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if !strings.Contains(stderr, "No templates recorded yet") {
		t.Errorf("stderr = %q, want empty-history message", stderr)
	}
}
