package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/raphi011/docbatch/internal/batch"
	"github.com/raphi011/docbatch/internal/config"
)

// executeCommand runs the root command with args, feeding stdin and
// returning stdout and stderr.
func executeCommand(t *testing.T, cfg config.Config, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(rootEnv{})
	cmd.SetContext(config.WithConfig(context.Background(), &cfg))
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.OutputDir = filepath.Join(t.TempDir(), "Created-Files")
	return cfg
}

func TestRoot_Session(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	stdout, _, err := executeCommand(t, cfg, "Draft-3_2024\n1\n2\nn\n")
	if err != nil {
		t.Fatalf("session failed: %v", err)
	}

	for _, name := range []string{"Draft-4_2024.md", "Draft-5_2024.md"} {
		if _, err := os.Stat(filepath.Join(cfg.OutputDir, "md", name)); err != nil {
			t.Errorf("expected %s: %v", name, err)
		}
	}
	if !strings.Contains(stdout, "Total files created: 2") {
		t.Errorf("stdout missing report:\n%s", stdout)
	}
}

func TestRoot_OutputDirFlag(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	dir := filepath.Join(t.TempDir(), "elsewhere")

	if _, _, err := executeCommand(t, cfg, "Deck\n1\nn\n", "-o", dir, "-f", "pptx"); err != nil {
		t.Fatalf("session failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "pptx", "Deck1.pptx")); err != nil {
		t.Errorf("expected Deck1.pptx below --output-dir: %v", err)
	}
	if _, err := os.Stat(cfg.OutputDir); !os.IsNotExist(err) {
		t.Errorf("config output dir should be untouched, stat err = %v", err)
	}
}

func TestRoot_ValidationErrorIsReturned(t *testing.T) {
	t.Parallel()

	_, _, err := executeCommand(t, testConfig(t), "Doc\n9\n")
	var selErr *batch.InvalidSelectionError
	if !errors.As(err, &selErr) {
		t.Fatalf("err = %v, want InvalidSelectionError", err)
	}
}

func TestRoot_DryRun(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	stdout, _, err := executeCommand(t, cfg, "Plan-01\n2\nn\n", "--dry-run", "-f", "yaml")
	if err != nil {
		t.Fatalf("dry run failed: %v", err)
	}

	want := filepath.Join(cfg.OutputDir, "yaml", "Plan-2.yaml")
	if !strings.Contains(stdout, want) {
		t.Errorf("stdout missing %s:\n%s", want, stdout)
	}
	if _, err := os.Stat(cfg.OutputDir); !os.IsNotExist(err) {
		t.Errorf("dry run created %s", cfg.OutputDir)
	}
}

func TestRoot_VerboseLogsToStderr(t *testing.T) {
	t.Parallel()

	_, stderr, err := executeCommand(t, testConfig(t), "Doc\n1\nn\n", "-v", "-f", "csv")
	if err != nil {
		t.Fatalf("session failed: %v", err)
	}
	if !strings.Contains(stderr, "created") {
		t.Errorf("verbose stderr missing created entry:\n%s", stderr)
	}
}

func TestRoot_VerboseAndQuietExclusive(t *testing.T) {
	t.Parallel()

	_, _, err := executeCommand(t, testConfig(t), "", "-v", "-q")
	if err == nil {
		t.Fatal("expected error for -v with -q")
	}
}

func TestRoot_RejectsArgs(t *testing.T) {
	t.Parallel()

	if _, _, err := executeCommand(t, testConfig(t), "", "unexpected"); err == nil {
		t.Fatal("expected error for positional argument")
	}
}

func TestRoot_ConfigWarning(t *testing.T) {
	t.Parallel()

	var stderr bytes.Buffer
	cmd := newRootCmd(rootEnv{cfgErr: errors.New("parse config: bad toml")})
	cfg := testConfig(t)
	cmd.SetContext(config.WithConfig(context.Background(), &cfg))
	cmd.SetIn(strings.NewReader("Doc\n1\nn\n"))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"-f", "md"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("config warning must not fail the run: %v", err)
	}
	if !strings.Contains(stderr.String(), "WARNING: parse config: bad toml") {
		t.Errorf("stderr = %q, want config warning", stderr.String())
	}
}

func TestCompleteFormats(t *testing.T) {
	t.Parallel()

	got, _ := completeFormats(nil, nil, "x")
	if len(got) != 1 || got[0] != "xlsx\tExcel Workbook" {
		t.Errorf("completeFormats(x) = %q", got)
	}

	got, _ = completeFormats(nil, nil, "")
	if len(got) != 6 {
		t.Errorf("completeFormats(\"\") returned %d entries, want 6", len(got))
	}
}
