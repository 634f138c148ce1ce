package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/philipp01105/safelog/core"
	"github.com/philipp01105/safelog/logger"
)

const sampleYAML = `
root: warn
categories:
  app.db: debug
  app.net: error
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.Root != "warn" {
		t.Errorf("Root = %q, want warn", cfg.Root)
	}
	if cfg.Categories["app.db"] != "debug" {
		t.Errorf("Categories[app.db] = %q, want debug", cfg.Categories["app.db"])
	}
}

func TestParse_RejectsUnknownLevel(t *testing.T) {
	tests := []string{
		"root: loud",
		"categories:\n  app: verbose",
	}
	for _, in := range tests {
		if _, err := Parse([]byte(in)); err == nil {
			t.Errorf("Parse(%q) accepted an unknown level", in)
		}
	}
}

func TestParse_RejectsBadYAML(t *testing.T) {
	if _, err := Parse([]byte("root: [unclosed")); err == nil {
		t.Error("Parse accepted malformed YAML")
	}
}

func TestApply(t *testing.T) {
	cfg, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	reg := logger.NewRegistry(core.InfoLevel)
	// Pre-existing descendant should pick up the subtree level
	dialer := reg.Category("app.net.dialer")

	cfg.Apply(reg)

	if got := reg.Category("").Level(); got != core.WarnLevel {
		t.Errorf("root level = %v, want warn", got)
	}
	if got := reg.Category("app.db").Level(); got != core.DebugLevel {
		t.Errorf("app.db level = %v, want debug", got)
	}
	if got := dialer.Level(); got != core.ErrorLevel {
		t.Errorf("app.net.dialer level = %v, want propagated error", got)
	}
	// New category under a configured subtree inherits its level
	if got := reg.Category("app.db.tx").Level(); got != core.DebugLevel {
		t.Errorf("app.db.tx level = %v, want inherited debug", got)
	}
}

func TestApplyFile_MissingFile(t *testing.T) {
	reg := logger.NewRegistry(core.InfoLevel)
	if err := ApplyFile(filepath.Join(t.TempDir(), "nope.yaml"), reg); err == nil {
		t.Error("expected error for missing file")
	}
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
}

func waitForLevel(t *testing.T, c *core.Category, want core.Level) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if c.Level() == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Errorf("category %q level = %v, want %v after reload", c.Name(), c.Level(), want)
}

func TestWatch_ReloadsOnChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logging.yaml")
	writeConfig(t, path, "categories:\n  app: info\n")

	reg := logger.NewRegistry(core.InfoLevel)
	w, err := Watch(path, reg)
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	defer w.Close()

	app := reg.Category("app")
	if app.Level() != core.InfoLevel {
		t.Fatalf("initial level = %v, want info", app.Level())
	}

	writeConfig(t, path, "categories:\n  app: debug\n")
	waitForLevel(t, app, core.DebugLevel)
}

func TestWatch_BadReloadKeepsPrevious(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logging.yaml")
	writeConfig(t, path, "categories:\n  app: warn\n")

	reg := logger.NewRegistry(core.InfoLevel)
	errs := make(chan error, 1)
	w, err := Watch(path, reg, WithErrorHandler(func(e error) {
		select {
		case errs <- e:
		default:
		}
	}))
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	defer w.Close()

	app := reg.Category("app")
	writeConfig(t, path, "categories:\n  app: nonsense\n")

	select {
	case <-errs:
	case <-time.After(3 * time.Second):
		t.Fatal("error handler was not called for a broken reload")
	}
	if app.Level() != core.WarnLevel {
		t.Errorf("level changed on broken reload: %v", app.Level())
	}
}

func TestWatch_InitialLoadFailure(t *testing.T) {
	reg := logger.NewRegistry(core.InfoLevel)
	if _, err := Watch(filepath.Join(t.TempDir(), "absent.yaml"), reg); err == nil {
		t.Error("expected error when the initial load fails")
	}
}
