package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.WorkspaceDir != "." {
		t.Fatalf("workspace = %q, want .", cfg.App.WorkspaceDir)
	}
	if cfg.App.Width != 0 || cfg.App.Height != 0 {
		t.Fatalf("dimensions = %dx%d, want 0x0", cfg.App.Width, cfg.App.Height)
	}
	if cfg.App.ShowFooter || cfg.App.Collapsed || cfg.Logging.Trace {
		t.Fatal("boolean options enabled by default")
	}
	if cfg.App.StateFile != "" || cfg.Logging.FilePath != "" {
		t.Fatal("path options set by default")
	}
}

func TestLoadArgsFlags(t *testing.T) {
	cfg, err := LoadArgs([]string{
		"-workspace", "/srv/docs",
		"-state-file", "/tmp/state.json",
		"-width", "120",
		"-height", "40",
		"-footer",
		"-collapsed",
		"-trace",
		"-log-file", "/tmp/docnav.log",
	}, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.WorkspaceDir != "/srv/docs" {
		t.Fatalf("workspace = %q", cfg.App.WorkspaceDir)
	}
	if cfg.App.StateFile != "/tmp/state.json" {
		t.Fatalf("stateFile = %q", cfg.App.StateFile)
	}
	if cfg.App.Width != 120 || cfg.App.Height != 40 {
		t.Fatalf("dimensions = %dx%d, want 120x40", cfg.App.Width, cfg.App.Height)
	}
	if !cfg.App.ShowFooter || !cfg.App.Collapsed || !cfg.Logging.Trace {
		t.Fatal("boolean flags not applied")
	}
	if cfg.Logging.FilePath != "/tmp/docnav.log" {
		t.Fatalf("logFile = %q", cfg.Logging.FilePath)
	}
}

func TestLoadArgsEnvironmentFallback(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{
		"DOCNAV_WORKSPACE=/env/docs",
		"DOCNAV_WIDTH=90",
		"DOCNAV_FOOTER=true",
		"DOCNAV_TRACE=1",
	})
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.WorkspaceDir != "/env/docs" {
		t.Fatalf("workspace = %q, want /env/docs", cfg.App.WorkspaceDir)
	}
	if cfg.App.Width != 90 {
		t.Fatalf("width = %d, want 90", cfg.App.Width)
	}
	if !cfg.App.ShowFooter || !cfg.Logging.Trace {
		t.Fatal("env booleans not applied")
	}
}

func TestLoadArgsFlagsOverrideEnvironment(t *testing.T) {
	cfg, err := LoadArgs(
		[]string{"-workspace", "/flag/docs", "-width", "80"},
		[]string{"DOCNAV_WORKSPACE=/env/docs", "DOCNAV_WIDTH=200"},
	)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.WorkspaceDir != "/flag/docs" {
		t.Fatalf("workspace = %q, flag must win over env", cfg.App.WorkspaceDir)
	}
	if cfg.App.Width != 80 {
		t.Fatalf("width = %d, flag must win over env", cfg.App.Width)
	}
}

func TestLoadArgsIgnoresMalformedEnvValues(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{
		"DOCNAV_WIDTH=wide",
		"DOCNAV_FOOTER=maybe",
		"NOT_AN_ENTRY",
	})
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.Width != 0 {
		t.Fatalf("width = %d, want fallback 0", cfg.App.Width)
	}
	if cfg.App.ShowFooter {
		t.Fatal("unparsable footer value did not fall back")
	}
}

func TestLoadArgsRejectsNegativeDimensions(t *testing.T) {
	if _, err := LoadArgs([]string{"-width", "-1"}, nil); err == nil {
		t.Fatal("negative width accepted")
	}
	if _, err := LoadArgs([]string{"-height", "-5"}, nil); err == nil {
		t.Fatal("negative height accepted")
	}
}

func TestLoadArgsRecordsFlagsForTracing(t *testing.T) {
	cfg, err := LoadArgs([]string{"-workspace", "/srv/docs", "-trace"}, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.Flags["workspace"] != "/srv/docs" {
		t.Fatalf("flags[workspace] = %q", cfg.Flags["workspace"])
	}
	if cfg.Flags["trace"] != "true" {
		t.Fatalf("flags[trace] = %q", cfg.Flags["trace"])
	}
	if len(cfg.Args) != 3 {
		t.Fatalf("args = %v", cfg.Args)
	}
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "plain.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	good, _ := LoadArgs([]string{"-workspace", dir}, nil)
	if err := Validate(good); err != nil {
		t.Fatalf("Validate(dir) = %v", err)
	}

	missing, _ := LoadArgs([]string{"-workspace", filepath.Join(dir, "absent")}, nil)
	if err := Validate(missing); err == nil {
		t.Fatal("missing workspace accepted")
	}

	notDir, _ := LoadArgs([]string{"-workspace", file}, nil)
	if err := Validate(notDir); err == nil {
		t.Fatal("file workspace accepted")
	}

	blank := good
	blank.App.WorkspaceDir = "   "
	if err := Validate(blank); err == nil {
		t.Fatal("blank workspace accepted")
	}
}
