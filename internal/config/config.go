package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/docworks/docnav/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envWorkspace  = "DOCNAV_WORKSPACE"
	envStateFile  = "DOCNAV_STATE_FILE"
	envWidth      = "DOCNAV_WIDTH"
	envHeight     = "DOCNAV_HEIGHT"
	envShowFooter = "DOCNAV_FOOTER"
	envCollapsed  = "DOCNAV_COLLAPSED"
	envTrace      = "DOCNAV_TRACE"
	envLogFile    = "DOCNAV_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("docnav", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	workspaceDir := fs.String("workspace", envOrDefault(env, envWorkspace, "."), "path to the document workspace directory")
	stateFile := fs.String("state-file", envOrDefault(env, envStateFile, ""), "path for persisted navigation state (empty disables persistence)")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	collapsed := fs.Bool("collapsed", envOrBool(env, envCollapsed, false), "start with the sidebar collapsed to an icon rail")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			WorkspaceDir: *workspaceDir,
			StateFile:    *stateFile,
			Width:        *width,
			Height:       *height,
			ShowFooter:   *footer,
			Collapsed:    *collapsed,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"workspace": *workspaceDir,
			"stateFile": *stateFile,
			"width":     strconv.Itoa(*width),
			"height":    strconv.Itoa(*height),
			"footer":    strconv.FormatBool(*footer),
			"collapsed": strconv.FormatBool(*collapsed),
			"trace":     strconv.FormatBool(*trace),
			"logFile":   *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.App.WorkspaceDir) == "" {
		return fmt.Errorf("workspace directory must not be empty")
	}
	info, err := os.Stat(cfg.App.WorkspaceDir)
	if err != nil {
		return fmt.Errorf("workspace directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("workspace path %s is not a directory", cfg.App.WorkspaceDir)
	}
	return nil
}
