package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/docworks/docnav/internal/app"
	"github.com/docworks/docnav/internal/config"
	"github.com/docworks/docnav/internal/logging"
	"github.com/docworks/docnav/internal/logging/events"
)

func main() {
	os.Exit(run(config.MustLoad()))
}

func run(cfg config.Config) int {
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		return 2
	}
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)
	events.App.Start(startupTracePayload(cfg))

	if err := app.Run(cfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":      cfg.Args,
		"flags":     flags,
		"workspace": cfg.App.WorkspaceDir,
		"config":    cfg,
		"terminal":  probeTerminal(),
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	}
	return payload
}

// terminalReport records which standard descriptors are terminals and the
// first usable size. The UI sizes itself from Bubble Tea resize messages;
// this exists only so trace logs explain why a session rendered the way it
// did.
type terminalReport struct {
	Size   *terminalSize     `json:"size,omitempty"`
	Probes []descriptorProbe `json:"descriptors"`
}

type terminalSize struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type descriptorProbe struct {
	Name     string `json:"name"`
	Terminal bool   `json:"terminal"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
	Error    string `json:"error,omitempty"`
}

func probeTerminal() terminalReport {
	report := terminalReport{}
	for _, std := range []struct {
		name string
		file *os.File
	}{
		{"stdin", os.Stdin},
		{"stdout", os.Stdout},
		{"stderr", os.Stderr},
	} {
		fd := int(std.file.Fd())
		probe := descriptorProbe{Name: std.name, Terminal: term.IsTerminal(fd)}
		if probe.Terminal {
			width, height, err := term.GetSize(fd)
			if err != nil {
				probe.Error = err.Error()
			} else {
				probe.Width = width
				probe.Height = height
				if report.Size == nil {
					report.Size = &terminalSize{Source: std.name, Width: width, Height: height}
				}
			}
		}
		report.Probes = append(report.Probes, probe)
	}
	return report
}
