// Package config parses the command-line flags that select a ROM, the
// video backend, and the handful of emulation/debug knobs this core
// exposes. Full persistent JSON configuration (window geometry, audio
// mixing, per-key bindings) belongs to a complete frontend and is out of
// scope for this core.
package config

import (
	"flag"
	"fmt"
)

// Backend selects which output surface drives rendering.
type Backend string

const (
	BackendEbiten   Backend = "ebiten"
	BackendTerminal Backend = "terminal"
	BackendHeadless Backend = "headless"
)

// Config holds the parsed command-line configuration for one emulator run.
type Config struct {
	ROMPath string
	Backend Backend
	Scale   int
	Region  string // "NTSC" is the only region this core's timing models

	LogLevel   string
	CPUTrace   bool
	ShowFPS    bool
}

// Parse parses args (normally os.Args[1:]) into a Config, applying the
// teacher's familiar defaults (2x scale, ebiten backend, INFO logging).
func Parse(args []string) (*Config, error) {
	fs := flag.NewFlagSet("gones", flag.ContinueOnError)

	cfg := &Config{}
	var backend string
	fs.StringVar(&backend, "backend", string(BackendEbiten), "video backend: ebiten, terminal, or headless")
	fs.IntVar(&cfg.Scale, "scale", 2, "window scale factor (ebiten backend only)")
	fs.StringVar(&cfg.Region, "region", "NTSC", "console timing region")
	fs.StringVar(&cfg.LogLevel, "log-level", "INFO", "log verbosity: DEBUG, INFO, WARN, ERROR")
	fs.BoolVar(&cfg.CPUTrace, "cpu-trace", false, "recorded in the config only; no instruction trace is produced")
	fs.BoolVar(&cfg.ShowFPS, "fps", false, "overlay a frame-rate counter")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.Backend = Backend(backend)
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if fs.NArg() > 0 {
		cfg.ROMPath = fs.Arg(0)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Backend {
	case BackendEbiten, BackendTerminal, BackendHeadless:
	default:
		return fmt.Errorf("config: unknown backend %q", c.Backend)
	}
	if c.Scale <= 0 {
		c.Scale = 1
	}
	switch c.LogLevel {
	case "DEBUG", "INFO", "WARN", "ERROR":
	default:
		return fmt.Errorf("config: unknown log level %q", c.LogLevel)
	}
	return nil
}

// WindowResolution returns the host window size for the ebiten backend at
// the configured scale.
func (c *Config) WindowResolution() (int, int) {
	return 256 * c.Scale, 240 * c.Scale
}
