package config

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
)

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagShapes     = flag.Int("shapes", 0, "Number of shapes to generate")
	flagSegments   = flag.String("segments", "", "Comma-separated segment lengths, e.g. 3,3,2,3")
	flagSeed       = flag.Int64("seed", 0, "Generation seed (0 = derive from clock)")
	flagSaveConfig = flag.Bool("save-config", false, "Write the effective config to the config directory and continue")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// SaveRequested reports whether --save-config was passed.
func SaveRequested() bool {
	return *flagSaveConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) error {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagShapes > 0 {
		cfg.Scene.ShapeCount = *flagShapes
	}
	if *flagSegments != "" {
		segments, err := parseSegments(*flagSegments)
		if err != nil {
			return fmt.Errorf("parsing -segments: %w", err)
		}
		cfg.Scene.Segments = segments
	}
	if *flagSeed != 0 {
		cfg.Scene.Seed = *flagSeed
	}
	return nil
}

// parseSegments parses a comma-separated list of positive segment lengths.
func parseSegments(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	segments := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("segment %q: %w", part, err)
		}
		if n <= 0 {
			return nil, fmt.Errorf("segment %q: length must be positive", part)
		}
		segments = append(segments, n)
	}
	return segments, nil
}
