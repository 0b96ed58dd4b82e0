package config

import "flag"

var (
	flagConfig    = flag.String("config", "", "Path to config file")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
	flagSize      = flag.String("size", "", "Field size class (adult or kid)")
	flagNoPhysics = flag.Bool("no-physics", false, "Disable turf physics surfaces")
	flagCircle    = flag.Int("circle-vertices", 0, "Center circle tessellation count")
	flagWindowed  = flag.Bool("windowed", false, "Run the viewer in windowed mode")
	flagFullscr   = flag.Bool("fullscreen", false, "Run the viewer in fullscreen mode")
	flagWidth     = flag.Int("width", 0, "Viewer window width")
	flagHeight    = flag.Int("height", 0, "Viewer window height")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagSize != "" {
		cfg.Field.SizeClass = *flagSize
	}
	if *flagNoPhysics {
		cfg.Field.TurfPhysics = false
	}
	if *flagCircle > 0 {
		cfg.Field.CircleVertices = *flagCircle
	}
	if *flagWindowed {
		cfg.Viewer.Fullscreen = false
	}
	if *flagFullscr {
		cfg.Viewer.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Viewer.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Viewer.Height = *flagHeight
	}
}
