package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/soccerworks/pitchmesh/internal/field"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Field.SizeClass != "adult" {
		t.Errorf("expected size class 'adult', got %s", cfg.Field.SizeClass)
	}
	if !cfg.Field.TurfPhysics {
		t.Error("expected turf_physics to be true by default")
	}
	if cfg.Field.CircleVertices != field.DefaultCircleVertices {
		t.Errorf("expected circle_vertices %d, got %d", field.DefaultCircleVertices, cfg.Field.CircleVertices)
	}

	if cfg.Viewer.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Viewer.Width)
	}
	if cfg.Viewer.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Viewer.Height)
	}
	if cfg.Viewer.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Viewer.VSync {
		t.Error("expected vsync to be true by default")
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
field:
  size_class: "kid"
  turf_physics: false
  circle_vertices: 96
  position: [1.5, 0, 0]
  orientation:
    axis: [0, 0, 1]
    angle: 1.5707963

viewer:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false

logging:
  level: "debug"
  log_file: "pitch.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Field.SizeClass != "kid" {
		t.Errorf("expected size class 'kid', got %s", cfg.Field.SizeClass)
	}
	if cfg.Field.TurfPhysics {
		t.Error("expected turf_physics to be false")
	}
	if cfg.Field.CircleVertices != 96 {
		t.Errorf("expected circle_vertices 96, got %d", cfg.Field.CircleVertices)
	}
	if cfg.Field.Position != [3]float64{1.5, 0, 0} {
		t.Errorf("expected position [1.5 0 0], got %v", cfg.Field.Position)
	}
	if cfg.Field.Orientation.Angle != 1.5707963 {
		t.Errorf("expected orientation angle 1.5707963, got %v", cfg.Field.Orientation.Angle)
	}

	if cfg.Viewer.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Viewer.Width)
	}
	if !cfg.Viewer.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Viewer.VSync {
		t.Error("expected vsync to be false")
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "pitch.log" {
		t.Errorf("expected log file 'pitch.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
field:
  circle_vertices: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	err := loadFromFile(cfg, configPath)
	if err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	// Just verify it returns a non-empty absolute path; the actual
	// location depends on the OS.
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)

	// No config file exists - should return empty
	path := findConfigFile()
	if path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("field:\n  size_class: kid\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	// Should find it now
	path = findConfigFile()
	if path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name: "debug flag",
			setup: func() {
				*flagDebug = true
			},
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() {
				*flagDebug = false
			},
		},
		{
			name: "size flag",
			setup: func() {
				*flagSize = "kid"
			},
			verify: func(cfg *Config) {
				if cfg.Field.SizeClass != "kid" {
					t.Errorf("expected size class 'kid', got %s", cfg.Field.SizeClass)
				}
			},
			teardown: func() {
				*flagSize = ""
			},
		},
		{
			name: "no-physics flag",
			setup: func() {
				*flagNoPhysics = true
			},
			verify: func(cfg *Config) {
				if cfg.Field.TurfPhysics {
					t.Error("expected turf_physics to be false with no-physics flag")
				}
			},
			teardown: func() {
				*flagNoPhysics = false
			},
		},
		{
			name: "circle-vertices flag",
			setup: func() {
				*flagCircle = 128
			},
			verify: func(cfg *Config) {
				if cfg.Field.CircleVertices != 128 {
					t.Errorf("expected circle_vertices 128, got %d", cfg.Field.CircleVertices)
				}
			},
			teardown: func() {
				*flagCircle = 0
			},
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(cfg *Config) {
				if cfg.Viewer.Width != 2560 {
					t.Errorf("expected width 2560, got %d", cfg.Viewer.Width)
				}
				if cfg.Viewer.Height != 1440 {
					t.Errorf("expected height 1440, got %d", cfg.Viewer.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
field:
  size_class: "kid"
viewer:
  width: 1600
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Set flags to override the config file
	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width should be from flag (1920), not file (1600)
	if cfg.Viewer.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Viewer.Width)
	}

	// Size class should be from file since no flag override
	if cfg.Field.SizeClass != "kid" {
		t.Errorf("expected size class 'kid' from file, got %s", cfg.Field.SizeClass)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	// Nested path: SaveTo must create the parent directory.
	configPath := filepath.Join(tmpDir, "conf", "config.yaml")

	saved := Default()
	saved.Field.SizeClass = "kid"
	saved.Field.TurfPhysics = false
	saved.Field.CircleVertices = 96
	saved.Field.Position = [3]float64{2, -1, 0}
	saved.Field.Orientation = Orientation{Axis: [3]float64{0, 0, 1}, Angle: 0.5}
	saved.Viewer.Width = 800
	saved.Logging.Level = "warn"

	if err := saved.SaveTo(configPath); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, configPath); err != nil {
		t.Fatalf("failed to load saved config: %v", err)
	}

	if *loaded != *saved {
		t.Errorf("round trip mismatch:\nsaved  %+v\nloaded %+v", saved, loaded)
	}
}

func TestFieldParams(t *testing.T) {
	cfg := Default()
	params, err := cfg.FieldParams()
	if err != nil {
		t.Fatalf("FieldParams() error = %v", err)
	}
	if params.Size != field.SizeAdult {
		t.Errorf("expected adult size class, got %v", params.Size)
	}
	if !params.TurfPhysics {
		t.Error("expected turf physics enabled")
	}

	cfg.Field.SizeClass = "kid"
	params, err = cfg.FieldParams()
	if err != nil {
		t.Fatalf("FieldParams() error = %v", err)
	}
	if params.Size != field.SizeKid {
		t.Errorf("expected kid size class, got %v", params.Size)
	}
}

func TestFieldParamsInvalid(t *testing.T) {
	cfg := Default()
	cfg.Field.SizeClass = "giant"
	if _, err := cfg.FieldParams(); err == nil {
		t.Error("expected error for unknown size class, got nil")
	}

	cfg = Default()
	cfg.Field.CircleVertices = -4
	if _, err := cfg.FieldParams(); err == nil {
		t.Error("expected error for negative circle_vertices, got nil")
	}
}
