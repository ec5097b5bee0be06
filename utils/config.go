package utils

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"
)

const AppName = "anime_checklist"

// Dataset settings
type DataConfig struct {
	Source    string   `toml:"source" env:"CHECKLIST_DATASET"`
	MinYear   int      `toml:"min_year" env:"CHECKLIST_MIN_YEAR"`
	Blacklist []string `toml:"blacklist" env:"CHECKLIST_BLACKLIST" envSeparator:","`
}

// Layout settings, in terminal cells
type LayoutConfig struct {
	ListRowHeight   int `toml:"list_row_height"`
	GridItemHeight  int `toml:"grid_item_height"`
	GridMinColWidth int `toml:"grid_min_col_width" env:"CHECKLIST_GRID_MIN_COL_WIDTH"`
	NarrowThreshold int `toml:"narrow_threshold"`
	BufferRows      int `toml:"buffer_rows" env:"CHECKLIST_BUFFER_ROWS"`
}

// Timing settings for coalescing input bursts
type TimingConfig struct {
	SearchDebounceMS int `toml:"search_debounce_ms"`
	ResizeDebounceMS int `toml:"resize_debounce_ms"`
	FrameMS          int `toml:"frame_ms"`
}

func (t TimingConfig) SearchDebounce() time.Duration {
	return time.Duration(t.SearchDebounceMS) * time.Millisecond
}

func (t TimingConfig) ResizeDebounce() time.Duration {
	return time.Duration(t.ResizeDebounceMS) * time.Millisecond
}

func (t TimingConfig) Frame() time.Duration {
	return time.Duration(t.FrameMS) * time.Millisecond
}

// UI settings
type UIConfig struct {
	Locale    string `toml:"locale" env:"CHECKLIST_LOCALE"`
	ExportDir string `toml:"export_dir" env:"CHECKLIST_EXPORT_DIR"`
}

// Log settings
type LogConfig struct {
	Level string `toml:"level" env:"CHECKLIST_LOG_LEVEL"`
	File  string `toml:"file" env:"CHECKLIST_LOG_FILE"`
}

// Root config
type Config struct {
	Data   DataConfig   `toml:"data"`
	Layout LayoutConfig `toml:"layout"`
	Timing TimingConfig `toml:"timing"`
	UI     UIConfig     `toml:"ui"`
	Log    LogConfig    `toml:"log"`
}

// Global variable to hold config
var AppConfig = DefaultConfig()

func DefaultConfig() Config {
	dir := configDirOrEmpty()
	return Config{
		Data: DataConfig{
			Source:  filepath.Join(dir, "anime-offline-database-minified.json"),
			MinYear: 2007,
			Blacklist: []string{
				"hentai", "ecchi", "erotica", "borderline porn", "promotional",
				"anime influenced", "kids", "boys love", "yaoi", "shounen ai",
			},
		},
		Layout: LayoutConfig{
			ListRowHeight:   2,
			GridItemHeight:  7,
			GridMinColWidth: 30,
			NarrowThreshold: 60,
			BufferRows:      4,
		},
		Timing: TimingConfig{
			SearchDebounceMS: 300,
			ResizeDebounceMS: 100,
			FrameMS:          16,
		},
		UI: UIConfig{
			Locale:    "en",
			ExportDir: "~/Downloads",
		},
		Log: LogConfig{
			Level: "info",
			File:  filepath.Join(dir, "app.log"),
		},
	}
}

// LoadConfig reads a TOML file over the defaults, then applies environment
// overrides. A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ExpandPath(path))
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse environment: %w", err)
	}

	cfg.Data.Source = ExpandPath(cfg.Data.Source)
	cfg.Log.File = ExpandPath(cfg.Log.File)
	cfg.UI.ExportDir = ExpandPath(cfg.UI.ExportDir)
	cfg.sanitize()
	return cfg, nil
}

// sanitize puts defaults back for values that would break layout math.
func (c *Config) sanitize() {
	def := DefaultConfig()
	fix := func(v *int, d int) {
		if *v <= 0 {
			*v = d
		}
	}
	fix(&c.Layout.ListRowHeight, def.Layout.ListRowHeight)
	fix(&c.Layout.GridItemHeight, def.Layout.GridItemHeight)
	fix(&c.Layout.GridMinColWidth, def.Layout.GridMinColWidth)
	fix(&c.Timing.FrameMS, def.Timing.FrameMS)
	if c.Layout.NarrowThreshold < 0 {
		c.Layout.NarrowThreshold = 0
	}
	if c.Layout.BufferRows < 0 {
		c.Layout.BufferRows = 0
	}
	if c.Timing.SearchDebounceMS < 0 {
		c.Timing.SearchDebounceMS = 0
	}
	if c.Timing.ResizeDebounceMS < 0 {
		c.Timing.ResizeDebounceMS = 0
	}
}

// ConfigPath is where LoadAppConfig looks for config.toml by default.
func ConfigPath() string {
	return filepath.Join(configDirOrEmpty(), "config.toml")
}

// LoadAppConfig fills AppConfig from path, or from ConfigPath when empty.
func LoadAppConfig(path string) error {
	if path == "" {
		path = ConfigPath()
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return err
	}
	AppConfig = cfg
	return nil
}

// ---------------- Paths ----------------
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName), nil
}

func configDirOrEmpty() string {
	dir, err := configDir()
	if err != nil {
		return "."
	}
	return dir
}
