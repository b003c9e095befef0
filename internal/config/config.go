package config

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/wcatz/widget-grid/internal/grid"
)

// GridSettings holds the engine defaults applied when a caller does not
// specify its own values.
type GridSettings struct {
	Cols          int `yaml:"cols"`
	DefaultWidth  int `yaml:"default_width"`
	DefaultHeight int `yaml:"default_height"`
	MaxScanRows   int `yaml:"max_scan_rows"`
}

// BreakpointDef is one entry of a breakpoint table override.
type BreakpointDef struct {
	MinWidth int `yaml:"min_width"`
	Cols     int `yaml:"cols"`
}

// ServerSettings holds the HTTP server config.
type ServerSettings struct {
	Port      int    `yaml:"port"`
	LayoutDir string `yaml:"layout_dir"`
}

// Config holds the entire YAML configuration.
type Config struct {
	Grid        GridSettings             `yaml:"grid"`
	Breakpoints map[string]BreakpointDef `yaml:"breakpoints"`
	Server      ServerSettings           `yaml:"server"`
}

// Default returns the built-in configuration used when no file is given.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads and parses a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return LoadFromBytes(data)
}

// LoadFromBytes parses a YAML config from raw bytes (for validation).
func LoadFromBytes(data []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	c.applyDefaults()
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.Grid.Cols == 0 {
		c.Grid.Cols = grid.DefaultCols
	}
	if c.Grid.DefaultWidth == 0 {
		c.Grid.DefaultWidth = 6
	}
	if c.Grid.DefaultHeight == 0 {
		c.Grid.DefaultHeight = 4
	}
	if c.Grid.MaxScanRows == 0 {
		c.Grid.MaxScanRows = grid.DefaultMaxScanRows
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.LayoutDir == "" {
		c.Server.LayoutDir = "layouts"
	}
}

func (c *Config) validate() error {
	if c.Grid.Cols < 1 {
		return fmt.Errorf("grid.cols must be positive, got %d", c.Grid.Cols)
	}
	if c.Grid.DefaultWidth < 1 || c.Grid.DefaultHeight < 1 {
		return fmt.Errorf("grid default size must be positive, got %dx%d", c.Grid.DefaultWidth, c.Grid.DefaultHeight)
	}
	if c.Grid.DefaultWidth > c.Grid.Cols {
		return fmt.Errorf("grid.default_width %d exceeds grid.cols %d", c.Grid.DefaultWidth, c.Grid.Cols)
	}
	if c.Grid.MaxScanRows < 1 {
		return fmt.Errorf("grid.max_scan_rows must be positive, got %d", c.Grid.MaxScanRows)
	}
	for name, bp := range c.Breakpoints {
		if bp.Cols < 1 {
			return fmt.Errorf("breakpoint '%s': cols must be positive, got %d", name, bp.Cols)
		}
		if bp.MinWidth < 0 {
			return fmt.Errorf("breakpoint '%s': min_width must be >= 0, got %d", name, bp.MinWidth)
		}
	}
	return nil
}

// Table builds the active breakpoint table: the override from the config
// file when one is present, otherwise grid.DefaultTable. Entries are
// ordered widest first, as Table lookups require.
func (c *Config) Table() grid.Table {
	if len(c.Breakpoints) == 0 {
		return grid.DefaultTable
	}
	table := make(grid.Table, 0, len(c.Breakpoints))
	for name, bp := range c.Breakpoints {
		table = append(table, grid.Breakpoint{Name: name, MinWidth: bp.MinWidth, Cols: bp.Cols})
	}
	sort.SliceStable(table, func(i, j int) bool {
		if table[i].MinWidth != table[j].MinWidth {
			return table[i].MinWidth > table[j].MinWidth
		}
		return table[i].Name < table[j].Name
	})
	return table
}
