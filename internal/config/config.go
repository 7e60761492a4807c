// Package config loads the TOML file that describes how a sheet is laid out
// and where its data comes from.
//
// A minimal file:
//
//	axis = "vertical"
//	line_header = 5
//
//	[source]
//	kind = "csv"
//	path = "people.csv"
//
//	[[columns]]
//	name = "email"
//	width = 30
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	table "github.com/grindlemire/go-table"
	"github.com/grindlemire/go-table/internal/canvas"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid configuration")

// Config is the decoded configuration file.
type Config struct {
	// Axis is "vertical" (records stack top to bottom) or "horizontal"
	// (records stack left to right).
	Axis string `toml:"axis"`
	// LineHeader is the cross size of the record header, 0 to hide it.
	LineHeader float64 `toml:"line_header"`
	// ElementHeader is the cross size of the field header, 0 to hide it.
	ElementHeader float64 `toml:"element_header"`
	Border        string  `toml:"border"`
	Sticky        bool    `toml:"sticky"`
	// Debug names a debug log file.
	Debug   string   `toml:"debug"`
	Source  Source   `toml:"source"`
	Columns []Column `toml:"columns"`
}

// Source describes where the sheet is loaded from.
type Source struct {
	Kind  string `toml:"kind"` // "csv" or "sqlite"; derived from the path when empty
	Path  string `toml:"path"`
	Query string `toml:"query"` // sqlite only
	Watch bool   `toml:"watch"` // reload when the file changes
}

// Column sizes one field. At most one of Width and Percent may be set; with
// neither the column is sized by its content, optionally within [Min, Max].
type Column struct {
	Name    string  `toml:"name"`
	Width   float64 `toml:"width"`
	Percent float64 `toml:"percent"`
	Min     float64 `toml:"min"`
	Max     float64 `toml:"max"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Axis:          "vertical",
		LineHeader:    5,
		ElementHeader: 1,
		Border:        "single",
		Sticky:        true,
	}
}

// Load reads and validates the file at path on top of Default.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	cfg, err := Parse(string(data))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates a TOML document on top of Default. Unknown
// keys are rejected.
func Parse(data string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("%w: unknown keys %s", ErrInvalid, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges and combinations.
func (c Config) Validate() error {
	if _, err := parseAxis(c.Axis); err != nil {
		return err
	}
	if c.LineHeader < 0 || c.ElementHeader < 0 {
		return fmt.Errorf("%w: header sizes must not be negative", ErrInvalid)
	}
	if _, ok := canvas.ParseBorderStyle(c.Border); !ok {
		return fmt.Errorf("%w: unknown border %q", ErrInvalid, c.Border)
	}
	switch c.Source.Kind {
	case "", "csv":
	case "sqlite":
		if c.Source.Query == "" {
			return fmt.Errorf("%w: sqlite source needs a query", ErrInvalid)
		}
	default:
		return fmt.Errorf("%w: unknown source kind %q", ErrInvalid, c.Source.Kind)
	}

	seen := make(map[string]bool, len(c.Columns))
	for i, col := range c.Columns {
		if col.Name == "" {
			return fmt.Errorf("%w: column %d has no name", ErrInvalid, i)
		}
		if seen[col.Name] {
			return fmt.Errorf("%w: column %q configured twice", ErrInvalid, col.Name)
		}
		seen[col.Name] = true
		if err := col.validate(); err != nil {
			return fmt.Errorf("%w: column %q: %v", ErrInvalid, col.Name, err)
		}
	}
	return nil
}

func (c Column) validate() error {
	switch {
	case c.Width < 0 || c.Percent < 0 || c.Min < 0 || c.Max < 0:
		return errors.New("sizes must not be negative")
	case c.Width > 0 && c.Percent > 0:
		return errors.New("width and percent are exclusive")
	case c.Percent > 100:
		return errors.New("percent must be at most 100")
	case c.Max > 0 && c.Max < c.Min:
		return errors.New("max is smaller than min")
	case (c.Width > 0 || c.Percent > 0) && (c.Min > 0 || c.Max > 0):
		return errors.New("min and max only apply to content sized columns")
	}
	return nil
}

func parseAxis(s string) (table.Axis, error) {
	switch s {
	case "vertical", "":
		return table.Vertical, nil
	case "horizontal":
		return table.Horizontal, nil
	}
	return table.Vertical, fmt.Errorf("%w: unknown axis %q", ErrInvalid, s)
}

// LineAxis returns the direction records are stacked along.
func (c Config) LineAxis() table.Axis {
	a, _ := parseAxis(c.Axis)
	return a
}

// BorderStyle returns the grid line style.
func (c Config) BorderStyle() canvas.BorderStyle {
	b, _ := canvas.ParseBorderStyle(c.Border)
	return b
}

// Value returns the sizing value of the column.
func (c Column) Value() table.Value {
	switch {
	case c.Width > 0:
		return table.Fixed(c.Width)
	case c.Percent > 0:
		return table.Percent(c.Percent)
	}
	return table.Auto()
}

// Part returns the axis part the column is laid out with.
func (c Column) Part() table.AxisPart {
	if c.Value().IsAuto() && (c.Min > 0 || c.Max > 0) {
		hi := c.Max
		if hi == 0 {
			hi = math.Inf(1)
		}
		return table.BoundedPart(c.Min, hi)
	}
	return c.Value().Part()
}

// Column returns the configuration of the named column.
func (c Config) Column(name string) (Column, bool) {
	for _, col := range c.Columns {
		if col.Name == name {
			return col, true
		}
	}
	return Column{}, false
}

// UsesPercent reports whether any column is sized relative to the viewport.
func (c Config) UsesPercent() bool {
	for _, col := range c.Columns {
		if col.Percent > 0 {
			return true
		}
	}
	return false
}

// Options returns the table options the configuration implies. Percent
// columns need a bounded body to resolve against.
func (c Config) Options() []table.Option {
	opts := []table.Option{
		table.WithLineAxis(c.LineAxis()),
		table.WithLineHeader(c.LineHeader),
		table.WithElementHeader(c.ElementHeader),
		table.WithStickyEdges(c.Sticky),
	}
	if c.UsesPercent() {
		opts = append(opts, table.WithBoundedBody())
	}
	return opts
}
