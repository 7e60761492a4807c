package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/grindlemire/go-table/internal/config"
	"github.com/grindlemire/go-table/internal/debug"
	"github.com/grindlemire/go-table/internal/source"
)

var errNoSource = errors.New("no source: pass a file or set [source] path in the config")

// common holds the flags shared by every command. Set flags override the
// config file.
type common struct {
	configPath string
	query      string
	axis       string
	border     string
	debugPath  string
	watch      bool
}

func newFlagSet(name string) (*flag.FlagSet, *common) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	c := &common{}
	fs.StringVar(&c.configPath, "config", "", "TOML configuration file")
	fs.StringVar(&c.query, "query", "", "SQL query for SQLite sources")
	fs.StringVar(&c.axis, "axis", "", "vertical or horizontal record layout")
	fs.StringVar(&c.border, "border", "", "grid line style")
	fs.StringVar(&c.debugPath, "debug", "", "debug log file")
	fs.BoolVar(&c.watch, "watch", false, "reload when the file changes")
	return fs, c
}

// config merges the config file, the flags and the positional file argument
// of a parsed fs, then starts debug logging if asked to.
func (c *common) config(fs *flag.FlagSet) (config.Config, error) {
	cfg := config.Default()
	if c.configPath != "" {
		var err error
		if cfg, err = config.Load(c.configPath); err != nil {
			return config.Config{}, err
		}
	}

	if fs.NArg() > 1 {
		return config.Config{}, fmt.Errorf("expected one file, got %d", fs.NArg())
	}
	if fs.NArg() == 1 {
		cfg.Source.Path = fs.Arg(0)
	}
	if c.query != "" {
		cfg.Source.Query = c.query
	}
	if c.axis != "" {
		cfg.Axis = c.axis
	}
	if c.border != "" {
		cfg.Border = c.border
	}
	if c.debugPath != "" {
		cfg.Debug = c.debugPath
	}
	if c.watch {
		cfg.Source.Watch = true
	}

	if cfg.Source.Path == "" {
		return config.Config{}, errNoSource
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	if cfg.Debug != "" {
		if err := debug.Init(cfg.Debug); err != nil {
			return config.Config{}, fmt.Errorf("opening debug log: %w", err)
		}
	}
	return cfg, nil
}

func specFor(cfg config.Config) source.Spec {
	return source.Spec{
		Kind:  source.Kind(cfg.Source.Kind),
		Path:  cfg.Source.Path,
		Query: cfg.Source.Query,
	}
}
