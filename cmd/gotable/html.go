package main

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/grindlemire/go-table/htmlexport"
	"github.com/grindlemire/go-table/internal/config"
	"github.com/grindlemire/go-table/internal/debug"
	"github.com/grindlemire/go-table/internal/source"
)

// runHTML implements the html subcommand.
func runHTML(args []string) error {
	fs, c := newFlagSet("html")
	out := fs.String("o", "", "output file (default: stdout)")
	title := fs.String("title", "", "page title (default: the file name)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg, err := c.config(fs)
	if err != nil {
		return err
	}
	defer debug.Close()

	s, err := source.Load(context.Background(), specFor(cfg))
	if err != nil {
		return err
	}
	if *title == "" {
		*title = filepath.Base(cfg.Source.Path)
	}

	if *out == "" {
		return exportSheet(os.Stdout, cfg, s, *title)
	}
	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	if err := exportSheet(f, cfg, s, *title); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// exportSheet writes the whole of s to w as a page.
func exportSheet(w io.Writer, cfg config.Config, s source.Sheet, title string) error {
	o := htmlexport.DefaultOptions()
	o.Title = title
	v, err := htmlexport.Build(cfg, o)
	if err != nil {
		return err
	}
	v.Set(s)
	r, err := htmlexport.NewRenderer()
	if err != nil {
		return err
	}
	return r.Render(w, v, o)
}
