package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	table "github.com/grindlemire/go-table"
	"github.com/grindlemire/go-table/fynetable"
	"github.com/grindlemire/go-table/internal/debug"
	"github.com/grindlemire/go-table/internal/source"
)

// runGUI implements the gui subcommand.
func runGUI(args []string) error {
	fs, c := newFlagSet("gui")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg, err := c.config(fs)
	if err != nil {
		return err
	}
	defer debug.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	spec := specFor(cfg)
	s, err := source.Load(ctx, spec)
	if err != nil {
		return err
	}

	a := app.New()
	win := a.NewWindow("gotable - " + filepath.Base(spec.Path))

	textSize := theme.TextSize()
	m := fynetable.Measurer(textSize)
	v, err := fynetable.Build(cfg, m)
	if err != nil {
		return err
	}
	tbl := fynetable.New(v, m, textSize)
	status := widget.NewLabel("")
	tbl.OnSelected = func(p table.CellPosition) {
		status.SetText(selectionText(v.Sheet(), p))
	}
	tbl.SetSheet(s)

	if cfg.Source.Watch {
		w, err := source.NewWatcher(spec.Path)
		if err != nil {
			return err
		}
		defer w.Close()
		go func() {
			err := w.Run(ctx, func() error {
				s, err := source.Load(ctx, spec)
				fyne.Do(func() {
					if err != nil {
						status.SetText("error: " + err.Error())
						return
					}
					tbl.SetSheet(s)
				})
				return nil
			})
			if err != nil && !errors.Is(err, context.Canceled) {
				debug.Log("gotable: watcher stopped: %v", err)
			}
		}()
	}

	win.SetContent(container.NewBorder(nil, status, nil, nil, tbl))
	win.Resize(fyne.NewSize(800, 600))
	win.ShowAndRun()
	return nil
}

func selectionText(s source.Sheet, p table.CellPosition) string {
	return fmt.Sprintf("record %d/%d  %s: %s", p.Line+1, s.Len(), s.Columns[p.Element], s.Cell(p.Line, p.Element))
}
