package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/go-table/internal/debug"
	"github.com/grindlemire/go-table/internal/source"
	"github.com/grindlemire/go-table/termview"
)

// sender delivers messages to a running program.
type sender interface {
	Send(msg tea.Msg)
}

// runView implements the view subcommand. With -watch the program and the
// file watcher run in one errgroup; whichever fails first stops the other.
func runView(args []string) error {
	fs, c := newFlagSet("view")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg, err := c.config(fs)
	if err != nil {
		return err
	}
	defer debug.Close()

	v, cv, err := termview.Build(cfg)
	if err != nil {
		return err
	}

	var w *source.Watcher
	if cfg.Source.Watch {
		if w, err = source.NewWatcher(cfg.Source.Path); err != nil {
			return err
		}
		defer w.Close()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	spec := specFor(cfg)
	load := func() (source.Sheet, error) {
		return source.Load(gctx, spec)
	}
	p := tea.NewProgram(termview.New(v, cv, load),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(gctx),
	)

	g.Go(func() error {
		defer cancel()
		_, err := p.Run()
		return err
	})
	if w != nil {
		g.Go(func() error {
			err := w.Run(gctx, func() error {
				reloadInto(p, load)
				return nil
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		})
	}

	return g.Wait()
}

// reloadInto loads the sheet and sends it, or the load error, to s.
func reloadInto(s sender, load func() (source.Sheet, error)) {
	sheet, err := load()
	if err != nil {
		debug.Log("gotable: reload failed: %v", err)
		s.Send(termview.ErrorMsg{Err: err})
		return
	}
	s.Send(termview.SheetMsg{Sheet: sheet})
}
