package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"

	"golang.org/x/term"

	table "github.com/grindlemire/go-table"
	"github.com/grindlemire/go-table/internal/config"
	"github.com/grindlemire/go-table/internal/debug"
	"github.com/grindlemire/go-table/internal/source"
	"github.com/grindlemire/go-table/termview"
)

const defaultWidth = 80

// runPrint implements the print subcommand.
func runPrint(args []string) error {
	fs, c := newFlagSet("print")
	width := fs.Int("width", 0, "output width in cells (default: terminal width)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg, err := c.config(fs)
	if err != nil {
		return err
	}
	defer debug.Close()

	w := *width
	if w <= 0 {
		w = terminalWidth()
	}
	s, err := source.Load(context.Background(), specFor(cfg))
	if err != nil {
		return err
	}
	return printSheet(os.Stdout, cfg, s, w)
}

// printSheet writes every record of s to w, the table being width cells
// wide.
func printSheet(w io.Writer, cfg config.Config, s source.Sheet, width int) error {
	v, cv, err := termview.Build(cfg)
	if err != nil {
		return err
	}
	v.Set(s)
	size := v.Layout(table.Size{Width: float64(width), Height: math.Inf(1)}, s)
	cv.Reset(int(math.Ceil(size.Width)), int(math.Ceil(size.Height)))
	v.Paint(cv, s)
	_, err = fmt.Fprintln(w, cv.String())
	return err
}

func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return defaultWidth
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}
