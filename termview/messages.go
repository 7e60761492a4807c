package termview

import "github.com/grindlemire/go-table/internal/source"

// SheetMsg replaces the data shown.
type SheetMsg struct {
	Sheet source.Sheet
}

// ErrorMsg reports a failed load. The previous data stays on screen.
type ErrorMsg struct {
	Err error
}
