package table

import (
	"errors"
	"fmt"
)

// ErrLineLength reports lines of one table holding different element counts.
var ErrLineLength = errors.New("table: lines differ in length")

// LineLengthError describes the first line whose element count differs
// from the first line of the table.
type LineLengthError struct {
	Line int // Index of the offending line
	Got  int // Its element count
	Want int // Element count of line 0
}

func (e *LineLengthError) Error() string {
	return fmt.Sprintf("table: line %d has %d elements instead of %d", e.Line, e.Got, e.Want)
}

// Is reports whether target is ErrLineLength.
func (e *LineLengthError) Is(target error) bool {
	return target == ErrLineLength
}
