package canvas

// BorderStyle selects the box-drawing characters used for grid lines.
type BorderStyle int

const (
	// BorderNone draws grid lines as spaces.
	BorderNone BorderStyle = iota
	// BorderSingle uses single-line box-drawing characters (─, │, ┼)
	BorderSingle
	// BorderDouble uses double-line box-drawing characters (═, ║, ╬)
	BorderDouble
	// BorderThick uses heavy box-drawing characters (━, ┃, ╋)
	BorderThick
	// BorderASCII uses plain ASCII (-, |, +)
	BorderASCII
)

// BorderChars holds the characters used to draw grid lines.
type BorderChars struct {
	Horizontal rune
	Vertical   rune
	Cross      rune
}

// Chars returns the characters for this border style.
func (b BorderStyle) Chars() BorderChars {
	switch b {
	case BorderSingle:
		return BorderChars{Horizontal: '─', Vertical: '│', Cross: '┼'}
	case BorderDouble:
		return BorderChars{Horizontal: '═', Vertical: '║', Cross: '╬'}
	case BorderThick:
		return BorderChars{Horizontal: '━', Vertical: '┃', Cross: '╋'}
	case BorderASCII:
		return BorderChars{Horizontal: '-', Vertical: '|', Cross: '+'}
	default:
		return BorderChars{Horizontal: ' ', Vertical: ' ', Cross: ' '}
	}
}

// ParseBorderStyle maps a configuration name to a BorderStyle. Unknown
// names report false.
func ParseBorderStyle(name string) (BorderStyle, bool) {
	switch name {
	case "", "single":
		return BorderSingle, true
	case "none":
		return BorderNone, true
	case "double":
		return BorderDouble, true
	case "thick":
		return BorderThick, true
	case "ascii":
		return BorderASCII, true
	}
	return BorderNone, false
}
