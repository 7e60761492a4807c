package canvas

import (
	"testing"

	table "github.com/grindlemire/go-table"
)

func TestCanvas_Surface(t *testing.T) {
	type tc struct {
		width, height int
		opts          []Option
		paint         func(c *Canvas)
		want          string
	}

	tests := map[string]tc{
		"text at rect origin": {
			width: 6, height: 2,
			paint: func(c *Canvas) {
				c.Text(table.NewRect(1, 1, 5, 1), "hi", table.RoleCell)
			},
			want: "\n hi",
		},
		"text truncated to rect": {
			width: 6, height: 1,
			paint: func(c *Canvas) {
				c.Text(table.NewRect(0, 0, 3, 1), "abcdef", table.RoleCell)
			},
			want: "abc",
		},
		"translate moves drawing": {
			width: 6, height: 2,
			paint: func(c *Canvas) {
				c.Translate(table.Point{X: 2, Y: 1})
				c.Text(table.NewRect(0, 0, 4, 1), "ab", table.RoleCell)
			},
			want: "\n  ab",
		},
		"clip uses current translation": {
			width: 6, height: 1,
			paint: func(c *Canvas) {
				c.Translate(table.Point{X: -2})
				c.Clip(table.NewRect(2, 0, 3, 1))
				c.Text(table.NewRect(0, 0, 8, 1), "abcdefgh", table.RoleCell)
			},
			want: "cde",
		},
		"restore drops clip and translation": {
			width: 6, height: 1,
			paint: func(c *Canvas) {
				c.Save()
				c.Translate(table.Point{X: 3})
				c.Clip(table.NewRect(0, 0, 1, 1))
				c.Restore()
				c.Text(table.NewRect(0, 0, 6, 1), "abc", table.RoleCell)
			},
			want: "abc",
		},
		"grid lines cross": {
			width: 3, height: 3,
			paint: func(c *Canvas) {
				c.Line(table.Point{X: 0, Y: 1}, table.Point{X: 3, Y: 1}, table.RoleGrid)
				c.Line(table.Point{X: 1, Y: 0}, table.Point{X: 1, Y: 3}, table.RoleGrid)
			},
			want: " │\n─┼─\n │",
		},
		"vertical rules only": {
			width: 3, height: 2,
			opts: []Option{WithRules(RulesVertical), WithBorder(BorderASCII)},
			paint: func(c *Canvas) {
				c.Line(table.Point{X: 0, Y: 1}, table.Point{X: 3, Y: 1}, table.RoleGrid)
				c.Line(table.Point{X: 1, Y: 0}, table.Point{X: 1, Y: 2}, table.RoleGrid)
			},
			want: " |\n |",
		},
		"line clipped": {
			width: 4, height: 1,
			paint: func(c *Canvas) {
				c.Clip(table.NewRect(1, 0, 2, 1))
				c.Line(table.Point{X: 0, Y: 0}, table.Point{X: 4, Y: 0}, table.RoleGrid)
			},
			want: " ──",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := New(tt.width, tt.height, tt.opts...)
			tt.paint(c)
			if got := c.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCanvas_FillRole(t *testing.T) {
	c := New(4, 2)
	c.Fill(table.NewRect(1, 0, 2, 5), table.RoleHeader)

	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			want := table.RoleBackground
			if x == 1 || x == 2 {
				want = table.RoleHeader
			}
			if got := c.Buffer().Cell(x, y).Role; got != want {
				t.Errorf("Cell(%d, %d).Role = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestCanvas_Restyle(t *testing.T) {
	c := New(4, 1)
	c.Text(table.NewRect(0, 0, 4, 1), "abcd", table.RoleCell)
	c.Restyle(table.NewRect(1, 0, 2, 1), table.RoleSelected)

	want := []table.Role{table.RoleCell, table.RoleSelected, table.RoleSelected, table.RoleCell}
	for x, role := range want {
		if got := c.Buffer().Cell(x, 0); got.Role != role {
			t.Errorf("Cell(%d, 0).Role = %v, want %v", x, got.Role, role)
		}
	}
	if got := c.String(); got != "abcd" {
		t.Errorf("String() = %q, runes should be kept", got)
	}
}

func TestCanvas_RestoreWithoutSave(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Restore without Save should panic")
		}
	}()
	New(1, 1).Restore()
}

func TestCanvas_Reset(t *testing.T) {
	c := New(3, 1)
	c.Translate(table.Point{X: 1})
	c.Save()
	c.Text(table.NewRect(0, 0, 2, 1), "ab", table.RoleCell)

	c.Reset(2, 2)
	c.Text(table.NewRect(0, 0, 2, 1), "cd", table.RoleCell)
	if got := c.String(); got != "cd\n" {
		t.Errorf("String() = %q, want %q", got, "cd\n")
	}
}

func TestCanvas_MeasureText(t *testing.T) {
	type tc struct {
		text string
		want float64
	}

	tests := map[string]tc{
		"empty": {text: "", want: 0},
		"ascii": {text: "abc", want: 3},
		"wide":  {text: "世界", want: 4},
		"mixed": {text: "a世b", want: 4},
	}

	c := New(0, 0)
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := c.MeasureText(tt.text)
			if got.Width != tt.want || got.Height != 1 {
				t.Errorf("MeasureText(%q) = %+v, want {%v 1}", tt.text, got, tt.want)
			}
		})
	}
}

type rows = [][]string

func TestCanvas_PaintsTable(t *testing.T) {
	type tc struct {
		opts []Option
		grid bool
		want string
	}

	tests := map[string]tc{
		"cells only": {
			want: " a   bbb\n cc  d",
		},
		"vertical grid": {
			opts: []Option{WithRules(RulesVertical)},
			grid: true,
			want: "│a  │bbb │\n│cc │d   │",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := New(12, 3, tt.opts...)
			label := func() table.Widget[string] {
				return &table.Label[string]{Measurer: c, Role: table.RoleCell, Padding: table.Size{Width: 1}}
			}

			tbl, err := table.New[rows](table.WithPainter[rows](table.DefaultPainter[rows]{NoGrid: !tt.grid}))
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			data := rows{{"a", "bbb"}, {"cc", "d"}}
			for i := range data {
				tbl.AddLine(table.NewWidgetLine(func(d rows) []string { return d[i] }, label), table.Auto())
			}
			tbl.Attach(data)
			size := tbl.Layout(table.Size{Width: 12, Height: 3}, data)
			if size != (table.Size{Width: 9, Height: 2}) {
				t.Fatalf("Layout() = %+v, want 9x2", size)
			}
			tbl.Paint(c, data, table.NewRect(0, 0, 12, 3))

			if got := c.String(); got != tt.want+"\n" {
				t.Errorf("String() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}
