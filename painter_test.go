package table

import "testing"

func arrangedText(t *testing.T, axis Axis, data [][]string) *Table[[][]string] {
	t.Helper()
	tbl, err := New[[][]string](WithLineAxis(axis))
	if err != nil {
		t.Fatal(err)
	}
	for i := range data {
		tbl.AddLine(textLine(i), Auto())
	}
	tbl.Attach(data)
	tbl.Layout(Size{Width: 80, Height: 24}, data)
	return tbl
}

func TestGridLines(t *testing.T) {
	data := [][]string{{"a", "bb", "ccc"}, {"dd", "e", "f"}}

	type tc struct {
		viewport Rect
		want     []Segment
	}

	tests := map[string]tc{
		"whole table": {
			viewport: NewRect(0, 0, 80, 24),
			want: []Segment{
				{From: Point{X: 0, Y: 0}, To: Point{X: 7, Y: 0}},
				{From: Point{X: 0, Y: 1}, To: Point{X: 7, Y: 1}},
				{From: Point{X: 0, Y: 2}, To: Point{X: 7, Y: 2}},
				{From: Point{X: 0, Y: 0}, To: Point{X: 0, Y: 2}},
				{From: Point{X: 2, Y: 0}, To: Point{X: 2, Y: 2}},
				{From: Point{X: 4, Y: 0}, To: Point{X: 4, Y: 2}},
				{From: Point{X: 7, Y: 0}, To: Point{X: 7, Y: 2}},
			},
		},
		"clipped to the viewport": {
			viewport: NewRect(3, 1, 3, 1),
			want: []Segment{
				{From: Point{X: 3, Y: 1}, To: Point{X: 6, Y: 1}},
				{From: Point{X: 3, Y: 2}, To: Point{X: 6, Y: 2}},
				{From: Point{X: 4, Y: 1}, To: Point{X: 4, Y: 2}},
			},
		},
		"outside the table": {
			viewport: NewRect(10, 10, 5, 5),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tbl := arrangedText(t, Vertical, data)
			got := GridLines(tbl.Arrangement(), tt.viewport)
			if len(got) != len(tt.want) {
				t.Fatalf("GridLines() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("segment %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestDefaultPainter_PaintsGrid(t *testing.T) {
	data := [][]string{{"a", "b"}}
	tbl := arrangedText(t, Horizontal, data)

	r := &recorder{}
	tbl.Paint(r, data, NewRect(0, 0, 80, 24))

	var lines, texts int
	for _, o := range r.ops {
		switch o.kind {
		case "line":
			lines++
			if o.role != RoleGrid {
				t.Errorf("line role = %s, want grid", o.role)
			}
		case "text":
			texts++
		}
	}
	// One line of two elements: 2 line boundaries and 3 element boundaries.
	if lines != 5 {
		t.Errorf("grid lines = %d, want 5", lines)
	}
	if texts != 2 {
		t.Errorf("texts = %d, want 2", texts)
	}
}
