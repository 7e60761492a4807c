package table

import "testing"

type counters struct {
	values []int
}

type counterWidget struct {
	seen int
}

func (w *counterWidget) Event(ev Event, v *int) bool {
	if ev != "inc" {
		return false
	}
	*v++
	return true
}

func (w *counterWidget) Update(v int) { w.seen = v }

func (w *counterWidget) Measure(bc Constraints, v int) Size {
	return bc.Constrain(Size{Width: float64(v), Height: 1})
}

func (w *counterWidget) Paint(Surface, Rect, int) {}

func counterLine() *WidgetLine[counters, int] {
	return NewWidgetLine(
		func(d counters) []int { return d.values },
		func() Widget[int] { return &counterWidget{} },
	)
}

func TestWidgetLine_Update(t *testing.T) {
	type tc struct {
		first  []int
		second []int
	}

	tests := map[string]tc{
		"grow":  {first: []int{1}, second: []int{1, 2, 3}},
		"drop":  {first: []int{1, 2, 3}, second: []int{4}},
		"empty": {first: []int{1, 2}, second: nil},
		"same":  {first: []int{5, 6}, second: []int{7, 8}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			l := counterLine()
			l.Update(counters{values: tt.first})
			l.Update(counters{values: tt.second})

			if got := len(l.Widgets()); got != len(tt.second) {
				t.Fatalf("widgets = %d, want %d", got, len(tt.second))
			}
			if got := l.ElementCount(counters{values: tt.second}); got != len(tt.second) {
				t.Errorf("ElementCount() = %d, want %d", got, len(tt.second))
			}
			for i, w := range l.Widgets() {
				if seen := w.(*counterWidget).seen; seen != tt.second[i] {
					t.Errorf("widget %d saw %d, want %d", i, seen, tt.second[i])
				}
			}
		})
	}
}

func TestWidgetLine_EventWritesBack(t *testing.T) {
	type tc struct {
		ev      Event
		setter  bool
		handled bool
		want    []int
		sets    int
	}

	tests := map[string]tc{
		"with setter": {
			ev:      "inc",
			setter:  true,
			handled: true,
			want:    []int{2, 3},
			sets:    2,
		},
		"without setter": {
			ev:      "inc",
			handled: true,
			want:    []int{1, 2},
		},
		"ignored event": {
			ev:     "noop",
			setter: true,
			want:   []int{1, 2},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			l := counterLine()
			sets := 0
			if tt.setter {
				l.WithSetter(func(d *counters, i int, v int) {
					sets++
					d.values[i] = v
				})
			}
			data := counters{values: []int{1, 2}}
			l.Update(data)

			if got := l.Event(tt.ev, &data); got != tt.handled {
				t.Errorf("Event() = %v, want %v", got, tt.handled)
			}
			for i, v := range tt.want {
				if data.values[i] != v {
					t.Errorf("values = %v, want %v", data.values, tt.want)
					break
				}
			}
			if sets != tt.sets {
				t.Errorf("setter called %d times, want %d", sets, tt.sets)
			}
		})
	}
}

func TestWidgetLine_MeasureAndArrange(t *testing.T) {
	l := counterLine()
	data := counters{values: []int{3, 9}}
	l.Update(data)

	tl := NewTableLayout(Vertical)
	tl.AddLine(FlexPart())
	tl.SetElementCount(2, FlexPart())

	m := tl.Begin(Size{Width: 100, Height: 100})
	l.Measure(m, data, 0)
	if m.Measured() != 2 {
		t.Errorf("Measured() = %d, want 2", m.Measured())
	}
	a := m.Finish()
	l.Arrange(a, data, 0)

	if r := l.Rect(1); r != NewRect(3, 0, 9, 1) {
		t.Errorf("Rect(1) = %+v, want {3 0 9 1}", r)
	}
}

func TestSetLen(t *testing.T) {
	n := 0
	build := func() int { n++; return n }

	got := setLen([]int{7}, 3, build)
	if len(got) != 3 || got[0] != 7 || got[1] != 1 || got[2] != 2 {
		t.Errorf("grow = %v, want [7 1 2]", got)
	}
	got = setLen(got, 1, build)
	if len(got) != 1 || got[0] != 7 {
		t.Errorf("shrink = %v, want [7]", got)
	}
	if again := setLen(got, 1, build); len(again) != 1 || n != 2 {
		t.Errorf("same length must not build, built %d", n)
	}
}
