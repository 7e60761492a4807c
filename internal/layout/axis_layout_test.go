package layout

import (
	"math"
	"strings"
	"testing"
)

// measuredAxis returns an axis of flexible parts measured at the given sizes.
func measuredAxis(available float64, sizes ...float64) *AxisLayout {
	a := NewAxisLayout()
	for range sizes {
		a.AddPart(FlexPart())
	}
	a.Prepare(available)
	for i, s := range sizes {
		a.SetSize(i, s)
	}
	return a
}

func expectPanic(t *testing.T, contains string, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic containing %q", contains)
		}
		msg, _ := r.(string)
		if !strings.Contains(msg, contains) {
			t.Fatalf("panic = %v, want it to contain %q", r, contains)
		}
	}()
	fn()
}

func TestAxisLayout_Prepare(t *testing.T) {
	a := NewAxisLayout(FixedPart(20), FlexPart(), BoundedPart(5, 50), PercentPart(10))
	a.Prepare(1000)
	a.SetSize(1, 30)
	if got := a.Part(1).Size(); got != 30 {
		t.Fatalf("flex part Size() = %v, want 30", got)
	}

	a.Prepare(200)

	if got := a.Part(1).Size(); got != 0 {
		t.Errorf("flex part not reset, Size() = %v", got)
	}
	// 200 - 20 (fixed) - 0 (flex) - 5 (bounded min) - 20 (10%)
	if got := a.Remaining(); got != 155 {
		t.Errorf("Remaining() = %v, want 155", got)
	}
	if got := a.Size() + a.Remaining(); got != 200 {
		t.Errorf("Size()+Remaining() = %v, want 200", got)
	}
}

func TestAxisLayout_Constrains(t *testing.T) {
	a := NewAxisLayout(FixedPart(20), FlexPart())
	a.Prepare(100)

	if lo, hi := a.Constrains(0); lo != 20 || hi != 20 {
		t.Errorf("fixed Constrains = (%v, %v), want (20, 20)", lo, hi)
	}
	if lo, hi := a.Constrains(1); lo != 0 || hi != 80 {
		t.Errorf("flex Constrains = (%v, %v), want (0, 80)", lo, hi)
	}

	expectPanic(t, "out of range", func() { a.Constrains(2) })
	expectPanic(t, "out of range", func() { a.SetSize(-1, 3) })
}

func TestAxisLayout_BudgetConservation(t *testing.T) {
	a := NewAxisLayout(FlexPart(), FlexPart(), FixedPart(10), FlexPart())
	a.Prepare(60)

	for _, step := range []struct {
		index int
		size  float64
	}{
		{0, 10}, {1, 25}, {0, 12}, {3, 40}, {2, 99}, {1, 5},
	} {
		before := a.Remaining()
		a.SetSize(step.index, step.size)
		if a.Remaining() > before {
			t.Fatalf("Remaining() grew from %v to %v after SetSize(%d, %v)", before, a.Remaining(), step.index, step.size)
		}
		if a.Size() > 60 {
			t.Fatalf("Size() = %v exceeds available 60", a.Size())
		}
	}
}

func TestAxisLayout_OrderIndependence(t *testing.T) {
	type measure struct {
		index int
		size  float64
	}
	measures := []measure{{0, 10}, {1, 25}, {2, 15}, {1, 20}, {0, 8}, {2, 3}}

	forward := NewAxisLayout(FlexPart(), FlexPart(), FlexPart())
	forward.Prepare(math.Inf(1))
	for _, m := range measures {
		forward.SetSize(m.index, m.size)
	}

	backward := NewAxisLayout(FlexPart(), FlexPart(), FlexPart())
	backward.Prepare(math.Inf(1))
	for i := len(measures) - 1; i >= 0; i-- {
		backward.SetSize(measures[i].index, measures[i].size)
	}

	for i := range 3 {
		if forward.Part(i).Size() != backward.Part(i).Size() {
			t.Errorf("part %d: forward %v, backward %v", i, forward.Part(i).Size(), backward.Part(i).Size())
		}
	}
}

func TestAxisLayout_MonotonicGrowth(t *testing.T) {
	a := NewAxisLayout(FlexPart())
	a.Prepare(100)

	last := 0.0
	lastBudget := a.Remaining()
	for _, x := range []float64{1, 1, 4, 9, 9, 30} {
		a.SetSize(0, x)
		if a.Part(0).Size() < last {
			t.Fatalf("size shrank from %v to %v", last, a.Part(0).Size())
		}
		if a.Remaining() > lastBudget {
			t.Fatalf("budget grew from %v to %v", lastBudget, a.Remaining())
		}
		last, lastBudget = a.Part(0).Size(), a.Remaining()
	}
}

func TestAxisLayout_FixedPartInvariance(t *testing.T) {
	a := NewAxisLayout(FixedPart(17), FlexPart())
	for _, available := range []float64{100, 5, math.Inf(1)} {
		a.Prepare(available)
		for _, x := range []float64{0, 3, 17, 50, 1000} {
			a.SetSize(0, x)
			if got := a.Part(0).Size(); got != 17 {
				t.Fatalf("fixed part Size() = %v after SetSize(0, %v), want 17", got, x)
			}
		}
	}
}

func TestAxisLayout_AsCellOffset(t *testing.T) {
	type tc struct {
		offset float64
		want   CellOffset
	}

	a := measuredAxis(math.Inf(1), 10, 25, 15)

	tests := map[string]tc{
		"start": {
			offset: 0,
			want:   CellOffset{Offset: 0, Index: 0},
		},
		"inside first": {
			offset: 4,
			want:   CellOffset{Offset: 4, Index: 0},
		},
		"boundary belongs to ending part": {
			offset: 10,
			want:   CellOffset{Offset: 10, Index: 0},
		},
		"inside second": {
			offset: 12,
			want:   CellOffset{Offset: 2, Index: 1},
		},
		"inside third": {
			offset: 49,
			want:   CellOffset{Offset: 14, Index: 2},
		},
		"end of axis": {
			offset: 50,
			want:   CellOffset{Offset: 15, Index: 2},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := a.AsCellOffset(tt.offset)
			if got != tt.want {
				t.Errorf("AsCellOffset(%v) = %+v, want %+v", tt.offset, got, tt.want)
			}
			if back := a.FromCellOffset(got); back != tt.offset {
				t.Errorf("FromCellOffset(%+v) = %v, want %v", got, back, tt.offset)
			}
		})
	}
}

func TestAxisLayout_AsCellOffsetFailures(t *testing.T) {
	a := measuredAxis(math.Inf(1), 10, 25, 15)

	expectPanic(t, "no axis part found", func() { a.AsCellOffset(50.5) })
	expectPanic(t, "negative axis offset", func() { a.AsCellOffset(-1) })
	expectPanic(t, "no axis part found", func() { NewAxisLayout().AsCellOffset(0) })
}

func TestAxisLayout_RoundTrip(t *testing.T) {
	a := measuredAxis(math.Inf(1), 10, 0, 25.5, 3.25, 15)

	for p := 0.0; p < a.Size(); p += 0.25 {
		if got := a.FromCellOffset(a.AsCellOffset(p)); got != p {
			t.Fatalf("round trip of %v = %v", p, got)
		}
	}
}

func TestAxisLayout_CurrentLayout(t *testing.T) {
	a := measuredAxis(math.Inf(1), 10, 25, 15)

	spans := [][2]float64{{0, 10}, {10, 35}, {35, 50}}
	for i, want := range spans {
		start, end := a.CurrentLayout(i)
		if start != want[0] || end != want[1] {
			t.Errorf("CurrentLayout(%d) = (%v, %v), want (%v, %v)", i, start, end, want[0], want[1])
		}
		if end-start != a.Part(i).Size() {
			t.Errorf("span %d length %v != part size %v", i, end-start, a.Part(i).Size())
		}
	}

	if got := a.Boundaries(); len(got) != 4 || got[3] != 50 {
		t.Errorf("Boundaries() = %v, want [0 10 35 50]", got)
	}
	if a.Size() != 50 {
		t.Errorf("Size() = %v, want 50", a.Size())
	}
}

func TestAxisLayout_SetLength(t *testing.T) {
	type tc struct {
		start   int
		length  int
		changed bool
	}

	tests := map[string]tc{
		"grow":       {start: 1, length: 4, changed: true},
		"shrink":     {start: 5, length: 2, changed: true},
		"same":       {start: 3, length: 3, changed: false},
		"to zero":    {start: 3, length: 0, changed: true},
		"from empty": {start: 0, length: 2, changed: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			a := NewAxisLayout()
			for range tt.start {
				a.AddPart(FixedPart(7))
			}
			if got := a.SetLength(tt.length, FlexPart()); got != tt.changed {
				t.Errorf("SetLength() changed = %v, want %v", got, tt.changed)
			}
			if a.Len() != tt.length {
				t.Errorf("Len() = %d, want %d", a.Len(), tt.length)
			}
			for i := tt.start; i < tt.length; i++ {
				if a.Part(i).IsFixed() {
					t.Errorf("appended part %d should use the flex template", i)
				}
			}

			before := a.Parts()
			if a.SetLength(tt.length, FixedPart(99)) {
				t.Error("second SetLength with the same length reported a change")
			}
			after := a.Parts()
			for i := range before {
				if !before[i].Same(after[i]) {
					t.Errorf("part %d changed on idempotent SetLength", i)
				}
			}
		})
	}
}

func TestAxisLayout_SetPart(t *testing.T) {
	a := NewAxisLayout(FlexPart(), FlexPart())
	a.SetPart(1, FixedPart(8))
	a.Prepare(100)

	if got := a.Part(1).Size(); got != 8 {
		t.Errorf("Part(1).Size() = %v, want 8", got)
	}
	if got := a.Remaining(); got != 92 {
		t.Errorf("Remaining() = %v, want 92", got)
	}
	expectPanic(t, "out of range", func() { a.SetPart(2, FlexPart()) })
}

func TestAxisLayout_Clamp(t *testing.T) {
	a := measuredAxis(math.Inf(1), 10, 25)

	if got := a.Clamp(-3); got != 0 {
		t.Errorf("Clamp(-3) = %v, want 0", got)
	}
	if got := a.Clamp(12); got != 12 {
		t.Errorf("Clamp(12) = %v, want 12", got)
	}
	if got := a.Clamp(80); got != 35 {
		t.Errorf("Clamp(80) = %v, want 35", got)
	}
}
