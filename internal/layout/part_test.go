package layout

import (
	"math"
	"testing"
)

func TestAxisPart_Constructors(t *testing.T) {
	type tc struct {
		part  AxisPart
		size  float64
		min   float64
		max   float64
		fixed bool
	}

	size := 12.0
	tests := map[string]tc{
		"fixed": {
			part:  FixedPart(20),
			size:  20,
			min:   20,
			max:   20,
			fixed: true,
		},
		"negative fixed floors at zero": {
			part:  FixedPart(-4),
			fixed: true,
		},
		"flex": {
			part: FlexPart(),
			max:  math.Inf(1),
		},
		"bounded": {
			part: BoundedPart(5, 30),
			size: 5,
			min:  5,
			max:  30,
		},
		"bounded with inverted range": {
			part: BoundedPart(10, 3),
			size: 10,
			min:  10,
			max:  10,
		},
		"explicit size": {
			part:  NewAxisPart(&size),
			size:  12,
			min:   12,
			max:   12,
			fixed: true,
		},
		"no explicit size": {
			part: NewAxisPart(nil),
			max:  math.Inf(1),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			p := tt.part
			if p.Size() != tt.size {
				t.Errorf("Size() = %v, want %v", p.Size(), tt.size)
			}
			if p.Min() != tt.min {
				t.Errorf("Min() = %v, want %v", p.Min(), tt.min)
			}
			if p.Max() != tt.max {
				t.Errorf("Max() = %v, want %v", p.Max(), tt.max)
			}
			if p.IsFixed() != tt.fixed {
				t.Errorf("IsFixed() = %v, want %v", p.IsFixed(), tt.fixed)
			}
		})
	}
}

func TestAxisPart_Constrains(t *testing.T) {
	type tc struct {
		part    AxisPart
		budget  float64
		wantMin float64
		wantMax float64
	}

	grown := FlexPart()
	grown.CalcSpace(10, 100)

	tests := map[string]tc{
		"flex limited by budget": {
			part:    FlexPart(),
			budget:  40,
			wantMin: 0,
			wantMax: 40,
		},
		"grown flex adds own size": {
			part:    grown,
			budget:  5,
			wantMin: 0,
			wantMax: 15,
		},
		"bounded limited by own max": {
			part:    BoundedPart(2, 8),
			budget:  100,
			wantMin: 2,
			wantMax: 8,
		},
		"fixed is tight": {
			part:    FixedPart(20),
			budget:  100,
			wantMin: 20,
			wantMax: 20,
		},
		"unbounded budget": {
			part:    FlexPart(),
			budget:  math.Inf(1),
			wantMin: 0,
			wantMax: math.Inf(1),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			gotMin, gotMax := tt.part.Constrains(tt.budget)
			if gotMin != tt.wantMin || gotMax != tt.wantMax {
				t.Errorf("Constrains(%v) = (%v, %v), want (%v, %v)", tt.budget, gotMin, gotMax, tt.wantMin, tt.wantMax)
			}
		})
	}
}

func TestAxisPart_CalcSpace(t *testing.T) {
	type tc struct {
		part       AxisPart
		measured   []float64
		budget     float64
		wantSize   float64
		wantBudget float64
	}

	tests := map[string]tc{
		"flex grows and consumes budget": {
			part:       FlexPart(),
			measured:   []float64{10},
			budget:     100,
			wantSize:   10,
			wantBudget: 90,
		},
		"flex never shrinks": {
			part:       FlexPart(),
			measured:   []float64{25, 10},
			budget:     100,
			wantSize:   25,
			wantBudget: 75,
		},
		"growth only consumes the difference": {
			part:       FlexPart(),
			measured:   []float64{10, 25},
			budget:     100,
			wantSize:   25,
			wantBudget: 75,
		},
		"measurement clamped to budget": {
			part:       FlexPart(),
			measured:   []float64{80},
			budget:     30,
			wantSize:   30,
			wantBudget: 0,
		},
		"measurement clamped to max": {
			part:       BoundedPart(0, 12),
			measured:   []float64{50},
			budget:     100,
			wantSize:   12,
			wantBudget: 88,
		},
		"fixed leaves budget alone": {
			part:       FixedPart(20),
			measured:   []float64{50, 5},
			budget:     100,
			wantSize:   20,
			wantBudget: 100,
		},
		"negative budget clamps to zero": {
			part:       FlexPart(),
			measured:   []float64{5},
			budget:     -10,
			wantSize:   0,
			wantBudget: 0,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			p := tt.part
			budget := tt.budget
			for _, m := range tt.measured {
				budget = p.CalcSpace(m, budget)
			}
			if p.Size() != tt.wantSize {
				t.Errorf("Size() = %v, want %v", p.Size(), tt.wantSize)
			}
			if budget != tt.wantBudget {
				t.Errorf("budget = %v, want %v", budget, tt.wantBudget)
			}
		})
	}
}

func TestAxisPart_Reset(t *testing.T) {
	flex := FlexPart()
	flex.CalcSpace(30, 100)
	flex.reset(100)
	if flex.Size() != 0 {
		t.Errorf("flex Size() after reset = %v, want 0", flex.Size())
	}

	bounded := BoundedPart(4, 40)
	bounded.CalcSpace(30, 100)
	bounded.reset(100)
	if bounded.Size() != 4 {
		t.Errorf("bounded Size() after reset = %v, want 4", bounded.Size())
	}

	pct := PercentPart(25)
	pct.reset(200)
	if pct.Size() != 50 || pct.Min() != 50 || pct.Max() != 50 {
		t.Errorf("percent part = (%v, %v, %v), want 50 for all", pct.Size(), pct.Min(), pct.Max())
	}
	pct.reset(math.Inf(1))
	if pct.Size() != 0 {
		t.Errorf("percent part on unbounded axis = %v, want 0", pct.Size())
	}
}

func TestAxisPart_Same(t *testing.T) {
	if !FlexPart().Same(FlexPart()) {
		t.Error("two fresh flex parts should be the same")
	}
	if FlexPart().Same(FixedPart(0)) {
		t.Error("flex and fixed parts should differ")
	}
}
