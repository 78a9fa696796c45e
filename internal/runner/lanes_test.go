package runner

import (
	"math/rand"
	"testing"
)

func TestNewLaneSet(t *testing.T) {
	tests := []struct {
		name  string
		width float64
		want  int
	}{
		{"five lanes", 500, 5},
		{"three lanes", 300, 3},
		{"partial lane ignored", 390, 3},
		{"too narrow", 120, 3},
		{"zero width", 0, 3},
		{"negative width", -50, 3},
		{"wide", 1050, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLaneSet(tt.width, 100, 3)
			if l.Count() != tt.want {
				t.Fatalf("Count() = %d, want %d", l.Count(), tt.want)
			}
			for i, off := range l.Offsets() {
				if off != float64(i)*100 {
					t.Errorf("Offset(%d) = %v, want %v", i, off, float64(i)*100)
				}
			}
		})
	}
}

func TestLaneSetClamp(t *testing.T) {
	l := NewLaneSet(500, 100, 3)

	tests := []struct {
		in, want int
	}{
		{-1, 0},
		{0, 0},
		{2, 2},
		{4, 4},
		{5, 4},
		{99, 4},
	}
	for _, tt := range tests {
		if got := l.Clamp(tt.in); got != tt.want {
			t.Errorf("Clamp(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}

	if l.Offset(10) != 400 {
		t.Errorf("Offset(10) = %v, want 400", l.Offset(10))
	}
	if l.Center() != 2 {
		t.Errorf("Center() = %d, want 2", l.Center())
	}
	if l.Width(100) != 500 {
		t.Errorf("Width() = %v, want 500", l.Width(100))
	}
}

func TestLaneSetRandomInRange(t *testing.T) {
	l := NewLaneSet(300, 100, 3)
	rng := rand.New(rand.NewSource(1))
	seen := make(map[int]bool)

	for range 300 {
		i := l.Random(rng)
		if i < 0 || i >= l.Count() {
			t.Fatalf("Random() = %d, outside [0,%d)", i, l.Count())
		}
		seen[i] = true
	}
	if len(seen) != l.Count() {
		t.Errorf("Random() hit %d lanes, want all %d", len(seen), l.Count())
	}
}

func TestLaneSetSnap(t *testing.T) {
	lanes := NewLaneSet(300, 100, 3)
	tests := []struct {
		offset float64
		want   float64
	}{
		{0, 0},
		{100, 100},
		{140, 100},
		{160, 200},
		{400, 200},
		{-50, 0},
	}
	for _, tt := range tests {
		if got := lanes.Snap(tt.offset, 100); got != tt.want {
			t.Errorf("Snap(%v) = %v, want %v", tt.offset, got, tt.want)
		}
	}
}
