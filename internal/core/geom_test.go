package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(10, 12, 10, 10)
	if r.Right() != 20 {
		t.Errorf("Right() = %d, expected 20", r.Right())
	}
	if r.Bottom() != 22 {
		t.Errorf("Bottom() = %d, expected 22", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-3, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 0, 0},
		{2, 0, LaneCount - 1, 2},
	}
	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected float64
	}{
		{3.5, 0, 6, 3.5},
		{-0.5, 0, 6, 0},
		{7.2, 0, 6, 6},
	}
	for _, tc := range tests {
		if got := ClampF(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("ClampF(%v, %v, %v) = %v, expected %v", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(99, 100) != 99 {
		t.Error("Min(99, 100) should be 99")
	}
	if Max(-1, 0) != 0 {
		t.Error("Max(-1, 0) should be 0")
	}
}
