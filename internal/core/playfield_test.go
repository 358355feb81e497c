package core

import "testing"

func TestPlayfieldLanes(t *testing.T) {
	p := NewPlayfield(NewRect(0, 0, 40, 20))

	tests := []struct {
		lane, expected int
	}{
		{0, 10},
		{1, 20},
		{2, 30},
		{-1, 10}, // clamped
		{5, 30},  // clamped
	}

	for _, tc := range tests {
		if got := p.LaneX(tc.lane); got != tc.expected {
			t.Errorf("LaneX(%d) = %d, expected %d", tc.lane, got, tc.expected)
		}
	}
}

func TestPlayfieldBands(t *testing.T) {
	p := NewPlayfield(NewRect(0, 2, 40, 20))

	// Band 0 is the lowest row, band 6 the highest
	if p.BandY(0) <= p.BandY(6) {
		t.Errorf("band 0 (y=%d) should be below band 6 (y=%d)", p.BandY(0), p.BandY(6))
	}
	for b := 1; b < BandCount; b++ {
		if p.BandY(b) >= p.BandY(b-1) {
			t.Errorf("BandY(%d)=%d should be above BandY(%d)=%d", b, p.BandY(b), b-1, p.BandY(b-1))
		}
	}
	if p.BandY(0) != 2+17 {
		t.Errorf("BandY(0) = %d, expected 19", p.BandY(0))
	}

	altitudes := []struct {
		alt      float64
		expected int
	}{
		{6.0, 6},
		{6.9, 6},
		{5.7, 5},
		{0.3, 0},
		{-0.5, 0},
		{7.5, 6},
	}
	for _, tc := range altitudes {
		if got := p.Band(tc.alt); got != tc.expected {
			t.Errorf("Band(%v) = %d, expected %d", tc.alt, got, tc.expected)
		}
	}
}
