package core

import (
	"slices"
	"testing"
)

func TestSizeIndexRoundTrip(t *testing.T) {
	s := Size{W: 7, H: 5}
	for y := 0; y < s.H; y++ {
		for x := 0; x < s.W; x++ {
			gx, gy := s.Coord(s.Index(x, y))
			if gx != x || gy != y {
				t.Fatalf("Coord(Index(%d,%d)) = (%d,%d)", x, y, gx, gy)
			}
		}
	}
}

func TestSizeContains(t *testing.T) {
	s := Size{W: 3, H: 2}
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{2, 1, true},
		{3, 0, false},
		{0, 2, false},
		{-1, 0, false},
		{0, -1, false},
	}
	for _, c := range cases {
		if got := s.Contains(c.x, c.y); got != c.want {
			t.Fatalf("Contains(%d,%d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestNeighborhoodClipsAtEdges(t *testing.T) {
	s := Size{W: 3, H: 3}

	var corner []int
	s.Neighborhood(0, 0, func(i int) { corner = append(corner, i) })
	if !slices.Equal(corner, []int{0, 1, 3, 4}) {
		t.Fatalf("corner neighborhood = %v", corner)
	}

	var centre []int
	s.Neighborhood(1, 1, func(i int) { centre = append(centre, i) })
	if len(centre) != 9 {
		t.Fatalf("centre neighborhood has %d cells, want 9", len(centre))
	}
}

func TestClampForcesPositiveDimensions(t *testing.T) {
	s := Size{W: 0, H: -4}.Clamp()
	if s.W != 1 || s.H != 1 {
		t.Fatalf("Clamp() = %+v, want 1x1", s)
	}
}
