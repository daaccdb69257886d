package money

import "testing"

func TestRoundHalfToEven(t *testing.T) {
	cases := []struct {
		in   float64
		want Amount
	}{
		{0, 0},
		{0.4, 0},
		{0.5, 0},
		{1.5, 2},
		{2.5, 2},
		{3.5, 4},
		{2.6, 3},
		{-0.5, 0},
		{-1.5, -2},
		{-2.5, -2},
		{1000.5, 1000},
		{1001.5, 1002},
	}
	for _, tc := range cases {
		if got := Round(tc.in); got != tc.want {
			t.Fatalf("Round(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(70000, 10); got != 7000 {
		t.Fatalf("expected 7000, got %d", got)
	}
	if got := Percent(333, 10); got != 33 {
		t.Fatalf("expected 33, got %d", got)
	}
	// 25 * 10% = 2.5 rounds to the even neighbour.
	if got := Percent(25, 10); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
}

func TestInclusivePortion(t *testing.T) {
	// 11000 inclusive of 10% tax contains 1000 of tax.
	if got := InclusivePortion(11000, 10); got != 1000 {
		t.Fatalf("expected 1000, got %d", got)
	}
	if got := InclusivePortion(0, 10); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}
