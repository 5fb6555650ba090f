package rng

import "testing"

func TestFloat64RangeBounds(t *testing.T) {
	s := New(7)
	for i := 0; i < 1000; i++ {
		v := s.Float64Range(50, 200)
		if v < 50 || v >= 200 {
			t.Fatalf("Float64Range(50, 200) = %f, out of range", v)
		}
	}

	if got := s.Float64Range(3, 3); got != 3 {
		t.Errorf("empty range should return lo, got %f", got)
	}
	if got := s.Float64Range(5, 1); got != 5 {
		t.Errorf("inverted range should return lo, got %f", got)
	}
}

func TestIntN(t *testing.T) {
	s := New(1)
	for i := 0; i < 1000; i++ {
		v := s.IntN(10)
		if v < 0 || v >= 10 {
			t.Fatalf("IntN(10) = %d, out of range", v)
		}
	}
	if s.IntN(0) != 0 {
		t.Error("IntN(0) should return 0")
	}
}

func TestSampleDistinct(t *testing.T) {
	s := New(99)
	for trial := 0; trial < 200; trial++ {
		got := s.Sample(5, 2)
		if len(got) != 2 {
			t.Fatalf("Sample(5, 2) returned %d indices", len(got))
		}
		if got[0] == got[1] {
			t.Fatalf("Sample returned duplicate index %d", got[0])
		}
		for _, i := range got {
			if i < 0 || i >= 5 {
				t.Fatalf("index %d out of range", i)
			}
		}
	}
}

func TestSampleEdgeCases(t *testing.T) {
	s := New(3)

	tests := []struct {
		name    string
		n, k    int
		wantLen int
	}{
		{"k equals n", 2, 2, 2},
		{"k exceeds n", 1, 2, 1},
		{"empty population", 0, 2, 0},
		{"zero k", 4, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.Sample(tc.n, tc.k); len(got) != tc.wantLen {
				t.Errorf("Sample(%d, %d) len = %d, expected %d", tc.n, tc.k, len(got), tc.wantLen)
			}
		})
	}
}

func TestSameSeedSameStream(t *testing.T) {
	a, b := New(12345), New(12345)
	for i := 0; i < 100; i++ {
		if a.Float64Range(0, 1) != b.Float64Range(0, 1) {
			t.Fatal("same seed should produce identical streams")
		}
		x, y := a.Sample(10, 3), b.Sample(10, 3)
		for j := range x {
			if x[j] != y[j] {
				t.Fatal("same seed should produce identical samples")
			}
		}
	}
}
