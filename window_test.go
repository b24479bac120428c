package board

import (
	"math"
	"testing"
)

func ints(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}
	return s
}

func intPtr(i int) *int { return &i }

func TestFitToGridExample(t *testing.T) {
	const margin = 30
	got := FitToGrid(200+margin, margin, ints(10), 40, intPtr(7))
	want := []int{5, 6, 7, 8, 9}
	if len(got) != len(want) {
		t.Fatalf("FitToGrid() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("FitToGrid() = %v, want %v", got, want)
			break
		}
	}
}

func TestFitToGridProperties(t *testing.T) {
	seq := ints(12)
	for extent := 0.0; extent <= 700; extent += 35 {
		for _, margin := range []float64{0, 20, 240} {
			for index := -3; index <= 15; index++ {
				got := FitToGrid(extent, margin, seq, 40, &index)
				capacity := math.Floor((extent - margin) / 40)
				if float64(len(got)) > math.Max(capacity, 0) || len(got) > len(seq) {
					t.Fatalf("extent=%v margin=%v index=%d: len %d exceeds capacity %v", extent, margin, index, len(got), capacity)
				}
				for i := 1; i < len(got); i++ {
					if got[i] != got[i-1]+1 {
						t.Fatalf("extent=%v index=%d: window %v is not contiguous", extent, index, got)
					}
				}
				if len(got) > 0 && max(index, 0)+int(capacity) >= len(seq) && got[len(got)-1] != len(seq)-1 {
					t.Errorf("extent=%v index=%d: overrun window %v does not end at the last element", extent, index, got)
				}
			}
		}
	}
}

func TestFitToGridEdgeCases(t *testing.T) {
	tests := []struct {
		name   string
		extent float64
		margin float64
		unit   float64
		index  *int
		want   []int
	}{
		{"nil index", 160, 0, 40, nil, []int{0, 1, 2, 3}},
		{"negative index", 160, 0, 40, intPtr(-4), []int{0, 1, 2, 3}},
		{"index past end", 160, 0, 40, intPtr(99), []int{6, 7, 8, 9}},
		{"margin exceeds extent", 100, 240, 40, intPtr(2), []int{}},
		{"zero unit", 400, 0, 0, nil, []int{}},
		{"negative unit", 400, 0, -40, nil, []int{}},
		{"capacity exceeds sequence", 4000, 0, 40, intPtr(3), ints(10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FitToGrid(tt.extent, tt.margin, ints(10), tt.unit, tt.index)
			if len(got) != len(tt.want) {
				t.Fatalf("FitToGrid() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("FitToGrid() = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestFitToGridEmptySequence(t *testing.T) {
	if got := FitToGrid(400, 0, []string{}, 40, intPtr(3)); len(got) != 0 {
		t.Errorf("FitToGrid(empty) = %v, want empty", got)
	}
}

func TestWindowStart(t *testing.T) {
	tests := []struct {
		index *int
		want  int
	}{
		{nil, 0},
		{intPtr(2), 2},
		{intPtr(7), 5},
		{intPtr(math.MaxInt), 5},
	}
	for _, tt := range tests {
		if got := WindowStart(200, 0, 10, 40, tt.index); got != tt.want {
			t.Errorf("WindowStart(%v) = %d, want %d", tt.index, got, tt.want)
		}
	}
}

func TestFitToGridLeavesIndex(t *testing.T) {
	seq := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	index := 7
	if got := FitToGrid(200, 0, seq, 40, &index); got[0] != 5 {
		t.Fatalf("FitToGrid() starts at %d, want 5", got[0])
	}
	if index != 7 {
		t.Errorf("index = %d after FitToGrid, want 7 (unchanged)", index)
	}
}

func TestCapacity(t *testing.T) {
	tests := []struct {
		extent, margin, unit float64
		want                 int
	}{
		{640, 240, 40, 10},
		{659, 240, 40, 10},
		{200, 240, 40, 0},
		{640, 240, 0, 0},
		{math.NaN(), 0, 40, 0},
	}
	for _, tt := range tests {
		if got := Capacity(tt.extent, tt.margin, tt.unit); got != tt.want {
			t.Errorf("Capacity(%v, %v, %v) = %d, want %d", tt.extent, tt.margin, tt.unit, got, tt.want)
		}
	}
}
