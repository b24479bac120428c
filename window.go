package board

import "math"

// FitToGrid returns the contiguous slice of seq that fits in extent pixels
// after margin is taken out, at unit pixels per element, starting at
// *index (or 0 when index is nil).
//
// When the window would run past the end of seq it is shifted back so that
// it ends exactly at the last element. The result shares storage with seq.
//
//	FitToGrid(240, 40, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 40, &seven) // [5 6 7 8 9]
func FitToGrid[T any](extent, margin float64, seq []T, unit float64, index *int) []T {
	start, stop := window(extent, margin, len(seq), unit, index)
	return seq[start:stop]
}

// WindowStart returns the start index FitToGrid would use for a sequence
// of length n.
func WindowStart(extent, margin float64, n int, unit float64, index *int) int {
	start, _ := window(extent, margin, n, unit, index)
	return start
}

// Capacity returns how many whole cells of size unit fit in extent after
// margin. Negative, NaN and infinite results are zero.
func Capacity(extent, margin, unit float64) int {
	c := math.Floor((extent - margin) / unit)
	if math.IsNaN(c) || math.IsInf(c, 0) || c <= 0 {
		return 0
	}
	if c > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(c)
}

func window(extent, margin float64, n int, unit float64, index *int) (start, stop int) {
	capacity := Capacity(extent, margin, unit)
	if index != nil && *index > 0 {
		start = min(*index, n)
	}
	stop = start + capacity
	if stop >= n {
		start = max(n-capacity, 0)
		stop = n
	}
	return start, stop
}
