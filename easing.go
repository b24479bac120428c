package board

// EaseInOutQuad maps linear progress x in [0, 1] to eased progress,
// accelerating through the first half and decelerating through the second.
func EaseInOutQuad(x float64) float64 {
	if x < 0.5 {
		return 2 * x * x
	}
	y := -2*x + 2
	return 1 - y*y/2
}

// axisEasing adjusts easing for the direction of travel along one axis: the
// eased progress itself when delta is non-negative, easing - 1 when
// negative.
func axisEasing(delta int, easing float64) float64 {
	sign := 1.0
	if delta < 0 {
		sign = -1
	}
	return (sign-1)/2 + easing
}
