package input

import "math"

// horizontalAxis combines the digital left/right actions with the analog
// stick. A stick deflected past the deadzone wins and is rescaled so the
// deadzone edge maps to zero.
func horizontalAxis(left, right bool, stick, deadzone float64) float64 {
	if math.Abs(stick) > deadzone && deadzone < 1 {
		v := (math.Abs(stick) - deadzone) / (1 - deadzone)
		return math.Copysign(math.Min(v, 1), stick)
	}

	var v float64
	if left {
		v--
	}
	if right {
		v++
	}
	return v
}
