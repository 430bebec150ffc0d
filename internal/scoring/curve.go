// Package scoring turns stored test results into points, rankings and
// per-step progress.
package scoring

import "math"

// PointsPerTest is the raw weight of one test before smoothing.
const PointsPerTest = 4

// EarnedPoints maps the passed fraction of a step onto [0, maxPoints] with a
// cubic Bezier whose ordinates are 0, 0.9*max, 0.4*max and max. Early passing
// tests are rewarded more than late ones; 0 and 1 map exactly to 0 and max.
func EarnedPoints(fraction, maxPoints float64) float64 {
	if maxPoints <= 0 || math.IsNaN(fraction) || math.IsNaN(maxPoints) {
		return 0
	}
	t := math.Min(math.Max(fraction, 0), 1)

	x0 := 0.0
	x1 := 0.9 * maxPoints
	x2 := 0.4 * maxPoints
	x3 := maxPoints

	u := 1 - t
	b := u*u*u*x0 + 3*u*u*t*x1 + 3*u*t*t*x2 + t*t*t*x3

	return math.Min(math.Max(b, 0), maxPoints)
}
