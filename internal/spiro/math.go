package spiro

import "math"

// Point returns the hypotrochoid point for angle a (radians), relative to the
// curve origin. k is the ratio of the rolling radius to the fixed radius R and
// must not be zero.
func Point(R, k, l, a float64) (x, y float64) {
	x = R * ((1-k)*math.Cos(a) + l*k*math.Cos((1-k)*a/k))
	y = R * ((1-k)*math.Sin(a) - l*k*math.Sin((1-k)*a/k))
	return x, y
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}
