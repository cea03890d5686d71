package wcsproj

import "github.com/golang/geo/s2"

// Separation returns the great-circle angular separation between two
// celestial points, in degrees. Useful for sizing graticule steps and
// for verifying round trips without worrying about longitude wrapping.
func Separation(a, b Point) float64 {
	return s2.LatLngFromDegrees(a.Y, a.X).Distance(s2.LatLngFromDegrees(b.Y, b.X)).Degrees()
}
