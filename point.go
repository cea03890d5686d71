package wcsproj

import "math"

// Point is an immutable (x, y) pair. It serves triple duty: plane
// coordinates, native spherical coordinates (phi, theta in degrees) and
// celestial coordinates (RA, Dec in degrees), depending on which side of
// a conversion it sits on.
type Point struct {
	X float64
	Y float64
}

func finite(p Point) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}
