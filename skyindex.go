package wcsproj

import (
	"math"

	"github.com/owlpinetech/healpix"
)

// SkyIndexer bins celestial points into HEALPix pixels at a fixed order,
// for grouping catalog sources over an image footprint independently of
// the drawing projection. Every pixel covers the same angular area.
type SkyIndexer struct {
	Order  healpix.HealpixOrder  `json:"order"`
	Scheme healpix.HealpixScheme `json:"scheme"`
}

func NewSkyIndexer(order healpix.HealpixOrder, scheme healpix.HealpixScheme) SkyIndexer {
	return SkyIndexer{
		Order:  order,
		Scheme: scheme,
	}
}

// Pixels is the total pixel count of the pixelization.
func (s SkyIndexer) Pixels() int {
	return s.Order.Pixels()
}

// ToPixel maps a celestial point (RA, Dec in degrees) to its HEALPix
// pixel id. The mapping is total over the sphere.
func (s SkyIndexer) ToPixel(cp Point) int {
	lat := cp.Y * degToRad
	if lat > math.Pi/2 {
		lat = math.Pi / 2
	} else if lat < -math.Pi/2 {
		lat = -math.Pi / 2
	}
	lon := wrap360(cp.X) * degToRad
	return healpix.NewLatLonCoordinate(lat, lon).PixelId(s.Order, s.Scheme)
}
