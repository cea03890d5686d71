package wcsproj

import "math"

// mercatorPlane implements the MER native-plane mapping:
// x = phi, y = r0 ln tan((theta+90)/2). The poles map to infinity.
type mercatorPlane struct{}

func (mercatorPlane) project(np Point) (Point, bool) {
	if np.Y <= -90 || np.Y >= 90 {
		return Point{}, false
	}
	return Point{np.X, r0 * math.Log(tand((np.Y+90)/2))}, true
}

func (mercatorPlane) unproject(pp Point) (Point, bool) {
	return Point{pp.X, 2*atand(math.Exp(pp.Y/r0)) - 90}, true
}

// Mercator is the WCS MER projection.
type Mercator struct {
	celestial
}

func NewMercator() *Mercator {
	p := &Mercator{celestial{
		code: "MER",
		id:   IDMercator,
		name: "mercator",
	}}
	p.plane = mercatorPlane{}
	return p
}

// CheckBrokenLine suppresses segments wrapping across the +-180 seam.
func (p *Mercator) CheckBrokenLine(p1, p2 Point) bool {
	return math.Abs(p1.X-p2.X) > 180
}

// carreePlane is the identity native-plane mapping of CAR.
type carreePlane struct{}

func (carreePlane) project(np Point) (Point, bool) { return np, true }

func (carreePlane) unproject(pp Point) (Point, bool) { return pp, true }

// PlateCarree is the WCS CAR projection, the identity on native
// coordinates.
type PlateCarree struct {
	celestial
}

func NewPlateCarree() *PlateCarree {
	p := &PlateCarree{celestial{
		code: "CAR",
		id:   IDPlateCarree,
		name: "plate carree",
	}}
	p.plane = carreePlane{}
	return p
}

// CheckBrokenLine suppresses segments wrapping across the +-180 seam.
func (p *PlateCarree) CheckBrokenLine(p1, p2 Point) bool {
	return math.Abs(p1.X-p2.X) > 180
}
