package wcsproj

import (
	"github.com/owlpinetech/flatsphere"
)

// flatspherePlane adapts a flatsphere projection as the native-plane
// stage of a rotation-composed projection. flatsphere works in radians
// with latitude-first arguments; plane units are rescaled by r0 so they
// line up with the degree-unit conventions of the built-in projections.
type flatspherePlane struct {
	proj flatsphere.Projection
}

func (f flatspherePlane) project(np Point) (Point, bool) {
	x, y := f.proj.Project(np.Y*degToRad, np.X*degToRad)
	pp := Point{x * r0, y * r0}
	if !finite(pp) {
		return Point{}, false
	}
	return pp, true
}

func (f flatspherePlane) unproject(pp Point) (Point, bool) {
	lat, lon := f.proj.Inverse(pp.X/r0, pp.Y/r0)
	np := Point{lon * radToDeg, lat * radToDeg}
	if !finite(np) {
		return Point{}, false
	}
	return np, true
}

// Custom composes an arbitrary flatsphere projection with the standard
// celestial rotation, giving host code access to projections beyond the
// built-in seven without reimplementing the WCS plumbing. The code should
// be a 3-letter identifier if the result is meant to round-trip through
// WCS keywords.
type Custom struct {
	celestial
}

func NewCustom(code string, name string, proj flatsphere.Projection) *Custom {
	p := &Custom{celestial{
		code: code,
		id:   -1,
		name: name,
	}}
	p.plane = flatspherePlane{proj}
	return p
}
