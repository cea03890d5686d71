package wcsproj

import "math"

// zenithalPlane is the shared angular form of the zenithal projections:
// plane = (R sin phi, -R cos phi), with R a function of the native
// colatitude 90 - theta. Each zenithal projection injects its own radius
// law and its inverse.
type zenithalPlane struct {
	// radius maps native colatitude (degrees) to plane radius.
	radius func(colat float64) float64
	// colat inverts radius; ok=false when the radius is outside the
	// projection's image.
	colat func(r float64) (float64, bool)
	// hemi restricts the projection to the near hemisphere (theta >= 0).
	hemi bool
}

func (z zenithalPlane) project(np Point) (Point, bool) {
	if z.hemi && (np.Y < 0 || np.Y > 180) {
		return Point{}, false
	}
	rr := z.radius(90 - np.Y)
	s, c := sincosd(np.X)
	return Point{rr * s, -rr * c}, true
}

func (z zenithalPlane) unproject(pp Point) (Point, bool) {
	rr := math.Hypot(pp.X, pp.Y)
	colat, ok := z.colat(rr)
	if !ok {
		return Point{}, false
	}
	phi := 0.0
	if rr > 0 {
		phi = atan2d(pp.X, -pp.Y)
	}
	return Point{phi, 90 - colat}, true
}

// ZenithalEqualArea is the WCS ZEA projection, R = 2 r0 sin(colat/2).
type ZenithalEqualArea struct {
	celestial
}

func NewZenithalEqualArea() *ZenithalEqualArea {
	p := &ZenithalEqualArea{celestial{
		code:   "ZEA",
		id:     IDZenithalEqualArea,
		name:   "zenithal equal area",
		phi0:   0,
		theta0: 90,
	}}
	p.plane = zenithalPlane{
		radius: func(colat float64) float64 {
			return 2 * r0 * sind(colat/2)
		},
		colat: func(r float64) (float64, bool) {
			s := r / (2 * r0)
			if s > 1 {
				if s > 1+1e-12 {
					return 0, false
				}
				s = 1
			}
			return 2 * asind(s), true
		},
	}
	return p
}

// CheckBrokenLine suppresses segments jumping across the stretched far
// hemisphere around the antipode.
func (p *ZenithalEqualArea) CheckBrokenLine(p1, p2 Point) bool {
	return math.Hypot(p1.X-p2.X, p1.Y-p2.Y) > 2*r0
}

// Stereographic is the WCS STG projection, R = 2 r0 tan(colat/2).
type Stereographic struct {
	celestial
}

func NewStereographic() *Stereographic {
	p := &Stereographic{celestial{
		code:   "STG",
		id:     IDStereographic,
		name:   "stereographic",
		phi0:   0,
		theta0: 90,
	}}
	p.plane = zenithalPlane{
		radius: func(colat float64) float64 {
			return 2 * r0 * tand(colat/2)
		},
		colat: func(r float64) (float64, bool) {
			return 2 * atand(r/(2*r0)), true
		},
	}
	return p
}

// CheckBrokenLine suppresses segments through the divergent region near
// the antipodal point, where the radius law blows up.
func (p *Stereographic) CheckBrokenLine(p1, p2 Point) bool {
	return math.Hypot(p1.X-p2.X, p1.Y-p2.Y) > 2*r0
}
