package wcsproj

import "math"

// Gnomonic is the WCS TAN projection. Unlike the other six it bypasses
// the spherical rotation entirely: the tangent plane has a lower-error
// closed form straight from (ra, dec), parameterized by the plate scale
// and the tangent point. GetWCS still exposes a compatible keyword pair.
type Gnomonic struct {
	scale   float64
	ra0     float64
	dec0    float64
	sinDec0 float64
	cosDec0 float64
	plane   zenithalPlane
}

// NewGnomonic builds a gnomonic projection tangent at (ra, dec) degrees
// with the standard degree-unit plate scale r0.
func NewGnomonic(ra, dec float64) *Gnomonic {
	g := &Gnomonic{scale: r0}
	g.plane = zenithalPlane{
		radius: func(colat float64) float64 {
			return r0 * tand(colat)
		},
		colat: func(r float64) (float64, bool) {
			return atand(r / r0), true
		},
		hemi: true,
	}
	g.InitFromRefpoint(ra, dec)
	return g
}

func (g *Gnomonic) Code() string { return "TAN" }

func (g *Gnomonic) ID() int { return IDGnomonic }

func (g *Gnomonic) Name() string { return "gnomonic" }

func (g *Gnomonic) NativeOrigin() Point { return Point{0, 90} }

func (g *Gnomonic) InitFromRefpoint(ra, dec float64) error {
	g.ra0, g.dec0 = ra, dec
	g.sinDec0, g.cosDec0 = sincosd(dec)
	return nil
}

func (g *Gnomonic) InitFromWCS(wcs WCSKeywords) error {
	code1, ok1 := ctypeCode(wcs.Ctype1)
	code2, ok2 := ctypeCode(wcs.Ctype2)
	if !ok1 || !ok2 || code1 != "TAN" || code2 != "TAN" {
		return NewConfigurationError(ReasonCtypeMismatch,
			"ctype pair "+wcs.Ctype1+"/"+wcs.Ctype2+" does not select projection TAN")
	}
	return g.InitFromRefpoint(wcs.Crval1, wcs.Crval2)
}

func (g *Gnomonic) GetWCS() WCSKeywords {
	return WCSKeywords{
		Ctype1: "RA---TAN",
		Ctype2: "DEC--TAN",
		Crval1: g.ra0,
		Crval2: g.dec0,
		PV11:   keyword(0),
		PV12:   keyword(90),
	}
}

// Direct maps (ra, dec) onto the tangent plane. Points more than 90
// degrees from the tangent point fall on the invisible hemisphere and
// are domain failures.
func (g *Gnomonic) Direct(cp Point) (Point, bool) {
	sinDec, cosDec := sincosd(cp.Y)
	sinDra, cosDra := sincosd(cp.X - g.ra0)
	cosc := g.sinDec0*sinDec + g.cosDec0*cosDec*cosDra
	if cosc <= 0 {
		return Point{}, false
	}
	pp := Point{
		g.scale * cosDec * sinDra / cosc,
		g.scale * (g.cosDec0*sinDec - g.sinDec0*cosDec*cosDra) / cosc,
	}
	if !finite(pp) {
		return Point{}, false
	}
	return pp, true
}

// Inverse maps a tangent-plane point back to (ra, dec); every finite
// plane point corresponds to a point of the visible hemisphere.
func (g *Gnomonic) Inverse(pp Point) (Point, bool) {
	if !finite(pp) {
		return Point{}, false
	}
	x := pp.X / g.scale
	y := pp.Y / g.scale
	rho := math.Hypot(x, y)
	if rho == 0 {
		return Point{wrap360(g.ra0), g.dec0}, true
	}
	c := math.Atan(rho)
	sinc, cosc := math.Sincos(c)
	dec := asind(cosc*g.sinDec0 + y*sinc*g.cosDec0/rho)
	ra := g.ra0 + atan2d(x*sinc, rho*g.cosDec0*cosc-y*g.sinDec0*sinc)
	cp := Point{wrap360(ra), dec}
	if !finite(cp) {
		return Point{}, false
	}
	return cp, true
}

func (g *Gnomonic) Project(np Point) (Point, bool) {
	pp, ok := g.plane.project(np)
	if !ok || !finite(pp) {
		return Point{}, false
	}
	return pp, true
}

func (g *Gnomonic) Unproject(pp Point) (Point, bool) {
	np, ok := g.plane.unproject(pp)
	if !ok || !finite(np) {
		return Point{}, false
	}
	return np, true
}

// CheckBrokenLine always reports continuous: the tangent plane images a
// single hemisphere with no seam.
func (g *Gnomonic) CheckBrokenLine(p1, p2 Point) bool {
	return false
}
