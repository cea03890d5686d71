package wcsproj

import "math"

// Projection converts between celestial coordinates and a 2-D image
// plane. Direct and Inverse compose the celestial-native rotation with
// the per-projection native-plane mapping; both report ok=false, never
// an error, when a point falls outside the mathematical domain of any
// intermediate stage. Instances are immutable once initialized and safe
// for concurrent read-only use.
type Projection interface {
	// Code is the 3-letter WCS projection code, e.g. "TAN".
	Code() string
	// ID is the legacy integer identifier of the projection.
	ID() int
	Name() string
	// NativeOrigin is the native fiducial point (phi0, theta0).
	NativeOrigin() Point

	// InitFromRefpoint pins the projection at the given celestial
	// reference point (RA, Dec in degrees) with default native keywords.
	InitFromRefpoint(ra, dec float64) error
	// InitFromWCS configures the projection from a host keyword record.
	InitFromWCS(wcs WCSKeywords) error
	GetWCS() WCSKeywords

	// Direct maps a celestial point to the plane.
	Direct(cp Point) (Point, bool)
	// Inverse maps a plane point back to the sphere.
	Inverse(pp Point) (Point, bool)
	// Project maps native spherical coordinates to the plane.
	Project(np Point) (Point, bool)
	// Unproject maps the plane back to native spherical coordinates.
	Unproject(pp Point) (Point, bool)

	// CheckBrokenLine reports whether the plane segment between two
	// projected points crosses a seam or pole discontinuity and should
	// be suppressed when drawing a graticule.
	CheckBrokenLine(p1, p2 Point) bool
}

// planeShape is the native-sphere to plane stage of a projection.
type planeShape interface {
	project(np Point) (Point, bool)
	unproject(pp Point) (Point, bool)
}

// celestial is the shared core of every rotation-based projection: a
// native fiducial, a spherical rotation and a plane shape. Concrete
// projection types embed it and override what differs.
type celestial struct {
	code   string
	id     int
	name   string
	phi0   float64
	theta0 float64
	ra0    float64
	dec0   float64
	plane  planeShape
	rot    sphericalRotation
}

func (c *celestial) Code() string { return c.code }

func (c *celestial) ID() int { return c.id }

func (c *celestial) Name() string { return c.name }

func (c *celestial) NativeOrigin() Point { return Point{c.phi0, c.theta0} }

func (c *celestial) InitFromRefpoint(ra, dec float64) error {
	c.ra0, c.dec0 = ra, dec
	return c.rot.init(ra, dec, c.phi0, c.theta0, c.defaultLonpole(dec), 90)
}

func (c *celestial) InitFromWCS(wcs WCSKeywords) error {
	if err := c.checkCtype(wcs); err != nil {
		return err
	}
	phi0 := keywordOr(wcs.PV11, c.phi0)
	theta0 := keywordOr(wcs.PV12, c.theta0)
	if math.Abs(theta0) > 90 {
		if math.Abs(theta0) > 90+angleTol {
			return NewConfigurationError(ReasonThetaRange,
				"PV1_2 native latitude out of range", theta0)
		}
		theta0 = math.Copysign(90, theta0)
	}
	c.phi0, c.theta0 = phi0, theta0
	c.ra0, c.dec0 = wcs.Crval1, wcs.Crval2

	phip := keywordOr(wcs.Lonpole, c.defaultLonpole(wcs.Crval2))
	latpole := keywordOr(wcs.Latpole, 90)
	return c.rot.init(c.ra0, c.dec0, c.phi0, c.theta0, phip, latpole)
}

// defaultLonpole is the standard LONPOLE default: 0 when the fiducial
// declination is poleward of theta0, 180 otherwise.
func (c *celestial) defaultLonpole(dec float64) float64 {
	if dec >= c.theta0 {
		return 0
	}
	return 180
}

func (c *celestial) checkCtype(wcs WCSKeywords) error {
	code1, ok1 := ctypeCode(wcs.Ctype1)
	code2, ok2 := ctypeCode(wcs.Ctype2)
	if !ok1 || !ok2 || code1 != c.code || code2 != c.code {
		return NewConfigurationError(ReasonCtypeMismatch,
			"ctype pair "+wcs.Ctype1+"/"+wcs.Ctype2+" does not select projection "+c.code)
	}
	return nil
}

func (c *celestial) GetWCS() WCSKeywords {
	return WCSKeywords{
		Ctype1:  "RA---" + c.code,
		Ctype2:  "DEC--" + c.code,
		Crval1:  c.ra0,
		Crval2:  c.dec0,
		PV11:    keyword(c.phi0),
		PV12:    keyword(c.theta0),
		Lonpole: keyword(c.rot.phiP),
		Latpole: keyword(c.rot.latpole),
	}
}

func (c *celestial) Direct(cp Point) (Point, bool) {
	np := c.rot.celestialToNative(cp)
	if !finite(np) {
		return Point{}, false
	}
	return c.Project(np)
}

func (c *celestial) Inverse(pp Point) (Point, bool) {
	np, ok := c.Unproject(pp)
	if !ok {
		return Point{}, false
	}
	cp := c.rot.nativeToCelestial(np)
	if !finite(cp) {
		return Point{}, false
	}
	return cp, true
}

func (c *celestial) Project(np Point) (Point, bool) {
	pp, ok := c.plane.project(np)
	if !ok || !finite(pp) {
		return Point{}, false
	}
	return pp, true
}

func (c *celestial) Unproject(pp Point) (Point, bool) {
	np, ok := c.plane.unproject(pp)
	if !ok || !finite(np) {
		return Point{}, false
	}
	return np, true
}

// CheckBrokenLine is the shared default seam heuristic: suppress the
// segment when the L1 plane distance exceeds 150 units. Every concrete
// projection overrides it with a formula matched to its own
// discontinuity geometry.
func (c *celestial) CheckBrokenLine(p1, p2 Point) bool {
	return math.Abs(p1.X-p2.X)+math.Abs(p1.Y-p2.Y) > 150
}
