package wcsproj

import "math"

// Orthographic is the WCS SIN projection, R = r0 sin(colat). Only the
// visible hemisphere projects; points with negative native latitude are
// domain failures, not errors. The slant variant (nonzero PV offsets) is
// intentionally unsupported.
type Orthographic struct {
	celestial
}

func NewOrthographic() *Orthographic {
	p := &Orthographic{celestial{
		code:   "SIN",
		id:     IDOrthographic,
		name:   "orthographic",
		phi0:   0,
		theta0: 90,
	}}
	p.plane = zenithalPlane{
		radius: orthographicRadius,
		colat: func(r float64) (float64, bool) {
			s := r / r0
			if s*s > 1 {
				if s > 1+1e-12 {
					return 0, false
				}
				s = 1
			}
			return asind(s), true
		},
		hemi: true,
	}
	return p
}

// orthographicRadius evaluates r0 sin(colat) with a small-angle series
// near the pole, where the direct evaluation would go through an
// avoidable conversion cancellation.
func orthographicRadius(colat float64) float64 {
	c := colat * degToRad
	if math.Abs(c) < 1e-4 {
		return r0 * c * (1 - c*c/6)
	}
	return r0 * math.Sin(c)
}

// InitFromWCS rejects keyword records that request the slant
// orthographic by moving the native fiducial off (0, 90).
func (p *Orthographic) InitFromWCS(wcs WCSKeywords) error {
	if (wcs.PV11 != nil && *wcs.PV11 != 0) ||
		(wcs.PV12 != nil && math.Abs(*wcs.PV12-90) > angleTol) {
		return NewUnsupportedVariantError("SIN", "slant orthographic")
	}
	return p.celestial.InitFromWCS(wcs)
}

// CheckBrokenLine always reports continuous: only one hemisphere is ever
// visible, so no seam can be crossed.
func (p *Orthographic) CheckBrokenLine(p1, p2 Point) bool {
	return false
}
