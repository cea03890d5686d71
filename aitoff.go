package wcsproj

import "math"

// aitoffPlane implements the AIT native-plane mapping,
// gamma = r0 sqrt(2/(1+cos(theta) cos(phi/2))),
// plane = (2 gamma cos(theta) sin(phi/2), gamma sin(theta)).
type aitoffPlane struct{}

func (aitoffPlane) project(np Point) (Point, bool) {
	sphi, cphi := sincosd(np.X / 2)
	sthe, cthe := sincosd(np.Y)
	g := r0 * math.Sqrt(2/(1+cthe*cphi))
	return Point{2 * g * cthe * sphi, g * sthe}, true
}

func (aitoffPlane) unproject(pp Point) (Point, bool) {
	u := pp.X / (4 * r0)
	v := pp.Y / (2 * r0)
	z2 := 1 - u*u - v*v
	// The whole sphere images inside z^2 >= 1/2; anything beyond lies
	// outside the projection ellipse.
	if z2 < 0.5-1e-12 {
		return Point{}, false
	}
	z := math.Sqrt(z2)
	phi := 2 * atan2d(z*pp.X/(2*r0), 2*z2-1)
	theta := asind(pp.Y / r0 * z)
	return Point{phi, theta}, true
}

// HammerAitoff is the WCS AIT projection, an equal-area mapping of the
// whole sphere into an ellipse.
type HammerAitoff struct {
	celestial
}

func NewHammerAitoff() *HammerAitoff {
	p := &HammerAitoff{celestial{
		code: "AIT",
		id:   IDHammerAitoff,
		name: "hammer-aitoff",
	}}
	p.plane = aitoffPlane{}
	return p
}

// CheckBrokenLine suppresses segments wrapping across the ellipse seam.
func (p *HammerAitoff) CheckBrokenLine(p1, p2 Point) bool {
	return math.Abs(p1.X-p2.X) > 2*math.Sqrt2*r0
}
