package wcsproj

import "math"

// sphericalRotation is the rigid rotation mapping a projection's native
// spherical frame (pole at theta0) onto the celestial frame, per the
// closed-form solution of WCS Paper II (Calabretta & Greisen 2002).
// All parameters are fixed by init; every field is immutable afterwards,
// which is what makes projections safe for concurrent read-only use.
type sphericalRotation struct {
	latpole   float64 // chosen celestial latitude of the native pole, degrees
	alphaP    float64 // celestial longitude of the native pole, degrees
	deltaP    float64 // colatitude of the native pole, 90 - latpole
	phiP      float64 // native longitude of the celestial pole, degrees
	sinDeltaP float64
	cosDeltaP float64
}

// init solves for the celestial position of the native pole given the
// fiducial point (lng0, lat0), the native fiducial (phi0, theta0), the
// native longitude of the celestial pole phip, and the caller's latpole
// hint (90 when unspecified).
//
// Up to two mathematically valid pole latitudes exist; the branch is
// resolved by picking whichever is numerically closer to the hint. The
// 1e-5 tolerance handling is an exact port of the published algorithm:
// near-degenerate configurations depend on it.
func (r *sphericalRotation) init(lng0, lat0, phi0, theta0, phip, latpole float64) error {
	r.phiP = phip

	if theta0 == 90 {
		// Native pole at the fiducial point.
		r.latpole = lat0
		r.alphaP = lng0
		r.deltaP = 90 - lat0
		r.sinDeltaP, r.cosDeltaP = sincosd(r.deltaP)
		return nil
	}

	st0, ct0 := sincosd(theta0)
	sdp, cdp := sincosd(phip - phi0)
	slat0 := sind(lat0)

	z := math.Sqrt(st0*st0 + ct0*ct0*cdp*cdp)

	var latp float64
	if z == 0 {
		// theta0 = 0 with |phip - phi0| = 90: the pole latitude is
		// unconstrained by the fiducial point and comes straight from
		// the hint, but only an equatorial fiducial is consistent.
		if math.Abs(slat0) > angleTol {
			return NewConfigurationError(ReasonPoleUnsolvable,
				"fiducial latitude inconsistent with native fiducial", lat0, phi0, theta0, phip)
		}
		latp = math.Max(-90, math.Min(90, latpole))
	} else {
		sv := slat0 / z
		if math.Abs(sv) > 1 {
			if math.Abs(sv) > 1+angleTol {
				return NewConfigurationError(ReasonPoleUnsolvable,
					"fiducial latitude exceeds the geometric bound", lat0, phi0, theta0, phip)
			}
			sv = math.Copysign(1, sv)
		}
		u := atan2d(st0, ct0*cdp)
		v := acosd(sv)
		latp1 := wrap180(u + v)
		latp2 := wrap180(u - v)

		// Pick the root closer to the latpole hint; fall back to the
		// other root if the nearer one is geometrically impossible.
		if math.Abs(latpole-latp1) < math.Abs(latpole-latp2) {
			if math.Abs(latp1) < 90+angleTol {
				latp = latp1
			} else {
				latp = latp2
			}
		} else {
			if math.Abs(latp2) < 90+angleTol {
				latp = latp2
			} else {
				latp = latp1
			}
		}
		// Account for rounding error.
		if math.Abs(latp) < 90+angleTol {
			if latp > 90 {
				latp = 90
			} else if latp < -90 {
				latp = -90
			}
		}
	}

	clat0 := cosd(lat0)
	z2 := cosd(latp) * clat0
	switch {
	case math.Abs(z2) < angleTol:
		if math.Abs(clat0) < angleTol {
			// Fiducial point at a celestial pole.
			r.alphaP = lng0
		} else if latp > 0 {
			// Celestial north pole at the native pole.
			r.alphaP = lng0 + phip - phi0 - 180
		} else {
			// Celestial south pole at the native pole.
			r.alphaP = lng0 - phip + phi0
		}
	default:
		x := (st0 - sind(latp)*slat0) / z2
		y := sdp * ct0 / clat0
		if x == 0 && y == 0 {
			return NewConfigurationError(ReasonPoleUnsolvable,
				"native pole longitude indeterminate", lat0, phi0, theta0, phip)
		}
		r.alphaP = lng0 - atan2d(y, x)
	}

	r.latpole = latp
	r.deltaP = 90 - latp
	r.sinDeltaP, r.cosDeltaP = sincosd(r.deltaP)
	return nil
}

// nativeToCelestial rotates native spherical coordinates (phi, theta)
// into celestial (lng, lat), all in degrees.
func (r *sphericalRotation) nativeToCelestial(np Point) Point {
	phi, theta := np.X, np.Y

	if r.sinDeltaP == 0 {
		// Degenerate rotation: pure change in origin of longitude.
		if r.cosDeltaP > 0 {
			return Point{r.wrapLng(r.alphaP + 180 - r.phiP + phi), theta}
		}
		return Point{r.wrapLng(r.alphaP + r.phiP - phi), -theta}
	}

	dphi := phi - r.phiP
	sinphi, cosphi := sincosd(dphi)
	sinthe, costhe := sincosd(theta)
	costhe3 := costhe * r.cosDeltaP
	costhe4 := costhe * r.sinDeltaP
	sinthe3 := sinthe * r.cosDeltaP
	sinthe4 := sinthe * r.sinDeltaP

	x := sinthe4 - costhe3*cosphi
	if math.Abs(x) < angleTol {
		// Rearranged to reduce roundoff near the poles.
		x = -cosd(theta+r.deltaP) + costhe3*(1-cosphi)
	}
	y := -costhe * sinphi

	var dlng float64
	if x != 0 || y != 0 {
		dlng = atan2d(y, x)
	} else if r.deltaP < 90 {
		// Change of origin of longitude.
		dlng = dphi + 180
	} else {
		dlng = -dphi
	}
	lng := r.wrapLng(r.alphaP + dlng)

	var lat float64
	if math.Mod(dphi, 180) == 0 {
		lat = theta + cosphi*r.deltaP
		if lat > 90 {
			lat = 180 - lat
		}
		if lat < -90 {
			lat = -180 - lat
		}
	} else {
		z := sinthe3 + costhe4*cosphi
		if math.Abs(z) > 0.99 {
			// Alternative formula for greater accuracy near the poles.
			lat = math.Copysign(acosd(math.Hypot(x, y)), z)
		} else {
			lat = asind(z)
		}
	}
	return Point{lng, lat}
}

// celestialToNative rotates celestial coordinates (lng, lat) into native
// spherical (phi, theta), all in degrees.
func (r *sphericalRotation) celestialToNative(cp Point) Point {
	lng, lat := cp.X, cp.Y

	if r.sinDeltaP == 0 {
		if r.cosDeltaP > 0 {
			return Point{wrap180(r.phiP - 180 - r.alphaP + lng), lat}
		}
		return Point{wrap180(r.phiP + r.alphaP - lng), -lat}
	}

	dlng := lng - r.alphaP
	sinlng, coslng := sincosd(dlng)
	sinlat, coslat := sincosd(lat)
	coslat3 := coslat * r.cosDeltaP
	coslat4 := coslat * r.sinDeltaP
	sinlat3 := sinlat * r.cosDeltaP
	sinlat4 := sinlat * r.sinDeltaP

	x := sinlat4 - coslat3*coslng
	if math.Abs(x) < angleTol {
		x = -cosd(lat+r.deltaP) + coslat3*(1-coslng)
	}
	y := -coslat * sinlng

	var dphi float64
	if x != 0 || y != 0 {
		dphi = atan2d(y, x)
	} else if r.deltaP < 90 {
		dphi = dlng - 180
	} else {
		dphi = -dlng
	}
	phi := wrap180(r.phiP + dphi)

	var theta float64
	if math.Mod(dlng, 180) == 0 {
		theta = lat + coslng*r.deltaP
		if theta > 90 {
			theta = 180 - theta
		}
		if theta < -90 {
			theta = -180 - theta
		}
	} else {
		z := sinlat3 + coslat4*coslng
		if math.Abs(z) > 0.99 {
			theta = math.Copysign(acosd(math.Hypot(x, y)), z)
		} else {
			theta = asind(z)
		}
	}
	return Point{phi, theta}
}

// wrapLng normalizes a celestial longitude into the congruent
// representative modulo 360 whose sign matches alphaP's sign.
func (r *sphericalRotation) wrapLng(lng float64) float64 {
	if r.alphaP >= 0 {
		if lng < 0 {
			lng += 360
		}
	} else {
		if lng > 0 {
			lng -= 360
		}
	}
	if lng > 360 {
		lng -= 360
	} else if lng < -360 {
		lng += 360
	}
	return lng
}
