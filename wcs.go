package wcsproj

import (
	"fmt"

	sexa "github.com/soniakeys/sexagesimal"
	"github.com/soniakeys/unit"
)

// WCSKeywords is the plain data record exchanged with the host's metadata
// layer. Angles are degrees. Optional keywords are pointers so that
// absence survives a JSON round trip the same way a missing FITS card
// does.
type WCSKeywords struct {
	Ctype1  string   `json:"ctype1"`
	Ctype2  string   `json:"ctype2"`
	Crval1  float64  `json:"crval1"`
	Crval2  float64  `json:"crval2"`
	PV11    *float64 `json:"pv1_1,omitempty"`   // native longitude of the fiducial point
	PV12    *float64 `json:"pv1_2,omitempty"`   // native latitude of the fiducial point
	Lonpole *float64 `json:"lonpole,omitempty"` // native longitude of the celestial pole
	Latpole *float64 `json:"latpole,omitempty"` // hint for the native pole latitude, default 90
}

func (w WCSKeywords) String() string {
	return fmt.Sprintf("%s/%s at {RA %s, Dec %s}",
		w.Ctype1, w.Ctype2,
		sexa.FmtRA(unit.RAFromDeg(wrap360(w.Crval1))),
		sexa.FmtAngle(unit.AngleFromDeg(w.Crval2)))
}

// ctypeCode extracts the 3-letter projection code from an 8-character
// FITS ctype card such as "RA---TAN" or "DEC--AIT".
func ctypeCode(ctype string) (string, bool) {
	if len(ctype) != 8 {
		return "", false
	}
	return ctype[5:], true
}

func keywordOr(p *float64, def float64) float64 {
	if p != nil {
		return *p
	}
	return def
}

func keyword(v float64) *float64 {
	return &v
}
