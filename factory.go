package wcsproj

import (
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Code is the closed set of supported WCS projection codes.
type Code string

const (
	CodeTAN Code = "TAN"
	CodeSTG Code = "STG"
	CodeCAR Code = "CAR"
	CodeMER Code = "MER"
	CodeAIT Code = "AIT"
	CodeZEA Code = "ZEA"
	CodeSIN Code = "SIN"
)

// Legacy integer identifiers, kept for configuration records written by
// older hosts. The mapping is applied once, at the parse boundary.
const (
	IDGnomonic = iota
	IDStereographic
	IDPlateCarree
	IDMercator
	IDHammerAitoff
	IDZenithalEqualArea
	IDOrthographic
)

var legacyCodes = map[int]Code{
	IDGnomonic:          CodeTAN,
	IDStereographic:     CodeSTG,
	IDPlateCarree:       CodeCAR,
	IDMercator:          CodeMER,
	IDHammerAitoff:      CodeAIT,
	IDZenithalEqualArea: CodeZEA,
	IDOrthographic:      CodeSIN,
}

var codeNames = map[Code]string{
	CodeTAN: "gnomonic",
	CodeSTG: "stereographic",
	CodeCAR: "plate carree",
	CodeMER: "mercator",
	CodeAIT: "hammer-aitoff",
	CodeZEA: "zenithal equal area",
	CodeSIN: "orthographic",
}

// Codes lists the supported projection codes in sorted order.
func Codes() []Code {
	cs := maps.Keys(codeNames)
	slices.Sort(cs)
	return cs
}

// ParseCode resolves a configuration projection field, accepting either a
// 3-letter WCS code or a legacy integer identifier rendered as a string.
func ParseCode(s string) (Code, error) {
	c := Code(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := codeNames[c]; ok {
		return c, nil
	}
	if id, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		if c, ok := legacyCodes[id]; ok {
			return c, nil
		}
	}
	return "", NewConfigurationError(ReasonInvalidCode, "Invalid projection code: "+s)
}

// Origin modes of a projection configuration record.
const (
	// OriginModeRefpoint centers the projection on the caller-supplied
	// fallback point, typically the image center.
	OriginModeRefpoint = 0
	// OriginModeExplicit centers the projection on the origin recorded in
	// the configuration itself.
	OriginModeExplicit = 1
)

// Config is the host-side projection configuration record.
type Config struct {
	Projection string  `json:"projection"`
	OriginMode int     `json:"projectionOriginMode"`
	OriginRA   float64 `json:"projectionOriginRA"`
	OriginDec  float64 `json:"projectionOriginDec"`
}

// NewProjection is the composition root: it resolves the reference point,
// dispatches on the closed set of projection codes and initializes the
// chosen projection at that point. The fallback (ra, dec) is used unless
// the configuration demands its own explicit origin.
func NewProjection(cfg Config, ra, dec float64) (Projection, error) {
	code, err := ParseCode(cfg.Projection)
	if err != nil {
		return nil, err
	}
	if cfg.OriginMode == OriginModeExplicit {
		ra, dec = cfg.OriginRA, cfg.OriginDec
	}

	// The gnomonic constructor takes the tangent point directly; every
	// other projection is pinned through InitFromRefpoint.
	if code == CodeTAN {
		return NewGnomonic(ra, dec), nil
	}

	var p Projection
	switch code {
	case CodeSTG:
		p = NewStereographic()
	case CodeCAR:
		p = NewPlateCarree()
	case CodeMER:
		p = NewMercator()
	case CodeAIT:
		p = NewHammerAitoff()
	case CodeZEA:
		p = NewZenithalEqualArea()
	case CodeSIN:
		p = NewOrthographic()
	default:
		return nil, NewConfigurationError(ReasonInvalidCode, "Invalid projection code: "+string(code))
	}
	if err := p.InitFromRefpoint(ra, dec); err != nil {
		return nil, err
	}
	return p, nil
}

// NewProjectionFromWCS reconstructs a projection from a host keyword
// record, the inverse of GetWCS.
func NewProjectionFromWCS(wcs WCSKeywords) (Projection, error) {
	suffix, ok := ctypeCode(wcs.Ctype1)
	if !ok {
		return nil, NewConfigurationError(ReasonCtypeMismatch, "malformed ctype1 "+wcs.Ctype1)
	}
	code, err := ParseCode(suffix)
	if err != nil {
		return nil, err
	}

	var p Projection
	switch code {
	case CodeTAN:
		p = NewGnomonic(0, 0)
	case CodeSTG:
		p = NewStereographic()
	case CodeCAR:
		p = NewPlateCarree()
	case CodeMER:
		p = NewMercator()
	case CodeAIT:
		p = NewHammerAitoff()
	case CodeZEA:
		p = NewZenithalEqualArea()
	case CodeSIN:
		p = NewOrthographic()
	default:
		return nil, NewConfigurationError(ReasonInvalidCode, "Invalid projection code: "+string(code))
	}
	if err := p.InitFromWCS(wcs); err != nil {
		return nil, err
	}
	return p, nil
}
