package wcsproj

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"
)

func TestWCSRoundTrip(t *testing.T) {
	for _, code := range Codes() {
		t.Run(string(code), func(t *testing.T) {
			orig, err := NewProjection(Config{Projection: string(code)}, 30, 45)
			if err != nil {
				t.Fatal(err)
			}
			rebuilt, err := NewProjectionFromWCS(orig.GetWCS())
			if err != nil {
				t.Fatal(err)
			}
			if rebuilt.Code() != orig.Code() {
				t.Fatalf("code: got %s, want %s", rebuilt.Code(), orig.Code())
			}
			for _, cp := range []Point{{30, 45}, {40, 50}, {15, 30}} {
				p1, ok1 := orig.Direct(cp)
				p2, ok2 := rebuilt.Direct(cp)
				if ok1 != ok2 {
					t.Fatalf("Direct(%v): ok %v vs %v", cp, ok1, ok2)
				}
				if math.Abs(p1.X-p2.X) > 1e-12 || math.Abs(p1.Y-p2.Y) > 1e-12 {
					t.Errorf("Direct(%v): %v vs %v", cp, p1, p2)
				}
			}
		})
	}
}

func TestInitFromWCSThetaClamp(t *testing.T) {
	p := NewMercator()
	wcs := WCSKeywords{
		Ctype1: "RA---MER",
		Ctype2: "DEC--MER",
		Crval1: 10,
		Crval2: 20,
		PV12:   keyword(90.000001),
	}
	if err := p.InitFromWCS(wcs); err != nil {
		t.Fatalf("theta0 within tolerance of 90 should clamp, got %v", err)
	}
	if got := *p.GetWCS().PV12; got != 90 {
		t.Errorf("clamped theta0: got %v, want 90", got)
	}

	wcs.PV12 = keyword(90.1)
	err := NewMercator().InitFromWCS(wcs)
	var cfgErr *ConfigurationError
	if err == nil || !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigurationError, got %v", err)
	}
	if cfgErr.Reason != ReasonThetaRange {
		t.Errorf("reason: got %v, want %v", cfgErr.Reason, ReasonThetaRange)
	}
}

func TestInitFromWCSCtypeMismatch(t *testing.T) {
	p := NewMercator()
	err := p.InitFromWCS(WCSKeywords{Ctype1: "RA---TAN", Ctype2: "DEC--TAN"})
	var cfgErr *ConfigurationError
	if err == nil || !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigurationError, got %v", err)
	}
	if cfgErr.Reason != ReasonCtypeMismatch {
		t.Errorf("reason: got %v, want %v", cfgErr.Reason, ReasonCtypeMismatch)
	}
}

func TestInitFromWCSLatpoleHint(t *testing.T) {
	// The same geometry as the rotation root-selection test, driven
	// through keywords: theta0=30 at crval (0,30) admits pole latitudes
	// 90 and -30.
	base := WCSKeywords{
		Ctype1:  "RA---MER",
		Ctype2:  "DEC--MER",
		Crval1:  0,
		Crval2:  30,
		PV12:    keyword(30),
		Lonpole: keyword(0),
	}

	north := NewMercator()
	if err := north.InitFromWCS(base); err != nil {
		t.Fatal(err)
	}
	if got := *north.GetWCS().Latpole; got != 90 {
		t.Errorf("default hint: got pole latitude %v, want 90", got)
	}

	south := NewMercator()
	wcs := base
	wcs.Latpole = keyword(-30)
	if err := south.InitFromWCS(wcs); err != nil {
		t.Fatal(err)
	}
	if got := *south.GetWCS().Latpole; math.Abs(got+30) > 1e-9 {
		t.Errorf("hint -30: got pole latitude %v, want -30", got)
	}
}

func TestWCSKeywordsJSON(t *testing.T) {
	wcs := NewGnomonic(187.25, 2.5).GetWCS()
	data, err := json.Marshal(wcs)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "lonpole") {
		t.Errorf("absent keywords should be omitted: %s", data)
	}
	var back WCSKeywords
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back.Ctype1 != "RA---TAN" || back.Crval1 != 187.25 || back.Crval2 != 2.5 {
		t.Errorf("round trip lost fields: %+v", back)
	}
	if back.Latpole != nil {
		t.Errorf("latpole should stay absent, got %v", *back.Latpole)
	}
}

func TestWCSKeywordsString(t *testing.T) {
	s := NewGnomonic(90, -45).GetWCS().String()
	if !strings.Contains(s, "RA---TAN") || !strings.Contains(s, "DEC--TAN") {
		t.Errorf("ctype pair missing from %q", s)
	}
	if !strings.Contains(s, "6") {
		// RA 90 degrees formats as 6 hours.
		t.Errorf("sexagesimal RA missing from %q", s)
	}
}
