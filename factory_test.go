package wcsproj

import (
	"errors"
	"testing"
)

func TestParseCode(t *testing.T) {
	testCases := []struct {
		in   string
		want Code
		ok   bool
	}{
		{"TAN", CodeTAN, true},
		{"tan", CodeTAN, true},
		{" ZEA ", CodeZEA, true},
		{"0", CodeTAN, true},
		{"6", CodeSIN, true},
		{"3", CodeMER, true},
		{"7", "", false},
		{"-1", "", false},
		{"BONNE", "", false},
		{"", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			code, err := ParseCode(tc.in)
			if tc.ok {
				if err != nil {
					t.Fatal(err)
				}
				if code != tc.want {
					t.Errorf("got %v, want %v", code, tc.want)
				}
				return
			}
			var cfgErr *ConfigurationError
			if err == nil || !errors.As(err, &cfgErr) {
				t.Fatalf("expected ConfigurationError, got %v", err)
			}
			if cfgErr.Reason != ReasonInvalidCode {
				t.Errorf("reason: got %v, want %v", cfgErr.Reason, ReasonInvalidCode)
			}
		})
	}
}

func TestFactoryLegacyIDEquivalence(t *testing.T) {
	byCode, err := NewProjection(Config{Projection: "TAN"}, 30, 45)
	if err != nil {
		t.Fatal(err)
	}
	byID, err := NewProjection(Config{Projection: "0"}, 30, 45)
	if err != nil {
		t.Fatal(err)
	}
	if byCode.Code() != byID.Code() || byCode.ID() != byID.ID() {
		t.Fatalf("code/id mismatch: %s/%d vs %s/%d",
			byCode.Code(), byCode.ID(), byID.Code(), byID.ID())
	}
	for _, cp := range []Point{{30, 45}, {40, 50}, {10, 20}} {
		p1, ok1 := byCode.Direct(cp)
		p2, ok2 := byID.Direct(cp)
		if ok1 != ok2 || p1 != p2 {
			t.Errorf("Direct(%v): %v,%v vs %v,%v", cp, p1, ok1, p2, ok2)
		}
	}
}

func TestFactoryOriginMode(t *testing.T) {
	explicit, err := NewProjection(Config{
		Projection: "MER",
		OriginMode: OriginModeExplicit,
		OriginRA:   100,
		OriginDec:  -30,
	}, 30, 45)
	if err != nil {
		t.Fatal(err)
	}
	if wcs := explicit.GetWCS(); wcs.Crval1 != 100 || wcs.Crval2 != -30 {
		t.Errorf("explicit origin: got crval (%v,%v), want (100,-30)", wcs.Crval1, wcs.Crval2)
	}

	fallback, err := NewProjection(Config{
		Projection: "MER",
		OriginMode: OriginModeRefpoint,
		OriginRA:   100,
		OriginDec:  -30,
	}, 30, 45)
	if err != nil {
		t.Fatal(err)
	}
	if wcs := fallback.GetWCS(); wcs.Crval1 != 30 || wcs.Crval2 != 45 {
		t.Errorf("fallback origin: got crval (%v,%v), want (30,45)", wcs.Crval1, wcs.Crval2)
	}
}

func TestFactoryCoversAllCodes(t *testing.T) {
	codes := Codes()
	if len(codes) != 7 {
		t.Fatalf("supported codes: got %d, want 7", len(codes))
	}
	wantIDs := map[Code]int{
		CodeTAN: IDGnomonic,
		CodeSTG: IDStereographic,
		CodeCAR: IDPlateCarree,
		CodeMER: IDMercator,
		CodeAIT: IDHammerAitoff,
		CodeZEA: IDZenithalEqualArea,
		CodeSIN: IDOrthographic,
	}
	for _, code := range codes {
		p, err := NewProjection(Config{Projection: string(code)}, 10, 20)
		if err != nil {
			t.Fatalf("%s: %v", code, err)
		}
		if p.Code() != string(code) {
			t.Errorf("%s: instance reports code %s", code, p.Code())
		}
		if p.ID() != wantIDs[code] {
			t.Errorf("%s: instance reports id %d, want %d", code, p.ID(), wantIDs[code])
		}
	}
}

func TestFactoryInvalidCode(t *testing.T) {
	_, err := NewProjection(Config{Projection: "MOL"}, 0, 0)
	var cfgErr *ConfigurationError
	if err == nil || !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigurationError, got %v", err)
	}
}
