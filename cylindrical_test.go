package wcsproj

import (
	"math"
	"testing"
)

func TestPlateCarreeIdentity(t *testing.T) {
	p := NewPlateCarree()
	np := Point{30, 45}
	pp, ok := p.Project(np)
	if !ok || pp != np {
		t.Errorf("Project(%v) = %v, %v; want identity", np, pp, ok)
	}
	back, ok := p.Unproject(pp)
	if !ok || back != np {
		t.Errorf("Unproject(%v) = %v, %v; want identity", pp, back, ok)
	}
}

func TestMercatorEquatorOrigin(t *testing.T) {
	p := NewMercator()
	pp, ok := p.Project(Point{0, 0})
	if !ok {
		t.Fatal("unexpected domain failure")
	}
	// ln(tan(45 deg)) = 0
	if pp.X != 0 || math.Abs(pp.Y) > 1e-12 {
		t.Errorf("Project((0,0)) = %v, want (0,0)", pp)
	}
}

func TestMercatorPlaneRoundTrip(t *testing.T) {
	p := NewMercator()
	for _, np := range []Point{{0, 0}, {-120, 30}, {45, -75}, {179, 85}} {
		pp, ok := p.Project(np)
		if !ok {
			t.Fatalf("Project(%v) failed", np)
		}
		back, ok := p.Unproject(pp)
		if !ok {
			t.Fatalf("Unproject(%v) failed", pp)
		}
		if math.Abs(back.X-np.X) > 1e-9 || math.Abs(back.Y-np.Y) > 1e-9 {
			t.Errorf("round trip of %v came back as %v", np, back)
		}
	}
}

func TestMercatorPolesDiverge(t *testing.T) {
	p := NewMercator()
	if _, ok := p.Project(Point{0, 90}); ok {
		t.Error("the north pole maps to infinity and must fail")
	}
	if _, ok := p.Project(Point{0, -90}); ok {
		t.Error("the south pole maps to infinity and must fail")
	}
}
