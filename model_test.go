package spirograph

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"
)

// seqRand returns a fixed sequence of values, then repeats the last one.
type seqRand struct {
	vals []float64
	i    int
}

func (r *seqRand) Float64() float64 {
	v := r.vals[min(r.i, len(r.vals)-1)]
	r.i++
	return v
}

func newTestModel(t *testing.T, dimension float64) *Model {
	t.Helper()
	m, err := NewModel(dimension, DefaultBaseAngle)
	if err != nil {
		t.Fatalf("NewModel(%v) = %v", dimension, err)
	}
	return m
}

func TestNewModel_InvalidDimension(t *testing.T) {
	for _, d := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := NewModel(d, DefaultBaseAngle)
		if !errors.Is(err, ErrInvalidDimension) {
			t.Errorf("NewModel(%v) error = %v, want ErrInvalidDimension", d, err)
		}
	}
}

func TestNewModel_Centre(t *testing.T) {
	m := newTestModel(t, 800)
	if got := m.Centre(); got != Pt(400, 400) {
		t.Errorf("Centre() = %v, want (400, 400)", got)
	}
	if m.Dimension() != 800 {
		t.Errorf("Dimension() = %v, want 800", m.Dimension())
	}
}

func TestModel_GenerateRanges(t *testing.T) {
	m := newTestModel(t, 1000)
	rng := rand.New(rand.NewPCG(1, 2))

	for i := 0; i < 2000; i++ {
		m.Generate(rng)
		p, s := m.PrimaryRadius(), m.SecondaryRadius()
		if p < 200 || p >= 450 {
			t.Fatalf("PrimaryRadius() = %v, want [200, 450)", p)
		}
		if s < 50 || s >= 300 {
			t.Fatalf("SecondaryRadius() = %v, want [50, 300)", s)
		}
		if r := m.CircleRatio(); r <= 0 || r != p/s {
			t.Fatalf("CircleRatio() = %v, want %v", r, p/s)
		}
	}
}

func TestModel_GenerateBounds(t *testing.T) {
	tests := []struct {
		name                string
		u1, u2              float64
		primary, secondary  float64
		primaryLT, secondLT bool
	}{
		{"lowest", 0, 0, 200, 50, false, false},
		{"almost one", 0.9999999, 0.9999999, 450, 300, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t, 1000)
			m.Generate(&seqRand{vals: []float64{tt.u1, tt.u2}})
			p, s := m.PrimaryRadius(), m.SecondaryRadius()
			if tt.primaryLT {
				if p >= tt.primary {
					t.Errorf("PrimaryRadius() = %v, want < %v", p, tt.primary)
				}
			} else if p != tt.primary {
				t.Errorf("PrimaryRadius() = %v, want %v", p, tt.primary)
			}
			if tt.secondLT {
				if s >= tt.secondary {
					t.Errorf("SecondaryRadius() = %v, want < %v", s, tt.secondary)
				}
			} else if s != tt.secondary {
				t.Errorf("SecondaryRadius() = %v, want %v", s, tt.secondary)
			}
		})
	}
}

func TestModel_GenerateResetsPositions(t *testing.T) {
	m := newTestModel(t, 1000)
	rng := rand.New(rand.NewPCG(9, 9))
	m.Generate(rng)
	for range 50 {
		m.Iterate()
	}

	m.Generate(rng)
	c := m.Centre()
	p, s := m.PrimaryRadius(), m.SecondaryRadius()

	if want := Pt(c.X, c.Y-p); m.PenTip() != want {
		t.Errorf("PenTip() = %v, want %v", m.PenTip(), want)
	}
	if want := Pt(c.X, c.Y-(p-s)); m.SecondaryCentre() != want {
		t.Errorf("SecondaryCentre() = %v, want %v", m.SecondaryCentre(), want)
	}
	if m.InitialPenTip() != m.PenTip() {
		t.Errorf("InitialPenTip() = %v, want %v", m.InitialPenTip(), m.PenTip())
	}
	if m.Centre() != Pt(500, 500) {
		t.Errorf("Centre() moved to %v", m.Centre())
	}
}

func TestModel_IterateOrder(t *testing.T) {
	const ratio = 3.0
	m := newTestModel(t, 1000)
	m.circleRatio = ratio
	m.secondaryCentre = Pt(500, 300)
	m.penTip = Pt(500, 200)

	centre := m.Centre()
	sc, pen := m.SecondaryCentre(), m.PenTip()
	sc.RotateAbout(centre, DefaultBaseAngle)
	pen.RotateAbout(centre, DefaultBaseAngle)
	pen.RotateAbout(sc, DefaultBaseAngle*ratio)

	m.Iterate()

	if m.SecondaryCentre() != sc {
		t.Errorf("SecondaryCentre() = %v, want %v", m.SecondaryCentre(), sc)
	}
	if m.PenTip() != pen {
		t.Errorf("PenTip() = %v, want %v", m.PenTip(), pen)
	}

	// Orbiting the pen about the pre-step secondary centre gives another curve.
	stale, pen2 := Pt(500, 300), Pt(500, 200)
	pen2.RotateAbout(centre, DefaultBaseAngle)
	pen2.RotateAbout(stale, DefaultBaseAngle*ratio)
	if approx(pen2.X, pen.X, 1e-6) && approx(pen2.Y, pen.Y, 1e-6) {
		t.Errorf("reordered rotations produced the same pen tip %v", pen2)
	}
}

// The pen position after one step has a closed form: both orbits are plain
// rotations measured from +Y.
func TestModel_IterateClosedForm(t *testing.T) {
	m := newTestModel(t, 1000)
	m.Generate(&seqRand{vals: []float64{0.4, 0.2}})
	p, s, r := m.PrimaryRadius(), m.SecondaryRadius(), m.CircleRatio()
	c := m.Centre()

	const steps = 25
	for range steps {
		m.Iterate()
	}

	// Both start on the -Y axis (angle π). After n steps the secondary
	// centre has turned n·a, the pen n·a about the centre plus n·a·r about
	// the secondary centre.
	a := DefaultBaseAngle * steps
	scAngle := math.Pi + a
	wantSC := Pt(c.X+(p-s)*math.Sin(scAngle), c.Y+(p-s)*math.Cos(scAngle))
	penAngle := scAngle + a*r
	wantPen := Pt(wantSC.X+s*math.Sin(penAngle), wantSC.Y+s*math.Cos(penAngle))

	got := m.SecondaryCentre()
	if !approx(got.X, wantSC.X, 1e-6) || !approx(got.Y, wantSC.Y, 1e-6) {
		t.Errorf("SecondaryCentre() = %v, want %v", got, wantSC)
	}
	got = m.PenTip()
	if !approx(got.X, wantPen.X, 1e-6) || !approx(got.Y, wantPen.Y, 1e-6) {
		t.Errorf("PenTip() = %v, want %v", got, wantPen)
	}
}

func TestModel_IteratePreservesRadii(t *testing.T) {
	m := newTestModel(t, 800)
	m.Generate(rand.New(rand.NewPCG(3, 4)))
	p, s := m.PrimaryRadius(), m.SecondaryRadius()
	initial := m.InitialPenTip()

	for i := 0; i < 1000; i++ {
		m.Iterate()
	}

	if d := m.SecondaryCentre().DistanceTo(m.Centre()); !approx(d, math.Abs(p-s), 1e-6) {
		t.Errorf("secondary centre orbit radius = %v, want %v", d, math.Abs(p-s))
	}
	if d := m.PenTip().DistanceTo(m.SecondaryCentre()); !approx(d, s, 1e-6) {
		t.Errorf("pen orbit radius = %v, want %v", d, s)
	}
	if m.InitialPenTip() != initial {
		t.Errorf("Iterate changed InitialPenTip() to %v", m.InitialPenTip())
	}
}

func TestModel_SampledRadiiNeverDegenerate(t *testing.T) {
	for seed := uint64(1); seed <= 200; seed++ {
		m := newTestModel(t, 1000)
		m.Generate(rand.New(rand.NewPCG(seed, seed)))
		for i := 0; i < 500; i++ {
			m.Iterate()
		}
		if m.Degenerate() {
			t.Fatalf("seed %d: model degenerated (primary %v, secondary %v)",
				seed, m.PrimaryRadius(), m.SecondaryRadius())
		}
	}
}

func TestModel_DegenerateWhenSecondaryCentreOnCentre(t *testing.T) {
	m := newTestModel(t, 1000)
	m.Generate(&seqRand{vals: []float64{0.4, 0.2}})
	m.secondaryCentre = m.Centre()
	m.Iterate()
	if !m.Degenerate() {
		t.Error("Degenerate() = false after rotating the centre about itself")
	}
}

// One frame of four steps from a seeded generator is fully deterministic.
func TestModel_SeededFrameDeterministic(t *testing.T) {
	run := func() Point {
		m := newTestModel(t, 800)
		m.Generate(rand.New(rand.NewPCG(42, 42)))
		for range DefaultDrawSpeed {
			m.Iterate()
		}
		return m.PenTip()
	}

	first, second := run(), run()
	if first != second {
		t.Fatalf("same seed gave %v and %v", first, second)
	}

	// Reference trace built from the raw generator output.
	rng := rand.New(rand.NewPCG(42, 42))
	p := 800 * 0.5 * (0.4 + 0.5*rng.Float64())
	s := 800 * 0.5 * (0.1 + 0.5*rng.Float64())
	centre := Pt(400, 400)
	sc := Pt(400, 400-(p-s))
	pen := Pt(400, 400-p)
	for range 4 {
		sc.RotateAbout(centre, 0.03)
		pen.RotateAbout(centre, 0.03)
		pen.RotateAbout(sc, 0.03*(p/s))
	}
	if first != pen {
		t.Errorf("PenTip() = %v, want %v", first, pen)
	}
}

// recordedPen is the pen tip after one frame (four steps) on an 800px
// surface with radii drawn from 0.3 and 0.7, as traced by the browser toy.
var recordedPen = Pt(347.77838130260744, 186.64981842434366)

func TestModel_RecordedTrace(t *testing.T) {
	m := newTestModel(t, 800)
	m.Generate(&seqRand{vals: []float64{0.3, 0.7}})

	if !approx(m.PrimaryRadius(), 220, 1e-9) || !approx(m.SecondaryRadius(), 180, 1e-9) {
		t.Fatalf("radii = %v, %v, want 220, 180", m.PrimaryRadius(), m.SecondaryRadius())
	}
	for range DefaultDrawSpeed {
		m.Iterate()
	}

	got := m.PenTip()
	if !approx(got.X, recordedPen.X, 1e-12) || !approx(got.Y, recordedPen.Y, 1e-12) {
		t.Errorf("PenTip() = (%.17g, %.17g), want (%.17g, %.17g)",
			got.X, got.Y, recordedPen.X, recordedPen.Y)
	}
}

func BenchmarkModel_Iterate(b *testing.B) {
	m, _ := NewModel(800, DefaultBaseAngle)
	m.Generate(rand.New(rand.NewPCG(1, 1)))
	b.ReportAllocs()
	for b.Loop() {
		m.Iterate()
	}
}
