package smd

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
)

func relClose(a, b []float64, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		scale := math.Abs(a[i])
		if scale < 1 {
			scale = 1
		}
		if !floats.EqualWithinAbs(a[i], b[i], tol*scale) {
			return false
		}
	}
	return true
}

func TestKeplerianRoundTrip(t *testing.T) {
	cases := []struct {
		a, e, i, Ω, ω, ν float64
	}{
		{24396, 0.7283, 7, 5, 10, 1},
		{42164, 0.001, 46, 1, 1, 1},
		{7000 + Earth.Radius, 0.01, 98.7, 0, 1, 1},
	}
	for _, c := range cases {
		o, err := NewOrbitFromKeplerian(c.a, c.e, c.i, c.Ω, c.ω, c.ν, Earth, NewEpoch(refTime))
		if err != nil {
			t.Fatalf("unexpected error for %+v: %v", c, err)
		}
		el := o.Elements()
		o2, err := NewOrbitFromKeplerian(el.SMA, el.ECC, el.INC, el.RAAN, el.AOP, el.TA, Earth, NewEpoch(refTime))
		if err != nil {
			t.Fatalf("round-trip reconstruction failed: %v", err)
		}
		if !relClose(o.R(), o2.R(), 1e-6) {
			t.Errorf("position round trip mismatch for %+v: %v vs %v", c, o.R(), o2.R())
		}
		if !relClose(o.V(), o2.V(), 1e-6) {
			t.Errorf("velocity round trip mismatch for %+v: %v vs %v", c, o.V(), o2.V())
		}
	}
}

func TestElementsCircular(t *testing.T) {
	o, err := NewOrbitFromKeplerian(7000, 0, 45, 10, 0, 30, Earth, NewEpoch(refTime))
	if err != nil {
		t.Fatal(err)
	}
	el := o.Elements()
	if !el.Circular {
		t.Fatal("expected Circular to be flagged for e=0")
	}
	if el.AOP != 0 {
		t.Fatalf("AOP should be reported as 0 on a circular orbit, got %f", el.AOP)
	}
}

func TestElementsEquatorial(t *testing.T) {
	o, err := NewOrbitFromKeplerian(7000, 0.01, 0, 0, 20, 30, Earth, NewEpoch(refTime))
	if err != nil {
		t.Fatal(err)
	}
	el := o.Elements()
	if !el.Equatorial {
		t.Fatal("expected Equatorial to be flagged for i=0")
	}
	if el.RAAN != 0 {
		t.Fatalf("RAAN should be reported as 0 on an equatorial orbit, got %f", el.RAAN)
	}
}

func TestElementsCircularEquatorial(t *testing.T) {
	o, err := NewOrbitFromKeplerian(7000, 0, 0, 0, 0, 40, Earth, NewEpoch(refTime))
	if err != nil {
		t.Fatal(err)
	}
	el := o.Elements()
	if !el.CircularEquatorial {
		t.Fatal("expected CircularEquatorial to be flagged")
	}
}

func TestNewOrbitFromRVRejectsSubSurface(t *testing.T) {
	_, err := NewOrbitFromRV([]float64{1000, 0, 0}, []float64{0, 7, 0}, Earth, NewEpoch(refTime))
	if err == nil {
		t.Fatal("expected a DomainError for a sub-surface position")
	}
}

func TestNewOrbitFromKeplerianRejectsNonPhysical(t *testing.T) {
	if _, err := NewOrbitFromKeplerian(7000, -0.1, 0, 0, 0, 0, Earth, NewEpoch(refTime)); err == nil {
		t.Fatal("expected a DomainError for negative eccentricity")
	}
	if _, err := NewOrbitFromKeplerian(7000, 0, 200, 0, 0, 0, Earth, NewEpoch(refTime)); err == nil {
		t.Fatal("expected a DomainError for inclination out of [0,180]")
	}
}
