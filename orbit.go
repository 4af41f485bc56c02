package smd

import (
	"math"
)

// Degenerate-case thresholds, as flagged in design review: the acos-based
// conversion is fragile near e=0 or sin(i)=0, so those regimes are detected
// explicitly and the angle that would be undefined there is zeroed out
// rather than fed a near-singular acos argument.
const (
	eccε = 1e-9
	incε = 1e-9
)

// Elements is the osculating Keplerian view of an Orbit. Angles are in
// degrees, matching the numeric-units convention of the public surface.
type Elements struct {
	SMA  float64 // km
	ECC  float64
	INC  float64 // degrees, [0,180]
	RAAN float64 // degrees, [0,360)
	AOP  float64 // degrees, [0,360)
	TA   float64 // degrees, [0,360)

	// CircularEquatorial flags a fully degenerate orbit: RAAN and AOP are
	// both undefined and TA has been replaced by the true longitude.
	CircularEquatorial bool
	// Circular flags e<eccε: AOP is undefined and TA has been replaced by
	// the argument of latitude.
	Circular bool
	// Equatorial flags sin(i)<incε: RAAN is undefined.
	Equatorial bool
}

// Orbit is a Cartesian state (r, v) about a central Body at an epoch.
type Orbit struct {
	rVec, vVec []float64
	body       Body
	epoch      Epoch
}

// NewOrbitFromRV builds an Orbit from a Cartesian state. Returns a
// DomainError if the body is non-physical or the position is sub-surface.
func NewOrbitFromRV(r, v []float64, body Body, epoch Epoch) (*Orbit, error) {
	if err := body.Validate(); err != nil {
		return nil, err
	}
	if Norm(r) <= body.Radius {
		return nil, &DomainError{Field: "‖r‖", Value: Norm(r), Reason: "must exceed body radius"}
	}
	return &Orbit{
		rVec: append([]float64{}, r...),
		vVec: append([]float64{}, v...),
		body: body, epoch: epoch,
	}, nil
}

// NewOrbitFromKeplerian builds an Orbit from Keplerian elements. Angles
// (i, Ω, ω, ν) are in degrees. Returns a DomainError for non-physical input.
func NewOrbitFromKeplerian(a, e, i, Ω, ω, ν float64, body Body, epoch Epoch) (*Orbit, error) {
	if err := body.Validate(); err != nil {
		return nil, err
	}
	if e < 0 {
		return nil, &DomainError{Field: "ECC", Value: e, Reason: "must be non-negative"}
	}
	if i < 0 || i > 180 {
		return nil, &DomainError{Field: "INC", Value: i, Reason: "must be in [0,180] degrees"}
	}
	p := a * (1 - e*e)
	if e < 1 && p <= 0 {
		return nil, &DomainError{Field: "SMA", Value: a, Reason: "a*(1-e^2) must be positive for an elliptic orbit"}
	}

	νr := Deg2rad(ν)
	sν, cν := math.Sincos(νr)
	r := p / (1 + e*cν)
	rPQW := []float64{r * cν, r * sν, 0}
	h := math.Sqrt(body.Mu * p)
	vPQW := []float64{-body.Mu / h * sν, body.Mu / h * (e + cν), 0}

	rVec := PerifocalToInertial(Deg2rad(Ω), Deg2rad(i), Deg2rad(ω), rPQW)
	vVec := PerifocalToInertial(Deg2rad(Ω), Deg2rad(i), Deg2rad(ω), vPQW)

	return NewOrbitFromRV(rVec, vVec, body, epoch)
}

// R returns the position vector, km.
func (o *Orbit) R() []float64 { return append([]float64{}, o.rVec...) }

// V returns the velocity vector, km/s.
func (o *Orbit) V() []float64 { return append([]float64{}, o.vVec...) }

// Body returns the central body.
func (o *Orbit) Body() Body { return o.body }

// Epoch returns the orbit's epoch.
func (o *Orbit) Epoch() Epoch { return o.epoch }

// Elements converts the current Cartesian state to osculating Keplerian
// elements using the eccentricity-vector / node-vector formulation, with
// atan2-based substitutions in the degenerate regimes instead of acos.
func (o *Orbit) Elements() Elements {
	r, v := o.rVec, o.vVec
	µ := o.body.Mu

	rNorm := Norm(r)
	vNorm := Norm(v)
	hVec := Cross(r, v)
	h := Norm(hVec)
	nVec := Cross([]float64{0, 0, 1}, hVec)
	n := Norm(nVec)

	rv := Dot(r, v)
	eVec := make([]float64, 3)
	for k := 0; k < 3; k++ {
		eVec[k] = ((vNorm*vNorm-µ/rNorm)*r[k] - rv*v[k]) / µ
	}
	e := Norm(eVec)

	a := 1 / (2/rNorm - vNorm*vNorm/µ)
	i := math.Acos(clamp(hVec[2]/h, -1, 1))

	hHat := Unit(hVec)

	el := Elements{SMA: a, ECC: e, INC: Rad2deg(i)}

	circular := e < eccε
	equatorial := math.Sin(i) < incε
	el.Circular = circular
	el.Equatorial = equatorial
	el.CircularEquatorial = circular && equatorial

	switch {
	case el.CircularEquatorial:
		λ := math.Atan2(r[1], r[0])
		el.RAAN, el.AOP, el.TA = 0, 0, Rad2deg(λ)
	case circular:
		u := math.Atan2(Dot(Cross(nVec, r), hHat), Dot(nVec, r))
		el.RAAN = wrapAtan2(nVec[1], nVec[0])
		el.AOP = 0
		el.TA = Rad2deg(u)
	case equatorial:
		ϖ := math.Atan2(eVec[1], eVec[0])
		ν := math.Atan2(Dot(Cross(eVec, r), hHat), Dot(eVec, r))
		el.RAAN = 0
		el.AOP = Rad2deg(ϖ)
		el.TA = Rad2deg(ν)
	default:
		el.RAAN = wrapAtan2(nVec[1], nVec[0])
		ω := math.Atan2(Dot(Cross(nVec, eVec), hHat), Dot(nVec, eVec))
		ν := math.Atan2(Dot(Cross(eVec, r), hHat), Dot(eVec, r))
		el.AOP = Rad2deg(ω)
		el.TA = Rad2deg(ν)
	}
	return el
}

func wrapAtan2(y, x float64) float64 {
	a := math.Atan2(y, x)
	if a < 0 {
		a += 2 * math.Pi
	}
	return Rad2deg(a)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
