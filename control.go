package smd

import (
	"math"

	kitlog "github.com/go-kit/kit/log"
)

// defaultEfficiencyThreshold is the per-objective coast-fraction cutoff
// below which that objective is considered too inefficient to burn at the
// current true anomaly. Exposed per-objective so a caller can retune it.
// With gating on, the controller coasts over the parts of each orbit where
// every active objective's efficiency is below this value, so thrust is not
// continuous.
const defaultEfficiencyThreshold = 0.1

// ThrustControl is the narrow capability the propulsion stack needs from a
// steering law: an inertial unit direction and a throttle, and a way to
// tell whether its objectives have been met. Ruggiero is the one variant
// implemented here; a finite-burn, tabular, or optimal-control law could
// implement the same interface.
type ThrustControl interface {
	Control(o *Orbit) (dir []float64, throttle float64)
	Achieved(o *Orbit) bool
}

// Ruggiero is a locally-optimal Lyapunov-style steering law: at each
// evaluation it sums a per-objective thrust direction (expressed in the
// RSW frame) weighted by the sign of that objective's current error, then
// renormalizes and rotates the result into the inertial frame.
type Ruggiero struct {
	Objectives []Objective
	// EfficiencyGated enables the coast-fraction gate of §4.2: if every
	// objective's instantaneous efficiency is below its threshold, the
	// controller returns a zero throttle instead of a thrust direction.
	EfficiencyGated bool
	// Thresholds holds a per-objective efficiency cutoff; objectives not
	// present here use defaultEfficiencyThreshold.
	Thresholds map[ObjectiveKind]float64

	// UndefinedCount tallies, per objective kind, how many Control
	// evaluations found that element undefined at the current state
	// (AOP/RAAN on a circular or equatorial orbit). Pollable at any time.
	UndefinedCount map[ObjectiveKind]uint64

	initial Elements // captured once at construction, never mutated

	logger        kitlog.Logger
	undefinedSeen map[ObjectiveKind]bool
	lastThrottle  float64
}

// NewRuggiero builds a controller for the given objectives, snapshotting
// the initial orbit's elements. The snapshot is kept unchanged; Control does
// not read it, since it weights each objective by its error's sign only.
func NewRuggiero(objectives []Objective, initialOrbit *Orbit) (*Ruggiero, error) {
	if len(objectives) == 0 {
		return nil, &DomainError{Field: "Objectives", Value: 0, Reason: "at least one objective is required"}
	}
	return &Ruggiero{
		Objectives:      append([]Objective{}, objectives...),
		EfficiencyGated: true,
		initial:         initialOrbit.Elements(),
		logger:          defaultLogger(),
		lastThrottle:    -1,
	}, nil
}

// SetLogger overrides the controller's logger.
func (c *Ruggiero) SetLogger(l kitlog.Logger) {
	c.logger = l
}

// Achieved reports whether every objective is within tolerance at o. It is
// side-effect-free and may be polled at any time with any orbit, independent
// of a propagation in progress.
func (c *Ruggiero) Achieved(o *Orbit) bool {
	el := o.Elements()
	for _, obj := range c.Objectives {
		if !obj.achieved(el) {
			return false
		}
	}
	return true
}

func (c *Ruggiero) threshold(kind ObjectiveKind) float64 {
	if c.Thresholds != nil {
		if t, ok := c.Thresholds[kind]; ok {
			return t
		}
	}
	return defaultEfficiencyThreshold
}

// Control returns the inertial unit thrust direction and a throttle in
// {0,1}. Objectives that are already achieved, or whose element is
// undefined at the current state, contribute no direction.
func (c *Ruggiero) Control(o *Orbit) ([]float64, float64) {
	el := o.Elements()
	ν := Deg2rad(el.TA)
	ω := Deg2rad(el.AOP)
	e := el.ECC
	i := Deg2rad(el.INC)

	sum := []float64{0, 0, 0}
	anyActive := false
	efficientEnough := false

	for _, obj := range c.Objectives {
		if obj.achieved(el) {
			continue
		}
		if undef, reason := obj.undefined(el); undef {
			c.recordUndefined(obj.Kind, reason)
			continue
		}
		f := ruggieroDirection(obj.Kind, el, ν, ω, e, i)
		sign := Sign(obj.Target - obj.current(el))
		for k := 0; k < 3; k++ {
			sum[k] += sign * f[k]
		}
		anyActive = true
		if efficiency(obj.Kind, ν, ω, e) >= c.threshold(obj.Kind) {
			efficientEnough = true
		}
	}

	var dir []float64
	var throttle float64
	switch {
	case !anyActive:
		dir, throttle = []float64{0, 0, 0}, 0
	case c.EfficiencyGated && !efficientEnough:
		dir, throttle = []float64{0, 0, 0}, 0
	default:
		rsw := Unit(sum)
		dir, throttle = RSWToInertial(Deg2rad(el.RAAN), i, ω, ν, rsw), 1
	}
	c.logTransition(throttle)
	return dir, throttle
}

// recordUndefined tallies an undefined-element evaluation and logs it the
// first time this objective kind is seen undefined, to avoid flooding the
// log across many propagation substeps.
func (c *Ruggiero) recordUndefined(kind ObjectiveKind, reason string) {
	if c.UndefinedCount == nil {
		c.UndefinedCount = make(map[ObjectiveKind]uint64)
	}
	c.UndefinedCount[kind]++
	if c.undefinedSeen == nil {
		c.undefinedSeen = make(map[ObjectiveKind]bool)
	}
	if c.undefinedSeen[kind] {
		return
	}
	c.undefinedSeen[kind] = true
	err := &UndefinedElement{Kind: kind, Reason: reason}
	c.logger.Log("level", "info", "subsys", "ctrl", "message", err.Error())
}

// logTransition logs a control-law switch (coast<->burn) the first time it
// is observed and on every subsequent change of throttle.
func (c *Ruggiero) logTransition(throttle float64) {
	if throttle == c.lastThrottle {
		return
	}
	c.lastThrottle = throttle
	c.logger.Log("level", "info", "subsys", "ctrl", "message", "control-law transition", "throttle", throttle)
}

// ruggieroDirection computes the unnormalized per-objective direction in
// the RSW frame, per the steering formulas of §4.2. The sign of the error
// is applied by the caller, not here.
func ruggieroDirection(kind ObjectiveKind, el Elements, ν, ω, e, i float64) []float64 {
	sν, cν := math.Sincos(ν)
	switch kind {
	case SMA:
		return []float64{0, 1, 0}
	case ECC:
		E := eccentricAnomaly(e, ν)
		cE := math.Cos(E)
		f := []float64{sν, cE + cν, 0}
		return Unit(f)
	case INC:
		return []float64{0, 0, Sign(math.Cos(ω + ν))}
	case AOP:
		radial := sν
		tangential := (2 + e*cν) / (1 + e*cν) * cν
		var normal float64
		if math.Abs(math.Sin(i)) > incε {
			normal = -e * (math.Cos(i) / math.Sin(i)) * math.Sin(ω+ν) / (1 + e*cν)
		}
		return Unit([]float64{radial, tangential, normal})
	case RAAN:
		return []float64{0, 0, Sign(math.Sin(ω + ν))}
	}
	return []float64{0, 0, 0}
}

// efficiency estimates the instantaneous coast fraction of burning toward
// the given objective at the current true anomaly: how favorably placed
// the spacecraft is in its orbit for that element's steering direction to
// be effective.
func efficiency(kind ObjectiveKind, ν, ω, e float64) float64 {
	switch kind {
	case SMA, ECC:
		return math.Abs(math.Cos(ν))
	case INC:
		return math.Abs(math.Cos(ω + ν))
	case AOP:
		return math.Abs(math.Sin(ν))
	case RAAN:
		return math.Abs(math.Sin(ω + ν))
	}
	return 0
}

// eccentricAnomaly computes E from the true anomaly ν and eccentricity e
// for an elliptic orbit.
func eccentricAnomaly(e, ν float64) float64 {
	sν, cν := math.Sincos(ν)
	return math.Atan2(math.Sqrt(1-e*e)*sν, e+cν)
}
