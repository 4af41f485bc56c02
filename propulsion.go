package smd

// g0 is the standard gravitational acceleration used to relate specific
// impulse to mass flow, in m/s^2.
const g0 = 9.80665

// Propulsion holds a read-only thruster table and the steering law that
// decides where to point the combined thrust vector at each evaluation.
type Propulsion struct {
	Thrusters  []Thruster
	Controller ThrustControl
}

// efficiencyGater is implemented by steering laws that support the
// optional efficiency gate (Ruggiero does); Propulsion forwards its
// construction-time flag to the controller through this narrow interface
// instead of depending on the concrete Ruggiero type.
type efficiencyGater interface {
	SetEfficiencyGated(bool)
}

// SetEfficiencyGated sets the controller's efficiency-gating flag; it makes
// Ruggiero satisfy the efficiencyGater interface NewPropulsion forwards to.
func (c *Ruggiero) SetEfficiencyGated(gated bool) {
	c.EfficiencyGated = gated
}

// NewPropulsion aggregates a thruster table behind a steering law.
// efficiencyGated is forwarded to the controller if it supports gating
// (see original_source's Propulsion::new third argument).
func NewPropulsion(thrusters []Thruster, controller ThrustControl, efficiencyGated bool) (*Propulsion, error) {
	if len(thrusters) == 0 {
		return nil, &DomainError{Field: "Thrusters", Value: 0, Reason: "at least one thruster is required"}
	}
	if controller == nil {
		return nil, &DomainError{Field: "Controller", Value: 0, Reason: "must not be nil"}
	}
	if gater, ok := controller.(efficiencyGater); ok {
		gater.SetEfficiencyGated(efficiencyGated)
	}
	return &Propulsion{Thrusters: thrusters, Controller: controller}, nil
}

// stack aggregates the thruster table into a combined thrust force (N) and
// a thrust-weighted average specific impulse (s).
func (p *Propulsion) stack() (thrustN, ispS float64) {
	var thrustIsp float64
	for _, t := range p.Thrusters {
		thrustN += t.ThrustN
		thrustIsp += t.ThrustN * t.IspS
	}
	if thrustN > 0 {
		ispS = thrustIsp / thrustN
	}
	return
}

// AccelerationAndMassFlow implements §4.3: it queries the controller for a
// direction and throttle, and if thrusting, returns the thrust-induced
// acceleration (km/s^2) and mass flow rate (kg/s, negative while burning).
// It returns the zero vector and zero flow once fuel is exhausted or the
// controller throttles down, and the run continues ballistically.
func (p *Propulsion) AccelerationAndMassFlow(o *Orbit, mTotal, mFuel float64) ([]float64, float64) {
	if mFuel <= 0 {
		return []float64{0, 0, 0}, 0
	}
	dir, throttle := p.Controller.Control(o)
	if throttle == 0 {
		return []float64{0, 0, 0}, 0
	}
	thrustN, ispS := p.stack()
	accel := Scale(thrustN/mTotal*1e-3, dir) // N/kg == m/s^2; *1e-3 -> km/s^2
	mdot := -thrustN / (ispS * g0)
	return accel, mdot
}
