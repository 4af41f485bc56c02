package smd

// derivative computes the 7-dimensional state derivative (ṙ, v̇, ṁ) for a
// spacecraft at the given orbit, combining point-mass two-body gravity with
// the propulsion stack's thrust acceleration and mass flow rate. mTotal is
// dry mass plus current fuel mass; mFuel is the current fuel mass alone
// (the only resource AccelerationAndMassFlow needs to decide whether to
// throttle down).
func derivative(o *Orbit, mTotal, mFuel float64, prop *Propulsion) (rDot, vDot []float64, mDot float64) {
	r, v := o.R(), o.V()
	rNorm := Norm(r)
	µ := o.Body().Mu

	rDot = v
	vDot = Scale(-µ/(rNorm*rNorm*rNorm), r)
	mDot = 0

	if prop != nil {
		aThrust, mdot := prop.AccelerationAndMassFlow(o, mTotal, mFuel)
		vDot = Add(vDot, aThrust)
		mDot = mdot
	}
	return
}
