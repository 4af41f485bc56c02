package smd

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// R1 is a rotation about the first axis, by angle x radians.
func R1(x float64) *mat.Dense {
	s, c := math.Sincos(x)
	return mat.NewDense(3, 3, []float64{1, 0, 0, 0, c, s, 0, -s, c})
}

// R2 is a rotation about the second axis, by angle x radians.
func R2(x float64) *mat.Dense {
	s, c := math.Sincos(x)
	return mat.NewDense(3, 3, []float64{c, 0, -s, 0, 1, 0, s, 0, c})
}

// R3 is a rotation about the third axis, by angle x radians.
func R3(x float64) *mat.Dense {
	s, c := math.Sincos(x)
	return mat.NewDense(3, 3, []float64{c, s, 0, -s, c, 0, 0, 0, 1})
}

// R3R1R3 performs the classical 3-1-3 Euler rotation used to carry a vector
// from the perifocal frame to the frame the elements (Ω, i, ω) are defined
// in. From Schaub and Junkins.
func R3R1R3(θ1, θ2, θ3 float64) *mat.Dense {
	sθ1, cθ1 := math.Sincos(θ1)
	sθ2, cθ2 := math.Sincos(θ2)
	sθ3, cθ3 := math.Sincos(θ3)
	return mat.NewDense(3, 3, []float64{
		cθ3*cθ1 - sθ3*cθ2*sθ1, cθ3*sθ1 + sθ3*cθ2*cθ1, sθ3 * sθ2,
		-sθ3*cθ1 - cθ3*cθ2*sθ1, -sθ3*sθ1 + cθ3*cθ2*cθ1, cθ3 * sθ2,
		sθ2 * sθ1, -sθ2 * cθ1, cθ2,
	})
}

// PerifocalToInertial rotates a perifocal-frame vector into the inertial
// frame given RAAN Ω, inclination i and argument of periapsis ω, all in
// radians: R_z(-Ω)·R_x(-i)·R_z(-ω).
func PerifocalToInertial(Ω, i, ω float64, v []float64) []float64 {
	var rot mat.Dense
	rot.Mul(R3(-Ω), R1(-i))
	rot.Mul(&rot, R3(-ω))
	return MxV33(&rot, v)
}

// RSWToInertial rotates a vector expressed in the RSW (radial-transverse-
// normal) frame of the given orbital elements into the inertial frame.
// RSW and perifocal share the same rotation into the inertial frame; RSW's
// R axis leads the perifocal frame's P axis by the true anomaly ν.
func RSWToInertial(Ω, i, ω, ν float64, v []float64) []float64 {
	return PerifocalToInertial(Ω, i, ω+ν, v)
}
