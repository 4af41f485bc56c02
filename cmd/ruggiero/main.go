package main

import (
	"fmt"
	"os"
	"time"

	"smd"
	"smd/telemetry"
)

func main() {
	/* Reproduces the SMA-raising transfer: GTO-like orbit to GEO. */

	start := smd.NewEpoch(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))

	initOrbit, err := smd.NewOrbitFromKeplerian(24396, 0, 0, 0, 0, 0, smd.Earth, start)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	objective, err := smd.NewObjective(smd.SMA, 42164, 1)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctrl, err := smd.NewRuggiero([]smd.Objective{objective}, initOrbit)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	prop, err := smd.NewPropulsion([]smd.Thruster{smd.PPS1350()}, ctrl, true)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	sc, err := smd.NewSpacecraft(initOrbit, 300, 67, prop)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	opts, err := smd.NewPropOpts(10)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	propagator := smd.NewPropagator(opts)

	sampler := telemetry.NewSampler(os.Stdout)

	const dayS = 24 * 3600.0
	totalDuration := 45 * dayS
	const sampleEvery = dayS

	var elapsed float64
	for elapsed < totalDuration && !ctrl.Achieved(sc.Orbit) {
		step := sampleEvery
		if totalDuration-elapsed < step {
			step = totalDuration - elapsed
		}
		if err := propagator.PropagateUntil(sc, step); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		elapsed += step
		if err := sampler.Sample(sc.Orbit.Epoch(), sc.Orbit.Elements(), sc.FuelMass); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	if err := sampler.Flush(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "achieved=%v fuel remaining=%.3f kg elapsed=%.0f s\n", ctrl.Achieved(sc.Orbit), sc.FuelMass, elapsed)
}
