package smd

import "testing"

func TestRuggieroAchievedIsSideEffectFree(t *testing.T) {
	o, err := NewOrbitFromKeplerian(24396, 0, 0, 0, 0, 0, Earth, NewEpoch(refTime))
	if err != nil {
		t.Fatal(err)
	}
	obj, _ := NewObjective(SMA, 42164, 1)
	ctrl, err := NewRuggiero([]Objective{obj}, o)
	if err != nil {
		t.Fatal(err)
	}
	if ctrl.Achieved(o) {
		t.Fatal("24396 km should not already satisfy a 42164 km objective")
	}
	// Calling Achieved repeatedly must not mutate the cached initial snapshot.
	before := ctrl.initial
	ctrl.Achieved(o)
	ctrl.Achieved(o)
	if before != ctrl.initial {
		t.Fatal("Achieved must not mutate the controller's initial snapshot")
	}

	target, err := NewOrbitFromKeplerian(42164, 0, 0, 0, 0, 0, Earth, NewEpoch(refTime))
	if err != nil {
		t.Fatal(err)
	}
	if !ctrl.Achieved(target) {
		t.Fatal("42164 km should satisfy a 42164 km objective")
	}
}

func TestRuggieroSMADirectionSign(t *testing.T) {
	o, err := NewOrbitFromKeplerian(24396, 0.01, 1, 0, 0, 45, Earth, NewEpoch(refTime))
	if err != nil {
		t.Fatal(err)
	}
	raising, _ := NewObjective(SMA, 42164, 1)
	lowering, _ := NewObjective(SMA, 10000, 1)

	up, err := NewRuggiero([]Objective{raising}, o)
	if err != nil {
		t.Fatal(err)
	}
	up.EfficiencyGated = false
	dirUp, throttleUp := up.Control(o)
	if throttleUp != 1 {
		t.Fatal("expected thrust on when raising SMA")
	}

	down, err := NewRuggiero([]Objective{lowering}, o)
	if err != nil {
		t.Fatal(err)
	}
	down.EfficiencyGated = false
	dirDown, throttleDown := down.Control(o)
	if throttleDown != 1 {
		t.Fatal("expected thrust on when lowering SMA")
	}

	if Dot(dirUp, dirDown) >= 0 {
		t.Fatalf("raising and lowering SMA should steer in roughly opposite directions, got dot=%f", Dot(dirUp, dirDown))
	}
}

func TestRuggieroSkipsAchievedObjectives(t *testing.T) {
	o, err := NewOrbitFromKeplerian(42164, 0, 0, 0, 0, 0, Earth, NewEpoch(refTime))
	if err != nil {
		t.Fatal(err)
	}
	obj, _ := NewObjective(SMA, 42164, 1)
	ctrl, err := NewRuggiero([]Objective{obj}, o)
	if err != nil {
		t.Fatal(err)
	}
	_, throttle := ctrl.Control(o)
	if throttle != 0 {
		t.Fatal("an already-achieved sole objective should produce zero throttle")
	}
}

func TestRuggieroSkipsUndefinedObjectives(t *testing.T) {
	o, err := NewOrbitFromKeplerian(42164, 0, 0, 0, 0, 0, Earth, NewEpoch(refTime))
	if err != nil {
		t.Fatal(err)
	}
	obj, _ := NewObjective(RAAN, 5, 0.1)
	ctrl, err := NewRuggiero([]Objective{obj}, o)
	if err != nil {
		t.Fatal(err)
	}
	_, throttle := ctrl.Control(o)
	if throttle != 0 {
		t.Fatal("RAAN is undefined on an equatorial orbit and should contribute no thrust")
	}
	if ctrl.UndefinedCount[RAAN] != 1 {
		t.Fatalf("expected one undefined-RAAN evaluation recorded, got %d", ctrl.UndefinedCount[RAAN])
	}
	ctrl.Control(o)
	if ctrl.UndefinedCount[RAAN] != 2 {
		t.Fatalf("expected the undefined-RAAN counter to keep incrementing, got %d", ctrl.UndefinedCount[RAAN])
	}
}
