package smd

import "testing"

func TestObjectiveAchieved(t *testing.T) {
	obj, err := NewObjective(SMA, 42164, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !obj.achieved(Elements{SMA: 42164.5}) {
		t.Fatal("expected within-tolerance SMA to be achieved")
	}
	if obj.achieved(Elements{SMA: 42160}) {
		t.Fatal("expected out-of-tolerance SMA to be unachieved")
	}
}

func TestObjectiveUndefined(t *testing.T) {
	obj, _ := NewObjective(RAAN, 5, 0.1)
	if undef, _ := obj.undefined(Elements{Equatorial: true}); !undef {
		t.Fatal("RAAN should be undefined on an equatorial orbit")
	}
	aopObj, _ := NewObjective(AOP, 180, 0.1)
	if undef, _ := aopObj.undefined(Elements{Circular: true}); !undef {
		t.Fatal("AOP should be undefined on a circular orbit")
	}
}

func TestNewObjectiveRejectsNonPositiveTol(t *testing.T) {
	if _, err := NewObjective(SMA, 42164, 0); err == nil {
		t.Fatal("expected a DomainError for a non-positive tolerance")
	}
}
