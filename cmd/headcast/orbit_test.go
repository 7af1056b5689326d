package main

import (
	"math"
	"testing"

	"github.com/kadrey/headcast/pkg/la"
)

func TestOrbitStateZoomClampsToRange(t *testing.T) {
	o := newOrbitState(30)
	o.Zoom(-100)
	if o.Distance != minDist {
		t.Errorf("Distance = %v, want clamped to %v", o.Distance, minDist)
	}
	o.Zoom(100)
	if o.Distance != maxDist {
		t.Errorf("Distance = %v, want clamped to %v", o.Distance, maxDist)
	}
}

func TestOrbitStatePitchClampsDuringUpdate(t *testing.T) {
	o := newOrbitState(30)
	o.Pitch.Position = maxPitch + 1
	o.Update()
	if o.Pitch.Position != maxPitch {
		t.Errorf("Pitch.Position = %v, want clamped to %v", o.Pitch.Position, maxPitch)
	}
	if o.Pitch.Velocity != 0 {
		t.Errorf("Pitch.Velocity = %v, want 0 after clamping", o.Pitch.Velocity)
	}
}

func TestOrbitStateEyeAtZeroAnglesIsOnPositiveZ(t *testing.T) {
	o := newOrbitState(30)
	o.Distance = 5
	eye := o.Eye()
	if math.Abs(float64(eye.X)) > 1e-4 || math.Abs(float64(eye.Y)) > 1e-4 {
		t.Errorf("Eye() = %v, want on the +Z axis at yaw=pitch=0", eye)
	}
	if eye.Z <= 0 {
		t.Errorf("Eye().Z = %v, want positive", eye.Z)
	}
}

func TestOrbitStateReset(t *testing.T) {
	o := newOrbitState(30)
	o.Distance = 15
	o.Yaw.Position = 2
	o.Reset()
	if o.Distance != 5.0 {
		t.Errorf("Distance after Reset = %v, want 5.0", o.Distance)
	}
	if o.Yaw.Position != 0 {
		t.Errorf("Yaw.Position after Reset = %v, want 0", o.Yaw.Position)
	}
}

func TestScreenToLightDirCenterIsStraightOn(t *testing.T) {
	d := screenToLightDir(40, 12, 80, 24)
	want := la.V3(0, 0, 1)
	if d.Sub(want).Len() > 1e-4 {
		t.Errorf("screenToLightDir(center) = %v, want ~%v", d, want)
	}
}

func TestScreenToLightDirIsUnitLength(t *testing.T) {
	for _, p := range [][2]int{{0, 0}, {80, 24}, {40, 0}, {0, 24}} {
		d := screenToLightDir(p[0], p[1], 80, 24)
		if math.Abs(float64(d.Len())-1) > 1e-4 {
			t.Errorf("screenToLightDir(%v) len = %v, want 1", p, d.Len())
		}
	}
}
