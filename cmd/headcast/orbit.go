package main

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/kadrey/headcast/pkg/la"
)

// OrbitAxis tracks one angular degree of freedom with spring-damped velocity
// decay, the way cmd/trophy/main.go's RotationAxis animates rotation: a key
// press or mouse drag adds an impulse to Velocity, and each frame the
// velocity relaxes toward zero via a critically-damped harmonica spring
// while Position integrates it.
type OrbitAxis struct {
	Position  float64
	Velocity  float64
	velSpring harmonica.Spring
	velAccel  float64
}

func newOrbitAxis(fps int) OrbitAxis {
	return OrbitAxis{velSpring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0)}
}

func (a *OrbitAxis) Update() {
	a.Position += a.Velocity
	a.Velocity, a.velAccel = a.velSpring.Update(a.Velocity, a.velAccel, 0)
}

// OrbitState is the viewer's camera: Yaw and Pitch orbit a fixed Pan target
// at Distance, spring-damped like cmd/trophy/main.go's RotationState, but
// driving a spherical eye position rather than a model-space rotation
// matrix — the scene driver (raster.Config) takes an eye/pan pair, not a
// projection matrix, so there is no FOV or clip-plane state to carry here.
type OrbitState struct {
	Yaw, Pitch OrbitAxis
	Distance   float64
	Pan        la.Vec3
	fps        int
}

const (
	minPitch = -1.5
	maxPitch = 1.5
	minDist  = 1.0
	maxDist  = 20.0
)

func newOrbitState(fps int) *OrbitState {
	return &OrbitState{
		Yaw:      newOrbitAxis(fps),
		Pitch:    newOrbitAxis(fps),
		Distance: 5.0,
		fps:      fps,
	}
}

func (o *OrbitState) Update() {
	o.Yaw.Update()
	o.Pitch.Update()
	if o.Pitch.Position > maxPitch {
		o.Pitch.Position = maxPitch
		o.Pitch.Velocity = 0
	}
	if o.Pitch.Position < minPitch {
		o.Pitch.Position = minPitch
		o.Pitch.Velocity = 0
	}
}

func (o *OrbitState) ApplyImpulse(yaw, pitch float64) {
	o.Yaw.Velocity += yaw
	o.Pitch.Velocity += pitch
}

func (o *OrbitState) Zoom(delta float64) {
	o.Distance += delta
	if o.Distance < minDist {
		o.Distance = minDist
	}
	if o.Distance > maxDist {
		o.Distance = maxDist
	}
}

func (o *OrbitState) Reset() {
	o.Yaw = newOrbitAxis(o.fps)
	o.Pitch = newOrbitAxis(o.fps)
	o.Distance = 5.0
}

// Eye returns the current eye position relative to Pan, matching
// raster.Config's Eye/Pan split: Eye is the offset the scene driver adds to
// Pan before building the look-at matrix (la.LookAt(eye.Add(pan), pan)).
func (o *OrbitState) Eye() la.Vec3 {
	cosPitch := float32(math.Cos(o.Pitch.Position))
	return la.V3(
		float32(o.Distance)*cosPitch*float32(math.Sin(o.Yaw.Position)),
		float32(o.Distance)*float32(math.Sin(o.Pitch.Position)),
		float32(o.Distance)*cosPitch*float32(math.Cos(o.Yaw.Position)),
	)
}
