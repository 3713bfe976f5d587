// Package projectile evaluates closed-form projectile kinematics for
// independent launch scenarios.
package projectile

import (
	"errors"
	"fmt"
	"math"
)

// SampleInterval is the time between trajectory samples.
const SampleInterval = 0.1

// samplesPerSecond is 1/SampleInterval. Counting samples by multiplying
// keeps a flight of exactly k intervals at k+1 samples.
const samplesPerSecond = 10

// ErrInvalidInput is returned for scenarios the formulas cannot evaluate.
var ErrInvalidInput = errors.New("invalid input")

// Projectile is an immutable launch description. Angle is in radians.
type Projectile struct {
	speed   float64
	angle   float64
	gravity float64
}

// Point is one trajectory sample.
type Point struct {
	T, X, Y float64
}

// New validates a launch given in degrees and returns the projectile.
// Speed and gravity must be positive and every value finite.
func New(speed, angleDeg, gravity float64) (Projectile, error) {
	switch {
	case !finite(speed) || !finite(angleDeg) || !finite(gravity):
		return Projectile{}, fmt.Errorf("%w: values must be finite numbers", ErrInvalidInput)
	case gravity <= 0:
		return Projectile{}, fmt.Errorf("%w: gravity must be positive, got %g", ErrInvalidInput, gravity)
	case speed <= 0:
		return Projectile{}, fmt.Errorf("%w: initial speed must be positive, got %g", ErrInvalidInput, speed)
	}
	return Projectile{speed: speed, angle: angleDeg * math.Pi / 180, gravity: gravity}, nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// Speed returns the initial speed.
func (p Projectile) Speed() float64 { return p.speed }

// Angle returns the launch angle in radians.
func (p Projectile) Angle() float64 { return p.angle }

// Gravity returns the gravitational acceleration.
func (p Projectile) Gravity() float64 { return p.gravity }

// TimeOfFlight is 2·v0·sinθ / g.
func (p Projectile) TimeOfFlight() float64 {
	return 2 * p.speed * math.Sin(p.angle) / p.gravity
}

// MaxHeight is v0²·sin²θ / 2g.
func (p Projectile) MaxHeight() float64 {
	s := math.Sin(p.angle)
	return p.speed * p.speed * s * s / (2 * p.gravity)
}

// Range is v0²·sin2θ / g.
func (p Projectile) Range() float64 {
	return p.speed * p.speed * math.Sin(2*p.angle) / p.gravity
}

// Position returns the sample at time t.
func (p Projectile) Position(t float64) Point {
	return Point{
		T: t,
		X: p.speed * math.Cos(p.angle) * t,
		Y: p.speed*math.Sin(p.angle)*t - 0.5*p.gravity*t*t,
	}
}

// Trajectory samples the flight every SampleInterval from t=0. The last
// sample is the final whole interval and may fall short of TimeOfFlight.
func (p Projectile) Trajectory() []Point {
	tof := p.TimeOfFlight()
	if tof < 0 {
		return []Point{p.Position(0)}
	}
	n := int(tof*samplesPerSecond) + 1
	out := make([]Point, n)
	for i := range out {
		out[i] = p.Position(float64(i) * SampleInterval)
	}
	return out
}
