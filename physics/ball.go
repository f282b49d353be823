package physics

import (
	"github.com/lixenwraith/motion-sandbox/config"
	"github.com/lixenwraith/motion-sandbox/constant"
)

// Ball is a circle moving on the vertical axis in integer viewport units
// VX is carried for completeness but never integrated
type Ball struct {
	X, Y   int
	Radius int
	VX, VY int

	kick bool // impulse pending for the next Step
}

// Params holds the integrator constants
type Params struct {
	Height  int
	Gravity int
	Damping float64
	Force   int
}

// Contact identifies which boundary, if any, the ball hit during a Step
type Contact uint8

const (
	ContactNone Contact = iota
	ContactFloor
	ContactCeiling
)

func (c Contact) String() string {
	switch c {
	case ContactFloor:
		return "floor"
	case ContactCeiling:
		return "ceiling"
	default:
		return "none"
	}
}

// Result reports what happened in one Step
type Result struct {
	Contact Contact
	// Speed is |vy| at the moment of contact, before damping
	Speed int
	// Kicked is true when a pending impulse was consumed
	Kicked bool
}

// ParamsFromConfig derives integrator constants from loaded settings
func ParamsFromConfig(cfg *config.Config) Params {
	return Params{
		Height:  cfg.Window.Height,
		Gravity: cfg.Ball.Gravity,
		Damping: cfg.Ball.Damping,
		Force:   cfg.Ball.Force,
	}
}

// NewBall places a resting ball horizontally centered, just above the floor
func NewBall(width, height, radius int) Ball {
	return Ball{
		X:      width / 2,
		Y:      height - constant.BallStartLift,
		Radius: radius,
	}
}

// Impulse queues an upward kick that replaces gravity on the next Step
func Impulse(b *Ball) {
	b.kick = true
}

// Pending reports whether an impulse is queued
func (b *Ball) Pending() bool {
	return b.kick
}

// Step advances the ball one tick: v = v + g (or -force on a kick); y = y + v;
// reflect at the floor/ceiling; then zero sub-unit velocity
func Step(b *Ball, p Params) Result {
	var res Result

	if b.kick {
		SetImpulse(b, -p.Force)
		b.kick = false
		res.Kicked = true
	} else {
		b.VY += p.Gravity
	}
	b.Y += b.VY

	res.Contact, res.Speed = ReflectBoundsY(b, p)
	Deadband(b)
	return res
}

// SetImpulse overrides vertical velocity
func SetImpulse(b *Ball, vy int) {
	b.VY = vy
}

// ReflectBoundsY snaps the ball inside [radius, height-radius] and reverses
// and damps velocity on contact. The floor takes precedence over the ceiling
func ReflectBoundsY(b *Ball, p Params) (Contact, int) {
	speed := b.VY
	if speed < 0 {
		speed = -speed
	}

	if b.Y+b.Radius >= p.Height {
		b.Y = p.Height - b.Radius
		b.VY = damp(b.VY, p.Damping)
		return ContactFloor, speed
	}
	if b.Y-b.Radius <= 0 {
		b.Y = b.Radius
		b.VY = damp(b.VY, p.Damping)
		return ContactCeiling, speed
	}
	return ContactNone, 0
}

// Deadband forces velocity in (-1, 1) to exactly zero
func Deadband(b *Ball) {
	if b.VY > -1 && b.VY < 1 {
		b.VY = 0
	}
}

// damp reverses v and scales it, truncating toward zero
func damp(v int, damping float64) int {
	return int(-float64(v) * damping)
}
