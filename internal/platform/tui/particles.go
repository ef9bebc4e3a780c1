package tui

import (
	"math"
	"math/rand/v2"

	"github.com/vovakirdan/chromatic-collapse/internal/core"
)

// Particle motion constants, in screen cells per tick.
const (
	particleGravity  = 0.025
	particleDrag     = 0.96
	particleMinLife  = 18
	particleLifeSpan = 18 // Extra random ticks on top of particleMinLife
)

// Particle is one spark thrown off a cleared tile.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   int // Remaining ticks
	Max    int
	Color  core.Color
}

// ParticleSystem owns the sparks shown after a chain clears. It is purely
// visual and never touches game state.
type ParticleSystem struct {
	particles []Particle
	rng       *rand.Rand
}

// NewParticleSystem creates an empty particle system.
func NewParticleSystem(seed int64) *ParticleSystem {
	return &ParticleSystem{
		rng: rand.New(rand.NewPCG(uint64(seed), 0x9e3779b97f4a7c15)),
	}
}

// Spawn throws count particles from (x, y).
func (ps *ParticleSystem) Spawn(x, y float64, c core.Color, count int) {
	for range count {
		angle := ps.rng.Float64() * 2 * math.Pi
		speed := 0.15 + ps.rng.Float64()*0.35
		life := particleMinLife + ps.rng.IntN(particleLifeSpan)
		ps.particles = append(ps.particles, Particle{
			X:     x,
			Y:     y,
			VX:    math.Cos(angle) * speed * 2, // Cells are twice as tall as wide
			VY:    math.Sin(angle)*speed - 0.2,
			Life:  life,
			Max:   life,
			Color: c,
		})
	}
}

// Update advances every particle by one tick and drops dead ones.
func (ps *ParticleSystem) Update() {
	alive := ps.particles[:0]
	for _, p := range ps.particles {
		p.Life--
		if p.Life <= 0 {
			continue
		}
		p.X += p.VX
		p.Y += p.VY
		p.VX *= particleDrag
		p.VY = p.VY*particleDrag + particleGravity
		alive = append(alive, p)
	}
	ps.particles = alive
}

// Len returns the number of live particles.
func (ps *ParticleSystem) Len() int {
	return len(ps.particles)
}

// Clear removes every particle.
func (ps *ParticleSystem) Clear() {
	ps.particles = ps.particles[:0]
}

// Draw renders the particles onto dst. Sparks fade from '*' to '.'.
func (ps *ParticleSystem) Draw(dst *core.Screen) {
	for _, p := range ps.particles {
		x := int(math.Round(p.X))
		y := int(math.Round(p.Y))
		if x < 0 || y < 0 || x >= dst.Width() || y >= dst.Height() {
			continue
		}
		dst.SetColored(x, y, particleRune(p), p.Color)
	}
}

func particleRune(p Particle) rune {
	switch frac := float64(p.Life) / float64(p.Max); {
	case frac > 0.66:
		return '*'
	case frac > 0.33:
		return '+'
	default:
		return '.'
	}
}
