// SPDX-License-Identifier: EPL-2.0

package render

import (
	"image/color"
	"math/rand"
	"time"
)

// DefaultMaxParticles caps the particle pool when Options leaves it
// unset.
const DefaultMaxParticles = 128

// particle is one spark near the playhead. Dead particles stay in the
// pool and are recycled through the system's free list.
type particle struct {
	x, y    float64
	vx, vy  float64
	life    float64
	maxLife float64
	alive   bool
}

// ParticleSystem animates a fixed pool of particles. The pool never
// grows past its cap; expired slots return to a free list and are
// reused by later spawns. All randomness comes from the injected
// source, so animation is reproducible under a seeded Rand.
type ParticleSystem struct {
	rng      *rand.Rand
	pool     []particle
	free     []int
	spawnAcc float64
}

// NewParticleSystem builds a pool of max particles drawing randomness
// from rng. A nil rng gets a time-seeded source; a non-positive max
// gets DefaultMaxParticles.
func NewParticleSystem(max int, rng *rand.Rand) *ParticleSystem {
	if max <= 0 {
		max = DefaultMaxParticles
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	ps := &ParticleSystem{
		rng:  rng,
		pool: make([]particle, max),
		free: make([]int, 0, max),
	}
	for i := max - 1; i >= 0; i-- {
		ps.free = append(ps.free, i)
	}

	return ps
}

// Cap is the pool size.
func (ps *ParticleSystem) Cap() int { return len(ps.pool) }

// Alive counts live particles.
func (ps *ParticleSystem) Alive() int { return len(ps.pool) - len(ps.free) }

// Step advances the animation by dt seconds: live particles move and
// decay, expired ones return to the free list, and new ones spawn near
// (x, y) at rate particles per second. Fractional spawns accumulate
// across steps.
func (ps *ParticleSystem) Step(dt, rate, x, y float64) {
	for i := range ps.pool {
		p := &ps.pool[i]
		if !p.alive {
			continue
		}
		p.life -= dt
		if p.life <= 0 {
			p.alive = false
			ps.free = append(ps.free, i)
			continue
		}
		p.x += p.vx * dt
		p.y += p.vy * dt
	}

	ps.spawnAcc += rate * dt
	for ps.spawnAcc >= 1 {
		ps.spawnAcc--
		if !ps.spawn(x, y) {
			break
		}
	}
}

// spawn takes a slot from the free list; a full pool drops the spawn.
func (ps *ParticleSystem) spawn(x, y float64) bool {
	if len(ps.free) == 0 {
		return false
	}
	i := ps.free[len(ps.free)-1]
	ps.free = ps.free[:len(ps.free)-1]

	life := 0.4 + 0.8*ps.rng.Float64()
	ps.pool[i] = particle{
		x:       x + (ps.rng.Float64()-0.5)*8,
		y:       y + (ps.rng.Float64()-0.5)*16,
		vx:      (ps.rng.Float64() - 0.5) * 60,
		vy:      -20 - 40*ps.rng.Float64(),
		life:    life,
		maxLife: life,
		alive:   true,
	}

	return true
}

// Reset expires every particle and clears spawn accumulation.
func (ps *ParticleSystem) Reset() {
	ps.free = ps.free[:0]
	for i := len(ps.pool) - 1; i >= 0; i-- {
		ps.pool[i].alive = false
		ps.free = append(ps.free, i)
	}
	ps.spawnAcc = 0
}

// draw blends the live particles onto the surface, fading alpha with
// remaining life.
func (ps *ParticleSystem) draw(s *Surface, c color.RGBA) {
	for i := range ps.pool {
		p := &ps.pool[i]
		if !p.alive {
			continue
		}
		alpha := uint8(255 * clamp01(p.life/p.maxLife))
		s.FillRect(int(p.x), int(p.y), 2, 2, WithAlpha(c, alpha))
	}
}
