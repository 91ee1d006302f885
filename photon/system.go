// Package photon is the cosmetic particle engine. Bursts are emitted on
// gameplay events and ambient zones; the population self-tunes its visual
// spread with a cheap evolutionary pass. Nothing in here feeds back into
// gameplay state.
package photon

import (
	"image/color"
	"math"
	"math/rand"
	"time"

	dmath "github.com/yohamta/donburi/features/math"

	"github.com/lunarbyte/hopper/config"
)

// TrailLen is the length of each particle's trailing-position ring buffer.
const TrailLen = 15

// Particle is one live particle. Positions and velocities are in screen
// space; Life counts down from 255 and the particle dies at zero.
type Particle struct {
	Pos   dmath.Vec2
	Vel   dmath.Vec2
	Color color.RGBA
	Life  float64

	trail     [TrailLen]dmath.Vec2
	trailLen  int
	trailHead int
}

func (p *Particle) pushTrail(pos dmath.Vec2) {
	p.trail[p.trailHead] = pos
	p.trailHead = (p.trailHead + 1) % TrailLen
	if p.trailLen < TrailLen {
		p.trailLen++
	}
}

// Trail returns the particle's recent positions, oldest first.
func (p *Particle) Trail() []dmath.Vec2 {
	out := make([]dmath.Vec2, 0, p.trailLen)
	start := p.trailHead - p.trailLen
	for i := 0; i < p.trailLen; i++ {
		out = append(out, p.trail[(start+i+TrailLen)%TrailLen])
	}
	return out
}

// EvolutionState is the session-wide adaptation state. It survives level
// resets; only process exit clears it.
type EvolutionState struct {
	Generation       int
	MutationRate     float64
	FitnessThreshold float64
	LastFitness      float64
}

// System owns the particle population exclusively. All methods are called
// from the single simulation goroutine; there is no internal locking.
type System struct {
	cfg         config.ParticleConfig
	rng         *rand.Rand
	screenWidth float64

	particles []Particle
	evolution EvolutionState
}

// NewSystem returns a particle system with an empty population.
func NewSystem(cfg config.ParticleConfig, screenWidth float64) *System {
	return &System{
		cfg:         cfg,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		screenWidth: screenWidth,
		particles:   make([]Particle, 0, cfg.Limit),
		evolution: EvolutionState{
			MutationRate:     cfg.MutationRate,
			FitnessThreshold: cfg.FitnessThreshold,
		},
	}
}

// Emit appends up to count particles in a burst around origin. Requests
// beyond the population cap are silently truncated; existing particles are
// never evicted. Returns the number actually created.
func (s *System) Emit(origin dmath.Vec2, count int, col color.RGBA, spread float64) int {
	room := s.cfg.Limit - len(s.particles)
	if room <= 0 {
		return 0
	}
	if count > room {
		count = room
	}
	for i := 0; i < count; i++ {
		p := Particle{
			Pos: origin,
			Vel: dmath.Vec2{
				X: -spread + s.rng.Float64()*2*spread,
				Y: -spread + s.rng.Float64()*2*spread,
			},
			Color: col,
			Life:  255,
		}
		p.pushTrail(origin)
		s.particles = append(s.particles, p)
	}
	return count
}

// Update advances every particle one tick and removes the ones whose life
// reached zero in the same call.
func (s *System) Update() {
	live := s.particles[:0]
	for i := range s.particles {
		p := &s.particles[i]
		p.Pos.X += p.Vel.X
		p.Pos.Y += p.Vel.Y
		p.pushTrail(p.Pos)
		p.Vel.Y += s.cfg.Gravity
		p.Life -= s.cfg.LifeDecay
		if p.Life > 0 {
			live = append(live, *p)
		}
	}
	s.particles = live
}

// Adapt runs one evolutionary pass. It is a no-op below the minimum
// population. Fitness is the standard deviation of horizontal positions
// relative to screen width; below the threshold a random sample of the
// population (size × mutation rate) gets a small Gaussian velocity kick and
// the generation counter increments.
func (s *System) Adapt() {
	n := len(s.particles)
	if n <= s.cfg.AdaptMinPopulation {
		return
	}

	fitness := s.dispersion() / s.screenWidth
	s.evolution.LastFitness = fitness
	if fitness >= s.evolution.FitnessThreshold {
		return
	}

	sample := int(float64(n) * s.evolution.MutationRate)
	for i := 0; i < sample; i++ {
		p := &s.particles[s.rng.Intn(n)]
		p.Vel.X += s.rng.NormFloat64() * 0.5
		p.Vel.Y += s.rng.NormFloat64() * 0.5
	}
	s.evolution.Generation++
}

func (s *System) dispersion() float64 {
	n := float64(len(s.particles))
	var mean float64
	for i := range s.particles {
		mean += s.particles[i].Pos.X
	}
	mean /= n

	var variance float64
	for i := range s.particles {
		d := s.particles[i].Pos.X - mean
		variance += d * d
	}
	return math.Sqrt(variance / n)
}

// Particles exposes the live population for rendering. The slice is owned by
// the system; callers must treat it as read-only and must not retain it
// across Update calls.
func (s *System) Particles() []Particle {
	return s.particles
}

// Count returns the live population size.
func (s *System) Count() int {
	return len(s.particles)
}

// Evolution returns a copy of the adaptation state.
func (s *System) Evolution() EvolutionState {
	return s.evolution
}

// Clear drops every particle. Evolution state is deliberately kept; the
// generation counter spans the whole session.
func (s *System) Clear() {
	s.particles = s.particles[:0]
}
