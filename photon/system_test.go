package photon

import (
	"image/color"
	"testing"

	dmath "github.com/yohamta/donburi/features/math"

	"github.com/lunarbyte/hopper/config"
)

var white = color.RGBA{255, 255, 255, 255}

func newTestSystem(limit int) *System {
	cfg := config.Particle
	cfg.Limit = limit
	return NewSystem(cfg, 800)
}

func TestEmitTruncatesAtCap(t *testing.T) {
	s := newTestSystem(100)

	if got := s.Emit(dmath.Vec2{X: 50, Y: 50}, 95, white, 2); got != 95 {
		t.Fatalf("first emit created %d, want 95", got)
	}
	if got := s.Emit(dmath.Vec2{X: 50, Y: 50}, 20, white, 2); got != 5 {
		t.Errorf("over-cap emit created %d, want 5", got)
	}
	if s.Count() != 100 {
		t.Errorf("population = %d, want 100", s.Count())
	}
	if got := s.Emit(dmath.Vec2{X: 50, Y: 50}, 1, white, 2); got != 0 {
		t.Errorf("emit at cap created %d, want 0", got)
	}
}

func TestUpdateIntegratesAndDecays(t *testing.T) {
	s := newTestSystem(10)
	s.Emit(dmath.Vec2{X: 100, Y: 100}, 1, white, 0)

	p := s.Particles()[0]
	if p.Vel.X != 0 || p.Vel.Y != 0 {
		t.Fatalf("zero-spread velocity = %+v, want zero", p.Vel)
	}

	s.Update()
	p = s.Particles()[0]
	if p.Vel.Y != config.Particle.Gravity {
		t.Errorf("vel.Y after one tick = %v, want %v", p.Vel.Y, config.Particle.Gravity)
	}
	if p.Life != 255-config.Particle.LifeDecay {
		t.Errorf("life after one tick = %v, want %v", p.Life, 255-config.Particle.LifeDecay)
	}

	s.Update()
	p = s.Particles()[0]
	// Position integrates the velocity from the previous tick, then gravity.
	if p.Pos.Y != 100+config.Particle.Gravity {
		t.Errorf("pos.Y after two ticks = %v, want %v", p.Pos.Y, 100+config.Particle.Gravity)
	}
}

func TestUpdateRemovesDeadSameCall(t *testing.T) {
	s := newTestSystem(10)
	s.Emit(dmath.Vec2{}, 3, white, 1)

	// 255 / 2 per frame: dead on the 128th update.
	ticks := int(255/config.Particle.LifeDecay) + 1
	for i := 0; i < ticks; i++ {
		s.Update()
		for _, p := range s.Particles() {
			if p.Life <= 0 {
				t.Fatalf("tick %d: particle with life %v still present", i, p.Life)
			}
		}
	}
	if s.Count() != 0 {
		t.Errorf("population after full decay = %d, want 0", s.Count())
	}
}

func TestTrailBounded(t *testing.T) {
	s := newTestSystem(10)
	s.Emit(dmath.Vec2{X: 1, Y: 1}, 1, white, 0)

	for i := 0; i < TrailLen*3; i++ {
		s.Update()
	}
	p := s.Particles()[0]
	trail := p.Trail()
	if len(trail) != TrailLen {
		t.Fatalf("trail length = %d, want %d", len(trail), TrailLen)
	}
	// Newest entry is the current position.
	if got := trail[len(trail)-1]; got != p.Pos {
		t.Errorf("newest trail entry = %+v, want current pos %+v", got, p.Pos)
	}
}

func TestAdaptBelowMinPopulationIsNoop(t *testing.T) {
	s := newTestSystem(1000)
	s.Emit(dmath.Vec2{X: 400, Y: 300}, config.Particle.AdaptMinPopulation, white, 0)

	s.Adapt()
	if gen := s.Evolution().Generation; gen != 0 {
		t.Errorf("generation = %d after under-population adapt, want 0", gen)
	}
}

func TestAdaptPerturbsClusteredPopulation(t *testing.T) {
	s := newTestSystem(1000)
	// Everything at one x: dispersion zero, far below the threshold.
	s.Emit(dmath.Vec2{X: 400, Y: 300}, 200, white, 0)

	s.Adapt()
	ev := s.Evolution()
	if ev.Generation != 1 {
		t.Fatalf("generation = %d, want 1", ev.Generation)
	}
	if ev.LastFitness != 0 {
		t.Errorf("fitness of point cluster = %v, want 0", ev.LastFitness)
	}

	perturbed := 0
	for _, p := range s.Particles() {
		if p.Vel.X != 0 || p.Vel.Y != 0 {
			perturbed++
		}
	}
	if perturbed == 0 {
		t.Error("no particle velocity perturbed")
	}
	if max := int(float64(200)*config.Particle.MutationRate) + 1; perturbed > max {
		t.Errorf("perturbed %d particles, sample bound is %d", perturbed, max)
	}
}

func TestAdaptSkipsDispersedPopulation(t *testing.T) {
	s := newTestSystem(1000)
	// Two point masses far apart: std = 1200, fitness = 1.5. Particles are
	// not clamped to the screen, so off-screen extremes are legal positions.
	for i := 0; i < 102; i++ {
		x := -800.0
		if i%2 == 0 {
			x = 1600
		}
		s.Emit(dmath.Vec2{X: x, Y: 300}, 1, white, 0)
	}

	s.Adapt()
	ev := s.Evolution()
	if ev.LastFitness < config.Particle.FitnessThreshold {
		t.Fatalf("two-point extreme fitness = %v, expected above threshold", ev.LastFitness)
	}
	if ev.Generation != 0 {
		t.Errorf("generation = %d after fit adapt, want 0", ev.Generation)
	}
	for _, p := range s.Particles() {
		if p.Vel.X != 0 || p.Vel.Y != 0 {
			t.Fatal("fit population was perturbed")
		}
	}
}

func TestClearKeepsEvolutionState(t *testing.T) {
	s := newTestSystem(1000)
	s.Emit(dmath.Vec2{X: 400, Y: 300}, 200, white, 0)
	s.Adapt()
	if s.Evolution().Generation != 1 {
		t.Fatal("setup adapt did not increment generation")
	}

	s.Clear()
	if s.Count() != 0 {
		t.Errorf("population after clear = %d, want 0", s.Count())
	}
	if s.Evolution().Generation != 1 {
		t.Error("clear reset the generation counter")
	}
}
