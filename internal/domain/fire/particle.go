// Package fire simulates the fixed pool of flame particles.
package fire

import "math"

// Warm spawn palette and the tints applied as a particle cools.
var (
	Palette  = []uint32{0xffd27f, 0xff9a3c, 0xff5a1f}
	CoolTint = uint32(0xb33a12)
	AshTint  = uint32(0x4a2b22)
)

// Cooling thresholds on the remaining-life fraction.
const (
	CoolThreshold = 0.5
	AshThreshold  = 0.25
)

// Config tunes the emitter. Speeds are in pixels per second.
type Config struct {
	Size       int
	Stagger    float64 // seconds between consecutive first spawns
	JitterX    float64
	JitterY    float64
	SpeedMin   float64
	SpeedMax   float64
	DriftMax   float64 // max horizontal speed at spawn
	LifeMin    float64
	LifeMax    float64
	ScaleMin   float64
	ScaleMax   float64
	Turbulence float64 // max horizontal acceleration per second
	Drag       float64 // fraction of vertical speed kept after one second
}

// DefaultConfig returns the tuning used by the fire task.
func DefaultConfig() Config {
	return Config{
		Size:       10,
		Stagger:    0.12,
		JitterX:    12,
		JitterY:    4,
		SpeedMin:   90,
		SpeedMax:   160,
		DriftMax:   20,
		LifeMin:    0.8,
		LifeMax:    1.4,
		ScaleMin:   0.7,
		ScaleMax:   1.3,
		Turbulence: 120,
		Drag:       0.35,
	}
}

// Particle is one pooled flame element.
//
// Life is negative while the particle waits for its first spawn and counts
// up to zero. Once active it counts down from MaxLife and the particle is
// respawned in place as soon as it reaches zero.
type Particle struct {
	X, Y      float64
	VX, VY    float64
	Life      float64
	MaxLife   float64
	PeakScale float64

	Scale float64
	Alpha float64
	Tint  uint32

	Active bool
	// Spawns counts how many times the particle has been (re)spawned.
	Spawns int

	baseTint uint32
}

// LifeFraction returns the remaining life as a fraction of MaxLife.
func (p *Particle) LifeFraction() float64 {
	if !p.Active || p.MaxLife <= 0 {
		return 0
	}
	return math.Max(0, p.Life/p.MaxLife)
}

// Float64er is the subset of *rand.Rand the pool needs.
type Float64er interface {
	Float64() float64
}

// Pool is a fixed-size set of particles around an emitter at (OriginX, OriginY).
type Pool struct {
	OriginX, OriginY float64

	cfg       Config
	rng       Float64er
	particles []Particle
}

// NewPool creates the pool with every particle dormant and staggered.
func NewPool(cfg Config, rng Float64er) *Pool {
	p := &Pool{
		cfg:       cfg,
		rng:       rng,
		particles: make([]Particle, cfg.Size),
	}
	for i := range p.particles {
		p.particles[i].Life = -float64(i) * cfg.Stagger
		p.particles[i].Alpha = 0
	}
	return p
}

// Len returns the pool size.
func (p *Pool) Len() int {
	return len(p.particles)
}

// At returns the particle at index i.
func (p *Pool) At(i int) *Particle {
	return &p.particles[i]
}

// Update advances every particle by dt seconds.
func (p *Pool) Update(dt float64) {
	for i := range p.particles {
		part := &p.particles[i]
		if !part.Active {
			part.Life += dt
			if part.Life >= 0 {
				p.spawn(part)
			}
			continue
		}

		part.Life -= dt
		if part.Life <= 0 {
			p.spawn(part)
			continue
		}
		p.integrate(part, dt)
	}
}

func (p *Pool) integrate(part *Particle, dt float64) {
	part.X += part.VX * dt
	part.Y += part.VY * dt

	part.VX += p.between(-1, 1) * p.cfg.Turbulence * dt
	part.VY *= math.Pow(p.cfg.Drag, dt)

	p.style(part)
}

func (p *Pool) spawn(part *Particle) {
	part.Active = true
	part.Spawns++

	part.X = p.OriginX + p.between(-p.cfg.JitterX, p.cfg.JitterX)
	part.Y = p.OriginY + p.between(-p.cfg.JitterY, p.cfg.JitterY)
	part.VX = p.between(-p.cfg.DriftMax, p.cfg.DriftMax)
	part.VY = -p.between(p.cfg.SpeedMin, p.cfg.SpeedMax)

	part.MaxLife = p.between(p.cfg.LifeMin, p.cfg.LifeMax)
	part.Life = part.MaxLife
	part.PeakScale = p.between(p.cfg.ScaleMin, p.cfg.ScaleMax)
	part.baseTint = Palette[int(p.rng.Float64()*float64(len(Palette)))%len(Palette)]

	p.style(part)
}

// style derives the visual attributes from the life fraction.
func (p *Pool) style(part *Particle) {
	f := part.LifeFraction()
	part.Scale = math.Sin(math.Pi*(1-f)) * part.PeakScale
	part.Alpha = f

	switch {
	case f < AshThreshold:
		part.Tint = AshTint
	case f < CoolThreshold:
		part.Tint = CoolTint
	default:
		part.Tint = part.baseTint
	}
}

func (p *Pool) between(lo, hi float64) float64 {
	return lo + p.rng.Float64()*(hi-lo)
}
