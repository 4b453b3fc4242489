package battle

import (
	"github.com/charmbracelet/log"

	"github.com/kazarin/soulbox/internal/core"
)

// SpawnSpec describes one projectile to spawn. Zero values are valid:
// a spec with nothing set produces a stationary white rectangle.
type SpawnSpec struct {
	Pos    core.Vec2
	Vel    core.Vec2
	Size   float64
	Shape  Shape
	Class  DamageClass
	Damage int

	// Motion, when its Kind is not MotionLinear, puts the projectile on a
	// parametric path; Vel is then ignored.
	Motion MotionState

	// UpdateFunc overrides all built-in motion for scripted one-offs.
	UpdateFunc func(p *Projectile, dt float64)

	// Beam attaches a multi-phase beam lifecycle to the slot.
	Beam *Beam
}

// CollisionReport summarizes one frame's collision resolution.
type CollisionReport struct {
	Damage int // Damage from the first qualifying hit, 0 if none qualified
	Heal   int // Total healing from green projectiles
	Hits   int // Projectiles deactivated by overlapping the soul
	Grazes int // Projectiles newly grazed this frame
}

// Manager owns a fixed-capacity collection of projectile slots,
// pre-allocated at construction. It never grows: when every slot is active
// a spawn request is dropped with a non-fatal warning. The hard cap bounds
// worst-case per-frame work, unlike the elastic generic pool in core.
type Manager struct {
	slots      []Projectile
	padding    float64 // Cull margin outside the arena bounds
	logger     *log.Logger
	warnedFull bool // One warning per exhaustion episode
}

// NewManager creates a manager with the given slot capacity and cull
// padding. A nil logger falls back to the package default.
func NewManager(capacity int, padding float64, logger *log.Logger) *Manager {
	if capacity < 1 {
		capacity = 1
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Manager{
		slots:   make([]Projectile, capacity),
		padding: padding,
		logger:  logger,
	}
}

// Capacity returns the fixed slot count.
func (m *Manager) Capacity() int {
	return len(m.slots)
}

// ActiveCount returns the number of live projectiles.
func (m *Manager) ActiveCount() int {
	n := 0
	for i := range m.slots {
		if m.slots[i].active {
			n++
		}
	}
	return n
}

// Spawn initializes the first inactive slot from the spec and returns it.
// When no slot is free the request is dropped and nil returned; callers
// performing secondary effects must tolerate a nil result.
func (m *Manager) Spawn(spec SpawnSpec) *Projectile {
	for i := range m.slots {
		p := &m.slots[i]
		if p.active {
			continue
		}

		*p = Projectile{
			Pos:        spec.Pos,
			Vel:        spec.Vel,
			Size:       spec.Size,
			Shape:      spec.Shape,
			Class:      spec.Class,
			Damage:     spec.Damage,
			Motion:     spec.Motion,
			UpdateFunc: spec.UpdateFunc,
			Beam:       spec.Beam,
			active:     true,
		}
		return p
	}

	if !m.warnedFull {
		m.logger.Warn("projectile capacity exhausted, dropping spawn",
			"capacity", len(m.slots))
		m.warnedFull = true
	}
	return nil
}

// Update advances every active slot and culls slots whose geometry has left
// the arena bounds expanded by the padding margin. Beams are not culled by
// position; they retire when their lifecycle completes.
func (m *Manager) Update(dt float64, bounds core.Rect) {
	cull := bounds.Expand(m.padding)
	for i := range m.slots {
		p := &m.slots[i]
		if !p.active {
			continue
		}

		p.advance(dt)

		if p.Beam != nil {
			if p.Beam.Done() {
				m.free(p)
			}
			continue
		}
		if !p.Rect().Intersects(cull) {
			m.free(p)
		}
	}
}

// Resolve runs the collision and graze queries against the soul for one
// frame. Every exact hit deactivates its projectile; only the first hit
// whose class predicate holds contributes damage. Healing accumulates from
// every green hit. Grazes are counted once per projectile lifetime.
func (m *Manager) Resolve(soul core.Rect, moving bool, grazeMargin float64) CollisionReport {
	var rep CollisionReport
	for i := range m.slots {
		p := &m.slots[i]
		if !p.active {
			continue
		}

		if p.Hits(soul) {
			rep.Hits++
			switch p.Class {
			case ClassGreen:
				if p.Damage < 0 {
					rep.Heal += -p.Damage
				} else {
					rep.Heal += p.Damage
				}
			case ClassBlue:
				if moving && rep.Damage == 0 {
					rep.Damage = p.Damage
				}
			case ClassOrange:
				if !moving && rep.Damage == 0 {
					rep.Damage = p.Damage
				}
			default:
				if rep.Damage == 0 {
					rep.Damage = p.Damage
				}
			}
			// One-shot resolution: even a failed predicate consumes the
			// projectile after one overlap. Beams stay live for their
			// whole fire phase.
			if p.Beam == nil {
				m.free(p)
			}
			continue
		}

		if !p.grazed && p.Grazes(soul, grazeMargin) {
			p.grazed = true
			rep.Grazes++
		}
	}
	return rep
}

// ForEachActive calls fn for every live projectile, in slot order.
// Used by the render pass.
func (m *Manager) ForEachActive(fn func(p *Projectile)) {
	for i := range m.slots {
		if m.slots[i].active {
			fn(&m.slots[i])
		}
	}
}

// DeactivateAll clears every slot, returning the manager to its idle state.
func (m *Manager) DeactivateAll() {
	for i := range m.slots {
		if m.slots[i].active {
			m.slots[i].deactivate()
		}
	}
	m.warnedFull = false
}

// free returns a slot to the inactive set and re-arms the exhaustion
// warning now that capacity is available again.
func (m *Manager) free(p *Projectile) {
	p.deactivate()
	m.warnedFull = false
}
