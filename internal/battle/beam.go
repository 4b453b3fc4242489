package battle

import (
	"github.com/kazarin/soulbox/internal/core"
)

// BeamPhase is one stage of a beam emitter's lifecycle.
type BeamPhase int

const (
	BeamAppear BeamPhase = iota // Fades in, never damaging
	BeamCharge                  // Visual intensification, never damaging
	BeamFire                    // Live; the only phase whose collision test can hit
	BeamFadeout                 // Fades out, never damaging
	BeamDone                    // Terminal, slot is reclaimed
)

// String returns the phase name.
func (p BeamPhase) String() string {
	switch p {
	case BeamAppear:
		return "appear"
	case BeamCharge:
		return "charge"
	case BeamFire:
		return "fire"
	case BeamFadeout:
		return "fadeout"
	case BeamDone:
		return "done"
	default:
		return "unknown"
	}
}

// Beam is a multi-phase beam emitter occupying one projectile slot.
// Phase transitions are driven purely by an internal elapsed-frame counter
// reaching each phase's configured duration.
type Beam struct {
	Start core.Vec2 // Directed segment start
	End   core.Vec2 // Directed segment end
	Width float64   // Beam thickness in cells

	// Optional lifecycle callbacks.
	OnCharge func()
	OnFire   func()
	OnDone   func()

	phase     BeamPhase
	frames    int    // Elapsed frames in the current phase
	durations [4]int // Frames per phase: appear, charge, fire, fadeout
}

// NewBeam creates a beam along the given directed segment. Durations are in
// frames; non-positive durations are bumped to one frame so every phase is
// observable.
func NewBeam(start, end core.Vec2, width float64, appear, charge, fire, fadeout int) *Beam {
	b := &Beam{
		Start:     start,
		End:       end,
		Width:     width,
		durations: [4]int{appear, charge, fire, fadeout},
	}
	for i := range b.durations {
		if b.durations[i] < 1 {
			b.durations[i] = 1
		}
	}
	return b
}

// Phase returns the current lifecycle phase.
func (b *Beam) Phase() BeamPhase {
	return b.phase
}

// Done reports whether the beam has reached its terminal state.
func (b *Beam) Done() bool {
	return b.phase == BeamDone
}

// Intensity returns a 0..1 visual weight for rendering: ramping up through
// appear, full through charge and fire, ramping down through fadeout.
func (b *Beam) Intensity() float64 {
	switch b.phase {
	case BeamAppear:
		return float64(b.frames) / float64(b.durations[BeamAppear])
	case BeamCharge, BeamFire:
		return 1
	case BeamFadeout:
		return 1 - float64(b.frames)/float64(b.durations[BeamFadeout])
	default:
		return 0
	}
}

// Tick advances the lifecycle by one frame, firing entry callbacks on
// transitions into charge and fire, and the done callback on termination.
func (b *Beam) Tick() {
	if b.phase == BeamDone {
		return
	}
	b.frames++
	if b.frames < b.durations[b.phase] {
		return
	}

	b.frames = 0
	b.phase++
	switch b.phase {
	case BeamCharge:
		if b.OnCharge != nil {
			b.OnCharge()
		}
	case BeamFire:
		if b.OnFire != nil {
			b.OnFire()
		}
	case BeamDone:
		if b.OnDone != nil {
			b.OnDone()
		}
	}
}

// Hits reports whether the beam damages a circle at center with the given
// radius. Only the fire phase can hit: the center is projected onto the
// beam's directed segment with the projection parameter clamped to [0,1],
// and the distance to the nearest point compared against half the beam
// width plus the circle radius.
func (b *Beam) Hits(center core.Vec2, radius float64) bool {
	if b.phase != BeamFire {
		return false
	}
	return core.SegmentCircleOverlap(b.Start, b.End, center, b.Width/2+radius)
}
