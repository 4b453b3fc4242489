package battle

import (
	"testing"

	"github.com/kazarin/soulbox/internal/core"
)

func tickN(b *Beam, n int) {
	for i := 0; i < n; i++ {
		b.Tick()
	}
}

func TestBeamPhaseProgression(t *testing.T) {
	b := NewBeam(core.Vec2{}, core.Vec2{X: 10}, 2, 2, 3, 4, 2)

	if b.Phase() != BeamAppear {
		t.Fatalf("initial phase = %v, want appear", b.Phase())
	}
	tickN(b, 2)
	if b.Phase() != BeamCharge {
		t.Fatalf("after appear: phase = %v, want charge", b.Phase())
	}
	tickN(b, 3)
	if b.Phase() != BeamFire {
		t.Fatalf("after charge: phase = %v, want fire", b.Phase())
	}
	tickN(b, 4)
	if b.Phase() != BeamFadeout {
		t.Fatalf("after fire: phase = %v, want fadeout", b.Phase())
	}
	tickN(b, 2)
	if !b.Done() {
		t.Fatalf("after fadeout: phase = %v, want done", b.Phase())
	}

	// Terminal state is absorbing
	tickN(b, 5)
	if b.Phase() != BeamDone {
		t.Errorf("done beam advanced to %v", b.Phase())
	}
}

func TestBeamZeroDurationsBumpedToOneFrame(t *testing.T) {
	b := NewBeam(core.Vec2{}, core.Vec2{X: 5}, 1, 0, 0, 0, 0)
	phases := []BeamPhase{BeamCharge, BeamFire, BeamFadeout, BeamDone}
	for _, want := range phases {
		b.Tick()
		if b.Phase() != want {
			t.Fatalf("phase = %v, want %v", b.Phase(), want)
		}
	}
}

func TestBeamCallbacksFireOnce(t *testing.T) {
	var charges, fires, dones int
	b := NewBeam(core.Vec2{}, core.Vec2{X: 5}, 1, 1, 1, 1, 1)
	b.OnCharge = func() { charges++ }
	b.OnFire = func() { fires++ }
	b.OnDone = func() { dones++ }

	tickN(b, 10)
	if charges != 1 || fires != 1 || dones != 1 {
		t.Errorf("callbacks fired charge=%d fire=%d done=%d, want 1 each", charges, fires, dones)
	}
}

func TestBeamHitsOnlyDuringFire(t *testing.T) {
	b := NewBeam(core.Vec2{Y: 5}, core.Vec2{X: 20, Y: 5}, 2, 2, 2, 2, 2)
	center := core.Vec2{X: 10, Y: 5} // Dead on the segment

	for i := 0; i < 4; i++ {
		if b.Hits(center, 1) {
			t.Fatalf("tick %d (%v): hit outside fire phase", i, b.Phase())
		}
		b.Tick()
	}
	if b.Phase() != BeamFire {
		t.Fatalf("setup drift: phase = %v, want fire", b.Phase())
	}
	if !b.Hits(center, 1) {
		t.Error("no hit during fire phase for a point on the segment")
	}
	if b.Hits(core.Vec2{X: 10, Y: 15}, 1) {
		t.Error("hit reported far outside the beam width")
	}

	tickN(b, 2)
	if b.Hits(center, 1) {
		t.Errorf("hit during %v phase", b.Phase())
	}
}

func TestBeamHitUsesClampedSegment(t *testing.T) {
	b := NewBeam(core.Vec2{}, core.Vec2{X: 10}, 2, 1, 1, 5, 1)
	tickN(b, 2) // Into fire

	// Beyond the far endpoint: distance measured to the endpoint itself
	if b.Hits(core.Vec2{X: 14}, 1) {
		t.Error("hit beyond the segment end")
	}
	if !b.Hits(core.Vec2{X: 11.5}, 1) {
		t.Error("near miss past the endpoint should still hit within width+radius")
	}
}
