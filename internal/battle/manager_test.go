package battle

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/kazarin/soulbox/internal/core"
)

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

func testArena() core.Rect {
	return core.NewRect(0, 0, 36, 14)
}

func soulAt(x, y float64) core.Rect {
	return core.NewRect(x-0.8, y-0.8, 1.6, 1.6)
}

func TestManagerDropsSpawnsAtCapacity(t *testing.T) {
	var buf bytes.Buffer
	m := NewManager(2, 4, log.New(&buf))

	// The first projectile is aimed far out of bounds so a later Update
	// culls it and frees its slot.
	if p := m.Spawn(SpawnSpec{Pos: core.Vec2{X: 5, Y: 5}, Vel: core.Vec2{X: -60}, Size: 1}); p == nil {
		t.Fatal("first spawn dropped with free capacity")
	}
	if p := m.Spawn(SpawnSpec{Pos: core.Vec2{X: 6, Y: 5}, Size: 1}); p == nil {
		t.Fatal("second spawn dropped with free capacity")
	}
	if p := m.Spawn(SpawnSpec{Pos: core.Vec2{X: 7, Y: 5}, Size: 1}); p != nil {
		t.Error("spawn beyond capacity returned a projectile")
	}
	if got := m.ActiveCount(); got != 2 {
		t.Errorf("active = %d, want 2", got)
	}

	// Repeated drops during one exhaustion episode warn exactly once
	m.Spawn(SpawnSpec{Pos: core.Vec2{X: 8, Y: 5}, Size: 1})
	if got := strings.Count(buf.String(), "capacity exhausted"); got != 1 {
		t.Fatalf("warnings after repeated drops = %d, want 1", got)
	}

	// Freeing a slot ends the episode and re-arms the warning
	m.Update(1.0, testArena())
	if p := m.Spawn(SpawnSpec{Pos: core.Vec2{X: 9, Y: 5}, Size: 1}); p == nil {
		t.Fatal("spawn dropped after a slot was culled free")
	}
	m.Spawn(SpawnSpec{Pos: core.Vec2{X: 10, Y: 5}, Size: 1})
	if got := strings.Count(buf.String(), "capacity exhausted"); got != 2 {
		t.Errorf("warnings after second exhaustion = %d, want 2", got)
	}
}

func TestManagerReusesFreedSlots(t *testing.T) {
	m := NewManager(1, 4, testLogger())
	p := m.Spawn(SpawnSpec{Pos: core.Vec2{X: 5, Y: 5}, Size: 1})
	if p == nil {
		t.Fatal("spawn failed")
	}
	m.DeactivateAll()
	if p := m.Spawn(SpawnSpec{Pos: core.Vec2{X: 1, Y: 1}, Size: 1}); p == nil {
		t.Error("freed slot not reusable")
	}
}

func TestManagerCullsOutsidePadding(t *testing.T) {
	m := NewManager(4, 2, testLogger())
	bounds := testArena()

	// Fast enough to cross the padding margin within a second
	m.Spawn(SpawnSpec{Pos: core.Vec2{X: 18, Y: 7}, Vel: core.Vec2{X: 60}, Size: 1, Shape: ShapeCircle})

	dt := 1.0 / 60
	for i := 0; i < 60; i++ {
		m.Update(dt, bounds)
	}
	if got := m.ActiveCount(); got != 0 {
		t.Errorf("active = %d after leaving the arena, want 0", got)
	}
}

func TestManagerKeepsProjectileInsidePadding(t *testing.T) {
	m := NewManager(4, 10, testLogger())
	bounds := testArena()

	// Just outside the box but inside the padding margin
	m.Spawn(SpawnSpec{Pos: core.Vec2{X: -3, Y: 7}, Size: 1, Shape: ShapeCircle})
	m.Update(1.0/60, bounds)
	if got := m.ActiveCount(); got != 1 {
		t.Errorf("active = %d, want 1: padding margin must not cull", got)
	}
}

func TestResolveWhiteHitDamagesAndConsumes(t *testing.T) {
	m := NewManager(4, 4, testLogger())
	m.Spawn(SpawnSpec{Pos: core.Vec2{X: 10, Y: 7}, Size: 2, Shape: ShapeCircle, Class: ClassWhite, Damage: 5})

	rep := m.Resolve(soulAt(10, 7), false, 1)
	if rep.Damage != 5 || rep.Hits != 1 {
		t.Errorf("report = %+v, want damage 5, hits 1", rep)
	}
	if m.ActiveCount() != 0 {
		t.Error("hit projectile not consumed")
	}
}

func TestResolveBlueRequiresMovement(t *testing.T) {
	m := NewManager(4, 4, testLogger())
	spec := SpawnSpec{Pos: core.Vec2{X: 10, Y: 7}, Size: 2, Shape: ShapeCircle, Class: ClassBlue, Damage: 4}

	m.Spawn(spec)
	rep := m.Resolve(soulAt(10, 7), false, 1)
	if rep.Damage != 0 {
		t.Errorf("still soul took %d blue damage", rep.Damage)
	}
	if rep.Hits != 1 || m.ActiveCount() != 0 {
		t.Error("failed predicate must still consume the projectile")
	}

	m.Spawn(spec)
	rep = m.Resolve(soulAt(10, 7), true, 1)
	if rep.Damage != 4 {
		t.Errorf("moving soul took %d blue damage, want 4", rep.Damage)
	}
}

func TestResolveOrangeRequiresStillness(t *testing.T) {
	m := NewManager(4, 4, testLogger())
	spec := SpawnSpec{Pos: core.Vec2{X: 10, Y: 7}, Size: 2, Shape: ShapeCircle, Class: ClassOrange, Damage: 4}

	m.Spawn(spec)
	if rep := m.Resolve(soulAt(10, 7), true, 1); rep.Damage != 0 {
		t.Errorf("moving soul took %d orange damage", rep.Damage)
	}
	m.Spawn(spec)
	if rep := m.Resolve(soulAt(10, 7), false, 1); rep.Damage != 4 {
		t.Errorf("still soul took %d orange damage, want 4", rep.Damage)
	}
}

func TestResolveGreenHealsInsteadOfHarming(t *testing.T) {
	m := NewManager(4, 4, testLogger())
	m.Spawn(SpawnSpec{Pos: core.Vec2{X: 10, Y: 7}, Size: 2, Shape: ShapeCircle, Class: ClassGreen, Damage: 3})

	rep := m.Resolve(soulAt(10, 7), true, 1)
	if rep.Damage != 0 || rep.Heal != 3 {
		t.Errorf("report = %+v, want damage 0, heal 3", rep)
	}
}

func TestResolveFirstHitWins(t *testing.T) {
	m := NewManager(4, 4, testLogger())
	m.Spawn(SpawnSpec{Pos: core.Vec2{X: 10, Y: 7}, Size: 2, Shape: ShapeCircle, Class: ClassWhite, Damage: 5})
	m.Spawn(SpawnSpec{Pos: core.Vec2{X: 10, Y: 7}, Size: 2, Shape: ShapeCircle, Class: ClassWhite, Damage: 9})

	rep := m.Resolve(soulAt(10, 7), false, 1)
	if rep.Damage != 5 {
		t.Errorf("damage = %d, want the first hit's 5", rep.Damage)
	}
	if rep.Hits != 2 || m.ActiveCount() != 0 {
		t.Error("both overlapping projectiles must be consumed")
	}
}

func TestGrazeAwardedOncePerLifetime(t *testing.T) {
	m := NewManager(4, 4, testLogger())
	// Close enough for the expanded test, too far for the exact test:
	// circle radius 1 at distance 2.5 from a soul of radius 0.8
	m.Spawn(SpawnSpec{Pos: core.Vec2{X: 12.5, Y: 7}, Size: 2, Shape: ShapeCircle, Class: ClassWhite, Damage: 5})

	rep := m.Resolve(soulAt(10, 7), false, 1.2)
	if rep.Grazes != 1 || rep.Hits != 0 {
		t.Fatalf("report = %+v, want one graze and no hits", rep)
	}
	rep = m.Resolve(soulAt(10, 7), false, 1.2)
	if rep.Grazes != 0 {
		t.Error("graze rewarded twice for the same projectile")
	}
	if m.ActiveCount() != 1 {
		t.Error("grazed projectile must stay live")
	}
}

func TestBeamSurvivesResolveDuringFire(t *testing.T) {
	m := NewManager(4, 4, testLogger())
	beam := NewBeam(core.Vec2{Y: 7}, core.Vec2{X: 36, Y: 7}, 2, 1, 1, 30, 1)
	m.Spawn(SpawnSpec{Pos: core.Vec2{Y: 7}, Size: 2, Damage: 6, Beam: beam})

	bounds := testArena()
	dt := 1.0 / 60
	m.Update(dt, bounds)
	m.Update(dt, bounds) // Appear and charge elapse
	if beam.Phase() != BeamFire {
		t.Fatalf("setup drift: phase = %v, want fire", beam.Phase())
	}

	for i := 0; i < 3; i++ {
		rep := m.Resolve(soulAt(10, 7), false, 1)
		if rep.Damage != 6 {
			t.Fatalf("resolve %d: damage = %d, want 6 every frame of fire", i, rep.Damage)
		}
	}
	if m.ActiveCount() != 1 {
		t.Error("beam consumed by a hit; it must persist through its fire phase")
	}
}

func TestBeamRetiresWhenLifecycleCompletes(t *testing.T) {
	m := NewManager(4, 4, testLogger())
	// Positioned far outside the cull margin: only lifecycle may retire it
	beam := NewBeam(core.Vec2{X: -50, Y: -50}, core.Vec2{X: -40, Y: -50}, 1, 1, 1, 1, 1)
	m.Spawn(SpawnSpec{Pos: core.Vec2{X: -50, Y: -50}, Size: 1, Beam: beam})

	bounds := testArena()
	for i := 0; i < 3; i++ {
		m.Update(1.0/60, bounds)
		if m.ActiveCount() != 1 {
			t.Fatalf("update %d: beam culled by position", i)
		}
	}
	m.Update(1.0/60, bounds)
	if m.ActiveCount() != 0 {
		t.Error("completed beam still occupies a slot")
	}
}
