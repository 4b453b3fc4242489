package battle

import (
	"math/rand"
	"testing"

	"github.com/kazarin/soulbox/internal/encounter"
)

func testSpawnContext(m *Manager) *SpawnContext {
	return &SpawnContext{
		Manager:    m,
		Arena:      testArena(),
		Rng:        rand.New(rand.NewSource(1)),
		Logger:     testLogger(),
		TickRate:   60,
		BaseDamage: 5,
		SpeedScale: 1,
	}
}

func TestScriptTriggersEachEntryOnce(t *testing.T) {
	var calls []string
	RegisterWave("test-track-a", func(ctx *SpawnContext, w encounter.WaveEntry) {
		calls = append(calls, "a")
	})
	RegisterWave("test-track-b", func(ctx *SpawnContext, w encounter.WaveEntry) {
		calls = append(calls, "b")
	})

	attack := encounter.Attack{
		DurationMs: 500,
		Waves: []encounter.WaveEntry{
			{TimeMs: 0, Type: "test-track-a"},
			{TimeMs: 100, Type: "test-track-b"},
		},
	}
	r := newScriptRunner(attack)
	ctx := testSpawnContext(NewManager(8, 4, testLogger()))

	r.Tick(50, ctx)
	if len(calls) != 1 || calls[0] != "a" {
		t.Fatalf("after 50ms: calls = %v, want [a]", calls)
	}
	r.Tick(60, ctx)
	if len(calls) != 2 || calls[1] != "b" {
		t.Fatalf("after 110ms: calls = %v, want [a b]", calls)
	}

	// Further ticks must never re-fire a triggered entry
	for i := 0; i < 30; i++ {
		r.Tick(16, ctx)
	}
	if len(calls) != 2 {
		t.Errorf("entries re-fired: %v", calls)
	}
	if !r.Done() {
		t.Errorf("elapsed %vms of a 500ms attack, want done", r.ElapsedMs())
	}
}

func TestScriptSkipsUnknownWaveTypes(t *testing.T) {
	attack := encounter.Attack{
		DurationMs: 100,
		Waves: []encounter.WaveEntry{
			{TimeMs: 0, Type: "no-such-hazard"},
			{TimeMs: 0, Type: "projectiles", Count: 2},
		},
	}
	r := newScriptRunner(attack)
	m := NewManager(8, 4, testLogger())
	r.Tick(16, testSpawnContext(m))

	if got := m.ActiveCount(); got != 2 {
		t.Errorf("active = %d, want 2: known entry must survive an unknown sibling", got)
	}
}

func TestScriptNotDoneBeforeDuration(t *testing.T) {
	r := newScriptRunner(encounter.Attack{DurationMs: 1000})
	ctx := testSpawnContext(NewManager(1, 4, testLogger()))
	r.Tick(999, ctx)
	if r.Done() {
		t.Error("done before the attack duration elapsed")
	}
	r.Tick(1, ctx)
	if !r.Done() {
		t.Error("not done at the attack duration")
	}
}

func TestBuiltinWaveVocabularyRegistered(t *testing.T) {
	want := []string{
		"beam", "blue", "bones", "carousel", "circle",
		"green", "orange", "projectiles", "wave",
	}
	have := map[string]bool{}
	for _, name := range WaveTypes() {
		have[name] = true
	}
	for _, name := range want {
		if !have[name] {
			t.Errorf("built-in wave type %q not registered", name)
		}
	}
}

func TestBuiltinSpawnersProduceHazards(t *testing.T) {
	cases := []struct {
		entry encounter.WaveEntry
		min   int
	}{
		{encounter.WaveEntry{Type: "projectiles", Count: 5}, 5},
		{encounter.WaveEntry{Type: "bones", Count: 3, Orientation: "vertical"}, 3},
		{encounter.WaveEntry{Type: "blue", Count: 4}, 4},
		{encounter.WaveEntry{Type: "orange", Count: 4}, 4},
		{encounter.WaveEntry{Type: "green"}, 1},
		{encounter.WaveEntry{Type: "wave", Count: 3, Motion: "spiral"}, 3},
		{encounter.WaveEntry{Type: "beam", Side: "left"}, 1},
		{encounter.WaveEntry{Type: "circle", Count: 10}, 10},
		{encounter.WaveEntry{Type: "carousel", Count: 6}, 6},
	}

	for _, tc := range cases {
		m := NewManager(64, 4, testLogger())
		spawn, ok := waveSpawners.Lookup(tc.entry.Type)
		if !ok {
			t.Errorf("%s: not registered", tc.entry.Type)
			continue
		}
		spawn(testSpawnContext(m), tc.entry)
		if got := m.ActiveCount(); got < tc.min {
			t.Errorf("%s: spawned %d hazards, want at least %d", tc.entry.Type, got, tc.min)
		}
	}
}

func TestGreenSpawnerEmitsHealingClass(t *testing.T) {
	m := NewManager(8, 4, testLogger())
	spawn, _ := waveSpawners.Lookup("green")
	spawn(testSpawnContext(m), encounter.WaveEntry{Type: "green"})

	m.ForEachActive(func(p *Projectile) {
		if p.Class != ClassGreen {
			t.Errorf("class = %v, want green", p.Class)
		}
		if p.Damage <= 0 {
			t.Errorf("heal amount = %d, want positive", p.Damage)
		}
	})
}

func TestCarouselOrbitsAtFixedRadius(t *testing.T) {
	m := NewManager(16, 4, testLogger())
	spawn, _ := waveSpawners.Lookup("carousel")
	spawn(testSpawnContext(m), encounter.WaveEntry{Type: "carousel", Count: 4, Amplitude: 5})

	center := testArena().Center()
	for i := 0; i < 120; i++ {
		m.Update(1.0/60, testArena())
	}
	m.ForEachActive(func(p *Projectile) {
		d := p.Pos.Sub(center).Len()
		if d < 4.9 || d > 5.1 {
			t.Errorf("orbit radius = %v, want 5", d)
		}
	})
	if m.ActiveCount() != 4 {
		t.Errorf("active = %d, want 4: orbiting hazards must not be culled", m.ActiveCount())
	}
}
