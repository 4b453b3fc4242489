package battle

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/kazarin/soulbox/internal/core"
	"github.com/kazarin/soulbox/internal/encounter"
	"github.com/kazarin/soulbox/internal/registry"
)

// SpawnContext carries everything a wave spawner needs: the projectile
// manager to spawn into, the arena geometry, the soul for aimed hazards,
// a seeded RNG for deterministic spread, and tuning scales.
type SpawnContext struct {
	Manager    *Manager
	Arena      core.Rect
	Soul       *Soul
	Rng        *rand.Rand
	Logger     *log.Logger
	TickRate   int
	BaseDamage int     // Default projectile damage (the opponent's attack stat)
	SpeedScale float64 // Difficulty multiplier applied to wave speeds
}

// Frames converts a millisecond duration to simulation frames at the
// context's tick rate, never returning less than one frame.
func (ctx *SpawnContext) Frames(ms int) int {
	rate := ctx.TickRate
	if rate <= 0 {
		rate = 60
	}
	frames := ms * rate / 1000
	if frames < 1 {
		frames = 1
	}
	return frames
}

// SpawnFunc interprets one wave entry, spawning its hazards into the
// manager. Implementations must tolerate dropped spawns (nil results).
type SpawnFunc func(ctx *SpawnContext, w encounter.WaveEntry)

var waveSpawners = registry.New[SpawnFunc]()

// RegisterWave adds a wave type to the script vocabulary.
// Built-in types register in init; tests and future opponents can extend.
func RegisterWave(name string, fn SpawnFunc) {
	waveSpawners.Register(name, fn)
}

// WaveTypes returns the registered wave type tags, sorted.
func WaveTypes() []string {
	return waveSpawners.Names()
}

// scriptRunner evaluates one attack script against elapsed attack-phase
// time, triggering each entry's spawn logic exactly once when it comes due.
type scriptRunner struct {
	attack  encounter.Attack
	elapsed float64 // Milliseconds since attack start
	fired   []bool
}

func newScriptRunner(attack encounter.Attack) *scriptRunner {
	return &scriptRunner{
		attack: attack,
		fired:  make([]bool, len(attack.Waves)),
	}
}

// Tick advances the script clock and triggers due entries. Re-checking an
// already-triggered entry is a no-op, so pausing and resuming the frame
// loop cannot double-spawn.
func (r *scriptRunner) Tick(dtMs float64, ctx *SpawnContext) {
	r.elapsed += dtMs
	for i := range r.attack.Waves {
		w := &r.attack.Waves[i]
		if r.fired[i] || float64(w.TimeMs) > r.elapsed {
			continue
		}
		r.fired[i] = true

		spawn, ok := waveSpawners.Lookup(w.Type)
		if !ok {
			ctx.Logger.Warn("unknown wave type, skipping", "type", w.Type)
			continue
		}
		spawn(ctx, *w)
	}
}

// Done reports whether the attack phase has run its full duration.
func (r *scriptRunner) Done() bool {
	return r.elapsed >= float64(r.attack.DurationMs)
}

// ElapsedMs returns the script clock in milliseconds.
func (r *scriptRunner) ElapsedMs() float64 {
	return r.elapsed
}
