// Package battle implements the deterministic combat simulation: the
// player's soul dodging scripted hazard waves inside the battle box, and
// the surrounding turn structure of menus, mercy, and resolution. The
// package is platform-free; a frontend feeds it input intents and calls
// Tick at a fixed rate.
package battle

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/kazarin/soulbox/internal/config"
	"github.com/kazarin/soulbox/internal/core"
	"github.com/kazarin/soulbox/internal/encounter"
)

// Phase is the battle's top-level state.
type Phase int

const (
	PhaseIdle      Phase = iota // Created but not started
	PhaseMenu                   // Player choosing a menu action
	PhaseDefending              // Attack script running, soul dodging
	PhaseResolved               // Battle over, outcome set
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseMenu:
		return "menu"
	case PhaseDefending:
		return "defending"
	case PhaseResolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// Outcome is the terminal result of a resolved battle.
type Outcome int

const (
	OutcomeNone    Outcome = iota
	OutcomeVictory         // Opponent defeated or spared
	OutcomeDefeat          // Player HP reached zero
	OutcomeFlee            // Player ran away
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeVictory:
		return "victory"
	case OutcomeDefeat:
		return "defeat"
	case OutcomeFlee:
		return "flee"
	default:
		return "none"
	}
}

// MenuAction is one of the player's turn choices.
type MenuAction int

const (
	MenuFight MenuAction = iota
	MenuAct
	MenuItem
	MenuSpare
	MenuFlee
)

// Recorder persists finished battle results. The battle calls it exactly
// once per resolution; persistence failures are logged, never fatal.
type Recorder interface {
	RecordResult(opponentID string, outcome string, elapsedMs int64, damageTaken int) error
}

// Item is one inventory slot.
type Item struct {
	Name string
	Heal int
	Text string
	Used bool
}

// Options configures a battle session.
type Options struct {
	Runtime  core.RuntimeConfig // Tick rate and RNG seed; zero fields take defaults
	Logger   *log.Logger        // Nil falls back to the package default
	Recorder Recorder           // Nil disables persistence
}

// Battle is one combat session against a single opponent. All methods must
// be called from the frame loop goroutine; the battle does no locking.
type Battle struct {
	cfg      config.BattleConfig
	enc      encounter.Encounter
	rng      *rand.Rand
	logger   *log.Logger
	recorder Recorder
	runtime  core.RuntimeConfig

	arena   core.Rect
	soul    *Soul
	manager *Manager
	intents core.Intents
	timers  timerQueue
	runner  *scriptRunner
	spawn   *SpawnContext

	phase     Phase
	outcome   Outcome
	spared    bool
	turn      int
	waveQueue bool // Menu action taken, attack phase pending on a timer

	hp          int
	tp          int
	mercy       int
	opponentHP  int
	iframes     int
	message     string
	items       []Item
	elapsed     int64 // Frames since Start
	damageTaken int
	recorded    bool
}

// NewBattle creates an unstarted battle session.
func NewBattle(cfg config.BattleConfig, enc encounter.Encounter, opts Options) *Battle {
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = 60
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	arena := core.NewRect(0, 0, cfg.Box.Width, cfg.Box.Height)
	items := make([]Item, len(cfg.Items))
	for i, it := range cfg.Items {
		items[i] = Item{Name: it.Name, Heal: it.Heal, Text: it.Text}
	}

	b := &Battle{
		cfg:        cfg,
		enc:        enc,
		rng:        rand.New(rand.NewSource(opts.Runtime.Seed)),
		logger:     opts.Logger,
		recorder:   opts.Recorder,
		runtime:    opts.Runtime,
		arena:      arena,
		soul:       NewSoul(cfg.Soul, arena),
		manager:    NewManager(cfg.Combat.ProjectileCap, cfg.Box.Padding, opts.Logger),
		hp:         cfg.Combat.MaxHP,
		opponentHP: enc.HP,
		items:      items,
	}
	b.intents.Clear()
	b.spawn = &SpawnContext{
		Manager:    b.manager,
		Arena:      arena,
		Soul:       b.soul,
		Rng:        b.rng,
		Logger:     opts.Logger,
		TickRate:   opts.Runtime.TickRate,
		BaseDamage: enc.Attack,
		SpeedScale: cfg.Combat.SpeedScale,
	}
	return b
}

// Start opens the battle at the first menu turn.
func (b *Battle) Start() {
	if b.phase != PhaseIdle {
		return
	}
	b.phase = PhaseMenu
	b.message = b.enc.Opener
	if b.message == "" {
		b.message = fmt.Sprintf("%s blocks the way!", b.enc.Name)
	}
	b.logger.Info("battle started", "opponent", b.enc.ID, "seed_hp", b.opponentHP)
}

// Press records an input action going down.
func (b *Battle) Press(a core.Action) {
	b.intents.Press(a)
}

// Release records an input action going up.
func (b *Battle) Release(a core.Action) {
	b.intents.Release(a)
}

// Select applies a menu action. arg indexes the act or item list for
// MenuAct and MenuItem and is ignored otherwise. Calls outside the menu
// phase, or while an attack phase is already queued, are ignored.
func (b *Battle) Select(action MenuAction, arg int) {
	if b.phase != PhaseMenu || b.waveQueue {
		return
	}

	switch action {
	case MenuFight:
		b.doFight()
	case MenuAct:
		b.doAct(arg)
	case MenuItem:
		b.doItem(arg)
	case MenuSpare:
		b.doSpare()
	case MenuFlee:
		b.message = "Escaped..."
		b.resolve(OutcomeFlee)
	}
}

func (b *Battle) doFight() {
	dmg := b.cfg.Combat.AttackPower - b.enc.Defense + b.rng.Intn(3)
	if dmg < 1 {
		dmg = 1
	}
	b.opponentHP -= dmg
	if b.opponentHP <= 0 {
		b.opponentHP = 0
		b.message = fmt.Sprintf("You dealt %d damage. %s is defeated!", dmg, b.enc.Name)
		b.scheduleResolve(OutcomeVictory)
		return
	}
	b.message = fmt.Sprintf("You dealt %d damage.", dmg)
	b.queueWave()
}

func (b *Battle) doAct(arg int) {
	if arg < 0 || arg >= len(b.enc.Acts) {
		b.queueWave()
		return
	}
	act := b.enc.Acts[arg]
	if act.Effect == "check" && b.enc.CheckText != "" {
		b.message = b.enc.CheckText
	} else {
		b.message = act.Text
	}
	if act.MercyIncrease > 0 {
		b.mercy += act.MercyIncrease
		if b.mercy > 100 {
			b.mercy = 100
		}
		if b.Spareable() {
			b.message += " " + b.enc.Name + " can be spared!"
		}
	}
	b.queueWave()
}

func (b *Battle) doItem(arg int) {
	if arg < 0 || arg >= len(b.items) || b.items[arg].Used {
		b.queueWave()
		return
	}
	it := &b.items[arg]
	it.Used = true
	b.hp += it.Heal
	if b.hp > b.cfg.Combat.MaxHP {
		b.hp = b.cfg.Combat.MaxHP
	}
	if it.Text != "" {
		b.message = fmt.Sprintf("%s Recovered %d HP.", it.Text, it.Heal)
	} else {
		b.message = fmt.Sprintf("You ate the %s. Recovered %d HP.", it.Name, it.Heal)
	}
	b.queueWave()
}

func (b *Battle) doSpare() {
	if b.Spareable() {
		b.spared = true
		b.message = fmt.Sprintf("You spared %s.", b.enc.Name)
		b.scheduleResolve(OutcomeVictory)
		return
	}
	b.message = fmt.Sprintf("%s's name isn't yellow yet...", b.enc.Name)
	b.queueWave()
}

// queueWave schedules the next attack phase after the menu message delay.
func (b *Battle) queueWave() {
	b.waveQueue = true
	b.timers.After(b.spawn.Frames(b.cfg.Combat.MenuDelayMs), b.beginDefending)
}

// scheduleResolve lets the final message linger before resolving.
func (b *Battle) scheduleResolve(o Outcome) {
	b.waveQueue = true
	b.timers.After(b.spawn.Frames(b.cfg.Combat.MenuDelayMs), func() {
		b.resolve(o)
	})
}

// beginDefending starts the attack phase for the current turn.
func (b *Battle) beginDefending() {
	b.waveQueue = false
	attack, ok := b.enc.AttackForTurn(b.turn)
	if !ok {
		// An opponent with no attacks never fights back
		b.endWave()
		return
	}

	b.soul.Reset(b.arena)
	b.soul.SetMode(SoulModeFromString(attack.SoulMode))
	b.manager.DeactivateAll()
	b.runner = newScriptRunner(attack)
	b.phase = PhaseDefending
	b.logger.Debug("attack phase", "turn", b.turn, "attack", attack.Name,
		"soul_mode", attack.SoulMode, "duration_ms", attack.DurationMs)
}

// endWave returns to the menu after an attack phase completes.
func (b *Battle) endWave() {
	b.manager.DeactivateAll()
	b.runner = nil
	b.soul.Reset(b.arena)
	b.turn++
	b.phase = PhaseMenu
	b.message = b.enc.DialogueForTurn(b.turn)
}

// Tick advances the battle by one simulation frame.
func (b *Battle) Tick() {
	if b.phase == PhaseIdle || b.phase == PhaseResolved {
		return
	}
	b.elapsed++
	b.timers.Tick()
	if b.phase != PhaseDefending {
		return
	}

	dt := b.runtime.Dt()
	b.soul.Update(&b.intents, dt)
	b.runner.Tick(1000*dt, b.spawn)
	b.manager.Update(dt, b.arena)

	rep := b.manager.Resolve(b.soul.Rect(), b.soul.Moving(), b.cfg.Combat.GrazeMargin)

	if b.iframes > 0 {
		b.iframes--
	}
	if rep.Damage > 0 && b.iframes == 0 {
		dmg := b.scaleDamage(rep.Damage)
		b.hp -= dmg
		b.damageTaken += dmg
		b.iframes = b.cfg.Combat.IFrames
		if b.hp <= 0 {
			// Defeat resolves on the same frame, overriding anything the
			// timer queue still holds
			b.hp = 0
			b.message = "You cannot give up just yet..."
			b.resolve(OutcomeDefeat)
			return
		}
	}
	if rep.Heal > 0 {
		b.hp += rep.Heal
		if b.hp > b.cfg.Combat.MaxHP {
			b.hp = b.cfg.Combat.MaxHP
		}
	}
	if rep.Grazes > 0 {
		b.tp += rep.Grazes * b.cfg.Combat.GrazeTP
		if b.tp > 100 {
			b.tp = 100
		}
	}

	if b.runner.Done() {
		b.endWave()
	}
}

// scaleDamage applies the difficulty multiplier, never rounding a real hit
// down to nothing.
func (b *Battle) scaleDamage(base int) int {
	scale := b.cfg.Combat.DamageScale
	if scale <= 0 {
		scale = 1
	}
	dmg := int(float64(base) * scale)
	if dmg < 1 {
		dmg = 1
	}
	return dmg
}

// resolve terminates the battle. All pending timers are orphaned so nothing
// scheduled by the dying session can fire afterwards.
func (b *Battle) resolve(o Outcome) {
	if b.phase == PhaseResolved {
		return
	}
	b.phase = PhaseResolved
	b.outcome = o
	b.waveQueue = false
	b.timers.Invalidate()
	b.manager.DeactivateAll()
	b.intents.Clear()
	b.logger.Info("battle resolved", "opponent", b.enc.ID, "outcome", o.String(),
		"turns", b.turn, "damage_taken", b.damageTaken)

	if b.recorder != nil && !b.recorded {
		b.recorded = true
		if err := b.recorder.RecordResult(b.enc.ID, o.String(), b.ElapsedMs(), b.damageTaken); err != nil {
			b.logger.Error("failed to record battle result", "err", err)
		}
	}
}

// Phase returns the current top-level state.
func (b *Battle) Phase() Phase { return b.phase }

// Outcome returns the terminal result, OutcomeNone until resolved.
func (b *Battle) Outcome() Outcome { return b.outcome }

// Spared reports whether a victory was peaceful.
func (b *Battle) Spared() bool { return b.spared }

// HP returns the player's current hit points.
func (b *Battle) HP() int { return b.hp }

// MaxHP returns the player's hit point cap.
func (b *Battle) MaxHP() int { return b.cfg.Combat.MaxHP }

// TP returns the graze-charged tension points, 0 to 100.
func (b *Battle) TP() int { return b.tp }

// Mercy returns the opponent's mercy gauge.
func (b *Battle) Mercy() int { return b.mercy }

// Spareable reports whether the mercy gauge has reached the opponent's
// spare threshold.
func (b *Battle) Spareable() bool { return b.mercy >= b.enc.MercyRequired() }

// OpponentHP returns the opponent's remaining hit points.
func (b *Battle) OpponentHP() int { return b.opponentHP }

// Turn returns the zero-based menu turn counter.
func (b *Battle) Turn() int { return b.turn }

// Message returns the current dialogue or flavor line.
func (b *Battle) Message() string { return b.message }

// Items returns the inventory. The returned slice is live; callers must
// not mutate it.
func (b *Battle) Items() []Item { return b.items }

// Soul returns the player avatar.
func (b *Battle) Soul() *Soul { return b.soul }

// Projectiles returns the projectile manager, for the render pass.
func (b *Battle) Projectiles() *Manager { return b.manager }

// Arena returns the battle box geometry.
func (b *Battle) Arena() core.Rect { return b.arena }

// Encounter returns the opponent record.
func (b *Battle) Encounter() encounter.Encounter { return b.enc }

// Invulnerable reports whether hit invulnerability frames are active.
func (b *Battle) Invulnerable() bool { return b.iframes > 0 }

// DamageTaken returns the total damage the player has taken this battle.
func (b *Battle) DamageTaken() int { return b.damageTaken }

// ElapsedMs returns wall-clock-equivalent session time in milliseconds,
// derived from the frame counter.
func (b *Battle) ElapsedMs() int64 {
	return b.elapsed * 1000 / int64(b.runtime.TickRate)
}
