package battle

import (
	"math"

	"github.com/kazarin/soulbox/internal/core"
	"github.com/kazarin/soulbox/internal/encounter"
)

// Built-in wave type vocabulary. Every parameter falls back to a documented
// default so a partial entry is never fatal:
//
//	projectiles  white circle burst from a side   (count 6, speed 8, size 1)
//	bones        white rect sweep, oriented       (count 3, speed 10, size 2)
//	blue         movement-gated burst, blue       (count 4, speed 8, size 1.5)
//	orange       movement-gated burst, orange     (count 4, speed 8, size 1.5)
//	green        healing drop from the top        (heal 3, speed 5, size 1)
//	wave         parametric-motion family         (motion sine, amplitude 3, frequency 4)
//	beam         multi-phase beam through the soul (width 3, appear/charge/fire/fade 400/600/500/300ms)
//	circle       expanding ring from box center   (count 12, start_radius 2)
//	carousel     orbiting ring around box center  (count 8, speed 4 rad/s)
func init() {
	RegisterWave("projectiles", spawnBurst)
	RegisterWave("bones", spawnBones)
	RegisterWave("blue", gatedBurst(ClassBlue))
	RegisterWave("orange", gatedBurst(ClassOrange))
	RegisterWave("green", spawnHealing)
	RegisterWave("wave", spawnParametric)
	RegisterWave("beam", spawnBeam)
	RegisterWave("circle", spawnRing)
	RegisterWave("carousel", spawnCarousel)
}

func waveCount(w encounter.WaveEntry, def int) int {
	if w.Count <= 0 {
		return def
	}
	return w.Count
}

func waveSpeed(w encounter.WaveEntry, ctx *SpawnContext, def float64) float64 {
	s := w.Speed
	if s <= 0 {
		s = def
	}
	scale := ctx.SpeedScale
	if scale <= 0 {
		scale = 1
	}
	return s * scale
}

func waveSize(w encounter.WaveEntry, def float64) float64 {
	if w.Size <= 0 {
		return def
	}
	return w.Size
}

func waveDamage(w encounter.WaveEntry, ctx *SpawnContext) int {
	if w.Damage > 0 {
		return w.Damage
	}
	if ctx.BaseDamage > 0 {
		return ctx.BaseDamage
	}
	return 1
}

// waveSides expands the side tag into concrete sides; "all" cycles through
// all four, the empty tag defaults to top.
func waveSides(side string) []string {
	switch side {
	case "all":
		return []string{"top", "right", "bottom", "left"}
	case "":
		return []string{"top"}
	default:
		return []string{side}
	}
}

// edgePoint returns a spawn position just outside the given arena side at
// fraction frac along it, plus the inward travel direction.
func edgePoint(arena core.Rect, side string, frac float64) (core.Vec2, core.Vec2) {
	switch side {
	case "bottom":
		return core.Vec2{X: arena.X + frac*arena.W, Y: arena.Bottom() + 1}, core.Vec2{Y: -1}
	case "left":
		return core.Vec2{X: arena.X - 1, Y: arena.Y + frac*arena.H}, core.Vec2{X: 1}
	case "right":
		return core.Vec2{X: arena.Right() + 1, Y: arena.Y + frac*arena.H}, core.Vec2{X: -1}
	default: // top
		return core.Vec2{X: arena.X + frac*arena.W, Y: arena.Y - 1}, core.Vec2{Y: 1}
	}
}

// spawnBurst fires a fan of plain white circles from a side.
func spawnBurst(ctx *SpawnContext, w encounter.WaveEntry) {
	count := waveCount(w, 6)
	speed := waveSpeed(w, ctx, 8)
	sides := waveSides(w.Side)

	for i := 0; i < count; i++ {
		side := sides[i%len(sides)]
		frac := (float64(i) + 0.5) / float64(count)
		frac = core.ClampF(frac+ctx.Rng.Float64()*0.2-0.1, 0.02, 0.98)
		pos, dir := edgePoint(ctx.Arena, side, frac)

		ctx.Manager.Spawn(SpawnSpec{
			Pos:    pos,
			Vel:    dir.Scale(speed * (0.9 + ctx.Rng.Float64()*0.2)),
			Size:   waveSize(w, 1),
			Shape:  ShapeCircle,
			Class:  ClassWhite,
			Damage: waveDamage(w, ctx),
		})
	}
}

// spawnBones sweeps white rectangles across the box. Horizontal bones
// travel horizontally at spread-out heights, vertical bones travel
// vertically at spread-out columns.
func spawnBones(ctx *SpawnContext, w encounter.WaveEntry) {
	count := waveCount(w, 3)
	speed := waveSpeed(w, ctx, 10)

	for i := 0; i < count; i++ {
		frac := ctx.Rng.Float64()*0.9 + 0.05
		var side string
		if w.Orientation == "vertical" {
			side = "top"
			if i%2 == 1 {
				side = "bottom"
			}
		} else {
			side = "left"
			if i%2 == 1 {
				side = "right"
			}
		}
		pos, dir := edgePoint(ctx.Arena, side, frac)

		ctx.Manager.Spawn(SpawnSpec{
			Pos:    pos,
			Vel:    dir.Scale(speed),
			Size:   waveSize(w, 2),
			Shape:  ShapeRect,
			Class:  ClassWhite,
			Damage: waveDamage(w, ctx),
		})
	}
}

// gatedBurst builds a spawner for movement-gated bursts of the given class.
func gatedBurst(class DamageClass) SpawnFunc {
	return func(ctx *SpawnContext, w encounter.WaveEntry) {
		count := waveCount(w, 4)
		speed := waveSpeed(w, ctx, 8)
		sides := waveSides(w.Side)

		for i := 0; i < count; i++ {
			side := sides[i%len(sides)]
			frac := (float64(i) + 0.5) / float64(count)
			pos, dir := edgePoint(ctx.Arena, side, frac)

			ctx.Manager.Spawn(SpawnSpec{
				Pos:    pos,
				Vel:    dir.Scale(speed),
				Size:   waveSize(w, 1.5),
				Shape:  ShapeRect,
				Class:  class,
				Damage: waveDamage(w, ctx),
			})
		}
	}
}

// spawnHealing drops a single green projectile from the top of the box.
// Its damage value is the healing amount.
func spawnHealing(ctx *SpawnContext, w encounter.WaveEntry) {
	heal := w.Damage
	if heal <= 0 {
		heal = 3
	}
	pos, dir := edgePoint(ctx.Arena, "top", ctx.Rng.Float64()*0.8+0.1)

	ctx.Manager.Spawn(SpawnSpec{
		Pos:    pos,
		Vel:    dir.Scale(waveSpeed(w, ctx, 5)),
		Size:   waveSize(w, 1),
		Shape:  ShapeCircle,
		Class:  ClassGreen,
		Damage: heal,
	})
}

// spawnParametric launches projectiles on a parametric path from a side,
// phase-staggered so they trail each other along the oscillation.
func spawnParametric(ctx *SpawnContext, w encounter.WaveEntry) {
	count := waveCount(w, 4)
	speed := waveSpeed(w, ctx, 8)
	kind := MotionKindFromString(w.Motion)
	sides := waveSides(w.Side)

	params := MotionParams{
		Amplitude:    w.Amplitude,
		Frequency:    w.Frequency,
		Phase:        w.Phase,
		AngularSpeed: w.AngularSpeed,
		Growth:       w.Growth,
		Scale:        w.Scale,
	}
	if params.Amplitude == 0 {
		params.Amplitude = 3
	}
	if params.Frequency == 0 {
		params.Frequency = 4
	}
	if params.AngularSpeed == 0 {
		params.AngularSpeed = 4
	}
	if params.Growth == 0 {
		params.Growth = 1
	}
	if params.Scale == 0 {
		params.Scale = 3
	}

	for i := 0; i < count; i++ {
		side := sides[i%len(sides)]
		frac := (float64(i) + 0.5) / float64(count)
		pos, dir := edgePoint(ctx.Arena, side, frac)

		p := params
		p.Phase += float64(i) * 0.8

		ctx.Manager.Spawn(SpawnSpec{
			Pos:    pos,
			Size:   waveSize(w, 1),
			Shape:  ShapeCircle,
			Class:  ClassWhite,
			Damage: waveDamage(w, ctx),
			Motion: MotionState{
				Kind:   kind,
				Params: p,
				Origin: pos,
				Dir:    dir,
				Speed:  speed,
			},
		})
	}
}

// spawnBeam aims a multi-phase beam through the soul's current position:
// horizontal for left/right sides, vertical for top/bottom. The appear and
// charge phases are the player's dodge telegraph.
func spawnBeam(ctx *SpawnContext, w encounter.WaveEntry) {
	arena := ctx.Arena
	soul := arena.Center()
	if ctx.Soul != nil {
		soul = ctx.Soul.Pos()
	}

	var start, end core.Vec2
	switch w.Side {
	case "top":
		start = core.Vec2{X: soul.X, Y: arena.Y}
		end = core.Vec2{X: soul.X, Y: arena.Bottom()}
	case "bottom":
		start = core.Vec2{X: soul.X, Y: arena.Bottom()}
		end = core.Vec2{X: soul.X, Y: arena.Y}
	case "right":
		start = core.Vec2{X: arena.Right(), Y: soul.Y}
		end = core.Vec2{X: arena.X, Y: soul.Y}
	default: // left
		start = core.Vec2{X: arena.X, Y: soul.Y}
		end = core.Vec2{X: arena.Right(), Y: soul.Y}
	}

	width := w.Width
	if width <= 0 {
		width = 3
	}
	appear, charge, fire, fade := w.AppearMs, w.ChargeMs, w.FireMs, w.FadeMs
	if appear <= 0 {
		appear = 400
	}
	if charge <= 0 {
		charge = 600
	}
	if fire <= 0 {
		fire = 500
	}
	if fade <= 0 {
		fade = 300
	}

	beam := NewBeam(start, end, width,
		ctx.Frames(appear), ctx.Frames(charge), ctx.Frames(fire), ctx.Frames(fade))

	ctx.Manager.Spawn(SpawnSpec{
		Pos:    start,
		Size:   width,
		Damage: waveDamage(w, ctx),
		Beam:   beam,
	})
}

// spawnRing emits an expanding ring of circles from the box center.
func spawnRing(ctx *SpawnContext, w encounter.WaveEntry) {
	count := waveCount(w, 12)
	startRadius := w.StartRadius
	if startRadius <= 0 {
		startRadius = 2
	}
	speed := w.Speed
	if speed <= 0 {
		if w.EndRadius > startRadius {
			// Reach the configured end radius in about two seconds
			speed = (w.EndRadius - startRadius) / 2
		} else {
			speed = 7
		}
	}
	scale := ctx.SpeedScale
	if scale > 0 {
		speed *= scale
	}

	center := ctx.Arena.Center()
	for i := 0; i < count; i++ {
		angle := 2 * math.Pi * float64(i) / float64(count)
		radial := core.Vec2{X: math.Cos(angle), Y: math.Sin(angle)}

		ctx.Manager.Spawn(SpawnSpec{
			Pos:    center.Add(radial.Scale(startRadius)),
			Vel:    radial.Scale(speed),
			Size:   waveSize(w, 1),
			Shape:  ShapeCircle,
			Class:  ClassWhite,
			Damage: waveDamage(w, ctx),
		})
	}
}

// spawnCarousel parks a rotating ring around the box center, built on the
// elliptical motion kind with zero forward speed.
func spawnCarousel(ctx *SpawnContext, w encounter.WaveEntry) {
	count := waveCount(w, 8)
	radius := w.Amplitude
	if radius <= 0 {
		radius = math.Min(ctx.Arena.W, ctx.Arena.H)/2 - 2
	}
	angular := w.Speed
	if angular <= 0 {
		angular = 4
	}

	center := ctx.Arena.Center()
	for i := 0; i < count; i++ {
		ctx.Manager.Spawn(SpawnSpec{
			Pos:    center,
			Size:   waveSize(w, 1),
			Shape:  ShapeCircle,
			Class:  ClassWhite,
			Damage: waveDamage(w, ctx),
			Motion: MotionState{
				Kind: MotionBoth,
				Params: MotionParams{
					Amplitude: radius,
					Frequency: angular,
					Phase:     2 * math.Pi * float64(i) / float64(count),
				},
				Origin: center,
				Dir:    core.Vec2{X: 1},
			},
		})
	}
}
