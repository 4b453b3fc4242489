package battle

import (
	"fmt"
	"strings"

	"github.com/kazarin/soulbox/internal/core"
)

// Glyphs for the render pass. Damage classes get distinct shapes so a
// monochrome terminal still reads correctly.
const (
	glyphSoulRed    = '♥'
	glyphSoulBlue   = '♠'
	glyphSoulGreen  = '♦'
	glyphSoulPurple = '♣'

	glyphWhite  = '●'
	glyphBlue   = '◆'
	glyphOrange = '▲'
	glyphGreen  = '+'
	glyphBone   = '▓'
)

// Render draws the battle into the screen buffer: the battle box centered
// horizontally, hazards and the soul inside it during the defending phase,
// dialogue inside it otherwise, and the status line below.
func (b *Battle) Render(dst *core.Screen) {
	dst.Clear()

	boxW := int(b.arena.W) + 2
	boxH := int(b.arena.H) + 2
	ox := (dst.Width() - boxW) / 2
	oy := 2
	if ox < 0 {
		ox = 0
	}

	dst.DrawTextCentered(0, b.enc.Name)
	dst.DrawBox(ox, oy, boxW, boxH)

	// Simulation space maps into the box interior
	offset := core.Vec2{X: float64(ox + 1), Y: float64(oy + 1)}

	switch b.phase {
	case PhaseDefending:
		b.renderHazards(dst, offset)
		b.renderSoul(dst, offset)
	case PhaseResolved:
		dst.DrawTextCentered(oy+boxH/2, b.message)
		dst.DrawTextCentered(oy+boxH/2+2, strings.ToUpper(b.outcome.String()))
	default:
		b.renderDialogue(dst, ox+2, oy+1, boxW-4)
		if b.waveQueue {
			b.renderSoul(dst, offset)
		}
	}

	b.renderStatus(dst, oy+boxH+1)
}

func (b *Battle) renderSoul(dst *core.Screen, offset core.Vec2) {
	// Blink while invulnerable
	if b.Invulnerable() && b.elapsed%8 < 4 {
		return
	}

	glyph := glyphSoulRed
	switch b.soul.Mode() {
	case ModeBlue:
		glyph = glyphSoulBlue
	case ModeGreen:
		glyph = glyphSoulGreen
	case ModePurple:
		glyph = glyphSoulPurple
	}

	if b.soul.Mode() == ModePurple {
		a := b.soul.lineA.Add(offset)
		c := b.soul.lineB.Add(offset)
		dst.DrawLine(a, c, 1, '·')
	}

	p := b.soul.Pos().Add(offset)
	dst.Set(int(p.X), int(p.Y), glyph)
}

func (b *Battle) renderHazards(dst *core.Screen, offset core.Vec2) {
	b.manager.ForEachActive(func(p *Projectile) {
		if p.Beam != nil {
			b.renderBeam(dst, p.Beam, offset)
			return
		}

		glyph := glyphWhite
		switch p.Class {
		case ClassBlue:
			glyph = glyphBlue
		case ClassOrange:
			glyph = glyphOrange
		case ClassGreen:
			glyph = glyphGreen
		}
		if p.Shape == ShapeRect {
			if p.Class == ClassWhite {
				glyph = glyphBone
			}
			r := p.Rect()
			r.X += offset.X
			r.Y += offset.Y
			dst.FillRect(r, glyph)
			return
		}
		dst.FillCircle(p.Pos.Add(offset), p.Radius(), glyph)
	})
}

func (b *Battle) renderBeam(dst *core.Screen, beam *Beam, offset core.Vec2) {
	start := beam.Start.Add(offset)
	end := beam.End.Add(offset)

	switch beam.Phase() {
	case BeamAppear:
		dst.DrawLine(start, end, 1, '·')
	case BeamCharge:
		width := 1 + beam.Intensity()*(beam.Width-1)
		dst.DrawLine(start, end, width, '░')
	case BeamFire:
		dst.DrawLine(start, end, beam.Width, '█')
	case BeamFadeout:
		dst.DrawLine(start, end, beam.Width, '▒')
	}
}

func (b *Battle) renderDialogue(dst *core.Screen, x, y, width int) {
	if b.message == "" || width < 1 {
		return
	}
	// Greedy word wrap into the box interior
	words := strings.Fields(b.message)
	line := ""
	row := y
	for _, w := range words {
		if line != "" && len(line)+1+len(w) > width {
			dst.DrawText(x, row, line)
			row++
			line = w
			continue
		}
		if line == "" {
			line = w
		} else {
			line += " " + w
		}
	}
	dst.DrawText(x, row, line)
}

func (b *Battle) renderStatus(dst *core.Screen, y int) {
	status := fmt.Sprintf("HP %d/%d  TP %d%%  MERCY %d/%d",
		b.hp, b.cfg.Combat.MaxHP, b.tp, b.mercy, b.enc.MercyRequired())
	if b.opponentHP < b.enc.HP {
		status += fmt.Sprintf("  FOE %d/%d", b.opponentHP, b.enc.HP)
	}
	dst.DrawTextCentered(y, status)
}
