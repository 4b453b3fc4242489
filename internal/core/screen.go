package core

import (
	"math"
	"strings"
)

// Screen is a 2D character buffer for rendering the battle.
// It decouples the simulation's render pass from the terminal: the engine
// draws with primitive calls and the platform handles actual display.
type Screen struct {
	width  int
	height int
	cells  [][]rune
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear()
	return s
}

func (s *Screen) allocate() {
	s.cells = make([][]rune, s.height)
	for y := range s.cells {
		s.cells[y] = make([]rune, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	copyW := Min(oldW, width)
	copyH := Min(oldH, height)
	for y := 0; y < copyH; y++ {
		for x := 0; x < copyW; x++ {
			s.cells[y][x] = oldCells[y][x]
		}
	}
}

// Clear fills the entire screen with spaces.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = ' '
		}
	}
}

// Set places a rune at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = r
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return ' '
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y), one cell per
// rune. Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string) {
	for i, r := range []rune(text) {
		s.Set(x+i, y, r)
	}
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (s *Screen) DrawTextCentered(y int, text string) {
	x := (s.width - len([]rune(text))) / 2
	s.DrawText(x, y, text)
}

// FillRect fills a rectangular area with the given rune.
// The float rect is truncated to cell coordinates.
func (s *Screen) FillRect(r Rect, fill rune) {
	x0, y0 := int(r.X), int(r.Y)
	x1, y1 := int(math.Ceil(r.Right())), int(math.Ceil(r.Bottom()))
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			s.Set(x, y, fill)
		}
	}
}

// FillCircle fills a circle centered at c with the given rune.
func (s *Screen) FillCircle(c Vec2, radius float64, fill rune) {
	x0 := int(c.X - radius)
	x1 := int(math.Ceil(c.X + radius))
	y0 := int(c.Y - radius)
	y1 := int(math.Ceil(c.Y + radius))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			p := Vec2{float64(x) + 0.5, float64(y) + 0.5}
			if p.Sub(c).Len() <= radius {
				s.Set(x, y, fill)
			}
		}
	}
}

// StrokeCircle draws the outline of a circle centered at c.
func (s *Screen) StrokeCircle(c Vec2, radius float64, stroke rune) {
	// Sample enough angles that adjacent cells on the perimeter connect.
	steps := Max(16, int(radius*8))
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		s.Set(int(c.X+math.Cos(a)*radius), int(c.Y+math.Sin(a)*radius), stroke)
	}
}

// DrawLine draws a straight line of the given width between two points.
// Width below 1 draws a single-cell line.
func (s *Screen) DrawLine(a, b Vec2, width float64, stroke rune) {
	if width < 1 {
		width = 1
	}
	dir := b.Sub(a)
	length := dir.Len()
	if length == 0 {
		s.FillCircle(a, width/2, stroke)
		return
	}
	unit := dir.Scale(1 / length)
	perp := unit.Perp()
	// Step along the line at half-cell resolution, stamping the width
	// perpendicular to the travel direction.
	for t := 0.0; t <= length; t += 0.5 {
		p := a.Add(unit.Scale(t))
		for w := -width / 2; w <= width/2; w += 0.5 {
			q := p.Add(perp.Scale(w))
			s.Set(int(q.X), int(q.Y), stroke)
		}
	}
}

// DrawBox draws a box outline using box-drawing characters.
func (s *Screen) DrawBox(x, y, w, h int) {
	s.Set(x, y, '┌')
	s.Set(x+w-1, y, '┐')
	s.Set(x, y+h-1, '└')
	s.Set(x+w-1, y+h-1, '┘')

	for i := x + 1; i < x+w-1; i++ {
		s.Set(i, y, '─')
		s.Set(i, y+h-1, '─')
	}
	for j := y + 1; j < y+h-1; j++ {
		s.Set(x, j, '│')
		s.Set(x+w-1, j, '│')
	}
}

// String converts the screen buffer to a renderable string.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x])
		}
	}
	return sb.String()
}

// Row returns a copy of the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	return string(s.cells[y])
}
