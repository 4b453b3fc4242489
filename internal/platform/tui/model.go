package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kazarin/soulbox/internal/battle"
	"github.com/kazarin/soulbox/internal/core"
)

// holdFrames is the synthesized key-hold length in simulation frames.
// Terminals deliver key-down events only, so a held arrow key arrives as an
// initial press followed by autorepeat; each event re-arms this counter and
// expiry synthesizes the release the terminal never sends.
const holdFrames = 10

// menuScreen selects which menu layer has input focus during the menu phase.
type menuScreen int

const (
	menuButtons menuScreen = iota
	menuActList
	menuItemList
	menuMercyList
)

var buttonLabels = []string{"FIGHT", "ACT", "ITEM", "MERCY"}

var (
	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208")).
			Padding(0, 2)
	buttonSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("11")).
				Bold(true).
				Padding(0, 2)
	listStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("7"))
	listSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("11")).
				Bold(true)
	listUsedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Strikethrough(true)
	spareReadyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))
	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Model is the Bubble Tea model driving one battle session.
type Model struct {
	battle   *battle.Battle
	screen   *core.Screen
	keys     *KeyMapper
	tickRate int

	held map[core.Action]int // Remaining hold frames per synthesized-held action

	menu     menuScreen
	cursor   int
	quitting bool
	finished bool
}

// NewModel creates a Bubble Tea model for the given battle session. The
// runtime config supplies the tick rate and the terminal dimensions the
// screen buffer is fitted to.
func NewModel(b *battle.Battle, rc core.RuntimeConfig) Model {
	if rc.TickRate <= 0 {
		rc.TickRate = 60
	}
	arena := b.Arena()
	w := core.Clamp(rc.ScreenW, int(arena.W)+10, 100)
	h := int(arena.H) + 7
	if rc.ScreenH > 0 {
		h = core.Min(h, rc.ScreenH)
	}

	return Model{
		battle:   b,
		screen:   core.NewScreen(w, h),
		keys:     NewKeyMapper(),
		tickRate: rc.TickRate,
		held:     make(map[core.Action]int),
	}
}

// Init starts the battle and the tick loop.
func (m Model) Init() tea.Cmd {
	m.battle.Start()
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, core.Min(msg.Height, m.screen.Height()))
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey routes input to the battle or the menu depending on phase.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, quit := m.keys.MapKey(msg)
	if quit {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.battle.Phase() {
	case battle.PhaseDefending:
		m.pressHeld(action)
	case battle.PhaseMenu:
		return m.handleMenuKey(msg)
	case battle.PhaseResolved:
		if action == core.ActionConfirm || action == core.ActionCancel {
			m.finished = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// pressHeld forwards a movement press, re-arming its synthesized hold.
func (m Model) pressHeld(a core.Action) {
	switch a {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight, core.ActionJump:
	default:
		return
	}
	if m.held[a] == 0 {
		m.battle.Press(a)
	}
	m.held[a] = holdFrames
}

// handleMenuKey drives the menu cursor and selections.
func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	move := m.keys.MapKeyToMenuMove(msg)
	switch m.menu {
	case menuButtons:
		m.updateButtons(move)
	case menuActList:
		m.updateList(move, len(m.battle.Encounter().Acts), func(i int) {
			m.battle.Select(battle.MenuAct, i)
		})
	case menuItemList:
		m.updateList(move, len(m.battle.Items()), func(i int) {
			m.battle.Select(battle.MenuItem, i)
		})
	case menuMercyList:
		m.updateList(move, 2, func(i int) {
			if i == 0 {
				m.battle.Select(battle.MenuSpare, 0)
			} else {
				m.battle.Select(battle.MenuFlee, 0)
			}
		})
	}
	return m, nil
}

func (m *Model) updateButtons(move MenuMove) {
	switch move {
	case MenuMoveLeft, MenuMoveUp:
		m.cursor--
		if m.cursor < 0 {
			m.cursor = len(buttonLabels) - 1
		}
	case MenuMoveRight, MenuMoveDown:
		m.cursor = (m.cursor + 1) % len(buttonLabels)
	case MenuMoveConfirm:
		switch m.cursor {
		case 0:
			m.battle.Select(battle.MenuFight, 0)
		case 1:
			if len(m.battle.Encounter().Acts) > 0 {
				m.menu = menuActList
				m.cursor = 0
			}
		case 2:
			if len(m.battle.Items()) > 0 {
				m.menu = menuItemList
				m.cursor = 0
			}
		case 3:
			m.menu = menuMercyList
			m.cursor = 0
		}
	}
}

func (m *Model) updateList(move MenuMove, length int, confirm func(int)) {
	if length == 0 {
		m.menu = menuButtons
		m.cursor = 0
		return
	}
	switch move {
	case MenuMoveUp, MenuMoveLeft:
		m.cursor--
		if m.cursor < 0 {
			m.cursor = length - 1
		}
	case MenuMoveDown, MenuMoveRight:
		m.cursor = (m.cursor + 1) % length
	case MenuMoveConfirm:
		confirm(m.cursor)
		m.menu = menuButtons
		m.cursor = 0
	case MenuMoveBack:
		m.menu = menuButtons
		m.cursor = 0
	}
}

// handleTick advances the simulation one frame and expires held keys.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	for a, frames := range m.held {
		frames--
		if frames <= 0 {
			delete(m.held, a)
			m.battle.Release(a)
			continue
		}
		m.held[a] = frames
	}

	m.battle.Tick()
	return m, tickCmd(m.tickRate)
}

// View renders the battle screen with the menu layer below it.
func (m Model) View() string {
	if m.quitting || m.finished {
		return ""
	}

	m.battle.Render(m.screen)
	var b strings.Builder
	b.WriteString(m.screen.String())
	b.WriteString("\n")

	switch m.battle.Phase() {
	case battle.PhaseMenu:
		b.WriteString(m.renderMenu())
	case battle.PhaseDefending:
		b.WriteString(hintStyle.Render(centerText("arrows/wasd move · space jump", m.screen.Width())))
	case battle.PhaseResolved:
		b.WriteString(hintStyle.Render(centerText("press z to continue", m.screen.Width())))
	}
	return b.String()
}

func (m Model) renderMenu() string {
	switch m.menu {
	case menuActList:
		labels := make([]string, len(m.battle.Encounter().Acts))
		for i, a := range m.battle.Encounter().Acts {
			labels[i] = a.Name
		}
		return m.renderList(labels, nil)
	case menuItemList:
		items := m.battle.Items()
		labels := make([]string, len(items))
		used := make([]bool, len(items))
		for i, it := range items {
			labels[i] = it.Name
			used[i] = it.Used
		}
		return m.renderList(labels, used)
	case menuMercyList:
		spare := "Spare"
		if m.battle.Spareable() {
			spare = spareReadyStyle.Render("Spare")
		}
		return m.renderList([]string{spare, "Flee"}, nil)
	default:
		return m.renderButtons()
	}
}

func (m Model) renderButtons() string {
	parts := make([]string, len(buttonLabels))
	for i, label := range buttonLabels {
		if i == m.cursor {
			parts[i] = buttonSelectedStyle.Render("* " + label)
		} else {
			parts[i] = buttonStyle.Render(label)
		}
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	return centerText(row, m.screen.Width())
}

func (m Model) renderList(labels []string, used []bool) string {
	var b strings.Builder
	for i, label := range labels {
		prefix := "  "
		style := listStyle
		switch {
		case used != nil && used[i]:
			style = listUsedStyle
		case i == m.cursor:
			prefix = "* "
			style = listSelectedStyle
		}
		b.WriteString(centerText(style.Render(prefix+label), m.screen.Width()))
		if i < len(labels)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// centerText pads text to be horizontally centered within the given width.
func centerText(text string, width int) string {
	pad := (width - lipgloss.Width(text)) / 2
	if pad < 1 {
		return text
	}
	return strings.Repeat(" ", pad) + text
}

// Finished reports whether the player acknowledged a resolved battle.
func (m Model) Finished() bool {
	return m.finished
}

// Run starts the Bubble Tea program for one battle session and returns the
// battle's outcome once the session ends.
func Run(b *battle.Battle, rc core.RuntimeConfig) (battle.Outcome, error) {
	p := tea.NewProgram(
		NewModel(b, rc),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return battle.OutcomeNone, fmt.Errorf("tui: program failed: %w", err)
	}
	return b.Outcome(), nil
}
