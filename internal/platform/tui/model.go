package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blindrace/internal/config"
	"github.com/vovakirdan/blindrace/internal/core"
	"github.com/vovakirdan/blindrace/internal/reflex"
)

const (
	hudRefreshRate = 20 // HUD redraws per second
	flashTicks     = 10 // How long an outcome stays highlighted
)

// Messages forwarded from the game loop goroutine.
type (
	runStartedMsg struct{ profile config.DifficultyProfile }
	obstacleMsg   struct{ kind reflex.ObstacleKind }
	outcomeMsg    struct {
		kind    reflex.ObstacleKind
		outcome reflex.Outcome
		state   reflex.RunState
	}
	livesMsg   struct{ remaining int }
	musicMsg   struct{ paused bool }
	runDoneMsg struct {
		summary reflex.RunSummary
		err     error
	}
)

// programObserver turns run notifications into Bubble Tea messages.
type programObserver struct {
	send func(tea.Msg)
}

func (o programObserver) RunStarted(p config.DifficultyProfile) { o.send(runStartedMsg{p}) }
func (o programObserver) ObstacleArmed(k reflex.ObstacleKind)   { o.send(obstacleMsg{k}) }
func (o programObserver) LivesQueried(n int)                    { o.send(livesMsg{n}) }
func (o programObserver) MusicToggled(paused bool)              { o.send(musicMsg{paused}) }
func (o programObserver) RunEnded(reflex.RunSummary)            {}

func (o programObserver) OutcomeResolved(k reflex.ObstacleKind, out reflex.Outcome, s reflex.RunState) {
	o.send(outcomeMsg{kind: k, outcome: out, state: s})
}

type hudPhase int

const (
	phaseWarmup hudPhase = iota
	phaseRunning
	phaseDone
)

// GameModel is the Bubble Tea model shown while a run is in progress.
// It forwards keys to the game loop and draws what the loop reports.
type GameModel struct {
	keys    *KeyMapper
	help    help.Model
	input   *ChannelInput
	session *core.Session

	phase       hudPhase
	state       reflex.RunState
	armed       bool
	kind        reflex.ObstacleKind
	last        *outcomeMsg
	flash       int
	livesNote   string
	livesFlash  int
	musicPaused bool

	width    int
	height   int
	quitting bool
	result   *runDoneMsg
}

// NewGameModel creates the HUD for a run using profile.
func NewGameModel(profile config.DifficultyProfile, input *ChannelInput, session *core.Session, screen core.RuntimeConfig) GameModel {
	width, height := screen.ScreenSize()
	return GameModel{
		keys:    NewKeyMapper(),
		help:    help.New(),
		input:   input,
		session: session,
		state:   reflex.NewRunState(profile),
		width:   width,
		height:  height,
	}
}

// Init starts the HUD refresh loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(hudRefreshRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if m.flash > 0 {
			m.flash--
		}
		if m.livesFlash > 0 {
			m.livesFlash--
		}
		if m.result != nil {
			return m, nil
		}
		return m, tickCmd(hudRefreshRate)

	case runStartedMsg:
		m.state = reflex.NewRunState(msg.profile)
		m.phase = phaseWarmup

	case obstacleMsg:
		m.phase = phaseRunning
		m.armed = true
		m.kind = msg.kind

	case outcomeMsg:
		m.armed = false
		m.state = msg.state
		m.last = &msg
		m.flash = flashTicks
		if msg.state.GameOver() {
			m.phase = phaseDone
		}

	case livesMsg:
		m.livesNote = livesText(msg.remaining)
		m.livesFlash = flashTicks * 3

	case musicMsg:
		m.musicPaused = msg.paused

	case runDoneMsg:
		m.result = &msg
		return m, tea.Quit
	}

	return m, nil
}

// handleKey queues mapped keys for the game loop. Quit also cancels the
// session directly so blocking cues stop at once.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ev, ok := m.keys.MapKey(msg)
	if !ok {
		return m, nil
	}
	m.input.Push(ev)
	if ev.Kind == core.EventQuit {
		m.quitting = true
		m.session.Cancel()
	}
	return m, nil
}

// View renders the HUD.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	t := theme

	var b strings.Builder
	b.WriteString(t.HUDTitle.Render("B L I N D   R A C E"))
	b.WriteString(t.HUDSeparator.Render("  ·  "))
	b.WriteString(t.HUDValue.Render(m.state.Profile.Label))
	b.WriteString("\n\n")

	b.WriteString(m.stat("Score", fmt.Sprint(m.state.Score)))
	b.WriteString(t.HUDSeparator.Render("  │  "))
	b.WriteString(m.stat("Level", fmt.Sprint(reflex.GameLevel(m.state.Score))))
	b.WriteString(t.HUDSeparator.Render("  │  "))
	b.WriteString(t.HUDLabel.Render("Lives "))
	b.WriteString(m.lives())
	b.WriteString("\n")
	b.WriteString(m.stat("Next obstacle", fmt.Sprintf("%.2fs", m.state.CurrentInterval)))
	b.WriteString("\n\n")

	b.WriteString(m.centerStage())
	b.WriteString("\n\n")

	music := "on"
	if m.musicPaused {
		music = "paused"
	}
	b.WriteString(m.stat("Music", music))
	if m.livesFlash > 0 {
		b.WriteString(t.HUDSeparator.Render("  │  "))
		b.WriteString(t.HUDValue.Render(m.livesNote))
	}

	box := t.HUDBorder.Render(b.String())
	footer := t.HUDControls.Render(m.help.View(m.keys.Game))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, box, "", footer))
}

func (m GameModel) stat(label, value string) string {
	return theme.HUDLabel.Render(label+" ") + theme.HUDValue.Render(value)
}

// lives draws one heart per life: full for remaining, hollow for lost.
func (m GameModel) lives() string {
	remaining := max(m.state.LivesRemaining(), 0)
	return theme.LifeFull.Render(strings.Repeat("♥", remaining)) +
		theme.LifeLost.Render(strings.Repeat("♡", m.state.LivesLost))
}

// centerStage shows the live obstacle, or the last outcome while it flashes.
func (m GameModel) centerStage() string {
	switch {
	case m.phase == phaseWarmup:
		return theme.Status.Render("Get ready...")
	case m.armed:
		style := theme.Obstacle
		if m.kind == reflex.ObstacleBonus {
			style = theme.Bonus
		}
		return style.Render(obstacleBanner(m.kind))
	case m.last != nil && m.flash > 0:
		return outcomeBanner(m.last.kind, m.last.outcome)
	case m.phase == phaseDone:
		return theme.Status.Render("Game over")
	default:
		return theme.Status.Render("Listen...")
	}
}

// Finished reports whether the game loop has returned.
func (m GameModel) Finished() bool {
	return m.result != nil
}

// Result returns how the run ended. Only meaningful once Finished.
func (m GameModel) Result() (reflex.RunSummary, error) {
	if m.result == nil {
		return reflex.RunSummary{}, nil
	}
	return m.result.summary, m.result.err
}

func obstacleBanner(k reflex.ObstacleKind) string {
	switch k {
	case reflex.ObstacleLeft:
		return "◀◀  LEFT   press →"
	case reflex.ObstacleRight:
		return "RIGHT  ▶▶   press ←"
	case reflex.ObstacleCenter:
		return "▲  CENTER   press ↑"
	case reflex.ObstacleAbove:
		return "▼  ABOVE   press ↓"
	default:
		return "■  BOX   press space"
	}
}

func outcomeBanner(k reflex.ObstacleKind, out reflex.Outcome) string {
	switch out {
	case reflex.OutcomeDodged:
		return theme.Dodged.Render("Dodged!")
	case reflex.OutcomeBonusCollected:
		return theme.Bonus.Render("Extra life!")
	default:
		if k == reflex.ObstacleBonus {
			return theme.Missed.Render("Box missed")
		}
		return theme.Missed.Render("Hit from " + strings.ToLower(k.String()))
	}
}

func livesText(n int) string {
	if n == 1 {
		return "1 life remaining"
	}
	return fmt.Sprintf("%d lives remaining", n)
}
