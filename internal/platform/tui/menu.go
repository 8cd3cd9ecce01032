package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blindrace/internal/config"
	"github.com/vovakirdan/blindrace/internal/core"
	"github.com/vovakirdan/blindrace/internal/registry"
)

// Narrator speaks menu text. The visual front-end has none.
type Narrator interface {
	// Announce interrupts whatever is being said and returns at once.
	Announce(text string)
	// Say speaks text and waits for it, up to the narrator's timeout.
	Say(s *core.Session, text string) bool
}

type itemKind int

const (
	itemPlay itemKind = iota
	itemInstructions
	itemSounds
	itemCredits
	itemSpeakerTest
	itemQuit
)

// MenuItem is one entry of the main menu.
type MenuItem struct {
	Label string
	kind  itemKind
	level int
}

// MainMenuItems returns the main menu entries in display order.
func MainMenuItems() []MenuItem {
	return []MenuItem{
		{Label: "Easy mode", kind: itemPlay, level: config.LevelEasy},
		{Label: "Medium mode", kind: itemPlay, level: config.LevelMedium},
		{Label: "Hard mode", kind: itemPlay, level: config.LevelHard},
		{Label: "Impossible mode", kind: itemPlay, level: config.LevelImpossible},
		{Label: "Instructions", kind: itemInstructions},
		{Label: "Game sounds", kind: itemSounds},
		{Label: "Credits", kind: itemCredits},
		{Label: "Speaker test", kind: itemSpeakerTest},
		{Label: "Quit", kind: itemQuit},
	}
}

const backLabel = "Back to main menu"

type menuPage int

const (
	pageMain menuPage = iota
	pageSounds
	pageText
	pageSpeakerTest
)

// MenuOptions configures the main menu.
type MenuOptions struct {
	Sounds         registry.Sounds
	Narrator       Narrator      // Optional
	SpeakerTestGap time.Duration // Pause between speaker test cues
	Tick           time.Duration // Poll interval for the speaker test
	Screen         core.RuntimeConfig
}

type speakerTestDoneMsg struct {
	session   *core.Session
	completed bool
}

// MenuModel is the Bubble Tea model for the main menu and its sub-pages.
type MenuModel struct {
	opts      MenuOptions
	keys      *KeyMapper
	help      help.Model
	items     []MenuItem
	cursor    int
	sounds    []string
	soundsPos int
	page      menuPage
	text      Page
	status    string
	test      *core.Session
	width     int
	height    int
	quitting  bool
	selected  int // Chosen level, 0 until a difficulty is picked
}

// NewMenuModel creates a new menu model.
func NewMenuModel(opts MenuOptions) MenuModel {
	if opts.Tick <= 0 {
		opts.Tick = time.Second / 60
	}
	h := help.New()
	h.ShowAll = false
	width, height := opts.Screen.ScreenSize()
	return MenuModel{
		opts:   opts,
		keys:   NewKeyMapper(),
		help:   h,
		items:  MainMenuItems(),
		sounds: append(core.CueNames(), backLabel),
		width:  width,
		height: height,
	}
}

// Init announces the menu for speech users.
func (m MenuModel) Init() tea.Cmd {
	if m.opts.Narrator == nil {
		return nil
	}
	text := "Blind Race. Main menu. " + m.items[m.cursor].Label
	return func() tea.Msg {
		m.opts.Narrator.Announce(text)
		return nil
	}
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case speakerTestDoneMsg:
		if msg.session != m.test {
			return m, nil // A cancelled test finishing late
		}
		m.test = nil
		if msg.completed {
			m.status = "Speaker test finished. Press Enter to repeat."
			m.announce(m.status)
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKeyToMenuAction(msg)
	if action == MenuActionQuit {
		m.cancelTest()
		m.quitting = true
		return m, tea.Quit
	}

	switch m.page {
	case pageSounds:
		return m.handleSoundsKey(action)
	case pageText:
		if action == MenuActionBack || action == MenuActionSelect {
			m.backToMain()
		}
		return m, nil
	case pageSpeakerTest:
		return m.handleSpeakerTestKey(action)
	}

	switch action {
	case MenuActionUp:
		m.cursor = m.moveTo(m.cursor, m.cursor-1, len(m.items), m.itemLabel)
	case MenuActionDown:
		m.cursor = m.moveTo(m.cursor, m.cursor+1, len(m.items), m.itemLabel)
	case MenuActionFirst:
		m.cursor = m.moveTo(m.cursor, 0, len(m.items), m.itemLabel)
	case MenuActionLast:
		m.cursor = m.moveTo(m.cursor, len(m.items)-1, len(m.items), m.itemLabel)
	case MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionSelect:
		return m.activate(m.items[m.cursor])
	}
	return m, nil
}

func (m MenuModel) activate(item MenuItem) (tea.Model, tea.Cmd) {
	switch item.kind {
	case itemPlay:
		m.selected = item.level
		return m, tea.Quit
	case itemInstructions:
		m.showText(InstructionsPage)
		if m.opts.Narrator == nil {
			m.playCue(core.CueInstructions)
		}
	case itemCredits:
		m.showText(CreditsPage)
	case itemSounds:
		m.page = pageSounds
		m.soundsPos = 0
		m.announce("Game sounds. " + m.soundLabel(0))
	case itemSpeakerTest:
		m.page = pageSpeakerTest
		m.status = ""
		return m.startSpeakerTest()
	case itemQuit:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m MenuModel) handleSoundsKey(action MenuAction) (tea.Model, tea.Cmd) {
	n := len(m.sounds)
	switch action {
	case MenuActionUp:
		m.soundsPos = m.moveTo(m.soundsPos, m.soundsPos-1, n, m.soundLabel)
	case MenuActionDown:
		m.soundsPos = m.moveTo(m.soundsPos, m.soundsPos+1, n, m.soundLabel)
	case MenuActionFirst:
		m.soundsPos = m.moveTo(m.soundsPos, 0, n, m.soundLabel)
	case MenuActionLast:
		m.soundsPos = m.moveTo(m.soundsPos, n-1, n, m.soundLabel)
	case MenuActionBack:
		m.stopSounds()
		m.backToMain()
	case MenuActionSelect:
		name := m.sounds[m.soundsPos]
		if name == backLabel {
			m.stopSounds()
			m.backToMain()
			return m, nil
		}
		m.playCue(name)
	}
	return m, nil
}

func (m MenuModel) handleSpeakerTestKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionBack:
		m.cancelTest()
		m.backToMain()
	case MenuActionSelect:
		if m.test == nil {
			m.status = ""
			return m.startSpeakerTest()
		}
	}
	return m, nil
}

// startSpeakerTest runs the test off the UI goroutine.
func (m MenuModel) startSpeakerTest() (tea.Model, tea.Cmd) {
	if m.opts.Sounds == nil {
		m.status = "No audio device."
		return m, nil
	}
	s := core.NewSession(context.Background(), core.SystemClock{}, m.opts.Tick, nil)
	m.test = s
	sounds, narrator, gap := m.opts.Sounds, m.opts.Narrator, m.opts.SpeakerTestGap
	return m, func() tea.Msg {
		if narrator != nil {
			narrator.Say(s, SpeakerTestPage.Body)
		}
		if s.Cancelled() {
			return speakerTestDoneMsg{session: s}
		}
		return speakerTestDoneMsg{session: s, completed: sounds.SpeakerTest(s, gap)}
	}
}

func (m *MenuModel) cancelTest() {
	if m.test != nil {
		m.test.Cancel()
		m.test = nil
	}
}

// moveTo moves a cursor, playing the menu cue and announcing the new entry
// when it actually changes.
func (m *MenuModel) moveTo(from, to, n int, label func(int) string) int {
	to = max(0, min(to, n-1))
	if to != from {
		m.playCue(core.CueMenu)
		m.announce(label(to))
	}
	return to
}

func (m *MenuModel) showText(p Page) {
	m.page = pageText
	m.text = p
	m.announce(p.Title + ". " + p.Body)
}

func (m *MenuModel) backToMain() {
	m.page = pageMain
	m.status = ""
	m.announce("Main menu. " + m.itemLabel(m.cursor))
}

func (m MenuModel) itemLabel(i int) string { return m.items[i].Label }

func (m MenuModel) soundLabel(i int) string {
	name := m.sounds[i]
	if name == backLabel {
		return backLabel
	}
	return core.CueDescription(name)
}

func (m MenuModel) playCue(name string) {
	if m.opts.Sounds != nil {
		m.opts.Sounds.PlayCue(name)
	}
}

func (m MenuModel) stopSounds() {
	if m.opts.Sounds != nil {
		m.opts.Sounds.Stop()
	}
}

func (m MenuModel) announce(text string) {
	if m.opts.Narrator != nil {
		m.opts.Narrator.Announce(text)
	}
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch m.page {
	case pageSounds:
		body = m.viewList("Game sounds", len(m.sounds), m.soundsPos, m.soundLabel)
	case pageText:
		body = m.viewPage(m.text)
	case pageSpeakerTest:
		status := m.status
		if m.test != nil {
			status = "Playing..."
		}
		body = m.viewPage(Page{Title: SpeakerTestPage.Title, Body: SpeakerTestPage.Body + "\n\n" + status})
	default:
		body = m.viewList("Main menu", len(m.items), m.cursor, m.itemLabel)
	}

	title := theme.MenuTitle.Render("B L I N D   R A C E")
	footer := theme.HUDControls.Render(m.help.View(m.keys.Menu))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, title, "", body, "", footer))
}

func (m MenuModel) viewList(heading string, n, cursor int, label func(int) string) string {
	var b strings.Builder
	b.WriteString(theme.MenuDescription.Render(heading))
	b.WriteString("\n\n")
	for i := 0; i < n; i++ {
		line := "  " + label(i) + "  "
		if i == cursor {
			b.WriteString(theme.MenuItemActive.Render("▸ " + label(i) + "  "))
		} else {
			b.WriteString(theme.MenuItemNormal.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m MenuModel) viewPage(p Page) string {
	width := min(72, max(m.width-8, 20))
	text := theme.PageText.Width(width).Render(p.Body)
	return theme.PageBorder.Render(theme.MenuTitle.Render(p.Title) + "\n\n" + text)
}

// Selected returns the chosen difficulty level, or 0 if none was picked.
func (m MenuModel) Selected() int {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(opts MenuOptions, programOpts ...tea.ProgramOption) (registry.MenuResult, error) {
	model := NewMenuModel(opts)

	p := tea.NewProgram(
		model,
		append([]tea.ProgramOption{tea.WithAltScreen()}, programOpts...)...,
	)

	finalModel, err := p.Run()
	if err != nil {
		return registry.MenuResult{Quit: true}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.IsQuitting() || m.Selected() == 0 {
		return registry.MenuResult{Quit: true}, nil
	}
	return registry.MenuResult{Level: m.Selected()}, nil
}
