package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blindrace/internal/core"
	"github.com/vovakirdan/blindrace/internal/reflex"
	"github.com/vovakirdan/blindrace/internal/registry"
	"github.com/vovakirdan/blindrace/internal/report"
)

// ResultKeyMap defines the key bindings for the end-of-run screen.
type ResultKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Yes    key.Binding
	No     key.Binding
	Select key.Binding
	Copy   key.Binding
	Back   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ResultKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Yes, k.No, k.Copy}
}

// FullHelp returns key bindings for the full help view.
func (k ResultKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Yes, k.No, k.Copy, k.Back},
	}
}

// DefaultResultKeyMap returns default key bindings.
func DefaultResultKeyMap() ResultKeyMap {
	return ResultKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "left", "home"),
			key.WithHelp("↑", "yes"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "right", "end"),
			key.WithHelp("↓", "no"),
		),
		Yes: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "play again"),
		),
		No: key.NewBinding(
			key.WithKeys("n", "N", "q", "ctrl+c"),
			key.WithHelp("n", "main menu"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " ", "space"),
			key.WithHelp("enter", "confirm"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy result"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "no"),
		),
	}
}

var resultChoices = []string{"Yes", "No"}

// ResultOptions configures the end-of-run screen.
type ResultOptions struct {
	Summary   reflex.RunSummary
	Sounds    registry.Sounds   // Optional
	Narrator  Narrator          // Optional
	Clipboard *report.Clipboard // Optional
	Screen    core.RuntimeConfig
}

// ResultModel shows a finished run and asks whether to play again.
type ResultModel struct {
	opts    ResultOptions
	keys    ResultKeyMap
	help    help.Model
	table   table.Model
	cursor  int
	copied  bool
	status  string
	width   int
	height  int
	decided bool
	again   bool
}

// NewResultModel creates the end-of-run screen. The result sentence is
// copied to the clipboard straight away.
func NewResultModel(opts ResultOptions) ResultModel {
	width, height := opts.Screen.ScreenSize()
	m := ResultModel{
		opts:   opts,
		keys:   DefaultResultKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.copyResult()
	return m
}

func (m *ResultModel) createTable() table.Model {
	rows := report.Rows(m.opts.Summary)
	tableRows := make([]table.Row, len(rows))
	for i, r := range rows {
		tableRows[i] = table.Row{r.Label, r.Value}
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Run", Width: 14},
			{Title: "", Width: 24},
		}),
		table.WithRows(tableRows),
		table.WithFocused(false),
		table.WithHeight(len(tableRows)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Cell
	t.SetStyles(s)

	return t
}

func (m *ResultModel) copyResult() {
	if m.opts.Clipboard == nil || !m.opts.Clipboard.Enabled() {
		m.status = "Clipboard unavailable."
		return
	}
	if err := m.opts.Clipboard.Copy(report.Format(m.opts.Summary)); err != nil {
		m.status = "Could not copy the result."
		return
	}
	m.copied = true
	m.status = "Result copied to the clipboard."
}

// Intro is the text read aloud when the screen opens.
func (m ResultModel) Intro() string {
	return "Game over. " + report.Short(m.opts.Summary) + ". " + m.status +
		" Play again? " + resultChoices[m.cursor]
}

// Init announces the result for speech users.
func (m ResultModel) Init() tea.Cmd {
	if m.opts.Narrator == nil {
		return nil
	}
	text := m.Intro()
	return func() tea.Msg {
		m.opts.Narrator.Announce(text)
		return nil
	}
}

// Update handles messages for the end-of-run screen.
func (m ResultModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Yes):
			return m.decide(true)
		case key.Matches(msg, m.keys.No), key.Matches(msg, m.keys.Back):
			return m.decide(false)
		case key.Matches(msg, m.keys.Select):
			return m.decide(m.cursor == 0)
		case key.Matches(msg, m.keys.Up):
			m.move(0)
		case key.Matches(msg, m.keys.Down):
			m.move(1)
		case key.Matches(msg, m.keys.Copy):
			m.copyResult()
			m.announce(m.status)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}
	return m, nil
}

func (m *ResultModel) move(to int) {
	if to == m.cursor {
		return
	}
	m.cursor = to
	if m.opts.Sounds != nil {
		m.opts.Sounds.PlayCue(core.CueMenu)
	}
	m.announce(resultChoices[to])
}

func (m ResultModel) decide(again bool) (tea.Model, tea.Cmd) {
	m.decided = true
	m.again = again
	return m, tea.Quit
}

func (m ResultModel) announce(text string) {
	if m.opts.Narrator != nil {
		m.opts.Narrator.Announce(text)
	}
}

// View renders the end-of-run screen.
func (m ResultModel) View() string {
	if m.decided {
		return ""
	}

	var b strings.Builder
	b.WriteString(theme.PageText.Width(min(72, max(m.width-8, 20))).Render(report.Format(m.opts.Summary)))
	b.WriteString("\n\n")
	b.WriteString(m.table.View())
	b.WriteString("\n\n")
	b.WriteString(theme.Status.Render(m.status))
	b.WriteString("\n\n")
	b.WriteString(theme.MenuTitle.Render("Play again?"))
	b.WriteString("  ")
	for i, choice := range resultChoices {
		if i == m.cursor {
			b.WriteString(theme.MenuItemActive.Render(" " + choice + " "))
		} else {
			b.WriteString(theme.MenuItemNormal.Render(" " + choice + " "))
		}
		b.WriteString(" ")
	}

	title := theme.MenuTitle.Render("G A M E   O V E R")
	box := theme.PageBorder.Render(b.String())
	footer := theme.HUDControls.Render(m.help.View(m.keys))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, title, "", box, "", footer))
}

// PlayAgain reports the player's answer. False until one was given.
func (m ResultModel) PlayAgain() bool {
	return m.decided && m.again
}

// Copied reports whether the result reached the clipboard.
func (m ResultModel) Copied() bool {
	return m.copied
}

// RunResult shows the end-of-run screen and returns the player's answer.
func RunResult(opts ResultOptions, programOpts ...tea.ProgramOption) (bool, error) {
	model := NewResultModel(opts)

	p := tea.NewProgram(
		model,
		append([]tea.ProgramOption{tea.WithAltScreen()}, programOpts...)...,
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ResultModel)
	if !ok {
		return false, nil
	}
	return m.PlayAgain(), nil
}
