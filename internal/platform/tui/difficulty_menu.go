package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// difficultyOption is one row of the difficulty picker.
type difficultyOption struct {
	preset config.DifficultyPreset
	label  string
}

var difficultyOptions = []difficultyOption{
	{config.DifficultyEasy, "Easy"},
	{config.DifficultyNormal, "Normal"},
	{config.DifficultyHard, "Hard"},
	{config.DifficultyFixed, "Fixed speed"},
}

// DifficultyModel lets users choose a difficulty preset before a game.
type DifficultyModel struct {
	title     string
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selection config.DifficultyPreset
	choosing  bool
	quitting  bool
	back      bool
}

// NewDifficultyModel creates a difficulty picker for the named board.
// The cursor starts on the current preset when it is one of the options.
func NewDifficultyModel(title string, current config.DifficultyPreset, width, height int) DifficultyModel {
	cursor := 1 // Normal
	for i, opt := range difficultyOptions {
		if opt.preset == current {
			cursor = i
		}
	}

	return DifficultyModel{
		title:     title,
		cursor:    cursor,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m DifficultyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m DifficultyModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(difficultyOptions)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection = difficultyOptions[m.cursor].preset
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the difficulty selection.
func (m DifficultyModel) View() string {
	if m.quitting || !m.choosing || m.back {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(strings.ToUpper(m.title), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, opt := range difficultyOptions {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		speed := "configured speed"
		if interval := config.IntervalForPreset(opt.preset); interval > 0 {
			speed = fmt.Sprintf("%dms, speeds up", interval.Milliseconds())
		}
		line := fmt.Sprintf("%s%-12s %s", cursor, opt.label, speed)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	k := m.keyMapper.Menu
	b.WriteString(centerText(help.New().ShortHelpView([]key.Binding{k.Up, k.Down, k.Select, k.Back, k.Quit}), m.width))

	return b.String()
}

// Selected returns the chosen preset, or false if still choosing.
func (m DifficultyModel) Selected() (config.DifficultyPreset, bool) {
	if m.choosing {
		return "", false
	}
	return m.selection, true
}

// IsQuitting returns true if user wants to quit.
func (m DifficultyModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m DifficultyModel) WantsBack() bool {
	return m.back
}

// DifficultyResult holds the outcome of the difficulty picker.
type DifficultyResult struct {
	Preset config.DifficultyPreset
	Back   bool
	Quit   bool
}

// RunDifficultySelector runs the difficulty picker for the given board.
func RunDifficultySelector(title string, current config.DifficultyPreset, cfg core.RuntimeConfig) (DifficultyResult, error) {
	model := NewDifficultyModel(title, current, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return DifficultyResult{}, err
	}

	m, ok := finalModel.(DifficultyModel)
	if !ok || m.IsQuitting() {
		return DifficultyResult{Quit: true}, nil
	}
	if m.WantsBack() {
		return DifficultyResult{Back: true}, nil
	}

	preset, _ := m.Selected()
	return DifficultyResult{Preset: preset}, nil
}
