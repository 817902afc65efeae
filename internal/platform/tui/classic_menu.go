package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pacterm/pacterm/internal/config"
	"github.com/pacterm/pacterm/internal/core"
	"github.com/pacterm/pacterm/internal/games/pacman"
)

// ClassicSelection holds the user's choices from the classic mode menu.
type ClassicSelection struct {
	Level      int // 0 = start from beginning, 1-based otherwise
	Difficulty config.DifficultyPreset
}

var difficultyPresets = []config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
	config.DifficultyFixed,
}

// ClassicMenuModel lets users pick a starting level and difficulty before
// a campaign run.
type ClassicMenuModel struct {
	cursor          int
	levelCursor     int
	difficultyIndex int
	inLevelSelect   bool
	width           int
	height          int
	keyMapper       *KeyMapper
	selection       ClassicSelection
	choosing        bool
	quitting        bool
	back            bool
}

// NewClassicMenuModel creates a new classic campaign menu model.
func NewClassicMenuModel(width, height int) ClassicMenuModel {
	return ClassicMenuModel{
		cursor:          0,
		difficultyIndex: 1, // normal
		width:           width,
		height:          height,
		keyMapper:       NewKeyMapper(),
		choosing:        true,
	}
}

// Init initializes the model.
func (m ClassicMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m ClassicMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

func (m ClassicMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if m.inLevelSelect {
		return m.handleLevelSelectKey(action)
	}
	return m.handleMainKey(action)
}

func (m ClassicMenuModel) handleMainKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < 2 { // 3 options: Start, Select Level, Difficulty
			m.cursor++
		}
	case MenuActionSelect:
		switch m.cursor {
		case 0: // Start campaign
			m.choosing = false
			m.selection = ClassicSelection{
				Level:      0,
				Difficulty: difficultyPresets[m.difficultyIndex],
			}
			return m, tea.Quit
		case 1: // Select Level
			m.inLevelSelect = true
			m.levelCursor = 0
		case 2: // Cycle difficulty
			m.difficultyIndex = (m.difficultyIndex + 1) % len(difficultyPresets)
		}
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

func (m ClassicMenuModel) handleLevelSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	levelCount := pacman.LevelCount()

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.levelCursor > 0 {
			m.levelCursor--
		}
	case MenuActionDown:
		if m.levelCursor < levelCount-1 {
			m.levelCursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection = ClassicSelection{
			Level:      m.levelCursor + 1, // 1-indexed
			Difficulty: difficultyPresets[m.difficultyIndex],
		}
		return m, tea.Quit
	case MenuActionBack:
		m.inLevelSelect = false
	}

	return m, nil
}

// View renders the campaign menu.
func (m ClassicMenuModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inLevelSelect {
		return m.viewLevelSelect()
	}
	return m.viewMain()
}

func (m ClassicMenuModel) viewMain() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("C L A S S I C", m.width))
	b.WriteString("\n\n")

	options := []string{
		fmt.Sprintf("Start Campaign (%d levels)", pacman.LevelCount()),
		"Select Level...",
		fmt.Sprintf("Difficulty: %s", difficultyPresets[m.difficultyIndex]),
	}

	for i, opt := range options {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, opt), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

func (m ClassicMenuModel) viewLevelSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("SELECT LEVEL", m.width))
	b.WriteString("\n\n")

	for i, name := range pacman.LevelNames() {
		cursor := "  "
		if i == m.levelCursor {
			cursor = "> "
		}

		line := fmt.Sprintf("%s%2d. %s", cursor, i+1, name)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m ClassicMenuModel) Selected() *ClassicSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m ClassicMenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m ClassicMenuModel) WantsBack() bool {
	return m.back
}

// RunClassicMenu runs the campaign setup menu and returns the selection.
// A nil selection means the user backed out or quit.
func RunClassicMenu(cfg core.RuntimeConfig) (*ClassicSelection, core.RuntimeConfig, error) {
	model := NewClassicMenuModel(cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, cfg, err
	}

	m, ok := finalModel.(ClassicMenuModel)
	if !ok {
		return nil, cfg, nil
	}

	if m.IsQuitting() || m.WantsBack() {
		return nil, cfg, nil
	}

	return m.Selected(), cfg, nil
}
