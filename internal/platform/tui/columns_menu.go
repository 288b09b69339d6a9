package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-columns/internal/core"
	"github.com/vovakirdan/tui-columns/internal/games/columns"
	"github.com/vovakirdan/tui-columns/internal/registry"
)

// ColumnsSelection holds the user's selection from the Columns menu.
type ColumnsSelection struct {
	GameID string
	Level  int // 0 = start from beginning, 1-10 = specific level
}

// Start creates the game and applies the selected start level to it.
func (s ColumnsSelection) Start() (registry.Game, error) {
	game, err := registry.Create(s.GameID)
	if err != nil {
		return nil, err
	}
	if ls, ok := game.(registry.LevelStarter); ok && s.Level > 0 {
		ls.SetStartLevel(s.Level)
	}
	return game, nil
}

var columnsModes = []string{
	"Campaign (10 levels)",
	"Endless Mode",
	"Select Level...",
}

// ColumnsModeModel lets users choose game mode and starting level.
type ColumnsModeModel struct {
	cursor        int
	levelCursor   int
	inLevelSelect bool
	width         int
	height        int
	keyMapper     *KeyMapper
	selection     ColumnsSelection
	choosing      bool
	quitting      bool
	back          bool
}

// NewColumnsModeModel creates a new mode selection model.
func NewColumnsModeModel(width, height int) ColumnsModeModel {
	return ColumnsModeModel{
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m ColumnsModeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m ColumnsModeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action := m.keyMapper.MapKeyToMenuAction(msg)
		if m.inLevelSelect {
			return m.handleLevelSelectKey(action)
		}
		return m.handleModeSelectKey(action)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m ColumnsModeModel) handleModeSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(columnsModes)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		switch m.cursor {
		case 0:
			return m.choose(ColumnsSelection{GameID: columns.IDCampaign})
		case 1:
			return m.choose(ColumnsSelection{GameID: columns.IDEndless})
		case 2:
			m.inLevelSelect = true
			m.levelCursor = 0
		}
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

func (m ColumnsModeModel) handleLevelSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.levelCursor > 0 {
			m.levelCursor--
		}
	case MenuActionDown:
		if m.levelCursor < columns.LevelCount()-1 {
			m.levelCursor++
		}
	case MenuActionSelect:
		return m.choose(ColumnsSelection{GameID: columns.IDCampaign, Level: m.levelCursor + 1})
	case MenuActionBack:
		m.inLevelSelect = false
	}

	return m, nil
}

func (m ColumnsModeModel) choose(sel ColumnsSelection) (tea.Model, tea.Cmd) {
	m.choosing = false
	m.selection = sel
	return m, tea.Quit
}

// View renders the mode/level selection.
func (m ColumnsModeModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inLevelSelect {
		return m.viewLevelSelect()
	}
	return m.viewModeSelect()
}

func (m ColumnsModeModel) viewModeSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("C O L U M N S", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select game mode:", m.width))
	b.WriteString("\n\n")

	for i, mode := range columnsModes {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+mode, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(columns.New().Controls(), m.width))

	return b.String()
}

func (m ColumnsModeModel) viewLevelSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("SELECT LEVEL", m.width))
	b.WriteString("\n\n")

	for i := range columns.LevelCount() {
		level := columns.GetLevel(i)
		cursor := "  "
		if i == m.levelCursor {
			cursor = "> "
		}

		line := fmt.Sprintf("%s%2d. %-14s Clear %3d  Drop %2d", cursor, level.ID, level.Name, level.Target, level.DropEvery)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m ColumnsModeModel) Selected() *ColumnsSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m ColumnsModeModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m ColumnsModeModel) WantsBack() bool {
	return m.back
}

// RunColumnsModeSelector runs the mode selection and returns the selection.
// A nil selection with quit unset means the player backed out.
func RunColumnsModeSelector(cfg core.RuntimeConfig) (sel *ColumnsSelection, quit bool, err error) {
	p := tea.NewProgram(
		NewColumnsModeModel(cfg.ScreenW, cfg.ScreenH),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, false, err
	}

	m, ok := finalModel.(ColumnsModeModel)
	if !ok || m.IsQuitting() {
		return nil, true, nil
	}
	if m.WantsBack() {
		return nil, false, nil
	}

	return m.Selected(), false, nil
}
