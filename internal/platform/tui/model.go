// Package tui runs Gem Hunters as a Bubble Tea program, locally or over SSH.
package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gem-hunters/internal/config"
	"github.com/vovakirdan/gem-hunters/internal/core"
	"github.com/vovakirdan/gem-hunters/internal/games/gemhunt"
	"github.com/vovakirdan/gem-hunters/internal/storage"
)

// boardAreaHeight is the number of screen rows used by the HUD and board.
const boardAreaHeight = 3 + 1 + gemhunt.BoardHeight

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Options are the collaborators of a Model. All fields are optional.
type Options struct {
	Store  *storage.Store // Finished matches are saved here when set
	Config config.Config
	Logger *log.Logger
}

// Model is the Bubble Tea model for a hot-seat game on one terminal.
type Model struct {
	game     *gemhunt.Game
	screen   *core.Screen
	store    *storage.Store
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	showHelp bool
	render   gemhunt.RenderOptions
	logger   *log.Logger
	status   []string
	isError  bool
	saved    bool // Whether the current game has been saved
	quitting bool
}

// NewModel creates a model and deals the first board.
func NewModel(cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	gameCfg := opts.Config
	if len(gameCfg.Keys.Up) == 0 {
		gameCfg = config.Default()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:     gemhunt.New(cfg, gemhunt.WithLogger(logger)),
		screen:   core.NewScreen(cfg.ScreenW, boardAreaHeight),
		store:    opts.Store,
		config:   cfg,
		keys:     NewKeyMap(gameCfg.Keys),
		help:     help.New(),
		showHelp: gameCfg.Display.ShowHelp,
		render:   gemhunt.RenderOptions{TrackPlayers: gameCfg.Display.TrackPlayers},
		logger:   logger,
		status:   []string{turnPrompt(gemhunt.Player1)},
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, boardAreaHeight)
		m.help.Width = msg.Width
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	if key.Matches(msg, m.keys.Restart) {
		if m.game.IsGameOver() {
			m.restart()
		}
		return m, nil
	}

	if m.game.IsGameOver() {
		return m, nil
	}

	dir := m.keys.Direction(msg)
	if dir == core.DirNone && msg.Type != tea.KeyRunes {
		// Unbound special keys are not move attempts.
		return m, nil
	}

	res := m.game.Play(dir)
	m.status, m.isError = describe(res)

	if m.game.IsGameOver() {
		m.status = m.game.Result().Summary()
		m.isError = false
		m.saveMatch()
	}

	return m, nil
}

// restart deals a new board with a fresh seed.
func (m *Model) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.saved = false
	m.status = []string{turnPrompt(m.game.Current().ID())}
	m.isError = false
}

// saveMatch records the finished game once. Storage errors do not stop play.
func (m *Model) saveMatch() {
	if m.saved || m.store == nil {
		return
	}
	m.saved = true

	id, err := m.store.SaveMatch(storage.RecordFromResult(m.game.Result()))
	if err != nil {
		m.logger.Warn("could not save match", "error", err)
		return
	}
	m.logger.Debug("match saved", "id", id)
}

func turnPrompt(id gemhunt.PlayerID) string {
	return fmt.Sprintf("P%d, enter move (U/D/L/R)", int(id))
}

// describe turns a move attempt into status lines for the player.
func describe(res gemhunt.TurnResult) (lines []string, isError bool) {
	if !res.Accepted {
		if errors.Is(res.Err, gemhunt.ErrUnrecognizedDirection) {
			return []string{gemhunt.MessageUnrecognized, gemhunt.MessageBadMove}, true
		}
		return []string{gemhunt.MessageBadMove}, true
	}

	moved := fmt.Sprintf("P%d moved %s to %s", int(res.Player), strings.ToLower(res.Direction.String()), res.To)
	if res.Collected {
		moved += " and found a gem!"
	}
	next := gemhunt.Player1
	if res.Player == gemhunt.Player1 {
		next = gemhunt.Player2
	}
	return []string{moved, turnPrompt(next)}, false
}

// View renders the board, the status lines and the help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen, m.render)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n\n")

	style := statusStyle
	if m.isError {
		style = errorStyle
	}
	for _, line := range m.status {
		b.WriteString(centerText(style.Render(line), m.screen.Width(), len(line)))
		b.WriteString("\n")
	}

	if m.game.IsGameOver() {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(centerText(
			fmt.Sprintf("%s: new game  %s: quit", m.keys.Restart.Help().Key, m.keys.Quit.Help().Key),
			m.screen.Width(), -1,
		)))
		b.WriteString("\n")
	} else if m.showHelp {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(m.help.View(m.keys)))
		b.WriteString("\n")
	}

	return b.String()
}

// centerText pads text on the left to center it in width columns.
// visible is the printed length of text, or -1 to use len(text).
func centerText(text string, width, visible int) string {
	if visible < 0 {
		visible = len(text)
	}
	if visible >= width {
		return text
	}
	return strings.Repeat(" ", (width-visible)/2) + text
}

// Game returns the running game.
func (m Model) Game() *gemhunt.Game {
	return m.game
}

// Status returns the status lines shown under the board.
func (m Model) Status() []string {
	return m.status
}

// Saved reports whether the finished game has been recorded.
func (m Model) Saved() bool {
	return m.saved
}

// Run starts the Bubble Tea program with a new model.
func Run(cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(cfg, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
