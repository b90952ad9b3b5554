package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/sinotca529/snake-game/internal/game"
)

// --- Key Bindings ---

// keyMap binds the four steering keys and quit. Arrow keys plus the vi
// home row; everything else is ignored.
type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Quit  key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Quit},
	}
}

var defaultKeyMap = keyMap{
	Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
	Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
	Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// GameModel is the TUI model for a running game. It forwards key presses
// to the game loop and draws whatever frame the loop last published; game
// state is never touched directly from here.
type GameModel struct {
	gameManager *game.GameManager

	frame game.Snapshot
	keys  keyMap
	help  help.Model

	screenWidth  int
	screenHeight int

	// filled in by the final GameOverMsg, read by the runner after the
	// program exits
	FinalScore int
	Died       bool
}

// NewGameModel seeds the model with the pre-loop snapshot so the first
// View has a frame to draw. Construct it before starting the game loop.
func NewGameModel(gm *game.GameManager) GameModel {
	return GameModel{
		gameManager: gm,
		frame:       gm.Snapshot(),
		keys:        defaultKeyMap,
		help:        help.New(),
	}
}

func (m GameModel) Init() tea.Cmd {
	return m.listenForGameUpdates()
}

// listenForGameUpdates relays the next message from the game loop into the
// TUI loop. Update re-arms it after every relayed message.
func (m GameModel) listenForGameUpdates() tea.Cmd {
	return func() tea.Msg {
		return <-m.gameManager.UpdateChannel
	}
}

func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			m.gameManager.Send(game.DirectionMsg{Dir: game.DirUp})
		case key.Matches(msg, m.keys.Down):
			m.gameManager.Send(game.DirectionMsg{Dir: game.DirDown})
		case key.Matches(msg, m.keys.Left):
			m.gameManager.Send(game.DirectionMsg{Dir: game.DirLeft})
		case key.Matches(msg, m.keys.Right):
			m.gameManager.Send(game.DirectionMsg{Dir: game.DirRight})
		case key.Matches(msg, m.keys.Quit):
			// the loop answers with a GameOverMsg, which quits the TUI
			m.gameManager.Send(game.QuitMsg{})
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.screenWidth = msg.Width
		m.screenHeight = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case game.GameTickMsg:
		m.frame = msg.Frame
		return m, m.listenForGameUpdates()

	case game.GameOverMsg:
		log.Info("leaving game screen", "score", msg.Score, "died", msg.Died)
		m.FinalScore = msg.Score
		m.Died = msg.Died
		return m, tea.Quit
	}

	return m, nil
}

func (m GameModel) View() string {
	view := renderFrame(m.frame) + "\n" + m.help.View(m.keys)

	if m.screenWidth > 0 && m.screenHeight > 0 {
		return lipgloss.Place(m.screenWidth, m.screenHeight, lipgloss.Center, lipgloss.Center, view)
	}
	return view
}
