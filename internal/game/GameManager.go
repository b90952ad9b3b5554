package game

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

// GameManager runs the game loop. It owns the GameState and drains the
// event queue one message at a time, so state is only ever mutated from a
// single goroutine and needs no locks.
type GameManager struct {
	state *GameState

	events chan tea.Msg
	done   chan struct{}

	// UpdateChannel carries render frames and the final game-over
	// notice out to the UI.
	UpdateChannel chan tea.Msg

	tickEvery time.Duration
	isRunning bool
}

func NewGameManager() *GameManager {
	return &GameManager{
		state:         NewGameState(Size{Width: FieldWidth, Height: FieldHeight}),
		events:        make(chan tea.Msg, eventQueueSize),
		done:          make(chan struct{}),
		UpdateChannel: make(chan tea.Msg, updateQueueSize),
		tickEvery:     GameTickDuration,
	}
}

// Snapshot returns the current state for the first render. Take it before
// StartGameLoop; after that, frames arrive on UpdateChannel.
func (gm *GameManager) Snapshot() Snapshot {
	return gm.state.Snapshot()
}

// Send enqueues an event for the loop. Once the loop has stopped the event
// is dropped; producers never block on or error about a consumer that is
// already gone.
func (gm *GameManager) Send(msg tea.Msg) {
	select {
	case gm.events <- msg:
	case <-gm.done:
	}
}

// StartGameLoop consumes events until the snake dies, the board fills up
// or a QuitMsg arrives. Run it on its own goroutine.
func (gm *GameManager) StartGameLoop() {
	if gm.isRunning {
		return
	}
	gm.isRunning = true

	log.Debug("game loop started", "tick", gm.tickEvery)
	go gm.runTicker()

	for {
		switch msg := (<-gm.events).(type) {
		case DirectionMsg:
			gm.state.SetDirection(msg.Dir)
		case TickMsg:
			if !gm.state.Advance() {
				gm.finish(true)
				return
			}
			gm.UpdateChannel <- GameTickMsg{Frame: gm.state.Snapshot()}
		case QuitMsg:
			gm.finish(false)
			return
		}
	}
}

// finish releases the producers and posts the final result. Death and quit
// share this path.
func (gm *GameManager) finish(died bool) {
	close(gm.done)
	score := gm.state.Score()
	log.Info("game over", "score", score, "died", died)
	gm.UpdateChannel <- GameOverMsg{Score: score, Died: died}
	log.Debug("game loop stopped")
}

// runTicker enqueues a TickMsg every tick interval until the loop stops.
// Ticks ride the same queue as key events, so a tick never overtakes a
// steer that arrived before it.
func (gm *GameManager) runTicker() {
	ticker := time.NewTicker(gm.tickEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			gm.Send(TickMsg{})
		case <-gm.done:
			return
		}
	}
}
