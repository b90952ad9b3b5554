package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sinotca529/snake-game/internal/game"
)

const testTimeout = 2 * time.Second

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyPressSteersTheSnake(t *testing.T) {
	gm := game.NewGameManager()
	model := NewGameModel(gm)
	go gm.StartGameLoop()

	model.Update(keyPress('k')) // vi up

	deadline := time.After(testTimeout)
	for {
		select {
		case msg := <-gm.UpdateChannel:
			if tick, ok := msg.(game.GameTickMsg); ok {
				if head := tick.Frame.Body[0]; head != (game.Coord{X: 4, Y: 1}) {
					t.Fatalf("head after up and first tick = %v, want {4 1}", head)
				}
				gm.Send(game.QuitMsg{})
				return
			}
		case <-deadline:
			t.Fatal("no frame arrived from the game loop")
		}
	}
}

func TestArrowKeySteersTheSnake(t *testing.T) {
	gm := game.NewGameManager()
	model := NewGameModel(gm)
	go gm.StartGameLoop()

	model.Update(tea.KeyMsg{Type: tea.KeyDown})

	deadline := time.After(testTimeout)
	for {
		select {
		case msg := <-gm.UpdateChannel:
			if tick, ok := msg.(game.GameTickMsg); ok {
				if head := tick.Frame.Body[0]; head != (game.Coord{X: 4, Y: 3}) {
					t.Fatalf("head after down and first tick = %v, want {4 3}", head)
				}
				gm.Send(game.QuitMsg{})
				return
			}
		case <-deadline:
			t.Fatal("no frame arrived from the game loop")
		}
	}
}

func TestQuitKeyEndsTheGame(t *testing.T) {
	gm := game.NewGameManager()
	model := NewGameModel(gm)
	go gm.StartGameLoop()

	model.Update(keyPress('q'))

	deadline := time.After(testTimeout)
	for {
		select {
		case msg := <-gm.UpdateChannel:
			over, ok := msg.(game.GameOverMsg)
			if !ok {
				continue // frames that raced in before the quit
			}

			updated, cmd := model.Update(over)
			gameModel, ok := updated.(GameModel)
			if !ok {
				t.Fatalf("Update returned %T, want GameModel", updated)
			}
			if gameModel.Died {
				t.Error("quit was flagged as a death")
			}
			if cmd == nil {
				t.Fatal("GameOverMsg produced no command")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Error("GameOverMsg did not quit the program")
			}
			return
		case <-deadline:
			t.Fatal("no GameOverMsg after quit")
		}
	}
}

func TestGameOverRecordsFinalResult(t *testing.T) {
	model := NewGameModel(game.NewGameManager())

	updated, cmd := model.Update(game.GameOverMsg{Score: 5, Died: true})
	gameModel := updated.(GameModel)

	if gameModel.FinalScore != 5 {
		t.Errorf("final score = %d, want 5", gameModel.FinalScore)
	}
	if !gameModel.Died {
		t.Error("death was not recorded")
	}
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("command is not tea.Quit")
	}
}

func TestTickMsgReplacesFrameAndRearms(t *testing.T) {
	model := NewGameModel(game.NewGameManager())

	frame := testFrame()
	frame.Body[0] = game.Coord{X: 7, Y: 7}
	frame.Score = 3

	updated, cmd := model.Update(game.GameTickMsg{Frame: frame})
	gameModel := updated.(GameModel)

	if gameModel.frame.Body[0] != (game.Coord{X: 7, Y: 7}) {
		t.Errorf("frame head = %v, want {7 7}", gameModel.frame.Body[0])
	}
	if cmd == nil {
		t.Error("tick did not re-arm the update listener")
	}
	if !strings.Contains(gameModel.View(), "score: 3") {
		t.Error("view does not show the new frame's score")
	}
}

func TestViewShowsFrameAndHelp(t *testing.T) {
	model := NewGameModel(game.NewGameManager())

	out := model.View()
	if !strings.Contains(out, "score: 0") {
		t.Error("view is missing the score line")
	}
	if !strings.Contains(out, "quit") {
		t.Error("view is missing the help footer")
	}
}

func TestWindowSizeIsTracked(t *testing.T) {
	model := NewGameModel(game.NewGameManager())

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 50})
	gameModel := updated.(GameModel)

	if gameModel.screenWidth != 120 || gameModel.screenHeight != 50 {
		t.Errorf("screen size = %dx%d, want 120x50", gameModel.screenWidth, gameModel.screenHeight)
	}
}
