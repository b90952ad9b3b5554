package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/sinotca529/snake-game/internal/game"
	"github.com/sinotca529/snake-game/internal/ui"
)

func main() {
	// the TUI owns the terminal, so logs stay off it unless a debug file
	// is asked for
	if os.Getenv("SNAKE_DEBUG") != "" {
		f, err := tea.LogToFile("snake-debug.log", "snake")
		if err != nil {
			fmt.Fprintln(os.Stderr, "could not open debug log:", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetOutput(io.Discard)
	}

	gameManager := game.NewGameManager()

	// the model takes its first frame before the loop starts mutating
	model := ui.NewGameModel(gameManager)
	go gameManager.StartGameLoop()

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error running snake:", err)
		os.Exit(1)
	}

	if gameModel, ok := finalModel.(ui.GameModel); ok {
		fmt.Println(ui.RenderFinalScore(gameModel.FinalScore, gameModel.Died))
	}
}
