package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// --- Final Score Banner ---

var (
	gameOverTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("9"))

	finalScoreStyle = lipgloss.NewStyle().Bold(true)
)

// RenderFinalScore builds the line the runner prints after the alt screen
// is torn down, so the result of the run survives in the scrollback. Only
// a death gets the banner; quitting prints the score alone.
func RenderFinalScore(score int, died bool) string {
	scoreLine := finalScoreStyle.Render(fmt.Sprintf("score: %d", score))
	if !died {
		return scoreLine
	}
	return gameOverTitleStyle.Render("GAME OVER") + "  " + scoreLine
}
