package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sinotca529/snake-game/internal/game"
)

// --- Styling Definitions ---

var (
	scoreStyle = lipgloss.NewStyle().Bold(true)
	wallStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240")) // gray border
	snakeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("40"))  // green body
	headStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true)
	foodStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203")) // red food

	// head runes based on travel direction
	headRunes = map[game.Direction]rune{
		game.DirUp:    '^',
		game.DirDown:  'v',
		game.DirLeft:  '<',
		game.DirRight: '>',
	}
)

const (
	wallCornerRune = '+'
	wallHorizRune  = '-'
	wallVertRune   = '|'
	bodyRune       = 'x'
	foodRune       = '@'
	blankRune      = ' '
)

// buildCharGrid lays a frame out as a plain rune matrix, grid[y][x].
// Styling is applied later so the geometry stays directly comparable.
func buildCharGrid(frame game.Snapshot) [][]rune {
	width, height := frame.FieldSize.Width, frame.FieldSize.Height

	grid := make([][]rune, height)
	for y := range grid {
		row := make([]rune, width)
		for x := range row {
			switch {
			case (y == 0 || y == height-1) && (x == 0 || x == width-1):
				row[x] = wallCornerRune
			case y == 0 || y == height-1:
				row[x] = wallHorizRune
			case x == 0 || x == width-1:
				row[x] = wallVertRune
			default:
				row[x] = blankRune
			}
		}
		grid[y] = row
	}

	for i, c := range frame.Body {
		if i == 0 {
			grid[c.Y][c.X] = headRunes[frame.Dir]
		} else {
			grid[c.Y][c.X] = bodyRune
		}
	}
	grid[frame.Food.Y][frame.Food.X] = foodRune

	return grid
}

// renderFrame draws the complete frame: the score line on top, then the
// styled grid. Every frame is rewritten whole; nothing is diffed.
func renderFrame(frame game.Snapshot) string {
	grid := buildCharGrid(frame)

	lines := make([]string, 0, len(grid)+1)
	lines = append(lines, scoreStyle.Render(fmt.Sprintf("score: %d", frame.Score)))

	var row strings.Builder
	for _, gridRow := range grid {
		row.Reset()
		for _, r := range gridRow {
			switch r {
			case blankRune:
				row.WriteRune(r)
			case wallCornerRune, wallHorizRune, wallVertRune:
				row.WriteString(wallStyle.Render(string(r)))
			case bodyRune:
				row.WriteString(snakeStyle.Render(string(r)))
			case foodRune:
				row.WriteString(foodStyle.Render(string(r)))
			default:
				// only the head glyphs are left
				row.WriteString(headStyle.Render(string(r)))
			}
		}
		lines = append(lines, row.String())
	}

	return strings.Join(lines, "\n")
}
