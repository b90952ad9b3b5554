package game

// The game loop consumes one ordered queue fed by every producer: the tick
// goroutine, the key handler and the quit path. Whoever enqueued first is
// applied first, so a steer that lands before a tick moves the snake on
// that very tick. Messages are tea.Msg-shaped on both sides of the loop so
// the UI speaks a single vocabulary.

// DirectionMsg asks the loop to steer the snake.
type DirectionMsg struct {
	Dir Direction
}

// TickMsg advances the simulation by one step.
type TickMsg struct{}

// QuitMsg ends the game without a collision.
type QuitMsg struct{}

// GameTickMsg carries the frame to draw after a completed tick.
type GameTickMsg struct {
	Frame Snapshot
}

// GameOverMsg is the loop's last word. Died is false when the player quit.
type GameOverMsg struct {
	Score int
	Died  bool
}
