package game

import "math/rand"

// GameState holds the snake body, the food and the travel direction. Only
// the game loop goroutine touches it; everything the UI sees goes out as a
// Snapshot.
type GameState struct {
	fieldSize Size
	// body[0] is the head, body[len-1] the tail
	body []Coord
	food Coord
	dir  Direction
}

// Snapshot is a detached copy of the state, safe to hand across channels.
type Snapshot struct {
	FieldSize Size
	Body      []Coord
	Food      Coord
	Dir       Direction
	Score     int
}

func NewGameState(fieldSize Size) *GameState {
	return &GameState{
		fieldSize: fieldSize,
		body:      []Coord{{X: 4, Y: 2}, {X: 3, Y: 2}, {X: 2, Y: 2}},
		food:      Coord{X: 10, Y: 10},
		dir:       DirRight,
	}
}

// Score counts the cells grown beyond the starting length.
func (gs *GameState) Score() int {
	return len(gs.body) - InitialSnakeLength
}

// SetDirection steers the snake. A turn straight back into the neck is
// ignored; any other direction takes effect on the next tick.
func (gs *GameState) SetDirection(d Direction) {
	if d == gs.dir.Opposite() {
		return
	}
	gs.dir = d
}

// Advance moves the snake one cell and reports whether it survived the
// step. The wall check runs before the body mutates, so a dead state still
// shows the last live position. The self-collision check runs after the
// head push and tail pop, so entering the cell the tail just vacated is
// a legal move.
func (gs *GameState) Advance() bool {
	head := gs.body[0].Adjacent(gs.dir)

	if !gs.isInnerField(head) {
		return false
	}

	gs.body = append([]Coord{head}, gs.body...)
	if head == gs.food {
		// grew: tail stays, food moves
		if !gs.placeFood() {
			// the snake covers every interior cell
			return false
		}
	} else {
		gs.body = gs.body[:len(gs.body)-1]
	}

	for _, c := range gs.body[1:] {
		if c == head {
			return false
		}
	}

	return true
}

// Snapshot clones the state for rendering. The body slice is copied so the
// loop and the UI never share memory.
func (gs *GameState) Snapshot() Snapshot {
	body := make([]Coord, len(gs.body))
	copy(body, gs.body)
	return Snapshot{
		FieldSize: gs.fieldSize,
		Body:      body,
		Food:      gs.food,
		Dir:       gs.dir,
		Score:     gs.Score(),
	}
}

// isInnerField reports whether c lies strictly inside the wall border.
func (gs *GameState) isInnerField(c Coord) bool {
	return c.X >= 1 && c.X <= gs.fieldSize.Width-2 &&
		c.Y >= 1 && c.Y <= gs.fieldSize.Height-2
}

// placeFood moves the food to a uniformly random free interior cell.
// Random draws are capped; on a crowded board it falls back to collecting
// the free cells and picking one, so placement always terminates. Returns
// false when no free cell is left.
func (gs *GameState) placeFood() bool {
	min := Coord{X: 1, Y: 1}
	max := Coord{X: gs.fieldSize.Width - 2, Y: gs.fieldSize.Height - 2}

	occupied := make(map[Coord]struct{}, len(gs.body))
	for _, c := range gs.body {
		occupied[c] = struct{}{}
	}

	for i := 0; i < foodSampleLimit; i++ {
		candidate := RandCoord(min, max)
		if _, taken := occupied[candidate]; !taken {
			gs.food = candidate
			return true
		}
	}

	var free []Coord
	for y := min.Y; y <= max.Y; y++ {
		for x := min.X; x <= max.X; x++ {
			c := Coord{X: x, Y: y}
			if _, taken := occupied[c]; !taken {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		return false
	}
	gs.food = free[rand.Intn(len(free))]
	return true
}
