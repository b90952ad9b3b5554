package game

import (
	"fmt"
	"math/rand"
)

// Direction is one of the four ways the snake can travel. Screen
// coordinates: x grows right, y grows down.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Opposite returns the reverse direction, used to reject turns that would
// fold the snake back onto its own neck.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return d
	}
}

// Delta returns the per-step cell offset for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Size is the full grid dimensions, wall border included.
type Size struct {
	Width  int
	Height int
}

// Coord is a cell position. Values outside the field are representable on
// purpose: stepping up from the top row goes negative, and the interior
// check reads that as a wall hit like any other out-of-range cell.
type Coord struct {
	X int
	Y int
}

// Adjacent returns the neighboring cell one step in the given direction.
func (c Coord) Adjacent(d Direction) Coord {
	dx, dy := d.Delta()
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// RandCoord draws a coordinate with each axis uniform over [min, max],
// both ends inclusive. An inverted range is a programmer error and panics.
func RandCoord(min, max Coord) Coord {
	if min.X > max.X || min.Y > max.Y {
		panic(fmt.Sprintf("game: RandCoord called with inverted range min=%v max=%v", min, max))
	}
	return Coord{
		X: min.X + rand.Intn(max.X-min.X+1),
		Y: min.Y + rand.Intn(max.Y-min.Y+1),
	}
}
