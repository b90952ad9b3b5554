package game

import "time"

const (
	GameTickDuration   = 150 * time.Millisecond
	FieldWidth         = 20
	FieldHeight        = 20
	InitialSnakeLength = 3

	// rejection-sampling cap before food placement falls back to a
	// deterministic scan of the free cells
	foodSampleLimit = 256

	eventQueueSize  = 16
	updateQueueSize = 4
)
