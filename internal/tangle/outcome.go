package tangle

import (
	"fmt"

	"github.com/google/uuid"
)

// Outcome describes why a game stopped, or that it has not.
type Outcome int

const (
	OutcomeInProgress Outcome = iota
	OutcomeOffGrid
	OutcomeDeadEnd
	// OutcomeLimit only appears in previews and autoplay runs that hit their
	// step cap.
	OutcomeLimit
)

func (o Outcome) String() string {
	switch o {
	case OutcomeInProgress:
		return "in_progress"
	case OutcomeOffGrid:
		return "off_grid"
	case OutcomeDeadEnd:
		return "dead_end"
	case OutcomeLimit:
		return "limit"
	default:
		return "unknown"
	}
}

// Message is the line shown to the player when the game ends this way.
func (o Outcome) Message() string {
	switch o {
	case OutcomeOffGrid:
		return "Out of Bounds."
	case OutcomeDeadEnd:
		return "No more paths."
	case OutcomeLimit:
		return "Turn limit reached."
	default:
		return ""
	}
}

// Terminal reports whether no more moves are accepted.
func (o Outcome) Terminal() bool {
	return o != OutcomeInProgress
}

// Result summarises a finished (or abandoned) session.
type Result struct {
	ID          uuid.UUID
	Seed        int64
	Outcome     Outcome
	Score       int
	Moves       int
	Rotations   int
	TilesUsed   int
	Description string
}

func (r Result) String() string {
	return fmt.Sprintf("%s seed=%d score=%d outcome=%s rotations=%d tiles=%d",
		r.ID, r.Seed, r.Score, r.Outcome, r.Rotations, r.TilesUsed)
}

func describeResult(r Result) string {
	switch r.Outcome {
	case OutcomeOffGrid:
		return fmt.Sprintf("walked off the board after %d moves", r.Moves)
	case OutcomeDeadEnd:
		return fmt.Sprintf("ran into a used path after %d moves", r.Moves)
	case OutcomeLimit:
		return fmt.Sprintf("stopped at the turn limit after %d moves", r.Moves)
	default:
		return fmt.Sprintf("still playing after %d moves", r.Moves)
	}
}
