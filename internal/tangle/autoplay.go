package tangle

import (
	"errors"
	"fmt"
)

// Policy decides how to turn the current tile before each move.
type Policy interface {
	// Choose returns how many left rotations to apply before moving.
	Choose(s *Session) int
	Name() string
}

// StraightPolicy never rotates.
type StraightPolicy struct{}

func (StraightPolicy) Choose(*Session) int { return 0 }
func (StraightPolicy) Name() string { return "straight" }

// GreedyPolicy picks the orientation with the longest lookahead chain. Ties
// go to the fewest rotations.
type GreedyPolicy struct {
	// Horizon caps each lookahead; zero means unlimited.
	Horizon int
}

func (GreedyPolicy) Name() string { return "greedy" }

func (gp GreedyPolicy) Choose(s *Session) int {
	if !s.CanRotate() {
		return 0
	}
	t := s.tile
	orig := t.Orientation()
	defer t.SetOrientation(orig)

	best, bestLen := 0, -1
	for k := 0; k < NumDirections; k++ {
		t.SetOrientation(Direction(int(orig) + k))
		pv := walk(s.board, t, s.pos, gp.Horizon)
		n := len(pv.Steps)
		// A chain that stays on the board is worth one more step than one
		// that walks off with the same length.
		if pv.Outcome != OutcomeOffGrid {
			n++
		}
		if n > bestLen {
			best, bestLen = k, n
		}
	}
	return best
}

// PolicyByName returns the named policy.
func PolicyByName(name string) (Policy, error) {
	switch name {
	case "straight":
		return StraightPolicy{}, nil
	case "greedy":
		return GreedyPolicy{Horizon: 64}, nil
	default:
		return nil, fmt.Errorf("unknown policy %q (supported: straight, greedy)", name)
	}
}

// Autoplay plays s with p until the game ends or maxTurns moves have been
// made. maxTurns <= 0 means no cap.
func Autoplay(s *Session, p Policy, maxTurns int) (Result, error) {
	for !s.Over() {
		if maxTurns > 0 && s.Turn() >= maxTurns {
			r := s.Result()
			r.Outcome = OutcomeLimit
			r.Description = describeResult(r)
			return r, nil
		}
		steps := p.Choose(s) % NumDirections
		for k := 0; k < steps; k++ {
			if err := s.RotateLeft(); err != nil {
				if errors.Is(err, ErrTileLocked) {
					break
				}
				return s.Result(), fmt.Errorf("autoplay %s: %w", p.Name(), err)
			}
		}
		if err := s.Move(); err != nil {
			return s.Result(), fmt.Errorf("autoplay %s: %w", p.Name(), err)
		}
	}
	return s.Result(), nil
}
