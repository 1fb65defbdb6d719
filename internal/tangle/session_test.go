package tangle

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// maxMoves bounds any game: every move consumes one of the 6 paths on a tile.
const maxMoves = DefaultBoardWidth * DefaultBoardHeight * 6

func playOut(t *testing.T, s *Session) int {
	t.Helper()
	moves := 0
	for !s.Over() {
		require.NoError(t, s.Move())
		moves++
		require.LessOrEqual(t, moves, maxMoves, "game did not terminate")
	}
	return moves
}

func TestNewSession_Defaults(t *testing.T) {
	s, err := NewSession(WithSeed(1))
	require.NoError(t, err)
	assert.Equal(t, 61, s.Board().Count())
	assert.Equal(t, Position(0), s.Position())
	require.NotNil(t, s.CurrentTile())
	assert.Equal(t, 4, s.CurrentTile().I())
	assert.Equal(t, 4, s.CurrentTile().J())
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, OutcomeInProgress, s.Outcome())
	assert.True(t, s.CanRotate())
	assert.Equal(t, int64(1), s.Seed())

	s.Board().Each(func(i, j int, tile *Tile) {
		assert.True(t, InHexMask(i, j, 9, 9, 3))
		assert.Len(t, tile.Paths(), 6)
		assert.Equal(t, i, tile.I())
		assert.Equal(t, j, tile.J())
	})
}

func TestNewSession_InvalidSize(t *testing.T) {
	_, err := NewSession(WithBoardSize(0, 9))
	assert.Error(t, err)
	_, err = NewSession(WithBoardSize(3, 3), WithCornerCut(5))
	assert.Error(t, err)
}

func TestNewSession_SameSeedSameBoard(t *testing.T) {
	a, err := NewSession(WithSeed(42))
	require.NoError(t, err)
	b, err := NewSession(WithSeed(42))
	require.NoError(t, err)
	a.Board().Each(func(i, j int, tile *Tile) {
		if diff := cmp.Diff(tile.Paths(), b.Board().TileAt(i, j).Paths()); diff != "" {
			t.Fatalf("tile %d,%d differs:\n%s", i, j, diff)
		}
	})
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestSession_PlayToEnd(t *testing.T) {
	for seed := int64(1); seed <= 40; seed++ {
		s, err := NewSession(WithSeed(seed))
		require.NoError(t, err)

		moves := playOut(t, s)
		assert.Equal(t, moves, s.Score(), "seed %d", seed)
		assert.Equal(t, moves, s.Log().CountCategory(CategoryMove, ""), "seed %d", seed)

		switch s.Outcome() {
		case OutcomeOffGrid:
			assert.Nil(t, s.CurrentTile(), "seed %d", seed)
		case OutcomeDeadEnd:
			require.NotNil(t, s.CurrentTile(), "seed %d", seed)
			assert.True(t, s.CurrentTile().IsPathTaken(s.Position()), "seed %d", seed)
		default:
			t.Fatalf("seed %d: unexpected outcome %s", seed, s.Outcome())
		}

		assert.ErrorIs(t, s.Move(), ErrSessionOver)
		assert.ErrorIs(t, s.RotateLeft(), ErrSessionOver)
		assert.Equal(t, moves, s.Score())

		end, ok := s.Log().LastOf(CategoryEnd, "")
		require.True(t, ok)
		assert.Equal(t, s.Outcome().String(), end.Key)

		r := s.Result()
		assert.Equal(t, moves, r.Score)
		assert.Equal(t, s.Outcome(), r.Outcome)
		assert.Equal(t, seed, r.Seed)
		assert.Positive(t, r.TilesUsed)
	}
}

func TestSession_MoveLocksTile(t *testing.T) {
	s, err := NewSession(WithSeed(3))
	require.NoError(t, err)
	start := s.CurrentTile()
	require.NoError(t, s.Move())
	assert.False(t, start.CanRotate())
	assert.Equal(t, 1, s.Score())
	if s.Over() {
		return
	}
	// A freshly entered tile is never the one just left.
	assert.NotSame(t, start, s.CurrentTile())
	assert.True(t, s.CanRotate())
	require.NoError(t, s.RotateLeft())
	require.NoError(t, s.RotateRight())
	assert.Equal(t, 2, s.Rotations())
	assert.Equal(t, 2, s.Log().CountCategory(CategoryRotate, ""))
}

func TestSession_RotateLockedTile(t *testing.T) {
	s, err := NewSession(WithSeed(5))
	require.NoError(t, err)
	// Lock the current tile by using a path that does not start the walk.
	s.CurrentTile().Paths()[0].Taken = true
	if s.CurrentTile().IsPathTaken(s.Position()) {
		t.Skip("locked path is the entry path for this seed")
	}
	err = s.RotateLeft()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTileLocked))
	assert.False(t, s.CanRotate())
	assert.Equal(t, 0, s.Rotations())
}

func TestSession_Reset(t *testing.T) {
	s, err := NewSession(WithSeed(8))
	require.NoError(t, err)
	id := s.ID()
	playOut(t, s)

	require.NoError(t, s.Reset())
	assert.NotEqual(t, id, s.ID())
	assert.NotEqual(t, int64(8), s.Seed())
	assert.Equal(t, 0, s.Score())
	assert.False(t, s.Over())
	assert.Equal(t, 61, s.Board().Count())
	assert.Equal(t, 0, s.Log().Len())
	s.Board().Each(func(_, _ int, tile *Tile) {
		assert.True(t, tile.CanRotate())
		assert.Equal(t, DirNorthEast, tile.Orientation())
	})

	// The reset game replays from its reported seed.
	replay, err := NewSession(WithSeed(s.Seed()))
	require.NoError(t, err)
	s.Board().Each(func(i, j int, tile *Tile) {
		assert.Empty(t, cmp.Diff(tile.Paths(), replay.Board().TileAt(i, j).Paths()))
	})
}

func TestSession_WithRand(t *testing.T) {
	s, err := NewSession(WithRand(rand.New(rand.NewSource(4))), WithBoardSize(5, 5), WithCornerCut(-1))
	require.NoError(t, err)
	assert.Equal(t, 25, s.Board().Count())
	assert.Equal(t, 2, s.CurrentTile().I())
}

func TestSession_PreviewMatchesStraightPlay(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		s, err := NewSession(WithSeed(seed))
		require.NoError(t, err)
		pv := s.Preview(0)
		before := s.Result()
		assert.Equal(t, 0, before.TilesUsed, "preview must not mark paths")

		r, err := Autoplay(s, StraightPolicy{}, 0)
		require.NoError(t, err)
		assert.Equal(t, len(pv.Steps), r.Score, "seed %d", seed)
		assert.Equal(t, pv.Outcome, r.Outcome, "seed %d", seed)
	}
}

func TestSession_PreviewLimit(t *testing.T) {
	s, err := NewSession(WithSeed(12))
	require.NoError(t, err)
	full := s.Preview(0)
	if len(full.Steps) < 2 {
		t.Skip("chain too short for this seed")
	}
	pv := s.Preview(1)
	require.Len(t, pv.Steps, 1)
	assert.Equal(t, OutcomeLimit, pv.Outcome)
	assert.Equal(t, full.Steps[0], pv.Steps[0])
	assert.Equal(t, 4, pv.Steps[0].I)
	assert.Equal(t, 4, pv.Steps[0].J)
	assert.Equal(t, Position(7), pv.Steps[0].Entry)
}

func TestSession_PreviewWhenOver(t *testing.T) {
	s, err := NewSession(WithSeed(2))
	require.NoError(t, err)
	playOut(t, s)
	pv := s.Preview(0)
	assert.Empty(t, pv.Steps)
	assert.Equal(t, s.Outcome(), pv.Outcome)
}

func TestSession_VerboseLogsLookahead(t *testing.T) {
	s, err := NewSession(WithSeed(9), WithVerbose(true))
	require.NoError(t, err)
	require.NoError(t, s.Move())
	if s.Over() {
		assert.Equal(t, 0, s.Log().CountCategory(CategoryPreview, ""))
		return
	}
	assert.Equal(t, 1, s.Log().CountCategory(CategoryPreview, "lookahead"))
}

func TestSession_SharedMoveLog(t *testing.T) {
	ml := NewMoveLog(false)
	s, err := NewSession(WithSeed(6), WithMoveLog(ml))
	require.NoError(t, err)
	require.NoError(t, s.Move())
	assert.Same(t, ml, s.Log())
	assert.True(t, ml.HasEntry(CategoryMove, "traverse", "7 ->"))
}
