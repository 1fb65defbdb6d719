package tangle

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// ErrSessionOver is returned for actions taken after the game has ended.
var ErrSessionOver = errors.New("tangle: session is over")

// Defaults for a standard game.
const (
	DefaultBoardWidth  = 9
	DefaultBoardHeight = 9
	DefaultCornerCut   = 3
)

type settings struct {
	width   int
	height  int
	cut     int
	seed    int64
	rng     *rand.Rand
	verbose bool
	log     *MoveLog
}

// Option configures a Session.
type Option func(*settings)

// WithBoardSize sets the grid dimensions.
func WithBoardSize(width, height int) Option {
	return func(st *settings) {
		st.width = width
		st.height = height
	}
}

// WithCornerCut sets how far the two trimmed corners reach into the grid.
// A negative value keeps the full rectangle.
func WithCornerCut(cut int) Option {
	return func(st *settings) {
		st.cut = cut
	}
}

// WithSeed makes path generation deterministic. Zero means time-seeded.
func WithSeed(seed int64) Option {
	return func(st *settings) {
		st.seed = seed
	}
}

// WithRand supplies the random source directly. It takes precedence over
// WithSeed for the first game.
func WithRand(rng *rand.Rand) Option {
	return func(st *settings) {
		st.rng = rng
	}
}

// WithVerbose records lookahead entries in the move log after every turn.
func WithVerbose(v bool) Option {
	return func(st *settings) {
		st.verbose = v
	}
}

// WithMoveLog records events into ml instead of a fresh log.
func WithMoveLog(ml *MoveLog) Option {
	return func(st *settings) {
		st.log = ml
	}
}

// Session is one game: a board of random tiles and a player token that walks
// along the paths.
type Session struct {
	id    uuid.UUID
	st    settings
	seed  int64
	rng   *rand.Rand
	pool  *TilePool
	board *Board
	log   *MoveLog

	pos       Position
	tile      *Tile
	score     int
	moves     int
	rotations int
	outcome   Outcome
}

// NewSession builds a board, wires every tile and puts the player on the
// centre tile.
func NewSession(opts ...Option) (*Session, error) {
	st := settings{
		width:  DefaultBoardWidth,
		height: DefaultBoardHeight,
		cut:    DefaultCornerCut,
	}
	for _, o := range opts {
		o(&st)
	}
	if st.width <= 0 || st.height <= 0 {
		return nil, fmt.Errorf("new session: invalid board size %dx%d", st.width, st.height)
	}
	if !InHexMask(st.height/2, st.width/2, st.width, st.height, st.cut) {
		return nil, fmt.Errorf("new session: corner cut %d removes the centre of a %dx%d board", st.cut, st.width, st.height)
	}

	s := &Session{
		st:    st,
		pool:  NewTilePool(st.width * st.height),
		board: NewBoard(st.width, st.height),
		log:   st.log,
	}
	if s.log == nil {
		s.log = NewMoveLog(st.verbose)
	}
	switch {
	case st.rng != nil:
		s.rng = st.rng
		s.seed = st.seed
	case st.seed != 0:
		s.seed = st.seed
		s.rng = rand.New(rand.NewSource(st.seed)) // #nosec G404 -- game only
	default:
		s.seed = time.Now().UnixNano()
		s.rng = rand.New(rand.NewSource(s.seed)) // #nosec G404 -- game only
	}
	if err := s.setup(); err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	return s, nil
}

func (s *Session) setup() error {
	s.id = uuid.New()
	s.pool.Reset()
	s.board.Clear()
	for i := 0; i < s.st.height; i++ {
		for j := 0; j < s.st.width; j++ {
			if !InHexMask(i, j, s.st.width, s.st.height, s.st.cut) {
				continue
			}
			t, err := s.pool.Alloc()
			if err != nil {
				return err
			}
			t.GenerateRandomPaths(s.rng)
			s.board.PlaceTile(t, i, j)
		}
	}
	s.pos = 0
	s.tile = s.board.TileAt(s.st.height/2, s.st.width/2)
	s.score = 0
	s.moves = 0
	s.rotations = 0
	s.outcome = OutcomeInProgress
	s.checkTermination()
	return nil
}

// Reset starts a new game on the same settings. The new game is seeded from
// the current random source so it can be replayed from Seed.
func (s *Session) Reset() error {
	s.seed = s.rng.Int63()
	if s.seed == 0 {
		s.seed = 1
	}
	s.rng = rand.New(rand.NewSource(s.seed)) // #nosec G404 -- game only
	s.log.Reset()
	if err := s.setup(); err != nil {
		return fmt.Errorf("reset session: %w", err)
	}
	return nil
}

func (s *Session) ID() uuid.UUID { return s.id }
func (s *Session) Seed() int64 { return s.seed }
func (s *Session) Board() *Board { return s.board }
func (s *Session) Log() *MoveLog { return s.log }
func (s *Session) Position() Position { return s.pos }
func (s *Session) CurrentTile() *Tile { return s.tile }
func (s *Session) Score() int { return s.score }
func (s *Session) Turn() int { return s.moves }
func (s *Session) Rotations() int { return s.rotations }
func (s *Session) Outcome() Outcome { return s.outcome }
func (s *Session) Over() bool { return s.outcome.Terminal() }

// CanRotate reports whether the current tile still accepts rotations.
func (s *Session) CanRotate() bool {
	return s.tile != nil && !s.Over() && s.tile.CanRotate()
}

// Move follows the path from the current position onto the next tile.
func (s *Session) Move() error {
	if s.Over() || s.tile == nil {
		return ErrSessionOver
	}
	t := s.tile
	from := s.pos
	next := t.Traverse(from)
	s.tile = s.board.TileInAdjacentPosition(next, t.I(), t.J())
	s.pos = next
	s.score++
	s.moves++
	s.log.Add(s.moves, tileLabel(t), CategoryMove, "traverse",
		fmt.Sprintf("%d -> %d", t.AdjacentPosition(from), next), float64(s.score))
	s.checkTermination()
	if !s.Over() && s.log.Verbose() {
		pv := s.Preview(0)
		s.log.AddVerbose(s.moves, tileLabel(s.tile), CategoryPreview, "lookahead",
			fmt.Sprintf("%d steps, %s", len(pv.Steps), pv.Outcome), float64(len(pv.Steps)))
	}
	return nil
}

// RotateLeft turns the current tile one side forward.
func (s *Session) RotateLeft() error {
	return s.rotate(1)
}

// RotateRight turns the current tile one side back.
func (s *Session) RotateRight() error {
	return s.rotate(-1)
}

func (s *Session) rotate(dir int) error {
	if s.Over() || s.tile == nil {
		return ErrSessionOver
	}
	var err error
	key := "left"
	if dir > 0 {
		err = s.tile.RotateLeft()
	} else {
		key = "right"
		err = s.tile.RotateRight()
	}
	if err != nil {
		return fmt.Errorf("rotate %s: %w", tileLabel(s.tile), err)
	}
	s.rotations++
	s.log.Add(s.moves, tileLabel(s.tile), CategoryRotate, key,
		fmt.Sprintf("orientation %d", s.tile.Orientation()), float64(s.tile.Orientation()))
	return nil
}

func (s *Session) checkTermination() {
	if s.outcome.Terminal() {
		return
	}
	switch {
	case s.tile == nil:
		s.outcome = OutcomeOffGrid
	case s.tile.IsPathTaken(s.pos):
		s.outcome = OutcomeDeadEnd
	default:
		return
	}
	s.log.Add(s.moves, tileLabel(s.tile), CategoryEnd, s.outcome.String(),
		fmt.Sprintf("final score %d", s.score), float64(s.score))
}

// Result summarises the session so far.
func (s *Session) Result() Result {
	r := Result{
		ID:        s.id,
		Seed:      s.seed,
		Outcome:   s.outcome,
		Score:     s.score,
		Moves:     s.moves,
		Rotations: s.rotations,
	}
	s.board.Each(func(_, _ int, t *Tile) {
		if !t.CanRotate() {
			r.TilesUsed++
		}
	})
	r.Description = describeResult(r)
	return r
}

func tileLabel(t *Tile) string {
	if t == nil {
		return "--"
	}
	return fmt.Sprintf("%d,%d", t.I(), t.J())
}
