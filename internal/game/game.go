package game

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/Garsondee/tangle/internal/config"
	"github.com/Garsondee/tangle/internal/layout"
	"github.com/Garsondee/tangle/internal/tangle"
)

// borderWidth is the pixel gap between the window edge and the board.
const borderWidth = 16

// statusTicks is how long a transient status line stays on screen (60 TPS).
const statusTicks = 120

type Game struct {
	cfg     *config.Config
	session *tangle.Session
	curves  *layout.CurveCache
	log     *LogPanel
	logSeen int

	width      int // full window width including the log panel
	height     int
	boardW     int // board area width
	pixelScale float64
	face       text.Face

	showPreview bool
	showHelp    bool
	prevKeys    map[ebiten.Key]bool

	status      string
	statusLeft  int
	quitPending bool
}

// New builds a game from cfg and deals the first board.
func New(cfg *config.Config) (*Game, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	s, err := tangle.NewSession(
		tangle.WithBoardSize(cfg.Board.Width, cfg.Board.Height),
		tangle.WithCornerCut(cfg.Cut()),
		tangle.WithSeed(cfg.Game.Seed),
		tangle.WithVerbose(cfg.Game.Verbose),
	)
	if err != nil {
		return nil, fmt.Errorf("start game: %w", err)
	}
	g := &Game{
		cfg:         cfg,
		session:     s,
		curves:      layout.NewCurveCache(),
		log:         NewLogPanel(),
		width:       cfg.Window.Width + logPanelWidth,
		height:      cfg.Window.Height,
		boardW:      cfg.Window.Width,
		face:        text.NewGoXFace(basicfont.Face7x13),
		showPreview: cfg.Render.ShowPreview,
		showHelp:    true,
		prevKeys:    make(map[ebiten.Key]bool),
	}
	g.pixelScale = fitScale(cfg, g.boardW, g.height)
	g.announce()
	return g, nil
}

// fitScale returns the configured tile scale, shrunk if the board would not
// fit inside the window.
func fitScale(cfg *config.Config, w, h int) float64 {
	halfW, halfH := layout.BoardExtent(cfg.Board.Width, cfg.Board.Height, cfg.Render.TileSpacing)
	fit := math.Min(float64(w/2-borderWidth)/halfW, float64(h/2-borderWidth)/halfH)
	if fit <= 0 {
		return cfg.Render.TileScale
	}
	return math.Min(cfg.Render.TileScale, fit)
}

// Session exposes the running game.
func (g *Game) Session() *tangle.Session { return g.session }

func (g *Game) announce() {
	g.log.Add(0, "--", "game", fmt.Sprintf("seed %d", g.session.Seed()))
	g.logSeen = 0
}

// syncLog copies new session events into the on-screen panel.
func (g *Game) syncLog() {
	entries := g.session.Log().Entries()
	for ; g.logSeen < len(entries); g.logSeen++ {
		g.log.AddEntry(entries[g.logSeen])
	}
}

func (g *Game) setStatus(msg string) {
	g.status = msg
	g.statusLeft = statusTicks
}

func (g *Game) Update() error {
	g.handleInput()
	g.syncLog()
	if g.statusLeft > 0 {
		g.statusLeft--
	}
	if g.quitPending {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// summary is the one-line result copied to the clipboard.
func (g *Game) summary() string {
	r := g.session.Result()
	if !g.session.Over() {
		return fmt.Sprintf("Tangle seed %d: score %d so far", r.Seed, r.Score)
	}
	return fmt.Sprintf("Tangle seed %d: final score %d (%s)", r.Seed, r.Score, r.Outcome)
}
