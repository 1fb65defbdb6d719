package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/tangle/internal/layout"
	"github.com/Garsondee/tangle/internal/tangle"
)

var (
	colBackground = color.RGBA{R: 8, G: 8, B: 12, A: 255}
	colTile       = color.RGBA{R: 40, G: 44, B: 56, A: 255}
	colTileActive = color.RGBA{R: 44, G: 84, B: 64, A: 255} // current tile, rotatable
	colTileLocked = color.RGBA{R: 84, G: 52, B: 44, A: 255} // current tile, locked
	colPath       = color.RGBA{R: 170, G: 170, B: 180, A: 255}
	colPathTaken  = color.RGBA{R: 240, G: 150, B: 40, A: 255}
	colPathAhead  = color.RGBA{R: 240, G: 230, B: 90, A: 255}
	colPlayer     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colBanner     = color.RGBA{R: 0, G: 0, B: 0, A: 200}
)

// aheadKey identifies a path on the board for preview highlighting.
type aheadKey struct {
	i, j  int
	begin tangle.Position
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colBackground)

	ahead := map[aheadKey]bool{}
	if g.showPreview {
		for _, st := range g.session.Preview(0).Steps {
			ahead[aheadKey{st.I, st.J, st.Path.Begin}] = true
		}
	}

	b := g.session.Board()
	cur := g.session.CurrentTile()
	b.Each(func(i, j int, t *tangle.Tile) {
		fill := colTile
		if t == cur {
			fill = colTileActive
			if !t.CanRotate() {
				fill = colTileLocked
			}
		}
		g.drawTileBase(screen, i, j, fill)
	})
	b.Each(func(i, j int, t *tangle.Tile) {
		g.drawTilePaths(screen, t, ahead)
	})
	g.drawPlayer(screen)

	g.log.Draw(screen, g.boardW, g.height)
	g.drawHUD(screen)
}

// toScreen maps tile-space coordinates (y up) to pixels.
func (g *Game) toScreen(v layout.Vec2) (float32, float32) {
	cx := float64(g.boardW) / 2
	cy := float64(g.height) / 2
	return float32(cx + v.X*g.pixelScale), float32(cy - v.Y*g.pixelScale)
}

func (g *Game) cellCenter(i, j int) layout.Vec2 {
	b := g.session.Board()
	return layout.CellCenter(i, j, b.Width(), b.Height(), g.cfg.Render.TileSpacing)
}

func (g *Game) drawTileBase(screen *ebiten.Image, i, j int, fill color.RGBA) {
	c := g.cellCenter(i, j)
	var path vector.Path
	for k, v := range layout.Vertices {
		x, y := g.toScreen(c.Add(v))
		if k == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
	}
	path.Close()
	opts := &vector.DrawPathOptions{AntiAlias: true}
	opts.ColorScale.ScaleWithColor(fill)
	vector.FillPath(screen, &path, &vector.FillOptions{}, opts)
}

func (g *Game) drawTilePaths(screen *ebiten.Image, t *tangle.Tile, ahead map[aheadKey]bool) {
	c := g.cellCenter(t.I(), t.J())
	angle := layout.OrientationAngle(int(t.Orientation()))
	// Untaken first so used paths are drawn on top where curves cross.
	for pass := 0; pass < 2; pass++ {
		for _, p := range t.Paths() {
			if p.Taken != (pass == 1) {
				continue
			}
			col, width := colPath, float32(1.5)
			switch {
			case p.Taken:
				col, width = colPathTaken, 3
			case ahead[aheadKey{t.I(), t.J(), p.Begin}]:
				col, width = colPathAhead, 2.5
			}
			pts := g.curves.Curve(int(p.Begin), int(p.End))
			for k := 1; k < len(pts); k++ {
				x0, y0 := g.toScreen(c.Add(pts[k-1].Pos.Rotate(angle)))
				x1, y1 := g.toScreen(c.Add(pts[k].Pos.Rotate(angle)))
				vector.StrokeLine(screen, x0, y0, x1, y1, width, col, true)
			}
		}
	}
}

// drawPlayer marks the entry point on the current tile.
func (g *Game) drawPlayer(screen *ebiten.Image) {
	t := g.session.CurrentTile()
	if t == nil {
		return
	}
	entry := t.AdjacentPosition(g.session.Position())
	c := g.cellCenter(t.I(), t.J())
	x, y := g.toScreen(c.Add(layout.Anchors[entry]))
	r := float32(g.pixelScale * 0.12)
	vector.FillCircle(screen, x, y, r, colPlayer, true)
	vector.StrokeCircle(screen, x, y, r+2, 1, colPathAhead, true)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	s := g.session
	g.drawText(screen, fmt.Sprintf("Score: %d", s.Score()), 8, 8, colPlayer)

	if g.showHelp {
		lines := "SPACE=move  LEFT/RIGHT=rotate\nR=new game  P=preview  C=copy\nH=help  ESC=quit"
		ebitenutil.DebugPrintAt(screen, lines, 8, g.height-52)
	}
	if g.statusLeft > 0 {
		ebitenutil.DebugPrintAt(screen, g.status, 8, 26)
	}
	if s.Over() {
		msg := fmt.Sprintf("%s Final Score: %d", s.Outcome().Message(), s.Score())
		w, h := text.Measure(msg, g.face, 0)
		bx := float32(g.boardW)/2 - float32(w)/2 - 10
		by := float32(g.height)/2 - float32(h)/2 - 8
		vector.FillRect(screen, bx, by, float32(w)+20, float32(h)+16, colBanner, false)
		g.drawText(screen, msg, float64(bx)+10, float64(by)+8, colPathTaken)
	}
}

func (g *Game) drawText(screen *ebiten.Image, s string, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, g.face, op)
}
