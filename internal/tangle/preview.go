package tangle

// PreviewStep is one path the player would consume by moving.
type PreviewStep struct {
	I, J  int
	Entry Position // board-frame entry point on the tile
	Exit  Position // board-frame exit point on the tile
	Path  Path     // local-frame wiring of the consumed path
}

// Preview is the chain of paths the player would follow by moving repeatedly
// without rotating anything.
type Preview struct {
	Steps   []PreviewStep
	Outcome Outcome
}

// Preview walks ahead from the current position without marking any path.
// limit caps the number of steps; zero or less means no cap.
func (s *Session) Preview(limit int) Preview {
	var pv Preview
	if s.Over() {
		pv.Outcome = s.outcome
		return pv
	}
	return walk(s.board, s.tile, s.pos, limit)
}

func walk(b *Board, t *Tile, pos Position, limit int) Preview {
	var pv Preview
	seen := make(map[*Path]bool)
	for {
		if t == nil {
			pv.Outcome = OutcomeOffGrid
			return pv
		}
		p := t.PathAt(pos)
		if p == nil || p.Taken || seen[p] {
			pv.Outcome = OutcomeDeadEnd
			return pv
		}
		if limit > 0 && len(pv.Steps) >= limit {
			pv.Outcome = OutcomeLimit
			return pv
		}
		seen[p] = true
		next := t.Destination(pos)
		pv.Steps = append(pv.Steps, PreviewStep{
			I:     t.I(),
			J:     t.J(),
			Entry: t.AdjacentPosition(pos),
			Exit:  next,
			Path:  *p,
		})
		nt := b.TileInAdjacentPosition(next, t.I(), t.J())
		pos = next
		t = nt
	}
}
