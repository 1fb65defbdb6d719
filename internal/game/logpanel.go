package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/tangle/internal/tangle"
)

const (
	logPanelWidth = 260
	logMaxEntries = 60
	logLineHeight = 11
)

// LogLine is a single line in the on-screen log.
type LogLine struct {
	Turn     int
	Label    string // tile "i,j" or "--"
	Category string
	Message  string
}

// LogPanel is a ring buffer of recent session events rendered beside the board.
type LogPanel struct {
	entries []LogLine
	head    int
	count   int
}

// NewLogPanel creates a log panel with a fixed capacity.
func NewLogPanel() *LogPanel {
	return &LogPanel{
		entries: make([]LogLine, logMaxEntries),
	}
}

// Add appends a line, dropping the oldest when full.
func (lp *LogPanel) Add(turn int, label, category, msg string) {
	lp.entries[lp.head] = LogLine{
		Turn:     turn,
		Label:    label,
		Category: category,
		Message:  msg,
	}
	lp.head = (lp.head + 1) % logMaxEntries
	if lp.count < logMaxEntries {
		lp.count++
	}
}

// AddEntry copies a session log entry into the panel.
func (lp *LogPanel) AddEntry(e tangle.MoveLogEntry) {
	lp.Add(e.Turn, e.Tile, e.Category, e.Key+" "+e.Value)
}

// Recent returns lines in chronological order (oldest first).
func (lp *LogPanel) Recent() []LogLine {
	result := make([]LogLine, lp.count)
	for i := 0; i < lp.count; i++ {
		idx := (lp.head - lp.count + i + logMaxEntries) % logMaxEntries
		result[i] = lp.entries[idx]
	}
	return result
}

func categoryColor(category string) color.RGBA {
	switch category {
	case tangle.CategoryMove:
		return color.RGBA{R: 230, G: 160, B: 60, A: 255}
	case tangle.CategoryRotate:
		return color.RGBA{R: 90, G: 170, B: 230, A: 255}
	case tangle.CategoryEnd:
		return color.RGBA{R: 220, G: 60, B: 60, A: 255}
	default:
		return color.RGBA{R: 120, G: 120, B: 120, A: 255}
	}
}

// Draw renders the panel on the right side of the screen.
func (lp *LogPanel) Draw(screen *ebiten.Image, panelX int, panelH int) {
	vector.FillRect(screen, float32(panelX), 0, float32(logPanelWidth), float32(panelH), color.RGBA{R: 12, G: 12, B: 16, A: 248}, false)
	vector.StrokeLine(screen, float32(panelX), 0, float32(panelX), float32(panelH), 1.0, color.RGBA{R: 60, G: 60, B: 80, A: 255}, false)

	vector.FillRect(screen, float32(panelX), 0, float32(logPanelWidth), 16, color.RGBA{R: 24, G: 24, B: 34, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, "MOVE LOG", panelX+8, 2)
	vector.StrokeLine(screen, float32(panelX), 16, float32(panelX+logPanelWidth), 16, 1.0, color.RGBA{R: 60, G: 60, B: 90, A: 200}, false)

	entries := lp.Recent()

	// Newest at the bottom.
	maxVisible := (panelH - 24) / logLineHeight
	startIdx := 0
	if len(entries) > maxVisible {
		startIdx = len(entries) - maxVisible
	}
	visible := entries[startIdx:]
	const recent = 3

	y := 20
	for i, e := range visible {
		if i >= len(visible)-recent {
			vector.FillRect(screen, float32(panelX+2), float32(y), float32(logPanelWidth-4), float32(logLineHeight), color.RGBA{R: 34, G: 34, B: 48, A: 160}, false)
		}
		vector.FillRect(screen, float32(panelX+5), float32(y+3), 3, 5, categoryColor(e.Category), false)
		line := fmt.Sprintf("%3d [%s] %s", e.Turn, e.Label, e.Message)
		ebitenutil.DebugPrintAt(screen, line, panelX+12, y)
		y += logLineHeight
	}
}
