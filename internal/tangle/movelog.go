package tangle

import (
	"fmt"
	"strings"
)

// Log categories.
const (
	CategoryMove    = "move"
	CategoryRotate  = "rotate"
	CategoryEnd     = "end"
	CategoryPreview = "preview"
)

// MoveLogEntry is one recorded session event.
type MoveLogEntry struct {
	Turn     int
	Tile     string // "i,j" or "--" when there is no current tile
	Category string
	Key      string
	Value    string
	NumVal   float64
}

// String formats the entry as a fixed-width log line.
//
//	[T=004] 4,5    move     traverse         7 -> 2
func (e MoveLogEntry) String() string {
	return fmt.Sprintf("[T=%03d] %-6s %-8s %-16s %s",
		e.Turn, e.Tile, e.Category, e.Key, e.Value)
}

// MoveLog collects structured session events. It is unbounded; the frontend
// keeps its own short ring buffer for display.
type MoveLog struct {
	entries []MoveLogEntry
	verbose bool
}

// NewMoveLog creates a MoveLog. Verbose logs also record lookahead entries
// after every turn.
func NewMoveLog(verbose bool) *MoveLog {
	return &MoveLog{verbose: verbose}
}

// Verbose reports whether verbose entries are kept.
func (ml *MoveLog) Verbose() bool { return ml.verbose }

// Add records a new entry.
func (ml *MoveLog) Add(turn int, tile, category, key, value string, numVal float64) {
	ml.entries = append(ml.entries, MoveLogEntry{
		Turn:     turn,
		Tile:     tile,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (ml *MoveLog) AddVerbose(turn int, tile, category, key, value string, numVal float64) {
	if !ml.verbose {
		return
	}
	ml.Add(turn, tile, category, key, value, numVal)
}

// Entries returns all recorded entries.
func (ml *MoveLog) Entries() []MoveLogEntry {
	return ml.entries
}

// Len returns the number of entries.
func (ml *MoveLog) Len() int { return len(ml.entries) }

// Filter returns entries matching category and key. Empty strings match
// anything.
func (ml *MoveLog) Filter(category, key string) []MoveLogEntry {
	var out []MoveLogEntry
	for _, e := range ml.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterTurnRange returns entries within [fromTurn, toTurn] inclusive.
func (ml *MoveLog) FilterTurnRange(fromTurn, toTurn int) []MoveLogEntry {
	var out []MoveLogEntry
	for _, e := range ml.entries {
		if e.Turn >= fromTurn && e.Turn <= toTurn {
			out = append(out, e)
		}
	}
	return out
}

// CountCategory returns how many entries match category and key.
func (ml *MoveLog) CountCategory(category, key string) int {
	return len(ml.Filter(category, key))
}

// LastOf returns the most recent entry matching category and key.
func (ml *MoveLog) LastOf(category, key string) (MoveLogEntry, bool) {
	for k := len(ml.entries) - 1; k >= 0; k-- {
		e := ml.entries[k]
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		return e, true
	}
	return MoveLogEntry{}, false
}

// HasEntry reports whether some entry matches category, key and contains
// valueSubstr in its value.
func (ml *MoveLog) HasEntry(category, key, valueSubstr string) bool {
	for _, e := range ml.Filter(category, key) {
		if strings.Contains(e.Value, valueSubstr) {
			return true
		}
	}
	return false
}

// Format renders every entry, one per line.
func (ml *MoveLog) Format() string {
	var sb strings.Builder
	for _, e := range ml.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Reset drops all entries.
func (ml *MoveLog) Reset() {
	ml.entries = ml.entries[:0]
}
