package tangle

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveLog_FilterAndLast(t *testing.T) {
	ml := NewMoveLog(false)
	ml.Add(1, "4,4", CategoryMove, "traverse", "7 -> 2", 1)
	ml.Add(1, "3,5", CategoryRotate, "left", "orientation 1", 1)
	ml.Add(2, "3,5", CategoryMove, "traverse", "8 -> 11", 2)
	ml.AddVerbose(2, "4,5", CategoryPreview, "lookahead", "3 steps, dead_end", 3)

	assert.Equal(t, 3, ml.Len())
	assert.Len(t, ml.Filter(CategoryMove, ""), 2)
	assert.Len(t, ml.Filter("", "left"), 1)
	assert.Len(t, ml.FilterTurnRange(2, 2), 1)
	assert.Equal(t, 0, ml.CountCategory(CategoryPreview, ""))

	last, ok := ml.LastOf(CategoryMove, "traverse")
	require.True(t, ok)
	assert.Equal(t, 2, last.Turn)
	assert.Equal(t, float64(2), last.NumVal)

	_, ok = ml.LastOf(CategoryEnd, "")
	assert.False(t, ok)

	assert.True(t, ml.HasEntry(CategoryRotate, "left", "orientation"))
	assert.False(t, ml.HasEntry(CategoryRotate, "right", ""))
}

func TestMoveLog_Format(t *testing.T) {
	ml := NewMoveLog(true)
	ml.Add(4, "4,5", CategoryMove, "traverse", "7 -> 2", 4)
	ml.AddVerbose(4, "3,6", CategoryPreview, "lookahead", "2 steps, off_grid", 2)

	out := ml.Format()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "[T=004] 4,5"))
	assert.Contains(t, lines[0], "7 -> 2")
	assert.Contains(t, lines[1], "lookahead")

	ml.Reset()
	assert.Equal(t, 0, ml.Len())
}
