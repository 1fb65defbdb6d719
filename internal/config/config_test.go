package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "Tangle", cfg.Window.Title)
	assert.Equal(t, 640, cfg.Window.Width)
	assert.Equal(t, 9, cfg.Board.Width)
	assert.Equal(t, 9, cfg.Board.Height)
	assert.Equal(t, 3, cfg.Cut())
	assert.Equal(t, 32.0, cfg.Render.TileScale)
	assert.Equal(t, 1.1, cfg.Render.TileSpacing)
	assert.True(t, cfg.Render.ShowPreview)
	assert.Equal(t, int64(0), cfg.Game.Seed)
	assert.NoError(t, cfg.Validate())
}

func TestParse_PartialFile(t *testing.T) {
	cfg, err := Parse([]byte(`
window:
  title: "Tangle dev"
board:
  width: 11
  height: 11
  corner_cut: 4
game:
  seed: 1234
  verbose: true
`))
	require.NoError(t, err)
	assert.Equal(t, "Tangle dev", cfg.Window.Title)
	assert.Equal(t, 640, cfg.Window.Height)
	assert.Equal(t, 11, cfg.Board.Width)
	assert.Equal(t, 4, cfg.Cut())
	assert.Equal(t, int64(1234), cfg.Game.Seed)
	assert.True(t, cfg.Game.Verbose)
	assert.True(t, cfg.Render.ShowPreview)
}

func TestParse_FullRectangle(t *testing.T) {
	cfg, err := Parse([]byte("board:\n  corner_cut: -1\nrender:\n  show_preview: false\n"))
	require.NoError(t, err)
	assert.Equal(t, -1, cfg.Cut())
	assert.False(t, cfg.Render.ShowPreview)
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"bad yaml":      "board: [",
		"huge cut":      "board:\n  width: 5\n  height: 5\n  corner_cut: 4\n",
		"tight spacing": "render:\n  tile_spacing: 0.5\n",
		"negative size": "board:\n  width: -3\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tangle.yaml")
	require.NoError(t, os.WriteFile(path, []byte("board:\n  width: 7\n  height: 7\n  corner_cut: 2\n"), 0o600))
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Board.Width)
	assert.Equal(t, 2, cfg.Cut())

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
