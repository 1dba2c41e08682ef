package niceplots

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/vg"
)

const paperTheme = `
text_color = "gray20"

[font]
variant = "Serif"

[sizes]
title = "11pt"

[ticks]
direction = "in"
length    = "3pt"

[spines]
hidden = ["top"]
color  = "#336699"

[legend]
left = true

[grid]
width = "1pt"
line  = "dotted"
`

func TestLoadTheme(t *testing.T) {
	th, err := LoadTheme(strings.NewReader(paperTheme))
	require.NoError(t, err)

	assert.Equal(t, font.Typeface("Liberation"), th.Font.Typeface)
	assert.Equal(t, font.Variant("Serif"), th.Font.Variant)
	assert.Equal(t, BuiltinColors["gray20"], th.TextColor)
	assert.Equal(t, vg.Points(11), th.TitleSize)
	assert.Equal(t, DefaultTheme.LabelSize, th.LabelSize)
	assert.Equal(t, TickIn, th.TickDirection)
	assert.Equal(t, vg.Points(3), th.TickLength)
	assert.True(t, th.HiddenSpines.Equals([]Side{Top}))
	assert.Equal(t, color.NRGBA{0x33, 0x66, 0x99, 0xff}, th.SpineColor)
	assert.True(t, th.LegendLeft)
	assert.True(t, th.LegendTop)
	assert.Equal(t, []vg.Length{1, 2}, th.Grid.Dashes)

	// The default theme is unchanged.
	assert.True(t, DefaultTheme.HiddenSpines.Equals([]Side{Top, Right}))
	assert.Equal(t, TickOut, DefaultTheme.TickDirection)
}

func TestLoadThemeEmpty(t *testing.T) {
	th, err := LoadTheme(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultTheme, th)
}

func TestLoadThemeNoHiddenSpines(t *testing.T) {
	th, err := LoadTheme(strings.NewReader("[spines]\nhidden = []\n"))
	require.NoError(t, err)
	assert.Len(t, th.HiddenSpines, 0)
}

func TestLoadThemeBlankGrid(t *testing.T) {
	th, err := LoadTheme(strings.NewReader("[grid]\ncolor = \"red\"\nline = \"blank\"\n"))
	require.NoError(t, err)
	assert.Nil(t, th.Grid.Color)
	assert.Empty(t, th.Grid.Dashes)

	f := newFigure(1, 1)
	a := f.At(0, 0)
	a.ShowGrid(true)
	require.NoError(t, th.ApplyAxes(a))
	assert.True(t, a.GridOn())
	assert.Nil(t, a.Grid().Vertical.Color)
	assert.Nil(t, a.Grid().Horizontal.Color)
}

func TestLoadThemeErrors(t *testing.T) {
	for _, src := range []string{
		"text_colour = \"red\"",
		"[ticks]\nlength = \"3 parsecs\"",
		"[ticks]\ndirection = \"up\"",
		"[spines]\ncolor = \"#zzz\"",
		"[spines]\nhidden = [\"middle\"]",
		"[grid]\nline = \"wiggly\"",
		"[sizes\ntitle = 1",
	} {
		_, err := LoadTheme(strings.NewReader(src))
		assert.Error(t, err, src)
	}
}

func TestLoadThemeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paper.toml")
	require.NoError(t, os.WriteFile(path, []byte(paperTheme), 0o644))
	th, err := LoadThemeFile(path)
	require.NoError(t, err)
	assert.Equal(t, TickIn, th.TickDirection)

	_, err = LoadThemeFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
