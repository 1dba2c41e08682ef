package niceplots

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

func TestViridisTable(t *testing.T) {
	v := Viridis()
	require.Equal(t, 256, v.Len())
	for i := 0; i < v.Len(); i++ {
		c := v.At(i)
		for _, v := range []float64{c.R, c.G, c.B} {
			assert.GreaterOrEqual(t, v, 0.0, "entry %d", i)
			assert.LessOrEqual(t, v, 1.0, "entry %d", i)
		}
	}

	// Dark purple to yellow.
	first, last := v.At(0), v.At(255)
	assert.Greater(t, first.B, first.G)
	assert.Greater(t, last.R, last.B)
	assert.Greater(t, last.G, first.G)
	assert.Len(t, v.Colors(), 256)
	assert.Len(t, v.Palette().Colors(), 256)
}

func TestViridisValues(t *testing.T) {
	v := Viridis()
	for _, tc := range []struct {
		i       int
		r, g, b float64
	}{
		{0, 0.267004, 0.004874, 0.329415},
		{64, 0.229739, 0.322361, 0.545706},
		{128, 0.127568, 0.566949, 0.550556},
		{192, 0.369214, 0.788888, 0.382914},
		{255, 0.993248, 0.906157, 0.143936},
	} {
		c := v.At(tc.i)
		assert.InDelta(t, tc.r, c.R, 0.005, "entry %d", tc.i)
		assert.InDelta(t, tc.g, c.G, 0.005, "entry %d", tc.i)
		assert.InDelta(t, tc.b, c.B, 0.005, "entry %d", tc.i)
	}
}

func TestViridisIsACopy(t *testing.T) {
	v := Viridis()
	r := v.At(0).R
	v[0].R = 7
	assert.Equal(t, r, Viridis().At(0).R)
	assert.NotSame(t, v, Viridis())
}

func TestTableColorMap(t *testing.T) {
	v := Viridis()
	cm := v.ColorMap()
	assert.Equal(t, 0.0, cm.Min())
	assert.Equal(t, 1.0, cm.Max())
	assert.Equal(t, 1.0, cm.Alpha())

	for _, v := range []float64{0, 0.1, 0.5, 0.999, 1} {
		_, err := cm.At(v)
		assert.NoError(t, err, "v=%g", v)
	}

	c, err := cm.At(0)
	require.NoError(t, err)
	assert.Equal(t, v.At(0), c)
	c, err = cm.At(1)
	require.NoError(t, err)
	assert.Equal(t, v.At(255), c)
	c, err = cm.At(0.5)
	require.NoError(t, err)
	assert.Equal(t, v.At(128), c)

	_, err = cm.At(-0.1)
	assert.ErrorIs(t, err, palette.ErrUnderflow)
	_, err = cm.At(1.1)
	assert.ErrorIs(t, err, palette.ErrOverflow)
	_, err = cm.At(math.NaN())
	assert.ErrorIs(t, err, palette.ErrNaN)

	cm.SetMin(10)
	cm.SetMax(20)
	c, err = cm.At(15)
	require.NoError(t, err)
	assert.Equal(t, v.At(128), c)

	assert.Panics(t, func() { cm.SetAlpha(2) })
	cm.SetAlpha(0.5)
	c, err = cm.At(10)
	require.NoError(t, err)
	_, _, _, a := c.RGBA()
	assert.InDelta(t, 0x8080, a, 0x100)
}

func TestTableColorMapIsACopy(t *testing.T) {
	table := Viridis()
	cm := table.ColorMap()
	table[0] = table[255]
	c, err := cm.At(0)
	require.NoError(t, err)
	assert.Equal(t, Viridis().At(0), c)
}

func TestTableColorMapPalette(t *testing.T) {
	v := Viridis()
	cm := v.ColorMap()
	assert.Empty(t, cm.Palette(0).Colors())

	p := cm.Palette(5).Colors()
	require.Len(t, p, 5)
	assert.Equal(t, v.At(0), p[0])
	assert.Equal(t, v.At(255), p[4])
	assert.Equal(t, v.At(128), p[2])

	assert.Equal(t, v.At(0), cm.Palette(1).Colors()[0])
}

type unitGrid struct{}

func (unitGrid) Dims() (c, r int)   { return 4, 3 }
func (unitGrid) Z(c, r int) float64 { return float64(c*3+r) / 11 }
func (unitGrid) X(c int) float64    { return float64(c) }
func (unitGrid) Y(r int) float64    { return float64(r) }

func TestColormapRendering(t *testing.T) {
	defer resetFigures(t)()

	v := Viridis()
	f := NewFigure(1, 2)
	f.At(0, 0).Add(plotter.NewHeatMap(unitGrid{}, v.Palette()))
	f.At(0, 1).Add(&plotter.ColorBar{ColorMap: v.ColorMap(), Vertical: true})

	c := vgimg.New(4*vg.Inch, 3*vg.Inch)
	assert.NotPanics(t, func() { f.Draw(draw.New(c)) })
}
