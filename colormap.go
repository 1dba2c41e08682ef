package niceplots

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/plot/palette"
)

// TableSize is the number of entries of a colormap Table.
const TableSize = 256

// Table is a colormap given as TableSize RGB triples with channels in
// [0,1]. Entry 0 belongs to the low end of the mapped range. Being an
// array a Table is copied on assignment.
type Table [TableSize]colorful.Color

// Viridis returns a copy of the viridis colormap.
func Viridis() *Table {
	t := viridis
	return &t
}

// Len returns TableSize.
func (t *Table) Len() int { return len(t) }

// At returns entry i.
func (t *Table) At(i int) colorful.Color { return t[i] }

// Colors returns all entries as color.Color values.
func (t *Table) Colors() []color.Color {
	cs := make([]color.Color, len(t))
	for i, c := range t {
		cs[i] = c
	}
	return cs
}

// Palette returns t as a palette with all entries, e.g. for
// plotter.NewHeatMap.
func (t *Table) Palette() palette.Palette {
	return tablePalette(t.Colors())
}

type tablePalette []color.Color

func (p tablePalette) Colors() []color.Color { return p }

// ColorMap returns a palette.ColorMap looking values up in a copy of t.
// Its range is [0,1] and alpha 1.
func (t *Table) ColorMap() *TableColorMap {
	return &TableColorMap{table: *t, min: 0, max: 1, alpha: 1}
}

// TableColorMap maps a scalar to the table entry covering it. The range
// [Min,Max] is cut into TableSize equal bins; Max falls into the last.
// There is no interpolation between entries.
type TableColorMap struct {
	table    Table
	min, max float64
	alpha    float64
}

var _ palette.ColorMap = (*TableColorMap)(nil)

// At implements palette.ColorMap.
func (m *TableColorMap) At(v float64) (color.Color, error) {
	switch {
	case math.IsNaN(v):
		return nil, palette.ErrNaN
	case v < m.min:
		return nil, palette.ErrUnderflow
	case v > m.max:
		return nil, palette.ErrOverflow
	}
	return m.color(m.index(v)), nil
}

func (m *TableColorMap) index(v float64) int {
	if m.max == m.min {
		return 0
	}
	i := int((v - m.min) / (m.max - m.min) * TableSize)
	if i >= TableSize {
		i = TableSize - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

func (m *TableColorMap) color(i int) color.Color {
	if m.alpha == 1 {
		return m.table[i]
	}
	return SetAlpha(m.table[i], m.alpha)
}

// Max implements palette.ColorMap.
func (m *TableColorMap) Max() float64 { return m.max }

// SetMax implements palette.ColorMap.
func (m *TableColorMap) SetMax(v float64) { m.max = v }

// Min implements palette.ColorMap.
func (m *TableColorMap) Min() float64 { return m.min }

// SetMin implements palette.ColorMap.
func (m *TableColorMap) SetMin(v float64) { m.min = v }

// Alpha implements palette.ColorMap.
func (m *TableColorMap) Alpha() float64 { return m.alpha }

// SetAlpha implements palette.ColorMap. It panics if alpha is outside
// [0,1].
func (m *TableColorMap) SetAlpha(alpha float64) {
	if alpha < 0 || alpha > 1 {
		panic("niceplots: alpha out of range")
	}
	m.alpha = alpha
}

// Palette implements palette.ColorMap. The colors are the entries at n
// evenly spaced points from Min to Max.
func (m *TableColorMap) Palette(n int) palette.Palette {
	if n < 1 {
		return tablePalette(nil)
	}
	cs := make([]color.Color, n)
	if n == 1 {
		cs[0] = m.color(0)
		return tablePalette(cs)
	}
	for k := range cs {
		v := m.min + float64(k)*(m.max-m.min)/float64(n-1)
		cs[k] = m.color(m.index(v))
	}
	return tablePalette(cs)
}
