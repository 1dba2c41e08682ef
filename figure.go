package niceplots

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Default figure size.
var (
	DefaultWidth  = 6.4 * vg.Inch
	DefaultHeight = 4.8 * vg.Inch
)

// Figure is a grid of Rows x Cols Axes rendered onto one canvas.
type Figure struct {
	// Width and Height are the size used by Save and WriterTo.
	Width, Height vg.Length

	// Tiles controls the padding around and between the axes. Rows and
	// Cols are set from the figure.
	Tiles draw.Tiles

	axes    [][]*Axes
	current *Axes
	onClose []func(*Figure) error
	closed  bool

	// files All saves to on close
	allFiles map[string]bool
}

// NewFigure creates a figure with rows x cols axes and makes it the
// current figure. Values below 1 are treated as 1.
func NewFigure(rows, cols int) *Figure {
	f := newFigure(rows, cols)
	figures.Add(f)
	return f
}

func newFigure(rows, cols int) *Figure {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	f := &Figure{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Tiles: draw.Tiles{
			Rows:      rows,
			Cols:      cols,
			PadTop:    vg.Points(6),
			PadBottom: vg.Points(6),
			PadLeft:   vg.Points(6),
			PadRight:  vg.Points(6),
			PadX:      vg.Points(12),
			PadY:      vg.Points(12),
		},
	}
	f.axes = make([][]*Axes, rows)
	for r := range f.axes {
		f.axes[r] = make([]*Axes, cols)
		for c := range f.axes[r] {
			f.axes[r][c] = newAxes(f)
		}
	}
	f.current = f.axes[0][0]
	return f
}

// Rows is the number of axes rows.
func (f *Figure) Rows() int { return len(f.axes) }

// Cols is the number of axes columns.
func (f *Figure) Cols() int { return len(f.axes[0]) }

// At returns the axes in the given row and column. It panics if the
// position is outside the grid.
func (f *Figure) At(row, col int) *Axes {
	return f.axes[row][col]
}

// Axes returns all axes in row-major order.
func (f *Figure) Axes() []*Axes {
	all := make([]*Axes, 0, f.Rows()*f.Cols())
	for _, row := range f.axes {
		all = append(all, row...)
	}
	return all
}

// CurrentAxes returns the axes last selected with SetCurrentAxes, the
// top left one by default.
func (f *Figure) CurrentAxes() *Axes {
	return f.current
}

// SetCurrentAxes selects a as the current axes. a must belong to f.
func (f *Figure) SetCurrentAxes(a *Axes) error {
	if a == nil {
		return ErrNoAxes
	}
	if a.figure != f {
		return errors.New("niceplots: axes belong to a different figure")
	}
	f.current = a
	return nil
}

// Warnf reports a recoverable problem with f.
func (f *Figure) Warnf(format string, args ...interface{}) {
	warnf(format, args...)
}

// Draw draws all axes to c with their data areas aligned.
func (f *Figure) Draw(c draw.Canvas) {
	tiles := f.Tiles
	tiles.Rows, tiles.Cols = f.Rows(), f.Cols()

	plots := make([][]*plot.Plot, len(f.axes))
	for r, row := range f.axes {
		plots[r] = make([]*plot.Plot, len(row))
		for i, a := range row {
			plots[r][i] = a.drawable()
		}
	}

	canvases := plot.Align(plots, tiles, c)
	for r, row := range f.axes {
		for i, a := range row {
			a.draw(plots[r][i], canvases[r][i])
		}
	}
}

// WriterTo renders f in the given format ("png", "pdf", "svg", "eps",
// "jpg", "tif", "tex").
func (f *Figure) WriterTo(format string) (io.WriterTo, error) {
	c, err := draw.NewFormattedCanvas(f.Width, f.Height, format)
	if err != nil {
		return nil, err
	}
	f.Draw(draw.New(c))
	return c, nil
}

// Save writes f to file, the format is determined by the extension.
func (f *Figure) Save(file string) (err error) {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(file), "."))
	wt, err := f.WriterTo(format)
	if err != nil {
		return fmt.Errorf("niceplots: save %s: %w", file, err)
	}

	out, err := os.Create(file)
	if err != nil {
		return err
	}
	defer func() {
		if e := out.Close(); err == nil {
			err = e
		}
	}()

	_, err = wt.WriteTo(out)
	return err
}

// OnClose registers fn to run when f is closed. Hooks run in the order
// they were registered.
func (f *Figure) OnClose(fn func(*Figure) error) {
	f.onClose = append(f.onClose, fn)
}

// SaveOnClose returns a close hook which saves the figure to file.
func SaveOnClose(file string) func(*Figure) error {
	return func(f *Figure) error {
		return f.Save(file)
	}
}

// Closed reports whether f was closed.
func (f *Figure) Closed() bool {
	return f.closed
}

// Close runs the close hooks and removes f from the open figures. All
// hooks run even if one fails; the first failure is returned. Closing a
// closed figure does nothing.
func (f *Figure) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true
	figures.Remove(f)

	var first error
	for i, fn := range f.onClose {
		if err := fn(f); err != nil {
			f.Warnf("close hook %d failed: %s", i, err)
			if first == nil {
				first = err
			}
		}
	}
	return first
}
