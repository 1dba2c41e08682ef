package niceplots

import (
	"errors"
	"sync"
)

var (
	// ErrNoActiveFigure is returned when an operation needs the current
	// figure but none exists, either because none was created or because
	// all have been closed.
	ErrNoActiveFigure = errors.New("niceplots: no active figure")

	// ErrNoAxes is returned for a nil Axes.
	ErrNoAxes = errors.New("niceplots: no axes")

	// ErrLength reports input slices of mismatching length.
	ErrLength = errors.New("niceplots: length mismatch")
)

// FigureRegistry keeps the open figures. The last opened one which is
// still open is the current figure.
type FigureRegistry struct {
	sync.Mutex
	open []*Figure
}

var figures = NewFigureRegistry()

func NewFigureRegistry() *FigureRegistry {
	return &FigureRegistry{open: make([]*Figure, 0, 4)}
}

// Add registers f and makes it current. Adding an already registered
// figure just makes it current.
func (r *FigureRegistry) Add(f *Figure) {
	r.Lock()
	defer r.Unlock()
	if i := r.find(f); i != -1 {
		r.open = append(r.open[:i], r.open[i+1:]...)
	}
	r.open = append(r.open, f)
}

// Remove unregisters f. It reports whether f was registered.
func (r *FigureRegistry) Remove(f *Figure) bool {
	r.Lock()
	defer r.Unlock()
	i := r.find(f)
	if i == -1 {
		return false
	}
	r.open = append(r.open[:i], r.open[i+1:]...)
	return true
}

// Current returns the current figure or ErrNoActiveFigure.
func (r *FigureRegistry) Current() (*Figure, error) {
	r.Lock()
	defer r.Unlock()
	if len(r.open) == 0 {
		return nil, ErrNoActiveFigure
	}
	return r.open[len(r.open)-1], nil
}

// Len is the number of open figures.
func (r *FigureRegistry) Len() int {
	r.Lock()
	defer r.Unlock()
	return len(r.open)
}

func (r *FigureRegistry) find(f *Figure) int {
	for i, g := range r.open {
		if g == f {
			return i
		}
	}
	return -1
}

// CurrentFigure returns the figure most recently created or made current
// with SetCurrentFigure which is still open.
func CurrentFigure() (*Figure, error) {
	return figures.Current()
}

// SetCurrentFigure makes f the current figure, reopening it if it was
// closed. A nil figure is ignored.
func SetCurrentFigure(f *Figure) {
	if f == nil {
		return
	}
	f.closed = false
	figures.Add(f)
}

// CurrentAxes returns the current axes of the current figure.
func CurrentAxes() (*Axes, error) {
	f, err := CurrentFigure()
	if err != nil {
		return nil, err
	}
	return f.CurrentAxes(), nil
}

// CloseAll closes every open figure, running their close hooks. The
// first hook error is returned.
func CloseAll() error {
	var first error
	for {
		f, err := figures.Current()
		if err != nil {
			return first
		}
		if err := f.Close(); err != nil && first == nil {
			first = err
		}
	}
}
