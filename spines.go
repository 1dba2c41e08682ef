package niceplots

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// OutwardOffset is the distance between data and spine used by
// AdjustSpines with Outward set.
var OutwardOffset = vg.Points(12)

// SpineOptions controls AdjustSpines. The zero value keeps the left and
// bottom spines in place.
type SpineOptions struct {
	// Spines to keep; nil means left and bottom.
	Spines []Side

	// Outward moves the kept left and bottom spines OutwardOffset away
	// from the data.
	Outward bool
}

// AdjustSpines keeps only the spines listed in opts and hides the others.
// Without a left spine the y axis loses its ticks, without a bottom spine
// the x axis.
func AdjustSpines(a *Axes, opts SpineOptions) error {
	if a == nil {
		return ErrNoAxes
	}
	keep := NewSideSet(Left, Bottom)
	if opts.Spines != nil {
		keep = NewSideSet(opts.Spines...)
	}

	for _, s := range AllSides {
		a.Spines[s].Visible = keep.Contains(s)
	}

	if keep.Contains(Left) {
		if opts.Outward {
			a.Y.Padding = OutwardOffset
		}
	} else {
		a.Y.Tick.Marker = plot.ConstantTicks{}
	}
	if keep.Contains(Bottom) {
		if opts.Outward {
			a.X.Padding = OutwardOffset
		}
	} else {
		a.X.Tick.Marker = plot.ConstantTicks{}
	}
	return nil
}
