// Package niceplots applies a clean, publication style look to plots made with
// gonum.org/v1/plot and ships a viridis colormap table.
//
//
// Figures and the Current Figure
//
// A Figure is a grid of Axes; every Axes wraps a *plot.Plot. Creating a
// figure makes it the current one, so the usual workflow is
//      fig := niceplots.NewFigure(1, 1)
//      ax := fig.At(0, 0)
//      ax.Line("measured", xys)
//      err := niceplots.Apply()   // style the current figure
//      err = fig.Save("figure.pdf")
//
// Apply without an active figure returns ErrNoActiveFigure.
//
//
// Styling
//
// Apply assigns fixed values taken from DefaultTheme: outward ticks,
// hidden top and right spines, Liberation Sans for all text, legend in
// the top right corner and a light dashed grid. Every assignment is
// absolute, so calling Apply twice looks exactly like calling it once.
// Other house styles are Theme values, optionally read from TOML with
// LoadTheme.
//
//
// Colormap
//
// Viridis returns a copy of a 256 entry table of RGB triples. Its Palette
// method feeds plotter.HeatMap, its ColorMap method plotter.ColorBar.
//
//
// Helpers
//
// AdjustSpines, GridLabels, AutoLabels, HorizBar and StackedPlots cover
// the common cosmetic chores: offset spines, direct line labels instead
// of a boxed legend, dot bar charts and stacked time series.
//
package niceplots
