package niceplots

// All applies the helpers to every axes of the current figure: spines
// are reduced to left and bottom, series get colored grid labels, and
// the figure is saved to file when it is closed. Calling All again
// replaces the labels and does not save to the same file twice.
func All(file string) error {
	f, err := CurrentFigure()
	if err != nil {
		return err
	}
	for _, a := range f.Axes() {
		if err := AdjustSpines(a, SpineOptions{}); err != nil {
			return err
		}
		if err := GridLabels(a, true); err != nil {
			return err
		}
	}
	if !f.allFiles[file] {
		if f.allFiles == nil {
			f.allFiles = make(map[string]bool)
		}
		f.allFiles[file] = true
		f.OnClose(SaveOnClose(file))
	}
	return nil
}
