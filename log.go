package niceplots

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// Logger receives warnings about things niceplots skipped or worked
// around.
var Logger = NewLogger(os.Stderr)

// NewLogger returns a warn level logger writing to w in the style of
// Logger.
func NewLogger(w io.Writer) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		Prefix: "niceplots",
		Level:  log.WarnLevel,
	})
	styles := log.DefaultStyles()
	styles.Prefix = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	l.SetStyles(styles)
	return l
}

// SetLogger replaces Logger; nil discards all warnings.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	Logger = l
}

func warnf(f string, args ...interface{}) {
	Logger.Warnf(f, args...)
}
