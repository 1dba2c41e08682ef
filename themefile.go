package niceplots

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/vg"
)

// themeFile is the TOML form of a Theme. Lengths are strings like
// "0.8pt" or "2mm", colors strings like "#222222" or "gray40".
//
//	[font]
//	typeface = "Liberation"
//	variant  = "Serif"
//
//	[ticks]
//	direction = "in"
//	length    = "3pt"
//
//	[spines]
//	hidden = ["top", "right"]
type themeFile struct {
	Font struct {
		Typeface string `toml:"typeface"`
		Variant  string `toml:"variant"`
	} `toml:"font"`
	TextColor string `toml:"text_color"`
	Sizes     struct {
		Title     string `toml:"title"`
		Label     string `toml:"label"`
		TickLabel string `toml:"tick_label"`
		Legend    string `toml:"legend"`
	} `toml:"sizes"`
	Ticks struct {
		Direction string `toml:"direction"`
		Length    string `toml:"length"`
		Width     string `toml:"width"`
		Color     string `toml:"color"`
	} `toml:"ticks"`
	Spines struct {
		Hidden []string `toml:"hidden"`
		Width  string   `toml:"width"`
		Color  string   `toml:"color"`
	} `toml:"spines"`
	Legend struct {
		Top            *bool  `toml:"top"`
		Left           *bool  `toml:"left"`
		XOffs          string `toml:"x_offset"`
		YOffs          string `toml:"y_offset"`
		ThumbnailWidth string `toml:"thumbnail_width"`
	} `toml:"legend"`
	Grid struct {
		Color string `toml:"color"`
		Width string `toml:"width"`
		Line  string `toml:"line"`
	} `toml:"grid"`
}

// LoadTheme reads a TOML theme from r. Settings missing in r keep their
// DefaultTheme value; unknown keys are an error.
func LoadTheme(r io.Reader) (Theme, error) {
	var tf themeFile
	md, err := toml.NewDecoder(r).Decode(&tf)
	if err != nil {
		return Theme{}, fmt.Errorf("niceplots: theme: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Theme{}, fmt.Errorf("niceplots: theme: unknown keys %s", strings.Join(keys, ", "))
	}

	t := DefaultTheme.Copy()
	p := themeParser{}
	if tf.Font.Typeface != "" {
		t.Font.Typeface = font.Typeface(tf.Font.Typeface)
	}
	if tf.Font.Variant != "" {
		t.Font.Variant = font.Variant(tf.Font.Variant)
	}
	p.color(&t.TextColor, "text_color", tf.TextColor)

	p.length(&t.TitleSize, "sizes.title", tf.Sizes.Title)
	p.length(&t.LabelSize, "sizes.label", tf.Sizes.Label)
	p.length(&t.TickLabelSize, "sizes.tick_label", tf.Sizes.TickLabel)
	p.length(&t.LegendSize, "sizes.legend", tf.Sizes.Legend)

	if tf.Ticks.Direction != "" && p.err == nil {
		t.TickDirection, p.err = ParseTickDirection(tf.Ticks.Direction)
	}
	p.length(&t.TickLength, "ticks.length", tf.Ticks.Length)
	p.length(&t.TickWidth, "ticks.width", tf.Ticks.Width)
	p.color(&t.TickColor, "ticks.color", tf.Ticks.Color)

	if md.IsDefined("spines", "hidden") && p.err == nil {
		t.HiddenSpines, p.err = ParseSideSet(tf.Spines.Hidden)
	}
	p.length(&t.SpineWidth, "spines.width", tf.Spines.Width)
	p.color(&t.SpineColor, "spines.color", tf.Spines.Color)

	if tf.Legend.Top != nil {
		t.LegendTop = *tf.Legend.Top
	}
	if tf.Legend.Left != nil {
		t.LegendLeft = *tf.Legend.Left
	}
	p.length(&t.LegendXOffs, "legend.x_offset", tf.Legend.XOffs)
	p.length(&t.LegendYOffs, "legend.y_offset", tf.Legend.YOffs)
	p.length(&t.LegendThumbnailWidth, "legend.thumbnail_width", tf.Legend.ThumbnailWidth)

	p.color(&t.Grid.Color, "grid.color", tf.Grid.Color)
	p.length(&t.Grid.Width, "grid.width", tf.Grid.Width)
	if tf.Grid.Line != "" && p.err == nil {
		var lt LineType
		lt, p.err = ParseLineType(tf.Grid.Line)
		t.Grid.Dashes = lt.Dashes(t.Grid.Width)
		if p.err == nil && lt == BlankLine {
			// gonum's grid skips lines without a color.
			t.Grid.Color = nil
			t.Grid.Dashes = nil
		}
	}

	if p.err != nil {
		return Theme{}, fmt.Errorf("niceplots: theme: %w", p.err)
	}
	return t, nil
}

// LoadThemeFile reads a TOML theme from the named file.
func LoadThemeFile(path string) (Theme, error) {
	f, err := os.Open(path)
	if err != nil {
		return Theme{}, err
	}
	defer f.Close()
	return LoadTheme(f)
}

// Copy returns a copy of t which shares no maps or slices with t.
func (t Theme) Copy() Theme {
	c := t
	c.HiddenSpines = t.HiddenSpines.Copy()
	c.Grid.Dashes = append([]vg.Length(nil), t.Grid.Dashes...)
	return c
}

// themeParser remembers the first error so the settings can be parsed
// in one straight sequence.
type themeParser struct {
	err error
}

func (p *themeParser) length(dst *vg.Length, key, s string) {
	if s == "" || p.err != nil {
		return
	}
	l, err := vg.ParseLength(s)
	if err != nil {
		p.err = fmt.Errorf("%s: %w", key, err)
		return
	}
	*dst = l
}

func (p *themeParser) color(dst *color.Color, key, s string) {
	if s == "" || p.err != nil {
		return
	}
	c, err := ParseColor(s)
	if err != nil {
		p.err = fmt.Errorf("%s: %w", key, err)
		return
	}
	*dst = c
}
