package theme

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

var ErrUnknownTheme = errors.New("theme: no theme found")

// Theme is used for coloring the board in every frontend
type Theme struct {
	Name       string
	Piece      colorful.Color
	Board      colorful.Color
	Border     colorful.Color
	Background colorful.Color
	Text       colorful.Color
}

// ThemeHex is the serializable form of a Theme
type ThemeHex struct {
	Name       string `json:"name"`
	Piece      string `json:"piece"`
	Board      string `json:"board"`
	Border     string `json:"border"`
	Background string `json:"background"`
	Text       string `json:"text"`
}

// Hex converts a Theme to a ThemeHex
func (t Theme) Hex() ThemeHex {
	return ThemeHex{
		t.Name,
		t.Piece.Hex(),
		t.Board.Hex(),
		t.Border.Hex(),
		t.Background.Hex(),
		t.Text.Hex(),
	}
}

// Theme converts a ThemeHex to a Theme
func (t ThemeHex) Theme() (Theme, error) {
	th := Theme{Name: t.Name}
	for _, c := range []struct {
		hex string
		dst *colorful.Color
	}{
		{t.Piece, &th.Piece},
		{t.Board, &th.Board},
		{t.Border, &th.Border},
		{t.Background, &th.Background},
		{t.Text, &th.Text},
	} {
		parsed, err := colorful.Hex(c.hex)
		if err != nil {
			return Theme{}, fmt.Errorf("failed to parse theme %s color %q: %w", t.Name, c.hex, err)
		}
		*c.dst = parsed
	}

	return th, nil
}

// ImportThemes returns a converted Theme from a slice of ThemeHex
// entities if its name matches the want argument
func ImportThemes(want string, themes []ThemeHex) (Theme, error) {
	for _, t := range themes {
		if t.Name == want {
			return t.Theme()
		}
	}

	return Theme{}, fmt.Errorf("%w: %s", ErrUnknownTheme, want)
}

// Lookup returns a built-in theme.
func Lookup(name string) (Theme, error) {
	return ImportThemes(name, Themes)
}

func TCell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func RGBA(c colorful.Color) color.RGBA {
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// ThemeClassic is the default theme
var ThemeClassic = ThemeHex{
	"classic", // Name
	"#00ffff", // Piece
	"#0000ff", // Board
	"#808080", // Border
	"#000000", // Background
	"#ffffff", // Text
}

var Themes = []ThemeHex{
	ThemeClassic,
	{"mono", "#ffffff", "#9e9e9e", "#606060", "#000000", "#d0d0d0"},
	{"dusk", "#ffb86c", "#6272a4", "#44475a", "#282a36", "#f8f8f2"},
}

var Default = mustTheme(ThemeClassic)

func mustTheme(t ThemeHex) Theme {
	th, err := t.Theme()
	if err != nil {
		panic(err)
	}

	return th
}
