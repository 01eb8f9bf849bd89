package theme

import (
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemes(t *testing.T) {
	for _, hex := range Themes {
		th, err := hex.Theme()
		require.NoError(t, err, hex.Name)
		assert.Equal(t, hex, th.Hex(), "round trip of %s", hex.Name)
	}
}

func TestLookup(t *testing.T) {
	th, err := Lookup("classic")
	require.NoError(t, err)
	assert.Equal(t, Default, th)

	_, err = Lookup("neon")
	require.ErrorIs(t, err, ErrUnknownTheme)
}

func TestInvalidHex(t *testing.T) {
	_, err := ThemeHex{Name: "broken", Piece: "cyan"}.Theme()
	require.Error(t, err)
}

func TestConvert(t *testing.T) {
	assert.Equal(t, tcell.NewRGBColor(0, 255, 255), TCell(Default.Piece))
	assert.Equal(t, color.RGBA{R: 0, G: 0, B: 255, A: 255}, RGBA(Default.Board))
}
