// Package apptheme tints the stock fyne theme with the accent color of the
// current vitality band.
package apptheme

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"focusdeck/internal/core/vitality"
)

// Theme wraps the default theme and overrides the primary color per
// vitality band.
type Theme struct {
	band vitality.Band
}

var _ fyne.Theme = (*Theme)(nil)

// New returns a theme accented for the given band.
func New(band vitality.Band) *Theme {
	return &Theme{band: band}
}

// Band reports which band this theme was built for.
func (appTheme *Theme) Band() vitality.Band {
	return appTheme.band
}

func (appTheme *Theme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if name == theme.ColorNamePrimary {
		return BandColor(appTheme.band)
	}
	return theme.DefaultTheme().Color(name, variant)
}

func (appTheme *Theme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (appTheme *Theme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (appTheme *Theme) Size(name fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(name)
}

// BandColor returns the accent color for a vitality band.
func BandColor(band vitality.Band) color.NRGBA {
	switch band {
	case vitality.BandDepleted:
		return color.NRGBA{R: 209, G: 84, B: 72, A: 255}
	case vitality.BandStrained:
		return color.NRGBA{R: 229, G: 165, B: 52, A: 255}
	case vitality.BandThriving:
		return color.NRGBA{R: 64, G: 183, B: 134, A: 255}
	default:
		return color.NRGBA{R: 106, G: 155, B: 204, A: 255}
	}
}
