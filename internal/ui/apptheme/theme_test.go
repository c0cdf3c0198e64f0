package apptheme

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"

	"focusdeck/internal/core/vitality"
)

func TestBandColorsAreDistinct(t *testing.T) {
	bands := []vitality.Band{
		vitality.BandDepleted,
		vitality.BandStrained,
		vitality.BandSteady,
		vitality.BandThriving,
	}
	seen := make(map[[4]uint8]vitality.Band)
	for _, band := range bands {
		c := BandColor(band)
		key := [4]uint8{c.R, c.G, c.B, c.A}
		if other, dup := seen[key]; dup {
			t.Errorf("bands %s and %s share a color", band, other)
		}
		seen[key] = band
	}
}

func TestThemeReportsItsBand(t *testing.T) {
	for _, band := range []vitality.Band{vitality.BandDepleted, vitality.BandThriving} {
		if got := New(band).Band(); got != band {
			t.Fatalf("Band() = %s, want %s", got, band)
		}
	}
}

func TestThemeOverridesOnlyPrimary(t *testing.T) {
	test.NewApp()
	defer test.NewApp()

	accented := New(vitality.BandThriving)

	primary := accented.Color(theme.ColorNamePrimary, theme.VariantDark)
	want := BandColor(vitality.BandThriving)
	r, g, b, a := primary.RGBA()
	wr, wg, wb, wa := want.RGBA()
	if r != wr || g != wg || b != wb || a != wa {
		t.Fatalf("primary = %v, want %v", primary, want)
	}

	background := accented.Color(theme.ColorNameBackground, theme.VariantDark)
	stock := theme.DefaultTheme().Color(theme.ColorNameBackground, theme.VariantDark)
	if background != stock {
		t.Fatalf("background = %v, want stock %v", background, stock)
	}
}

func TestThemeDelegatesSizes(t *testing.T) {
	test.NewApp()
	defer test.NewApp()

	accented := New(vitality.BandDepleted)
	if got := accented.Size(theme.SizeNameText); got != theme.DefaultTheme().Size(theme.SizeNameText) {
		t.Fatalf("text size = %v, want stock", got)
	}
	var _ fyne.Theme = accented
}
