package charts

import (
	"image/color"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"penguincli/pkg/contracts/domain"
)

// The species palette follows the palmerpenguins convention: Adelie in
// dark orange, Chinstrap in purple, Gentoo in teal.
var speciesPalette = map[domain.Species]color.RGBA{
	domain.SpeciesAdelie:    {R: 0xFF, G: 0x8C, B: 0x00, A: 0xFF},
	domain.SpeciesChinstrap: {R: 0xA0, G: 0x34, B: 0xF0, A: 0xFF},
	domain.SpeciesGentoo:    {R: 0x00, G: 0x8B, B: 0x8B, A: 0xFF},
}

var sexPalette = map[domain.Sex]color.RGBA{
	domain.SexFemale: {R: 0xE6, G: 0x9F, B: 0x00, A: 0xFF},
	domain.SexMale:   {R: 0x00, G: 0x72, B: 0xB2, A: 0xFF},
}

var (
	barBlue   = color.RGBA{R: 0x46, G: 0x82, B: 0xB4, A: 0xFF}
	trendGray = color.RGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xFF}
)

func speciesColor(species domain.Species) color.RGBA {
	if c, ok := speciesPalette[species]; ok {
		return c
	}
	return barBlue
}

// speciesFill is the species color at reduced opacity for fills that can
// overlap.
func speciesFill(species domain.Species) color.NRGBA {
	c := speciesColor(species)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xA0}
}

func sexColor(sex domain.Sex) color.RGBA {
	if c, ok := sexPalette[sex]; ok {
		return c
	}
	return barBlue
}

// fillThumb draws a plain color swatch for legend entries of plotters
// that have no thumbnail of their own.
type fillThumb struct {
	color color.Color
}

func (t fillThumb) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	poly := c.ClipPolygonXY(pts)
	c.FillPolygon(t.color, poly)
}
