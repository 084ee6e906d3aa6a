package ecosystem

import "image/color"

var ecosystemPalette = []color.RGBA{
	Empty:     {R: 70, G: 52, B: 32, A: 255},
	Plant:     {R: 70, G: 160, B: 80, A: 255},
	Herbivore: {R: 235, G: 215, B: 120, A: 255},
	Carnivore: {R: 200, G: 50, B: 50, A: 255},
}

// Palette exposes the colours used to render Cells, indexed by Kind.
func (w *World) Palette() []color.RGBA {
	return ecosystemPalette
}
