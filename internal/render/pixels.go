package render

import "image/color"

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// LightPalette builds a palette for intensity display values: index 0 is near
// black, higher levels warm up from deep blue toward white.
func LightPalette(levels int) []color.RGBA {
	if levels < 2 {
		levels = 2
	}
	out := make([]color.RGBA, levels)
	for i := range out {
		t := float64(i) / float64(levels-1)
		out[i] = color.RGBA{
			R: uint8(10 + t*245),
			G: uint8(10 + t*230),
			B: uint8(40 + t*215),
			A: 255,
		}
	}
	return out
}
