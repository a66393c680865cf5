package render

import "image/color"

// fillRGBA converts cell colours into RGBA pixels in buf. When cells is
// empty the buffer is cleared to transparent black.
func fillRGBA(buf []byte, cells []color.RGBA) {
	if len(cells) == 0 {
		for i := range buf {
			buf[i] = 0
		}
		return
	}
	for i, col := range cells {
		base := i * 4
		if base+3 >= len(buf) {
			return
		}
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
