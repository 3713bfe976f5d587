// Package render converts cell buffers into pixels for the GUI driver.
package render

import (
	"image"
	"image/color"
)

// FillBinaryRGBA converts cell data into RGBA pixels in buf. Any non-zero
// cell is drawn with on.
func FillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// Image renders cells as a w×h RGBA image, one pixel per cell.
func Image(cells []uint8, w, h int, on, off color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	FillBinaryRGBA(img.Pix, cells, on, off)
	return img
}
