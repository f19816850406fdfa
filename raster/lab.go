// seehuhn.de/go/cms - colour management for graphics applications
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package raster

import (
	"image"
	stdcolor "image/color"

	"seehuhn.de/go/cms/color"
	"seehuhn.de/go/cms/convert"
	"seehuhn.de/go/cms/internal/float"
)

// Lab8 is an in-memory image with 8-bit L*a*b* pixels.
//
// Each pixel occupies three bytes, holding the fixed buffer encoding of a
// normalized Lab color: L scaled by 100, a and b scaled by 255.
type Lab8 struct {
	Pix    []uint8
	Stride int
	Rect   image.Rectangle
}

// NewLab8 returns a new Lab8 image with the given bounds.
// All pixels are initialized to black.
func NewLab8(r image.Rectangle) *Lab8 {
	return &Lab8{
		Pix:    make([]uint8, 3*r.Dx()*r.Dy()),
		Stride: 3 * r.Dx(),
		Rect:   r,
	}
}

// ColorModel implements the [image.Image] interface.
func (im *Lab8) ColorModel() stdcolor.Model {
	return LabModel
}

// Bounds implements the [image.Image] interface.
func (im *Lab8) Bounds() image.Rectangle {
	return im.Rect
}

// At implements the [image.Image] interface.
func (im *Lab8) At(x, y int) stdcolor.Color {
	return im.LabAt(x, y)
}

// LabAt returns the pixel at (x, y).
func (im *Lab8) LabAt(x, y int) LabColor {
	if !(image.Point{X: x, Y: y}.In(im.Rect)) {
		return LabColor{}
	}
	i := im.PixOffset(x, y)
	return LabColor{L: im.Pix[i], A: im.Pix[i+1], B: im.Pix[i+2]}
}

// Set implements the [draw.Image] interface.
func (im *Lab8) Set(x, y int, c stdcolor.Color) {
	im.SetLab(x, y, LabModel.Convert(c).(LabColor))
}

// SetLab sets the pixel at (x, y).
func (im *Lab8) SetLab(x, y int, c LabColor) {
	if !(image.Point{X: x, Y: y}.In(im.Rect)) {
		return
	}
	i := im.PixOffset(x, y)
	im.Pix[i] = c.L
	im.Pix[i+1] = c.A
	im.Pix[i+2] = c.B
}

// PixOffset returns the index of the first byte of the pixel at (x, y).
func (im *Lab8) PixOffset(x, y int) int {
	return (y-im.Rect.Min.Y)*im.Stride + (x-im.Rect.Min.X)*3
}

// LabColor is a single Lab8 pixel.
type LabColor struct {
	L, A, B uint8
}

// Values returns the normalized Lab components of the pixel.
func (c LabColor) Values() []float64 {
	return color.Decode(color.Buffer{c.L, c.A, c.B}, color.Lab)
}

// RGBA implements the [stdcolor.Color] interface.
// Colors outside the sRGB gamut are clipped.
func (c LabColor) RGBA() (r, g, b, a uint32) {
	v := c.Values()
	rf, gf, bf := convert.LabToRGB(v[0], v[1], v[2])
	return to16(rf), to16(gf), to16(bf), 0xffff
}

// LabModel converts colors to [LabColor].
var LabModel = stdcolor.ModelFunc(labModel)

func labModel(c stdcolor.Color) stdcolor.Color {
	if c, ok := c.(LabColor); ok {
		return c
	}
	r, g, b, a := c.RGBA()
	if a == 0 {
		return LabColor{L: 0, A: 128, B: 128}
	}
	// un-premultiply
	rf := float64(r) / float64(a)
	gf := float64(g) / float64(a)
	bf := float64(b) / float64(a)
	l, la, lb := convert.RGBToLab(rf, gf, bf)
	buf := color.EncodeValues(color.Lab, []float64{l, la, lb})
	return LabColor{L: buf[0], A: buf[1], B: buf[2]}
}

func to16(x float64) uint32 {
	return uint32(float.Clamp(x, 0, 1)*0xffff + 0.5)
}
