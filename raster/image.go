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

// Package raster provides the raster images handled by the color manager.
//
// An [Image] wraps a Go image together with a [Mode] tag.  The color
// manager reads and writes pixels using the fixed buffer encoding of
// [color.Buffer], so that a color management engine can transform whole
// bitmaps in the same way as single colors.
package raster

import (
	"fmt"
	"image"
	stdcolor "image/color"
	"slices"

	"golang.org/x/image/draw"

	"seehuhn.de/go/cms/color"
)

// Mode describes the pixel format of an [Image].
type Mode int

// These are the supported image modes.
const (
	Mono Mode = iota + 1
	Gray
	RGB
	CMYK
	Lab
)

func (m Mode) String() string {
	switch m {
	case Mono:
		return "Mono"
	case Gray:
		return "Gray"
	case RGB:
		return "RGB"
	case CMYK:
		return "CMYK"
	case Lab:
		return "Lab"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Model returns the color model of the pixels.
// Monochrome images are treated as gray images with only two levels.
func (m Mode) Model() color.Model {
	switch m {
	case Mono, Gray:
		return color.Gray
	case RGB:
		return color.RGB
	case CMYK:
		return color.CMYK
	case Lab:
		return color.Lab
	default:
		return 0
	}
}

// ModeFor returns the image mode used for pixels of the given color model.
// Display pixels are stored as RGB.
func ModeFor(m color.Model) (Mode, bool) {
	switch m {
	case color.Gray:
		return Gray, true
	case color.RGB, color.Display:
		return RGB, true
	case color.CMYK:
		return CMYK, true
	case color.Lab:
		return Lab, true
	}
	return 0, false
}

var monoPalette = stdcolor.Palette{stdcolor.Black, stdcolor.White}

// Image is a raster image tagged with its mode.
type Image struct {
	mode Mode
	img  draw.Image
}

// New allocates a new image of the given mode.
func New(mode Mode, r image.Rectangle) *Image {
	var img draw.Image
	switch mode {
	case Mono:
		img = image.NewPaletted(r, monoPalette)
	case Gray:
		img = image.NewGray(r)
	case RGB:
		img = image.NewRGBA(r)
	case CMYK:
		img = image.NewCMYK(r)
	case Lab:
		img = NewLab8(r)
	default:
		panic(fmt.Sprintf("raster: invalid mode %d", int(mode)))
	}
	return &Image{mode: mode, img: img}
}

// FromImage wraps a Go image.  Images of type *image.Gray, *image.RGBA,
// *image.CMYK and *Lab8 are used directly, without copying the pixel
// data; two-color paletted images are treated as Mono.  All other images
// are copied into a new RGB image.
func FromImage(src image.Image) *Image {
	switch src := src.(type) {
	case *image.Gray:
		return &Image{mode: Gray, img: src}
	case *image.RGBA:
		return &Image{mode: RGB, img: src}
	case *image.CMYK:
		return &Image{mode: CMYK, img: src}
	case *Lab8:
		return &Image{mode: Lab, img: src}
	case *image.Paletted:
		if slices.Equal(src.Palette, monoPalette) {
			return &Image{mode: Mono, img: src}
		}
	}
	b := src.Bounds()
	res := New(RGB, b)
	draw.Draw(res.img, b, src, b.Min, draw.Src)
	return res
}

// Mode returns the pixel format of the image.
func (im *Image) Mode() Mode {
	return im.mode
}

// Bounds returns the domain of the image.
func (im *Image) Bounds() image.Rectangle {
	return im.img.Bounds()
}

// Image returns the underlying Go image.
func (im *Image) Image() image.Image {
	return im.img
}

// Copy returns a deep copy of the image.
func (im *Image) Copy() *Image {
	var img draw.Image
	switch src := im.img.(type) {
	case *image.Paletted:
		dst := *src
		dst.Pix = slices.Clone(src.Pix)
		img = &dst
	case *image.Gray:
		dst := *src
		dst.Pix = slices.Clone(src.Pix)
		img = &dst
	case *image.RGBA:
		dst := *src
		dst.Pix = slices.Clone(src.Pix)
		img = &dst
	case *image.CMYK:
		dst := *src
		dst.Pix = slices.Clone(src.Pix)
		img = &dst
	case *Lab8:
		dst := *src
		dst.Pix = slices.Clone(src.Pix)
		img = &dst
	}
	return &Image{mode: im.mode, img: img}
}

// Convert returns a copy of the image in a different mode.  This is a
// plain reinterpretation of the pixel data, using the conversions of the
// Go color models, without any color management.  Conversion to Mono
// maps every pixel to the nearer of black and white.
func (im *Image) Convert(mode Mode) *Image {
	if mode == im.mode {
		return im.Copy()
	}
	b := im.Bounds()
	res := New(mode, b)
	draw.Draw(res.img, b, im.img, b.Min, draw.Src)
	return res
}

// Pixel returns the pixel at (x, y) in fixed buffer encoding.
func (im *Image) Pixel(x, y int) color.Buffer {
	switch img := im.img.(type) {
	case *image.Paletted:
		if img.ColorIndexAt(x, y) != 0 {
			return color.Buffer{255}
		}
		return color.Buffer{}
	case *image.Gray:
		return color.Buffer{img.GrayAt(x, y).Y}
	case *image.RGBA:
		c := img.RGBAAt(x, y)
		return color.Buffer{c.R, c.G, c.B}
	case *image.CMYK:
		c := img.CMYKAt(x, y)
		return color.Buffer{c.C, c.M, c.Y, c.K}
	case *Lab8:
		c := img.LabAt(x, y)
		return color.Buffer{c.L, c.A, c.B}
	}
	return color.Buffer{}
}

// SetPixel sets the pixel at (x, y) from its fixed buffer encoding.
func (im *Image) SetPixel(x, y int, b color.Buffer) {
	switch img := im.img.(type) {
	case *image.Paletted:
		var idx uint8
		if b[0] >= 128 {
			idx = 1
		}
		img.SetColorIndex(x, y, idx)
	case *image.Gray:
		img.SetGray(x, y, stdcolor.Gray{Y: b[0]})
	case *image.RGBA:
		img.SetRGBA(x, y, stdcolor.RGBA{R: b[0], G: b[1], B: b[2], A: 0xff})
	case *image.CMYK:
		img.SetCMYK(x, y, stdcolor.CMYK{C: b[0], M: b[1], Y: b[2], K: b[3]})
	case *Lab8:
		img.SetLab(x, y, LabColor{L: b[0], A: b[1], B: b[2]})
	}
}
