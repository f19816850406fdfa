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

// Package convert implements analytical conversions between color models.
//
// The functions in this package are used when no color management engine
// is available.  They are pure functions without shared state.  RGB values
// are interpreted as sRGB, Lab values use the normalized representation of
// [color.Value].
package convert

import (
	"seehuhn.de/go/cms/internal/float"
)

// RGBToCMYK converts RGB values to CMYK using maximal black generation.
func RGBToCMYK(r, g, b float64) (c, m, y, k float64) {
	c = 1 - r
	m = 1 - g
	y = 1 - b
	k = min(c, m, y)
	return c - k, m - k, y - k, k
}

// CMYKToRGB converts CMYK values to RGB.
// The result is clamped to [0, 1] and rounded to three decimal places.
func CMYKToRGB(c, m, y, k float64) (r, g, b float64) {
	r = float.Round(1-min(1, c+k), 3)
	g = float.Round(1-min(1, m+k), 3)
	b = float.Round(1-min(1, y+k), 3)
	return r, g, b
}

// GrayToCMYK converts a gray level to CMYK, using only black ink.
func GrayToCMYK(gray float64) (c, m, y, k float64) {
	return 0, 0, 0, 1 - gray
}

// GrayToRGB converts a gray level to RGB.
func GrayToRGB(gray float64) (r, g, b float64) {
	return gray, gray, gray
}

// RGBToGray converts RGB values to a gray level by averaging the channels.
func RGBToGray(r, g, b float64) float64 {
	return (r + g + b) / 3
}
