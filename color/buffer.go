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

package color

import (
	"math"

	"seehuhn.de/go/cms/internal/float"
)

// Buffer is the fixed width representation of a color which is exchanged
// with a color management engine.  Unused entries are zero.
//
// RGB, CMYK and gray components are scaled by 255.  Lab components use the
// scales 100, 255 and 255 for L, a and b; since Lab values are already
// normalized, this keeps a and b centred at 128.
type Buffer [4]uint8

// Encode quantizes a color into a [Buffer].  For spot colors the CMYK
// fallback is used if useCMYK is set, otherwise the RGB fallback.  The nil
// color gives an all-zero buffer.
func Encode(v *Value, useCMYK bool) Buffer {
	if v == nil {
		return Buffer{}
	}
	if v.Model == Spot {
		if useCMYK {
			return EncodeValues(CMYK, v.CMYK)
		}
		return EncodeValues(RGB, v.RGB)
	}
	return EncodeValues(v.Model, v.Values)
}

// EncodeValues quantizes the component values of a color in model m.
// Missing trailing entries are left zero.
func EncodeValues(m Model, values []float64) Buffer {
	var res Buffer
	if m == Lab {
		scale := [3]float64{100, 255, 255}
		for i := 0; i < len(values) && i < 3; i++ {
			res[i] = quantize(values[i], scale[i])
		}
		return res
	}
	for i := 0; i < len(values) && i < 4; i++ {
		res[i] = quantize(values[i], 255)
	}
	return res
}

// Decode converts a [Buffer] back into component values for model m.
// CMYK uses all four entries, gray only the first one, all other models
// the first three.
func Decode(b Buffer, m Model) []float64 {
	switch m {
	case CMYK:
		return From255(b[:])
	case Gray:
		return From255(b[:1])
	case Lab:
		return []float64{
			float64(b[0]) / 100,
			float64(b[1]) / 255,
			float64(b[2]) / 255,
		}
	default:
		return From255(b[:3])
	}
}

// Values255 scales values from [0, 1] to integers in [0, 255].
func Values255(values []float64) []int {
	res := make([]int, len(values))
	for i, x := range values {
		res[i] = to255(x)
	}
	return res
}

// Values100 scales values from [0, 1] to integers in [0, 100].
func Values100(values []float64) []int {
	res := make([]int, len(values))
	for i, x := range values {
		res[i] = int(math.Round(100 * x))
	}
	return res
}

// From255 is the inverse of [Values255].
func From255[T ~int | ~uint8](values []T) []float64 {
	res := make([]float64, len(values))
	for i, x := range values {
		res[i] = float64(x) / 255
	}
	return res
}

// From100 is the inverse of [Values100].
func From100(values []int) []float64 {
	res := make([]float64, len(values))
	for i, x := range values {
		res[i] = float64(x) / 100
	}
	return res
}

func to255(x float64) int {
	return int(float.Clamp(math.Round(255*x), 0, 255))
}

func quantize(x, scale float64) uint8 {
	return uint8(float.Clamp(math.Round(scale*x), 0, 255))
}
