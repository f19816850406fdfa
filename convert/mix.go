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

package convert

import (
	"fmt"

	"seehuhn.de/go/cms/color"
)

// MixValues interpolates componentwise between two lists of values.
// A coefficient of 0 gives x, a coefficient of 1 gives y.
func MixValues(x, y []float64, coef float64) ([]float64, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: %d vs. %d components", color.ErrIncompatibleColors, len(x), len(y))
	}
	res := make([]float64, len(x))
	for i := range x {
		res[i] = mix(x[i], y[i], coef)
	}
	return res, nil
}

// Mix interpolates between two colors.  Both colors must use the same
// model, one of RGB, CMYK or Gray.  Alpha is interpolated in the same way as
// the color components; the name of the result is empty.
func Mix(c1, c2 *color.Value, coef float64) (*color.Value, error) {
	if c1 == nil || c2 == nil {
		return nil, fmt.Errorf("%w: missing color", color.ErrIncompatibleColors)
	}
	switch c1.Model {
	case color.RGB, color.CMYK, color.Gray:
	default:
		return nil, fmt.Errorf("%w: cannot mix %s colors", color.ErrIncompatibleColors, c1.Model)
	}
	if c1.Model != c2.Model {
		return nil, fmt.Errorf("%w: %s vs. %s", color.ErrIncompatibleColors, c1.Model, c2.Model)
	}
	values, err := MixValues(c1.Values, c2.Values, coef)
	if err != nil {
		return nil, err
	}
	return &color.Value{
		Model:  c1.Model,
		Values: values,
		Alpha:  mix(c1.Alpha, c2.Alpha, coef),
	}, nil
}

func mix(x, y, coef float64) float64 {
	if x < y {
		return x + (y-x)*coef
	}
	return x - (x-y)*coef
}
