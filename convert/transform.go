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
	"errors"
	"fmt"
	"slices"

	"seehuhn.de/go/cms/color"
)

// ErrUnsupportedConversion is wrapped by [UnsupportedError].
var ErrUnsupportedConversion = errors.New("unsupported color conversion")

// UnsupportedError is returned by [Transform] for model pairs which are not
// covered by the analytical conversions.
type UnsupportedError struct {
	In, Out color.Model
}

func (err *UnsupportedError) Error() string {
	return fmt.Sprintf("unsupported color conversion %s -> %s", err.In, err.Out)
}

func (err *UnsupportedError) Unwrap() error {
	return ErrUnsupportedConversion
}

type modelPair struct {
	in, out color.Model
}

// bridges lists the conversions for all ordered pairs of distinct process
// models.  Conversions without a direct formula are routed through RGB.
var bridges = map[modelPair]func([]float64) []float64{
	{color.RGB, color.CMYK}: rgbToCMYK,
	{color.RGB, color.Gray}: rgbToGray,
	{color.RGB, color.Lab}:  rgbToLab,

	{color.CMYK, color.RGB}:  cmykToRGB,
	{color.CMYK, color.Gray}: chain(cmykToRGB, rgbToGray),
	{color.CMYK, color.Lab}:  chain(cmykToRGB, rgbToLab),

	{color.Gray, color.RGB}:  grayToRGB,
	{color.Gray, color.CMYK}: grayToCMYK,
	{color.Gray, color.Lab}:  chain(grayToRGB, rgbToLab),

	{color.Lab, color.RGB}:  labToRGB,
	{color.Lab, color.CMYK}: chain(labToRGB, rgbToCMYK),
	{color.Lab, color.Gray}: chain(labToRGB, rgbToGray),
}

// Transform converts the component values of a color from model in to
// model out.  Only the process models RGB, CMYK, Lab and Gray are supported;
// spot and display colors must be resolved by the caller.  If in and out
// are the same, a copy of values is returned.
func Transform(values []float64, in, out color.Model) ([]float64, error) {
	if !in.IsProcess() || !out.IsProcess() {
		return nil, &UnsupportedError{In: in, Out: out}
	}
	if len(values) != in.Channels() {
		return nil, &color.FormatError{
			Reason: fmt.Sprintf("%s color needs %d values, got %d", in, in.Channels(), len(values)),
		}
	}
	if in == out {
		return slices.Clone(values), nil
	}
	f, ok := bridges[modelPair{in, out}]
	if !ok {
		return nil, &UnsupportedError{In: in, Out: out}
	}
	return f(values), nil
}

func chain(f, g func([]float64) []float64) func([]float64) []float64 {
	return func(x []float64) []float64 {
		return g(f(x))
	}
}

func rgbToCMYK(x []float64) []float64 {
	c, m, y, k := RGBToCMYK(x[0], x[1], x[2])
	return []float64{c, m, y, k}
}

func rgbToGray(x []float64) []float64 {
	return []float64{RGBToGray(x[0], x[1], x[2])}
}

func rgbToLab(x []float64) []float64 {
	l, a, b := RGBToLab(x[0], x[1], x[2])
	return []float64{l, a, b}
}

func cmykToRGB(x []float64) []float64 {
	r, g, b := CMYKToRGB(x[0], x[1], x[2], x[3])
	return []float64{r, g, b}
}

func grayToRGB(x []float64) []float64 {
	r, g, b := GrayToRGB(x[0])
	return []float64{r, g, b}
}

func grayToCMYK(x []float64) []float64 {
	c, m, y, k := GrayToCMYK(x[0])
	return []float64{c, m, y, k}
}

func labToRGB(x []float64) []float64 {
	r, g, b := LabToRGB(x[0], x[1], x[2])
	return []float64{r, g, b}
}
