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
	"math"

	"seehuhn.de/go/cms/color"
	"seehuhn.de/go/cms/internal/float"
)

// LabToRGB converts a normalized L*a*b* color to sRGB.
//
// The conversion uses the D65 white point.  Colors outside the sRGB gamut
// give values outside [0, 1]; they are not clipped.  The result is rounded
// to three decimal places.
func LabToRGB(l, a, b float64) (r, g, bl float64) {
	L, A, B := color.LabToDevice(l, a, b)

	// Lab -> normalized XYZ
	Y := L*(1.0/116.0) + 16.0/116.0
	X := A*(1.0/500.0) + Y
	Z := B*(-1.0/200.0) + Y

	if X > 6.0/29.0 {
		X = X * X * X
	} else {
		X = X*(108.0/841.0) - 432.0/24389.0
	}
	if L > 8.0 {
		Y = Y * Y * Y
	} else {
		Y = L * (27.0 / 24389.0)
	}
	if Z > 6.0/29.0 {
		Z = Z * Z * Z
	} else {
		Z = Z*(108.0/841.0) - 432.0/24389.0
	}

	// normalized XYZ -> linear sRGB
	R := X*(1219569.0/395920.0) + Y*(-608687.0/395920.0) + Z*(-107481.0/197960.0)
	G := X*(-80960619.0/87888100.0) + Y*(82435961.0/43944050.0) + Z*(3976797.0/87888100.0)
	Bl := X*(93813.0/1774030.0) + Y*(-180961.0/887015.0) + Z*(107481.0/93370.0)

	r = float.Round(linearToSRGB(R), 3)
	g = float.Round(linearToSRGB(G), 3)
	bl = float.Round(linearToSRGB(Bl), 3)
	return r, g, bl
}

// RGBToLab converts an sRGB color to normalized L*a*b*.
// The result is rounded to three decimal places.
func RGBToLab(r, g, b float64) (l, a, bb float64) {
	R := sRGBToLinear(r)
	G := sRGBToLinear(g)
	B := sRGBToLinear(b)

	// linear sRGB -> normalized XYZ
	X := labF(R*(10135552.0/23359437.0) + G*(8788810.0/23359437.0) + B*(4435075.0/23359437.0))
	Y := labF(R*(871024.0/4096299.0) + G*(8788810.0/12288897.0) + B*(887015.0/12288897.0))
	Z := labF(R*(158368.0/8920923.0) + G*(8788810.0/80288307.0) + B*(70074185.0/80288307.0))

	l = float.Round((Y*116.0-16.0)/100.0, 3)
	a = float.Round(((X-Y)*500.0+128.0)/255.0, 3)
	bb = float.Round(((Y-Z)*200.0+128.0)/255.0, 3)
	return l, a, bb
}

// linearToSRGB applies the sRGB transfer function.
func linearToSRGB(c float64) float64 {
	if c > 0.0031308 {
		return math.Pow(c, 1.0/2.4)*1.055 - 0.055
	}
	return c * 12.92
}

// sRGBToLinear inverts the sRGB transfer function.
func sRGBToLinear(c float64) float64 {
	if c > 0.0031308*12.92 {
		return math.Pow(c*(1.0/1.055)+(0.055/1.055), 2.4)
	}
	return c * (1.0 / 12.92)
}

// labF is the forward Lab companding function.
func labF(t float64) float64 {
	if t > 216.0/24389.0 {
		return math.Pow(t, 1.0/3.0)
	}
	return t*(841.0/108.0) + 4.0/29.0
}
