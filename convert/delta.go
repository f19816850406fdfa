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

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/cms/color"
)

// Chroma returns the CIE 1976 chroma of a normalized L*a*b* color.
func Chroma(lab []float64) float64 {
	_, a, b := color.LabToDevice(lab[0], lab[1], lab[2])
	return vec.Vec2{X: a, Y: b}.Length()
}

// DeltaE76 returns the CIE 1976 color difference between two normalized
// L*a*b* colors.
func DeltaE76(lab1, lab2 []float64) float64 {
	l1, a1, b1 := color.LabToDevice(lab1[0], lab1[1], lab1[2])
	l2, a2, b2 := color.LabToDevice(lab2[0], lab2[1], lab2[2])
	dab := vec.Vec2{X: a1, Y: b1}.Sub(vec.Vec2{X: a2, Y: b2}).Length()
	return math.Hypot(l1-l2, dab)
}
