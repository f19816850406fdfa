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
	"fmt"
	"slices"
)

// Value is a color tagged by its color model.
//
// For the process models the components are stored in Values.  Lab values
// are normalized to [0, 1] as described for [NewLab].  Spot colors leave
// Values empty; their process equivalents are stored in RGB and CMYK, either
// of which may be nil.
type Value struct {
	Model  Model
	Values []float64
	Alpha  float64
	Name   string

	// RGB and CMYK are the fallback representations of a spot color.
	RGB  []float64
	CMYK []float64
}

// RegistrationName is the name of the registration black spot color.
const RegistrationName = "<Registration color>"

// NewRGB returns an opaque RGB color.
func NewRGB(r, g, b float64) *Value {
	return &Value{Model: RGB, Values: []float64{r, g, b}, Alpha: 1}
}

// NewCMYK returns an opaque CMYK color.
func NewCMYK(c, m, y, k float64) *Value {
	return &Value{Model: CMYK, Values: []float64{c, m, y, k}, Alpha: 1}
}

// NewGray returns an opaque gray color.
// The value 0 is black, 1 is white.
func NewGray(g float64) *Value {
	return &Value{Model: Gray, Values: []float64{g}, Alpha: 1}
}

// NewLab returns an opaque L*a*b* color.  The arguments are normalized
// components in [0, 1].  Use [LabFromDevice] to convert from L in [0, 100]
// and a, b in [-128, 127].
func NewLab(l, a, b float64) *Value {
	return &Value{Model: Lab, Values: []float64{l, a, b}, Alpha: 1}
}

// NewSpot returns an opaque spot color.  The fallbacks are copied; either
// may be nil.
func NewSpot(name string, rgb, cmyk []float64) *Value {
	return &Value{
		Model: Spot,
		Alpha: 1,
		Name:  name,
		RGB:   slices.Clone(rgb),
		CMYK:  slices.Clone(cmyk),
	}
}

// RegistrationBlack returns the spot color used for marks which must print
// on every separation.
func RegistrationBlack() *Value {
	return NewSpot(RegistrationName, []float64{0, 0, 0}, []float64{1, 1, 1, 1})
}

// LabFromDevice converts L in [0, 100] and a, b in [-128, 127] into the
// normalized representation used by [Value].
func LabFromDevice(l, a, b float64) (float64, float64, float64) {
	return l / 100, (a + 128) / 255, (b + 128) / 255
}

// LabToDevice is the inverse of [LabFromDevice].
func LabToDevice(l, a, b float64) (float64, float64, float64) {
	return l * 100, a*255 - 128, b*255 - 128
}

// Clone returns a deep copy of v.
func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}
	res := *v
	res.Values = slices.Clone(v.Values)
	res.RGB = slices.Clone(v.RGB)
	res.CMYK = slices.Clone(v.CMYK)
	return &res
}

// With returns a copy of v in a different model, with the given component
// values.  Alpha and name are preserved.
func (v *Value) With(m Model, values []float64) *Value {
	return &Value{
		Model:  m,
		Values: values,
		Alpha:  v.Alpha,
		Name:   v.Name,
	}
}

// Equal reports whether v and w describe the same color.
func (v *Value) Equal(w *Value) bool {
	if v == nil || w == nil {
		return v == w
	}
	return v.Model == w.Model &&
		v.Alpha == w.Alpha &&
		v.Name == w.Name &&
		slices.Equal(v.Values, w.Values) &&
		slices.Equal(v.RGB, w.RGB) &&
		slices.Equal(v.CMYK, w.CMYK)
}

func (v *Value) String() string {
	if v == nil {
		return "<nil>"
	}
	if v.Model == Spot {
		return fmt.Sprintf("Spot(%q, rgb=%v, cmyk=%v, alpha=%g)", v.Name, v.RGB, v.CMYK, v.Alpha)
	}
	return fmt.Sprintf("%s%v(alpha=%g)", v.Model, v.Values, v.Alpha)
}

// ToSpot converts a color into a spot color.  RGB and CMYK colors become
// the corresponding fallback, gray colors are stored as a CMYK fallback.
// Lab colors keep no fallback.  The nil color is mapped to registration
// black.
func ToSpot(v *Value) *Value {
	if v == nil {
		return RegistrationBlack()
	}
	if v.Model == Spot {
		return v.Clone()
	}
	res := &Value{Model: Spot, Alpha: v.Alpha, Name: v.Name}
	switch v.Model {
	case RGB:
		res.RGB = slices.Clone(v.Values)
	case CMYK:
		res.CMYK = slices.Clone(v.Values)
	case Gray:
		if len(v.Values) == 1 {
			res.CMYK = []float64{0, 0, 0, 1 - v.Values[0]}
		}
	}
	return res
}

// Verbose returns a short human readable description of a color,
// for example "C-0% M-100% Y-100% K-0%" or "R-255 G-0 B-0".
func Verbose(v *Value) string {
	if v == nil {
		return "No color"
	}
	var res string
	switch v.Model {
	case CMYK:
		vals := Values100(v.Values)
		res = fmt.Sprintf("C-%d%% M-%d%% Y-%d%% K-%d%%", vals[0], vals[1], vals[2], vals[3])
		if v.Alpha < 1 {
			res += fmt.Sprintf(" A-%d%%", Values100([]float64{v.Alpha})[0])
		}
	case RGB:
		vals := Values255(v.Values)
		res = fmt.Sprintf("R-%d G-%d B-%d", vals[0], vals[1], vals[2])
		if v.Alpha < 1 {
			res += fmt.Sprintf(" A-%d", Values255([]float64{v.Alpha})[0])
		}
	case Gray:
		res = fmt.Sprintf("Gray-%d", Values255(v.Values)[0])
		if v.Alpha < 1 {
			res += fmt.Sprintf(" Alpha-%d", Values255([]float64{v.Alpha})[0])
		}
	case Lab:
		l, a, b := LabToDevice(v.Values[0], v.Values[1], v.Values[2])
		res = fmt.Sprintf("L %d a %d b %d", int(l), int(a), int(b))
		if v.Alpha < 1 {
			res += fmt.Sprintf(" Alpha-%d", Values255([]float64{v.Alpha})[0])
		}
	case Spot:
		res = v.Name
	default:
		res = "???"
	}
	return res
}
