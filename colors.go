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

package cms

import (
	"slices"

	"seehuhn.de/go/cms/color"
	"seehuhn.de/go/cms/convert"
)

// GetColor converts v into the process color model target.
// Alpha and name of the color are preserved.
//
// Spot colors are replaced by one of their fallbacks: the fallback in the
// target model if there is one, otherwise the RGB fallback, otherwise
// the CMYK fallback.  A nil color is treated as registration black.
func (m *Manager) GetColor(v *color.Value, target color.Model) (*color.Value, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.getColor(v, target)
}

// RGB converts v into an RGB color.
func (m *Manager) RGB(v *color.Value) (*color.Value, error) {
	return m.GetColor(v, color.RGB)
}

// CMYK converts v into a CMYK color.
func (m *Manager) CMYK(v *color.Value) (*color.Value, error) {
	return m.GetColor(v, color.CMYK)
}

// Lab converts v into a L*a*b* color.
func (m *Manager) Lab(v *color.Value) (*color.Value, error) {
	return m.GetColor(v, color.Lab)
}

// Gray converts v into a gray color.
func (m *Manager) Gray(v *color.Value) (*color.Value, error) {
	return m.GetColor(v, color.Gray)
}

// Color255 converts v into the model target and returns the components
// as integers in the range 0-255.
func (m *Manager) Color255(v *color.Value, target color.Model) ([]int, error) {
	c, err := m.GetColor(v, target)
	if err != nil {
		return nil, err
	}
	return color.Values255(c.Values), nil
}

// RGBA255 returns the RGB components and the alpha value of v as integers
// in the range 0-255.
func (m *Manager) RGBA255(v *color.Value) ([]int, error) {
	c, err := m.GetColor(v, color.RGB)
	if err != nil {
		return nil, err
	}
	return color.Values255(append(c.Values, c.Alpha)), nil
}

// Mix interpolates between two colors of the same model.
// See [convert.Mix] for details.
func (m *Manager) Mix(c1, c2 *color.Value, coef float64) (*color.Value, error) {
	return convert.Mix(c1, c2, coef)
}

// getColor implements GetColor.  The caller must hold m.mu.
func (m *Manager) getColor(v *color.Value, target color.Model) (*color.Value, error) {
	if v == nil {
		v = color.RegistrationBlack()
	}
	if !target.IsProcess() {
		return nil, &convert.UnsupportedError{In: v.Model, Out: target}
	}
	if v.Model == color.Spot {
		v = resolveSpot(v, target)
	}
	if err := checkArity(v); err != nil {
		return nil, err
	}
	if v.Model == target {
		return v.Clone(), nil
	}

	values, err := m.doTransform(v, v.Model, target)
	if err != nil {
		return nil, err
	}
	return v.With(target, values), nil
}

// resolveSpot replaces a spot color by one of its fallbacks.
func resolveSpot(v *color.Value, target color.Model) *color.Value {
	rgb, cmyk := v.RGB, v.CMYK
	if len(rgb) == 0 && len(cmyk) == 0 {
		reg := color.RegistrationBlack()
		rgb, cmyk = reg.RGB, reg.CMYK
	}
	switch {
	case target == color.CMYK && len(cmyk) > 0:
		return v.With(color.CMYK, slices.Clone(cmyk))
	case len(rgb) > 0:
		return v.With(color.RGB, slices.Clone(rgb))
	default:
		return v.With(color.CMYK, slices.Clone(cmyk))
	}
}
