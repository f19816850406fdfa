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
	"seehuhn.de/go/cms/color"
	"seehuhn.de/go/cms/raster"
)

// DisplayColor returns the RGB components used to show v on screen.
//
// If color management is enabled, the display profile is used when it is
// loaded and selected in the configuration.  If proofing is enabled,
// colors other than CMYK colors are rendered through the CMYK profile.
// Spot colors are first replaced by their CMYK fallback if ProofForSpot
// is set, and by their RGB fallback otherwise.
func (m *Manager) DisplayColor(v *color.Value) ([]float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.displayColor(v)
}

// DisplayColor255 is like [Manager.DisplayColor], but returns integers in
// the range 0-255.
func (m *Manager) DisplayColor255(v *color.Value) ([]int, error) {
	values, err := m.DisplayColor(v)
	if err != nil {
		return nil, err
	}
	return color.Values255(values), nil
}

func (m *Manager) displayColor(v *color.Value) ([]float64, error) {
	if !m.cfg.UseCMS {
		c, err := m.getColor(v, color.RGB)
		if err != nil {
			return nil, err
		}
		return c.Values, nil
	}

	if v == nil || v.Model == color.Spot {
		resolved := color.RGB
		if m.cfg.ProofForSpot {
			resolved = color.CMYK
		}
		c, err := m.getColor(v, resolved)
		if err != nil {
			return nil, err
		}
		v = c
	}

	out := m.displayModel()
	if m.cfg.Proofing {
		if v.Model == color.CMYK {
			return m.doTransform(v, v.Model, out)
		}
		return m.doProofTransform(v, v.Model)
	}
	if err := checkArity(v); err != nil {
		return nil, err
	}
	if v.Model == out {
		return append([]float64(nil), v.Values...), nil
	}
	return m.doTransform(v, v.Model, out)
}

// DisplayImage returns an RGB image for showing img on screen.
// The rules of [Manager.DisplayColor] apply, except that CMYK images are
// never proofed.
func (m *Manager) DisplayImage(img *raster.Image) (*raster.Image, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.cfg.UseCMS {
		return m.convertImage(img, raster.RGB, 0)
	}

	var target color.Model
	if m.hasDisplay() {
		target = color.Display
	}
	if m.cfg.Proofing && img.Mode() != raster.CMYK {
		return m.doProofBitmapTransform(img)
	}
	return m.convertImage(img, raster.RGB, target)
}
