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
	"seehuhn.de/go/cms/convert"
	"seehuhn.de/go/cms/engine"
	"seehuhn.de/go/cms/raster"
)

// analytical maps the display alias to RGB.
func analytical(model color.Model) color.Model {
	if model == color.Display {
		return color.RGB
	}
	return model
}

// checkArity verifies that v has the right number of components.
func checkArity(v *color.Value) error {
	if n := v.Model.Channels(); n > 0 && len(v.Values) != n {
		return &color.FormatError{
			Input:  v.String(),
			Reason: "wrong number of components for " + v.Model.String(),
		}
	}
	return nil
}

// doTransform converts the components of v from model in to model out.
// The caller must hold m.mu.
func (m *Manager) doTransform(v *color.Value, in, out color.Model) ([]float64, error) {
	if !m.cfg.UseCMS {
		return convert.Transform(v.Values, analytical(in), analytical(out))
	}
	if err := checkArity(v); err != nil {
		return nil, err
	}

	tr, err := m.getTransform(in, out)
	if err != nil {
		return nil, err
	}
	src := color.Encode(v, false)
	var dst color.Buffer
	err = m.engine.Apply(tr, &src, &dst)
	if err != nil {
		return nil, &TransformUnavailableError{In: in, Out: out, Err: err}
	}
	return color.Decode(dst, analytical(out)), nil
}

// doProofTransform simulates the rendering of v on the CMYK device.
// The result is in RGB.  The caller must hold m.mu.
func (m *Manager) doProofTransform(v *color.Value, in color.Model) ([]float64, error) {
	if err := checkArity(v); err != nil {
		return nil, err
	}
	tr, err := m.getProofTransform(in)
	if err != nil {
		return nil, err
	}
	src := color.Encode(v, false)
	var dst color.Buffer
	err = m.engine.Apply(tr, &src, &dst)
	if err != nil {
		return nil, &TransformUnavailableError{In: in, Out: m.displayModel(), Proofing: true, Err: err}
	}
	return color.Decode(dst, color.RGB), nil
}

// doBitmapTransform converts img to the given mode.  If target is
// non-zero, it selects the profile of the output data; this is used to
// render images with the display profile.  The caller must hold m.mu.
func (m *Manager) doBitmapTransform(img *raster.Image, mode raster.Mode, target color.Model) (*raster.Image, error) {
	if !m.cfg.UseCMS {
		return img.Convert(mode), nil
	}
	in := img.Mode().Model()
	if target == 0 {
		target = mode.Model()
	}
	tr, err := m.getTransform(in, target)
	if err != nil {
		return nil, err
	}
	res, err := m.engine.ApplyImage(tr, img, img.Mode(), mode)
	if err != nil {
		return nil, &TransformUnavailableError{In: in, Out: target, Err: err}
	}
	return res, nil
}

// doProofBitmapTransform simulates the rendering of img on the CMYK
// device.  The result is an RGB image.  The caller must hold m.mu.
func (m *Manager) doProofBitmapTransform(img *raster.Image) (*raster.Image, error) {
	if img.Mode() == raster.Mono {
		img = img.Convert(raster.Gray)
	}
	in := img.Mode().Model()
	tr, err := m.getProofTransform(in)
	if err != nil {
		return nil, err
	}
	res, err := m.engine.ApplyImage(tr, img, img.Mode(), raster.RGB)
	if err != nil {
		return nil, &TransformUnavailableError{In: in, Out: m.displayModel(), Proofing: true, Err: err}
	}
	return res, nil
}

// intentFor returns the rendering intent for transforms to model out.
// The caller must hold m.mu.
func (m *Manager) intentFor(out color.Model) engine.Intent {
	if out == color.CMYK {
		return m.cfg.CMYKIntent
	}
	return m.cfg.RGBIntent
}
