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

// ConvertImage converts img to the given mode and returns a new image.
//
// Monochrome images are converted to gray first.  Conversion to Mono
// converts to gray and then thresholds the result.  If target is
// non-zero, the profile of this color model is used for the output data
// instead of the profile matching mode; use [color.Display] to prepare
// an image for the screen.
func (m *Manager) ConvertImage(img *raster.Image, mode raster.Mode, target color.Model) (*raster.Image, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.convertImage(img, mode, target)
}

func (m *Manager) convertImage(img *raster.Image, mode raster.Mode, target color.Model) (*raster.Image, error) {
	if img.Mode() == raster.Mono {
		img = img.Convert(raster.Gray)
	}
	if img.Mode() == mode {
		return img.Copy(), nil
	}
	if mode == raster.Mono {
		res, err := m.doBitmapTransform(img, raster.Gray, target)
		if err != nil {
			return nil, err
		}
		return res.Convert(raster.Mono), nil
	}
	return m.doBitmapTransform(img, mode, target)
}

// AdjustImage converts an image which carries its own ICC profile into
// the working profile for the same color model.  The argument profile
// is the embedded ICC data.  The mode of the image is not changed,
// except that Mono images are returned as Gray images.
func (m *Manager) AdjustImage(img *raster.Image, profile []byte) (*raster.Image, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	custom, err := m.engine.OpenProfile(profile)
	if err != nil {
		return nil, err
	}

	if img.Mode() == raster.Mono {
		img = img.Convert(raster.Gray)
	}
	model := img.Mode().Model()
	out, ok := m.handles[model]
	if !ok {
		return nil, &TransformUnavailableError{In: model, Out: model, Err: errNoProfile}
	}
	tr, err := m.engine.NewTransform(custom, model, out, model, m.intentFor(model), m.cfg.Flags)
	if err != nil {
		return nil, &TransformUnavailableError{In: model, Out: model, Err: err}
	}
	res, err := m.engine.ApplyImage(tr, img, img.Mode(), img.Mode())
	if err != nil {
		return nil, &TransformUnavailableError{In: model, Out: model, Err: err}
	}
	return res, nil
}
