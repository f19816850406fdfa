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

package engine

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"seehuhn.de/go/icc"

	"seehuhn.de/go/cms/color"
	"seehuhn.de/go/cms/convert"
	"seehuhn.de/go/cms/raster"
)

// Builtin is an [Engine] without a native color management module.
//
// Profile data is decoded and checked, and the color space of a profile
// determines which analytical conversion is used.  Rendering intents and
// flags are recorded, but do not change the result.
type Builtin struct{}

// NewBuiltin returns a new builtin engine.
func NewBuiltin() *Builtin {
	return &Builtin{}
}

var _ Engine = (*Builtin)(nil)

type builtinProfile struct {
	model     color.Model
	name      string
	copyright string
	info      string
}

func (p *builtinProfile) Model() color.Model {
	return p.model
}

// DefaultProfile implements the [Engine] interface.
func (e *Builtin) DefaultProfile(m color.Model) (Profile, error) {
	switch m {
	case color.RGB:
		return decodeBuiltin(icc.SRGBv4Profile, m, "sRGB IEC61966-2.1", "compact sRGB profile, ICC version 4")
	case color.Display:
		return decodeBuiltin(icc.SRGBv2Profile, m, "sRGB IEC61966-2.1 (display)", "compact sRGB profile, ICC version 2")
	case color.CMYK:
		return &builtinProfile{
			model: m,
			name:  "Built-in CMYK",
			info:  "device CMYK with maximal black generation",
		}, nil
	case color.Lab:
		return &builtinProfile{
			model: m,
			name:  "Built-in Lab",
			info:  "CIE 1976 L*a*b*, D65 white point",
		}, nil
	case color.Gray:
		return &builtinProfile{
			model: m,
			name:  "Built-in Gray",
			info:  "gray levels with sRGB primaries",
		}, nil
	}
	return nil, &ProfileError{Model: m, Err: errors.New("no default profile")}
}

func decodeBuiltin(data []byte, m color.Model, name, info string) (Profile, error) {
	p, err := decodeProfile(data)
	if err != nil {
		return nil, &ProfileError{Model: m, Err: err}
	}
	if p.model != color.RGB {
		return nil, &ProfileError{Model: m, Err: fmt.Errorf("built-in profile has model %s", p.model)}
	}
	p.model = m
	p.name = name
	p.copyright = "public domain (CC0 1.0)"
	p.info = info
	return p, nil
}

// OpenProfile implements the [Engine] interface.
func (e *Builtin) OpenProfile(data []byte) (Profile, error) {
	if len(data) == 0 {
		return nil, &ProfileError{Err: errors.New("missing profile data")}
	}
	p, err := decodeProfile(data)
	if err != nil {
		return nil, &ProfileError{Err: err}
	}
	return p, nil
}

// OpenProfileFile implements the [Engine] interface.
func (e *Builtin) OpenProfileFile(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ProfileError{Path: path, Err: err}
	}
	p, err := e.OpenProfile(data)
	if err != nil {
		var pErr *ProfileError
		if errors.As(err, &pErr) {
			pErr.Path = path
		}
		return nil, err
	}
	return p, nil
}

// decodeProfile checks ICC profile data and determines its color model.
func decodeProfile(data []byte) (*builtinProfile, error) {
	// icc.Decode takes ownership of the data
	p, err := icc.Decode(slices.Clone(data))
	if err != nil {
		return nil, err
	}

	var m color.Model
	switch p.ColorSpace {
	case icc.GraySpace:
		m = color.Gray
	case icc.RGBSpace:
		m = color.RGB
	case icc.CMYKSpace:
		m = color.CMYK
	case icc.CIELabSpace:
		m = color.Lab
	default:
		return nil, fmt.Errorf("unsupported color space %v", p.ColorSpace)
	}

	res := &builtinProfile{
		model: m,
		name:  m.String() + " ICC profile",
		info:  fmt.Sprintf("%v color space, %d bytes", p.ColorSpace, len(data)),
	}
	return res, nil
}

type builtinTransform struct {
	in, out color.Model
	proof   color.Model // zero for direct transforms
	intent  Intent
	flags   Flags
}

func (t *builtinTransform) Models() (in, out color.Model) {
	return t.in, t.out
}

// apply converts normalized component values.
func (t *builtinTransform) apply(values []float64) ([]float64, error) {
	if t.proof == 0 {
		return convert.Transform(values, t.in, t.out)
	}
	values, err := convert.Transform(values, t.in, t.proof)
	if err != nil {
		return nil, err
	}
	return convert.Transform(values, t.proof, t.out)
}

// NewTransform implements the [Engine] interface.
func (e *Builtin) NewTransform(in Profile, inModel color.Model, out Profile, outModel color.Model, intent Intent, flags Flags) (Transform, error) {
	inModel = colorimetric(inModel)
	outModel = colorimetric(outModel)
	if err := checkProfile(in, inModel); err != nil {
		return nil, &TransformError{In: inModel, Out: outModel, Err: err}
	}
	if err := checkProfile(out, outModel); err != nil {
		return nil, &TransformError{In: inModel, Out: outModel, Err: err}
	}
	return &builtinTransform{
		in:     inModel,
		out:    outModel,
		intent: intent,
		flags:  flags,
	}, nil
}

// NewProofingTransform implements the [Engine] interface.
func (e *Builtin) NewProofingTransform(in Profile, inModel color.Model, out Profile, outModel color.Model, proof Profile, proofIntent, finalIntent Intent, flags Flags) (Transform, error) {
	inModel = colorimetric(inModel)
	outModel = colorimetric(outModel)
	for _, check := range []struct {
		p Profile
		m color.Model
	}{{in, inModel}, {out, outModel}} {
		if err := checkProfile(check.p, check.m); err != nil {
			return nil, &TransformError{In: inModel, Out: outModel, Err: err}
		}
	}
	bp, ok := proof.(*builtinProfile)
	if !ok || !bp.model.IsProcess() {
		return nil, &TransformError{In: inModel, Out: outModel, Err: errors.New("invalid proofing profile")}
	}
	return &builtinTransform{
		in:     inModel,
		out:    outModel,
		proof:  bp.model,
		intent: finalIntent,
		flags:  flags | FlagSoftProofing,
	}, nil
}

// colorimetric maps the display alias to RGB.
func colorimetric(m color.Model) color.Model {
	if m == color.Display {
		return color.RGB
	}
	return m
}

func checkProfile(p Profile, m color.Model) error {
	bp, ok := p.(*builtinProfile)
	if !ok || bp == nil {
		return errors.New("profile not created by this engine")
	}
	if !m.IsProcess() {
		return fmt.Errorf("cannot transform %s data", m)
	}
	if colorimetric(bp.model) != m {
		return fmt.Errorf("%s profile used for %s data", bp.model, m)
	}
	return nil
}

// Apply implements the [Engine] interface.
func (e *Builtin) Apply(t Transform, in, out *color.Buffer) error {
	bt, ok := t.(*builtinTransform)
	if !ok {
		return errors.New("transform not created by this engine")
	}
	values, err := bt.apply(color.Decode(*in, bt.in))
	if err != nil {
		return &TransformError{In: bt.in, Out: bt.out, Err: err}
	}
	*out = color.EncodeValues(bt.out, values)
	return nil
}

// ApplyImage implements the [Engine] interface.
func (e *Builtin) ApplyImage(t Transform, img *raster.Image, in, out raster.Mode) (*raster.Image, error) {
	bt, ok := t.(*builtinTransform)
	if !ok {
		return nil, errors.New("transform not created by this engine")
	}
	if img.Mode() != in {
		return nil, &TransformError{In: bt.in, Out: bt.out,
			Err: fmt.Errorf("expected %s image, got %s", in, img.Mode())}
	}
	if in.Model() != bt.in || out.Model() != bt.out {
		return nil, &TransformError{In: bt.in, Out: bt.out,
			Err: fmt.Errorf("cannot convert %s image to %s", in, out)}
	}

	var cache map[color.Buffer]color.Buffer
	if bt.flags&FlagNoCache == 0 {
		cache = make(map[color.Buffer]color.Buffer)
	}

	b := img.Bounds()
	res := raster.New(out, b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			src := img.Pixel(x, y)
			dst, ok := cache[src]
			if !ok {
				err := e.Apply(bt, &src, &dst)
				if err != nil {
					return nil, err
				}
				if cache != nil {
					cache[src] = dst
				}
			}
			res.SetPixel(x, y, dst)
		}
	}
	return res, nil
}

// ProfileName implements the [Engine] interface.
func (e *Builtin) ProfileName(p Profile) (string, error) {
	bp, err := asBuiltin(p)
	if err != nil {
		return "", err
	}
	return bp.name, nil
}

// ProfileCopyright implements the [Engine] interface.
func (e *Builtin) ProfileCopyright(p Profile) (string, error) {
	bp, err := asBuiltin(p)
	if err != nil {
		return "", err
	}
	return bp.copyright, nil
}

// ProfileInfo implements the [Engine] interface.
func (e *Builtin) ProfileInfo(p Profile) (string, error) {
	bp, err := asBuiltin(p)
	if err != nil {
		return "", err
	}
	return bp.info, nil
}

func asBuiltin(p Profile) (*builtinProfile, error) {
	bp, ok := p.(*builtinProfile)
	if !ok || bp == nil {
		return nil, errors.New("profile not created by this engine")
	}
	return bp, nil
}
