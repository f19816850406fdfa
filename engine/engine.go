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

// Package engine defines the interface to a color management engine.
//
// An [Engine] loads device profiles, builds transforms between them and
// applies these transforms to single colors and to raster images.  Colors
// are exchanged in the fixed buffer encoding [color.Buffer].
//
// The package also provides [Builtin], an engine which does not depend on
// a native color management module.  It validates ICC profile data, but
// computes all transforms with the analytical conversions from
// [seehuhn.de/go/cms/convert].
package engine

import (
	"fmt"

	"seehuhn.de/go/cms/color"
	"seehuhn.de/go/cms/raster"
)

// Engine is a color management engine.
type Engine interface {
	// DefaultProfile returns the built-in profile for a color model.
	DefaultProfile(m color.Model) (Profile, error)

	// OpenProfile loads a profile from ICC data.
	OpenProfile(data []byte) (Profile, error)

	// OpenProfileFile loads a profile from an ICC file.
	OpenProfileFile(path string) (Profile, error)

	// NewTransform builds a transform from data described by profile in to
	// data described by profile out.
	NewTransform(in Profile, inModel color.Model, out Profile, outModel color.Model,
		intent Intent, flags Flags) (Transform, error)

	// NewProofingTransform builds a transform which simulates the rendering
	// of colors on the device described by proof, and shows the result on
	// the device described by out.
	NewProofingTransform(in Profile, inModel color.Model, out Profile, outModel color.Model,
		proof Profile, proofIntent, finalIntent Intent, flags Flags) (Transform, error)

	// Apply transforms a single color.  The result is written to out.
	Apply(t Transform, in, out *color.Buffer) error

	// ApplyImage transforms a raster image and returns a new image.
	ApplyImage(t Transform, img *raster.Image, in, out raster.Mode) (*raster.Image, error)

	// ProfileName returns the description of a profile.
	ProfileName(p Profile) (string, error)

	// ProfileCopyright returns the copyright notice of a profile.
	ProfileCopyright(p Profile) (string, error)

	// ProfileInfo returns additional information about a profile.
	ProfileInfo(p Profile) (string, error)
}

// Profile is a handle to a device profile.
type Profile interface {
	// Model returns the color model of the device.
	Model() color.Model
}

// Transform is a handle to a color transformation built by an [Engine].
type Transform interface {
	// Models returns the color models of the input and output data.
	Models() (in, out color.Model)
}

// Intent is an ICC rendering intent.
type Intent int

// These are the rendering intents defined by the ICC specification.
const (
	Perceptual Intent = iota
	RelativeColorimetric
	Saturation
	AbsoluteColorimetric
)

func (i Intent) String() string {
	switch i {
	case Perceptual:
		return "perceptual"
	case RelativeColorimetric:
		return "relative colorimetric"
	case Saturation:
		return "saturation"
	case AbsoluteColorimetric:
		return "absolute colorimetric"
	default:
		return fmt.Sprintf("Intent(%d)", int(i))
	}
}

// Flags modify the construction of a transform.
// The values agree with the corresponding LittleCMS flags.
type Flags uint32

// These are the supported transform flags.
const (
	// FlagNoCache disables the cache of recently transformed pixels.
	FlagNoCache Flags = 0x0040

	// FlagNoOptimize asks the engine not to precalculate the transform.
	FlagNoOptimize Flags = 0x0100

	// FlagGamutCheck marks out-of-gamut colors with the alarm color.
	FlagGamutCheck Flags = 0x1000

	// FlagBlackPointCompensation enables black point compensation.
	FlagBlackPointCompensation Flags = 0x2000

	// FlagSoftProofing requests a proofing transform.
	FlagSoftProofing Flags = 0x4000
)
