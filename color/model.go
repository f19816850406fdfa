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

// Package color implements the color values handled by the color manager.
//
// Every color is tagged by a [Model]:
//   - [RGB]: red, green and blue, e.g. NewRGB(1, 0, 0)
//   - [CMYK]: cyan, magenta, yellow and black, e.g. NewCMYK(0, 1, 1, 0)
//   - [Lab]: CIE 1976 L*a*b*, stored normalized to [0, 1], see [NewLab]
//   - [Gray]: a single gray level, e.g. NewGray(0.5)
//   - [Spot]: a named ink with optional RGB and CMYK fallbacks
//   - [Display]: RGB values for the display profile; only used as a target
//
// All component values lie in the range [0, 1].  Values are treated as
// immutable: functions which convert a color always return a new [Value].
package color

import (
	"fmt"
	"strings"
)

// Model identifies the color model of a [Value].
type Model int

// These are the supported color models.
const (
	RGB Model = iota + 1
	CMYK
	Lab
	Gray
	Spot
	Display
)

// ProcessModels lists the models for which the color manager keeps a
// default profile.
var ProcessModels = []Model{RGB, CMYK, Lab, Gray}

func (m Model) String() string {
	switch m {
	case RGB:
		return "RGB"
	case CMYK:
		return "CMYK"
	case Lab:
		return "Lab"
	case Gray:
		return "Gray"
	case Spot:
		return "Spot"
	case Display:
		return "Display"
	default:
		return fmt.Sprintf("Model(%d)", int(m))
	}
}

// Channels returns the number of color components used by the model.
// Spot colors have no components of their own and return 0.
func (m Model) Channels() int {
	switch m {
	case RGB, Lab, Display:
		return 3
	case CMYK:
		return 4
	case Gray:
		return 1
	default:
		return 0
	}
}

// IsProcess reports whether m is one of RGB, CMYK, Lab or Gray.
func (m Model) IsProcess() bool {
	switch m {
	case RGB, CMYK, Lab, Gray:
		return true
	}
	return false
}

// ParseModel converts a model name (case insensitive) into a [Model].
func ParseModel(s string) (Model, error) {
	switch strings.ToLower(s) {
	case "rgb":
		return RGB, nil
	case "cmyk":
		return CMYK, nil
	case "lab":
		return Lab, nil
	case "gray", "grey", "grayscale":
		return Gray, nil
	case "spot":
		return Spot, nil
	case "display":
		return Display, nil
	}
	return 0, &FormatError{Input: s, Reason: "unknown color model"}
}
