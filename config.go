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
	"maps"

	"seehuhn.de/go/cms/color"
	"seehuhn.de/go/cms/engine"
)

// Config holds the settings of a [Manager].
type Config struct {
	// UseCMS selects color managed conversions.  If this is false, the
	// analytical conversions from the convert package are used.
	UseCMS bool

	// UseDisplayProfile selects the display profile, if one is loaded,
	// for on-screen rendering.
	UseDisplayProfile bool

	// Proofing enables soft-proofing through the CMYK profile for
	// on-screen rendering.
	Proofing bool

	// GamutCheck asks the engine to mark colors which cannot be
	// reproduced by the proofing device.
	GamutCheck bool

	// AlarmCodes is the RGB color used to mark out-of-gamut colors.
	AlarmCodes [3]float64

	// ProofForSpot makes spot colors render through their CMYK fallback
	// on screen.
	ProofForSpot bool

	RGBIntent  engine.Intent
	CMYKIntent engine.Intent
	Flags      engine.Flags

	// Profiles holds ICC data which replaces the default profile of a
	// color model.  The display profile can only be set here or in
	// ProfileFiles.
	Profiles map[color.Model][]byte

	// ProfileFiles gives ICC files which replace the default profile of a
	// color model.  Entries in Profiles take precedence.
	ProfileFiles map[color.Model]string

	// CacheSize is the capacity of each transform cache.
	// If this is zero, a default is used.
	CacheSize int
}

// DefaultConfig returns the default settings.
func DefaultConfig() *Config {
	return &Config{
		UseCMS:     true,
		AlarmCodes: [3]float64{0, 1, 1},
		RGBIntent:  engine.RelativeColorimetric,
		CMYKIntent: engine.Perceptual,
		Flags:      engine.FlagNoOptimize,
	}
}

// defaultCacheSize is enough for every pair of color models.
const defaultCacheSize = 64

func (c *Config) clone() *Config {
	res := *c
	if c.Profiles != nil {
		res.Profiles = make(map[color.Model][]byte, len(c.Profiles))
		for m, data := range c.Profiles {
			res.Profiles[m] = append([]byte(nil), data...)
		}
	}
	res.ProfileFiles = maps.Clone(c.ProfileFiles)
	return &res
}

func (c *Config) cacheSize() int {
	if c.CacheSize > 0 {
		return c.CacheSize
	}
	return defaultCacheSize
}
