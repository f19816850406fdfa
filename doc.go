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

// Package cms implements color management for graphics applications.
//
// A [Manager] owns one device profile for each of the process color
// models RGB, CMYK, Lab and Gray, and optionally a display profile.  It
// converts colors and raster images between these models, either through
// a color management [engine.Engine] or, if color management is switched
// off, with the analytical conversions from the convert package.
//
// A Manager is created from a [Config]:
//
//	cfg := cms.DefaultConfig()
//	cfg.ProfileFiles = map[color.Model]string{
//	    color.CMYK: "/usr/share/color/icc/ISOcoated_v2_eci.icc",
//	}
//	m, err := cms.NewManager(nil, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cmyk, err := m.CMYK(color.NewRGB(1, 0, 0))
//
// Transforms are built lazily and cached.  [Manager.Update] reloads the
// profiles and discards all cached transforms.
//
// For on-screen display, [Manager.DisplayColor] and [Manager.DisplayImage]
// select between direct transforms and soft-proofing through the CMYK
// profile, depending on the configuration.
package cms
