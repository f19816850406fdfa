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
	"seehuhn.de/go/cms/engine"
	"seehuhn.de/go/cms/logging"
)

// Description summarizes the metadata of an ICC profile.
type Description struct {
	Name      string
	Copyright string
	Info      string
}

// ProfileName returns the name of the ICC profile stored in the given
// file.  If the file cannot be read, or is not a usable profile, the
// second return value is false.  If e is nil, the builtin engine is used.
func ProfileName(e engine.Engine, path string) (string, bool) {
	e, p, ok := openForMetadata(e, path)
	if !ok {
		return "", false
	}
	name, err := e.ProfileName(p)
	if err != nil {
		logMetadataFailure(path, err)
		return "", false
	}
	return name, true
}

// ProfileInfo returns the informational text of the ICC profile stored in
// the given file.  Errors are handled as for [ProfileName].
func ProfileInfo(e engine.Engine, path string) (string, bool) {
	e, p, ok := openForMetadata(e, path)
	if !ok {
		return "", false
	}
	info, err := e.ProfileInfo(p)
	if err != nil {
		logMetadataFailure(path, err)
		return "", false
	}
	return info, true
}

// ProfileDescription returns name, copyright and info of the ICC profile
// stored in the given file.  On failure, the zero Description is returned.
func ProfileDescription(e engine.Engine, path string) Description {
	e, p, ok := openForMetadata(e, path)
	if !ok {
		return Description{}
	}
	d, err := describe(e, p)
	if err != nil {
		logMetadataFailure(path, err)
		return Description{}
	}
	return d
}

// ProfileDescription returns the metadata of the profile used for the
// given color model.  The second return value is false if no profile is
// loaded for the model, or if the engine cannot provide the metadata.
func (m *Manager) ProfileDescription(model color.Model) (Description, bool) {
	p, ok := m.Profile(model)
	if !ok {
		return Description{}, false
	}
	d, err := describe(m.engine, p)
	if err != nil {
		logMetadataFailure(model.String(), err)
		return Description{}, false
	}
	return d, true
}

func describe(e engine.Engine, p engine.Profile) (Description, error) {
	var d Description
	var err error
	d.Name, err = e.ProfileName(p)
	if err != nil {
		return Description{}, err
	}
	d.Copyright, err = e.ProfileCopyright(p)
	if err != nil {
		return Description{}, err
	}
	d.Info, err = e.ProfileInfo(p)
	if err != nil {
		return Description{}, err
	}
	return d, nil
}

func openForMetadata(e engine.Engine, path string) (engine.Engine, engine.Profile, bool) {
	if e == nil {
		e = engine.NewBuiltin()
	}
	p, err := e.OpenProfileFile(path)
	if err != nil {
		logMetadataFailure(path, err)
		return e, nil, false
	}
	return e, p, true
}

func logMetadataFailure(source string, err error) {
	logging.Logger().Debug("profile metadata unavailable", "source", source, "error", err)
}
