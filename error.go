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
	"errors"

	"seehuhn.de/go/cms/color"
)

// ProfileCreationError is returned by [NewManager] and [Manager.Update]
// if the profile for a color model cannot be loaded.
type ProfileCreationError struct {
	Model color.Model
	Err   error
}

func (err *ProfileCreationError) Error() string {
	msg := "cannot create " + err.Model.String() + " profile"
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return msg
}

func (err *ProfileCreationError) Unwrap() error {
	return err.Err
}

// TransformUnavailableError indicates that a transform could not be built
// or applied.
type TransformUnavailableError struct {
	In, Out  color.Model
	Proofing bool
	Err      error
}

func (err *TransformUnavailableError) Error() string {
	kind := "transform"
	if err.Proofing {
		kind = "proofing transform"
	}
	msg := kind + " " + err.In.String() + "->" + err.Out.String() + " unavailable"
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return msg
}

func (err *TransformUnavailableError) Unwrap() error {
	return err.Err
}

var errNoProfile = errors.New("no profile loaded")
