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
	"fmt"

	"seehuhn.de/go/cms/color"
)

// ProfileError is returned when a profile cannot be loaded or created.
type ProfileError struct {
	Model color.Model // zero if unknown
	Path  string      // empty for profiles not loaded from a file
	Err   error
}

func (err *ProfileError) Error() string {
	msg := "cannot load"
	if err.Model != 0 {
		msg += " " + err.Model.String()
	}
	msg += " profile"
	if err.Path != "" {
		msg += fmt.Sprintf(" %q", err.Path)
	}
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return msg
}

func (err *ProfileError) Unwrap() error {
	return err.Err
}

// TransformError is returned when a transform cannot be built or applied.
type TransformError struct {
	In, Out color.Model
	Err     error
}

func (err *TransformError) Error() string {
	msg := fmt.Sprintf("transform %s -> %s failed", err.In, err.Out)
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return msg
}

func (err *TransformError) Unwrap() error {
	return err.Err
}
