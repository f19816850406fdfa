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

package color

import (
	"errors"
	"strconv"
)

var (
	// ErrInvalidFormat indicates malformed textual or binary color data.
	ErrInvalidFormat = errors.New("invalid color format")

	// ErrIncompatibleColors indicates that two colors cannot be combined,
	// because they use different models or a different number of components.
	ErrIncompatibleColors = errors.New("incompatible colors")
)

// FormatError is returned when a color representation cannot be parsed.
// It wraps [ErrInvalidFormat].
type FormatError struct {
	Input  string
	Reason string
}

func (err *FormatError) Error() string {
	msg := "invalid color format"
	if err.Input != "" {
		msg += " " + strconv.Quote(err.Input)
	}
	if err.Reason != "" {
		msg += ": " + err.Reason
	}
	return msg
}

func (err *FormatError) Unwrap() error {
	return ErrInvalidFormat
}
