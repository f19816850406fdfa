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
	"github.com/xdg-go/stringprep"
	"golang.org/x/text/cases"
)

// NormalizeSpotName prepares a user supplied ink name for use as the name
// of a spot color.  The name is mapped using the SASLprep profile: unusual
// space characters become ASCII spaces, invisible characters are removed and
// the result is NFKC normalized.  Names containing control characters or
// other prohibited code points are rejected.
func NormalizeSpotName(name string) (string, error) {
	res, err := stringprep.SASLprep.Prepare(name)
	if err != nil {
		return "", &FormatError{Input: name, Reason: err.Error()}
	}
	return res, nil
}

// SameInk reports whether two spot color names refer to the same ink.
// Names are compared after normalization and case folding.
func SameInk(a, b string) bool {
	if a == b {
		return true
	}
	if na, err := NormalizeSpotName(a); err == nil {
		a = na
	}
	if nb, err := NormalizeSpotName(b); err == nil {
		b = nb
	}
	fold := cases.Fold()
	return fold.String(a) == fold.String(b)
}
