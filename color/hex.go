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
	"fmt"
	"math"
	"strings"

	"seehuhn.de/go/cms/internal/float"
)

// ToHex converts color components into a hex string.  Each component is
// rounded to the nearest 8-bit value.  Three values give "#rrggbb", four
// values give "#rrggbbaa" (or the CMYK equivalent).
//
// For example, ToHex(1, 0, 1) returns "#ff00ff".
func ToHex(values ...float64) string {
	b := &strings.Builder{}
	b.WriteByte('#')
	for _, x := range values {
		fmt.Fprintf(b, "%02x", to255(x))
	}
	return b.String()
}

// FromHex converts a hex string into color components in [0, 1].
//
// The forms "#rgb" (each digit is duplicated) and "#rrggbb" give three
// values, "#rrggbbaa" gives four values.
func FromHex(s string) ([]float64, error) {
	switch len(s) {
	case 4:
		if s[0] != '#' {
			break
		}
		res := make([]float64, 3)
		for i := range 3 {
			d, ok := hexDigit(s[i+1])
			if !ok {
				return nil, &FormatError{Input: s, Reason: "invalid hex digit"}
			}
			res[i] = float64(d<<4|d) / 255
		}
		return res, nil
	case 7, 9:
		if s[0] != '#' {
			break
		}
		return decodeHexBytes(s, 2)
	}
	return nil, &FormatError{Input: s, Reason: "expected #rgb, #rrggbb or #rrggbbaa"}
}

// FromHexRGBA is like [FromHex], but always returns four values.  If the
// input has no alpha component, alpha is set to 1.
func FromHexRGBA(s string) ([]float64, error) {
	if len(s) != 7 && len(s) != 9 {
		return nil, &FormatError{Input: s, Reason: "expected #rrggbb or #rrggbbaa"}
	}
	res, err := FromHex(s)
	if err != nil {
		return nil, err
	}
	if len(res) == 3 {
		res = append(res, 1)
	}
	return res, nil
}

// ToGDKHex converts RGB values into the 16-bit per channel form
// "#rrrrggggbbbb".
func ToGDKHex(rgb []float64) string {
	b := &strings.Builder{}
	b.WriteByte('#')
	for _, x := range rgb {
		v := float.Clamp(math.Round(x*65535), 0, 65535)
		fmt.Fprintf(b, "%04x", int(v))
	}
	return b.String()
}

// FromGDKHex is the inverse of [ToGDKHex].
func FromGDKHex(s string) ([]float64, error) {
	if len(s) != 13 || s[0] != '#' {
		return nil, &FormatError{Input: s, Reason: "expected #rrrrggggbbbb"}
	}
	return decodeHexBytes(s, 4)
}

// decodeHexBytes decodes the groups of width hex digits following the
// leading '#'.
func decodeHexBytes(s string, width int) ([]float64, error) {
	n := (len(s) - 1) / width
	scale := float64(uint64(1)<<(4*width) - 1)
	res := make([]float64, n)
	for i := range n {
		var v uint64
		for _, c := range []byte(s[1+i*width : 1+(i+1)*width]) {
			d, ok := hexDigit(c)
			if !ok {
				return nil, &FormatError{Input: s, Reason: "invalid hex digit"}
			}
			v = v<<4 | uint64(d)
		}
		res[i] = float64(v) / scale
	}
	return res, nil
}

func hexDigit(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
