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

package main

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"seehuhn.de/go/cms/color"
	"seehuhn.de/go/cms/raster"
)

func TestParseColor(t *testing.T) {
	type testCase struct {
		in   string
		want *color.Value
	}
	cases := []testCase{
		{"#ff00ff", color.NewRGB(1, 0, 1)},
		{"#fff", color.NewRGB(1, 1, 1)},
		{"#00000000", &color.Value{Model: color.RGB, Values: []float64{0, 0, 0}, Alpha: 0}},
		{"cmyk:0,0.5,1,0", color.NewCMYK(0, 0.5, 1, 0)},
		{"GRAY: 0.25", color.NewGray(0.25)},
		{"cmyk:0%,50%,100%,0%", color.NewCMYK(0, 0.5, 1, 0)},
		{"gray:25%", color.NewGray(0.25)},
		{"lab:100,0,0", color.NewLab(1, 128.0/255, 128.0/255)},
		{"spot:Pantone\u00a0021=#ff8000", color.NewSpot("Pantone 021", []float64{1, 128.0 / 255, 0}, nil)},
		{"spot:REGISTRATION", color.RegistrationBlack()},
	}
	for _, test := range cases {
		got, err := parseColor(test.in)
		if err != nil {
			t.Errorf("%q: %v", test.in, err)
			continue
		}
		if d := cmp.Diff(test.want, got, cmpopts.EquateApprox(0, 1e-12)); d != "" {
			t.Errorf("%q (-want +got):\n%s", test.in, d)
		}
	}
}

func TestParseColorErrors(t *testing.T) {
	for _, in := range []string{"ff00ff", "#ff00f", "rgb:1,0", "rgb:1,x,0", "spot:1", "spot:=#fff", "spot:x=#ff", "spot:Ink=#ff00ff80", "cmyk:0%,50,100%,0%", "cmyk:0%,5.5%,1%,0%", "lab:50%,0,0", "ink:1,2,3"} {
		_, err := parseColor(in)
		if !errors.Is(err, color.ErrInvalidFormat) {
			t.Errorf("%q: expected invalid format, got %v", in, err)
		}
	}
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]raster.Mode{
		"mono": raster.Mono,
		"Gray": raster.Gray,
		"rgb":  raster.RGB,
		"cmyk": raster.CMYK,
		"lab":  raster.Lab,
	} {
		got, err := parseMode(in)
		if err != nil || got != want {
			t.Errorf("%q: got %s, %v", in, got, err)
		}
	}
	if _, err := parseMode("rgba"); err == nil {
		t.Error("expected an error for rgba")
	}
}

func TestParseProfileArg(t *testing.T) {
	model, path, err := parseProfileArg("cmyk=/tmp/coated.icc")
	if err != nil || model != color.CMYK || path != "/tmp/coated.icc" {
		t.Errorf("got %s, %q, %v", model, path, err)
	}
	for _, in := range []string{"cmyk", "cmyk=", "spot=x.icc", "foo=x.icc"} {
		if _, _, err := parseProfileArg(in); err == nil {
			t.Errorf("%q: expected an error", in)
		}
	}
}
