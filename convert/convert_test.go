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

package convert

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"seehuhn.de/go/cms/color"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestDeviceConversions(t *testing.T) {
	c, m, y, k := RGBToCMYK(1, 0, 0)
	if d := cmp.Diff([]float64{0, 1, 1, 0}, []float64{c, m, y, k}); d != "" {
		t.Error(d)
	}
	r, g, b := CMYKToRGB(0, 1, 1, 0)
	if d := cmp.Diff([]float64{1, 0, 0}, []float64{r, g, b}); d != "" {
		t.Error(d)
	}
	r, g, b = CMYKToRGB(0.6, 0.4, 0.2, 0.3)
	if d := cmp.Diff([]float64{0.1, 0.3, 0.5}, []float64{r, g, b}); d != "" {
		t.Error(d)
	}
	r, g, b = CMYKToRGB(1, 1, 1, 1)
	if d := cmp.Diff([]float64{0, 0, 0}, []float64{r, g, b}); d != "" {
		t.Error(d)
	}
	c, m, y, k = GrayToCMYK(0.25)
	if d := cmp.Diff([]float64{0, 0, 0, 0.75}, []float64{c, m, y, k}); d != "" {
		t.Error(d)
	}
	if gray := RGBToGray(0.3, 0.6, 0.9); math.Abs(gray-0.6) > 1e-12 {
		t.Errorf("RGBToGray = %g", gray)
	}
}

// TestRGBCMYKRoundTrip checks that converting RGB to CMYK and back recovers
// the original values.
func TestRGBCMYKRoundTrip(t *testing.T) {
	const n = 10
	for i := 0; i <= n; i++ {
		for j := 0; j <= n; j++ {
			for l := 0; l <= n; l++ {
				r, g, b := float64(i)/n, float64(j)/n, float64(l)/n
				r2, g2, b2 := CMYKToRGB(RGBToCMYK(r, g, b))
				if math.Abs(r-r2) > 0.001 || math.Abs(g-g2) > 0.001 || math.Abs(b-b2) > 0.001 {
					t.Errorf("(%g, %g, %g) -> (%g, %g, %g)", r, g, b, r2, g2, b2)
				}
			}
		}
	}
}

func TestLabRoundTrip(t *testing.T) {
	labs := [][]float64{
		{0.5, 0.3, 0.2},
		{0.5, 0.5, 0.5},
		{0.7, 0.6, 0.4},
		{0.2, 0.55, 0.45},
	}
	for _, lab := range labs {
		r, g, b := LabToRGB(lab[0], lab[1], lab[2])
		l, a, bb := RGBToLab(r, g, b)
		if d := cmp.Diff(lab, []float64{l, a, bb}, cmpopts.EquateApprox(0, 0.01)); d != "" {
			t.Errorf("Lab %v: %s", lab, d)
		}
	}

	rgbs := [][]float64{
		{1, 0, 0},
		{0.8, 0.6, 0.3},
		{0.2, 0.4, 0.6},
		{0, 0, 0},
		{1, 1, 1},
		{0.5, 0.5, 0.5},
	}
	for _, rgb := range rgbs {
		l, a, b := RGBToLab(rgb[0], rgb[1], rgb[2])
		r, g, bb := LabToRGB(l, a, b)
		if d := cmp.Diff(rgb, []float64{r, g, bb}, cmpopts.EquateApprox(0, 0.01)); d != "" {
			t.Errorf("RGB %v: %s", rgb, d)
		}
	}
}

func TestLabReference(t *testing.T) {
	l, a, b := RGBToLab(1, 0, 0)
	if d := cmp.Diff([]float64{0.532, 0.816, 0.765}, []float64{l, a, b}); d != "" {
		t.Error(d)
	}
	l, a, b = RGBToLab(1, 1, 1)
	if d := cmp.Diff([]float64{1, 0.502, 0.502}, []float64{l, a, b}); d != "" {
		t.Error(d)
	}
}

func TestTransform(t *testing.T) {
	cases := []struct {
		in      []float64
		from    color.Model
		to      color.Model
		want    []float64
		wantErr error
	}{
		{[]float64{0.5}, color.Gray, color.CMYK, []float64{0, 0, 0, 0.5}, nil},
		{[]float64{0.5}, color.Gray, color.RGB, []float64{0.5, 0.5, 0.5}, nil},
		{[]float64{0.5}, color.Gray, color.Lab, []float64{0.534, 0.502, 0.502}, nil},
		{[]float64{0.2, 0.4, 0.6, 0.1}, color.CMYK, color.Gray, []float64{0.5}, nil},
		{[]float64{1, 0, 0}, color.RGB, color.CMYK, []float64{0, 1, 1, 0}, nil},
		{[]float64{1, 0, 0}, color.RGB, color.Lab, []float64{0.532, 0.816, 0.765}, nil},
		{[]float64{0.534, 0.502, 0.502}, color.Lab, color.CMYK, []float64{0, 0, 0, 0.5}, nil},
		{[]float64{1, 0.502, 0.502}, color.Lab, color.Gray, []float64{1}, nil},
		{[]float64{0.1, 0.2, 0.3}, color.RGB, color.RGB, []float64{0.1, 0.2, 0.3}, nil},
		{[]float64{0, 0, 0}, color.RGB, color.Spot, nil, ErrUnsupportedConversion},
		{[]float64{0, 0, 0}, color.Display, color.RGB, nil, ErrUnsupportedConversion},
		{[]float64{0, 0}, color.RGB, color.CMYK, nil, color.ErrInvalidFormat},
	}
	for i, c := range cases {
		t.Run(fmt.Sprintf("%d-%s-%s", i, c.from, c.to), func(t *testing.T) {
			got, err := Transform(c.in, c.from, c.to)
			if c.wantErr != nil {
				if !errors.Is(err, c.wantErr) {
					t.Fatalf("expected %v, got %v", c.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if d := cmp.Diff(c.want, got, cmpopts.EquateApprox(0, 0.002)); d != "" {
				t.Error(d)
			}
		})
	}
}

// TestTransformTable checks that every ordered pair of process models is
// covered and produces the right number of channels.
func TestTransformTable(t *testing.T) {
	samples := map[color.Model][]float64{
		color.RGB:  {0.2, 0.4, 0.6},
		color.CMYK: {0.1, 0.2, 0.3, 0.4},
		color.Lab:  {0.5, 0.5, 0.5},
		color.Gray: {0.5},
	}
	for _, in := range color.ProcessModels {
		for _, out := range color.ProcessModels {
			got, err := Transform(samples[in], in, out)
			if err != nil {
				t.Errorf("%s -> %s: %v", in, out, err)
				continue
			}
			if len(got) != out.Channels() {
				t.Errorf("%s -> %s: got %d values", in, out, len(got))
			}
		}
	}
}

func TestTransformCopies(t *testing.T) {
	in := []float64{0.1, 0.2, 0.3}
	out, err := Transform(in, color.RGB, color.RGB)
	if err != nil {
		t.Fatal(err)
	}
	out[0] = 1
	if in[0] != 0.1 {
		t.Error("identity transform aliases its input")
	}
}

func TestMix(t *testing.T) {
	red := color.NewRGB(1, 0, 0)
	blue := color.NewRGB(0, 0, 1)
	red.Name = "red"

	got, err := Mix(red, blue, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	want := &color.Value{Model: color.RGB, Values: []float64{0.5, 0, 0.5}, Alpha: 1}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}

	got, err = Mix(red, blue, 0)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(red.Values, got.Values, approx); d != "" {
		t.Error(d)
	}
	got, err = Mix(red, blue, 1)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(blue.Values, got.Values, approx); d != "" {
		t.Error(d)
	}

	// the result moves monotonically from red to blue
	prev := 1.0
	for i := 1; i <= 10; i++ {
		got, err := Mix(red, blue, float64(i)/10)
		if err != nil {
			t.Fatal(err)
		}
		if got.Values[0] > prev {
			t.Errorf("coef %g: red channel %g increased", float64(i)/10, got.Values[0])
		}
		prev = got.Values[0]
	}
}

func TestMixAlpha(t *testing.T) {
	a := color.NewGray(0)
	b := color.NewGray(1)
	b.Alpha = 0
	got, err := Mix(a, b, 0.25)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]float64{0.25, 0.75}, []float64{got.Values[0], got.Alpha}, approx); d != "" {
		t.Error(d)
	}
}

func TestMixIncompatible(t *testing.T) {
	cases := [][2]*color.Value{
		{color.NewRGB(1, 0, 0), color.NewCMYK(0, 1, 1, 0)},
		{color.NewLab(0.5, 0.5, 0.5), color.NewLab(0.5, 0.5, 0.5)},
		{color.RegistrationBlack(), color.RegistrationBlack()},
		{color.NewRGB(1, 0, 0), {Model: color.RGB, Values: []float64{1, 0}}},
		{nil, color.NewGray(0)},
	}
	for i, c := range cases {
		_, err := Mix(c[0], c[1], 0.5)
		if !errors.Is(err, color.ErrIncompatibleColors) {
			t.Errorf("%d: expected ErrIncompatibleColors, got %v", i, err)
		}
	}
}

func TestDeltaE(t *testing.T) {
	lab := []float64{0.5, 0.5, 0.5}
	if d := DeltaE76(lab, lab); d != 0 {
		t.Errorf("DeltaE76 of identical colors = %g", d)
	}

	l1, a1, b1 := color.LabFromDevice(50, 0, 0)
	l2, a2, b2 := color.LabFromDevice(50, 3, 4)
	d := DeltaE76([]float64{l1, a1, b1}, []float64{l2, a2, b2})
	if math.Abs(d-5) > 1e-9 {
		t.Errorf("DeltaE76 = %g, want 5", d)
	}
	if c := Chroma([]float64{l2, a2, b2}); math.Abs(c-5) > 1e-9 {
		t.Errorf("Chroma = %g, want 5", c)
	}
}
