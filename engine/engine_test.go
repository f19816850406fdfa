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
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/icc"

	"seehuhn.de/go/cms/color"
	"seehuhn.de/go/cms/raster"
)

func TestDefaultProfile(t *testing.T) {
	e := NewBuiltin()
	for _, m := range []color.Model{color.RGB, color.CMYK, color.Lab, color.Gray, color.Display} {
		p, err := e.DefaultProfile(m)
		if err != nil {
			t.Errorf("%s: %v", m, err)
			continue
		}
		if p.Model() != m {
			t.Errorf("%s: profile has model %s", m, p.Model())
		}
		name, err := e.ProfileName(p)
		if err != nil || name == "" {
			t.Errorf("%s: name %q, %v", m, name, err)
		}
	}

	_, err := e.DefaultProfile(color.Spot)
	var pErr *ProfileError
	if !errors.As(err, &pErr) {
		t.Errorf("expected ProfileError, got %v", err)
	}
}

func TestOpenProfile(t *testing.T) {
	e := NewBuiltin()
	for _, data := range [][]byte{icc.SRGBv2Profile, icc.SRGBv4Profile} {
		p, err := e.OpenProfile(data)
		if err != nil {
			t.Fatal(err)
		}
		if p.Model() != color.RGB {
			t.Errorf("wrong model %s", p.Model())
		}
	}

	for _, data := range [][]byte{nil, []byte("not a profile")} {
		_, err := e.OpenProfile(data)
		if err == nil {
			t.Errorf("%q: expected an error", data)
		}
	}
}

func TestOpenProfileFile(t *testing.T) {
	e := NewBuiltin()
	fname := filepath.Join(t.TempDir(), "sRGB.icc")
	err := os.WriteFile(fname, icc.SRGBv4Profile, 0o644)
	if err != nil {
		t.Fatal(err)
	}
	p, err := e.OpenProfileFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if p.Model() != color.RGB {
		t.Errorf("wrong model %s", p.Model())
	}

	missing := filepath.Join(t.TempDir(), "missing.icc")
	_, err = e.OpenProfileFile(missing)
	var pErr *ProfileError
	if !errors.As(err, &pErr) || pErr.Path != missing {
		t.Errorf("expected ProfileError for %q, got %v", missing, err)
	}
}

func mustProfile(t *testing.T, e *Builtin, m color.Model) Profile {
	t.Helper()
	p, err := e.DefaultProfile(m)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestApply(t *testing.T) {
	e := NewBuiltin()
	type testCase struct {
		in, out color.Model
		src     color.Buffer
		want    color.Buffer
	}
	cases := []testCase{
		{color.RGB, color.CMYK, color.Buffer{255, 0, 0}, color.Buffer{0, 255, 255, 0}},
		{color.CMYK, color.RGB, color.Buffer{0, 0, 0, 255}, color.Buffer{0, 0, 0}},
		{color.Gray, color.CMYK, color.Buffer{255}, color.Buffer{0, 0, 0, 0}},
		{color.RGB, color.Gray, color.Buffer{255, 255, 255}, color.Buffer{255}},
		{color.RGB, color.Display, color.Buffer{10, 20, 30}, color.Buffer{10, 20, 30}},
		{color.RGB, color.Lab, color.Buffer{255, 255, 255}, color.Buffer{100, 128, 128}},
	}
	for _, test := range cases {
		tr, err := e.NewTransform(mustProfile(t, e, test.in), test.in,
			mustProfile(t, e, test.out), test.out, Perceptual, 0)
		if err != nil {
			t.Errorf("%s->%s: %v", test.in, test.out, err)
			continue
		}
		var got color.Buffer
		err = e.Apply(tr, &test.src, &got)
		if err != nil {
			t.Errorf("%s->%s: %v", test.in, test.out, err)
			continue
		}
		if d := cmp.Diff(test.want, got); d != "" {
			t.Errorf("%s->%s (-want +got):\n%s", test.in, test.out, d)
		}
	}
}

func TestNewTransformMismatch(t *testing.T) {
	e := NewBuiltin()
	rgb := mustProfile(t, e, color.RGB)
	cmyk := mustProfile(t, e, color.CMYK)

	_, err := e.NewTransform(cmyk, color.RGB, rgb, color.RGB, Perceptual, 0)
	var tErr *TransformError
	if !errors.As(err, &tErr) {
		t.Errorf("expected TransformError, got %v", err)
	}

	_, err = e.NewTransform(rgb, color.Spot, cmyk, color.CMYK, Perceptual, 0)
	if err == nil {
		t.Error("expected an error for spot input")
	}
}

func TestProofingTransform(t *testing.T) {
	e := NewBuiltin()
	rgb := mustProfile(t, e, color.RGB)
	display := mustProfile(t, e, color.Display)
	cmyk := mustProfile(t, e, color.CMYK)

	tr, err := e.NewProofingTransform(rgb, color.RGB, display, color.RGB, cmyk,
		RelativeColorimetric, Perceptual, FlagGamutCheck)
	if err != nil {
		t.Fatal(err)
	}
	in, out := tr.Models()
	if in != color.RGB || out != color.RGB {
		t.Errorf("wrong models %s->%s", in, out)
	}

	src := color.Buffer{51, 102, 204}
	var got color.Buffer
	err = e.Apply(tr, &src, &got)
	if err != nil {
		t.Fatal(err)
	}
	// RGB -> CMYK -> RGB is exact for this color
	if d := cmp.Diff(src, got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}

	_, err = e.NewProofingTransform(rgb, color.RGB, display, color.RGB, nil,
		RelativeColorimetric, Perceptual, 0)
	if err == nil {
		t.Error("expected an error for missing proofing profile")
	}
}

func TestApplyImage(t *testing.T) {
	e := NewBuiltin()
	for _, flags := range []Flags{0, FlagNoCache} {
		tr, err := e.NewTransform(mustProfile(t, e, color.RGB), color.RGB,
			mustProfile(t, e, color.CMYK), color.CMYK, Perceptual, flags)
		if err != nil {
			t.Fatal(err)
		}

		img := raster.New(raster.RGB, image.Rect(0, 0, 3, 2))
		img.SetPixel(0, 0, color.Buffer{255, 0, 0})
		img.SetPixel(1, 0, color.Buffer{255, 255, 255})
		img.SetPixel(2, 1, color.Buffer{255, 0, 0})

		res, err := e.ApplyImage(tr, img, raster.RGB, raster.CMYK)
		if err != nil {
			t.Fatal(err)
		}
		if res.Mode() != raster.CMYK {
			t.Fatalf("wrong mode %s", res.Mode())
		}
		want := map[image.Point]color.Buffer{
			{0, 0}: {0, 255, 255, 0},
			{1, 0}: {0, 0, 0, 0},
			{2, 1}: {0, 255, 255, 0},
			{0, 1}: {0, 0, 0, 255},
		}
		for pt, w := range want {
			if got := res.Pixel(pt.X, pt.Y); got != w {
				t.Errorf("flags %x, pixel %v: got %v, want %v", flags, pt, got, w)
			}
		}

		_, err = e.ApplyImage(tr, img, raster.Gray, raster.CMYK)
		if err == nil {
			t.Error("expected an error for wrong input mode")
		}
	}
}

func TestApplyMonoImage(t *testing.T) {
	e := NewBuiltin()
	tr, err := e.NewTransform(mustProfile(t, e, color.Gray), color.Gray,
		mustProfile(t, e, color.RGB), color.RGB, Perceptual, 0)
	if err != nil {
		t.Fatal(err)
	}
	img := raster.New(raster.Mono, image.Rect(0, 0, 2, 1))
	img.SetPixel(1, 0, color.Buffer{255})

	res, err := e.ApplyImage(tr, img, raster.Mono, raster.RGB)
	if err != nil {
		t.Fatal(err)
	}
	if got := res.Pixel(0, 0); got != (color.Buffer{0, 0, 0}) {
		t.Errorf("black pixel became %v", got)
	}
	if got := res.Pixel(1, 0); got != (color.Buffer{255, 255, 255}) {
		t.Errorf("white pixel became %v", got)
	}
}

func TestForeignHandles(t *testing.T) {
	e := NewBuiltin()
	if _, err := e.ProfileInfo(nil); err == nil {
		t.Error("expected an error for nil profile")
	}
	var b color.Buffer
	if err := e.Apply(nil, &b, &b); err == nil {
		t.Error("expected an error for nil transform")
	}
}

func TestIntentString(t *testing.T) {
	if s := RelativeColorimetric.String(); s != "relative colorimetric" {
		t.Errorf("got %q", s)
	}
	if s := Intent(9).String(); s != "Intent(9)" {
		t.Errorf("got %q", s)
	}
}
