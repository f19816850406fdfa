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

// Cmsconv converts colors and images between color models.
//
// Usage:
//
//	cmsconv [options] color...
//	cmsconv [options] -image in.png -mode gray -o out.png
//
// Colors are given as hex strings like "#ff8000", or as a model name
// followed by the component values, like "cmyk:0,0.5,1,0".
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	"golang.org/x/term"

	"seehuhn.de/go/cms"
	"seehuhn.de/go/cms/color"
	"seehuhn.de/go/cms/convert"
	"seehuhn.de/go/cms/logging"
	"seehuhn.de/go/cms/raster"
)

func main() {
	to := flag.String("to", "rgb", "target color model (rgb, cmyk, lab, gray)")
	noCMS := flag.Bool("nocms", false, "use the analytical conversions instead of the CMS")
	proof := flag.Bool("proof", false, "soft-proof on-screen colors through the CMYK profile")
	gamut := flag.Bool("gamut", false, "mark out-of-gamut colors when proofing")
	display := flag.String("display", "", "ICC `file` for the display profile")
	imageIn := flag.String("image", "", "convert the image `file` instead of colors")
	modeName := flag.String("mode", "rgb", "image mode for -image (mono, gray, rgb, cmyk, lab)")
	imageOut := flag.String("o", "out.png", "output `file` for -image (.png, .tif or .bmp)")
	verbose := flag.Bool("v", false, "print debugging information")
	profiles := map[color.Model]string{}
	flag.Func("profile", "use `model=file.icc` instead of a built-in profile (repeatable)",
		func(s string) error {
			model, path, err := parseProfileArg(s)
			if err != nil {
				return err
			}
			profiles[model] = path
			return nil
		})
	flag.Parse()

	if *verbose {
		logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
			&slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	target, err := color.ParseModel(*to)
	if err != nil || !target.IsProcess() {
		fmt.Fprintf(os.Stderr, "Invalid target model %q\n", *to)
		os.Exit(1)
	}

	cfg := cms.DefaultConfig()
	cfg.UseCMS = !*noCMS
	cfg.Proofing = *proof
	cfg.GamutCheck = *gamut
	cfg.ProfileFiles = profiles
	if *display != "" {
		cfg.ProfileFiles[color.Display] = *display
		cfg.UseDisplayProfile = true
	}
	m, err := cms.NewManager(nil, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error setting up color management: %v\n", err)
		os.Exit(1)
	}

	if *verbose {
		for _, model := range []color.Model{color.RGB, color.CMYK, color.Lab, color.Gray, color.Display} {
			if d, ok := m.ProfileDescription(model); ok {
				fmt.Fprintf(os.Stderr, "%-7s %s\n", model, d.Name)
			}
		}
	}

	if *imageIn != "" {
		mode, err := parseMode(*modeName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		err = convertImage(m, *imageIn, *imageOut, mode)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error converting image: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if flag.NArg() == 0 {
		fmt.Printf("Usage: %s [options] color...\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	swatches := term.IsTerminal(int(os.Stdout.Fd()))
	failed := false
	for _, arg := range flag.Args() {
		err := showColor(m, arg, target, swatches, *verbose)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", arg, err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func showColor(m *cms.Manager, arg string, target color.Model, swatch, verbose bool) error {
	in, err := parseColor(arg)
	if err != nil {
		return err
	}
	out, err := m.GetColor(in, target)
	if err != nil {
		return err
	}

	var b strings.Builder
	if swatch {
		rgb, err := m.DisplayColor255(out)
		if err != nil {
			return err
		}
		fmt.Fprintf(&b, "\x1b[48;2;%d;%d;%dm      \x1b[0m ", rgb[0], rgb[1], rgb[2])
	}
	fmt.Fprintf(&b, "%-12s %-26s", arg, color.Verbose(out))
	if rgb, err := m.RGB(out); err == nil {
		fmt.Fprintf(&b, " %s", color.ToHex(rgb.Values...))
	}
	fmt.Fprintf(&b, " %v", out.Values)

	if verbose {
		lab1, err1 := m.Lab(in)
		lab2, err2 := m.Lab(out)
		if err1 == nil && err2 == nil {
			fmt.Fprintf(&b, " chroma=%.1f dE76=%.2f",
				convert.Chroma(lab2.Values), convert.DeltaE76(lab1.Values, lab2.Values))
		}
	}
	fmt.Println(b.String())
	return nil
}

func convertImage(m *cms.Manager, inName, outName string, mode raster.Mode) error {
	f, err := os.Open(inName)
	if err != nil {
		return err
	}
	defer f.Close()
	src, _, err := image.Decode(f)
	if err != nil {
		return err
	}

	img, err := m.ConvertImage(raster.FromImage(src), mode, 0)
	if err != nil {
		return err
	}

	out, err := os.Create(outName)
	if err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(outName)) {
	case ".tif", ".tiff":
		err = tiff.Encode(out, img.Image(), &tiff.Options{Compression: tiff.Deflate})
	case ".bmp":
		err = bmp.Encode(out, img.Image())
	default:
		err = png.Encode(out, img.Image())
	}
	if err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
