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
	"strconv"
	"strings"

	"seehuhn.de/go/cms/color"
	"seehuhn.de/go/cms/raster"
)

// parseColor reads a color given on the command line.  Colors are either
// hex strings ("#f80", "#ff8000", "#ff800080"), or a model name followed
// by the component values, for example "cmyk:0,0.5,1,0".  For "lab", the
// values are L in [0, 100] and a, b in [-128, 127]; all other models use
// values in [0, 1], or integer percentages like "cmyk:0%,50%,100%,0%".  Spot colors are given as "spot:Name=#rrggbb", where
// the hex color is the RGB fallback; "spot:registration" gives
// registration black.
func parseColor(s string) (*color.Value, error) {
	if strings.HasPrefix(s, "#") {
		if len(s) == 9 {
			values, err := color.FromHexRGBA(s)
			if err != nil {
				return nil, err
			}
			v := color.NewRGB(values[0], values[1], values[2])
			v.Alpha = values[3]
			return v, nil
		}
		values, err := color.FromHex(s)
		if err != nil {
			return nil, err
		}
		return color.NewRGB(values[0], values[1], values[2]), nil
	}

	name, list, ok := strings.Cut(s, ":")
	if !ok {
		return nil, &color.FormatError{Input: s, Reason: "expected #hex or model:values"}
	}
	model, err := color.ParseModel(name)
	if err != nil {
		return nil, err
	}
	if model == color.Spot {
		return parseSpot(s, list)
	}
	if !model.IsProcess() {
		return nil, &color.FormatError{Input: s, Reason: "not a process color model"}
	}

	if model == color.Lab && strings.Contains(list, "%") {
		return nil, &color.FormatError{Input: s, Reason: "lab values cannot be percentages"}
	}
	values, err := parseValues(s, list)
	if err != nil {
		return nil, err
	}
	if len(values) != model.Channels() {
		return nil, &color.FormatError{
			Input:  s,
			Reason: model.String() + " needs " + strconv.Itoa(model.Channels()) + " values",
		}
	}
	if model == color.Lab {
		values[0], values[1], values[2] = color.LabFromDevice(values[0], values[1], values[2])
	}
	return &color.Value{Model: model, Values: values, Alpha: 1}, nil
}

// parseValues reads a comma separated list of component values.  Either
// all values are plain numbers, or all are integer percentages like "50%".
func parseValues(s, list string) ([]float64, error) {
	fields := strings.Split(list, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	if strings.HasSuffix(fields[0], "%") {
		percent := make([]int, len(fields))
		for i, field := range fields {
			digits, ok := strings.CutSuffix(field, "%")
			x, err := strconv.Atoi(digits)
			if !ok || err != nil {
				return nil, &color.FormatError{Input: s, Reason: "invalid percentage " + strconv.Quote(field)}
			}
			percent[i] = x
		}
		return color.From100(percent), nil
	}

	values := make([]float64, len(fields))
	for i, field := range fields {
		x, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, &color.FormatError{Input: s, Reason: "invalid number " + strconv.Quote(field)}
		}
		values[i] = x
	}
	return values, nil
}

func parseSpot(s, list string) (*color.Value, error) {
	ink, hex, hasFallback := strings.Cut(list, "=")
	name, err := color.NormalizeSpotName(ink)
	if err != nil {
		return nil, err
	}
	if !hasFallback {
		if color.SameInk(name, "registration") {
			return color.RegistrationBlack(), nil
		}
		return nil, &color.FormatError{Input: s, Reason: "missing fallback color"}
	}
	if name == "" {
		return nil, &color.FormatError{Input: s, Reason: "empty ink name"}
	}
	rgb, err := color.FromHex(hex)
	if err != nil {
		return nil, err
	}
	if len(rgb) != 3 {
		return nil, &color.FormatError{Input: s, Reason: "fallback must be #rgb or #rrggbb"}
	}
	return color.NewSpot(name, rgb, nil), nil
}

// parseMode converts an image mode name into a [raster.Mode].
func parseMode(s string) (raster.Mode, error) {
	switch strings.ToLower(s) {
	case "mono", "1":
		return raster.Mono, nil
	case "gray", "grey", "l":
		return raster.Gray, nil
	case "rgb":
		return raster.RGB, nil
	case "cmyk":
		return raster.CMYK, nil
	case "lab":
		return raster.Lab, nil
	}
	return 0, &color.FormatError{Input: s, Reason: "unknown image mode"}
}

// parseProfileArg splits a "model=file.icc" argument.
func parseProfileArg(s string) (color.Model, string, error) {
	name, path, ok := strings.Cut(s, "=")
	if !ok || path == "" {
		return 0, "", &color.FormatError{Input: s, Reason: "expected model=file.icc"}
	}
	model, err := color.ParseModel(name)
	if err != nil {
		return 0, "", err
	}
	if model == color.Spot {
		return 0, "", &color.FormatError{Input: s, Reason: "spot colors have no profile"}
	}
	return model, path, nil
}
