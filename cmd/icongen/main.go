package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/esimov/icongen"
	"github.com/esimov/icongen/utils"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

const HelpBanner = `
┬┌─┐┌─┐┌┐┌┌─┐┌─┐┌┐┌
││  │ ││││││ ┬├┤ │││
┴└─┘└─┘┘└┘└─┘└─┘┘└┘

Procedural icon generator.
    Version: %s

`

// Version indicates the current build version.
var Version string

var (
	// Flags
	outDir    = flag.String("out", "icons", "Output directory")
	sizes     = flag.String("sizes", "16,48,128", "Comma separated icon sizes")
	start     = flag.String("start", "#8B5CF6", "Gradient start color")
	end       = flag.String("end", "#3B82F6", "Gradient end color")
	stroke    = flag.String("stroke", "#FFFFFF", "Stroke color")
	format    = flag.String("format", "png", "Output format (png, bmp)")
	resample  = flag.Bool("resample", false, "Derive the smaller icons from the largest one")
	blendMode = flag.String("blend", "", "Blend mode applied over the backdrop (darken, lighten, multiply, screen, overlay)")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	iconSizes, err := parseSizes(*sizes)
	if err != nil {
		log.Fatalf(utils.DecorateText(err.Error(), utils.ErrorMessage))
	}

	gen := icongen.NewGenerator(*outDir)
	gen.Sizes = iconSizes
	gen.Format = *format
	gen.Resample = *resample
	gen.BlendMode = *blendMode

	for _, c := range []struct {
		value string
		dst   *color.NRGBA
	}{
		{*start, &gen.StartColor},
		{*end, &gen.EndColor},
		{*stroke, &gen.StrokeColor},
	} {
		col, err := parseHexColor(c.value)
		if err != nil {
			log.Fatalf(utils.DecorateText(err.Error(), utils.ErrorMessage))
		}
		*c.dst = col
	}

	spinnerText := fmt.Sprintf("%s %s",
		utils.DecorateText("⚡ ICONGEN", utils.StatusMessage),
		utils.DecorateText("is generating the icons...", utils.DefaultMessage))
	spinner := utils.NewSpinner(spinnerText, time.Millisecond*200, true)

	// Show the progress indicator only when writing to a real terminal.
	isTerm := term.IsTerminal(int(os.Stderr.Fd()))

	now := time.Now()
	if isTerm {
		spinner.Start()
	}

	err = gen.Generate()

	if isTerm {
		spinner.StopMsg = fmt.Sprintf("%s %s\n",
			utils.DecorateText("⚡ ICONGEN", utils.StatusMessage),
			utils.DecorateText("is generating the icons... ✔", utils.DefaultMessage))
		spinner.Stop()
	}

	if err != nil {
		log.Fatalf(
			utils.DecorateText("Error generating the icons: %v", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
	}

	fmt.Fprintf(os.Stderr, "\nExecution time: %s\n",
		utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
}

// parseSizes converts the comma separated size list to integer values.
func parseSizes(s string) ([]int, error) {
	var sizes []int
	for _, tok := range strings.Split(s, ",") {
		size, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil || size <= 0 {
			return nil, errors.Errorf("invalid icon size: %q", tok)
		}
		sizes = append(sizes, size)
	}
	return sizes, nil
}

// parseHexColor converts an #RRGGBB hex string to a color value.
func parseHexColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return color.NRGBA{}, errors.Errorf("invalid hex color: %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, errors.Errorf("invalid hex color: %q", s)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
