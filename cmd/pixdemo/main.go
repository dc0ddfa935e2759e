// seehuhn.de/go/pixel - integer rasterization of lines and circles
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

// Command pixdemo rasterizes a circle or a line segment and shows the
// result as a text grid, or writes it as a PNG image or PDF diagram.
//
// Usage:
//
//	pixdemo [flags] circle RADIUS
//	pixdemo [flags] line X0 Y0 X1 Y1
//
// PNG output is scaled by -scale pixels per character; PDF output uses
// squares of -cell points per coordinate.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"

	"github.com/fatih/color"

	"seehuhn.de/go/pixel"
	"seehuhn.de/go/pixel/diagram"
)

// format selects the output representation.
type format int

const (
	formatText format = iota
	formatPNG
	formatPDF
)

var formatNames = []string{"text", "png", "pdf"}

func (f format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}
	return fmt.Sprintf("format(%d)", int(f))
}

// Set implements flag.Value.
func (f *format) Set(s string) error {
	for i, name := range formatNames {
		if s == name {
			*f = format(i)
			return nil
		}
	}
	return fmt.Errorf("unknown format %q (want text, png or pdf)", s)
}

// config collects all settings of one invocation.
type config struct {
	shape     string
	args      []int
	cellWidth int // 0 selects the per-shape default
	format    format
	output    string
	scale     int     // PNG pixels per character
	cell      float64 // PDF points per coordinate
	color     bool
	verbose   bool
}

var errUsage = errors.New("usage error")

func main() {
	cfg, err := parseArgs(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	} else if err != nil {
		printError(err)
		os.Exit(2)
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	pixel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(cfg, os.Stdout); err != nil {
		printError(err)
		if errors.Is(err, errUsage) || errors.Is(err, pixel.ErrInvalidArgument) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func printError(err error) {
	red := color.New(color.FgRed, color.Bold)
	red.Fprintf(os.Stderr, "error: %v\n", err)
}

func parseArgs(args []string, stderr io.Writer) (*config, error) {
	cfg := &config{
		format: formatText,
		scale:  8,
		cell:   diagram.DefaultCell,
		color:  !color.NoColor,
	}

	fs := flag.NewFlagSet("pixdemo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: pixdemo [flags] circle RADIUS")
		fmt.Fprintln(stderr, "       pixdemo [flags] line X0 Y0 X1 Y1")
		fs.PrintDefaults()
	}
	fs.IntVar(&cfg.cellWidth, "width", 0, "characters per cell (default 2 for circles, 1 for lines)")
	fs.Var(&cfg.format, "format", "output format: text, png or pdf")
	fs.StringVar(&cfg.output, "o", "", "output file (required for png and pdf)")
	fs.IntVar(&cfg.scale, "scale", cfg.scale, "pixels per character for PNG output")
	fs.Float64Var(&cfg.cell, "cell", cfg.cell, "cell size in points for PDF output")
	fs.BoolVar(&cfg.color, "color", cfg.color, "colourize text output")
	fs.BoolVar(&cfg.verbose, "v", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return nil, fmt.Errorf("missing shape: %w", errUsage)
	}
	cfg.shape = rest[0]

	var want int
	switch cfg.shape {
	case "circle":
		want = 1
	case "line":
		want = 4
	default:
		return nil, fmt.Errorf("unknown shape %q: %w", cfg.shape, errUsage)
	}
	if len(rest)-1 != want {
		return nil, fmt.Errorf("%s needs %d integer arguments, got %d: %w",
			cfg.shape, want, len(rest)-1, errUsage)
	}
	for _, s := range rest[1:] {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("invalid coordinate %q: %w", s, errUsage)
		}
		cfg.args = append(cfg.args, v)
	}

	if cfg.format != formatText && cfg.output == "" {
		return nil, fmt.Errorf("-format %s requires -o: %w", cfg.format, errUsage)
	}
	return cfg, nil
}

func run(cfg *config, stdout io.Writer) error {
	log := pixel.Logger()

	var pts []image.Point
	opt := &pixel.GridOptions{CellWidth: cfg.cellWidth}
	switch cfg.shape {
	case "circle":
		r := cfg.args[0]
		var err error
		pts, err = pixel.Circle(r)
		if err != nil {
			return err
		}
		if opt.CellWidth == 0 {
			opt.CellWidth = 2
		}
		log.Debug("circle rasterized",
			"radius", r,
			"points", len(pts),
			"distinct", len(pixel.Dedup(pts)),
			"circumference", int(math.Ceil(2*math.Pi*float64(r))))
	case "line":
		p0 := image.Pt(cfg.args[0], cfg.args[1])
		p1 := image.Pt(cfg.args[2], cfg.args[3])
		pts = pixel.Line(p0.X, p0.Y, p1.X, p1.Y)
		opt.Refs = []image.Point{p0, p1}
		log.Debug("line rasterized", "from", p0, "to", p1, "points", len(pts))
	}

	g := pixel.RenderGrid(pts, opt)
	switch cfg.format {
	case formatPNG:
		return writePNG(cfg.output, g.Image(cfg.scale))
	case formatPDF:
		return diagram.WritePDF(cfg.output, g, cfg.cell)
	default:
		return writeText(stdout, g, cfg.color)
	}
}

func writeText(w io.Writer, g *pixel.Grid, useColor bool) error {
	mark := color.New(color.FgGreen, color.Bold)
	if useColor {
		mark.EnableColor()
	} else {
		mark.DisableColor()
	}

	for _, row := range g.Rows() {
		for i := 0; i < len(row); {
			j := i
			for j < len(row) && row[j] == row[i] {
				j++
			}
			var err error
			if row[i] == ' ' {
				_, err = io.WriteString(w, row[i:j])
			} else {
				_, err = mark.Fprint(w, row[i:j])
			}
			if err != nil {
				return err
			}
			i = j
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

func writePNG(fname string, img image.Image) (err error) {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return pixel.WritePNG(f, img)
}
