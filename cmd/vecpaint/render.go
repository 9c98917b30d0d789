// seehuhn.de/go/vecpaint - render vector shapes with gradients and masks
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
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"
	"golang.org/x/image/draw"

	"seehuhn.de/go/vecpaint"
	"seehuhn.de/go/vecpaint/surface"
	"seehuhn.de/go/vecpaint/testcases"
)

var cmdRender = &cli.Command{
	Name:      "render",
	Usage:     "render one scene",
	ArgsUsage: "category_name",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Value:   "out.png",
			Usage:   "output file",
		},
		&cli.Float64Flag{
			Name:  "scale",
			Usage: "scale factor, overrides the view of the scene",
		},
		&cli.BoolFlag{
			Name:  "fit",
			Usage: "fit the document into the image",
		},
		&cli.StringFlag{
			Name:  "mode",
			Usage: "display mode: normal, outline, fill or stroke",
		},
		&cli.StringFlag{
			Name:  "bg",
			Value: "white",
			Usage: "background color, a color name or #rrggbb[aa]",
		},
		&cli.IntFlag{
			Name:  "max-gradient",
			Usage: "maximal size of gradient buffers in pixels",
		},
		&cli.IntFlag{
			Name:  "max-mask",
			Usage: "maximal size of mask buffers in pixels",
		},
		&cli.BoolFlag{
			Name:  "native",
			Value: true,
			Usage: "use native surface gradients where possible",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "log fallbacks to stderr",
		},
	},
	Action: runRender,
}

func runRender(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected one scene name, got %d arguments", c.NArg())
	}
	name := c.Args().First()
	sc, ok := testcases.Find(name)
	if !ok {
		return fmt.Errorf("unknown scene %q", name)
	}

	cfg, err := renderConfig(c)
	if err != nil {
		return err
	}
	var bg vecpaint.Color
	if err := bg.UnmarshalText([]byte(c.String("bg"))); err != nil {
		return fmt.Errorf("background: %w", err)
	}

	if c.Bool("verbose") {
		vecpaint.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	img := image.NewRGBA(image.Rect(0, 0, sc.Width, sc.Height))
	if bg.A > 0 {
		draw.Draw(img, img.Bounds(), image.NewUniform(color.NRGBA(bg)), image.Point{}, draw.Src)
	}

	e := vecpaint.NewEngine(*cfg)
	e.SetAutoScale(false)
	e.Resize(img.Bounds())
	e.Load(sc.Doc)
	e.SetScale(sc.Scale)
	e.SetOffset(sc.Offset)
	if s := c.Float64("scale"); s > 0 {
		e.SetScale(s)
		e.CenterImage()
	}
	if c.Bool("fit") {
		e.FitToWindow()
	}
	e.Draw(surface.NewImage(img))

	out := c.String("output")
	if err := writePNG(out, img); err != nil {
		return err
	}
	vecpaint.Logger().Info("scene rendered", "scene", name, "file", out, "scale", e.View().Scale)
	return nil
}

// renderConfig reads the renderer settings from the environment and
// applies the flags which are set on the command line.
func renderConfig(c *cli.Context) (*vecpaint.Config, error) {
	cfg, err := vecpaint.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("configuration: %w", err)
	}
	if c.IsSet("mode") {
		if err := cfg.DisplayMode.UnmarshalText([]byte(c.String("mode"))); err != nil {
			return nil, err
		}
	}
	if c.IsSet("max-gradient") {
		cfg.MaxGradientBuffer = c.Int("max-gradient")
	}
	if c.IsSet("max-mask") {
		cfg.MaxMaskBuffer = c.Int("max-mask")
	}
	if c.IsSet("native") {
		cfg.NativeGradients = c.Bool("native")
	}
	return cfg, nil
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
	return png.Encode(f, img)
}
