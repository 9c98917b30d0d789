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

// Command vecpaint renders the test scenes to PNG files.
//
// Renderer settings are read from the environment (VECPAINT_DISPLAY_MODE,
// VECPAINT_MAX_GRADIENT_BUFFER, VECPAINT_MAX_MASK_BUFFER,
// VECPAINT_NATIVE_GRADIENTS, VECPAINT_OUTLINE_COLOR) and can be
// overridden by command line flags.
package main

import (
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/urfave/cli/v2"

	"seehuhn.de/go/vecpaint/testcases"
)

func main() {
	app := &cli.App{
		Name:  "vecpaint",
		Usage: "render vector scenes to PNG files",
		Commands: []*cli.Command{
			cmdRender,
			cmdList,
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "vecpaint:", err)
		os.Exit(1)
	}
}

var cmdList = &cli.Command{
	Name:  "list",
	Usage: "list the available scenes",
	Action: func(c *cli.Context) error {
		for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
			for _, sc := range testcases.All[category] {
				fmt.Fprintln(c.App.Writer, category+"_"+sc.Name)
			}
		}
		return nil
	},
}
