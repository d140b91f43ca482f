/*
Package icongen procedurally renders a stylized document glyph over a vertical
purple-to-blue gradient and persists it as a set of lossless raster icon files.

The package provides a command line interface, supporting various flags for
altering the icon sizes, colors and output format. To check the supported
commands type:

	$ icongen --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"fmt"
		"github.com/esimov/icongen"
	)

	func main() {
		g := icongen.NewGenerator("icons")

		if err := g.Generate(); err != nil {
			fmt.Printf("Error generating the icons: %s", err.Error())
		}
	}
*/
package icongen
