/*
Package favix generates the complete set of favicon and web-app icon assets from a
single source image, be it a vector (SVG) or a raster (PNG, JPEG, GIF, BMP) file,
and packs the legacy sizes into a single multi-resolution favicon.ico container.

The package provides a command line interface, supporting various flags for the
different generation options. To check the supported commands type:

	$ favix --help

In case you wish to integrate the API in a self constructed environment here is a
simple example:

	package main

	import (
		"fmt"
		"os"

		"github.com/favix/favix"
	)

	func main() {
		data, _ := os.ReadFile("logo.svg")
		src, err := favix.LoadSource(data, favix.DetectFormat(data), favix.LoadOptions{})
		if err != nil {
			fmt.Printf("Error loading the source image: %s", err.Error())
			return
		}

		g := &favix.Generator{}
		report, err := g.Generate(src, favix.TierRecommended)
		if err != nil {
			fmt.Printf("Error generating the icon assets: %s", err.Error())
		}
		fmt.Printf("generated %d icons", len(report.Assets))
	}
*/
package favix
