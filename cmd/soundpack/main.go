// soundpack builds the JSON manifests that describe the game's audio assets.
// Single binary, zero config — run it from the asset root and commit the output.
package main

import (
	"os"

	"github.com/corey/soundpack/cmd/soundpack/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
