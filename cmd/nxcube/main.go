// nxcube - CLI for scrambling and reducing NxN cubes to the 3x3 form.
package main

import (
	"github.com/seamusw/nxcube/internal/cli"
)

func main() {
	cli.Execute()
}
