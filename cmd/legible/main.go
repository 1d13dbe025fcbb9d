// Legible converts colours between representations and recolours them to
// stay readable against a background.
package main

import "github.com/jmylchreest/legible/internal/cli"

func main() {
	cli.Execute()
}
