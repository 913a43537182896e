//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of cellgrid requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/cellgrid`, or try ./cmd/cellgrid-term or ./cmd/cellgrid-png.")
	os.Exit(2)
}
