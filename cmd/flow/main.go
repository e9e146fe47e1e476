// Command flow packs and places the children described by a scene file.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/flow/cmd/flow/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
