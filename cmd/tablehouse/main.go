package main

import (
	"fmt"
	"os"

	"github.com/alexanderjulianmartinez/tablehouse/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "tablehouse error: %v\n", err)
		os.Exit(1)
	}
}
