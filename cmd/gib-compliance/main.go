package main

import (
	"fmt"
	"os"

	"github.com/rezonia/gib-compliance/cmd/gib-compliance/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
