package main

import (
	"fmt"
	"os"

	"github.com/ihis/fhir-engine-skills/cmd/fhir-skills/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
