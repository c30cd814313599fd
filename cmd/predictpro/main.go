package main

import (
	"os"

	"github.com/predictpro/backend/cmd/predictpro/commands"
)

// main is the entry point for the PredictPro CLI
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
