package main

import (
	"os"

	"github.com/graelo/macOSVoiceMemosExporter/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
