package main

import (
	"os"

	"github.com/stageplayjs/create-stageplay-app/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
