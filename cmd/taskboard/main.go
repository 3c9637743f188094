package main

import (
	"os"

	"github.com/taskboard/taskboard/cmd/taskboard/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
