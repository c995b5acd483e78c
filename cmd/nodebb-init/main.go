package main

import (
	"fmt"
	"os"

	"github.com/NavyStack/node-bb-docker/cmd/nodebb-init/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
