package main

import (
	"os"

	"github.com/alexandermeade/jason-rs/cmd/jason/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
