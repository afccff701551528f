package main

import (
	"os"

	"github.com/davidbz/quoter/cmd/quotectl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
