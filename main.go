package main

import (
	"os"

	"github.com/aitbekov/tirlik/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
