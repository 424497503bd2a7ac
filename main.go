package main

import (
	"os"

	"github.com/jsdosanj/downloader/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
