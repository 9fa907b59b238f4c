package main

import (
	"os"

	"clementus360/glowup/cli"
	"clementus360/glowup/config"
)

func main() {
	if err := cli.Execute(); err != nil {
		config.Logger.Error(err)
		os.Exit(1)
	}
}
