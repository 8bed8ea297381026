package main

import (
	"os"

	"github.com/theyellowexpress/expressbot/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
