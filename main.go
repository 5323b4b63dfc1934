package main

import (
	"os"

	"github.com/hiringpartner/hiring-partner/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
