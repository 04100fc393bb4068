package main

import (
	"os"

	"github.com/jobsift/jobsift/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
