package main

import (
	"os"

	"github.com/arnavsurve/intrus/cmd"
)

func main() {
	err := cmd.Execute()
	cmd.Report(os.Stderr, err)
	os.Exit(cmd.ExitCode(err))
}
