package main

import (
	"os"

	"github.com/bcmister/mondpi/internal/cmd"
)

func main() {
	os.Exit(cmd.ExitCode(cmd.Execute()))
}
