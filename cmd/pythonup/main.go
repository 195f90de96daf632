package main

import (
	"os"

	"github.com/uranusjr/pythonup/cmd/pythonup/internal/cmd"
	"github.com/uranusjr/pythonup/cmd/pythonup/list"
	"github.com/uranusjr/pythonup/cmd/pythonup/which"
	"github.com/uranusjr/pythonup/pkg/store"
)

func main() {
	exitCode := cmd.Run(os.Args, os.Stdout, os.Stderr, store.System(), []cmd.CommandBuilder{
		which.Command,
		list.Command,
	})
	os.Exit(exitCode)
}
