// Package main is the entry point for the contentrepo command line client.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/mitchellh/cli"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD)"
var (
	// Version is the semantic version of the client.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"

	// BuildTime is the timestamp when the binary was built.
	BuildTime = "unknown"
)

func main() {
	os.Exit(Main(os.Args, &cli.BasicUi{
		Reader:      bufio.NewReader(os.Stdin),
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
	}))
}

// Main runs the CLI with the given arguments and returns the exit code.
func Main(args []string, ui cli.Ui) int {
	cliName := args[0]

	if len(args) == 2 && (args[1] == "-version" || args[1] == "-v") {
		args = []string{cliName, "version"}
	}

	c := &cli.CLI{
		Name:     cliName,
		Args:     args[1:],
		Version:  Version,
		Commands: commands(ui),
	}

	exitCode, err := c.Run()
	if err != nil {
		ui.Error(fmt.Sprintf("error: %v", err))
		return 1
	}

	return exitCode
}

func commands(ui cli.Ui) map[string]cli.CommandFactory {
	base := func() *baseCommand { return &baseCommand{UI: ui} }

	return map[string]cli.CommandFactory{
		"bucket": func() (cli.Command, error) {
			return &bucketCommand{baseCommand: base()}, nil
		},
		"objects": func() (cli.Command, error) {
			return &objectsCommand{baseCommand: base()}, nil
		},
		"object": func() (cli.Command, error) {
			return &objectCommand{baseCommand: base()}, nil
		},
		"publish": func() (cli.Command, error) {
			return &publishCommand{baseCommand: base()}, nil
		},
		"status": func() (cli.Command, error) {
			return &statusCommand{baseCommand: base()}, nil
		},
		"health": func() (cli.Command, error) {
			return &healthCommand{baseCommand: base()}, nil
		},
		"version": func() (cli.Command, error) {
			return &versionCommand{UI: ui}, nil
		},
	}
}
