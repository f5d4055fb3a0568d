// Package main runs gskit, a command line client that sends json requests while showing a spinner.
package main

import (
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
)

func main() {
	log.SetHandler(cli.New(os.Stderr))
	a := app{
		log:       log.Log,
		lookupEnv: os.LookupEnv,
	}
	cmd := a.newRootCommand()
	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
