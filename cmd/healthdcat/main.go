// Copyright 2025 Lincoln Institute of Land Policy
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/alexflint/go-arg"
	log "github.com/sirupsen/logrus"
)

// run the cli and return the process exit code
func run(cliArgs []string) int {
	runner, parser, err := NewHealthDCATRunner(cliArgs)
	switch {
	case errors.Is(err, arg.ErrHelp):
		parser.WriteHelp(os.Stdout)
		return 0
	case errors.Is(err, arg.ErrVersion):
		fmt.Println(runner.args.Version())
		return 0
	case err != nil:
		log.Error(err)
		if parser != nil {
			parser.WriteUsage(os.Stderr)
		}
		return 1
	}

	if err := runner.Run(context.Background()); err != nil {
		log.Errorf("Error during conversion: %v", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:]))
}
