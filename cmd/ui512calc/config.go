// Copyright (c) 2025 The ui512mdProject contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"

	flags "github.com/jessevdk/go-flags"
)

// config defines the command line options for ui512calc.
type config struct {
	Op      string `short:"o" long:"op" description:"operation to perform" choice:"mul" choice:"div" required:"true"`
	Debug   bool   `short:"d" long:"debug" description:"enable trace-level logging of the arithmetic core"`
	Version bool   `short:"V" long:"version" description:"display version information and exit"`
}

// usage prints the parser's help text to stderr and exits with status 2.
func usage(parser *flags.Parser) {
	parser.WriteHelp(os.Stderr)
	os.Exit(2)
}

// loadConfig parses command line arguments into a config and returns the
// positional operand arguments alongside it.
func loadConfig() (*config, []string) {
	cfg := config{}
	parser := flags.NewParser(&cfg, flags.Default)
	parser.Usage = "[OPTIONS] operand operand"
	args, err := parser.Parse()
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if cfg.Version {
		fmt.Println("ui512calc version", version)
		os.Exit(0)
	}

	return &cfg, args
}
