// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"go.uber.org/automaxprocs/maxprocs"

	"github.com/gnmicheck/gnmicheck/check"
	"github.com/gnmicheck/gnmicheck/logger"
	"github.com/gnmicheck/gnmicheck/pkg/buildinfo"
	"github.com/gnmicheck/gnmicheck/pkg/cli"
)

func main() {
	_, _ = maxprocs.Set(maxprocs.Logger(func(s string, args ...interface{}) {}))

	opt := parseCLI()

	if opt.Version {
		fmt.Printf("%s, version: %s\n", cli.Name, buildinfo.Version)
		return
	}

	if opt.Debug {
		logger.Level.Set(slog.LevelDebug)
	}

	chk, err := check.New(opt)
	if err != nil {
		if errors.Is(err, check.ErrUsage) {
			fmt.Fprintln(os.Stderr, err)
		} else {
			logger.New().Error(err)
		}
		os.Exit(1)
	}

	if _, err := chk.Run(); err != nil {
		chk.Error(err)
		os.Exit(1)
	}
}

func parseCLI() *cli.Option {
	opt, err := cli.Parse(os.Args)
	if err != nil {
		if cli.IsHelp(err) {
			os.Exit(0)
		}
		os.Exit(1)
	}

	return opt
}
