// SPDX-License-Identifier: GPL-3.0-or-later

package cli

import (
	"github.com/jessevdk/go-flags"
)

// Name is the binary name used in usage and version output.
const Name = "gnmicheck"

// Option defines command line options.
type Option struct {
	Report  string `short:"r" long:"report" description:"report file path" default:"comparison_report.txt"`
	Config  string `short:"c" long:"config" description:"run config file to read"`
	Debug   bool   `short:"d" long:"debug" description:"debug mode"`
	Version bool   `short:"v" long:"version" description:"display the version and exit"`

	GNMIPath string
	CLIPaths []string
}

// Parse returns parsed command-line flags in Option struct
func Parse(args []string) (*Option, error) {
	opt := &Option{}
	parser := flags.NewParser(opt, flags.Default)
	parser.Name = Name
	parser.Usage = "[OPTIONS] gnmi_path cli_path..."

	rest, err := parser.ParseArgs(args)
	if err != nil {
		return nil, err
	}

	if len(rest) > 1 {
		opt.GNMIPath = rest[1]
		opt.CLIPaths = rest[2:]
	}

	return opt, nil
}

func IsHelp(err error) bool {
	return flags.WroteHelp(err)
}
