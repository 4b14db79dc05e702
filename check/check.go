// SPDX-License-Identifier: GPL-3.0-or-later

// Package check runs one reconciliation: it reads the gNMI dump and the
// CLI dumps, normalizes the extracted values, compares the two sides and
// appends the outcome to the report.
package check

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gnmicheck/gnmicheck/compare"
	"github.com/gnmicheck/gnmicheck/logger"
	"github.com/gnmicheck/gnmicheck/normalize"
	"github.com/gnmicheck/gnmicheck/pkg/cli"
	"github.com/gnmicheck/gnmicheck/report"
	"github.com/gnmicheck/gnmicheck/source"
)

// ErrUsage is returned when the command surface is not satisfied.
var ErrUsage = errors.New("usage: " + cli.Name + " [OPTIONS] gnmi_path cli_path...")

type Check struct {
	*logger.Logger

	gnmiPath   string
	cliPaths   []string
	reportPath string

	norm   *normalize.Normalizer
	filter *keyFilter

	gnmiParser source.Parser
	cliParser  source.Parser

	out io.Writer
}

// New validates opt, loads the run configuration when given and returns
// a ready-to-run Check.
func New(opt *cli.Option) (*Check, error) {
	if opt.GNMIPath == "" || len(opt.CLIPaths) == 0 {
		return nil, ErrUsage
	}

	cfg := &Config{}
	if opt.Config != "" {
		var err error
		if cfg, err = loadConfig(opt.Config); err != nil {
			return nil, err
		}
	}

	filter, err := newKeyFilter(cfg.Include, cfg.Exclude)
	if err != nil {
		return nil, err
	}

	norm := normalize.New()
	if len(cfg.Units) > 0 {
		norm = normalize.WithUnits(cfg.Units)
	}

	reportPath := opt.Report
	if cfg.Report != "" {
		reportPath = cfg.Report
	}

	gnmiParser, _ := source.Lookup("gnmi")
	cliParser, _ := source.Lookup("cli")

	return &Check{
		Logger:     logger.New().With("component", "check"),
		gnmiPath:   opt.GNMIPath,
		cliPaths:   opt.CLIPaths,
		reportPath: reportPath,
		norm:       norm,
		filter:     filter,
		gnmiParser: gnmiParser,
		cliParser:  cliParser,
		out:        os.Stdout,
	}, nil
}

// SetOutput redirects the report echo away from stdout.
func (c *Check) SetOutput(w io.Writer) {
	c.out = w
}

// Run executes the comparison and appends the report block. All input
// files are stat'ed up front: a missing file aborts the run before any
// report output is written.
func (c *Check) Run() (compare.Result, error) {
	var res compare.Result

	for _, path := range append([]string{c.gnmiPath}, c.cliPaths...) {
		if _, err := os.Stat(path); err != nil {
			return res, fmt.Errorf("input file '%s': %w", path, err)
		}
	}

	gnmiMap, err := c.collectGNMI()
	if err != nil {
		return res, err
	}

	cliMap, err := c.collectCLI()
	if err != nil {
		return res, err
	}

	c.Debugf("collected %d gNMI keys, %d CLI keys", gnmiMap.Len(), cliMap.Len())

	res = compare.Compare(gnmiMap, cliMap)

	block, err := report.NewWriter(c.reportPath).Append(report.Run{
		Timestamp: time.Now(),
		GNMIPath:  c.gnmiPath,
		CLIPaths:  c.cliPaths,
		Result:    res,
	})
	if err != nil {
		return res, err
	}

	_, _ = io.WriteString(c.out, block)

	return res, nil
}

func (c *Check) collectGNMI() (*compare.Mapping, error) {
	data, err := os.ReadFile(c.gnmiPath)
	if err != nil {
		return nil, fmt.Errorf("read gNMI file '%s': %w", c.gnmiPath, err)
	}

	entries, ok := source.ParseDocument(data)
	if ok {
		c.Debugf("gNMI file '%s' parsed as a JSON document", c.gnmiPath)
	} else {
		if entries, err = source.ParseReader(bytes.NewReader(data), c.gnmiParser); err != nil {
			return nil, fmt.Errorf("parse gNMI file '%s': %w", c.gnmiPath, err)
		}
	}

	m := compare.NewMapping()
	c.upsert(m, entries)

	return m, nil
}

func (c *Check) collectCLI() (*compare.Mapping, error) {
	m := compare.NewMapping()

	for _, path := range c.cliPaths {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("read CLI file '%s': %w", path, err)
		}

		entries, err := source.ParseReader(f, c.cliParser)
		_ = f.Close()
		if err != nil {
			return nil, fmt.Errorf("parse CLI file '%s': %w", path, err)
		}

		c.upsert(m, entries)
	}

	return m, nil
}

func (c *Check) upsert(m *compare.Mapping, entries []source.Entry) {
	for _, e := range entries {
		if !c.filter.match(e.Key) {
			continue
		}
		m.Put(e.Key, c.norm.Normalize(e.Value))
	}
}
