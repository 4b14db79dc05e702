// SPDX-License-Identifier: GPL-3.0-or-later

package source

import "regexp"

func init() {
	Register(cliParser{})
}

// cliParser handles CLI text dumps reduced to `<key>: <value>` lines.
// Keys are lowercase letters and underscores only; anything else on the
// left of the colon is free-form command output and gets skipped.
type cliParser struct{}

var reCLILine = regexp.MustCompile(`^\s*([a-z_]+)\s*:\s*(?:"([^"]*)"|([^",\s]+))`)

func (cliParser) Name() string { return "cli" }

func (cliParser) ParseLine(line string) (string, string, bool) {
	m := reCLILine.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	value := m[2]
	if value == "" {
		value = m[3]
	}
	return m[1], value, true
}
