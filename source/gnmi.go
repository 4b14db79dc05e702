// SPDX-License-Identifier: GPL-3.0-or-later

package source

import (
	"regexp"

	"github.com/tidwall/gjson"
)

func init() {
	Register(gnmiParser{})
}

// gnmiParser handles gNMI-style dumps: `"<key>": "<value>"` lines, value
// quoting optional.
type gnmiParser struct{}

var reGNMILine = regexp.MustCompile(`"([^"]+)"\s*:\s*(?:"([^"]*)"|([^",\s]+))`)

func (gnmiParser) Name() string { return "gnmi" }

func (gnmiParser) ParseLine(line string) (string, string, bool) {
	m := reGNMILine.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	value := m[2]
	if value == "" {
		value = m[3]
	}
	return m[1], value, true
}

// ParseDocument flattens a JSON-encoded gNMI dump into one entry per
// scalar leaf, keyed by the leaf name. It reports false when data is not
// a JSON document, which is a signal to fall back to line parsing, not
// an error.
func ParseDocument(data []byte) ([]Entry, bool) {
	if !gjson.ValidBytes(data) {
		return nil, false
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() && !root.IsArray() {
		return nil, false
	}

	var entries []Entry
	flattenLeaves(root, &entries)

	return entries, true
}

func flattenLeaves(v gjson.Result, out *[]Entry) {
	v.ForEach(func(key, value gjson.Result) bool {
		if value.IsObject() || value.IsArray() {
			flattenLeaves(value, out)
			return true
		}
		// Scalar array elements carry an index, not a name. Skip them.
		if key.Type == gjson.String {
			*out = append(*out, Entry{Key: key.String(), Value: value.String()})
		}
		return true
	})
}
