// SPDX-License-Identifier: GPL-3.0-or-later

package source

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	for _, name := range []string{"gnmi", "cli"} {
		t.Run(name, func(t *testing.T) {
			p, ok := Lookup(name)
			require.True(t, ok)
			assert.Equal(t, name, p.Name())
		})
	}

	_, ok := Lookup("netconf")
	assert.False(t, ok)
}

func TestGNMIParser_ParseLine(t *testing.T) {
	tests := map[string]struct {
		line      string
		wantKey   string
		wantValue string
		wantOK    bool
	}{
		"quoted key and value": {
			line:    `  "oper_status": "UP",`,
			wantKey: "oper_status", wantValue: "UP", wantOK: true,
		},
		"bare value": {
			line:    `"speed": 1000000000`,
			wantKey: "speed", wantValue: "1000000000", wantOK: true,
		},
		"quoted value with separator": {
			line:    `"mtu": "9,000"`,
			wantKey: "mtu", wantValue: "9,000", wantOK: true,
		},
		"key with slashes": {
			line:    `"interfaces/interface/state/mtu": "9000"`,
			wantKey: "interfaces/interface/state/mtu", wantValue: "9000", wantOK: true,
		},
		"no quoted key": {
			line:   `mtu: 9000`,
			wantOK: false,
		},
		"free text": {
			line:   `device responded in 12ms`,
			wantOK: false,
		},
		"empty": {
			line:   ``,
			wantOK: false,
		},
	}

	p, ok := Lookup("gnmi")
	require.True(t, ok)

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			key, value, ok := p.ParseLine(test.line)

			assert.Equal(t, test.wantOK, ok)
			assert.Equal(t, test.wantKey, key)
			assert.Equal(t, test.wantValue, value)
		})
	}
}

func TestCLIParser_ParseLine(t *testing.T) {
	tests := map[string]struct {
		line      string
		wantKey   string
		wantValue string
		wantOK    bool
	}{
		"plain pair": {
			line:    `oper_status: up`,
			wantKey: "oper_status", wantValue: "up", wantOK: true,
		},
		"quoted value": {
			line:    `description: "uplink"`,
			wantKey: "description", wantValue: "uplink", wantOK: true,
		},
		"indented pair": {
			line:    `    mtu: 9000`,
			wantKey: "mtu", wantValue: "9000", wantOK: true,
		},
		"uppercase key skipped": {
			line:   `Speed: 1000`,
			wantOK: false,
		},
		"key with digits skipped": {
			line:   `eth0: up`,
			wantOK: false,
		},
		"free text": {
			line:   `show interface output follows`,
			wantOK: false,
		},
	}

	p, ok := Lookup("cli")
	require.True(t, ok)

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			key, value, ok := p.ParseLine(test.line)

			assert.Equal(t, test.wantOK, ok)
			assert.Equal(t, test.wantKey, key)
			assert.Equal(t, test.wantValue, value)
		})
	}
}

func TestParseReader(t *testing.T) {
	input := `
Interface state dump
oper_status: up
mtu: 9000
garbage line
oper_status: down
`

	p, ok := Lookup("cli")
	require.True(t, ok)

	entries, err := ParseReader(strings.NewReader(input), p)
	require.NoError(t, err)

	assert.Equal(t, []Entry{
		{Key: "oper_status", Value: "up"},
		{Key: "mtu", Value: "9000"},
		{Key: "oper_status", Value: "down"},
	}, entries)
}

func TestParseDocument(t *testing.T) {
	tests := map[string]struct {
		data        string
		wantEntries []Entry
		wantOK      bool
	}{
		"flat object": {
			data:   `{"oper_status":"UP","mtu":9000}`,
			wantOK: true,
			wantEntries: []Entry{
				{Key: "oper_status", Value: "UP"},
				{Key: "mtu", Value: "9000"},
			},
		},
		"nested object keeps leaf names": {
			data:   `{"interface":{"state":{"mtu":9000,"enabled":true}}}`,
			wantOK: true,
			wantEntries: []Entry{
				{Key: "mtu", Value: "9000"},
				{Key: "enabled", Value: "true"},
			},
		},
		"array of objects": {
			data:   `[{"speed":"1G"},{"mtu":1500}]`,
			wantOK: true,
			wantEntries: []Entry{
				{Key: "speed", Value: "1G"},
				{Key: "mtu", Value: "1500"},
			},
		},
		"line oriented dump is not a document": {
			data:   "\"oper_status\": \"UP\"\n\"mtu\": 9000\n",
			wantOK: false,
		},
		"scalar document": {
			data:   `"up"`,
			wantOK: false,
		},
		"not json": {
			data:   `oper_status: up`,
			wantOK: false,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			entries, ok := ParseDocument([]byte(test.data))

			assert.Equal(t, test.wantOK, ok)
			assert.Equal(t, test.wantEntries, entries)
		})
	}
}
