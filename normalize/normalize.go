// SPDX-License-Identifier: GPL-3.0-or-later

// Package normalize canonicalizes raw dump values so that equivalent
// representations compare equal: "1KB" and "1024" both come out as "1024".
package normalize

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// unitScale rescales the numeric part of a value for a recognized unit
// token. div selects integer division instead of multiplication.
type unitScale struct {
	factor int64
	div    bool
}

// Built-in unit table: byte multiples collapse to bytes, bps to Mbps,
// bare "g" (interface speeds) to bits.
var builtinUnits = map[string]unitScale{
	"kb":    {factor: 1024},
	"kbyte": {factor: 1024},
	"mb":    {factor: 1024 * 1024},
	"mbyte": {factor: 1024 * 1024},
	"gb":    {factor: 1024 * 1024 * 1024},
	"gbyte": {factor: 1024 * 1024 * 1024},
	"bps":   {factor: 1000, div: true},
	"g":     {factor: 1000 * 1000 * 1000},
}

var (
	reNumberUnit   = regexp.MustCompile(`^([0-9.]+)([a-z%]+)$`)
	reZeroFraction = regexp.MustCompile(`\.0*$`)
)

// New returns a Normalizer with the built-in unit table.
func New() *Normalizer {
	return &Normalizer{}
}

// WithUnits returns a Normalizer extended with multiplier-only units.
// Built-in units keep their meaning on conflict so historical report
// output stays stable.
func WithUnits(extra map[string]int64) *Normalizer {
	n := &Normalizer{units: make(map[string]unitScale, len(extra))}
	for unit, factor := range extra {
		unit = strings.ToLower(unit)
		if _, ok := builtinUnits[unit]; ok || factor <= 0 {
			continue
		}
		n.units[unit] = unitScale{factor: factor}
	}
	return n
}

type Normalizer struct {
	units map[string]unitScale
}

// Normalize returns the canonical form of raw. It never fails: anything
// it cannot interpret numerically passes through unchanged.
//
// The steps run in a fixed order (trim, case fold, separator strip, unit
// conversion, legacy fix-up, zero-fraction trim); later steps rely on the
// earlier ones having run.
func (n *Normalizer) Normalize(raw string) string {
	v := strings.TrimSpace(raw)
	v = strings.ToLower(v)
	v = strings.ReplaceAll(v, "_", "")
	v = strings.ReplaceAll(v, ",", "")

	if m := reNumberUnit.FindStringSubmatch(v); m != nil {
		v = n.convert(v, m[1], m[2])
	}

	// Legacy fix-up: unitless "400" is a 400G interface speed in bits.
	if v == "400" {
		v = "400000000000"
	}

	return reZeroFraction.ReplaceAllString(v, "")
}

func (n *Normalizer) convert(orig, number, unit string) string {
	if unit == "%" {
		return number
	}

	scale, ok := n.lookup(unit)
	if !ok {
		return orig
	}

	f, err := strconv.ParseFloat(number, 64)
	if err != nil || f >= float64(math.MaxInt64) {
		return orig
	}

	// Integer arithmetic only: fractional magnitudes truncate toward zero
	// before the scale is applied. Magnitudes the scale would overflow
	// bypass conversion like any other unparseable input.
	i := int64(f)
	if scale.div {
		return strconv.FormatInt(i/scale.factor, 10)
	}
	if i > math.MaxInt64/scale.factor {
		return orig
	}
	return strconv.FormatInt(i*scale.factor, 10)
}

func (n *Normalizer) lookup(unit string) (unitScale, bool) {
	if scale, ok := builtinUnits[unit]; ok {
		return scale, true
	}
	scale, ok := n.units[unit]
	return scale, ok
}
