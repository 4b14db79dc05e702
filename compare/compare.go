// SPDX-License-Identifier: GPL-3.0-or-later

// Package compare cross-references the gNMI and CLI mappings and
// classifies every key into one of four outcomes.
package compare

type OutcomeKind int

const (
	KindMatch OutcomeKind = iota
	KindMissingInCLI
	KindMissingInGNMI
	KindDiscrepancy
)

// Outcome is the classification of a single key. Values are normalized;
// only the side(s) the key exists on are set.
type Outcome struct {
	Kind      OutcomeKind
	Key       string
	GNMIValue string
	CLIValue  string
}

// Result holds the outcomes of one comparison run.
//
// AllMatch is true iff there were no discrepancies and no CLI-only keys.
// A key missing from the CLI side alone does not flip it to false; this
// asymmetry matches historical report behavior and is kept on purpose.
type Result struct {
	Outcomes []Outcome
	AllMatch bool
}

// Compare walks the gNMI mapping in insertion order classifying each key
// against the CLI mapping, then appends an outcome for every CLI-only
// key in its insertion order.
func Compare(gnmi, cli *Mapping) Result {
	res := Result{AllMatch: true}

	for _, key := range gnmi.Keys() {
		gv, _ := gnmi.Get(key)
		cv, ok := cli.Get(key)

		switch {
		case !ok:
			res.Outcomes = append(res.Outcomes, Outcome{Kind: KindMissingInCLI, Key: key, GNMIValue: gv})
		case gv == cv:
			res.Outcomes = append(res.Outcomes, Outcome{Kind: KindMatch, Key: key, GNMIValue: gv, CLIValue: cv})
		default:
			res.Outcomes = append(res.Outcomes, Outcome{Kind: KindDiscrepancy, Key: key, GNMIValue: gv, CLIValue: cv})
			res.AllMatch = false
		}
	}

	for _, key := range cli.Keys() {
		if _, ok := gnmi.Get(key); ok {
			continue
		}
		cv, _ := cli.Get(key)
		res.Outcomes = append(res.Outcomes, Outcome{Kind: KindMissingInGNMI, Key: key, CLIValue: cv})
		res.AllMatch = false
	}

	return res
}
