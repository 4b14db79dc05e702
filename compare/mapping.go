// SPDX-License-Identifier: GPL-3.0-or-later

package compare

// Mapping is an insertion-ordered key to normalized-value container with
// explicit last-write-wins upsert semantics: overwriting a key keeps its
// original position, so merged sources report in a stable order.
type Mapping struct {
	keys   []string
	values map[string]string
}

func NewMapping() *Mapping {
	return &Mapping{values: make(map[string]string)}
}

// Put upserts the value for key.
func (m *Mapping) Put(key, value string) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value stored for key.
func (m *Mapping) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (m *Mapping) Keys() []string {
	return m.keys
}

func (m *Mapping) Len() int {
	return len(m.keys)
}
