package model

import "strings"

// MultiValueJoiner separates values when a multi-valued tag is read as a
// single string.
const MultiValueJoiner = "; "

// Metadata is an ordered mapping from tag name to a list of values.
//
// Tags keep the order in which they were first set, so processors that
// iterate over a family of tags (for example every "performer:<role>")
// see them in the same order as the file they were read from.
//
// Example:
//
//	m := NewMetadata()
//	m.Set("composer", "John Lennon", "Paul McCartney")
//	m.Add("performer:guitar", "George Harrison")
//	m.Get("composer")    // "John Lennon; Paul McCartney"
//	m.GetAll("composer") // []string{"John Lennon", "Paul McCartney"}
type Metadata struct {
	keys   []string
	values map[string][]string
}

// NewMetadata creates an empty Metadata.
func NewMetadata() *Metadata {
	return &Metadata{values: make(map[string][]string)}
}

// Set replaces all values of key.
func (m *Metadata) Set(key string, values ...string) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = append([]string(nil), values...)
}

// Add appends values to key, creating it if needed.
func (m *Metadata) Add(key string, values ...string) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = append(m.values[key], values...)
}

// Get returns the values of key joined with MultiValueJoiner.
// Returns "" if the key is absent.
func (m *Metadata) Get(key string) string {
	return strings.Join(m.values[key], MultiValueJoiner)
}

// GetAll returns a copy of the values of key, or nil if absent.
func (m *Metadata) GetAll(key string) []string {
	values, ok := m.values[key]
	if !ok {
		return nil
	}
	return append([]string(nil), values...)
}

// Has reports whether key is present, even if it holds no values.
func (m *Metadata) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Delete removes key.
func (m *Metadata) Delete(key string) {
	if _, ok := m.values[key]; !ok {
		return
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// Keys returns all tag names in insertion order.
func (m *Metadata) Keys() []string {
	return append([]string(nil), m.keys...)
}

// KeysWithPrefix returns the tag names starting with prefix, in insertion order.
func (m *Metadata) KeysWithPrefix(prefix string) []string {
	var keys []string
	for _, k := range m.keys {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	return keys
}

// Len returns the number of tags.
func (m *Metadata) Len() int {
	return len(m.keys)
}

// Clone returns a deep copy.
func (m *Metadata) Clone() *Metadata {
	c := NewMetadata()
	for _, k := range m.keys {
		c.Set(k, m.values[k]...)
	}
	return c
}
