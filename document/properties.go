package document

import "sort"

// Properties holds a node's key=value properties. Insertion order is
// preserved (last write wins for a repeated key, per spec §3), which
// matters only to a parser or builder that cares about it; package
// printer always prints properties in sorted key order regardless of
// insertion order, so that two documents differing only in property
// order or duplicate-key overwrites print identically.
type Properties struct {
	order []string
	byKey map[string]*Value
}

// NewProperties creates an empty Properties set.
func NewProperties() *Properties {
	return &Properties{byKey: make(map[string]*Value)}
}

// Set assigns key to value. If key was already present its value is
// replaced in place and insertion order is unchanged; otherwise key is
// appended to the end of the insertion order.
func (p *Properties) Set(key string, value *Value) {
	if p.byKey == nil {
		p.byKey = make(map[string]*Value)
	}
	if _, exists := p.byKey[key]; !exists {
		p.order = append(p.order, key)
	}
	p.byKey[key] = value
}

// Get returns the value for key, or nil if key is not present.
func (p *Properties) Get(key string) *Value {
	if p.byKey == nil {
		return nil
	}
	return p.byKey[key]
}

// Has reports whether key is present.
func (p *Properties) Has(key string) bool {
	if p.byKey == nil {
		return false
	}
	_, ok := p.byKey[key]
	return ok
}

// Len returns the number of properties.
func (p *Properties) Len() int {
	return len(p.order)
}

// Keys returns the property keys in insertion order.
func (p *Properties) Keys() []string {
	keys := make([]string, len(p.order))
	copy(keys, p.order)
	return keys
}

// SortedKeys returns the property keys in lexicographic order, the order
// package printer always prints them in.
func (p *Properties) SortedKeys() []string {
	keys := p.Keys()
	sort.Strings(keys)
	return keys
}

// Equal reports whether p and other hold the same set of key/value pairs;
// insertion order is not significant.
func (p *Properties) Equal(other *Properties) bool {
	if p.Len() != other.Len() {
		return false
	}
	for k, v := range p.byKey {
		ov, ok := other.byKey[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}
