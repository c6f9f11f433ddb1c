package core

import "maps"

// Params is a set of request parameters keyed by name. Insertion order is
// irrelevant; canonicalization sorts keys before serialization, so two Params
// with equal key/value pairs always produce the same canonical query.
type Params map[string]string

// Clone returns an independent copy of the parameter set. A nil receiver
// yields an empty, non-nil Params.
func (p Params) Clone() Params {
	out := make(Params, len(p)+4)
	maps.Copy(out, p)
	return out
}

// Set stores a parameter and returns the set for chaining.
func (p Params) Set(key, value string) Params {
	p[key] = value
	return p
}
