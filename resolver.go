package orcas

import "strings"

// Resolution is the outcome of resolving a metric's identity candidates.
type Resolution struct {
	Config  UnitConfig // meaningful only when Found
	Matched string     // the candidate that matched, as given
	Found   bool
}

// ConfigOrDefault returns the resolved config, or DefaultUnitConfig when no
// candidate matched.
func (r Resolution) ConfigOrDefault() UnitConfig {
	if !r.Found {
		return DefaultUnitConfig
	}
	return r.Config
}

// Resolver picks a unit config from an ordered list of identity candidates.
//
// Candidates are tried in order and the first one that resolves wins, so
// callers encode precedence (a stable backend key before a display label)
// simply by ordering them. A Resolver over a nil lookup resolves nothing.
type Resolver struct {
	Lookup UnitLookup
}

// Resolve tries every non-blank candidate in turn: first the verbatim
// candidate, then its NormalizeKey token.
func (r Resolver) Resolve(candidates ...string) Resolution {
	if r.Lookup == nil {
		return Resolution{}
	}
	for _, c := range candidates {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if cfg, ok := r.Lookup.LookupExact(c); ok {
			return Resolution{Config: cfg, Matched: c, Found: true}
		}
		if token := NormalizeKey(c); token != "" {
			if cfg, ok := r.Lookup.LookupNormalized(token); ok {
				return Resolution{Config: cfg, Matched: c, Found: true}
			}
		}
	}
	return Resolution{}
}
