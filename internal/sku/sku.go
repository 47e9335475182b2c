// Package sku derives short human-meaningful product codes from a category
// and a product name, with a registry guaranteeing case-insensitive
// uniqueness within a batch run.
package sku

import (
	"fmt"
	"sort"
	"strings"

	"recordlink/internal/textnorm"
)

const (
	fallbackCategory = "GEN"
	fallbackProduct  = "ITEM"
)

// connectorTokens are dropped when splitting a category into words.
var connectorTokens = map[string]struct{}{
	"&": {}, "and": {}, "-": {}, "/": {},
}

// Registry is the mutable set of already-issued codes. Comparison is
// case-insensitive. Not safe for concurrent use: one registry belongs to one
// batch run (or access must be serialized by the caller).
type Registry struct {
	codes map[string]struct{}
}

// NewRegistry builds a registry, optionally preloaded with codes issued in
// prior runs.
func NewRegistry(existing ...string) *Registry {
	r := &Registry{codes: make(map[string]struct{}, len(existing))}
	for _, code := range existing {
		r.codes[strings.ToUpper(code)] = struct{}{}
	}
	return r
}

// Has reports whether code was already issued. Read-only.
func (r *Registry) Has(code string) bool {
	_, ok := r.codes[strings.ToUpper(code)]
	return ok
}

func (r *Registry) add(code string) {
	r.codes[strings.ToUpper(code)] = struct{}{}
}

// Register records an externally assigned code so later generated codes
// cannot collide with it.
func (r *Registry) Register(code string) {
	r.add(code)
}

// Codes returns all registered codes in sorted order, for persistence.
func (r *Registry) Codes() []string {
	out := make([]string, 0, len(r.codes))
	for code := range r.codes {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

// CategoryPart derives the category prefix: initials for multi-word
// categories, first three code-key characters otherwise.
func CategoryPart(category string) string {
	words := splitWords(category)
	part := ""
	if len(words) > 1 {
		var b strings.Builder
		for _, w := range words {
			if k := textnorm.ForCode(w); k != "" {
				b.WriteByte(k[0])
			}
		}
		part = b.String()
	} else {
		part = prefix(textnorm.ForCode(category), 3)
	}
	if part == "" {
		return fallbackCategory
	}
	return part
}

// ProductPart derives the name segment: 6 chars for one word, 3+3 for two,
// 2+2+2 of the first three words otherwise.
func ProductPart(name string) string {
	words := strings.Fields(name)
	part := ""
	switch {
	case len(words) == 0:
		return fallbackProduct
	case len(words) == 1:
		part = prefix(textnorm.ForCode(words[0]), 6)
	case len(words) == 2:
		part = prefix(textnorm.ForCode(words[0]), 3) + prefix(textnorm.ForCode(words[1]), 3)
	default:
		var b strings.Builder
		for _, w := range words[:3] {
			b.WriteString(prefix(textnorm.ForCode(w), 2))
		}
		part = b.String()
	}
	if part == "" {
		return fallbackProduct
	}
	return part
}

// Generate issues a unique code for (category, name), mutating the registry.
// The first caller of a given base code gets it unsuffixed; later collisions
// get -1, -2, ... so output depends only on call order.
func Generate(category, name string, registry *Registry) string {
	base := CategoryPart(category) + "-" + ProductPart(name)
	if !registry.Has(base) {
		registry.add(base)
		return base
	}
	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s-%d", base, n)
		if !registry.Has(candidate) {
			registry.add(candidate)
			return candidate
		}
	}
}

func splitWords(s string) []string {
	fields := strings.Fields(s)
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if _, drop := connectorTokens[f]; drop {
			continue
		}
		out = append(out, f)
	}
	return out
}

func prefix(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
