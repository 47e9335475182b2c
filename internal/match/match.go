// Package match links records from independent sources (customers, address
// books) that refer to the same real-world entity, using a fixed precedence
// of matching strategies over noisy partial keys.
package match

import (
	"strings"

	"recordlink/internal"
	"recordlink/internal/textnorm"
)

// namePrefixLen is how many leading key characters must agree for the prefix
// sub-rule of the name strategy.
const namePrefixLen = 8

type addressKeys struct {
	phone   string
	company string
	contact string
}

type customerKeys struct {
	phone string
	name  string
}

// CustomerPool is a read-only pool of customers annotated with match keys.
// Build it once per run; pool order is the deterministic tie-break.
type CustomerPool struct {
	Customers []internal.Customer
	keys      []customerKeys
}

func NewCustomerPool(customers []internal.Customer) *CustomerPool {
	keys := make([]customerKeys, len(customers))
	for i, c := range customers {
		keys[i] = customerKeys{
			phone: textnorm.PhoneKey(c.Phone),
			name:  textnorm.ForMatching(c.Name),
		}
	}
	return &CustomerPool{Customers: customers, keys: keys}
}

// AddressPool is the mirror pool for address-book entries.
type AddressPool struct {
	Entries []internal.AddressEntry
	keys    []addressKeys
}

func NewAddressPool(entries []internal.AddressEntry) *AddressPool {
	keys := make([]addressKeys, len(entries))
	for i, e := range entries {
		keys[i] = addressKeys{
			phone:   textnorm.PhoneKey(e.Phone),
			company: textnorm.ForMatching(e.Company),
			contact: textnorm.ForMatching(e.Contact),
		}
	}
	return &AddressPool{Entries: entries, keys: keys}
}

// Matcher applies strategies in strict precedence: phone-key equality first,
// then company-key, then contact-key name similarity; within one strategy the
// first candidate in pool order wins. Strategies are never blended or scored
// against each other. An optional Scorer adds a final threshold-gated pass
// after the fixed strategies.
type Matcher struct {
	scorer    Scorer
	threshold float64
}

func NewMatcher(scorer Scorer, threshold float64) *Matcher {
	return &Matcher{scorer: scorer, threshold: threshold}
}

// FindCustomer matches one address-book entry against the customer pool.
func (m *Matcher) FindCustomer(addr internal.AddressEntry, pool *CustomerPool) internal.MatchResult {
	target := addressKeys{
		phone:   textnorm.PhoneKey(addr.Phone),
		company: textnorm.ForMatching(addr.Company),
		contact: textnorm.ForMatching(addr.Contact),
	}

	if target.phone != "" {
		for i, c := range pool.keys {
			if c.phone != "" && c.phone == target.phone {
				return internal.MatchResult{Index: i, Method: internal.MethodPhone}
			}
		}
	}
	for i, c := range pool.keys {
		if nameHit(target.company, c.name) {
			return internal.MatchResult{Index: i, Method: internal.MethodCompany}
		}
	}
	for i, c := range pool.keys {
		if nameHit(target.contact, c.name) {
			return internal.MatchResult{Index: i, Method: internal.MethodContact}
		}
	}

	if m.scorer != nil {
		best, ok := m.scoreOver(len(pool.keys), func(i int) float64 {
			s := m.scorer(target.company, pool.keys[i].name)
			if alt := m.scorer(target.contact, pool.keys[i].name); alt > s {
				s = alt
			}
			return s
		})
		if ok {
			return internal.MatchResult{Index: best, Method: internal.MethodScore}
		}
	}

	return internal.NoMatch()
}

// FindAddress is the reverse direction: one customer against an address pool.
// Same strategies, symmetric role swap.
func (m *Matcher) FindAddress(cust internal.Customer, pool *AddressPool) internal.MatchResult {
	target := customerKeys{
		phone: textnorm.PhoneKey(cust.Phone),
		name:  textnorm.ForMatching(cust.Name),
	}

	if target.phone != "" {
		for i, a := range pool.keys {
			if a.phone != "" && a.phone == target.phone {
				return internal.MatchResult{Index: i, Method: internal.MethodPhone}
			}
		}
	}
	for i, a := range pool.keys {
		if nameHit(target.name, a.company) {
			return internal.MatchResult{Index: i, Method: internal.MethodCompany}
		}
	}
	for i, a := range pool.keys {
		if nameHit(target.name, a.contact) {
			return internal.MatchResult{Index: i, Method: internal.MethodContact}
		}
	}

	if m.scorer != nil {
		best, ok := m.scoreOver(len(pool.keys), func(i int) float64 {
			s := m.scorer(target.name, pool.keys[i].company)
			if alt := m.scorer(target.name, pool.keys[i].contact); alt > s {
				s = alt
			}
			return s
		})
		if ok {
			return internal.MatchResult{Index: best, Method: internal.MethodScore}
		}
	}

	return internal.NoMatch()
}

// scoreOver picks the highest-scoring candidate at or above the threshold.
// Ties keep the earlier candidate, preserving pool order as the tie-break.
func (m *Matcher) scoreOver(n int, score func(int) float64) (int, bool) {
	bestIdx := -1
	bestScore := 0.0
	for i := 0; i < n; i++ {
		if s := score(i); s >= m.threshold && s > bestScore {
			bestIdx = i
			bestScore = s
		}
	}
	return bestIdx, bestIdx >= 0
}

// nameHit is the name-similarity sub-rule: equal 8-char prefixes, or one key
// contained in the other. Both keys must be non-empty.
func nameHit(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	if keyPrefix(a) == keyPrefix(b) {
		return true
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

func keyPrefix(s string) string {
	if len(s) > namePrefixLen {
		return s[:namePrefixLen]
	}
	return s
}
