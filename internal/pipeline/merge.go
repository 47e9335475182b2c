package pipeline

import (
	"recordlink/internal"
	"recordlink/internal/config"
	"recordlink/internal/match"
)

// MergeService links customers with address-book entries. The driving side
// depends on which source is authoritative: the forward direction walks the
// address entries looking for their customer, the reverse direction walks the
// customers looking for their best address.
type MergeService struct {
	matcher *match.Matcher
}

func NewMergeService(cfg config.Config) *MergeService {
	return &MergeService{
		matcher: match.NewMatcher(match.ScorerByName(cfg.MatchScorer), cfg.MatchScoreThreshold),
	}
}

func (s *MergeService) Merge(customers []internal.Customer, addresses []internal.AddressEntry, reverse bool) internal.MergeResult {
	if reverse {
		return s.mergeReverse(customers, addresses)
	}
	return s.mergeForward(customers, addresses)
}

func (s *MergeService) mergeForward(customers []internal.Customer, addresses []internal.AddressEntry) internal.MergeResult {
	pool := match.NewCustomerPool(customers)

	result := internal.MergeResult{Pairs: []internal.MatchPair{}}
	matchedCustomers := make([]bool, len(customers))
	for i, addr := range addresses {
		res := s.matcher.FindCustomer(addr, pool)
		if !res.Matched() {
			result.UnmatchedAddresses = append(result.UnmatchedAddresses, addr)
			continue
		}
		matchedCustomers[res.Index] = true
		result.Pairs = append(result.Pairs, internal.MatchPair{
			CustomerIndex: res.Index,
			AddressIndex:  i,
			Method:        res.Method,
		})
	}

	for i, hit := range matchedCustomers {
		if !hit {
			result.UnmatchedCustomers = append(result.UnmatchedCustomers, customers[i])
		}
	}
	return result
}

func (s *MergeService) mergeReverse(customers []internal.Customer, addresses []internal.AddressEntry) internal.MergeResult {
	pool := match.NewAddressPool(addresses)

	result := internal.MergeResult{Pairs: []internal.MatchPair{}}
	matchedAddresses := make([]bool, len(addresses))
	for i, cust := range customers {
		res := s.matcher.FindAddress(cust, pool)
		if !res.Matched() {
			result.UnmatchedCustomers = append(result.UnmatchedCustomers, cust)
			continue
		}
		matchedAddresses[res.Index] = true
		result.Pairs = append(result.Pairs, internal.MatchPair{
			CustomerIndex: i,
			AddressIndex:  res.Index,
			Method:        res.Method,
		})
	}

	for i, hit := range matchedAddresses {
		if !hit {
			result.UnmatchedAddresses = append(result.UnmatchedAddresses, addresses[i])
		}
	}
	return result
}
