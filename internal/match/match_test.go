package match

import (
	"testing"

	"recordlink/internal"
)

func TestFindCustomerPhoneBeatsName(t *testing.T) {
	// The name-matching candidate comes first in pool order, but a phone hit
	// anywhere in the pool outranks it.
	pool := NewCustomerPool([]internal.Customer{
		{Name: "Phong Nails", Phone: ""},
		{Name: "Completely Different", Phone: "+49 602 123 456"},
	})
	m := NewMatcher(nil, 0)

	res := m.FindCustomer(internal.AddressEntry{
		Company: "Phong Nails",
		Phone:   "+420 602 123 456",
	}, pool)

	if res.Index != 1 || res.Method != internal.MethodPhone {
		t.Fatalf("got index=%d method=%s, want index=1 method=PHONE", res.Index, res.Method)
	}
}

func TestFindCustomerCompanyStrategy(t *testing.T) {
	pool := NewCustomerPool([]internal.Customer{
		{Name: "Unrelated Person"},
		{Name: "Tiem Nails"},
	})
	m := NewMatcher(nil, 0)

	cases := []struct {
		name    string
		company string
	}{
		{name: "exact key", company: "Tiem Nails"},
		{name: "substring either direction", company: "Tiem Nails Berlin"},
		{name: "diacritics folded", company: "Tiệm Nails"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := m.FindCustomer(internal.AddressEntry{Company: tc.company}, pool)
			if res.Index != 1 || res.Method != internal.MethodCompany {
				t.Fatalf("got index=%d method=%s", res.Index, res.Method)
			}
		})
	}
}

func TestFindCustomerPrefixRule(t *testing.T) {
	pool := NewCustomerPool([]internal.Customer{
		{Name: "Phuong Nguyen Nails"},
	})
	m := NewMatcher(nil, 0)

	// Keys differ after the 8th character but share the prefix.
	res := m.FindCustomer(internal.AddressEntry{Company: "Phuong Nguyen Shop"}, pool)
	if res.Index != 0 || res.Method != internal.MethodCompany {
		t.Fatalf("got index=%d method=%s", res.Index, res.Method)
	}
}

func TestFindCustomerContactStrategy(t *testing.T) {
	pool := NewCustomerPool([]internal.Customer{
		{Name: "Tran Mai"},
	})
	m := NewMatcher(nil, 0)

	res := m.FindCustomer(internal.AddressEntry{Contact: "Trần Mai"}, pool)
	if res.Index != 0 || res.Method != internal.MethodContact {
		t.Fatalf("got index=%d method=%s", res.Index, res.Method)
	}
}

func TestFindCustomerCompanyBeatsContact(t *testing.T) {
	pool := NewCustomerPool([]internal.Customer{
		{Name: "Tran Mai"},
		{Name: "Lotus Beauty"},
	})
	m := NewMatcher(nil, 0)

	res := m.FindCustomer(internal.AddressEntry{
		Company: "Lotus Beauty",
		Contact: "Tran Mai",
	}, pool)
	if res.Index != 1 || res.Method != internal.MethodCompany {
		t.Fatalf("got index=%d method=%s", res.Index, res.Method)
	}
}

func TestFindCustomerNoMatch(t *testing.T) {
	pool := NewCustomerPool([]internal.Customer{
		{Name: "Somebody Else", Phone: "111222333"},
	})
	m := NewMatcher(nil, 0)

	res := m.FindCustomer(internal.AddressEntry{
		Company: "Xyz Qwerty",
		Phone:   "999888777",
	}, pool)
	if res.Matched() || res.Index != -1 || res.Method != internal.MethodNone {
		t.Fatalf("got %+v, want no match", res)
	}
}

func TestFindCustomerEmptyKeysNeverMatch(t *testing.T) {
	pool := NewCustomerPool([]internal.Customer{
		{Name: "", Phone: ""},
	})
	m := NewMatcher(nil, 0)

	res := m.FindCustomer(internal.AddressEntry{Company: "", Contact: "", Phone: ""}, pool)
	if res.Matched() {
		t.Fatalf("empty keys matched: %+v", res)
	}
}

func TestFindCustomerScorerPass(t *testing.T) {
	pool := NewCustomerPool([]internal.Customer{
		{Name: "Phong Nails"},
	})

	// Typo defeats both the prefix and the substring rule, so only the scorer
	// can link these.
	addr := internal.AddressEntry{Company: "Phonng Nails"}

	if res := NewMatcher(nil, 0).FindCustomer(addr, pool); res.Matched() {
		t.Fatalf("matched without scorer: %+v", res)
	}

	res := NewMatcher(JaroWinkler, 0.9).FindCustomer(addr, pool)
	if res.Index != 0 || res.Method != internal.MethodScore {
		t.Fatalf("got index=%d method=%s, want index=0 method=SCORE", res.Index, res.Method)
	}
}

func TestFindCustomerScorerThreshold(t *testing.T) {
	pool := NewCustomerPool([]internal.Customer{
		{Name: "Phong Nails"},
	})

	res := NewMatcher(JaroWinkler, 0.999).FindCustomer(internal.AddressEntry{Company: "Phonng Nails"}, pool)
	if res.Matched() {
		t.Fatalf("score below threshold still matched: %+v", res)
	}
}

func TestFindCustomerScorerTieKeepsEarlier(t *testing.T) {
	pool := NewCustomerPool([]internal.Customer{
		{Name: "Phong Nails"},
		{Name: "Phong Nails"},
	})

	res := NewMatcher(JaroWinkler, 0.9).FindCustomer(internal.AddressEntry{Company: "Phonng Nails"}, pool)
	if res.Index != 0 {
		t.Fatalf("tie broke to index %d, want 0", res.Index)
	}
}

func TestFindAddressReverse(t *testing.T) {
	pool := NewAddressPool([]internal.AddressEntry{
		{Company: "Lotus Beauty", Phone: "030 111 222 33"},
		{Contact: "Tran Mai"},
	})
	m := NewMatcher(nil, 0)

	res := m.FindAddress(internal.Customer{Name: "Tran Mai"}, pool)
	if res.Index != 1 || res.Method != internal.MethodContact {
		t.Fatalf("got index=%d method=%s", res.Index, res.Method)
	}

	res = m.FindAddress(internal.Customer{Name: "Nobody", Phone: "030-111-22233"}, pool)
	if res.Index != 0 || res.Method != internal.MethodPhone {
		t.Fatalf("got index=%d method=%s", res.Index, res.Method)
	}
}

func TestScorerByName(t *testing.T) {
	if ScorerByName("jaro-winkler") == nil {
		t.Fatal("jaro-winkler scorer missing")
	}
	if ScorerByName("") != nil {
		t.Fatal("empty name should disable scoring")
	}
	if ScorerByName("unknown") != nil {
		t.Fatal("unknown name should disable scoring")
	}
}
