package internal

type AddressSource string

const (
	SourceCSV       AddressSource = "csv"
	SourceGermanTXT AddressSource = "german_txt"
	SourceHTML      AddressSource = "html"
)

// ParsedRecord is the field-decomposed result of parsing one free-text entry.
// Every field is derived from the input text only; absent fields stay empty.
type ParsedRecord struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Company      string `json:"company"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Street       string `json:"street"`
	StreetNumber string `json:"streetNumber"`
	City         string `json:"city"`
	ZipCode      string `json:"zipCode"`
	Country      string `json:"country"`
}

func (r ParsedRecord) Empty() bool {
	return r == ParsedRecord{}
}

type AddressEntry struct {
	Source  AddressSource `json:"source"`
	Company string        `json:"company"`
	Contact string        `json:"contact"`
	Street  string        `json:"street"`
	City    string        `json:"city"`
	ZipCode string        `json:"zipCode"`
	Country string        `json:"country"`
	Email   string        `json:"email"`
	Phone   string        `json:"phone"`
}

type Customer struct {
	Name       string `json:"name"`
	FacebookID string `json:"facebookId"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	ZipCode    string `json:"zipCode"`
	Country    string `json:"country"`
	Notes      string `json:"notes"`
}

type MatchMethod string

const (
	MethodPhone   MatchMethod = "PHONE"
	MethodCompany MatchMethod = "COMPANY"
	MethodContact MatchMethod = "CONTACT"
	MethodScore   MatchMethod = "SCORE"
	MethodNone    MatchMethod = "NONE"
)

// MatchResult points at exactly one candidate in a pool, or none. "No match"
// is a normal outcome, never an error.
type MatchResult struct {
	Index  int         `json:"index"`
	Method MatchMethod `json:"method"`
}

func NoMatch() MatchResult {
	return MatchResult{Index: -1, Method: MethodNone}
}

func (r MatchResult) Matched() bool {
	return r.Index >= 0
}

type MatchPair struct {
	CustomerIndex int         `json:"customerIndex"`
	AddressIndex  int         `json:"addressIndex"`
	Method        MatchMethod `json:"method"`
}

type MergeResult struct {
	Pairs              []MatchPair    `json:"pairs"`
	UnmatchedAddresses []AddressEntry `json:"unmatchedAddresses"`
	UnmatchedCustomers []Customer     `json:"unmatchedCustomers"`
}

type CustomerExportRow struct {
	Name              string
	FacebookID        string
	FacebookURL       string
	Email             string
	Phone             string
	Address           string
	City              string
	ZipCode           string
	Country           string
	Notes             string
	Type              string
	PreferredLanguage string
	PreferredCurrency string

	BillingFirstName    string
	BillingLastName     string
	BillingCompany      string
	BillingEmail        string
	BillingPhone        string
	BillingStreet       string
	BillingStreetNumber string
	BillingCity         string
	BillingZipCode      string
	BillingCountry      string
}

type InventoryRow struct {
	Name          string
	SKU           string
	Category      string
	Supplier      string
	PriceCZK      float64
	PriceEUR      float64
	ImportCostEUR float64
	ImportCostCZK float64
}
