package extract

import "strings"

// Static rule tables shared by the field extractor and the name extractor.
// These are config data reflecting the observed datasets, kept in one place.

// companyKeywords marks a text part as a business name rather than a person.
var companyKeywords = []string{"nail", "beauty", "studio", "salon", "spa", "lounge"}

// shopKeywords is the wider list used by the name extractor to skip parts
// that name a shop or venue.
var shopKeywords = []string{
	"nail", "beauty", "studio", "salon", "spa", "lounge", "center",
	"centrum", "galerie", "kaufland", "rewe", "arcaden", "sushi",
	"kitchen", "restaurant", "shop", "store", "gbr", "gmbh", "nails",
}

// skipPhrases are boilerplate fragments (Vietnamese chat phrases, address
// labels) that never contain a person's name.
var skipPhrases = []string{
	"địa chỉ", "dia chi", "bạn gửi", "ban gui", "gửi về", "gui ve",
	"d/c", "address", "ok e", "đc", "dc", "của chị", "cua chi",
	"em theo", "anh gởi", "cho nguyen", "nhé", "nhe", "là:", "la:",
	"gửi hàng", "gui hang", "chuyển cho", "chuyen cho",
}

// addressKeywords flag a part as street/venue text rather than a name.
var addressKeywords = []string{
	"str", "strasse", "straße", "gasse", "platz", "weg", "allee",
	"ring", "damm", "chaussee", "ufer", "markt", "bahnhof",
	"im ", "in der", "am ", "an der", "bei ", "eingang",
}

// countryKeywords is scanned in order against the lowercased text; the first
// country with any keyword hit wins.
var countryKeywords = []struct {
	Name     string
	Keywords []string
}{
	{"Germany", []string{"germany", "deutschland", "germeny", "de"}},
	{"Czech Republic", []string{"czech", "česká", "ceska", "cz", "praha", "prague"}},
	{"Netherlands", []string{"nederland", "netherlands", "holland", "nl"}},
	{"Austria", []string{"austria", "österreich", "osterreich", "at"}},
	{"Spain", []string{"spain", "españa", "espana", "es", "bcn", "barcelona"}},
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// hasCountryKeyword matches long keywords as substrings but two-letter country
// codes only as whole tokens, so "platz" never reads as Austria.
func hasCountryKeyword(lower, kw string) bool {
	if len(kw) > 2 {
		return strings.Contains(lower, kw)
	}
	for _, token := range strings.FieldsFunc(lower, func(r rune) bool {
		return !('a' <= r && r <= 'z')
	}) {
		if token == kw {
			return true
		}
	}
	return false
}
