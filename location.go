package kwloc

import (
	"regexp"
	"strings"
)

// Location is a city and state pair extracted from a keyword.
type Location struct {
	City  string `json:"city"`
	State string `json:"state"`
}

// Extractor finds a location inside a free-text keyword.
type Extractor interface {
	// Extract returns the location named by keyword.
	// Returns false when the keyword does not name a usable place.
	Extract(keyword string) (Location, bool)
}

// ExtractorFunc adapts a function to the Extractor interface.
type ExtractorFunc func(keyword string) (Location, bool)

// Extract calls f(keyword).
func (f ExtractorFunc) Extract(keyword string) (Location, bool) {
	return f(keyword)
}

// DefaultExtractor applies the heuristic rules of ExtractLocation.
var DefaultExtractor Extractor = ExtractorFunc(ExtractLocation)

var (
	// abbrSuffixRe matches "<city>, ST" or "<city> ST" at the end of a keyword.
	// Digits belong to the captured text so "24 hour" fillers reach CleanCity.
	abbrSuffixRe = regexp.MustCompile(`(?i)([A-Za-z0-9 .'-]+?)[, ]+(` + strings.Join(stateAbbrs(), "|") + `)$`)

	// prepositionRe matches "in|near|around <city>, XX" anywhere in a keyword.
	// XX is validated against the state table separately.
	prepositionRe = regexp.MustCompile(`(?i)(?:in|near|around)\s+([A-Za-z0-9 .'-]+?)[, ]+([A-Za-z]{2})\b`)

	// stateNameRes holds one "<city> <Full Name>" suffix pattern per state,
	// in state enumeration order.
	stateNameRes = compileStateNameRes()

	// leadingPrepositionRe strips a leftover preposition from a cleaned city.
	// A bare preposition is consumed entirely.
	leadingPrepositionRe = regexp.MustCompile(`(?i)^(?:in|near|around)(?:\s+|$)`)
)

// cityPrefixes are filler phrases stripped from the front of a captured city.
// Only the first match in list order is removed.
var cityPrefixes = []string{
	"emergency vet in ",
	"emergency vet ",
	"emergency veterinarian in ",
	"emergency veterinarian ",
	"emergency veterinary in ",
	"emergency veterinary ",
	"emergency animal hospital in ",
	"emergency animal hospital ",
	"emergency animal clinic in ",
	"emergency animal clinic ",
	"emergency vet clinic in ",
	"emergency vet clinic ",
	"24 hour emergency vet in ",
	"24 hour emergency vet ",
	"24 hour vet in ",
	"24 hour vet ",
	"urgent care vet in ",
	"urgent care vet ",
	"low cost emergency vet in ",
	"low cost emergency vet ",
	"best emergency vet in ",
	"best emergency vet ",
	"affordable emergency vet in ",
	"affordable emergency vet ",
	"hour emergency vet in ",
	"hour emergency vet ",
}

// genericCityTerms mark captured text that describes a service, not a place.
var genericCityTerms = []string{
	"near me",
	"vet ",
	"veterinary",
	"animal hospital",
	"animal clinic",
}

type stateNameRe struct {
	abbr string
	re   *regexp.Regexp
}

func stateAbbrs() []string {
	abbrs := make([]string, len(states))
	for i, s := range states {
		abbrs[i] = s.Abbr
	}
	return abbrs
}

func compileStateNameRes() []stateNameRe {
	res := make([]stateNameRe, len(states))
	for i, s := range states {
		res[i] = stateNameRe{
			abbr: s.Abbr,
			re:   regexp.MustCompile(`(?i)([A-Za-z0-9 .'-]+)\s+` + regexp.QuoteMeta(s.Name) + `$`),
		}
	}
	return res
}

// ExtractLocation extracts a city and state from a keyword phrase.
//
// Rules are tried in order and the first pattern that matches decides the
// result: a trailing state abbreviation, then "in/near/around <city>, XX",
// then a trailing full state name. When the matching rule yields a generic
// city the keyword is rejected without trying later rules.
func ExtractLocation(keyword string) (Location, bool) {
	normalized := collapseSpace(keyword)

	if m := abbrSuffixRe.FindStringSubmatch(normalized); m != nil {
		return newLocation(m[1], strings.ToUpper(m[2]))
	}

	if m := prepositionRe.FindStringSubmatch(normalized); m != nil {
		if state := strings.ToUpper(m[2]); IsStateAbbr(state) {
			return newLocation(m[1], state)
		}
	}

	for _, s := range stateNameRes {
		if m := s.re.FindStringSubmatch(normalized); m != nil {
			return newLocation(m[1], s.abbr)
		}
	}

	return Location{}, false
}

func newLocation(rawCity, state string) (Location, bool) {
	city := CleanCity(strings.TrimSpace(rawCity))
	if IsGenericCity(city) {
		return Location{}, false
	}
	return Location{City: city, State: state}, true
}

// CleanCity strips filler phrases from a captured city.
func CleanCity(raw string) string {
	cleaned := raw
	for _, prefix := range cityPrefixes {
		if len(cleaned) >= len(prefix) && strings.EqualFold(cleaned[:len(prefix)], prefix) {
			cleaned = cleaned[len(prefix):]
			break
		}
	}

	cleaned = leadingPrepositionRe.ReplaceAllString(cleaned, "")
	return collapseSpace(cleaned)
}

// IsGenericCity reports whether a cleaned city is leftover descriptive text
// rather than a place name.
func IsGenericCity(city string) bool {
	if city == "" {
		return true
	}
	lower := strings.ToLower(city)
	if lower == "emergency vet" || lower == "emergency vets" {
		return true
	}
	// Digits are captured so fillers like "24 hour" can be stripped; a
	// capture with no letters left is a zip code or number, not a city.
	if !strings.ContainsFunc(city, isLetter) {
		return true
	}
	for _, term := range genericCityTerms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
