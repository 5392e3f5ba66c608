package kwloc

// State is a US state with its two-letter postal abbreviation.
type State struct {
	Name string
	Abbr string
}

// states is the fixed enumeration used by the full-name extraction rule.
// Order matters: names are tried in this order, so "Virginia" is tested
// before "West Virginia".
var states = [...]State{
	{"Alabama", "AL"}, {"Alaska", "AK"}, {"Arizona", "AZ"}, {"Arkansas", "AR"},
	{"California", "CA"}, {"Colorado", "CO"}, {"Connecticut", "CT"}, {"Delaware", "DE"},
	{"Florida", "FL"}, {"Georgia", "GA"}, {"Hawaii", "HI"}, {"Idaho", "ID"},
	{"Illinois", "IL"}, {"Indiana", "IN"}, {"Iowa", "IA"}, {"Kansas", "KS"},
	{"Kentucky", "KY"}, {"Louisiana", "LA"}, {"Maine", "ME"}, {"Maryland", "MD"},
	{"Massachusetts", "MA"}, {"Michigan", "MI"}, {"Minnesota", "MN"}, {"Mississippi", "MS"},
	{"Missouri", "MO"}, {"Montana", "MT"}, {"Nebraska", "NE"}, {"Nevada", "NV"},
	{"New Hampshire", "NH"}, {"New Jersey", "NJ"}, {"New Mexico", "NM"}, {"New York", "NY"},
	{"North Carolina", "NC"}, {"North Dakota", "ND"}, {"Ohio", "OH"}, {"Oklahoma", "OK"},
	{"Oregon", "OR"}, {"Pennsylvania", "PA"}, {"Rhode Island", "RI"}, {"South Carolina", "SC"},
	{"South Dakota", "SD"}, {"Tennessee", "TN"}, {"Texas", "TX"}, {"Utah", "UT"},
	{"Vermont", "VT"}, {"Virginia", "VA"}, {"Washington", "WA"}, {"West Virginia", "WV"},
	{"Wisconsin", "WI"}, {"Wyoming", "WY"},
}

var (
	stateByAbbr = make(map[string]State, len(states))
	stateByName = make(map[string]State, len(states))
)

func init() {
	for _, s := range states {
		stateByAbbr[s.Abbr] = s
		stateByName[s.Name] = s
	}
}

// States returns all 50 states in enumeration order.
func States() []State {
	out := make([]State, len(states))
	copy(out, states[:])
	return out
}

// IsStateAbbr reports whether abbr is one of the 50 state abbreviations.
// The comparison is case-sensitive; callers upper-case first.
func IsStateAbbr(abbr string) bool {
	_, ok := stateByAbbr[abbr]
	return ok
}

// StateAbbr returns the abbreviation for a full state name.
func StateAbbr(name string) (string, bool) {
	s, ok := stateByName[name]
	return s.Abbr, ok
}

// StateName returns the full name for a state abbreviation.
func StateName(abbr string) (string, bool) {
	s, ok := stateByAbbr[abbr]
	return s.Name, ok
}
