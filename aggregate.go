package kwloc

import (
	"sort"
	"strings"
)

// Place is a distinct city and state pair seen during aggregation.
type Place struct {
	City  string `json:"city"`
	State string `json:"state"`
}

// Slug returns the URL-safe slug for the place's city.
func (p Place) Slug() string {
	return Slugify(p.City)
}

// CityGroup holds the keywords that resolved to one city.
type CityGroup struct {
	City     string
	Keywords []*KeywordRecord
}

// StateGroup holds the cities seen for one state in first-seen order.
type StateGroup struct {
	State  string
	Cities []*CityGroup

	index map[string]*CityGroup
}

// City returns the group for city, or nil if it was never seen.
func (g *StateGroup) City(city string) *CityGroup {
	return g.index[city]
}

// SortedCities returns the state's cities ordered by name.
func (g *StateGroup) SortedCities() []*CityGroup {
	out := make([]*CityGroup, len(g.Cities))
	copy(out, g.Cities)
	sort.Slice(out, func(i, j int) bool { return out[i].City < out[j].City })
	return out
}

// Aggregate groups matched keywords by state and city.
// Groups and places keep first-seen order.
type Aggregate struct {
	states     []*StateGroup
	stateIndex map[string]*StateGroup

	places     []Place
	placeIndex map[string]struct{}
}

// NewAggregate returns an empty Aggregate.
func NewAggregate() *Aggregate {
	return &Aggregate{
		stateIndex: make(map[string]*StateGroup),
		placeIndex: make(map[string]struct{}),
	}
}

// Add appends rec to the group for loc.
func (a *Aggregate) Add(rec *KeywordRecord, loc Location) {
	sg, ok := a.stateIndex[loc.State]
	if !ok {
		sg = &StateGroup{State: loc.State, index: make(map[string]*CityGroup)}
		a.stateIndex[loc.State] = sg
		a.states = append(a.states, sg)
	}

	cg, ok := sg.index[loc.City]
	if !ok {
		cg = &CityGroup{City: loc.City}
		sg.index[loc.City] = cg
		sg.Cities = append(sg.Cities, cg)
	}
	cg.Keywords = append(cg.Keywords, rec)

	// Spellings differing only in case are one place.
	key := strings.ToLower(loc.City) + "::" + loc.State
	if _, seen := a.placeIndex[key]; !seen {
		a.placeIndex[key] = struct{}{}
		a.places = append(a.places, Place{City: loc.City, State: loc.State})
	}
}

// States returns the state groups in first-seen order.
func (a *Aggregate) States() []*StateGroup {
	return a.states
}

// State returns the group for state, or nil if it was never seen.
func (a *Aggregate) State(state string) *StateGroup {
	return a.stateIndex[state]
}

// SortedStates returns the state groups ordered by abbreviation.
func (a *Aggregate) SortedStates() []*StateGroup {
	out := make([]*StateGroup, len(a.states))
	copy(out, a.states)
	sort.Slice(out, func(i, j int) bool { return out[i].State < out[j].State })
	return out
}

// Places returns the distinct places in first-seen order.
func (a *Aggregate) Places() []Place {
	return a.places
}

// KeywordCount returns the total number of grouped keywords.
func (a *Aggregate) KeywordCount() int {
	var n int
	for _, sg := range a.states {
		for _, cg := range sg.Cities {
			n += len(cg.Keywords)
		}
	}
	return n
}

// Group projects each row, extracts its location and folds the matches into
// a new Aggregate. Rows without a keyword and keywords without a usable
// location are skipped.
func Group(rows []Row, extractor Extractor) *Aggregate {
	agg := NewAggregate()
	for _, row := range rows {
		rec, ok := NewKeywordRecord(row)
		if !ok {
			continue
		}
		loc, ok := extractor.Extract(rec.Keyword)
		if !ok {
			continue
		}
		agg.Add(rec, loc)
	}
	return agg
}
