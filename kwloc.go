// Package kwloc turns an SEO keyword export into a city directory seed.
// It reads a keyword CSV, extracts a (city, state) pair from each keyword
// phrase, groups the matches by state and city, and renders the grouping
// as JSON, a cities insert statement, and a Markdown report.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, postgres/, etree/).
package kwloc
