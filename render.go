package kwloc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Artifact file names written to the output directory.
const (
	JSONFile    = "keywords-by-state.json"
	SQLFile     = "keyword-cities.sql"
	ReportFile  = "keyword-report.md"
	SitemapFile = "keyword-sitemap.xml"
)

// MarshalJSON encodes the aggregate as a state → city → keywords object.
// Object keys keep first-seen order.
func (a *Aggregate) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, sg := range a.states {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeKey(&buf, sg.State); err != nil {
			return nil, err
		}
		buf.WriteByte('{')
		for j, cg := range sg.Cities {
			if j > 0 {
				buf.WriteByte(',')
			}
			if err := writeKey(&buf, cg.City); err != nil {
				return nil, err
			}
			b, err := marshal(cg.Keywords)
			if err != nil {
				return nil, err
			}
			buf.Write(b)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeKey(buf *bytes.Buffer, key string) error {
	b, err := marshal(key)
	if err != nil {
		return err
	}
	buf.Write(b)
	buf.WriteByte(':')
	return nil
}

// marshal encodes v without HTML escaping so keywords stay readable.
func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// RenderJSON returns the grouping as JSON indented with two spaces.
func RenderJSON(agg *Aggregate) ([]byte, error) {
	raw, err := agg.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to encode grouping: %w", err)
	}
	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		return nil, fmt.Errorf("failed to indent grouping: %w", err)
	}
	return out.Bytes(), nil
}

// RenderSQL returns one multi-row insert into the cities table with a row
// per distinct place. Rows whose slug already exists are ignored.
func RenderSQL(agg *Aggregate) string {
	places := agg.Places()
	if len(places) == 0 {
		return "-- no cities extracted\n"
	}

	rows := make([]string, 0, len(places))
	for _, p := range places {
		rows = append(rows, fmt.Sprintf("('%s', '%s', '%s', 0)",
			quoteSQL(p.City), quoteSQL(p.State), p.Slug()))
	}

	return "INSERT INTO cities (name, state, slug, clinic_count) VALUES\n" +
		strings.Join(rows, ",\n") +
		"\nON CONFLICT (slug) DO NOTHING;"
}

func quoteSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// RenderReport returns a Markdown report with a heading per state and a
// keyword count per city, both sorted alphabetically.
func RenderReport(agg *Aggregate) string {
	lines := []string{"# Keyword Grouping Report", ""}
	for _, sg := range agg.SortedStates() {
		lines = append(lines, "## "+sg.State)
		for _, cg := range sg.SortedCities() {
			lines = append(lines, fmt.Sprintf("- %s (%d keywords)", cg.City, len(cg.Keywords)))
		}
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// RenderArtifacts renders the JSON grouping, SQL insert and Markdown report.
func RenderArtifacts(agg *Aggregate) ([]*Artifact, error) {
	grouping, err := RenderJSON(agg)
	if err != nil {
		return nil, err
	}
	return []*Artifact{
		{Name: JSONFile, Content: grouping},
		{Name: SQLFile, Content: []byte(RenderSQL(agg))},
		{Name: ReportFile, Content: []byte(RenderReport(agg))},
	}, nil
}
