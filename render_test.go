package kwloc_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/kwloc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jacksonvilleAggregate() *kwloc.Aggregate {
	agg := kwloc.NewAggregate()
	agg.Add(&kwloc.KeywordRecord{
		Keyword: "emergency vet in Jacksonville, FL",
		Volume:  strPtr("500"),
	}, kwloc.Location{City: "Jacksonville", State: "FL"})
	return agg
}

func TestRenderJSON(t *testing.T) {
	t.Parallel()

	t.Run("renders nested grouping with null optionals", func(t *testing.T) {
		t.Parallel()

		got, err := kwloc.RenderJSON(jacksonvilleAggregate())
		require.NoError(t, err)

		want := `{
  "FL": {
    "Jacksonville": [
      {
        "keyword": "emergency vet in Jacksonville, FL",
        "volume": "500",
        "kd": null,
        "intent": null,
        "cpc": null
      }
    ]
  }
}`
		assert.Equal(t, want, string(got))
	})

	t.Run("keeps first-seen key order", func(t *testing.T) {
		t.Parallel()

		agg := kwloc.NewAggregate()
		agg.Add(&kwloc.KeywordRecord{Keyword: "a"}, kwloc.Location{City: "Waco", State: "TX"})
		agg.Add(&kwloc.KeywordRecord{Keyword: "b"}, kwloc.Location{City: "Austin", State: "TX"})
		agg.Add(&kwloc.KeywordRecord{Keyword: "c"}, kwloc.Location{City: "Tampa", State: "FL"})

		got, err := agg.MarshalJSON()
		require.NoError(t, err)

		want := `{"TX":{"Waco":[{"keyword":"a","volume":null,"kd":null,"intent":null,"cpc":null}],` +
			`"Austin":[{"keyword":"b","volume":null,"kd":null,"intent":null,"cpc":null}]},` +
			`"FL":{"Tampa":[{"keyword":"c","volume":null,"kd":null,"intent":null,"cpc":null}]}}`
		assert.Equal(t, want, string(got))
	})

	t.Run("does not escape HTML characters", func(t *testing.T) {
		t.Parallel()

		agg := kwloc.NewAggregate()
		agg.Add(&kwloc.KeywordRecord{Keyword: "vet <24h> & more"}, kwloc.Location{City: "Tampa", State: "FL"})

		got, err := kwloc.RenderJSON(agg)
		require.NoError(t, err)

		assert.Contains(t, string(got), `"vet <24h> & more"`)
	})

	t.Run("renders empty object for empty aggregate", func(t *testing.T) {
		t.Parallel()

		got, err := kwloc.RenderJSON(kwloc.NewAggregate())
		require.NoError(t, err)

		assert.Equal(t, "{}", string(got))
	})
}

func TestRenderSQL(t *testing.T) {
	t.Parallel()

	t.Run("renders one row per distinct place", func(t *testing.T) {
		t.Parallel()

		agg := jacksonvilleAggregate()
		agg.Add(&kwloc.KeywordRecord{Keyword: "x"}, kwloc.Location{City: "Jacksonville", State: "FL"})
		agg.Add(&kwloc.KeywordRecord{Keyword: "y"}, kwloc.Location{City: "St. Mary's", State: "GA"})

		got := kwloc.RenderSQL(agg)

		want := "INSERT INTO cities (name, state, slug, clinic_count) VALUES\n" +
			"('Jacksonville', 'FL', 'jacksonville', 0),\n" +
			"('St. Mary''s', 'GA', 'st-mary-s', 0)\n" +
			"ON CONFLICT (slug) DO NOTHING;"
		assert.Equal(t, want, got)
	})

	t.Run("does not repeat a slug for case variants of one place", func(t *testing.T) {
		t.Parallel()

		agg := jacksonvilleAggregate()
		agg.Add(&kwloc.KeywordRecord{Keyword: "x"}, kwloc.Location{City: "JACKSONVILLE", State: "FL"})

		got := kwloc.RenderSQL(agg)

		assert.Equal(t, 1, strings.Count(got, "'jacksonville'"))
	})

	t.Run("renders a comment when nothing was extracted", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "-- no cities extracted\n", kwloc.RenderSQL(kwloc.NewAggregate()))
	})
}

func TestRenderReport(t *testing.T) {
	t.Parallel()

	t.Run("sorts states and cities", func(t *testing.T) {
		t.Parallel()

		agg := kwloc.NewAggregate()
		agg.Add(&kwloc.KeywordRecord{Keyword: "a"}, kwloc.Location{City: "Waco", State: "TX"})
		agg.Add(&kwloc.KeywordRecord{Keyword: "b"}, kwloc.Location{City: "Austin", State: "TX"})
		agg.Add(&kwloc.KeywordRecord{Keyword: "c"}, kwloc.Location{City: "Austin", State: "TX"})
		agg.Add(&kwloc.KeywordRecord{Keyword: "d"}, kwloc.Location{City: "Tampa", State: "FL"})

		got := kwloc.RenderReport(agg)

		want := `# Keyword Grouping Report

## FL
- Tampa (1 keywords)

## TX
- Austin (2 keywords)
- Waco (1 keywords)
`
		assert.Equal(t, want, got)
	})

	t.Run("renders only the title for empty aggregate", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "# Keyword Grouping Report\n", kwloc.RenderReport(kwloc.NewAggregate()))
	})
}

func TestRenderArtifacts(t *testing.T) {
	t.Parallel()

	artifacts, err := kwloc.RenderArtifacts(jacksonvilleAggregate())
	require.NoError(t, err)

	require.Len(t, artifacts, 3)
	assert.Equal(t, kwloc.JSONFile, artifacts[0].Name)
	assert.Equal(t, kwloc.SQLFile, artifacts[1].Name)
	assert.Equal(t, kwloc.ReportFile, artifacts[2].Name)
	assert.Contains(t, string(artifacts[1].Content), "('Jacksonville', 'FL', 'jacksonville', 0)")
	assert.Contains(t, string(artifacts[2].Content), "## FL\n- Jacksonville (1 keywords)")
}

func TestArtifact_Validate(t *testing.T) {
	t.Parallel()

	err := (&kwloc.Artifact{}).Validate()

	require.Error(t, err)
	assert.Equal(t, kwloc.EINVALID, kwloc.ErrorCode(err))
	assert.NoError(t, (&kwloc.Artifact{Name: kwloc.SQLFile}).Validate())
}
