package kwloc_test

import (
	"testing"

	"github.com/fwojciec/kwloc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCity_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		city kwloc.City
		ok   bool
	}{
		{"valid", kwloc.City{Name: "Tampa", State: "FL", Slug: "tampa"}, true},
		{"missing name", kwloc.City{State: "FL", Slug: "tampa"}, false},
		{"unknown state", kwloc.City{Name: "Tampa", State: "ZZ", Slug: "tampa"}, false},
		{"missing slug", kwloc.City{Name: "...", State: "FL"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.city.Validate()
			if tt.ok {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, kwloc.EINVALID, kwloc.ErrorCode(err))
		})
	}
}

func TestAggregate_Cities(t *testing.T) {
	t.Parallel()

	agg := kwloc.NewAggregate()
	agg.Add(&kwloc.KeywordRecord{Keyword: "a"}, kwloc.Location{City: "St. Mary's", State: "GA"})
	agg.Add(&kwloc.KeywordRecord{Keyword: "b"}, kwloc.Location{City: "St. Mary's", State: "GA"})
	agg.Add(&kwloc.KeywordRecord{Keyword: "c"}, kwloc.Location{City: "...", State: "GA"})

	cities := agg.Cities()

	require.Len(t, cities, 1)
	assert.Equal(t, &kwloc.City{Name: "St. Mary's", State: "GA", Slug: "st-mary-s"}, cities[0])
}
