package kwloc_test

import (
	"testing"

	"github.com/fwojciec/kwloc"
	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"Jacksonville", "jacksonville"},
		{"St. Mary's", "st-mary-s"},
		{"Fort  Worth", "fort-worth"},
		{"--Coeur d'Alene--", "coeur-d-alene"},
		{"Winston-Salem", "winston-salem"},
		{"29 Palms", "29-palms"},
		{"...", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, kwloc.Slugify(tt.in))
		})
	}
}

func TestPlace_Slug(t *testing.T) {
	t.Parallel()

	p := kwloc.Place{City: "St. Mary's", State: "GA"}

	assert.Equal(t, "st-mary-s", p.Slug())
}
