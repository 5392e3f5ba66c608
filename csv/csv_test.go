package csv_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/kwloc"
	"github.com/fwojciec/kwloc/csv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []kwloc.Row
	}{
		{
			name: "header and one row",
			text: "keyword,volume\nvet in Reno NV,500\n",
			want: []kwloc.Row{{"keyword": "vet in Reno NV", "volume": "500"}},
		},
		{
			name: "byte-order mark before first header",
			text: "\ufeffKeyword,Volume\n\"emergency vet in Jacksonville, FL\",500\n",
			want: []kwloc.Row{{"Keyword": "emergency vet in Jacksonville, FL", "Volume": "500"}},
		},
		{
			name: "quoted field keeps comma",
			text: "keyword,volume\n\"emergency vet in Jacksonville, FL\",500",
			want: []kwloc.Row{{"keyword": "emergency vet in Jacksonville, FL", "volume": "500"}},
		},
		{
			name: "quoted field keeps newline",
			text: "keyword,note\nvet,\"line one\nline two\"\n",
			want: []kwloc.Row{{"keyword": "vet", "note": "line one\nline two"}},
		},
		{
			name: "doubled quote inside quotes is literal",
			text: "keyword\n\"the \"\"best\"\" vet\"\n",
			want: []kwloc.Row{{"keyword": `the "best" vet`}},
		},
		{
			name: "doubled quote outside quotes toggles twice",
			text: "keyword\nab\"\"cd\n",
			want: []kwloc.Row{{"keyword": "abcd"}},
		},
		{
			name: "CRLF line endings",
			text: "keyword,volume\r\nvet in Reno NV,500\r\nvet in Boise ID,20\r\n",
			want: []kwloc.Row{
				{"keyword": "vet in Reno NV", "volume": "500"},
				{"keyword": "vet in Boise ID", "volume": "20"},
			},
		},
		{
			name: "bare carriage return separates records",
			text: "keyword\rfirst\rsecond",
			want: []kwloc.Row{{"keyword": "first"}, {"keyword": "second"}},
		},
		{
			name: "blank lines are skipped",
			text: "keyword\n\n\nfirst\n\n",
			want: []kwloc.Row{{"keyword": "first"}},
		},
		{
			name: "short record defaults to empty string",
			text: "keyword,volume,cpc\nvet\n",
			want: []kwloc.Row{{"keyword": "vet", "volume": "", "cpc": ""}},
		},
		{
			name: "extra fields are ignored",
			text: "keyword\nvet,extra,more\n",
			want: []kwloc.Row{{"keyword": "vet"}},
		},
		{
			name: "headers are trimmed but values are not",
			text: " keyword , volume \n vet , 5 \n",
			want: []kwloc.Row{{"keyword": " vet ", "volume": " 5 "}},
		},
		{
			name: "trailing comma produces an empty field",
			text: "keyword,volume\nvet,\n",
			want: []kwloc.Row{{"keyword": "vet", "volume": ""}},
		},
		{
			name: "unterminated quote swallows the rest",
			text: "keyword,volume\n\"vet,500\nnext,1",
			want: []kwloc.Row{{"keyword": "vet,500\nnext,1", "volume": ""}},
		},
		{
			name: "header only",
			text: "keyword,volume\n",
			want: []kwloc.Row{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, csv.Parse(tt.text))
		})
	}
}

func TestParse_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, csv.Parse(""))
	assert.Empty(t, csv.Parse("\n\r\n"))
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	t.Run("parses file contents", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "keywords.csv")
		require.NoError(t, os.WriteFile(path, []byte("Keyword,Volume\nvet in Reno NV,500\n"), 0644))

		rows, err := csv.ReadFile(path)

		require.NoError(t, err)
		assert.Equal(t, []kwloc.Row{{"Keyword": "vet in Reno NV", "Volume": "500"}}, rows)
	})

	t.Run("returns error for missing file", func(t *testing.T) {
		t.Parallel()

		_, err := csv.ReadFile(filepath.Join(t.TempDir(), "missing.csv"))

		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
