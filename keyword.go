package kwloc

// Row is one parsed CSV record keyed by trimmed header name.
// Missing trailing fields map to the empty string.
type Row map[string]string

// Header variants recognized for each projected column, tried in order.
var (
	keywordHeaders = []string{"keyword", "Keyword", "KEYWORD"}
	volumeHeaders  = []string{"volume", "Volume", "Monthly Volume"}
	kdHeaders      = []string{"kd", "KD", "Keyword Difficulty"}
	intentHeaders  = []string{"intent", "Intent"}
	cpcHeaders     = []string{"cpc", "CPC"}
)

// KeywordRecord is the projection of an input row kept in the aggregate.
// Optional fields are nil when no recognized header carried a value.
type KeywordRecord struct {
	Keyword string  `json:"keyword"`
	Volume  *string `json:"volume"`
	KD      *string `json:"kd"`
	Intent  *string `json:"intent"`
	CPC     *string `json:"cpc"`
}

// NewKeywordRecord projects a row onto a KeywordRecord.
// Returns false if the row has no non-empty keyword column.
func NewKeywordRecord(row Row) (*KeywordRecord, bool) {
	keyword := lookup(row, keywordHeaders)
	if keyword == nil {
		return nil, false
	}
	return &KeywordRecord{
		Keyword: *keyword,
		Volume:  lookup(row, volumeHeaders),
		KD:      lookup(row, kdHeaders),
		Intent:  lookup(row, intentHeaders),
		CPC:     lookup(row, cpcHeaders),
	}, true
}

// lookup returns the first non-empty value among headers.
// An empty value counts as absent.
func lookup(row Row, headers []string) *string {
	for _, h := range headers {
		if v := row[h]; v != "" {
			return &v
		}
	}
	return nil
}
