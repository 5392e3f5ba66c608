package mock

import "github.com/fwojciec/kwloc"

var _ kwloc.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of kwloc.Extractor.
type Extractor struct {
	ExtractFn func(keyword string) (kwloc.Location, bool)
}

func (e *Extractor) Extract(keyword string) (kwloc.Location, bool) {
	return e.ExtractFn(keyword)
}
