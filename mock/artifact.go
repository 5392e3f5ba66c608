package mock

import (
	"context"

	"github.com/fwojciec/kwloc"
)

var _ kwloc.ArtifactStore = (*ArtifactStore)(nil)

// ArtifactStore is a mock implementation of kwloc.ArtifactStore.
type ArtifactStore struct {
	SaveFn   func(ctx context.Context, artifact *kwloc.Artifact) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *ArtifactStore) Save(ctx context.Context, artifact *kwloc.Artifact) error {
	return s.SaveFn(ctx, artifact)
}

func (s *ArtifactStore) Commit() error {
	return s.CommitFn()
}

func (s *ArtifactStore) Abort() error {
	return s.AbortFn()
}
