package slog

import (
	"context"
	"log/slog"

	"github.com/fwojciec/kwloc"
)

// Ensure LoggingArtifactStore implements kwloc.ArtifactStore.
var _ kwloc.ArtifactStore = (*LoggingArtifactStore)(nil)

// LoggingArtifactStore wraps an ArtifactStore with logging.
type LoggingArtifactStore struct {
	next   kwloc.ArtifactStore
	logger *slog.Logger
	saved  int
}

// NewLoggingArtifactStore creates a new LoggingArtifactStore.
func NewLoggingArtifactStore(next kwloc.ArtifactStore, logger *slog.Logger) *LoggingArtifactStore {
	return &LoggingArtifactStore{next: next, logger: logger}
}

// Save delegates to the wrapped store and logs the artifact size.
func (s *LoggingArtifactStore) Save(ctx context.Context, artifact *kwloc.Artifact) error {
	err := s.next.Save(ctx, artifact)
	if err == nil {
		s.saved++
	}
	s.logger.Debug("save artifact",
		"name", artifact.Name,
		"bytes", len(artifact.Content),
		"err", err,
	)
	return err
}

// Commit delegates to the wrapped store and logs the number of artifacts
// saved since the last Commit or Abort.
func (s *LoggingArtifactStore) Commit() error {
	err := s.next.Commit()
	s.logger.Info("commit artifacts", "count", s.saved, "err", err)
	s.saved = 0
	return err
}

// Abort delegates to the wrapped store.
func (s *LoggingArtifactStore) Abort() error {
	err := s.next.Abort()
	s.logger.Warn("abort artifacts", "count", s.saved, "err", err)
	s.saved = 0
	return err
}
