// Package fs provides file-based storage for rendered artifacts.
package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/kwloc"
)

// Ensure ArtifactStore implements kwloc.ArtifactStore at compile time.
var _ kwloc.ArtifactStore = (*ArtifactStore)(nil)

// ArtifactStore implements kwloc.ArtifactStore for a single directory.
// Artifacts are saved next to their final name with a .tmp suffix and
// renamed on Commit. A final file whose content already matches is left
// untouched.
type ArtifactStore struct {
	dir string

	pending   []string
	hashes    map[string]uint64
	unchanged []string
}

// NewArtifactStore creates a new ArtifactStore writing into dir.
// The directory is created on first Save.
func NewArtifactStore(dir string) *ArtifactStore {
	return &ArtifactStore{
		dir:    dir,
		hashes: make(map[string]uint64),
	}
}

// Path returns the final path of the named artifact.
func (s *ArtifactStore) Path(name string) string {
	return filepath.Join(s.dir, name)
}

func (s *ArtifactStore) tempPath(name string) string {
	return filepath.Join(s.dir, name+".tmp")
}

func (s *ArtifactStore) Save(ctx context.Context, artifact *kwloc.Artifact) error {
	if err := artifact.Validate(); err != nil {
		return err
	}
	if filepath.Base(artifact.Name) != artifact.Name {
		return kwloc.Errorf(kwloc.EINVALID, "artifact name %q must not contain a directory", artifact.Name)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}
	if err := os.WriteFile(s.tempPath(artifact.Name), artifact.Content, 0644); err != nil {
		return err
	}

	if _, ok := s.hashes[artifact.Name]; !ok {
		s.pending = append(s.pending, artifact.Name)
	}
	s.hashes[artifact.Name] = xxhash.Sum64(artifact.Content)
	return nil
}

func (s *ArtifactStore) Commit() error {
	for _, name := range s.pending {
		same, err := s.matches(name)
		if err != nil {
			return err
		}
		if same {
			if err := os.Remove(s.tempPath(name)); err != nil {
				return err
			}
			s.unchanged = append(s.unchanged, name)
			continue
		}
		if err := os.Rename(s.tempPath(name), s.Path(name)); err != nil {
			return err
		}
	}
	s.reset()
	return nil
}

func (s *ArtifactStore) Abort() error {
	var errs []error
	for _, name := range s.pending {
		if err := os.Remove(s.tempPath(name)); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	s.reset()
	return errors.Join(errs...)
}

// Unchanged returns the names of committed artifacts whose existing file
// already had identical content.
func (s *ArtifactStore) Unchanged() []string {
	return s.unchanged
}

// matches reports whether the final file exists with the pending content.
func (s *ArtifactStore) matches(name string) (bool, error) {
	b, err := os.ReadFile(s.Path(name))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return xxhash.Sum64(b) == s.hashes[name], nil
}

func (s *ArtifactStore) reset() {
	s.pending = nil
	s.hashes = make(map[string]uint64)
}
