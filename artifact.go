package kwloc

import "context"

// Artifact is a rendered output file.
type Artifact struct {
	Name    string
	Content []byte
}

// Validate returns an error if the artifact contains invalid fields.
func (a *Artifact) Validate() error {
	if a.Name == "" {
		return Errorf(EINVALID, "artifact name required")
	}
	return nil
}

// ArtifactStore persists artifacts with atomic semantics.
// Save writes to a temporary location; Commit makes changes permanent;
// Abort discards pending changes.
type ArtifactStore interface {
	Save(ctx context.Context, artifact *Artifact) error
	Commit() error
	Abort() error
}
