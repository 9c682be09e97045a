package domain

import (
	"errors"
	"time"
)

// ErrSourceNotFound is returned by a SourceLoader when the referenced text
// does not exist.
var ErrSourceNotFound = errors.New("source not found")

// SourceRef points at a block of text to review: a file path, "-" for
// stdin, or a file inside a git repository at a revision.
type SourceRef struct {
	Path     string `json:"path"`
	Revision string `json:"revision,omitempty"`
	RepoPath string `json:"repo_path,omitempty"`
}

// IsStdin reports whether the ref reads from standard input.
func (r SourceRef) IsStdin() bool { return r.Path == "" || r.Path == "-" }

// SourceLoader loads the text referenced by a SourceRef.
type SourceLoader interface {
	Load(ref SourceRef) (string, error)
}

// ConfigLoader loads service configuration from a file path.
type ConfigLoader interface {
	Load(path string) (Config, error)
}

// ReviewRecorder observes completed reviews, e.g. for metrics.
type ReviewRecorder interface {
	RecordReview(report Report, elapsed time.Duration)
}

// GitInfo reads repository metadata.
type GitInfo interface {
	IsGitRepo(path string) bool
	CommitHash(path string) (string, error)
	FileAtRevision(repoPath, revision, file string) (string, error)
}
