package source

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/openkraft/kraftreview/internal/domain"
)

// Loader implements domain.SourceLoader over the filesystem, stdin and git.
type Loader struct {
	stdin io.Reader
	git   domain.GitInfo
}

// New creates a Loader. git may be nil when revisions are not needed.
func New(stdin io.Reader, git domain.GitInfo) *Loader {
	return &Loader{stdin: stdin, git: git}
}

func (l *Loader) Load(ref domain.SourceRef) (string, error) {
	switch {
	case ref.Revision != "":
		return l.loadRevision(ref)
	case ref.IsStdin():
		if l.stdin == nil {
			return "", errors.New("no stdin available")
		}
		data, err := io.ReadAll(l.stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	default:
		data, err := os.ReadFile(ref.Path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return "", fmt.Errorf("%s: %w", ref.Path, domain.ErrSourceNotFound)
			}
			return "", fmt.Errorf("reading %s: %w", ref.Path, err)
		}
		return string(data), nil
	}
}

func (l *Loader) loadRevision(ref domain.SourceRef) (string, error) {
	if l.git == nil {
		return "", errors.New("git revisions are not supported by this loader")
	}
	if ref.IsStdin() {
		return "", errors.New("a file path is required with a revision")
	}
	repo := ref.RepoPath
	if repo == "" {
		repo = "."
	}
	return l.git.FileAtRevision(repo, ref.Revision, ref.Path)
}
