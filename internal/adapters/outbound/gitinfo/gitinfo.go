package gitinfo

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/openkraft/kraftreview/internal/domain"
)

// GitInfoAdapter implements domain.GitInfo using go-git.
type GitInfoAdapter struct{}

func New() *GitInfoAdapter {
	return &GitInfoAdapter{}
}

func (g *GitInfoAdapter) IsGitRepo(repoPath string) bool {
	_, err := open(repoPath)
	return err == nil
}

func (g *GitInfoAdapter) CommitHash(repoPath string) (string, error) {
	repo, err := open(repoPath)
	if err != nil {
		return "", fmt.Errorf("opening git repo: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD: %w", err)
	}

	return head.Hash().String(), nil
}

// FileAtRevision returns the contents of file as of revision (any form
// go-git can resolve: HEAD, HEAD~2, a branch, a tag or a hash).
// file is relative to the repository root.
func (g *GitInfoAdapter) FileAtRevision(repoPath, revision, file string) (string, error) {
	repo, err := open(repoPath)
	if err != nil {
		return "", fmt.Errorf("opening git repo: %w", err)
	}

	hash, err := repo.ResolveRevision(plumbing.Revision(revision))
	if err != nil {
		return "", fmt.Errorf("resolving %q: %w", revision, err)
	}

	commit, err := repo.CommitObject(*hash)
	if err != nil {
		return "", fmt.Errorf("loading commit %s: %w", hash, err)
	}

	f, err := commit.File(filepath.ToSlash(file))
	if err != nil {
		if errors.Is(err, object.ErrFileNotFound) {
			return "", fmt.Errorf("%s at %s: %w", file, revision, domain.ErrSourceNotFound)
		}
		return "", fmt.Errorf("reading %s at %s: %w", file, revision, err)
	}

	return f.Contents()
}

func open(repoPath string) (*git.Repository, error) {
	return git.PlainOpenWithOptions(repoPath, &git.PlainOpenOptions{DetectDotGit: true})
}
