package gitsource

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

var (
	// ErrNotRepository is returned when no work tree contains the path.
	ErrNotRepository = errors.New("not inside a git repository")

	// ErrFileNotInRevision is returned when the file does not exist at the
	// requested revision.
	ErrFileNotInRevision = errors.New("file does not exist at revision")

	// ErrOutsideRepository is returned for a file outside the work tree.
	ErrOutsideRepository = errors.New("file is outside the repository")
)

// Repository is a read-only view of a local Git repository.
type Repository struct {
	root string
	repo *gogit.Repository
}

// Open finds the repository containing path, walking up to the nearest
// directory holding .git.
func Open(path string) (*Repository, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	if info, err := os.Stat(abs); err != nil || !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	repo, err := gogit.PlainOpenWithOptions(abs, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%w: %s", ErrNotRepository, path)
		}
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree: %w", err)
	}

	root, err := filepath.EvalSymlinks(wt.Filesystem.Root())
	if err != nil {
		return nil, fmt.Errorf("failed to resolve repository root: %w", err)
	}

	return &Repository{root: root, repo: repo}, nil
}

// Root returns the work tree directory.
func (r *Repository) Root() string {
	return r.root
}

// RelPath converts a filesystem path to the slash-separated path Git uses
// inside the repository.
func (r *Repository) RelPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	// The file may not exist in the work tree; resolve its directory.
	if dir, err := filepath.EvalSymlinks(filepath.Dir(abs)); err == nil {
		abs = filepath.Join(dir, filepath.Base(abs))
	}

	rel, err := filepath.Rel(r.root, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrOutsideRepository, path)
	}
	return filepath.ToSlash(rel), nil
}

// ReadFile returns the contents of path as committed at rev.
func (r *Repository) ReadFile(rev, path string) ([]byte, *CommitInfo, error) {
	rel, err := r.RelPath(path)
	if err != nil {
		return nil, nil, err
	}

	c, err := r.commit(rev)
	if err != nil {
		return nil, nil, err
	}

	data, err := fileContents(c, rel)
	if err != nil {
		return nil, nil, fmt.Errorf("%s at %s: %w", rel, rev, err)
	}
	return data, commitInfo(c), nil
}

// FileHistory returns up to limit commits reachable from HEAD that changed
// path, newest first. A limit of zero or less means no limit.
func (r *Repository) FileHistory(path string, limit int) ([]*CommitInfo, error) {
	rel, err := r.RelPath(path)
	if err != nil {
		return nil, err
	}

	head, err := r.repo.Head()
	if err != nil {
		return nil, fmt.Errorf("failed to get HEAD: %w", err)
	}

	iter, err := r.repo.Log(&gogit.LogOptions{
		From:     head.Hash(),
		FileName: &rel,
		Order:    gogit.LogOrderCommitterTime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get commit log: %w", err)
	}
	defer iter.Close()

	var history []*CommitInfo
	err = iter.ForEach(func(c *object.Commit) error {
		if limit > 0 && len(history) >= limit {
			return storer.ErrStop
		}
		history = append(history, commitInfo(c))
		return nil
	})
	if err != nil && !errors.Is(err, storer.ErrStop) {
		return nil, fmt.Errorf("failed to iterate commits: %w", err)
	}
	return history, nil
}

func (r *Repository) commit(rev string) (*object.Commit, error) {
	if rev == "" {
		rev = "HEAD"
	}
	hash, err := r.repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve revision %q: %w", rev, err)
	}
	c, err := r.repo.CommitObject(*hash)
	if err != nil {
		return nil, fmt.Errorf("failed to get commit %s: %w", hash, err)
	}
	return c, nil
}

func fileContents(c *object.Commit, rel string) ([]byte, error) {
	f, err := c.File(rel)
	if err != nil {
		if errors.Is(err, object.ErrFileNotFound) {
			return nil, ErrFileNotInRevision
		}
		return nil, err
	}
	contents, err := f.Contents()
	if err != nil {
		return nil, fmt.Errorf("failed to read blob: %w", err)
	}
	return []byte(contents), nil
}
