package repo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/naag/gh-kanban/internal/github"
	"github.com/naag/gh-kanban/internal/runner"
)

// DefaultBranch is the branch new task branches are cut from
const DefaultBranch = "main"

var (
	// ErrNotGitRepository is returned when the working directory is not inside a git work tree
	ErrNotGitRepository = errors.New("not a git repository (or any of the parent directories)")
	// ErrNoOrigin is returned when the repository has no usable origin remote
	ErrNoOrigin = errors.New("no origin remote configured")
)

// Repository is a local git work tree backed by a GitHub repository
type Repository struct {
	Root   string
	Remote github.RepositoryInfo

	runner runner.Runner
}

// Locate finds the work tree containing the current directory and parses its origin remote
func Locate(ctx context.Context, r runner.Runner) (*Repository, error) {
	root, err := r.Output(ctx, "", "git", "rev-parse", "--show-toplevel")
	if err != nil || root == "" {
		return nil, ErrNotGitRepository
	}

	remoteURL, err := r.Output(ctx, root, "git", "remote", "get-url", "origin")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoOrigin, err)
	}
	if remoteURL == "" {
		return nil, fmt.Errorf("%w: origin URL is empty", ErrNoOrigin)
	}

	info, err := github.ParseRemoteURL(remoteURL)
	if err != nil {
		return nil, err
	}

	slog.Debug("located repository", "root", root, "remote", info.String())
	return &Repository{Root: root, Remote: *info, runner: r}, nil
}

// Checkout switches the work tree to an existing branch
func (r *Repository) Checkout(ctx context.Context, branch string) error {
	return r.git(ctx, "checkout", branch)
}

// Pull fetches and merges the upstream of the current branch
func (r *Repository) Pull(ctx context.Context) error {
	return r.git(ctx, "pull")
}

// CreateBranch creates a branch at HEAD and switches to it
func (r *Repository) CreateBranch(ctx context.Context, name string) error {
	return r.git(ctx, "checkout", "-b", name)
}

func (r *Repository) git(ctx context.Context, args ...string) error {
	out, err := r.runner.Output(ctx, r.Root, "git", args...)
	if err != nil {
		return err
	}
	if out != "" {
		slog.Debug("git output", "args", args, "output", out)
	}
	return nil
}
