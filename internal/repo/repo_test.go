package repo

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naag/gh-kanban/internal/github"
	"github.com/naag/gh-kanban/internal/runner"
)

func TestLocate(t *testing.T) {
	fake := &runner.Fake{Responses: map[string]runner.Response{
		"git rev-parse --show-toplevel": {Output: "/src/gh-kanban\n"},
		"git remote get-url origin":     {Output: "git@github.com:naag/gh-kanban.git\n"},
	}}

	r, err := Locate(context.Background(), fake)
	require.NoError(t, err)
	assert.Equal(t, "/src/gh-kanban", r.Root)
	assert.Equal(t, github.RepositoryInfo{Owner: "naag", Name: "gh-kanban"}, r.Remote)
}

func TestLocateErrors(t *testing.T) {
	tests := []struct {
		name      string
		responses map[string]runner.Response
		wantIs    error
		wantErr   string
	}{
		{
			name: "not a git repository",
			responses: map[string]runner.Response{
				"git rev-parse --show-toplevel": {Err: errors.New("exit status 128")},
			},
			wantIs: ErrNotGitRepository,
		},
		{
			name: "no origin remote",
			responses: map[string]runner.Response{
				"git rev-parse --show-toplevel": {Output: "/src/app"},
				"git remote get-url origin":     {Err: errors.New("error: No such remote 'origin'")},
			},
			wantIs: ErrNoOrigin,
		},
		{
			name: "empty origin URL",
			responses: map[string]runner.Response{
				"git rev-parse --show-toplevel": {Output: "/src/app"},
				"git remote get-url origin":     {Output: "  "},
			},
			wantIs: ErrNoOrigin,
		},
		{
			name: "unparseable origin URL",
			responses: map[string]runner.Response{
				"git rev-parse --show-toplevel": {Output: "/src/app"},
				"git remote get-url origin":     {Output: "localdir"},
			},
			wantErr: "cannot parse owner and repository",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Locate(context.Background(), &runner.Fake{Responses: tt.responses})
			require.Error(t, err)
			if tt.wantIs != nil {
				assert.ErrorIs(t, err, tt.wantIs)
			}
			if tt.wantErr != "" {
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestBranchOperations(t *testing.T) {
	fake := &runner.Fake{Responses: map[string]runner.Response{
		"git checkout main":             {},
		"git pull":                      {Output: "Already up to date."},
		"git checkout -b fix-login-bug": {},
	}}
	r := &Repository{Root: "/src/app", runner: fake}

	ctx := context.Background()
	require.NoError(t, r.Checkout(ctx, DefaultBranch))
	require.NoError(t, r.Pull(ctx))
	require.NoError(t, r.CreateBranch(ctx, "fix-login-bug"))

	assert.Equal(t, []string{"git checkout main", "git pull", "git checkout -b fix-login-bug"}, fake.Calls)
}
