package auth

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naag/gh-kanban/internal/runner"
)

const statusWithProject = `github.com
  ✓ Logged in to github.com account naag (keyring)
  - Active account: true
  - Git operations protocol: ssh
  - Token: gho_************************************
  - Token scopes: 'gist', 'project', 'read:org', 'repo'
`

const statusWithoutProject = `github.com
  ✓ Logged in to github.com account naag (keyring)
  - Token scopes: 'gist', 'read:org', 'repo'
`

func TestParseScopes(t *testing.T) {
	scopes, err := parseScopes(statusWithProject)
	require.NoError(t, err)
	assert.Equal(t, []string{"gist", "project", "read:org", "repo"}, scopes)

	scopes, err = parseScopes("  - Token scopes: none")
	require.NoError(t, err)
	assert.Empty(t, scopes)

	_, err = parseScopes("github.com\n  X Failed to log in\n")
	assert.ErrorIs(t, err, ErrNoScopesLine)
}

func TestEnsureScopePresent(t *testing.T) {
	fake := &runner.Fake{Responses: map[string]runner.Response{
		"gh auth status": {Output: statusWithProject},
	}}

	err := NewSession(fake, false).EnsureScope(context.Background(), ProjectScope)
	require.NoError(t, err)
	assert.Equal(t, []string{"gh auth status"}, fake.Calls)
}

func TestEnsureScopeRefreshes(t *testing.T) {
	fake := &runner.Fake{Responses: map[string]runner.Response{
		"gh auth status":                   {Output: statusWithoutProject},
		"gh auth refresh --scopes project": {},
	}}

	err := NewSession(fake, false).EnsureScope(context.Background(), ProjectScope)
	require.NoError(t, err)
	assert.True(t, fake.Called("gh auth refresh --scopes project"))
}

func TestEnsureScopeGHMissing(t *testing.T) {
	fake := &runner.Fake{Responses: map[string]runner.Response{
		"gh auth status": {Err: fmt.Errorf("gh: %w", exec.ErrNotFound)},
	}}

	err := NewSession(fake, false).EnsureScope(context.Background(), ProjectScope)
	assert.ErrorIs(t, err, ErrGHNotFound)
}

func TestEnsureScopeUnparseable(t *testing.T) {
	fake := &runner.Fake{Responses: map[string]runner.Response{
		"gh auth status": {Output: "something unexpected"},
	}}

	err := NewSession(fake, false).EnsureScope(context.Background(), ProjectScope)
	assert.ErrorIs(t, err, ErrNoScopesLine)
}

func TestTokenIsCached(t *testing.T) {
	fake := &runner.Fake{Responses: map[string]runner.Response{
		"gh auth token": {Output: "gho_abc\n"},
	}}
	session := NewSession(fake, false)

	for i := 0; i < 2; i++ {
		token, err := session.Token(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "gho_abc", token)
	}
	assert.Equal(t, []string{"gh auth token"}, fake.Calls)
}

func TestTokenErrors(t *testing.T) {
	fake := &runner.Fake{Responses: map[string]runner.Response{
		"gh auth token": {Output: "  "},
	}}
	_, err := NewSession(fake, false).Token(context.Background())
	assert.ErrorIs(t, err, ErrEmptyToken)

	fake = &runner.Fake{Responses: map[string]runner.Response{
		"gh auth token": {Err: errors.New("no oauth token found")},
	}}
	_, err = NewSession(fake, false).Token(context.Background())
	assert.ErrorContains(t, err, "gh auth token: no oauth token found")
}

func TestClients(t *testing.T) {
	fake := &runner.Fake{Responses: map[string]runner.Response{
		"gh auth token": {Output: "gho_abc"},
	}}

	clients, err := NewSession(fake, true).Clients(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, clients.GraphQL)
	assert.NotNil(t, clients.REST)
}
