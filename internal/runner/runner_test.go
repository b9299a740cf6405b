package runner

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecMissingBinary(t *testing.T) {
	_, err := Exec{}.Output(context.Background(), "", "gh-kanban-binary-that-does-not-exist")
	require.Error(t, err)
	assert.True(t, errors.Is(err, exec.ErrNotFound))
}

func TestCommandError(t *testing.T) {
	err := commandError("git", []string{"pull"}, "  fatal: no upstream\n", errors.New("exit status 1"))
	assert.EqualError(t, err, "git pull failed: fatal: no upstream: exit status 1")

	err = commandError("git", []string{"pull"}, "", errors.New("exit status 1"))
	assert.EqualError(t, err, "git pull failed: exit status 1")
}

func TestFake(t *testing.T) {
	fake := &Fake{Responses: map[string]Response{
		"git rev-parse --show-toplevel": {Output: "/src/app\n"},
	}}

	out, err := fake.Output(context.Background(), "", "git", "rev-parse", "--show-toplevel")
	require.NoError(t, err)
	assert.Equal(t, "/src/app", out)
	assert.True(t, fake.Called("git rev-parse --show-toplevel"))

	_, err = fake.Output(context.Background(), "", "git", "status")
	assert.ErrorContains(t, err, "unexpected command: git status")
	assert.Equal(t, []string{"git rev-parse --show-toplevel", "git status"}, fake.Calls)
}
