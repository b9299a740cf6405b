package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

// Runner executes external commands such as git and gh
type Runner interface {
	// Output runs the command in dir and returns its trimmed standard output
	Output(ctx context.Context, dir string, name string, args ...string) (string, error)

	// Combined runs the command in dir and returns its stdout and stderr interleaved
	Combined(ctx context.Context, dir string, name string, args ...string) (string, error)

	// Attach runs the command in dir with the terminal's stdin, stdout and stderr
	Attach(ctx context.Context, dir string, name string, args ...string) error
}

// Exec implements Runner using os/exec
type Exec struct{}

// Output implements the Runner interface
func (Exec) Output(ctx context.Context, dir string, name string, args ...string) (string, error) {
	slog.Debug("running command", "command", name, "args", args, "dir", dir)

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", commandError(name, args, stderr.String(), err)
	}
	return strings.TrimSpace(stdout.String()), nil
}

// Combined implements the Runner interface
func (Exec) Combined(ctx context.Context, dir string, name string, args ...string) (string, error) {
	slog.Debug("running command", "command", name, "args", args, "dir", dir)

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", commandError(name, args, string(out), err)
	}
	return string(out), nil
}

// Attach implements the Runner interface
func (Exec) Attach(ctx context.Context, dir string, name string, args ...string) error {
	slog.Debug("running interactive command", "command", name, "args", args, "dir", dir)

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return commandError(name, args, "", err)
	}
	return nil
}

// commandError keeps exec.ErrNotFound reachable through errors.Is
func commandError(name string, args []string, stderr string, err error) error {
	if errors.Is(err, exec.ErrNotFound) {
		return fmt.Errorf("%s: %w", name, err)
	}
	line := strings.TrimSpace(name + " " + strings.Join(args, " "))
	if msg := strings.TrimSpace(stderr); msg != "" {
		return fmt.Errorf("%s failed: %s: %w", line, msg, err)
	}
	return fmt.Errorf("%s failed: %w", line, err)
}
