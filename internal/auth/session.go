package auth

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/naag/gh-kanban/internal/github"
	"github.com/naag/gh-kanban/internal/runner"
)

// ProjectScope is the token scope required to read and write project boards
const ProjectScope = "project"

var (
	// ErrGHNotFound is returned when the gh binary is not installed
	ErrGHNotFound = errors.New("gh CLI not found: install it from https://cli.github.com")
	// ErrNoScopesLine is returned when gh auth status does not report token scopes
	ErrNoScopesLine = errors.New("could not find token scopes in gh auth status output")
	// ErrEmptyToken is returned when gh auth token prints nothing
	ErrEmptyToken = errors.New("gh auth token returned an empty token, run 'gh auth login'")
)

// Session bridges to an authenticated gh CLI session for one invocation.
// The token is fetched at most once and never persisted.
type Session struct {
	runner  runner.Runner
	verbose bool

	token string
}

// Clients are the authenticated API clients derived from a session token
type Clients struct {
	GraphQL *github.GraphQLClient
	REST    *github.RESTClient
}

// NewSession creates a session using r to run gh. With verbose set, the
// derived clients dump all HTTP traffic.
func NewSession(r runner.Runner, verbose bool) *Session {
	return &Session{runner: r, verbose: verbose}
}

// EnsureScope verifies the gh token carries scope and runs an interactive
// gh auth refresh to grant it when it does not
func (s *Session) EnsureScope(ctx context.Context, scope string) error {
	out, err := s.runner.Combined(ctx, "", "gh", "auth", "status")
	if err != nil {
		return ghError("gh auth status", err)
	}

	scopes, err := parseScopes(out)
	if err != nil {
		return err
	}
	for _, have := range scopes {
		if have == scope {
			return nil
		}
	}

	slog.Info("token is missing a required scope, refreshing", "scope", scope, "scopes", scopes)
	if err := s.runner.Attach(ctx, "", "gh", "auth", "refresh", "--scopes", scope); err != nil {
		return ghError("gh auth refresh", err)
	}
	return nil
}

// Token returns the gh session token, fetching it on first use
func (s *Session) Token(ctx context.Context) (string, error) {
	if s.token != "" {
		return s.token, nil
	}

	out, err := s.runner.Output(ctx, "", "gh", "auth", "token")
	if err != nil {
		return "", ghError("gh auth token", err)
	}
	token := strings.TrimSpace(out)
	if token == "" {
		return "", ErrEmptyToken
	}

	s.token = token
	return token, nil
}

// Clients builds the GraphQL and REST clients sharing one authenticated http client
func (s *Session) Clients(ctx context.Context) (*Clients, error) {
	token, err := s.Token(ctx)
	if err != nil {
		return nil, err
	}

	httpClient := github.NewHTTPClient(ctx, token, s.verbose)
	return &Clients{
		GraphQL: github.NewGraphQLClient(httpClient),
		REST:    github.NewRESTClient(httpClient),
	}, nil
}

// parseScopes extracts the scope list from a line such as
// "  - Token scopes: 'gist', 'project', 'repo'"
func parseScopes(status string) ([]string, error) {
	scanner := bufio.NewScanner(strings.NewReader(status))
	for scanner.Scan() {
		line := scanner.Text()
		_, list, ok := strings.Cut(line, "Token scopes:")
		if !ok {
			continue
		}

		var scopes []string
		for _, scope := range strings.Split(list, ",") {
			scope = strings.Trim(strings.TrimSpace(scope), `'"`)
			if scope != "" && scope != "none" {
				scopes = append(scopes, scope)
			}
		}
		return scopes, nil
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read gh auth status output: %w", err)
	}
	return nil, ErrNoScopesLine
}

func ghError(command string, err error) error {
	if errors.Is(err, exec.ErrNotFound) {
		return ErrGHNotFound
	}
	return fmt.Errorf("%s: %w", command, err)
}
