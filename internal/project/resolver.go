package project

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/naag/gh-kanban/internal/config"
	"github.com/naag/gh-kanban/internal/github"
	"github.com/naag/gh-kanban/internal/github/projecturl"
)

// ErrNotConfigured is returned when no project has been selected for the repository
var ErrNotConfigured = errors.New("no project configured")

// Source describes where a project selection came from
type Source string

const (
	SourceOverride Source = "override"
	SourceConfig   Source = "config"
)

// Selection identifies the project board the workflow operates on
type Selection struct {
	OwnerLogin string
	Number     int
	Source     Source
}

// Resolver determines which project board to use for a repository
type Resolver struct {
	client github.Client
	store  *config.Store
	owner  string
	out    io.Writer
	getenv func(string) string
}

// NewResolver creates a resolver for projects owned by owner. Candidate lists
// are printed to out.
func NewResolver(client github.Client, store *config.Store, owner string, out io.Writer) *Resolver {
	return &Resolver{
		client: client,
		store:  store,
		owner:  owner,
		out:    out,
		getenv: os.Getenv,
	}
}

// Resolve returns the selected project. The override variable wins over the
// persisted selection; only when neither exists are the owner's projects listed.
func (r *Resolver) Resolve(ctx context.Context) (*Selection, error) {
	if value := strings.TrimSpace(r.getenv(config.ProjectEnv)); value != "" {
		selection, err := r.parseOverride(value)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", config.ProjectEnv, err)
		}
		slog.Debug("using project override", "owner", selection.OwnerLogin, "number", selection.Number)
		return selection, nil
	}

	value, ok, err := r.store.Get(config.ProjectNumberKey)
	if err != nil {
		return nil, err
	}
	if ok {
		number, err := parseNumber(value)
		if err != nil {
			return nil, fmt.Errorf("invalid %s in %s: %w", config.ProjectNumberKey, r.store.Path(), err)
		}
		slog.Debug("using configured project", "owner", r.owner, "number", number, "file", r.store.Path())
		return &Selection{OwnerLogin: r.owner, Number: number, Source: SourceConfig}, nil
	}

	projects, err := r.OpenProjects(ctx)
	if err != nil {
		return nil, err
	}
	r.printCandidates(projects)
	return nil, fmt.Errorf("%w: run 'gh-kanban use-project <number>', 'gh-kanban init-project <title>' or set %s", ErrNotConfigured, config.ProjectEnv)
}

// Load resolves the selected project and fetches the board with its Status field
func (r *Resolver) Load(ctx context.Context) (*github.Project, *Selection, error) {
	selection, err := r.Resolve(ctx)
	if err != nil {
		return nil, nil, err
	}

	project, err := r.client.GetProject(ctx, selection.OwnerLogin, selection.Number)
	if err != nil {
		return nil, nil, fmt.Errorf("project #%d not found: %w", selection.Number, err)
	}
	return project, selection, nil
}

// OpenProjects lists the projects of the repository owner that are not closed
func (r *Resolver) OpenProjects(ctx context.Context) ([]github.Project, error) {
	projects, err := r.client.ListOwnerProjects(ctx, r.owner)
	if err != nil {
		return nil, err
	}

	open := make([]github.Project, 0, len(projects))
	for _, p := range projects {
		if !p.Closed {
			open = append(open, p)
		}
	}
	return open, nil
}

// Use validates that project number exists and persists it for later invocations
func (r *Resolver) Use(ctx context.Context, number int) (*github.Project, error) {
	project, err := r.client.GetProject(ctx, r.owner, number)
	if err != nil {
		return nil, fmt.Errorf("project #%d not found: %w", number, err)
	}
	if err := r.store.Set(config.ProjectNumberKey, strconv.Itoa(project.Number)); err != nil {
		return nil, err
	}
	slog.Debug("persisted project selection", "number", project.Number, "file", r.store.Path())
	return project, nil
}

func (r *Resolver) parseOverride(value string) (*Selection, error) {
	if strings.HasPrefix(value, "https://") {
		info, err := projecturl.Parse(value)
		if err != nil {
			return nil, err
		}
		return &Selection{OwnerLogin: info.OwnerLogin, Number: info.ProjectNumber, Source: SourceOverride}, nil
	}

	number, err := parseNumber(value)
	if err != nil {
		return nil, err
	}
	return &Selection{OwnerLogin: r.owner, Number: number, Source: SourceOverride}, nil
}

func (r *Resolver) printCandidates(projects []github.Project) {
	if len(projects) == 0 {
		fmt.Fprintf(r.out, "No open projects found for %s.\n", r.owner)
		fmt.Fprintln(r.out, "Create one with 'gh-kanban init-project <title>' or on GitHub, then select it.")
		return
	}

	fmt.Fprintf(r.out, "Open projects of %s:\n", r.owner)
	for _, p := range projects {
		fmt.Fprintf(r.out, "  #%d\t%s\t%s\n", p.Number, p.Title, p.URL)
	}
}

func parseNumber(value string) (int, error) {
	number, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || number <= 0 {
		return 0, fmt.Errorf("expected a positive project number, got %q", value)
	}
	return number, nil
}
