package project

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/naag/gh-kanban/internal/config"
	"github.com/naag/gh-kanban/internal/github"
)

// BoardColumns are the Status options a board needs for every workflow command
var BoardColumns = []string{
	github.StatusTodo,
	github.StatusInProgress,
	github.StatusDone,
	github.StatusBacklog,
}

// Create provisions a new board for the repository, makes sure it has a Status
// field and persists it as the selected project. Status options that could not
// be provisioned are returned so the caller can point them out.
func (r *Resolver) Create(ctx context.Context, repoName string, title string) (*github.Project, []string, error) {
	ids, err := r.client.GetRepositoryIDs(ctx, r.owner, repoName)
	if err != nil {
		return nil, nil, err
	}

	created, err := r.client.CreateProject(ctx, ids.OwnerID, ids.RepositoryID, title)
	if err != nil {
		return nil, nil, err
	}
	slog.Info("created project", "number", created.Number, "title", created.Title)

	project, err := r.client.GetProject(ctx, r.owner, created.Number)
	if err != nil {
		return nil, nil, fmt.Errorf("project #%d not found after creation: %w", created.Number, err)
	}

	if project.Status == nil {
		field, err := r.client.CreateStatusField(ctx, project.ID, BoardColumns)
		if err != nil {
			return nil, nil, err
		}
		project.Status = field
	}

	if err := r.store.Set(config.ProjectNumberKey, strconv.Itoa(project.Number)); err != nil {
		return nil, nil, err
	}

	var missing []string
	for _, column := range BoardColumns {
		if _, ok := project.Status.Option(column); !ok {
			missing = append(missing, column)
		}
	}
	return project, missing, nil
}
