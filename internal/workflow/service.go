package workflow

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/naag/gh-kanban/internal/github"
	"github.com/naag/gh-kanban/internal/project"
	"github.com/naag/gh-kanban/internal/repo"
)

// NextTaskLimit is how many board items next-task looks at
const NextTaskLimit = 50

// ErrNoTodoTasks is returned by NextTask when no item is waiting in Todo
var ErrNoTodoTasks = errors.New("no tasks in " + github.StatusTodo)

// Board resolves the project board the workflow operates on
type Board interface {
	Load(ctx context.Context) (*github.Project, *project.Selection, error)
}

// Git performs the local branch operations of next-task
type Git interface {
	Checkout(ctx context.Context, branch string) error
	Pull(ctx context.Context) error
	CreateBranch(ctx context.Context, name string) error
}

// Repository identifies the GitHub repository tasks are filed in
type Repository struct {
	Owner string
	Name  string
}

// Service provides the kanban workflow commands
type Service struct {
	client github.Client
	issues github.IssueCreator
	board  Board
	git    Git
	repo   Repository
	out    io.Writer
}

// NewService creates a new workflow service
func NewService(client github.Client, issues github.IssueCreator, board Board, git Git, repository Repository, out io.Writer) *Service {
	return &Service{
		client: client,
		issues: issues,
		board:  board,
		git:    git,
		repo:   repository,
		out:    out,
	}
}

// NewIdea creates a draft item in Backlog
func (s *Service) NewIdea(ctx context.Context, title string) error {
	board, _, err := s.board.Load(ctx)
	if err != nil {
		return err
	}
	backlog, err := requireOption(board, github.StatusBacklog)
	if err != nil {
		return err
	}

	itemID, err := s.client.AddDraftIssue(ctx, board.ID, title)
	if err != nil {
		return err
	}
	if err := s.client.UpdateItemStatus(ctx, board.ID, itemID, board.Status.ID, backlog.ID); err != nil {
		return err
	}

	slog.Debug("created draft issue", "project", board.Number, "item", itemID)
	fmt.Fprintf(s.out, "Added idea %q to %s in %s\n", title, board.Title, github.StatusBacklog)
	return nil
}

// NewTask creates an issue and queues it on the board in Todo
func (s *Service) NewTask(ctx context.Context, title string) error {
	board, _, err := s.board.Load(ctx)
	if err != nil {
		return err
	}
	todo, err := requireOption(board, github.StatusTodo)
	if err != nil {
		return err
	}

	issue, err := s.issues.CreateIssue(ctx, s.repo.Owner, s.repo.Name, title)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Created issue #%d: %s\n", issue.Number, issue.URL)

	itemID, err := s.client.AddProjectItem(ctx, board.ID, issue.NodeID)
	if err != nil {
		return err
	}
	if err := s.client.UpdateItemStatus(ctx, board.ID, itemID, board.Status.ID, todo.ID); err != nil {
		return err
	}

	fmt.Fprintf(s.out, "Added #%d to %s in %s\n", issue.Number, board.Title, github.StatusTodo)
	return nil
}

// NextTask moves the first Todo item to In Progress and starts a branch for it.
// The board update is not rolled back if the git operations fail.
func (s *Service) NextTask(ctx context.Context) error {
	board, selection, err := s.board.Load(ctx)
	if err != nil {
		return err
	}
	if _, err := requireOption(board, github.StatusTodo); err != nil {
		return err
	}
	inProgress, err := requireOption(board, github.StatusInProgress)
	if err != nil {
		return err
	}

	items, err := s.client.GetProjectItems(ctx, selection.OwnerLogin, selection.Number, NextTaskLimit)
	if err != nil {
		return err
	}
	task, ok := firstTodo(items)
	if !ok {
		return ErrNoTodoTasks
	}

	branch, err := BranchName(task.Title)
	if err != nil {
		return err
	}

	if err := s.client.UpdateItemStatus(ctx, board.ID, task.ID, board.Status.ID, inProgress.ID); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Moved %q to %s\n", task.Title, github.StatusInProgress)

	if err := s.git.Checkout(ctx, repo.DefaultBranch); err != nil {
		return err
	}
	if err := s.git.Pull(ctx); err != nil {
		return err
	}
	if err := s.git.CreateBranch(ctx, branch); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Switched to new branch %s\n", branch)

	if task.Body != "" {
		fmt.Fprintf(s.out, "\n%s\n", task.Body)
	}
	return nil
}

func firstTodo(items []github.ProjectItem) (github.ProjectItem, bool) {
	for _, item := range items {
		if item.Status == github.StatusTodo && item.HasContent() {
			return item, true
		}
	}
	return github.ProjectItem{}, false
}

// requireOption fails unless the board's Status field has the named option
func requireOption(board *github.Project, name string) (github.StatusOption, error) {
	if board.Status == nil {
		return github.StatusOption{}, fmt.Errorf("project %q has no %s field", board.Title, github.StatusFieldName)
	}
	option, ok := board.Status.Option(name)
	if !ok {
		return github.StatusOption{}, fmt.Errorf("%s field of project %q has no %q option", github.StatusFieldName, board.Title, name)
	}
	return option, nil
}
