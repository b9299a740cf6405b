package github

import (
	"context"
)

// Client defines the interface for interacting with GitHub project boards
type Client interface {
	// ListOwnerProjects retrieves all projects owned by a user or organization
	ListOwnerProjects(ctx context.Context, ownerLogin string) ([]Project, error)

	// GetProject retrieves a project and its Status field by owner and number
	GetProject(ctx context.Context, ownerLogin string, projectNumber int) (*Project, error)

	// GetProjectItems retrieves up to limit items ordered by board position
	GetProjectItems(ctx context.Context, ownerLogin string, projectNumber int, limit int) ([]ProjectItem, error)

	// AddDraftIssue creates a draft issue on the board and returns the item ID
	AddDraftIssue(ctx context.Context, projectID string, title string) (string, error)

	// AddProjectItem adds an issue or pull request to the board and returns the item ID
	AddProjectItem(ctx context.Context, projectID string, contentID string) (string, error)

	// UpdateItemStatus sets the Status option of an item
	UpdateItemStatus(ctx context.Context, projectID string, itemID string, fieldID string, optionID string) error

	// GetRepositoryIDs retrieves the node IDs of a repository and its owner
	GetRepositoryIDs(ctx context.Context, owner string, name string) (*RepositoryIDs, error)

	// CreateProject creates a project owned by ownerID and linked to repositoryID
	CreateProject(ctx context.Context, ownerID string, repositoryID string, title string) (*Project, error)

	// CreateStatusField creates a single-select Status field with the given options
	CreateStatusField(ctx context.Context, projectID string, options []string) (*StatusField, error)
}

// IssueCreator defines the interface for creating repository issues
type IssueCreator interface {
	// CreateIssue opens an issue with the given title
	CreateIssue(ctx context.Context, owner string, repo string, title string) (*Issue, error)
}
