package github

import (
	"context"
)

// MockClient implements the Client and IssueCreator interfaces for testing
type MockClient struct {
	ListOwnerProjectsFunc func(ctx context.Context, ownerLogin string) ([]Project, error)
	GetProjectFunc        func(ctx context.Context, ownerLogin string, projectNumber int) (*Project, error)
	GetProjectItemsFunc   func(ctx context.Context, ownerLogin string, projectNumber int, limit int) ([]ProjectItem, error)
	AddDraftIssueFunc     func(ctx context.Context, projectID string, title string) (string, error)
	AddProjectItemFunc    func(ctx context.Context, projectID string, contentID string) (string, error)
	UpdateItemStatusFunc  func(ctx context.Context, projectID string, itemID string, fieldID string, optionID string) error
	GetRepositoryIDsFunc  func(ctx context.Context, owner string, name string) (*RepositoryIDs, error)
	CreateProjectFunc     func(ctx context.Context, ownerID string, repositoryID string, title string) (*Project, error)
	CreateStatusFieldFunc func(ctx context.Context, projectID string, options []string) (*StatusField, error)
	CreateIssueFunc       func(ctx context.Context, owner string, repo string, title string) (*Issue, error)
}

// ListOwnerProjects implements the Client interface
func (c *MockClient) ListOwnerProjects(ctx context.Context, ownerLogin string) ([]Project, error) {
	if c.ListOwnerProjectsFunc != nil {
		return c.ListOwnerProjectsFunc(ctx, ownerLogin)
	}
	return nil, nil
}

// GetProject implements the Client interface
func (c *MockClient) GetProject(ctx context.Context, ownerLogin string, projectNumber int) (*Project, error) {
	if c.GetProjectFunc != nil {
		return c.GetProjectFunc(ctx, ownerLogin, projectNumber)
	}
	return nil, nil
}

// GetProjectItems implements the Client interface
func (c *MockClient) GetProjectItems(ctx context.Context, ownerLogin string, projectNumber int, limit int) ([]ProjectItem, error) {
	if c.GetProjectItemsFunc != nil {
		return c.GetProjectItemsFunc(ctx, ownerLogin, projectNumber, limit)
	}
	return nil, nil
}

// AddDraftIssue implements the Client interface
func (c *MockClient) AddDraftIssue(ctx context.Context, projectID string, title string) (string, error) {
	if c.AddDraftIssueFunc != nil {
		return c.AddDraftIssueFunc(ctx, projectID, title)
	}
	return "", nil
}

// AddProjectItem implements the Client interface
func (c *MockClient) AddProjectItem(ctx context.Context, projectID string, contentID string) (string, error) {
	if c.AddProjectItemFunc != nil {
		return c.AddProjectItemFunc(ctx, projectID, contentID)
	}
	return "", nil
}

// UpdateItemStatus implements the Client interface
func (c *MockClient) UpdateItemStatus(ctx context.Context, projectID string, itemID string, fieldID string, optionID string) error {
	if c.UpdateItemStatusFunc != nil {
		return c.UpdateItemStatusFunc(ctx, projectID, itemID, fieldID, optionID)
	}
	return nil
}

// GetRepositoryIDs implements the Client interface
func (c *MockClient) GetRepositoryIDs(ctx context.Context, owner string, name string) (*RepositoryIDs, error) {
	if c.GetRepositoryIDsFunc != nil {
		return c.GetRepositoryIDsFunc(ctx, owner, name)
	}
	return &RepositoryIDs{}, nil
}

// CreateProject implements the Client interface
func (c *MockClient) CreateProject(ctx context.Context, ownerID string, repositoryID string, title string) (*Project, error) {
	if c.CreateProjectFunc != nil {
		return c.CreateProjectFunc(ctx, ownerID, repositoryID, title)
	}
	return &Project{}, nil
}

// CreateStatusField implements the Client interface
func (c *MockClient) CreateStatusField(ctx context.Context, projectID string, options []string) (*StatusField, error) {
	if c.CreateStatusFieldFunc != nil {
		return c.CreateStatusFieldFunc(ctx, projectID, options)
	}
	return &StatusField{}, nil
}

// CreateIssue implements the IssueCreator interface
func (c *MockClient) CreateIssue(ctx context.Context, owner string, repo string, title string) (*Issue, error) {
	if c.CreateIssueFunc != nil {
		return c.CreateIssueFunc(ctx, owner, repo, title)
	}
	return &Issue{}, nil
}
