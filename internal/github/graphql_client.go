package github

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/shurcooL/githubv4"
)

// GraphQLClient implements the Client interface using GitHub's GraphQL API
type GraphQLClient struct {
	client *githubv4.Client
}

// NewGraphQLClient creates a new GitHub GraphQL client on top of an authenticated http client
func NewGraphQLClient(httpClient *http.Client) *GraphQLClient {
	return &GraphQLClient{client: githubv4.NewClient(httpClient)}
}

// NewGraphQLClientWithURL creates a GraphQL client for a custom endpoint (GHES or tests)
func NewGraphQLClientWithURL(url string, httpClient *http.Client) *GraphQLClient {
	return &GraphQLClient{client: githubv4.NewEnterpriseClient(url, httpClient)}
}

// GraphQL query types for GitHub's API
type (
	// projectV2Summary represents the listing view of a project
	projectV2Summary struct {
		ID     string
		Number int
		Title  string
		URL    string
		Closed bool
	}

	// projectV2 represents a project together with its Status field
	projectV2 struct {
		projectV2Summary
		Field struct {
			SingleSelectField singleSelectField `graphql:"... on ProjectV2SingleSelectField"`
		} `graphql:"field(name: $statusField)"`
	}

	// singleSelectField represents a single-select field configuration
	singleSelectField struct {
		ID      string
		Name    string
		Options []struct {
			ID   string
			Name string
		}
	}

	// projectV2Item represents an item in a GitHub project
	projectV2Item struct {
		ID               string
		FieldValueByName struct {
			SingleSelectValue struct {
				Name string
			} `graphql:"... on ProjectV2ItemFieldSingleSelectValue"`
		} `graphql:"fieldValueByName(name: $statusField)"`
		Content struct {
			TypeName string `graphql:"__typename"`
			Issue    struct {
				Number int
				Title  string
				Body   string
			} `graphql:"... on Issue"`
			DraftIssue struct {
				Title string
				Body  string
			} `graphql:"... on DraftIssue"`
			PullRequest struct {
				Number int
				Title  string
			} `graphql:"... on PullRequest"`
		}
	}
)

func (p projectV2Summary) toProject() Project {
	return Project{
		ID:     p.ID,
		Number: p.Number,
		Title:  p.Title,
		URL:    p.URL,
		Closed: p.Closed,
	}
}

func (f singleSelectField) toStatusField() *StatusField {
	if f.ID == "" {
		return nil
	}
	field := &StatusField{ID: f.ID, Name: f.Name}
	for _, option := range f.Options {
		field.Options = append(field.Options, StatusOption{ID: option.ID, Name: option.Name})
	}
	return field
}

func (i projectV2Item) toProjectItem() ProjectItem {
	item := ProjectItem{
		ID:          i.ID,
		ContentType: ContentType(i.Content.TypeName),
		Status:      i.FieldValueByName.SingleSelectValue.Name,
	}
	switch item.ContentType {
	case ContentIssue:
		item.Number = i.Content.Issue.Number
		item.Title = i.Content.Issue.Title
		item.Body = i.Content.Issue.Body
	case ContentDraftIssue:
		item.Title = i.Content.DraftIssue.Title
		item.Body = i.Content.DraftIssue.Body
	case ContentPullRequest:
		item.Number = i.Content.PullRequest.Number
		item.Title = i.Content.PullRequest.Title
	default:
		item.ContentType = ContentNone
	}
	return item
}

// ListOwnerProjects implements the Client interface
func (c *GraphQLClient) ListOwnerProjects(ctx context.Context, ownerLogin string) ([]Project, error) {
	type projectConnection struct {
		Nodes []projectV2Summary
	}
	var query struct {
		RepositoryOwner struct {
			TypeName string `graphql:"__typename"`
			User     struct {
				ProjectsV2 projectConnection `graphql:"projectsV2(first: 100)"`
			} `graphql:"... on User"`
			Organization struct {
				ProjectsV2 projectConnection `graphql:"projectsV2(first: 100)"`
			} `graphql:"... on Organization"`
		} `graphql:"repositoryOwner(login: $login)"`
	}

	variables := map[string]interface{}{
		"login": githubv4.String(ownerLogin),
	}

	if err := c.client.Query(ctx, &query, variables); err != nil {
		return nil, fmt.Errorf("failed to query projects of %s: %w", ownerLogin, err)
	}

	var nodes []projectV2Summary
	switch query.RepositoryOwner.TypeName {
	case "User":
		nodes = query.RepositoryOwner.User.ProjectsV2.Nodes
	case "Organization":
		nodes = query.RepositoryOwner.Organization.ProjectsV2.Nodes
	default:
		return nil, fmt.Errorf("owner %s not found", ownerLogin)
	}

	projects := make([]Project, 0, len(nodes))
	for _, node := range nodes {
		projects = append(projects, node.toProject())
	}
	slog.Debug("listed projects", "owner", ownerLogin, "count", len(projects))
	return projects, nil
}

// GetProject implements the Client interface
func (c *GraphQLClient) GetProject(ctx context.Context, ownerLogin string, projectNumber int) (*Project, error) {
	var query struct {
		RepositoryOwner struct {
			TypeName string `graphql:"__typename"`
			User     struct {
				ProjectV2 *projectV2 `graphql:"projectV2(number: $projectNumber)"`
			} `graphql:"... on User"`
			Organization struct {
				ProjectV2 *projectV2 `graphql:"projectV2(number: $projectNumber)"`
			} `graphql:"... on Organization"`
		} `graphql:"repositoryOwner(login: $login)"`
	}

	variables := map[string]interface{}{
		"login":         githubv4.String(ownerLogin),
		"projectNumber": githubv4.Int(projectNumber),
		"statusField":   githubv4.String(StatusFieldName),
	}

	if err := c.client.Query(ctx, &query, variables); err != nil {
		return nil, fmt.Errorf("failed to query project #%d of %s: %w", projectNumber, ownerLogin, err)
	}

	var node *projectV2
	switch query.RepositoryOwner.TypeName {
	case "User":
		node = query.RepositoryOwner.User.ProjectV2
	case "Organization":
		node = query.RepositoryOwner.Organization.ProjectV2
	}
	if node == nil {
		return nil, fmt.Errorf("project #%d not found for %s", projectNumber, ownerLogin)
	}

	project := node.toProject()
	project.Status = node.Field.SingleSelectField.toStatusField()
	return &project, nil
}

// GetProjectItems implements the Client interface
func (c *GraphQLClient) GetProjectItems(ctx context.Context, ownerLogin string, projectNumber int, limit int) ([]ProjectItem, error) {
	type projectItems struct {
		Items struct {
			Nodes []projectV2Item
		} `graphql:"items(first: $first, orderBy: {field: POSITION, direction: ASC})"`
	}
	var query struct {
		RepositoryOwner struct {
			TypeName string `graphql:"__typename"`
			User     struct {
				ProjectV2 *projectItems `graphql:"projectV2(number: $projectNumber)"`
			} `graphql:"... on User"`
			Organization struct {
				ProjectV2 *projectItems `graphql:"projectV2(number: $projectNumber)"`
			} `graphql:"... on Organization"`
		} `graphql:"repositoryOwner(login: $login)"`
	}

	variables := map[string]interface{}{
		"login":         githubv4.String(ownerLogin),
		"projectNumber": githubv4.Int(projectNumber),
		"first":         githubv4.Int(limit),
		"statusField":   githubv4.String(StatusFieldName),
	}

	if err := c.client.Query(ctx, &query, variables); err != nil {
		return nil, fmt.Errorf("failed to query items of project #%d: %w", projectNumber, err)
	}

	node := query.RepositoryOwner.User.ProjectV2
	if query.RepositoryOwner.TypeName == "Organization" {
		node = query.RepositoryOwner.Organization.ProjectV2
	}
	if node == nil {
		return nil, fmt.Errorf("project #%d not found for %s", projectNumber, ownerLogin)
	}

	items := make([]ProjectItem, 0, len(node.Items.Nodes))
	for _, n := range node.Items.Nodes {
		items = append(items, n.toProjectItem())
	}
	return items, nil
}

// AddDraftIssue implements the Client interface
func (c *GraphQLClient) AddDraftIssue(ctx context.Context, projectID string, title string) (string, error) {
	var mutation struct {
		AddProjectV2DraftIssue struct {
			ProjectItem struct {
				ID string
			}
		} `graphql:"addProjectV2DraftIssue(input: $input)"`
	}

	input := githubv4.AddProjectV2DraftIssueInput{
		ProjectID: githubv4.ID(projectID),
		Title:     githubv4.String(title),
	}

	if err := c.client.Mutate(ctx, &mutation, input, nil); err != nil {
		return "", fmt.Errorf("failed to add draft issue: %w", err)
	}
	return mutation.AddProjectV2DraftIssue.ProjectItem.ID, nil
}

// AddProjectItem implements the Client interface
func (c *GraphQLClient) AddProjectItem(ctx context.Context, projectID string, contentID string) (string, error) {
	var mutation struct {
		AddProjectV2ItemByID struct {
			Item struct {
				ID string
			}
		} `graphql:"addProjectV2ItemById(input: $input)"`
	}

	input := githubv4.AddProjectV2ItemByIdInput{
		ProjectID: githubv4.ID(projectID),
		ContentID: githubv4.ID(contentID),
	}

	if err := c.client.Mutate(ctx, &mutation, input, nil); err != nil {
		return "", fmt.Errorf("failed to add item to project: %w", err)
	}
	return mutation.AddProjectV2ItemByID.Item.ID, nil
}

// UpdateItemStatus implements the Client interface
func (c *GraphQLClient) UpdateItemStatus(ctx context.Context, projectID string, itemID string, fieldID string, optionID string) error {
	var mutation struct {
		UpdateProjectV2ItemFieldValue struct {
			ClientMutationID string
		} `graphql:"updateProjectV2ItemFieldValue(input: $input)"`
	}

	option := githubv4.String(optionID)
	input := githubv4.UpdateProjectV2ItemFieldValueInput{
		ProjectID: githubv4.ID(projectID),
		ItemID:    githubv4.ID(itemID),
		FieldID:   githubv4.ID(fieldID),
		Value:     githubv4.ProjectV2FieldValue{SingleSelectOptionID: &option},
	}

	if err := c.client.Mutate(ctx, &mutation, input, nil); err != nil {
		return fmt.Errorf("failed to update item status: %w", err)
	}
	return nil
}

// GetRepositoryIDs implements the Client interface
func (c *GraphQLClient) GetRepositoryIDs(ctx context.Context, owner string, name string) (*RepositoryIDs, error) {
	var query struct {
		Repository struct {
			ID    string
			Owner struct {
				ID string
			}
		} `graphql:"repository(owner: $owner, name: $name)"`
	}

	variables := map[string]interface{}{
		"owner": githubv4.String(owner),
		"name":  githubv4.String(name),
	}

	if err := c.client.Query(ctx, &query, variables); err != nil {
		return nil, fmt.Errorf("failed to query repository %s/%s: %w", owner, name, err)
	}

	return &RepositoryIDs{
		RepositoryID: query.Repository.ID,
		OwnerID:      query.Repository.Owner.ID,
	}, nil
}

// CreateProject implements the Client interface
func (c *GraphQLClient) CreateProject(ctx context.Context, ownerID string, repositoryID string, title string) (*Project, error) {
	var mutation struct {
		CreateProjectV2 struct {
			ProjectV2 projectV2Summary
		} `graphql:"createProjectV2(input: $input)"`
	}

	input := githubv4.CreateProjectV2Input{
		OwnerID: githubv4.ID(ownerID),
		Title:   githubv4.String(title),
	}
	if repositoryID != "" {
		id := githubv4.ID(repositoryID)
		input.RepositoryID = &id
	}

	if err := c.client.Mutate(ctx, &mutation, input, nil); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	project := mutation.CreateProjectV2.ProjectV2.toProject()
	return &project, nil
}

// CreateProjectV2FieldInput is the input of the createProjectV2Field mutation
type CreateProjectV2FieldInput struct {
	ProjectID           githubv4.ID                 `json:"projectId"`
	DataType            string                      `json:"dataType"`
	Name                githubv4.String             `json:"name"`
	SingleSelectOptions []SingleSelectFieldOptionIn `json:"singleSelectOptions,omitempty"`
}

// SingleSelectFieldOptionIn describes one option of a new single-select field
type SingleSelectFieldOptionIn struct {
	Name        githubv4.String `json:"name"`
	Color       string          `json:"color"`
	Description githubv4.String `json:"description"`
}

// CreateStatusField implements the Client interface
func (c *GraphQLClient) CreateStatusField(ctx context.Context, projectID string, options []string) (*StatusField, error) {
	var mutation struct {
		CreateProjectV2Field struct {
			ProjectV2Field struct {
				SingleSelectField singleSelectField `graphql:"... on ProjectV2SingleSelectField"`
			}
		} `graphql:"createProjectV2Field(input: $input)"`
	}

	input := CreateProjectV2FieldInput{
		ProjectID: githubv4.ID(projectID),
		DataType:  "SINGLE_SELECT",
		Name:      githubv4.String(StatusFieldName),
	}
	for _, name := range options {
		input.SingleSelectOptions = append(input.SingleSelectOptions, SingleSelectFieldOptionIn{
			Name:  githubv4.String(name),
			Color: "GRAY",
		})
	}

	if err := c.client.Mutate(ctx, &mutation, input, nil); err != nil {
		return nil, fmt.Errorf("failed to create %s field: %w", StatusFieldName, err)
	}

	field := mutation.CreateProjectV2Field.ProjectV2Field.SingleSelectField.toStatusField()
	if field == nil {
		return nil, fmt.Errorf("created %s field is not a single-select field", StatusFieldName)
	}
	return field, nil
}
