package github

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	gogithub "github.com/google/go-github/v62/github"
)

// RESTClient implements the IssueCreator interface using GitHub's REST API
type RESTClient struct {
	client *gogithub.Client
}

// NewRESTClient creates a new GitHub REST client on top of an authenticated http client
func NewRESTClient(httpClient *http.Client) *RESTClient {
	return &RESTClient{client: gogithub.NewClient(httpClient)}
}

// NewRESTClientWithURL creates a REST client for a custom base URL (GHES or tests)
func NewRESTClientWithURL(baseURL string, httpClient *http.Client) (*RESTClient, error) {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	client := gogithub.NewClient(httpClient)
	client.BaseURL = u
	return &RESTClient{client: client}, nil
}

// CreateIssue implements the IssueCreator interface
func (c *RESTClient) CreateIssue(ctx context.Context, owner string, repo string, title string) (*Issue, error) {
	req := &gogithub.IssueRequest{
		Title: gogithub.String(title),
	}

	issue, _, err := c.client.Issues.Create(ctx, owner, repo, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create issue in %s/%s: %w", owner, repo, err)
	}

	slog.Debug("created issue", "repo", owner+"/"+repo, "number", issue.GetNumber(), "node_id", issue.GetNodeID())
	return &Issue{
		NodeID: issue.GetNodeID(),
		Number: issue.GetNumber(),
		Title:  issue.GetTitle(),
		URL:    issue.GetHTMLURL(),
	}, nil
}
