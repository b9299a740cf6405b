package github

// StatusFieldName is the single-select field that models the board columns
const StatusFieldName = "Status"

// Board column names used by the workflow commands
const (
	StatusTodo       = "Todo"
	StatusInProgress = "In Progress"
	StatusDone       = "Done"
	StatusBacklog    = "Backlog"
)

// Project represents a GitHub project (v2) board
type Project struct {
	ID     string
	Number int
	Title  string
	URL    string
	Closed bool
	// Status is nil when the board has no single-select Status field
	Status *StatusField
}

// StatusField represents the single-select Status field of a project
type StatusField struct {
	ID      string
	Name    string
	Options []StatusOption
}

// StatusOption represents one option (board column) of the Status field
type StatusOption struct {
	ID   string
	Name string
}

// Option returns the option with the given name
func (f *StatusField) Option(name string) (StatusOption, bool) {
	if f == nil {
		return StatusOption{}, false
	}
	for _, option := range f.Options {
		if option.Name == name {
			return option, true
		}
	}
	return StatusOption{}, false
}

// ContentType represents the kind of content a project item wraps
type ContentType string

const (
	// ContentNone is used for items without readable content (e.g. redacted)
	ContentNone ContentType = ""
	// ContentIssue is a repository issue
	ContentIssue ContentType = "Issue"
	// ContentDraftIssue is a draft issue that only lives on the board
	ContentDraftIssue ContentType = "DraftIssue"
	// ContentPullRequest is a pull request
	ContentPullRequest ContentType = "PullRequest"
)

// ProjectItem represents a row on a project board
type ProjectItem struct {
	ID          string
	ContentType ContentType
	Number      int // issue number, zero for drafts
	Title       string
	Body        string
	// Status is the name of the current Status option, empty if unset
	Status string
}

// HasContent reports whether the item wraps an issue or a draft issue
func (i ProjectItem) HasContent() bool {
	return i.ContentType == ContentIssue || i.ContentType == ContentDraftIssue
}

// Issue represents a repository issue created through the REST API
type Issue struct {
	NodeID string
	Number int
	Title  string
	URL    string
}

// RepositoryIDs holds the node IDs needed to create a project for a repository
type RepositoryIDs struct {
	RepositoryID string
	OwnerID      string
}
