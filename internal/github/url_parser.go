package github

import (
	"fmt"
	"regexp"
)

// remotePattern matches host:owner/repo and host/owner/repo with an optional .git suffix
var remotePattern = regexp.MustCompile(`[:/]([^/:]+)/([^/:]+?)(?:\.git)?/?$`)

// RepositoryInfo contains the parsed information from a git remote URL
type RepositoryInfo struct {
	Owner string
	Name  string
}

// String returns the owner/name form of the repository
func (r RepositoryInfo) String() string {
	return r.Owner + "/" + r.Name
}

// ParseRemoteURL takes a git remote URL and returns the repository owner and name.
// Both SSH (git@github.com:owner/repo.git) and HTTPS (https://github.com/owner/repo)
// forms are supported.
func ParseRemoteURL(remoteURL string) (*RepositoryInfo, error) {
	m := remotePattern.FindStringSubmatch(remoteURL)
	if m == nil {
		return nil, fmt.Errorf("cannot parse owner and repository from remote URL %q", remoteURL)
	}

	return &RepositoryInfo{
		Owner: m[1],
		Name:  m[2],
	}, nil
}
