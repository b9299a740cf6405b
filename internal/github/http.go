package github

import (
	"context"
	"net/http"
	"os"

	"golang.org/x/oauth2"
)

// NewHTTPClient creates an http client that authenticates every request with token.
// With verbose set, all traffic is dumped to stderr.
func NewHTTPClient(ctx context.Context, token string, verbose bool) *http.Client {
	src := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	httpClient := oauth2.NewClient(ctx, src)

	if verbose {
		httpClient.Transport = &debugTransport{
			transport: httpClient.Transport,
			out:       os.Stderr,
		}
	}

	return httpClient
}
