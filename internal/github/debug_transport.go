package github

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"regexp"
)

var authHeaderPattern = regexp.MustCompile(`(?mi)^(Authorization: \w+ )[^\r\n]*`)

// debugTransport wraps an HTTP transport and dumps requests/responses with the token masked
type debugTransport struct {
	transport http.RoundTripper
	out       io.Writer
}

func (d *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	reqDump, err := httputil.DumpRequestOut(req, true)
	if err != nil {
		return nil, fmt.Errorf("failed to dump request: %w", err)
	}
	fmt.Fprintf(d.out, ">>> Request:\n%s\n", authHeaderPattern.ReplaceAll(reqDump, []byte("${1}****")))

	resp, err := d.transport.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	respDump, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return nil, fmt.Errorf("failed to dump response: %w", err)
	}
	fmt.Fprintf(d.out, "<<< Response:\n%s\n", string(respDump))

	return resp, nil
}
