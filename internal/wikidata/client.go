// Package wikidata implements the person ports against the Wikidata public
// APIs: wbsearchentities for textual search and the SPARQL endpoint for
// structured queries. Both clients share one http.Client whose timeout is
// the single upstream deadline; there are no retries.
package wikidata

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	dErrors "personlink/pkg/domain-errors"
)

// Config carries the shared settings for both upstream clients.
type Config struct {
	SearchURL string
	SPARQLURL string
	UserAgent string
	Timeout   time.Duration
}

// newHTTPClient builds the shared transport-level client. The timeout covers
// connection, request, and body read as one budget per call.
func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &http.Client{Timeout: timeout}
}

// classifyTransportError maps a failed round trip onto the upstream error
// taxonomy. Deadline expiry (from the request context or the client timeout)
// becomes upstream_timeout; everything else is upstream_unavailable.
func classifyTransportError(ctx context.Context, capability string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return dErrors.Wrap(err, dErrors.CodeUpstreamTimeout,
			fmt.Sprintf("%s call exceeded upstream deadline", capability))
	}
	var urlErr interface{ Timeout() bool }
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return dErrors.Wrap(err, dErrors.CodeUpstreamTimeout,
			fmt.Sprintf("%s call timed out", capability))
	}
	return dErrors.Wrap(err, dErrors.CodeUpstreamUnavailable,
		fmt.Sprintf("%s call failed", capability))
}

// classifyStatus maps a non-200 upstream status onto the error taxonomy.
func classifyStatus(capability string, status int) error {
	return dErrors.New(dErrors.CodeUpstreamUnavailable,
		fmt.Sprintf("%s upstream returned status %d", capability, status))
}

// drainAndClose releases the response body so the connection can be reused.
func drainAndClose(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, io.LimitReader(body, 4096))
	_ = body.Close()
}
