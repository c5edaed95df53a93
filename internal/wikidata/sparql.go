package wikidata

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"personlink/internal/person/ports"
	dErrors "personlink/pkg/domain-errors"
)

// SPARQLClient implements ports.QueryRunner over a SPARQL 1.1 endpoint that
// speaks the standard sparql-results+json format.
type SPARQLClient struct {
	endpoint  string
	userAgent string
	http      *http.Client
}

// NewSPARQLClient creates a structured-query client.
func NewSPARQLClient(cfg Config) *SPARQLClient {
	return &SPARQLClient{
		endpoint:  cfg.SPARQLURL,
		userAgent: cfg.UserAgent,
		http:      newHTTPClient(cfg.Timeout),
	}
}

type sparqlResult struct {
	Results sparqlBindings `json:"results"`
}

type sparqlBindings struct {
	Bindings []map[string]sparqlValue `json:"bindings"`
}

type sparqlValue struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// RunStructuredQuery POSTs the query and converts the binding rows into the
// port's row shape. Queries go in the form body rather than the URL because
// the enrichment batch can push a GET past sensible URL lengths.
func (c *SPARQLClient) RunStructuredQuery(ctx context.Context, query string) ([]ports.Row, error) {
	form := url.Values{}
	form.Set("query", query)
	form.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to build query request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/sparql-results+json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, classifyTransportError(ctx, "query", err)
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, classifyStatus("query", resp.StatusCode)
	}

	var decoded sparqlResult
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUpstreamUnavailable, "failed to decode query response")
	}

	rows := make([]ports.Row, 0, len(decoded.Results.Bindings))
	for _, binding := range decoded.Results.Bindings {
		row := make(ports.Row, len(binding))
		for name, v := range binding {
			row[name] = ports.Value{Type: v.Type, Value: v.Value}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

var _ ports.QueryRunner = (*SPARQLClient)(nil)
