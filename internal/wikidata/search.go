package wikidata

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"personlink/internal/person/models"
	"personlink/internal/person/ports"
	dErrors "personlink/pkg/domain-errors"
)

// languageAuto asks the upstream to detect the query language itself.
// wbsearchentities has no literal "auto" mode, so it maps to English search
// with uselang=user, which is the closest public equivalent.
const languageAuto = "auto"

// SearchClient implements ports.EntitySearcher over the wbsearchentities
// action API.
type SearchClient struct {
	baseURL   string
	userAgent string
	http      *http.Client
}

// NewSearchClient creates an entity search client.
func NewSearchClient(cfg Config) *SearchClient {
	return &SearchClient{
		baseURL:   cfg.SearchURL,
		userAgent: cfg.UserAgent,
		http:      newHTTPClient(cfg.Timeout),
	}
}

type searchResponse struct {
	Search []searchHit `json:"search"`
}

type searchHit struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// SearchEntities runs one textual search with the given language hint.
// An empty hit list is a valid result, not an error.
func (c *SearchClient) SearchEntities(ctx context.Context, query, language string, limit int) ([]models.Candidate, error) {
	params := url.Values{}
	params.Set("action", "wbsearchentities")
	params.Set("search", query)
	params.Set("format", "json")
	params.Set("limit", strconv.Itoa(limit))
	params.Set("type", "item")
	if language == languageAuto {
		params.Set("language", "en")
		params.Set("uselang", "user")
	} else {
		params.Set("language", language)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to build search request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, classifyTransportError(ctx, "search", err)
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, classifyStatus("search", resp.StatusCode)
	}

	var decoded searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUpstreamUnavailable, "failed to decode search response")
	}

	candidates := make([]models.Candidate, 0, len(decoded.Search))
	for _, hit := range decoded.Search {
		if hit.ID == "" {
			continue
		}
		candidates = append(candidates, models.Candidate{
			ID:    models.EntityID(hit.ID),
			Label: hit.Label,
		})
	}
	return candidates, nil
}

var _ ports.EntitySearcher = (*SearchClient)(nil)
