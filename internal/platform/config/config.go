package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Server captures HTTP server and upstream configuration.
type Server struct {
	Addr        string
	Environment string

	// SearchURL is the entity-search endpoint (wbsearchentities-style action API).
	SearchURL string
	// SPARQLURL is the structured-query endpoint.
	SPARQLURL string
	// UserAgent identifies this service to the knowledge base (polite usage).
	UserAgent string

	// UpstreamTimeout bounds every outbound search or query call.
	// A call past this deadline is abandoned and surfaced as upstream_timeout;
	// there is no automatic retry.
	UpstreamTimeout time.Duration

	// Languages is the ordered language-hint fallback sequence for entity search.
	Languages []string
	// SearchLimit is the per-language result limit requested from search.
	SearchLimit int
	// CandidateCap bounds how many unique candidate ids go into one enrichment batch.
	CandidateCap int
}

const (
	defaultAddr            = ":8080"
	defaultSearchURL       = "https://www.wikidata.org/w/api.php"
	defaultSPARQLURL       = "https://query.wikidata.org/sparql"
	defaultUserAgent       = "personlink/1.0 (entity resolution service)"
	defaultUpstreamTimeout = 10 * time.Second
	defaultLanguages       = "en,da,auto"
	defaultSearchLimit     = 20
	defaultCandidateCap    = 12
)

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	cfg := Server{
		Addr:            envOr("PERSONLINK_ADDR", defaultAddr),
		Environment:     envOr("PERSONLINK_ENV", "development"),
		SearchURL:       envOr("PERSONLINK_SEARCH_URL", defaultSearchURL),
		SPARQLURL:       envOr("PERSONLINK_SPARQL_URL", defaultSPARQLURL),
		UserAgent:       envOr("PERSONLINK_USER_AGENT", defaultUserAgent),
		UpstreamTimeout: defaultUpstreamTimeout,
		Languages:       splitList(envOr("PERSONLINK_LANGUAGES", defaultLanguages)),
		SearchLimit:     defaultSearchLimit,
		CandidateCap:    defaultCandidateCap,
	}

	if raw := os.Getenv("PERSONLINK_UPSTREAM_TIMEOUT"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			cfg.UpstreamTimeout = d
		}
	}
	if raw := os.Getenv("PERSONLINK_SEARCH_LIMIT"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			cfg.SearchLimit = n
		}
	}
	if raw := os.Getenv("PERSONLINK_CANDIDATE_CAP"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			cfg.CandidateCap = n
		}
	}

	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
