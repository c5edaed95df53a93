package wikidata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"personlink/internal/person/models"
	dErrors "personlink/pkg/domain-errors"
)

func TestSearchEntities_ParsesHits(t *testing.T) {
	var gotQuery, gotLang, gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("search")
		gotLang = r.URL.Query().Get("language")
		gotAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"search":[
			{"id":"Q7085","label":"Niels Bohr"},
			{"id":"Q999","label":"Niels Bohr (painter)"}
		]}`))
	}))
	defer srv.Close()

	client := NewSearchClient(Config{SearchURL: srv.URL, UserAgent: "personlink-test/1.0", Timeout: time.Second})
	candidates, err := client.SearchEntities(context.Background(), "Niels Bohr", "en", 20)
	require.NoError(t, err)

	require.Len(t, candidates, 2)
	assert.Equal(t, models.EntityID("Q7085"), candidates[0].ID)
	assert.Equal(t, "Niels Bohr", candidates[0].Label)
	assert.Equal(t, "Niels Bohr", gotQuery)
	assert.Equal(t, "en", gotLang)
	assert.Equal(t, "personlink-test/1.0", gotAgent)
}

func TestSearchEntities_AutoLanguageMapsToDetection(t *testing.T) {
	var gotLang, gotUselang string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLang = r.URL.Query().Get("language")
		gotUselang = r.URL.Query().Get("uselang")
		_, _ = w.Write([]byte(`{"search":[]}`))
	}))
	defer srv.Close()

	client := NewSearchClient(Config{SearchURL: srv.URL, Timeout: time.Second})
	candidates, err := client.SearchEntities(context.Background(), "Niels Bohr", "auto", 20)
	require.NoError(t, err)

	assert.Empty(t, candidates)
	assert.Equal(t, "en", gotLang)
	assert.Equal(t, "user", gotUselang)
}

func TestSearchEntities_NonOKStatus_IsUpstreamUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewSearchClient(Config{SearchURL: srv.URL, Timeout: time.Second})
	_, err := client.SearchEntities(context.Background(), "Niels Bohr", "en", 20)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUpstreamUnavailable))
}

func TestSearchEntities_SlowUpstream_IsUpstreamTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(2 * time.Second):
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()

	client := NewSearchClient(Config{SearchURL: srv.URL, Timeout: 50 * time.Millisecond})
	_, err := client.SearchEntities(context.Background(), "Niels Bohr", "en", 20)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUpstreamTimeout))
}

func TestRunStructuredQuery_ParsesBindings(t *testing.T) {
	var gotAccept, gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		gotMethod = r.Method
		require.NoError(t, r.ParseForm())
		assert.Contains(t, r.PostForm.Get("query"), "SELECT")
		w.Header().Set("Content-Type", "application/sparql-results+json")
		_, _ = w.Write([]byte(`{"results":{"bindings":[
			{"item":{"type":"uri","value":"http://www.wikidata.org/entity/Q7085"},
			 "itemLabel":{"type":"literal","value":"Niels Bohr"}}
		]}}`))
	}))
	defer srv.Close()

	client := NewSPARQLClient(Config{SPARQLURL: srv.URL, Timeout: time.Second})
	rows, err := client.RunStructuredQuery(context.Background(), "SELECT ?item WHERE { }")
	require.NoError(t, err)

	require.Len(t, rows, 1)
	assert.Equal(t, "http://www.wikidata.org/entity/Q7085", rows[0]["item"].Value)
	assert.Equal(t, "uri", rows[0]["item"].Type)
	assert.Equal(t, "application/sparql-results+json", gotAccept)
	assert.Equal(t, http.MethodPost, gotMethod)
}

func TestRunStructuredQuery_EmptyBindings(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"results":{"bindings":[]}}`))
	}))
	defer srv.Close()

	client := NewSPARQLClient(Config{SPARQLURL: srv.URL, Timeout: time.Second})
	rows, err := client.RunStructuredQuery(context.Background(), "SELECT ?item WHERE { }")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestRunStructuredQuery_NonOKStatus_IsUpstreamUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewSPARQLClient(Config{SPARQLURL: srv.URL, Timeout: time.Second})
	_, err := client.RunStructuredQuery(context.Background(), "SELECT ?item WHERE { }")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUpstreamUnavailable))
}

func TestRunStructuredQuery_CanceledContext_IsUpstreamTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(2 * time.Second):
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	client := NewSPARQLClient(Config{SPARQLURL: srv.URL, Timeout: time.Second})
	_, err := client.RunStructuredQuery(ctx, "SELECT ?item WHERE { }")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUpstreamTimeout))
}
