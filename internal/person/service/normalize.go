package service

import (
	"strconv"
	"strings"

	"personlink/internal/person/ports"
)

// normalizeDate reduces a possibly-timestamped source value to YYYY-MM-DD.
// SPARQL usually yields ISO timestamps like "1885-10-07T00:00:00Z"; plain
// date strings pass through. Anything else normalizes to empty.
func normalizeDate(value string) string {
	if value == "" {
		return ""
	}
	if i := strings.IndexByte(value, 'T'); i >= 0 {
		return value[:i]
	}
	if len(value) >= 10 && value[4] == '-' && value[7] == '-' {
		return value[:10]
	}
	return ""
}

// qidFromURI converts a full entity URI to its bare id (.../Q123 -> Q123).
// A value with no slash is returned unchanged.
func qidFromURI(uri string) string {
	if uri == "" {
		return ""
	}
	if i := strings.LastIndexByte(uri, '/'); i >= 0 {
		return uri[i+1:]
	}
	return uri
}

// boolBinding reads an existence-check projection ("true"/"false") from a row.
func boolBinding(r ports.Row, key string) bool {
	return r[key].Value == "true"
}

// intBinding reads a numeric binding, defaulting to 0 when the variable is
// absent or unparseable rather than failing the whole call.
func intBinding(r ports.Row, key string) int {
	n, err := strconv.Atoi(r[key].Value)
	if err != nil {
		return 0
	}
	return n
}
