package cache

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// Key identifies one cached TMDB response. Query must hold only
// content-affecting parameters (language, filters), never credentials.
type Key struct {
	// Endpoint is the API path (e.g., "/movie/550").
	Endpoint string

	// Query are the request's query parameters.
	Query url.Values
}

// String generates a deterministic cache key string.
// Format: tmdb:endpoint:param1=val1:param2=val2
//
// Example:
//
//	tmdb:movie/550:language=en-US
func (k Key) String() string {
	parts := []string{"tmdb"}

	endpoint := strings.Trim(k.Endpoint, "/")
	if endpoint != "" {
		parts = append(parts, endpoint)
	}

	// Query params sorted for determinism.
	if len(k.Query) > 0 {
		keys := make([]string, 0, len(k.Query))
		for key := range k.Query {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for _, key := range keys {
			parts = append(parts, fmt.Sprintf("%s=%s", key, k.Query.Get(key)))
		}
	}

	return strings.Join(parts, ":")
}
