// Package cache provides an optional Redis-backed response cache for
// single-object TMDB endpoints (details, images, credits, genre lists).
//
// TMDB does not send usable freshness headers, so entries live for a fixed
// TTL configured on the manager. List pages are never cached; the paginator
// always goes to the network.
//
// # Basic Usage
//
//	redisClient := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
//	manager := cache.NewManager(redisClient, 10*time.Minute)
//
//	key := cache.Key{Endpoint: "/movie/550", Query: url.Values{"language": {"en-US"}}}
//	entry, err := manager.Get(ctx, key)
//	if err == cache.ErrCacheMiss {
//		// fetch from TMDB, then manager.Set(ctx, key, body, statusCode)
//	}
//
// Keys are deterministic over endpoint and query parameters; credentials
// must never appear in the query handed to a Key.
package cache
