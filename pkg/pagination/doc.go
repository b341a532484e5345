// Package pagination provides a generic cursor over TMDB's paged list
// endpoints.
//
// TMDB list responses carry the served page number, the total page and
// result counts, and a results array of raw entities. A Paginator owns
// that state for one endpoint binding and advances it page by page:
//
//	pager := pagination.New[models.Movie](fetch)
//	movies, err := pager.FetchCurrentPage(ctx)
//	for pager.HasNextPage() {
//		movies, err = pager.NextPage(ctx)
//	}
//
// The paginator:
//   - Adopts the page number the server reports, not the one requested
//   - Runs every raw entity through its record validation and silently
//     drops the ones that fail, so a page can come back shorter than the
//     server announced
//   - Propagates transport failures unchanged, leaving its own state
//     exactly as it was before the call
//
// A Paginator assumes sequential use and provides no locking of its own.
package pagination
