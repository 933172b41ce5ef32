package domain

import "context"

// Resolver turns a platform URL into a normalized MediaPreview via one
// upstream metadata call
type Resolver interface {
	// Resolve fetches and normalizes metadata for the given URL
	Resolve(ctx context.Context, url string) (*MediaPreview, error)

	// Platform returns the platform this resolver handles
	Platform() Platform
}

// Dispatcher turns a user-selected variant into a final downloadable asset
// URL plus a suggested filename. Some platforms re-query an endpoint, others
// select from the already-resolved preview.
type Dispatcher interface {
	// Dispatch resolves the final asset for the selected variant
	Dispatch(ctx context.Context, url string, preview *MediaPreview, selector Selector) (*DownloadResult, error)

	// Platform returns the platform this dispatcher handles
	Platform() Platform
}
