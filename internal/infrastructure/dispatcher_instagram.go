package infrastructure

import (
	"context"

	"github.com/yourusername/social-grab-go/internal/domain"
)

// InstagramDispatcher resolves final Instagram assets from the media
// collection already cached in the preview. No second network call is made;
// the ig endpoint returns direct asset URLs.
type InstagramDispatcher struct{}

// NewInstagramDispatcher creates a new Instagram dispatcher
func NewInstagramDispatcher() *InstagramDispatcher {
	return &InstagramDispatcher{}
}

// Platform returns the platform this dispatcher handles
func (d *InstagramDispatcher) Platform() domain.Platform {
	return domain.PlatformInstagram
}

// Dispatch looks up the selected item in the resolved media collection by
// URL equality
func (d *InstagramDispatcher) Dispatch(ctx context.Context, rawURL string, preview *domain.MediaPreview, selector domain.Selector) (*domain.DownloadResult, error) {
	item, ok := preview.FindMedia(selector.ItemURL)
	if !ok || item.URL == "" {
		return nil, &domain.NoAssetAvailableError{Platform: domain.PlatformInstagram, Selector: selector}
	}

	return &domain.DownloadResult{
		AssetURL:          item.URL,
		SuggestedFilename: domain.MediaFilename(preview.Title, item.Kind),
	}, nil
}
