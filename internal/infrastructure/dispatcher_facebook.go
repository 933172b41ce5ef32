package infrastructure

import (
	"context"
	"net/url"

	"github.com/yourusername/social-grab-go/internal/domain"
)

// FacebookDispatcher resolves final Facebook assets. The fb endpoint is
// re-queried at download time rather than reusing the quality variants cached
// in the preview; the variant URLs are short-lived upstream.
type FacebookDispatcher struct {
	client *ExtractorClient
}

// NewFacebookDispatcher creates a new Facebook dispatcher
func NewFacebookDispatcher(client *ExtractorClient) *FacebookDispatcher {
	return &FacebookDispatcher{client: client}
}

// Platform returns the platform this dispatcher handles
func (d *FacebookDispatcher) Platform() domain.Platform {
	return domain.PlatformFacebook
}

// Dispatch re-queries the fb endpoint and picks the variant whose quality
// matches the selector
func (d *FacebookDispatcher) Dispatch(ctx context.Context, rawURL string, preview *domain.MediaPreview, selector domain.Selector) (*domain.DownloadResult, error) {
	val := url.Values{}
	val.Set("url", rawURL)

	var body fbResponse
	if err := d.client.GetJSON(ctx, "fb", val, &body); err != nil {
		return nil, &domain.DownloadTransportError{Platform: domain.PlatformFacebook, Cause: err}
	}

	for _, variant := range body.Data {
		if variant.Quality == selector.Quality && variant.URL != "" {
			return &domain.DownloadResult{
				AssetURL:          variant.URL,
				SuggestedFilename: preview.Title + ".mp4",
			}, nil
		}
	}

	return nil, &domain.NoAssetAvailableError{Platform: domain.PlatformFacebook, Selector: selector}
}
