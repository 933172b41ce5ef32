package infrastructure

import (
	"context"

	"github.com/yourusername/social-grab-go/internal/domain"
)

// TikTokDispatcher resolves final TikTok assets from the video/audio track
// URLs already cached in the preview. No second network call is made.
type TikTokDispatcher struct{}

// NewTikTokDispatcher creates a new TikTok dispatcher
func NewTikTokDispatcher() *TikTokDispatcher {
	return &TikTokDispatcher{}
}

// Platform returns the platform this dispatcher handles
func (d *TikTokDispatcher) Platform() domain.Platform {
	return domain.PlatformTikTok
}

// Dispatch picks between the resolved video and audio track
func (d *TikTokDispatcher) Dispatch(ctx context.Context, rawURL string, preview *domain.MediaPreview, selector domain.Selector) (*domain.DownloadResult, error) {
	assetURL := preview.VideoURL
	if selector.Track == domain.TrackAudio {
		assetURL = preview.AudioURL
	}

	if assetURL == "" {
		return nil, &domain.NoAssetAvailableError{Platform: domain.PlatformTikTok, Selector: selector}
	}

	return &domain.DownloadResult{
		AssetURL:          assetURL,
		SuggestedFilename: domain.TrackFilename(preview.Title, selector.Track),
	}, nil
}
