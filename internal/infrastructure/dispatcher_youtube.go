package infrastructure

import (
	"context"
	"net/url"

	"github.com/yourusername/social-grab-go/internal/domain"
)

// audioQuality is the fixed bitrate requested for YouTube audio downloads
const audioQuality = "128kbps"

// YouTubeDispatcher resolves final YouTube assets through the youtube
// extraction endpoint. The quality list shown to the user is fixed
// client-side, so a requested quality may not exist upstream; that surfaces
// here as NoAssetAvailable.
type YouTubeDispatcher struct {
	client *ExtractorClient
}

// NewYouTubeDispatcher creates a new YouTube dispatcher
func NewYouTubeDispatcher(client *ExtractorClient) *YouTubeDispatcher {
	return &YouTubeDispatcher{client: client}
}

// Platform returns the platform this dispatcher handles
func (d *YouTubeDispatcher) Platform() domain.Platform {
	return domain.PlatformYouTube
}

type ytDownloadResponse struct {
	Data struct {
		URL string `json:"url"`
	} `json:"data"`
}

// Dispatch re-queries the download endpoint with the selected track and, for
// video, the chosen quality label
func (d *YouTubeDispatcher) Dispatch(ctx context.Context, rawURL string, preview *domain.MediaPreview, selector domain.Selector) (*domain.DownloadResult, error) {
	val := url.Values{}
	val.Set("url", rawURL)
	if selector.Track == domain.TrackAudio {
		val.Set("type", "audio")
		val.Set("quality", audioQuality)
	} else {
		val.Set("type", "video")
		val.Set("quality", selector.Quality)
	}

	var body ytDownloadResponse
	if err := d.client.GetJSON(ctx, "youtube", val, &body); err != nil {
		return nil, &domain.DownloadTransportError{Platform: domain.PlatformYouTube, Cause: err}
	}

	if body.Data.URL == "" {
		return nil, &domain.NoAssetAvailableError{Platform: domain.PlatformYouTube, Selector: selector}
	}

	return &domain.DownloadResult{
		AssetURL:          body.Data.URL,
		SuggestedFilename: domain.TrackFilename(preview.Title, selector.Track),
	}, nil
}
