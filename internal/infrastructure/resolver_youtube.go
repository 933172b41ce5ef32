package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/yourusername/social-grab-go/internal/domain"
)

// YouTubeResolver resolves previews through the YouTube Data API v3
type YouTubeResolver struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewYouTubeResolver creates a new YouTube resolver
func NewYouTubeResolver(baseURL, apiKey string, timeout time.Duration) *YouTubeResolver {
	return &YouTubeResolver{
		baseURL: baseURL,
		apiKey:  apiKey,
		http: &http.Client{
			Timeout: timeout,
		},
	}
}

// Platform returns the platform this resolver handles
func (r *YouTubeResolver) Platform() domain.Platform {
	return domain.PlatformYouTube
}

type ytVideosResponse struct {
	Items []struct {
		Snippet struct {
			Title        string `json:"title"`
			Description  string `json:"description"`
			ChannelTitle string `json:"channelTitle"`
			Thumbnails   struct {
				High struct {
					URL string `json:"url"`
				} `json:"high"`
			} `json:"thumbnails"`
		} `json:"snippet"`
		ContentDetails struct {
			Duration string `json:"duration"`
		} `json:"contentDetails"`
	} `json:"items"`
}

// Resolve fetches snippet and contentDetails for the video id embedded in
// the URL. Quality choices are not derived from the response; the fixed
// client-side list in domain.YouTubeResolutions applies at download time.
func (r *YouTubeResolver) Resolve(ctx context.Context, rawURL string) (*domain.MediaPreview, error) {
	id, ok := domain.ExtractYouTubeID(rawURL)
	if !ok {
		return nil, &domain.InvalidURLError{Platform: domain.PlatformYouTube, URL: rawURL}
	}

	val := url.Values{}
	val.Set("id", id)
	val.Set("part", "snippet,contentDetails")
	val.Set("key", r.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"/videos?"+val.Encode(), nil)
	if err != nil {
		return nil, &domain.MetadataFetchError{Platform: domain.PlatformYouTube, Cause: err}
	}

	resp, err := r.http.Do(req)
	if err != nil {
		return nil, &domain.MetadataFetchError{Platform: domain.PlatformYouTube, Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &domain.MetadataFetchError{
			Platform: domain.PlatformYouTube,
			Cause:    fmt.Errorf("youtube status %d", resp.StatusCode),
		}
	}

	var body ytVideosResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, &domain.MetadataFetchError{Platform: domain.PlatformYouTube, Cause: err}
	}

	if len(body.Items) == 0 {
		return nil, &domain.MetadataFetchError{
			Platform: domain.PlatformYouTube,
			Cause:    fmt.Errorf("no video found for id %s", id),
		}
	}

	item := body.Items[0]
	return &domain.MediaPreview{
		Title:       item.Snippet.Title,
		Description: item.Snippet.Description,
		Author:      item.Snippet.ChannelTitle,
		Duration:    domain.FormatDuration(item.ContentDetails.Duration),
		Thumbnail:   item.Snippet.Thumbnails.High.URL,
	}, nil
}
