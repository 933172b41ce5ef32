package infrastructure

import (
	"context"
	"fmt"
	"net/url"

	"github.com/yourusername/social-grab-go/internal/domain"
)

// InstagramResolver resolves previews through the ig extraction endpoint
type InstagramResolver struct {
	client *ExtractorClient
}

// NewInstagramResolver creates a new Instagram resolver
func NewInstagramResolver(client *ExtractorClient) *InstagramResolver {
	return &InstagramResolver{client: client}
}

// Platform returns the platform this resolver handles
func (r *InstagramResolver) Platform() domain.Platform {
	return domain.PlatformInstagram
}

type igResponse struct {
	Data []struct {
		Type      string `json:"type"`
		URL       string `json:"url"`
		Thumbnail string `json:"thumbnail"`
	} `json:"data"`
}

// Resolve maps the upstream item list to a media collection. Items of type
// "jpg" are images, everything else is a video. An item without its own
// thumbnail uses its URL as the thumbnail.
func (r *InstagramResolver) Resolve(ctx context.Context, rawURL string) (*domain.MediaPreview, error) {
	val := url.Values{}
	val.Set("url", rawURL)

	var body igResponse
	if err := r.client.GetJSON(ctx, "ig", val, &body); err != nil {
		return nil, &domain.MetadataFetchError{Platform: domain.PlatformInstagram, Cause: err}
	}

	media := make([]domain.MediaItem, 0, len(body.Data))
	for _, item := range body.Data {
		kind := domain.MediaVideo
		if item.Type == "jpg" {
			kind = domain.MediaImage
		}
		thumbnail := item.Thumbnail
		if thumbnail == "" {
			thumbnail = item.URL
		}
		media = append(media, domain.MediaItem{
			Kind:      kind,
			URL:       item.URL,
			Thumbnail: thumbnail,
		})
	}

	return &domain.MediaPreview{
		Title:  fmt.Sprintf("Instagram Media (%d files)", len(media)),
		Author: "Instagram User",
		Media:  media,
	}, nil
}
