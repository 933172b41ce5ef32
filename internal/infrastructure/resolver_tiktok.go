package infrastructure

import (
	"context"
	"fmt"
	"net/url"

	"github.com/yourusername/social-grab-go/internal/domain"
)

// TikTokResolver resolves previews through the tiktok extraction endpoint
type TikTokResolver struct {
	client *ExtractorClient
}

// NewTikTokResolver creates a new TikTok resolver
func NewTikTokResolver(client *ExtractorClient) *TikTokResolver {
	return &TikTokResolver{client: client}
}

// Platform returns the platform this resolver handles
func (r *TikTokResolver) Platform() domain.Platform {
	return domain.PlatformTikTok
}

type tiktokResponse struct {
	Data struct {
		Caption string `json:"caption"`
		Author  struct {
			Nickname    string `json:"nickname"`
			AvatarThumb struct {
				URLList []string `json:"url_list"`
			} `json:"avatar_thumb"`
		} `json:"author"`
		Music struct {
			Title    string `json:"title"`
			Duration int    `json:"duration"`
		} `json:"music"`
		Video string `json:"video"`
		Audio string `json:"audio"`
	} `json:"data"`
}

// Resolve maps the tiktok endpoint response to a preview with split
// video/audio tracks
func (r *TikTokResolver) Resolve(ctx context.Context, rawURL string) (*domain.MediaPreview, error) {
	val := url.Values{}
	val.Set("url", rawURL)

	var body tiktokResponse
	if err := r.client.GetJSON(ctx, "tiktok", val, &body); err != nil {
		return nil, &domain.MetadataFetchError{Platform: domain.PlatformTikTok, Cause: err}
	}

	data := body.Data

	title := data.Caption
	if title == "" {
		title = "TikTok Video"
	}

	thumbnail := ""
	if len(data.Author.AvatarThumb.URLList) > 0 {
		thumbnail = data.Author.AvatarThumb.URLList[0]
	}

	return &domain.MediaPreview{
		Title:       title,
		Description: data.Music.Title,
		Author:      data.Author.Nickname,
		Duration:    fmt.Sprintf("%ds", data.Music.Duration),
		Thumbnail:   thumbnail,
		VideoURL:    data.Video,
		AudioURL:    data.Audio,
	}, nil
}
