package infrastructure

import (
	"context"
	"net/url"

	"github.com/yourusername/social-grab-go/internal/domain"
)

// Placeholder preview fields for Facebook. The fb endpoint only returns
// quality variants, so title, author and duration cannot be filled from the
// upstream response. A known limitation of the collaborator contract.
const (
	facebookThumbnail   = "https://cdn6.aptoide.com/imgs/c/3/c/c3c4f8e3316d67a4c6568e2cc502e5cb_icon.png"
	facebookDescription = "Facebook Video"
	facebookAuthor      = "Facebook"
	facebookDuration    = "-"
)

// FacebookResolver resolves previews through the fb extraction endpoint
type FacebookResolver struct {
	client *ExtractorClient
}

// NewFacebookResolver creates a new Facebook resolver
func NewFacebookResolver(client *ExtractorClient) *FacebookResolver {
	return &FacebookResolver{client: client}
}

// Platform returns the platform this resolver handles
func (r *FacebookResolver) Platform() domain.Platform {
	return domain.PlatformFacebook
}

type fbResponse struct {
	Data []struct {
		Quality string `json:"quality"`
		URL     string `json:"url"`
	} `json:"data"`
}

// Resolve maps each upstream quality variant to a resolution entry, in the
// order the endpoint returned them
func (r *FacebookResolver) Resolve(ctx context.Context, rawURL string) (*domain.MediaPreview, error) {
	val := url.Values{}
	val.Set("url", rawURL)

	var body fbResponse
	if err := r.client.GetJSON(ctx, "fb", val, &body); err != nil {
		return nil, &domain.MetadataFetchError{Platform: domain.PlatformFacebook, Cause: err}
	}

	resolutions := make([]domain.Resolution, 0, len(body.Data))
	for _, variant := range body.Data {
		resolutions = append(resolutions, domain.Resolution{
			Label: variant.Quality,
			Value: variant.URL,
		})
	}

	return &domain.MediaPreview{
		Title:       rawURL,
		Description: facebookDescription,
		Author:      facebookAuthor,
		Duration:    facebookDuration,
		Thumbnail:   facebookThumbnail,
		Resolutions: resolutions,
	}, nil
}
