package domain

// MediaKind distinguishes image and video assets in a media collection
type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

// Resolution is a discrete quality variant offered for download
type Resolution struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// MediaItem is one independently downloadable asset (Instagram carousels)
type MediaItem struct {
	Kind      MediaKind `json:"kind"`
	URL       string    `json:"url"`
	Thumbnail string    `json:"thumbnail"`
}

// MediaPreview is the normalized result of metadata resolution. Different
// platforms populate different subsets; exactly one of the three selection
// shapes (Resolutions, Media, or the VideoURL/AudioURL pair) is populated,
// and which one is a static function of the platform. YouTube populates none
// of them and relies on the fixed client-side resolution list instead.
//
// A preview is immutable once produced; a new query replaces it wholesale.
type MediaPreview struct {
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	Author      string       `json:"author,omitempty"`
	Duration    string       `json:"duration,omitempty"`
	Thumbnail   string       `json:"thumbnail,omitempty"`
	Resolutions []Resolution `json:"resolutions,omitempty"`
	Media       []MediaItem  `json:"media,omitempty"`
	VideoURL    string       `json:"video_url,omitempty"`
	AudioURL    string       `json:"audio_url,omitempty"`
}

// HasResolutions reports whether the preview carries discrete quality variants
func (p *MediaPreview) HasResolutions() bool {
	return len(p.Resolutions) > 0
}

// HasMedia reports whether the preview carries an independent asset collection
func (p *MediaPreview) HasMedia() bool {
	return len(p.Media) > 0
}

// HasTracks reports whether the preview carries split video/audio tracks
func (p *MediaPreview) HasTracks() bool {
	return p.VideoURL != "" || p.AudioURL != ""
}

// FindMedia looks up a media item by its URL. Used by the Instagram download
// path, which selects directly from the already-resolved collection.
func (p *MediaPreview) FindMedia(url string) (MediaItem, bool) {
	for _, item := range p.Media {
		if item.URL == url {
			return item, true
		}
	}
	return MediaItem{}, false
}

// FindResolution looks up a quality variant by label
func (p *MediaPreview) FindResolution(label string) (Resolution, bool) {
	for _, res := range p.Resolutions {
		if res.Label == label {
			return res, true
		}
	}
	return Resolution{}, false
}
