package domain

import "fmt"

// TrackKind selects between the video and audio track of a single item
type TrackKind string

const (
	TrackVideo TrackKind = "video"
	TrackAudio TrackKind = "audio"
)

// Selector is the user's choice among the download variants a preview offers.
// Exactly one selection style applies per platform: a quality label (YouTube,
// Facebook), a media item URL (Instagram), or a bare track kind (TikTok;
// YouTube audio).
type Selector struct {
	Track   TrackKind `json:"track"`
	Quality string    `json:"quality,omitempty"`
	ItemURL string    `json:"item_url,omitempty"`
}

// SelectVideo selects the video track at the given quality label
func SelectVideo(quality string) Selector {
	return Selector{Track: TrackVideo, Quality: quality}
}

// SelectAudio selects the audio track
func SelectAudio() Selector {
	return Selector{Track: TrackAudio}
}

// SelectItem selects a media collection item by its URL
func SelectItem(url string) Selector {
	return Selector{Track: TrackVideo, ItemURL: url}
}

func (s Selector) String() string {
	switch {
	case s.ItemURL != "":
		return fmt.Sprintf("item(%s)", s.ItemURL)
	case s.Quality != "":
		return fmt.Sprintf("%s@%s", s.Track, s.Quality)
	default:
		return string(s.Track)
	}
}

// DownloadResult is the final outcome of dispatching a download: the asset
// URL to fetch and the filename to save it under.
type DownloadResult struct {
	AssetURL          string `json:"asset_url"`
	SuggestedFilename string `json:"suggested_filename"`
}

// TrackFilename derives a filename for a single-item download: the preview
// title plus .mp4 for video or .mp3 for audio.
func TrackFilename(title string, track TrackKind) string {
	if track == TrackAudio {
		return title + ".mp3"
	}
	return title + ".mp4"
}

// MediaFilename derives a filename for a collection item download: the
// preview title, the item kind, and an extension matching the kind.
func MediaFilename(title string, kind MediaKind) string {
	ext := ".mp4"
	if kind == MediaImage {
		ext = ".jpg"
	}
	return fmt.Sprintf("%s-%s%s", title, kind, ext)
}
