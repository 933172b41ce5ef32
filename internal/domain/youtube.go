package domain

import (
	"regexp"
	"strings"
)

// youtubeIDPattern captures the 11-character video identifier from long-form
// (?v=ID), short-form (youtu.be/ID), embed (/embed/ID) and shortened-path
// YouTube URLs.
var youtubeIDPattern = regexp.MustCompile(`(?:youtube\.com/(?:[^/\n\s]+/\S+/|(?:v|e(?:mbed)?)/|.*[?&]v=)|youtu\.be/)([a-zA-Z0-9_-]{11})`)

// ExtractYouTubeID extracts the 11-character video id from a YouTube URL.
// The second return value is false when the URL carries no recognizable id,
// which is a different condition from the URL not being a YouTube URL at all.
func ExtractYouTubeID(url string) (string, bool) {
	match := youtubeIDPattern.FindStringSubmatch(url)
	if match == nil {
		return "", false
	}
	return match[1], true
}

// FormatDuration converts an ISO-8601 style duration token (PT#H#M#S, any
// component optional) into a colon-separated clock string: PT1H2M10S becomes
// "1:2:10", PT5M30S becomes "5:30", PT45S becomes "45". A trailing colon left
// behind by a missing seconds component is trimmed, so PT2H yields "2".
func FormatDuration(iso string) string {
	s := strings.TrimPrefix(iso, "PT")
	s = strings.ReplaceAll(s, "H", ":")
	s = strings.ReplaceAll(s, "M", ":")
	s = strings.ReplaceAll(s, "S", "")
	return strings.TrimSuffix(s, ":")
}

// YouTubeResolutions returns the fixed quality list offered for YouTube
// downloads. The upstream metadata call does not report available qualities,
// so the download step is expected to fail with NoAssetAvailable when a
// requested quality does not exist.
func YouTubeResolutions() []Resolution {
	return []Resolution{
		{Label: "1080p", Value: "1080"},
		{Label: "720p", Value: "720"},
		{Label: "480p", Value: "480"},
		{Label: "360p", Value: "360"},
	}
}
