package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		url      string
		expected Platform
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", PlatformYouTube},
		{"http://youtube.com/watch?v=dQw4w9WgXcQ", PlatformYouTube},
		{"youtube.com/watch?v=dQw4w9WgXcQ", PlatformYouTube},
		{"https://m.youtube.com/watch?v=dQw4w9WgXcQ", PlatformYouTube},
		{"https://youtu.be/dQw4w9WgXcQ", PlatformYouTube},
		{"HTTPS://WWW.YOUTUBE.COM/watch?v=dQw4w9WgXcQ", PlatformYouTube},

		{"https://www.facebook.com/watch/?v=123456", PlatformFacebook},
		{"https://m.facebook.com/story.php?id=1", PlatformFacebook},
		{"https://fb.me/abc123", PlatformFacebook},
		{"facebook.com/reel/99", PlatformFacebook},

		{"https://www.instagram.com/p/Cxyz123/", PlatformInstagram},
		{"https://instagr.am/p/Cxyz123/", PlatformInstagram},
		{"m.instagram.com/reel/Cxyz123/", PlatformInstagram},

		{"https://www.tiktok.com/@user/video/7123", PlatformTikTok},
		{"https://vm.tiktok.com/ZMabc/", PlatformTikTok},
		{"https://vt.tiktok.com/ZMabc/", PlatformTikTok},
		{"tiktok.com/@user/video/7123", PlatformTikTok},

		{"https://example.com/watch?v=dQw4w9WgXcQ", PlatformUnknown},
		{"https://twitter.com/user/status/1", PlatformUnknown},
		{"not a url at all", PlatformUnknown},
		{"https://youtube.com/", PlatformUnknown}, // no path component
		{"", PlatformUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectPlatform(tt.url))
		})
	}
}

func TestValidatePlatform(t *testing.T) {
	for _, p := range SupportedPlatforms() {
		assert.True(t, ValidatePlatform(p))
	}
	assert.False(t, ValidatePlatform(PlatformUnknown))
	assert.False(t, ValidatePlatform(Platform("vimeo")))
}
