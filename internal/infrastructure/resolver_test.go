package infrastructure

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/social-grab-go/internal/domain"
)

func newTestExtractor(t *testing.T, handler http.HandlerFunc) *ExtractorClient {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewExtractorClient(server.URL, "testkey", 5*time.Second)
}

func TestYouTubeResolver_Resolve(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/videos", r.URL.Path)
		assert.Equal(t, "dQw4w9WgXcQ", r.URL.Query().Get("id"))
		assert.Equal(t, "snippet,contentDetails", r.URL.Query().Get("part"))
		assert.Equal(t, "yt-key", r.URL.Query().Get("key"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"items": [{
				"snippet": {
					"title": "Never Gonna Give You Up",
					"description": "Official video",
					"channelTitle": "Rick Astley",
					"thumbnails": {"high": {"url": "https://i.ytimg.com/hq.jpg"}}
				},
				"contentDetails": {"duration": "PT3M33S"}
			}]
		}`))
	}))
	defer server.Close()

	resolver := NewYouTubeResolver(server.URL, "yt-key", 5*time.Second)
	preview, err := resolver.Resolve(context.Background(), "https://youtu.be/dQw4w9WgXcQ")

	require.NoError(t, err)
	assert.Equal(t, "Never Gonna Give You Up", preview.Title)
	assert.Equal(t, "Official video", preview.Description)
	assert.Equal(t, "Rick Astley", preview.Author)
	assert.Equal(t, "3:33", preview.Duration)
	assert.Equal(t, "https://i.ytimg.com/hq.jpg", preview.Thumbnail)
	assert.Empty(t, preview.Resolutions)
	assert.Empty(t, preview.Media)
	assert.False(t, preview.HasTracks())
}

func TestYouTubeResolver_InvalidURL(t *testing.T) {
	resolver := NewYouTubeResolver("http://unused", "key", time.Second)

	_, err := resolver.Resolve(context.Background(), "https://www.youtube.com/feed/trending")

	var invalidErr *domain.InvalidURLError
	require.ErrorAs(t, err, &invalidErr)
	assert.Equal(t, domain.PlatformYouTube, invalidErr.Platform)
}

func TestYouTubeResolver_EmptyItems(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items": []}`))
	}))
	defer server.Close()

	resolver := NewYouTubeResolver(server.URL, "key", time.Second)
	_, err := resolver.Resolve(context.Background(), "https://youtu.be/dQw4w9WgXcQ")

	var fetchErr *domain.MetadataFetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, domain.PlatformYouTube, fetchErr.Platform)
}

func TestYouTubeResolver_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	resolver := NewYouTubeResolver(server.URL, "key", time.Second)
	_, err := resolver.Resolve(context.Background(), "https://youtu.be/dQw4w9WgXcQ")

	var fetchErr *domain.MetadataFetchError
	require.ErrorAs(t, err, &fetchErr)
}

func TestFacebookResolver_Resolve(t *testing.T) {
	client := newTestExtractor(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/fb", r.URL.Path)
		assert.Equal(t, "https://fb.me/abc", r.URL.Query().Get("url"))
		assert.Equal(t, "testkey", r.URL.Query().Get("apikey"))

		w.Write([]byte(`{"data": [
			{"quality": "HD", "url": "https://video.xx/hd.mp4"},
			{"quality": "SD", "url": "https://video.xx/sd.mp4"}
		]}`))
	})

	resolver := NewFacebookResolver(client)
	preview, err := resolver.Resolve(context.Background(), "https://fb.me/abc")

	require.NoError(t, err)

	// Input order and label/value pairing are preserved
	require.Len(t, preview.Resolutions, 2)
	assert.Equal(t, domain.Resolution{Label: "HD", Value: "https://video.xx/hd.mp4"}, preview.Resolutions[0])
	assert.Equal(t, domain.Resolution{Label: "SD", Value: "https://video.xx/sd.mp4"}, preview.Resolutions[1])

	// Placeholder fields: upstream supplies no metadata for these
	assert.Equal(t, "https://fb.me/abc", preview.Title)
	assert.Equal(t, "-", preview.Duration)
	assert.NotEmpty(t, preview.Author)
	assert.NotEmpty(t, preview.Thumbnail)
}

func TestFacebookResolver_UpstreamError(t *testing.T) {
	client := newTestExtractor(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	resolver := NewFacebookResolver(client)
	_, err := resolver.Resolve(context.Background(), "https://fb.me/abc")

	var fetchErr *domain.MetadataFetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, domain.PlatformFacebook, fetchErr.Platform)
}

func TestInstagramResolver_Resolve(t *testing.T) {
	client := newTestExtractor(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ig", r.URL.Path)
		w.Write([]byte(`{"data": [
			{"type": "jpg", "url": "https://cdn.ig/a.jpg"},
			{"type": "mp4", "url": "https://cdn.ig/b.mp4", "thumbnail": "https://cdn.ig/b.jpg"}
		]}`))
	})

	resolver := NewInstagramResolver(client)
	preview, err := resolver.Resolve(context.Background(), "https://instagram.com/p/x")

	require.NoError(t, err)
	require.Len(t, preview.Media, 2)

	// jpg maps to image; a missing thumbnail falls back to the item URL
	assert.Equal(t, domain.MediaImage, preview.Media[0].Kind)
	assert.Equal(t, "https://cdn.ig/a.jpg", preview.Media[0].Thumbnail)

	assert.Equal(t, domain.MediaVideo, preview.Media[1].Kind)
	assert.Equal(t, "https://cdn.ig/b.jpg", preview.Media[1].Thumbnail)

	assert.Equal(t, "Instagram Media (2 files)", preview.Title)
	assert.Equal(t, "Instagram User", preview.Author)
}

func TestTikTokResolver_Resolve(t *testing.T) {
	client := newTestExtractor(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tiktok", r.URL.Path)
		w.Write([]byte(`{"data": {
			"caption": "my dance",
			"author": {
				"nickname": "dancer",
				"avatar_thumb": {"url_list": ["https://cdn.tt/avatar.jpg"]}
			},
			"music": {"title": "original sound", "duration": 42},
			"video": "https://cdn.tt/v.mp4",
			"audio": "https://cdn.tt/a.mp3"
		}}`))
	})

	resolver := NewTikTokResolver(client)
	preview, err := resolver.Resolve(context.Background(), "https://vm.tiktok.com/x")

	require.NoError(t, err)
	assert.Equal(t, "my dance", preview.Title)
	assert.Equal(t, "original sound", preview.Description)
	assert.Equal(t, "dancer", preview.Author)
	assert.Equal(t, "42s", preview.Duration)
	assert.Equal(t, "https://cdn.tt/avatar.jpg", preview.Thumbnail)
	assert.Equal(t, "https://cdn.tt/v.mp4", preview.VideoURL)
	assert.Equal(t, "https://cdn.tt/a.mp3", preview.AudioURL)
}

func TestTikTokResolver_CaptionFallback(t *testing.T) {
	client := newTestExtractor(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": {
			"author": {"nickname": "dancer", "avatar_thumb": {"url_list": []}},
			"music": {"title": "", "duration": 0},
			"video": "https://cdn.tt/v.mp4",
			"audio": ""
		}}`))
	})

	resolver := NewTikTokResolver(client)
	preview, err := resolver.Resolve(context.Background(), "https://vm.tiktok.com/x")

	require.NoError(t, err)
	assert.Equal(t, "TikTok Video", preview.Title)
	assert.Empty(t, preview.Thumbnail)
}
