package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/social-grab-go/internal/domain"
	"github.com/yourusername/social-grab-go/internal/infrastructure"
	"go.uber.org/zap"
)

// stubDispatcher returns a canned result or error, optionally blocking until
// released
type stubDispatcher struct {
	platform domain.Platform
	result   *domain.DownloadResult
	err      error
	started  chan struct{}
	release  chan struct{}
}

func (s *stubDispatcher) Dispatch(ctx context.Context, url string, preview *domain.MediaPreview, selector domain.Selector) (*domain.DownloadResult, error) {
	if s.started != nil {
		select {
		case <-s.started:
		default:
			close(s.started)
		}
	}
	if s.release != nil {
		<-s.release
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func (s *stubDispatcher) Platform() domain.Platform {
	return s.platform
}

func newTestDownloadManager(t *testing.T, dispatchers map[domain.Platform]domain.Dispatcher) *DownloadManager {
	saver := infrastructure.NewAssetSaver(t.TempDir(), 5*time.Second)
	return NewDownloadManager(dispatchers, saver, nil, zap.NewNop())
}

func TestDownloadManager_Dispatch(t *testing.T) {
	result := &domain.DownloadResult{AssetURL: "https://dl.xx/v.mp4", SuggestedFilename: "v.mp4"}
	dm := newTestDownloadManager(t, map[domain.Platform]domain.Dispatcher{
		domain.PlatformTikTok: &stubDispatcher{platform: domain.PlatformTikTok, result: result},
	})

	got, err := dm.Dispatch(context.Background(), domain.PlatformTikTok, "https://vm.tiktok.com/x", &domain.MediaPreview{}, domain.SelectVideo(""))

	require.NoError(t, err)
	assert.Equal(t, result, got)
}

func TestDownloadManager_NoPreview(t *testing.T) {
	dm := newTestDownloadManager(t, nil)

	_, err := dm.Dispatch(context.Background(), domain.PlatformTikTok, "https://vm.tiktok.com/x", nil, domain.SelectVideo(""))

	assert.Error(t, err)
}

func TestDownloadManager_NoAssetLeavesPreviewUnchanged(t *testing.T) {
	dispatchErr := &domain.NoAssetAvailableError{Platform: domain.PlatformTikTok, Selector: domain.SelectAudio()}
	dm := newTestDownloadManager(t, map[domain.Platform]domain.Dispatcher{
		domain.PlatformTikTok: &stubDispatcher{platform: domain.PlatformTikTok, err: dispatchErr},
	})

	preview := &domain.MediaPreview{Title: "my dance", VideoURL: "https://cdn.tt/v.mp4"}
	_, err := dm.Dispatch(context.Background(), domain.PlatformTikTok, "https://vm.tiktok.com/x", preview, domain.SelectAudio())

	var noAsset *domain.NoAssetAvailableError
	require.ErrorAs(t, err, &noAsset)
	assert.Equal(t, &domain.MediaPreview{Title: "my dance", VideoURL: "https://cdn.tt/v.mp4"}, preview)
}

func TestDownloadManager_RejectsOverlap(t *testing.T) {
	blocking := &stubDispatcher{
		platform: domain.PlatformTikTok,
		result:   &domain.DownloadResult{AssetURL: "https://dl.xx/v.mp4", SuggestedFilename: "v.mp4"},
		started:  make(chan struct{}),
		release:  make(chan struct{}),
	}
	dm := newTestDownloadManager(t, map[domain.Platform]domain.Dispatcher{
		domain.PlatformTikTok: blocking,
	})

	done := make(chan error, 1)
	go func() {
		_, err := dm.Dispatch(context.Background(), domain.PlatformTikTok, "https://vm.tiktok.com/x", &domain.MediaPreview{}, domain.SelectVideo(""))
		done <- err
	}()

	<-blocking.started

	_, err := dm.Dispatch(context.Background(), domain.PlatformTikTok, "https://vm.tiktok.com/x", &domain.MediaPreview{}, domain.SelectVideo(""))
	assert.ErrorIs(t, err, domain.ErrDownloadInFlight)

	close(blocking.release)
	require.NoError(t, <-done)
}

func TestDownloadManager_DownloadSavesAsset(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("asset bytes"))
	}))
	defer server.Close()

	dm := newTestDownloadManager(t, map[domain.Platform]domain.Dispatcher{
		domain.PlatformTikTok: &stubDispatcher{
			platform: domain.PlatformTikTok,
			result:   &domain.DownloadResult{AssetURL: server.URL + "/v.mp4", SuggestedFilename: "my dance.mp4"},
		},
	})

	path, err := dm.Download(context.Background(), domain.PlatformTikTok, "https://vm.tiktok.com/x", &domain.MediaPreview{Title: "my dance"}, domain.SelectVideo(""))

	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "asset bytes", string(data))
}
