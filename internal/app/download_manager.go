package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/yourusername/social-grab-go/internal/domain"
	"github.com/yourusername/social-grab-go/internal/infrastructure"
	"go.uber.org/zap"
)

// DownloadManager runs the dispatch side: it turns a selected variant into a
// final asset URL and hands it to the saver. At most one download runs at a
// time; overlapping calls are rejected rather than queued. A failed download
// never touches the current preview.
type DownloadManager struct {
	dispatchers map[domain.Platform]domain.Dispatcher
	saver       *infrastructure.AssetSaver
	notifier    *infrastructure.NotificationService
	logger      *zap.Logger
	inFlight    chan struct{}
}

// NewDownloadManager creates a new download manager
func NewDownloadManager(
	dispatchers map[domain.Platform]domain.Dispatcher,
	saver *infrastructure.AssetSaver,
	notifier *infrastructure.NotificationService,
	logger *zap.Logger,
) *DownloadManager {
	return &DownloadManager{
		dispatchers: dispatchers,
		saver:       saver,
		notifier:    notifier,
		logger:      logger,
		inFlight:    make(chan struct{}, 1),
	}
}

// Dispatch resolves the final asset URL and suggested filename for the
// selected variant without saving anything
func (dm *DownloadManager) Dispatch(ctx context.Context, platform domain.Platform, rawURL string, preview *domain.MediaPreview, selector domain.Selector) (*domain.DownloadResult, error) {
	select {
	case dm.inFlight <- struct{}{}:
		defer func() { <-dm.inFlight }()
	default:
		return nil, domain.ErrDownloadInFlight
	}

	return dm.dispatch(ctx, platform, rawURL, preview, selector)
}

// Download resolves the final asset and saves it to the download directory,
// sending a notification either way. Returns the path of the saved file.
func (dm *DownloadManager) Download(ctx context.Context, platform domain.Platform, rawURL string, preview *domain.MediaPreview, selector domain.Selector) (string, error) {
	select {
	case dm.inFlight <- struct{}{}:
		defer func() { <-dm.inFlight }()
	default:
		return "", domain.ErrDownloadInFlight
	}

	result, err := dm.dispatch(ctx, platform, rawURL, preview, selector)
	if err != nil {
		if dm.notifier != nil {
			dm.notifier.NotifyDownloadFailed(platform, err)
		}
		return "", err
	}

	if dm.notifier != nil {
		dm.notifier.NotifyDownloadStarted(platform, result.SuggestedFilename)
	}

	path, err := dm.saver.Save(ctx, platform, result)
	if err != nil {
		dm.logger.Error("Asset save failed",
			zap.String("platform", string(platform)),
			zap.String("asset_url", result.AssetURL),
			zap.Error(err))
		if dm.notifier != nil {
			dm.notifier.NotifyDownloadFailed(platform, err)
		}
		return "", err
	}

	dm.logger.Info("Download completed",
		zap.String("platform", string(platform)),
		zap.String("file", path))

	if dm.notifier != nil {
		dm.notifier.NotifyDownloadCompleted(platform, path)
	}

	return path, nil
}

func (dm *DownloadManager) dispatch(ctx context.Context, platform domain.Platform, rawURL string, preview *domain.MediaPreview, selector domain.Selector) (*domain.DownloadResult, error) {
	if preview == nil {
		return nil, fmt.Errorf("no preview resolved for %s", rawURL)
	}

	dispatcher, ok := dm.dispatchers[platform]
	if !ok {
		return nil, fmt.Errorf("no dispatcher for platform: %s", platform)
	}

	requestID := uuid.New().String()
	dm.logger.Info("Dispatching download",
		zap.String("request_id", requestID),
		zap.String("url", rawURL),
		zap.String("platform", string(platform)),
		zap.String("selector", selector.String()))

	result, err := dispatcher.Dispatch(ctx, rawURL, preview, selector)
	if err != nil {
		dm.logger.Warn("Download dispatch failed",
			zap.String("request_id", requestID),
			zap.String("platform", string(platform)),
			zap.Error(err))
		return nil, err
	}

	dm.logger.Info("Asset resolved",
		zap.String("request_id", requestID),
		zap.String("platform", string(platform)),
		zap.String("filename", result.SuggestedFilename))

	return result, nil
}
