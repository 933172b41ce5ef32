package app

import (
	"github.com/yourusername/social-grab-go/internal/domain"
	"github.com/yourusername/social-grab-go/internal/infrastructure"
	"go.uber.org/zap"
)

// App wires the resolution and download sides together from configuration
type App struct {
	Config    *domain.Config
	Previews  *PreviewOrchestrator
	Downloads *DownloadManager
}

// New builds the application: one extractor client shared by the Facebook,
// Instagram, TikTok and YouTube-download paths, a dedicated YouTube Data API
// client for metadata, and the per-platform resolver/dispatcher maps.
func New(config *domain.Config, logger *zap.Logger) *App {
	extractor := infrastructure.NewExtractorClient(
		config.Endpoints.ExtractorAPI,
		config.Credentials.ExtractorKey,
		config.HTTP.Timeout,
	)

	resolvers := map[domain.Platform]domain.Resolver{
		domain.PlatformYouTube: infrastructure.NewYouTubeResolver(
			config.Endpoints.YouTubeAPI,
			config.Credentials.YouTubeKey,
			config.HTTP.Timeout,
		),
		domain.PlatformFacebook:  infrastructure.NewFacebookResolver(extractor),
		domain.PlatformInstagram: infrastructure.NewInstagramResolver(extractor),
		domain.PlatformTikTok:    infrastructure.NewTikTokResolver(extractor),
	}

	dispatchers := map[domain.Platform]domain.Dispatcher{
		domain.PlatformYouTube:   infrastructure.NewYouTubeDispatcher(extractor),
		domain.PlatformFacebook:  infrastructure.NewFacebookDispatcher(extractor),
		domain.PlatformInstagram: infrastructure.NewInstagramDispatcher(),
		domain.PlatformTikTok:    infrastructure.NewTikTokDispatcher(),
	}

	saver := infrastructure.NewAssetSaver(config.Download.Dir, config.HTTP.Timeout)
	notifier := infrastructure.NewNotificationService(&config.Notification, logger)

	return &App{
		Config:    config,
		Previews:  NewPreviewOrchestrator(resolvers, logger),
		Downloads: NewDownloadManager(dispatchers, saver, notifier, logger),
	}
}
