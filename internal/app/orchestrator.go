package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/yourusername/social-grab-go/internal/domain"
	"go.uber.org/zap"
)

// Session is the state a resolution produces: the current URL and its
// preview. It is replaced wholesale on each successful resolution and left
// untouched when a resolution fails, so the previous preview survives a bad
// query.
type Session struct {
	URL     string
	Preview *domain.MediaPreview
}

// PreviewOrchestrator classifies a raw URL, dispatches to the matching
// resolver and maintains the current session. At most one resolution runs at
// a time; overlapping calls are rejected rather than queued.
type PreviewOrchestrator struct {
	resolvers map[domain.Platform]domain.Resolver
	logger    *zap.Logger
	inFlight  chan struct{}
	mu        sync.RWMutex
	session   Session
}

// NewPreviewOrchestrator creates a new preview orchestrator
func NewPreviewOrchestrator(resolvers map[domain.Platform]domain.Resolver, logger *zap.Logger) *PreviewOrchestrator {
	return &PreviewOrchestrator{
		resolvers: resolvers,
		logger:    logger,
		inFlight:  make(chan struct{}, 1),
	}
}

// Resolve classifies the URL, runs the platform resolver and replaces the
// session on success. Fails with ErrUnsupportedURL when no platform matches
// and with ErrResolveInFlight when a resolution is already running.
func (o *PreviewOrchestrator) Resolve(ctx context.Context, rawURL string) (*domain.MediaPreview, error) {
	platform := domain.DetectPlatform(rawURL)
	if platform == domain.PlatformUnknown {
		return nil, domain.ErrUnsupportedURL
	}

	select {
	case o.inFlight <- struct{}{}:
		defer func() { <-o.inFlight }()
	default:
		return nil, domain.ErrResolveInFlight
	}

	requestID := uuid.New().String()
	o.logger.Info("Resolving preview",
		zap.String("request_id", requestID),
		zap.String("url", rawURL),
		zap.String("platform", string(platform)))

	resolver, ok := o.resolvers[platform]
	if !ok {
		return nil, fmt.Errorf("no resolver for platform: %s", platform)
	}

	preview, err := resolver.Resolve(ctx, rawURL)
	if err != nil {
		o.logger.Warn("Preview resolution failed",
			zap.String("request_id", requestID),
			zap.String("platform", string(platform)),
			zap.Error(err))
		return nil, err
	}

	o.mu.Lock()
	o.session = Session{URL: rawURL, Preview: preview}
	o.mu.Unlock()

	o.logger.Info("Preview resolved",
		zap.String("request_id", requestID),
		zap.String("platform", string(platform)),
		zap.String("title", preview.Title))

	return preview, nil
}

// Session returns the current session
func (o *PreviewOrchestrator) Session() Session {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.session
}

// Reset discards the current session, as when navigating away
func (o *PreviewOrchestrator) Reset() {
	o.mu.Lock()
	o.session = Session{}
	o.mu.Unlock()
}
