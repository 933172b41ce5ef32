package infrastructure

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/yourusername/social-grab-go/internal/domain"
	"go.uber.org/zap"
)

// NotificationService sends desktop notifications after downloads finish.
// It fills the role a toast popup plays in a browser client.
type NotificationService struct {
	config *domain.NotificationConfig
	logger *zap.Logger
}

// NewNotificationService creates a new notification service
func NewNotificationService(config *domain.NotificationConfig, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		config: config,
		logger: logger,
	}
}

// NotifyDownloadStarted notifies that a download has begun
func (n *NotificationService) NotifyDownloadStarted(platform domain.Platform, filename string) {
	n.Send("Download started", fmt.Sprintf("%s: %s", platform, filename))
}

// NotifyDownloadCompleted notifies that a download finished successfully
func (n *NotificationService) NotifyDownloadCompleted(platform domain.Platform, path string) {
	n.Send("Download complete", fmt.Sprintf("%s: saved to %s", platform, path))
}

// NotifyDownloadFailed notifies that a download failed
func (n *NotificationService) NotifyDownloadFailed(platform domain.Platform, err error) {
	n.Send("Download failed", fmt.Sprintf("%s: %v", platform, err))
}

// Send sends a notification
func (n *NotificationService) Send(title, message string) error {
	if !n.config.Enabled {
		n.logger.Debug("Notifications disabled, skipping",
			zap.String("title", title),
			zap.String("message", message))
		return nil
	}

	switch n.config.Method {
	case "osascript":
		return n.sendOSAScript(title, message)
	case "notify-send":
		return n.sendNotifySend(title, message)
	default:
		n.logger.Warn("Unknown notification method", zap.String("method", n.config.Method))
		return nil
	}
}

// escapeAppleScript escapes a string for embedding in a double-quoted
// AppleScript literal. Titles and messages carry arbitrary upstream metadata.
func escapeAppleScript(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}

// sendOSAScript sends notification using macOS osascript
func (n *NotificationService) sendOSAScript(title, message string) error {
	script := fmt.Sprintf(`display notification "%s" with title "%s"`,
		escapeAppleScript(message), escapeAppleScript(title))
	cmd := exec.Command("osascript", "-e", script)

	if err := cmd.Run(); err != nil {
		n.logger.Error("Failed to send notification",
			zap.String("method", "osascript"),
			zap.Error(err))
		return err
	}

	return nil
}

// sendNotifySend sends notification using Linux notify-send
func (n *NotificationService) sendNotifySend(title, message string) error {
	cmd := exec.Command("notify-send", title, message)

	if err := cmd.Run(); err != nil {
		n.logger.Error("Failed to send notification",
			zap.String("method", "notify-send"),
			zap.Error(err))
		return err
	}

	return nil
}
