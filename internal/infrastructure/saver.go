package infrastructure

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/yourusername/social-grab-go/internal/domain"
)

// AssetSaver streams a resolved asset URL to the local download directory.
// This is the file-save step performed by the host after dispatch; the
// dispatchers themselves never touch the filesystem.
type AssetSaver struct {
	downloadDir string
	http        *http.Client
}

// NewAssetSaver creates a new asset saver
func NewAssetSaver(downloadDir string, timeout time.Duration) *AssetSaver {
	return &AssetSaver{
		downloadDir: downloadDir,
		http: &http.Client{
			Timeout: timeout,
		},
	}
}

// Save downloads the asset and writes it under the suggested filename.
// Returns the path of the written file.
func (s *AssetSaver) Save(ctx context.Context, platform domain.Platform, result *domain.DownloadResult) (string, error) {
	if err := os.MkdirAll(s.downloadDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create download directory: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, result.AssetURL, nil)
	if err != nil {
		return "", &domain.DownloadTransportError{Platform: platform, Cause: err}
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return "", &domain.DownloadTransportError{Platform: platform, Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &domain.DownloadTransportError{
			Platform: platform,
			Cause:    fmt.Errorf("asset status %d", resp.StatusCode),
		}
	}

	destPath := filepath.Join(s.downloadDir, SanitizeFilename(result.SuggestedFilename))
	file, err := os.Create(destPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, resp.Body); err != nil {
		os.Remove(destPath)
		return "", &domain.DownloadTransportError{Platform: platform, Cause: err}
	}

	return destPath, nil
}

// SanitizeFilename strips characters that are unsafe in filenames. Titles
// come straight from upstream metadata and can contain anything.
func SanitizeFilename(name string) string {
	replacer := strings.NewReplacer(
		"/", "_",
		"\\", "_",
		":", "_",
		"*", "_",
		"?", "_",
		"\"", "_",
		"<", "_",
		">", "_",
		"|", "_",
		"\x00", "",
	)
	cleaned := strings.TrimSpace(replacer.Replace(name))
	if cleaned == "" {
		cleaned = "download"
	}
	return cleaned
}
