package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced to the presentation layer
var (
	// ErrUnsupportedURL means no platform rule matched the input
	ErrUnsupportedURL = errors.New("unsupported URL: expected a YouTube, Facebook, Instagram or TikTok link")

	// ErrResolveInFlight means a preview resolution is already running
	ErrResolveInFlight = errors.New("a preview resolution is already in progress")

	// ErrDownloadInFlight means a download dispatch is already running
	ErrDownloadInFlight = errors.New("a download is already in progress")
)

// InvalidURLError means the URL matched a platform but a required sub-token
// (e.g. the YouTube video id) is missing
type InvalidURLError struct {
	Platform Platform
	URL      string
}

func (e *InvalidURLError) Error() string {
	return fmt.Sprintf("invalid %s URL: %s", e.Platform, e.URL)
}

// MetadataFetchError means the metadata call failed: network error, non-2xx
// status, or a response missing required fields
type MetadataFetchError struct {
	Platform Platform
	Cause    error
}

func (e *MetadataFetchError) Error() string {
	return fmt.Sprintf("failed to fetch %s metadata: %v", e.Platform, e.Cause)
}

func (e *MetadataFetchError) Unwrap() error {
	return e.Cause
}

// NoAssetAvailableError means the selected variant has no resolvable
// download URL
type NoAssetAvailableError struct {
	Platform Platform
	Selector Selector
}

func (e *NoAssetAvailableError) Error() string {
	return fmt.Sprintf("no %s asset available for %s", e.Platform, e.Selector)
}

// DownloadTransportError means the download-specific network call failed
type DownloadTransportError struct {
	Platform Platform
	Cause    error
}

func (e *DownloadTransportError) Error() string {
	return fmt.Sprintf("%s download request failed: %v", e.Platform, e.Cause)
}

func (e *DownloadTransportError) Unwrap() error {
	return e.Cause
}
