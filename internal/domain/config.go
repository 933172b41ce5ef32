package domain

import "time"

// Config represents the application configuration
type Config struct {
	Endpoints    EndpointsConfig    `mapstructure:"endpoints"`
	Credentials  CredentialsConfig  `mapstructure:"credentials"`
	HTTP         HTTPConfig         `mapstructure:"http"`
	Download     DownloadConfig     `mapstructure:"download"`
	Notification NotificationConfig `mapstructure:"notification"`
	Logging      LoggingConfig      `mapstructure:"logging"`
}

// EndpointsConfig contains the upstream service base URLs
type EndpointsConfig struct {
	YouTubeAPI   string `mapstructure:"youtube_api"`   // YouTube Data API v3 base
	ExtractorAPI string `mapstructure:"extractor_api"` // fb/ig/tiktok/youtube extractor base
}

// CredentialsConfig carries the API keys sent as query parameters
type CredentialsConfig struct {
	YouTubeKey   string `mapstructure:"youtube_key"`
	ExtractorKey string `mapstructure:"extractor_key"`
}

// HTTPConfig contains HTTP client configuration
type HTTPConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

// DownloadConfig contains download-related configuration
type DownloadConfig struct {
	Dir string `mapstructure:"dir"` // where saved assets land
}

// NotificationConfig contains desktop notification configuration
type NotificationConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Method  string `mapstructure:"method"` // osascript, notify-send, etc.
}

// LoggingConfig contains logging-related configuration
type LoggingConfig struct {
	Level      string `mapstructure:"level"`       // debug, info, warn, error
	Format     string `mapstructure:"format"`      // json, console
	OutputPath string `mapstructure:"output_path"` // stdout, stderr, or file path
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Endpoints: EndpointsConfig{
			YouTubeAPI:   "https://www.googleapis.com/youtube/v3",
			ExtractorAPI: "https://api.neoxr.eu/api",
		},
		Credentials: CredentialsConfig{},
		HTTP: HTTPConfig{
			Timeout: 30 * time.Second,
		},
		Download: DownloadConfig{
			Dir: "$HOME/Downloads/social-grab",
		},
		Notification: NotificationConfig{
			Enabled: true,
			Method:  "notify-send",
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "console",
			OutputPath: "stdout",
		},
	}
}
