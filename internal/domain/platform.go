package domain

import "regexp"

// Platform represents the source platform for media resolution
type Platform string

const (
	PlatformYouTube   Platform = "youtube"
	PlatformFacebook  Platform = "facebook"
	PlatformInstagram Platform = "instagram"
	PlatformTikTok    Platform = "tiktok"
	PlatformUnknown   Platform = ""
)

// platformRule pairs a platform with its URL pattern. Rules are checked in
// declaration order; the first match wins.
type platformRule struct {
	platform Platform
	pattern  *regexp.Regexp
}

var platformRules = []platformRule{
	{PlatformYouTube, regexp.MustCompile(`(?i)^(https?://)?(www\.|m\.|vm\.|vt\.)?(youtube\.com|youtu\.?be)/.+$`)},
	{PlatformFacebook, regexp.MustCompile(`(?i)^(https?://)?(www\.|m\.|fb\.)?(facebook\.com|fb\.me)/.+$`)},
	{PlatformInstagram, regexp.MustCompile(`(?i)^(https?://)?(www\.|m\.)?(instagram\.com|instagr\.am)/.+$`)},
	{PlatformTikTok, regexp.MustCompile(`(?i)^(https?://)?(www\.|m\.|vm\.|vt\.)?(tiktok\.com)/.+$`)},
}

// DetectPlatform detects the platform from a URL. It accepts URLs with or
// without a scheme and with common subdomain prefixes (www., m., vm., vt.,
// fb.) as well as short alias domains (youtu.be, fb.me, instagr.am).
// Returns PlatformUnknown when no rule matches.
func DetectPlatform(url string) Platform {
	for _, rule := range platformRules {
		if rule.pattern.MatchString(url) {
			return rule.platform
		}
	}
	return PlatformUnknown
}

// ValidatePlatform checks if a platform is one of the supported sources
func ValidatePlatform(platform Platform) bool {
	switch platform {
	case PlatformYouTube, PlatformFacebook, PlatformInstagram, PlatformTikTok:
		return true
	}
	return false
}

// SupportedPlatforms returns the supported platforms in classification order
func SupportedPlatforms() []Platform {
	return []Platform{PlatformYouTube, PlatformFacebook, PlatformInstagram, PlatformTikTok}
}
