package utils

import "strings"

const (
	PlatformIOS     = "ios"
	PlatformAndroid = "android"
	PlatformWeb     = "web"
)

// Platform knows which maps application the current client opens.
type Platform struct {
	name string
}

func NewPlatform(name string) *Platform {
	switch strings.ToLower(name) {
	case PlatformIOS, PlatformAndroid:
		return &Platform{name: strings.ToLower(name)}
	default:
		return &Platform{name: PlatformWeb}
	}
}

// DetectPlatform maps a User-Agent header onto one of the Platform* names.
func DetectPlatform(userAgent string) string {
	ua := strings.ToLower(userAgent)
	switch {
	case strings.Contains(ua, "iphone"), strings.Contains(ua, "ipad"), strings.Contains(ua, "ipod"):
		return PlatformIOS
	case strings.Contains(ua, "android"):
		return PlatformAndroid
	default:
		return PlatformWeb
	}
}

func (p *Platform) Name() string { return p.name }

// MapsProviderURL prefixes an already encoded query fragment with the maps
// provider of the platform.
func (p *Platform) MapsProviderURL(query string) string {
	if p.name == PlatformIOS {
		return "http://maps.apple.com/?" + query
	}
	return "https://maps.google.com/maps?" + query
}
