package bundle

import (
	"fmt"
	"strings"
)

// Platform identifies the bundle target platform. The platform decides the
// bundle's internal layout and which minimum-OS plist key is emitted.
type Platform string

const (
	PlatformMacOS Platform = "macOS"
	PlatformIOS   Platform = "iOS"
)

// Platforms lists every supported target platform.
var Platforms = []Platform{PlatformMacOS, PlatformIOS}

// ParsePlatform parses a platform name as given on the command line.
// Matching is case-insensitive on the canonical manifest name.
func ParsePlatform(s string) (Platform, error) {
	name := strings.ToLower(s)
	for _, p := range Platforms {
		if name == p.ManifestName() {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown platform: %q", s)
}

// ManifestName returns the platform name as it appears in a package
// manifest's platforms list.
func (p Platform) ManifestName() string {
	switch p {
	case PlatformMacOS:
		return "macos"
	case PlatformIOS:
		return "ios"
	default:
		return string(p)
	}
}

// SDKName returns the CFBundleSupportedPlatforms value for the platform.
func (p Platform) SDKName() string {
	switch p {
	case PlatformIOS:
		return "iPhoneOS"
	default:
		return "MacOSX"
	}
}

// NestedLayout reports whether bundles for this platform nest their contents
// under a Contents/ subdirectory with a separate MacOS executable directory.
// The mobile platforms use a flat layout.
func (p Platform) NestedLayout() bool {
	return p == PlatformMacOS
}

func (p Platform) String() string {
	return string(p)
}
