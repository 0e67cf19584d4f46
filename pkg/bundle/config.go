package bundle

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/parcelhq/appbundle/pkg/manifest"
)

// ConfigFileName is the per-package configuration file, located at the
// package root.
const ConfigFileName = "appbundle.yml"

// AppConfiguration describes one app's identity and packaging intent. It is
// loaded once per bundling invocation and read-only for the duration of the
// pipeline.
type AppConfiguration struct {
	// Identifier is the reverse-DNS bundle identifier.
	Identifier string `yaml:"identifier"`
	// Product names the executable artifact to place in the bundle. It
	// must exist in the build products directory at bundling time.
	Product string `yaml:"product"`
	Version string `yaml:"version"`
	// Category is an optional LSApplicationCategoryType value.
	Category string `yaml:"category,omitempty"`
	// MinimumMacOSVersion and MinimumIOSVersion are optional OS floors.
	// When empty they are resolved from the package manifest.
	MinimumMacOSVersion string `yaml:"minimum_macos_version,omitempty"`
	MinimumIOSVersion   string `yaml:"minimum_ios_version,omitempty"`
	// Icon is an optional icon source path relative to the package root.
	Icon string `yaml:"icon,omitempty"`
	// ExtraPlistEntries extend the generated Info.plist. Entries here win
	// over generated defaults.
	ExtraPlistEntries map[string]any `yaml:"extra_plist_entries,omitempty"`
}

// Configuration is a package's full bundler configuration: one entry per app.
type Configuration struct {
	Apps map[string]AppConfiguration `yaml:"apps"`
}

// LoadConfiguration reads and parses the configuration file at the package
// root.
func LoadConfiguration(packageRoot string) (*Configuration, error) {
	path := filepath.Join(packageRoot, ConfigFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading configuration: %w", err)
	}

	var config Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(config.Apps) == 0 {
		return nil, fmt.Errorf("%s declares no apps", path)
	}

	for name, app := range config.Apps {
		if app.Identifier == "" {
			return nil, fmt.Errorf("app %q: identifier is required", name)
		}
		if app.Product == "" {
			return nil, fmt.Errorf("app %q: product is required", name)
		}
		if app.Version == "" {
			return nil, fmt.Errorf("app %q: version is required", name)
		}
	}

	return &config, nil
}

// App selects an app by name. An empty name selects the sole configured app;
// with several apps configured the name is required.
func (c *Configuration) App(name string) (string, AppConfiguration, error) {
	if name == "" {
		if len(c.Apps) == 1 {
			for n, app := range c.Apps {
				return n, app, nil
			}
		}
		return "", AppConfiguration{}, fmt.Errorf(
			"multiple apps configured (%v); specify one", c.appNames())
	}

	app, ok := c.Apps[name]
	if !ok {
		return "", AppConfiguration{}, fmt.Errorf(
			"no app named %q (configured: %v)", name, c.appNames())
	}
	return name, app, nil
}

func (c *Configuration) appNames() []string {
	names := make([]string, 0, len(c.Apps))
	for name := range c.Apps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MinimumOSVersion returns the configured OS floor for the platform, or ""
// when none is set.
func (a AppConfiguration) MinimumOSVersion(platform Platform) string {
	switch platform {
	case PlatformIOS:
		return a.MinimumIOSVersion
	default:
		return a.MinimumMacOSVersion
	}
}

// ResolveMinimumOSVersions fills empty minimum-OS fields from the package
// manifest's platform requirements. Explicitly configured values are kept.
func (a *AppConfiguration) ResolveMinimumOSVersions(m *manifest.Manifest) {
	if m == nil {
		return
	}
	if a.MinimumMacOSVersion == "" {
		if v, ok := m.MinimumVersion(PlatformMacOS.ManifestName()); ok {
			a.MinimumMacOSVersion = v
		}
	}
	if a.MinimumIOSVersion == "" {
		if v, ok := m.MinimumVersion(PlatformIOS.ManifestName()); ok {
			a.MinimumIOSVersion = v
		}
	}
}
