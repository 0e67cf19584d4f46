package bundle

import (
	"fmt"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
)

// ResourceCopier copies resource bundles from the build products directory
// into the bundle's Resources directory.
type ResourceCopier interface {
	CopyResources(productsDir, resourcesDir string) error
}

// LibraryCopier copies dynamic libraries the executable depends on into the
// bundle's Libraries directory.
type LibraryCopier interface {
	CopyLibraries(productsDir, librariesDir string) error
}

// Flags carries build-origin options forwarded from the CLI. Both are
// accepted for every platform and ignored where they do not apply; the flat
// mobile layout is unaffected by either.
type Flags struct {
	BuiltWithXcode bool
	Universal      bool
}

// Assembler runs the bundle assembly pipeline. It holds no per-run state;
// every field is an injected collaborator and all run inputs arrive as
// arguments to Assemble.
type Assembler struct {
	Logger    hclog.Logger
	Encoder   MetadataEncoder
	Converter IconConverter
	Resources ResourceCopier
	Libraries LibraryCopier
}

// Assemble builds the app bundle at {outputDir}/{appName}.app from the build
// products and the app configuration. Steps run in a fixed order and the
// first failure is returned as a StepError; nothing is rolled back, the next
// run's scaffold wipes whatever a failed run left behind.
func (a *Assembler) Assemble(appName string, config AppConfiguration, packageRoot, productsDir, outputDir string, platform Platform, flags Flags) error {
	logger := a.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	layout := NewLayout(outputDir, appName, platform)
	executable := filepath.Join(productsDir, config.Product)

	iconSource := ""
	if config.Icon != "" {
		iconSource = filepath.Join(packageRoot, config.Icon)
	}

	logger.Info("assembling app bundle",
		"app", appName,
		"platform", platform,
		"bundle", layout.Root())
	if flags.Universal || flags.BuiltWithXcode {
		logger.Debug("build-origin flags",
			"universal", flags.Universal,
			"xcode", flags.BuiltWithXcode)
	}

	steps := []struct {
		name string
		run  func() error
	}{
		{"scaffold directories", func() error {
			return Scaffold(layout)
		}},
		{"place executable", func() error {
			return PlaceExecutable(executable, layout.ExecutablePath())
		}},
		{"write metadata", func() error {
			return WriteMetadata(layout, appName, config, a.Encoder)
		}},
		{"resolve icon", func() error {
			return ResolveIcon(iconSource, layout.ResourcesDir(), a.Converter)
		}},
		{"copy resources", func() error {
			return a.Resources.CopyResources(productsDir, layout.ResourcesDir())
		}},
		{"copy libraries", func() error {
			return a.Libraries.CopyLibraries(productsDir, layout.LibrariesDir())
		}},
	}

	for _, step := range steps {
		logger.Debug("running step", "step", step.name)
		if err := step.run(); err != nil {
			logger.Error("❌ bundle step failed", "step", step.name, "error", err)
			return &StepError{Step: step.name, Err: err}
		}
	}

	logger.Info("✅ bundle assembled", "bundle", layout.Root())
	return nil
}

// AssembleApp selects the app from the loaded configuration and runs the
// pipeline. Minimum-OS resolution against a package manifest happens before
// this point.
func (a *Assembler) AssembleApp(appName string, configuration *Configuration, packageRoot, productsDir, outputDir string, platform Platform, flags Flags) error {
	name, app, err := configuration.App(appName)
	if err != nil {
		return fmt.Errorf("selecting app: %w", err)
	}
	return a.Assemble(name, app, packageRoot, productsDir, outputDir, platform, flags)
}
