package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/spf13/cobra"

	"github.com/parcelhq/appbundle/pkg/bundle"
	"github.com/parcelhq/appbundle/pkg/dylib"
	"github.com/parcelhq/appbundle/pkg/icns"
	"github.com/parcelhq/appbundle/pkg/logging"
	"github.com/parcelhq/appbundle/pkg/manifest"
	"github.com/parcelhq/appbundle/pkg/plist"
	"github.com/parcelhq/appbundle/pkg/resources"
)

const version = "0.2.0"

var (
	packageRoot    string
	productsDir    string
	outputDir      string
	platformName   string
	manifestPath   string
	logLevel       string
	universal      bool
	builtWithXcode bool
	versionFlag    bool
	rootCmd        *cobra.Command
)

func getBuildTimestamp() string {
	// Try to get vcs.time from build info
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.time" {
				if t, err := time.Parse(time.RFC3339, setting.Value); err == nil {
					return t.UTC().Format(time.RFC3339)
				}
			}
		}
	}
	// Fallback to binary modification time
	if exePath, err := os.Executable(); err == nil {
		if stat, err := os.Stat(exePath); err == nil {
			return stat.ModTime().UTC().Format(time.RFC3339)
		}
	}
	return time.Now().UTC().Format(time.RFC3339)
}

func init() {
	rootCmd = &cobra.Command{
		Use:   "appbundle [app]",
		Short: "Assemble app bundles from build products",
		Long:  `Assemble macOS and iOS app bundles from build products and a declarative app configuration`,
		Args:  cobra.MaximumNArgs(1),
		RunE:  assembleBundle,
		// Failures are logged with context already; keep cobra quiet.
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().StringVar(&packageRoot, "package-root", ".", "Package root directory containing "+bundle.ConfigFileName)
	rootCmd.Flags().StringVarP(&productsDir, "products-dir", "p", "", "Directory containing build products (required)")
	rootCmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Output directory for the bundle (required)")
	rootCmd.Flags().StringVar(&platformName, "platform", "macos", "Target platform (macos, ios)")
	rootCmd.Flags().StringVar(&manifestPath, "manifest", "", "Path to a dumped package manifest for minimum-OS resolution")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	rootCmd.Flags().BoolVar(&universal, "universal", false, "Products were built as a universal binary")
	rootCmd.Flags().BoolVar(&builtWithXcode, "built-with-xcode", false, "Products were built by xcodebuild")
	rootCmd.Flags().BoolVarP(&versionFlag, "version", "V", false, "Show version information")

	if err := rootCmd.MarkFlagRequired("products-dir"); err != nil {
		panic(err)
	}
	if err := rootCmd.MarkFlagRequired("output-dir"); err != nil {
		panic(err)
	}
}

func main() {
	// Handle --version or -V before cobra parses other flags
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-V") {
		fmt.Printf("appbundle %s\n", version)
		fmt.Printf("Built: %s\n", getBuildTimestamp())
		os.Exit(0)
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func assembleBundle(cmd *cobra.Command, args []string) error {
	if versionFlag {
		fmt.Printf("appbundle %s\n", version)
		fmt.Printf("Built: %s\n", getBuildTimestamp())
		return nil
	}

	level := logLevel
	if level == "" {
		level = logging.GetLogLevel()
	}
	logger := logging.NewLogger("appbundle", level, os.Stderr)

	appName := ""
	if len(args) > 0 {
		appName = args[0]
	}

	platform, err := bundle.ParsePlatform(platformName)
	if err != nil {
		logger.Error("❌ invalid platform", "error", err)
		return err
	}

	configuration, err := bundle.LoadConfiguration(packageRoot)
	if err != nil {
		logger.Error("❌ failed to load configuration", "error", err)
		return err
	}

	name, app, err := configuration.App(appName)
	if err != nil {
		logger.Error("❌ failed to select app", "error", err)
		return err
	}

	if manifestPath != "" {
		m, err := manifest.Load(manifestPath)
		if err != nil {
			logger.Error("❌ failed to load package manifest", "error", err)
			return err
		}
		app.ResolveMinimumOSVersions(m)
		logger.Debug("resolved minimum OS versions from manifest",
			"package", m.Package.Name,
			"macos", app.MinimumMacOSVersion,
			"ios", app.MinimumIOSVersion)
	}

	assembler := &bundle.Assembler{
		Logger:    logger,
		Encoder:   plist.NewEncoder(),
		Converter: icns.NewConverter(),
		Resources: resources.Copier{Logger: logger},
		Libraries: dylib.Copier{Logger: logger},
	}

	flags := bundle.Flags{
		BuiltWithXcode: builtWithXcode,
		Universal:      universal,
	}
	if err := assembler.Assemble(name, app, packageRoot, productsDir, outputDir, platform, flags); err != nil {
		logger.Error("❌ bundling failed", "app", name, "error", err)
		return err
	}
	return nil
}
