package bundle

import "path/filepath"

// Layout computes every path inside an app bundle. Paths are a pure function
// of the output directory, the app name, and the target platform; a Layout is
// computed once per run and shared by every pipeline step.
type Layout struct {
	appName  string
	platform Platform
	root     string
}

// NewLayout creates a Layout for one bundling run.
func NewLayout(outputDir, appName string, platform Platform) Layout {
	return Layout{
		appName:  appName,
		platform: platform,
		root:     filepath.Join(outputDir, appName+".app"),
	}
}

// Root returns the bundle root directory ({outputDir}/{AppName}.app).
func (l Layout) Root() string {
	return l.root
}

// contentsDir returns the directory holding PkgInfo and Info.plist.
// macOS nests it under Contents/; the mobile layout is flat.
func (l Layout) contentsDir() string {
	if l.platform.NestedLayout() {
		return filepath.Join(l.root, "Contents")
	}
	return l.root
}

// ExecutablePath returns the destination path of the app executable.
func (l Layout) ExecutablePath() string {
	if l.platform.NestedLayout() {
		return filepath.Join(l.contentsDir(), "MacOS", l.appName)
	}
	return filepath.Join(l.root, l.appName)
}

// ResourcesDir returns the bundle's resource directory.
func (l Layout) ResourcesDir() string {
	return filepath.Join(l.contentsDir(), "Resources")
}

// LibrariesDir returns the directory for bundled dynamic libraries.
func (l Layout) LibrariesDir() string {
	return filepath.Join(l.contentsDir(), "Libraries")
}

// PkgInfoPath returns the path of the fixed 8-byte signature file.
func (l Layout) PkgInfoPath() string {
	return filepath.Join(l.contentsDir(), "PkgInfo")
}

// InfoPlistPath returns the path of the structured metadata document.
func (l Layout) InfoPlistPath() string {
	return filepath.Join(l.contentsDir(), "Info.plist")
}

// AppIconPath returns the canonical icon destination inside Resources.
func (l Layout) AppIconPath() string {
	return filepath.Join(l.ResourcesDir(), "AppIcon.icns")
}
