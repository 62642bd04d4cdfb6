package appgroup

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// XcodeProjectSuffix marks the Xcode project entry in the platform directory.
const XcodeProjectSuffix = ".xcodeproj"

// XcodeProjectRef identifies the generated Xcode project.
type XcodeProjectRef struct {
	FolderPath  string // <platformDir>/<ProjectName>.xcodeproj
	ProjectName string
}

// FindXcodeProject scans the immediate children of platformDir for a
// *.xcodeproj entry. If several match, the last one in directory order wins.
func FindXcodeProject(platformDir string) (XcodeProjectRef, error) {
	entries, err := os.ReadDir(platformDir)
	if err != nil {
		return XcodeProjectRef{}, fmt.Errorf("%w: failed to read platform directory: %w", ErrDiscovery, err)
	}

	var ref XcodeProjectRef
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, XcodeProjectSuffix) {
			ref = XcodeProjectRef{
				FolderPath:  filepath.Join(platformDir, name),
				ProjectName: strings.TrimSuffix(name, XcodeProjectSuffix),
			}
		}
	}

	if ref.FolderPath == "" || ref.ProjectName == "" {
		return XcodeProjectRef{}, fmt.Errorf("%w: could not find an %s folder in: %s", ErrDiscovery, XcodeProjectSuffix, platformDir)
	}

	return ref, nil
}

// SourceDir returns the project's source folder, which holds Info.plist and
// the entitlements files.
func (r XcodeProjectRef) SourceDir() string {
	return filepath.Join(filepath.Dir(r.FolderPath), r.ProjectName)
}

// InfoPlistPath returns <SourceDir>/<ProjectName>-Info.plist.
func (r XcodeProjectRef) InfoPlistPath() string {
	return filepath.Join(r.SourceDir(), r.ProjectName+"-Info.plist")
}
