package appgroup

import (
	"fmt"
	"os"

	"howett.net/plist"
)

// BundleInfo is the subset of <Project>-Info.plist the hook consumes.
type BundleInfo struct {
	BundleIdentifier string `plist:"CFBundleIdentifier"`
}

// ReadBundleInfo reads and parses an Info.plist file.
func ReadBundleInfo(path string) (*BundleInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read Info.plist: %w", ErrRead, err)
	}
	return ParseBundleInfo(data)
}

// ParseBundleInfo parses Info.plist content in any plist format.
func ParseBundleInfo(data []byte) (*BundleInfo, error) {
	var info BundleInfo
	if _, err := plist.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("%w: failed to parse Info.plist: %w", ErrParse, err)
	}
	if info.BundleIdentifier == "" {
		return nil, fmt.Errorf("%w: Info.plist has no CFBundleIdentifier", ErrParse)
	}
	return &info, nil
}
