package appgroup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"howett.net/plist"
)

const entitlementsFixture = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>aps-environment</key>
	<string>development</string>
	<key>com.apple.security.application-groups</key>
	<array>
		<string>group.old.one</string>
		<string>group.old.two</string>
	</array>
</dict>
</plist>
`

const configXMLFixture = `<?xml version='1.0' encoding='utf-8'?>
<widget id="com.example.myapp" version="1.0.0" xmlns="http://www.w3.org/ns/widgets">
    <name>MyApp</name>
</widget>
`

// cordovaProject is a minimal Cordova project tree with a generated iOS platform.
type cordovaProject struct {
	Root      string
	Platform  string
	SourceDir string
}

// newCordovaProject creates a project named MyApp under t.TempDir() with the
// given bundle identifier and config.xml content.
func newCordovaProject(t *testing.T, bundleID, configXML string) cordovaProject {
	t.Helper()

	root := t.TempDir()
	platform := filepath.Join(root, "platforms", "ios")
	src := filepath.Join(platform, "MyApp")

	require.NoError(t, os.MkdirAll(filepath.Join(platform, "MyApp.xcodeproj"), 0755))
	require.NoError(t, os.MkdirAll(src, 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(platform, "CordovaLib"), 0755))

	writeInfoPlist(t, filepath.Join(src, "MyApp-Info.plist"), bundleID)
	for _, name := range EntitlementsFiles {
		require.NoError(t, os.WriteFile(filepath.Join(src, name), []byte(entitlementsFixture), 0644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(root, "config.xml"), []byte(configXML), 0644))

	return cordovaProject{Root: root, Platform: platform, SourceDir: src}
}

func (p cordovaProject) context(args ...string) BuildContext {
	return BuildContext{ProjectRoot: p.Root, Args: args}
}

func writeInfoPlist(t *testing.T, path, bundleID string) {
	t.Helper()
	info := map[string]interface{}{
		"CFBundleIdentifier":  bundleID,
		"CFBundleDisplayName": "MyApp",
		"CFBundleVersion":     "1.0.0",
	}
	data, err := plist.MarshalIndent(info, plist.XMLFormat, "\t")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))
}

// readEntitlements parses the entitlements file at path.
func readEntitlements(t *testing.T, path string) map[string]interface{} {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	ent, _, err := ParseEntitlements(data)
	require.NoError(t, err)
	return ent
}
