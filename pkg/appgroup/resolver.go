package appgroup

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

const (
	// OverrideKey names the argument and config.xml preference that override
	// the computed app group.
	OverrideKey = "IOS_GROUP_IDENTIFIER"

	// BundleSuffix is appended to the bundle identifier for the default group.
	BundleSuffix = ".shareextension"
)

var preferencePattern = regexp.MustCompile(`(?i)name="` + OverrideKey + `"\s+value="([^"]*)"`)

// DefaultAppGroup returns "group.<bundleID>.shareextension".
func DefaultAppGroup(bundleID string) string {
	return "group." + bundleID + BundleSuffix
}

// LookupOverride searches for an override value. An IOS_GROUP_IDENTIFIER=value
// argument takes precedence over a config.xml preference, even when its value
// is empty. The boolean is false when neither source declares the key.
func LookupOverride(args []string, configXML string) (string, bool) {
	prefix := OverrideKey + "="
	for _, arg := range args {
		if strings.HasPrefix(arg, prefix) {
			return strings.TrimPrefix(arg, prefix), true
		}
	}

	if m := preferencePattern.FindStringSubmatch(configXML); m != nil {
		return m[1], true
	}

	return "", false
}

// ResolveAppGroup returns the app group for bundleID. An override found by
// LookupOverride replaces the default only when it is non-empty. The second
// return value reports whether the override was applied.
func ResolveAppGroup(bundleID string, args []string, configXML string) (string, bool) {
	group := DefaultAppGroup(bundleID)
	if value, ok := LookupOverride(args, configXML); ok && value != "" {
		return value, true
	}
	return group, false
}

// ReadConfigXML returns the raw text of config.xml with anything before the
// first '<' removed, which drops a byte order mark or other stray prefix.
func ReadConfigXML(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: failed to read config.xml: %w", ErrRead, err)
	}
	return trimToMarkup(string(data)), nil
}

func trimToMarkup(s string) string {
	if i := strings.IndexByte(s, '<'); i > 0 {
		return s[i:]
	}
	return s
}
