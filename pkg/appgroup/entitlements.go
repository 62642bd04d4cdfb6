package appgroup

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"howett.net/plist"
)

// EntitlementsKey is the entitlement that lists the app groups.
const EntitlementsKey = "com.apple.security.application-groups"

// EntitlementsFiles are patched in this order inside the project source folder.
var EntitlementsFiles = []string{
	"Entitlements-Debug.plist",
	"Entitlements-Release.plist",
}

// ParseEntitlements parses an entitlements plist into a map and reports the
// plist format it was stored in. Empty input is rejected.
func ParseEntitlements(data []byte) (map[string]interface{}, int, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, 0, fmt.Errorf("%w: entitlements file is empty", ErrParse)
	}

	var entitlements map[string]interface{}
	format, err := plist.Unmarshal(data, &entitlements)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: failed to parse entitlements: %w", ErrParse, err)
	}
	if entitlements == nil {
		entitlements = make(map[string]interface{})
	}
	return entitlements, format, nil
}

// MarshalEntitlements serializes entitlements in the given plist format.
// XML output is tab indented, matching what Xcode writes.
func MarshalEntitlements(entitlements map[string]interface{}, format int) ([]byte, error) {
	data, err := plist.MarshalIndent(entitlements, format, "\t")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entitlements: %w", err)
	}
	return data, nil
}

// SetAppGroup replaces the app groups entitlement with the single given group.
// Any previous value is discarded.
func SetAppGroup(entitlements map[string]interface{}, group string) {
	entitlements[EntitlementsKey] = []interface{}{group}
}

// AppGroups returns the string values stored under EntitlementsKey.
func AppGroups(entitlements map[string]interface{}) []string {
	raw, ok := entitlements[EntitlementsKey].([]interface{})
	if !ok {
		return nil
	}
	groups := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			groups = append(groups, s)
		}
	}
	return groups
}

// PatchEntitlementsFile rewrites the entitlements file at path so that it
// grants exactly the given app group. The file keeps its plist format and
// permissions. No backup is made.
func PatchEntitlementsFile(path, group string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: failed to stat %s: %w", ErrRead, filepath.Base(path), err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: failed to read %s: %w", ErrRead, filepath.Base(path), err)
	}

	entitlements, format, err := ParseEntitlements(data)
	if err != nil {
		return fmt.Errorf("%s: %w", filepath.Base(path), err)
	}

	SetAppGroup(entitlements, group)

	newData, err := MarshalEntitlements(entitlements, format)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWrite, filepath.Base(path), err)
	}

	if err := os.WriteFile(path, newData, info.Mode().Perm()); err != nil {
		return fmt.Errorf("%w: failed to write %s: %w", ErrWrite, filepath.Base(path), err)
	}

	return nil
}

// PatchEntitlements patches every file in EntitlementsFiles under dir, in
// order, and returns the paths it rewrote. It stops at the first failure;
// if an earlier file was already rewritten the error is a *PartialUpdateError.
func PatchEntitlements(dir, group string) ([]string, error) {
	var updated []string
	for _, name := range EntitlementsFiles {
		path := filepath.Join(dir, name)
		if err := PatchEntitlementsFile(path, group); err != nil {
			if len(updated) > 0 {
				return updated, &PartialUpdateError{Updated: updated, Failed: path, Err: err}
			}
			return nil, err
		}
		updated = append(updated, path)
	}
	return updated, nil
}

// ReadAppGroups returns the app groups currently granted by the entitlements
// file at path.
func ReadAppGroups(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %w", ErrRead, filepath.Base(path), err)
	}
	entitlements, _, err := ParseEntitlements(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return AppGroups(entitlements), nil
}
