package appgroup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindXcodeProject(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "MyApp.xcodeproj"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "MyApp"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cordova.xcconfig"), nil, 0644))

	ref, err := FindXcodeProject(dir)
	require.NoError(t, err)

	assert.Equal(t, "MyApp", ref.ProjectName)
	assert.Equal(t, filepath.Join(dir, "MyApp.xcodeproj"), ref.FolderPath)
	assert.Equal(t, filepath.Join(dir, "MyApp"), ref.SourceDir())
	assert.Equal(t, filepath.Join(dir, "MyApp", "MyApp-Info.plist"), ref.InfoPlistPath())
}

func TestFindXcodeProject_NameWithDots(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "My.App.xcodeproj"), 0755))

	ref, err := FindXcodeProject(dir)
	require.NoError(t, err)
	assert.Equal(t, "My.App", ref.ProjectName)
}

func TestFindXcodeProject_LastMatchWins(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "Beta.xcodeproj"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "Alpha.xcodeproj"), 0755))

	// os.ReadDir returns entries sorted by name
	ref, err := FindXcodeProject(dir)
	require.NoError(t, err)
	assert.Equal(t, "Beta", ref.ProjectName)
}

func TestFindXcodeProject_NoProject(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "MyApp"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "MyApp.xcodeproj.bak"), nil, 0644))

	_, err := FindXcodeProject(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDiscovery)
	assert.Contains(t, err.Error(), dir)
}

func TestFindXcodeProject_MissingDir(t *testing.T) {
	_, err := FindXcodeProject(filepath.Join(t.TempDir(), "platforms", "ios"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDiscovery)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
