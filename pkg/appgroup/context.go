package appgroup

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
)

// BuildContext is what the host build system hands to the hook.
type BuildContext struct {
	ProjectRoot         string   // Cordova project root (contains config.xml)
	PlatformProjectRoot string   // Optional: pre-resolved iOS platform directory
	Args                []string // Process invocation arguments, scanned for overrides
	ProfilePath         string   // Optional: provisioning profile to check the group against
}

// PlatformDir returns the iOS platform directory that holds the .xcodeproj.
func (c BuildContext) PlatformDir() string {
	if c.PlatformProjectRoot != "" {
		return c.PlatformProjectRoot
	}
	return filepath.Join(c.ProjectRoot, "platforms", "ios") + string(filepath.Separator)
}

// ConfigXMLPath returns the path of the Cordova config.xml.
func (c BuildContext) ConfigXMLPath() string {
	return filepath.Join(c.ProjectRoot, "config.xml")
}

// Env holds the settings Cordova and the user can pass through the environment.
// Cordova exports the CORDOVA_* variables to every hook process it spawns.
type Env struct {
	Cmdline      string   `env:"CORDOVA_CMDLINE"`
	Platforms    []string `env:"CORDOVA_PLATFORMS" envSeparator:","`
	ProjectRoot  string   `env:"APPGROUP_PROJECT_ROOT"`
	PlatformRoot string   `env:"APPGROUP_PLATFORM_ROOT"`
	Profile      string   `env:"APPGROUP_PROFILE"`
}

// LoadEnv reads Env from the process environment.
func LoadEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return e, nil
}

// CmdlineArgs splits CORDOVA_CMDLINE into argument tokens.
func (e Env) CmdlineArgs() []string {
	return strings.Fields(e.Cmdline)
}

// TargetsIOS reports whether the current Cordova run includes the ios platform.
// An unset platform list is treated as ios so the hook can run standalone.
func (e Env) TargetsIOS() bool {
	if len(e.Platforms) == 0 {
		return true
	}
	for _, p := range e.Platforms {
		if strings.EqualFold(strings.TrimSpace(p), "ios") {
			return true
		}
	}
	return false
}
