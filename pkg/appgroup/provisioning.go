package appgroup

import (
	"fmt"
	"os"
	"time"

	"go.mozilla.org/pkcs7"
	"howett.net/plist"
)

// ProvisioningProfile is the part of a .mobileprovision file needed to check
// that an app group is actually granted to the app.
type ProvisioningProfile struct {
	Name           string                 `plist:"Name"`
	TeamIdentifier []string               `plist:"TeamIdentifier"`
	Entitlements   map[string]interface{} `plist:"Entitlements"`
	ExpirationDate time.Time              `plist:"ExpirationDate"`
	UUID           string                 `plist:"UUID"`
}

// ParseProvisioningProfile parses a .mobileprovision file
// The file is a CMS (PKCS#7) signed container with a plist payload
func ParseProvisioningProfile(data []byte) (*ProvisioningProfile, error) {
	p7, err := pkcs7.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse PKCS#7 container: %w", ErrParse, err)
	}

	var profile ProvisioningProfile
	if _, err := plist.Unmarshal(p7.Content, &profile); err != nil {
		return nil, fmt.Errorf("%w: failed to parse provisioning profile plist: %w", ErrParse, err)
	}

	return &profile, nil
}

// ReadProvisioningProfile reads and parses the profile at path.
func ReadProvisioningProfile(path string) (*ProvisioningProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read provisioning profile: %w", ErrRead, err)
	}
	return ParseProvisioningProfile(data)
}

// AppGroups returns the app groups the profile grants.
func (p *ProvisioningProfile) AppGroups() []string {
	if p.Entitlements == nil {
		return nil
	}
	return AppGroups(p.Entitlements)
}

// AllowsAppGroup checks if the profile grants the given app group
func (p *ProvisioningProfile) AllowsAppGroup(group string) bool {
	for _, g := range p.AppGroups() {
		if g == group {
			return true
		}
	}
	return false
}

// IsExpired checks if the provisioning profile has expired
func (p *ProvisioningProfile) IsExpired() bool {
	return time.Now().After(p.ExpirationDate)
}

// CheckProfile verifies that the profile at path grants group.
func CheckProfile(path, group string) (*ProvisioningProfile, error) {
	profile, err := ReadProvisioningProfile(path)
	if err != nil {
		return nil, err
	}
	if !profile.AllowsAppGroup(group) {
		return profile, fmt.Errorf("%w: %q not in profile %q (granted: %v)", ErrProfileMismatch, group, profile.Name, profile.AppGroups())
	}
	return profile, nil
}
