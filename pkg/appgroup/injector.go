package appgroup

import (
	"fmt"
	"path/filepath"
)

// Result describes a completed injection.
type Result struct {
	Project          XcodeProjectRef
	BundleIdentifier string
	AppGroup         string
	Overridden       bool     // true when IOS_GROUP_IDENTIFIER replaced the default
	Updated          []string // entitlements files rewritten
}

// Inject runs the hook: locate the Xcode project, resolve the app group and
// write it into both entitlements files. Steps run in order and the first
// error aborts the rest. Nothing is written before the project, the bundle
// identifier and the app group are all known.
func Inject(ctx BuildContext) (*Result, error) {
	res, err := resolve(ctx)
	if err != nil {
		return nil, err
	}

	if ctx.ProfilePath != "" {
		if _, err := CheckProfile(ctx.ProfilePath, res.AppGroup); err != nil {
			return nil, err
		}
	}

	updated, err := PatchEntitlements(res.Project.SourceDir(), res.AppGroup)
	res.Updated = updated
	if err != nil {
		return res, err
	}

	return res, nil
}

// EntitlementsState is the current content of one entitlements file.
type EntitlementsState struct {
	Path      string
	AppGroups []string
	Err       error // set when the file could not be read or parsed
}

// Report is the outcome of a dry run.
type Report struct {
	Result
	Entitlements []EntitlementsState
	Profile      *ProvisioningProfile
	ProfileErr   error
}

// Describe computes what Inject would write without touching any file.
func Describe(ctx BuildContext) (*Report, error) {
	res, err := resolve(ctx)
	if err != nil {
		return nil, err
	}

	report := &Report{Result: *res}
	for _, name := range EntitlementsFiles {
		path := filepath.Join(res.Project.SourceDir(), name)
		groups, err := ReadAppGroups(path)
		report.Entitlements = append(report.Entitlements, EntitlementsState{
			Path:      path,
			AppGroups: groups,
			Err:       err,
		})
	}

	if ctx.ProfilePath != "" {
		report.Profile, report.ProfileErr = CheckProfile(ctx.ProfilePath, res.AppGroup)
	}

	return report, nil
}

func resolve(ctx BuildContext) (*Result, error) {
	project, err := FindXcodeProject(ctx.PlatformDir())
	if err != nil {
		return nil, err
	}

	info, err := ReadBundleInfo(project.InfoPlistPath())
	if err != nil {
		return nil, fmt.Errorf("project %s: %w", project.ProjectName, err)
	}

	configXML, err := ReadConfigXML(ctx.ConfigXMLPath())
	if err != nil {
		return nil, err
	}

	group, overridden := ResolveAppGroup(info.BundleIdentifier, ctx.Args, configXML)

	return &Result{
		Project:          project,
		BundleIdentifier: info.BundleIdentifier,
		AppGroup:         group,
		Overridden:       overridden,
	}, nil
}
