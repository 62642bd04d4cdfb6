package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/aluedeke/go-appgroup/pkg/appgroup"
	"github.com/docopt/docopt-go"
	"github.com/fatih/color"
)

const version = "1.0.0"

const usage = `go-appgroup - Cordova iOS App Group Hook

Writes an app group identifier into the Entitlements-Debug.plist and
Entitlements-Release.plist of a Cordova-generated Xcode project.

Usage:
  go-appgroup inject [--project-root=<path>] [--platform-root=<path>] [--profile=<path>] [<args>...]
  go-appgroup show [--project-root=<path>] [--platform-root=<path>] [--profile=<path>] [<args>...]
  go-appgroup -h | --help
  go-appgroup --version

Commands:
  inject    Resolve the app group and write it into both entitlements files
  show      Print the resolved app group and current entitlements without writing

Options:
  --project-root=<path>   Cordova project root (or APPGROUP_PROJECT_ROOT, defaults to the working directory)
  --platform-root=<path>  iOS platform directory (or APPGROUP_PLATFORM_ROOT, defaults to <project-root>/platforms/ios)
  --profile=<path>        Provisioning profile that must grant the app group (or APPGROUP_PROFILE)
  -h --help               Show this help message
  --version               Show version

Overrides:
  IOS_GROUP_IDENTIFIER=<id> as an argument, or in config.xml:
    <preference name="IOS_GROUP_IDENTIFIER" value="<id>" />
  Without an override the group is group.<bundle id>.shareextension.

Environment Variables:
  CORDOVA_CMDLINE         Cordova command line, scanned for IOS_GROUP_IDENTIFIER=<id>
  CORDOVA_PLATFORMS       Platforms of the current run; the hook does nothing without ios

Examples:
  # Register as a Cordova hook in config.xml
  <platform name="ios">
    <hook type="before_compile" src="hooks/go-appgroup-inject.sh" />
  </platform>

  # Run by hand from the project root
  go-appgroup inject

  # Override the group for one build
  go-appgroup inject IOS_GROUP_IDENTIFIER=group.com.example.shared

  # Check what would be written
  go-appgroup show --profile=dev.mobileprovision
`

func main() {
	opts, err := docopt.ParseArgs(usage, os.Args[1:], version)
	if err != nil {
		fail(fmt.Errorf("failed to parse arguments: %w", err))
	}

	if inject, _ := opts.Bool("inject"); inject {
		if err := runInject(opts, os.Stdout); err != nil {
			fail(err)
		}
	} else if show, _ := opts.Bool("show"); show {
		if err := runShow(opts, os.Stdout); err != nil {
			fail(err)
		}
	}
}

func fail(err error) {
	color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// buildContext merges flags, environment and defaults. Flags win over the
// environment.
func buildContext(opts docopt.Opts, env appgroup.Env) (appgroup.BuildContext, error) {
	projectRoot, _ := opts.String("--project-root")
	platformRoot, _ := opts.String("--platform-root")
	profilePath, _ := opts.String("--profile")
	args, _ := opts["<args>"].([]string)

	if projectRoot == "" {
		projectRoot = env.ProjectRoot
	}
	if platformRoot == "" {
		platformRoot = env.PlatformRoot
	}
	if profilePath == "" {
		profilePath = env.Profile
	}

	if projectRoot == "" {
		wd, err := os.Getwd()
		if err != nil {
			return appgroup.BuildContext{}, fmt.Errorf("failed to determine project root: %w", err)
		}
		projectRoot = wd
	}

	projectRoot, err := filepath.Abs(projectRoot)
	if err != nil {
		return appgroup.BuildContext{}, fmt.Errorf("failed to resolve project root: %w", err)
	}

	return appgroup.BuildContext{
		ProjectRoot:         projectRoot,
		PlatformProjectRoot: platformRoot,
		Args:                append(args, env.CmdlineArgs()...),
		ProfilePath:         profilePath,
	}, nil
}

func runInject(opts docopt.Opts, w io.Writer) error {
	env, err := appgroup.LoadEnv()
	if err != nil {
		return err
	}
	if !env.TargetsIOS() {
		fmt.Fprintf(w, "Skipping app group injection: platforms %v do not include ios\n", env.Platforms)
		return nil
	}

	ctx, err := buildContext(opts, env)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Platform directory: %s\n", ctx.PlatformDir())

	res, err := appgroup.Inject(ctx)
	if res != nil {
		fmt.Fprintf(w, "Xcode project: %s\n", res.Project.ProjectName)
		fmt.Fprintf(w, "App group: %s\n", res.AppGroup)
	}
	if err != nil {
		return err
	}

	for _, path := range res.Updated {
		fmt.Fprintf(w, "Updated %s\n", path)
	}
	color.New(color.FgGreen).Fprintf(w, "Injected app group %s\n", res.AppGroup)

	return nil
}

func runShow(opts docopt.Opts, w io.Writer) error {
	env, err := appgroup.LoadEnv()
	if err != nil {
		return err
	}

	ctx, err := buildContext(opts, env)
	if err != nil {
		return err
	}

	report, err := appgroup.Describe(ctx)
	if err != nil {
		return err
	}

	printReport(w, ctx, report)

	return report.ProfileErr
}

func printReport(w io.Writer, ctx appgroup.BuildContext, report *appgroup.Report) {
	source := "default"
	if report.Overridden {
		source = appgroup.OverrideKey
	}

	fmt.Fprintln(w, "App Group Information")
	fmt.Fprintln(w, "=====================")
	fmt.Fprintf(w, "Platform:    %s\n", ctx.PlatformDir())
	fmt.Fprintf(w, "Project:     %s\n", report.Project.ProjectName)
	fmt.Fprintf(w, "Bundle ID:   %s\n", report.BundleIdentifier)
	fmt.Fprintf(w, "App Group:   %s (%s)\n", report.AppGroup, source)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Entitlements")
	fmt.Fprintln(w, "------------")
	for _, e := range report.Entitlements {
		if e.Err != nil {
			fmt.Fprintf(w, "  %s: %v\n", filepath.Base(e.Path), e.Err)
			continue
		}
		fmt.Fprintf(w, "  %s: %v\n", filepath.Base(e.Path), e.AppGroups)
	}

	if report.Profile != nil {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Provisioning Profile")
		fmt.Fprintln(w, "--------------------")
		fmt.Fprintf(w, "Name:        %s\n", report.Profile.Name)
		fmt.Fprintf(w, "UUID:        %s\n", report.Profile.UUID)
		fmt.Fprintf(w, "Expired:     %v\n", report.Profile.IsExpired())
		fmt.Fprintf(w, "App Groups:  %v\n", report.Profile.AppGroups())
	}
}
