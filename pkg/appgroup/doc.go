// Package appgroup injects an iOS app group identifier into the entitlements
// files of a Cordova-generated Xcode project.
//
// The package is meant to run as a Cordova hook during iOS platform
// preparation, before compilation. It finds the generated .xcodeproj in the
// platform directory, reads the bundle identifier from <Project>-Info.plist and
// writes the app group into Entitlements-Debug.plist and
// Entitlements-Release.plist.
//
// # Basic Usage
//
//	res, err := appgroup.Inject(appgroup.BuildContext{
//	    ProjectRoot: "/path/to/cordova/app",
//	    Args:        os.Args[1:],
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.AppGroup)
//
// # App Group Resolution
//
// The group defaults to "group.<bundle id>.shareextension". It can be
// overridden with an IOS_GROUP_IDENTIFIER=<value> argument, or with a
// preference in config.xml:
//
//	<preference name="IOS_GROUP_IDENTIFIER" value="group.com.example.shared" />
//
// # Failure Model
//
// Every failure is fatal. The two entitlements files are rewritten one after
// the other with no backup, so a failure while patching the second file leaves
// the first one already updated. That case is reported as a *PartialUpdateError.
package appgroup
