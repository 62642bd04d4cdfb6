// Package main provides the go-appgroup CLI, a Cordova hook that injects an
// iOS app group into the project's entitlements files.
//
// For the library API, see the appgroup subpackage:
//
//	import "github.com/aluedeke/go-appgroup/pkg/appgroup"
//
// # Installation
//
// Install the CLI:
//
//	go install github.com/aluedeke/go-appgroup@latest
//
// Then call it from a Cordova hook script registered for the ios platform:
//
//	#!/bin/sh
//	exec go-appgroup inject
package main
