// Package conf contains the constants that are used across packages for
// version reporting.
package conf

import (
	"fmt"
	"time"
)

const (
	// VERSION is the version of the redeggs application.
	VERSION = "Redeggs 0.1.0"
	// VERSIONMAJORN is the major version.
	VERSIONMAJORN = 0
	// VERSIONMINORN is the minor version.
	VERSIONMINORN = 1
	// VERSIONPATCHN is the patch version.
	VERSIONPATCHN = 0
)

// FullVersion returns the version and copyright.
func FullVersion() string {
	return fmt.Sprintf("%v %v", VERSION, Copyright())
}

// Copyright is the copyright to be written out in the CLI.
func Copyright() string {
	return fmt.Sprintf("Copyright (C) %v", time.Now().Year())
}
