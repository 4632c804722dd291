// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// notAvailable stands in for build metadata the linker did not inject.
const notAvailable = "N/A"

// AppBuildInfo is the linker-injected metadata of the remote-settings
// client binary. Empty values read back as "N/A".
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo constructs [AppBuildInfo] from -ldflags values.
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{version: version, date: date, commit: commit}
}

// BuildVersion returns the release version or "N/A".
func (a AppBuildInfo) BuildVersion() string { return orNotAvailable(a.version) }

// BuildDate returns the build timestamp or "N/A".
func (a AppBuildInfo) BuildDate() string { return orNotAvailable(a.date) }

// BuildCommit returns the commit hash or "N/A".
func (a AppBuildInfo) BuildCommit() string { return orNotAvailable(a.commit) }

// String renders the banner printed on client start-up, one field per line.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s\n",
		a.BuildVersion(), a.BuildDate(), a.BuildCommit())
}

func orNotAvailable(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
