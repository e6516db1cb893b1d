package models

import "fmt"

const notAvailable = "N/A"

// AppBuildInfo is the build metadata injected with -ldflags into cmd/client.
type AppBuildInfo struct {
	Version string
	Date    string
	Commit  string
}

func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{Version: version, Date: date, Commit: commit}
}

// UserAgent returns the User-Agent value sent to the remote endpoint.
// Unreleased builds identify as "notepad-sync/dev".
func (a AppBuildInfo) UserAgent() string {
	if a.Version == "" {
		return "notepad-sync/dev"
	}
	return "notepad-sync/" + a.Version
}

// Lines renders the metadata for the version command, one field per line.
// Missing fields read "N/A".
func (a AppBuildInfo) Lines() []string {
	return []string{
		fmt.Sprintf("Build version: %s", orNotAvailable(a.Version)),
		fmt.Sprintf("Build date: %s", orNotAvailable(a.Date)),
		fmt.Sprintf("Build commit: %s", orNotAvailable(a.Commit)),
	}
}

func orNotAvailable(v string) string {
	if v == "" {
		return notAvailable
	}
	return v
}
