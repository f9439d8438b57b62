// Package misc carries build time information.
package misc

// Set by linker flags when building release binaries.
var (
	appName = "madlibs"
	version = "dev"
	gitHash = "unknown"
)

func GetAppName() string {
	return appName
}

func GetVersion() string {
	return version
}

func GetGitHash() string {
	return gitHash
}
