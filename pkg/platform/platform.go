// Package platform identifies the host operating system in the terms used by the project config.
package platform

import (
	"path/filepath"
	"runtime"

	"github.com/rotisserie/eris"
)

// Platform is the name of a supported host OS
type Platform string

const (
	Windows Platform = "windows"
	Linux   Platform = "linux"
	MacOS   Platform = "macos"
)

// FromGOOS maps a GOOS value to a Platform
func FromGOOS(goos string) (Platform, error) {
	switch goos {
	case "windows":
		return Windows, nil
	case "linux":
		return Linux, nil
	case "darwin":
		return MacOS, nil
	}

	return "", eris.Errorf("unsupported platform: %s", goos)
}

// Detect returns the platform of the running process
func Detect() (Platform, error) {
	return FromGOOS(runtime.GOOS)
}

func is(p Platform) bool {
	current, err := Detect()
	return err == nil && current == p
}

func IsWindows() bool {
	return is(Windows)
}

func IsLinux() bool {
	return is(Linux)
}

func IsMacOS() bool {
	return is(MacOS)
}

// IsUnixLike reports whether the host is Linux or macOS
func IsUnixLike() bool {
	return IsLinux() || IsMacOS()
}

// ExecutableCandidates lists the locations of an executable inside a virtualenv root.
// Unix-like venvs use bin/<name>, Windows venvs use Scripts\<name>.exe.
func ExecutableCandidates(venvRoot, name string) []string {
	return []string{
		filepath.Join(venvRoot, "bin", name),
		filepath.Join(venvRoot, "Scripts", name+".exe"),
	}
}
