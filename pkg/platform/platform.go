// Package platform identifies the host operating system and the conventions
// that differ between them.
package platform

import (
	"runtime"
	"strings"
)

// Platform is a host operating system the launcher knows about.
type Platform int

const (
	Other Platform = iota
	Linux
	Darwin
	Windows
	FreeBSD
)

const (
	// LibraryPath is the dynamic loader search variable on most platforms.
	LibraryPath = "LD_LIBRARY_PATH"
	// DyldLibraryPath is the dynamic loader search variable on macOS.
	DyldLibraryPath = "DYLD_LIBRARY_PATH"
)

type info struct {
	name       string // uname-style name
	goos       string
	libraryVar string
}

// table holds everything known per platform. Platforms without an entry
// fall back to Other.
var table = map[Platform]info{
	Other:   {name: "Unknown", libraryVar: LibraryPath},
	Linux:   {name: "Linux", goos: "linux", libraryVar: LibraryPath},
	Darwin:  {name: "Darwin", goos: "darwin", libraryVar: DyldLibraryPath},
	Windows: {name: "Windows", goos: "windows", libraryVar: LibraryPath},
	FreeBSD: {name: "FreeBSD", goos: "freebsd", libraryVar: LibraryPath},
}

// Current returns the platform the binary was built for.
func Current() Platform {
	return FromGOOS(runtime.GOOS)
}

// FromGOOS maps a runtime.GOOS value to a Platform.
func FromGOOS(goos string) Platform {
	for p, i := range table {
		if i.goos != "" && i.goos == goos {
			return p
		}
	}
	return Other
}

// Parse maps a uname-style system name ("Darwin", "Linux") to a Platform.
// Matching is case-insensitive.
func Parse(name string) Platform {
	for p, i := range table {
		if p != Other && strings.EqualFold(i.name, name) {
			return p
		}
	}
	return Other
}

// String returns the uname-style name of the platform.
func (p Platform) String() string {
	return p.lookup().name
}

// LibraryVar returns the name of the environment variable the dynamic
// loader searches for shared libraries on this platform.
func (p Platform) LibraryVar() string {
	return p.lookup().libraryVar
}

func (p Platform) lookup() info {
	if i, ok := table[p]; ok {
		return i
	}
	return table[Other]
}

// SelectLibraryVariableName returns the library search variable for p.
func SelectLibraryVariableName(p Platform) string {
	return p.LibraryVar()
}
