// Package version carries the build metadata stamped into rustgen binaries.
package version

import (
	"strings"

	"github.com/fatih/color"
)

// Overridden at build time via -ldflags, e.g.
//
//	go build -ldflags "-X rustgen/internal/version.GitCommit=$(git rev-parse HEAD)"
var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// GitMessage is an optional git commit message.
	GitMessage = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var (
	majorColor = color.New(color.FgYellow, color.Bold)
	minorColor = color.New(color.FgGreen, color.Bold)
	patchColor = color.New(color.FgBlue, color.Bold)
)

// Colored renders Version with each semver component tinted. Free-form
// overrides that are not major.minor.patch come back unchanged, and with
// colors globally disabled the result equals Version either way.
func Colored() string {
	base, rest := Version, ""
	if i := strings.IndexAny(base, "-+"); i >= 0 {
		base, rest = base[:i], base[i:]
	}
	parts := strings.Split(base, ".")
	if len(parts) != 3 {
		return Version
	}
	return majorColor.Sprint(parts[0]) + "." + minorColor.Sprint(parts[1]) + "." + patchColor.Sprint(parts[2]) + rest
}
