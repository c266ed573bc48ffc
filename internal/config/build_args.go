package config

import "fmt"

// ModuleName is the canonical module path, also used as the CLI banner.
const ModuleName = "github/chapool/dapp-gateway"

// Injected at build time via -ldflags.
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// GetFormattedBuildArgs returns "<module> @ <commit> (<build date>)".
func GetFormattedBuildArgs() string {
	return fmt.Sprintf("%v @ %v (%v)", ModuleName, Commit, BuildDate)
}
