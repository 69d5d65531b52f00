// Package version exposes build metadata stamped in through -ldflags.
package version

import (
	"encoding/json"
	"fmt"
	"runtime"
)

var (
	// Version is the released version, set at build time.
	Version = "dev"

	// GitCommit is the commit SHA the binary was built from, set at build time.
	GitCommit = "unknown"
)

// Info describes the running binary.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	GoVersion string `json:"goVersion"`
	Platform  string `json:"platform"`
}

// Get returns the build information of the running binary.
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String renders the info on a single line.
func (i Info) String() string {
	return fmt.Sprintf("claudelist %s (commit %s, %s, %s)", i.Version, i.GitCommit, i.GoVersion, i.Platform)
}

// JSON renders the info as indented JSON.
func (i Info) JSON() (string, error) {
	data, err := json.MarshalIndent(i, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
