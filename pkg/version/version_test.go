package version

import (
	"encoding/json"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	info := Get()

	assert.Equal(t, Version, info.Version)
	assert.Equal(t, GitCommit, info.GitCommit)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
}

func TestInfoString(t *testing.T) {
	info := Info{Version: "0.3.0", GitCommit: "abc123", GoVersion: "go1.25.1", Platform: "linux/amd64"}
	assert.Equal(t, "claudelist 0.3.0 (commit abc123, go1.25.1, linux/amd64)", info.String())
}

func TestInfoJSON(t *testing.T) {
	info := Info{Version: "0.3.0", GitCommit: "abc123", GoVersion: "go1.25.1", Platform: "linux/amd64"}

	out, err := info.JSON()
	require.NoError(t, err)

	expected := `{
  "version": "0.3.0",
  "gitCommit": "abc123",
  "goVersion": "go1.25.1",
  "platform": "linux/amd64"
}`
	assert.Equal(t, expected, out)

	var parsed Info
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	assert.Equal(t, info, parsed)
}
