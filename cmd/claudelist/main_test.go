package main

import (
	"os"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	os.Exit(testscript.RunMain(m, map[string]func() int{
		"claudelist": run,
	}))
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata/script",
		Setup: func(env *testscript.Env) error {
			env.Setenv("NO_COLOR", "1")
			return nil
		},
	})
}

func TestBindFlags(t *testing.T) {
	v := viper.New()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("claude-dir", "", "")
	fs.Bool("json", false, "")

	require.NoError(t, bindFlags(v, fs))
	require.NoError(t, fs.Parse([]string{"--claude-dir", "/tmp/claude", "--json"}))

	assert.Equal(t, "/tmp/claude", v.GetString("claude_dir"))
	assert.True(t, v.GetBool("json"))
}
