package presenter

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	p := New()
	assert.NotNil(t, p)
	assert.Equal(t, os.Stderr, p.errorOutput)
	assert.False(t, p.quiet)
}

func TestDetectColorMode(t *testing.T) {
	tests := []struct {
		name     string
		noColor  string
		appColor string
		expected ColorMode
	}{
		{"NO_COLOR set", "1", "", ColorNever},
		{"NO_COLOR wins over always", "1", "always", ColorNever},
		{"always", "", "always", ColorAlways},
		{"force", "", "force", ColorAlways},
		{"never", "", "never", ColorNever},
		{"off", "", "off", ColorNever},
		{"auto", "", "auto", ColorAuto},
		{"unset", "", "", ColorAuto},
		{"unknown value", "", "rainbow", ColorAuto},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", tt.noColor)
			t.Setenv("CLAUDELIST_COLOR", tt.appColor)
			assert.Equal(t, tt.expected, detectColorMode())
		})
	}
}

func TestError(t *testing.T) {
	var stderr bytes.Buffer
	p := NewWithOptions(&stderr, ColorNever)

	p.Error(errors.New("boom"), "Failed to list skills")
	assert.Equal(t, "[ERROR] Failed to list skills: boom\n", stderr.String())

	stderr.Reset()
	p.Error(errors.New("boom"), "")
	assert.Equal(t, "[ERROR] boom\n", stderr.String())

	stderr.Reset()
	p.Error(nil, "ignored")
	assert.Empty(t, stderr.String())
}

func TestErrorIgnoresQuiet(t *testing.T) {
	var stderr bytes.Buffer
	p := NewWithOptions(&stderr, ColorNever)
	p.SetQuiet(true)

	p.Error(errors.New("still shown"), "")
	assert.Contains(t, stderr.String(), "still shown")
}

func TestSuggestions(t *testing.T) {
	t.Run("capped at limit", func(t *testing.T) {
		var stderr bytes.Buffer
		p := NewWithOptions(&stderr, ColorNever)

		p.Suggestions([]string{"alpha", "beta", "gamma", "delta"}, 3)
		assert.Equal(t, "Did you mean:\n  - alpha\n  - beta\n  - gamma\n", stderr.String())
	})

	t.Run("no limit", func(t *testing.T) {
		var stderr bytes.Buffer
		p := NewWithOptions(&stderr, ColorNever)

		p.Suggestions([]string{"a", "b"}, 0)
		assert.Equal(t, "Did you mean:\n  - a\n  - b\n", stderr.String())
	})

	t.Run("empty list prints nothing", func(t *testing.T) {
		var stderr bytes.Buffer
		p := NewWithOptions(&stderr, ColorNever)

		p.Suggestions(nil, 3)
		assert.Empty(t, stderr.String())
	})
}

func TestQuietMode(t *testing.T) {
	var stderr bytes.Buffer
	p := NewWithOptions(&stderr, ColorNever)

	p.SetQuiet(true)
	p.Warning("warning")
	p.Suggestions([]string{"alpha"}, 3)
	assert.Empty(t, stderr.String())

	p.Error(errors.New("boom"), "")
	assert.Equal(t, "[ERROR] boom\n", stderr.String())

	stderr.Reset()
	p.SetQuiet(false)
	p.Warning("careful")
	assert.Equal(t, "⚠ careful\n", stderr.String())
}

func TestDefaultPresenterQuiet(t *testing.T) {
	t.Cleanup(func() { SetQuiet(false) })

	SetQuiet(true)
	assert.True(t, defaultPresenter.quiet)

	SetQuiet(false)
	assert.False(t, defaultPresenter.quiet)
}
