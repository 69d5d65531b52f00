package catalog

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

const (
	skillFileName            = "SKILL.md"
	defaultClaudeDirName     = ".claude"
	defaultSkillsSubdir      = "skills"
	defaultPrimarySettings   = "settings.json"
	defaultSecondarySettings = "mcp.json"
)

// readFile reads settings files and skill descriptors.
var readFile = os.ReadFile

// Local reads skills and servers from a Claude configuration directory.
type Local struct {
	claudeDir         string
	skillsDir         string
	primarySettings   string
	secondarySettings string
}

// Option configures a Local catalog.
type Option func(*Local) error

// WithDefaultDirs points the catalog at ~/.claude.
func WithDefaultDirs() Option {
	return func(l *Local) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return errors.Wrap(err, "failed to get user home directory")
		}
		l.claudeDir = filepath.Join(homeDir, defaultClaudeDirName)
		return nil
	}
}

// WithClaudeDir sets the Claude configuration directory. The skills
// directory and settings files are resolved against it unless set
// explicitly.
func WithClaudeDir(dir string) Option {
	return func(l *Local) error {
		if dir == "" {
			return errors.New("claude directory must not be empty")
		}
		l.claudeDir = dir
		return nil
	}
}

// WithSkillsDir overrides the skills root directory.
func WithSkillsDir(dir string) Option {
	return func(l *Local) error {
		l.skillsDir = dir
		return nil
	}
}

// WithSettingsFiles overrides the primary and secondary settings files.
// Relative paths are resolved against the Claude directory; empty values
// keep the defaults.
func WithSettingsFiles(primary, secondary string) Option {
	return func(l *Local) error {
		if primary != "" {
			l.primarySettings = primary
		}
		if secondary != "" {
			l.secondarySettings = secondary
		}
		return nil
	}
}

// NewLocal creates a catalog. Without a WithClaudeDir option it uses
// ~/.claude and fails if no home directory can be resolved.
func NewLocal(opts ...Option) (*Local, error) {
	l := &Local{
		primarySettings:   defaultPrimarySettings,
		secondarySettings: defaultSecondarySettings,
	}

	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, err
		}
	}

	if l.claudeDir == "" {
		if err := WithDefaultDirs()(l); err != nil {
			return nil, err
		}
	}

	return l, nil
}

// ClaudeDir returns the configuration directory the catalog reads from.
func (l *Local) ClaudeDir() string {
	return l.claudeDir
}

// SkillsDir returns the skills root directory.
func (l *Local) SkillsDir() string {
	if l.skillsDir != "" {
		return l.skillsDir
	}
	return filepath.Join(l.claudeDir, defaultSkillsSubdir)
}

// SettingsFiles returns the primary and secondary settings file paths.
func (l *Local) SettingsFiles() (string, string) {
	return l.resolvePath(l.primarySettings), l.resolvePath(l.secondarySettings)
}

func (l *Local) resolvePath(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(l.claudeDir, p)
}
