// Package catalog discovers locally installed Claude skills and MCP server
// entries and resolves a single item by (possibly partial) name.
//
// Skills are directories under the skills root, each optionally holding a
// SKILL.md descriptor with a name/description preamble. Servers are read
// from the mcpServers object of up to two JSON settings files. Nothing is
// cached: every call reads from disk.
package catalog

import (
	"github.com/jingkaihe/claudelist/pkg/frontmatter"
)

// SourceType classifies where an entry comes from.
type SourceType string

const (
	SourceLocal SourceType = "local"
	SourceAPI   SourceType = "api"
	SourceBoth  SourceType = "both"
)

// ConnectionStatus is the live status of a server. Local discovery never
// connects to servers, so entries it produces are always StatusUnknown.
type ConnectionStatus string

const (
	StatusConnected    ConnectionStatus = "connected"
	StatusDisconnected ConnectionStatus = "disconnected"
	StatusUnknown      ConnectionStatus = "unknown"
	StatusError        ConnectionStatus = "error"
)

// Skill is a discovered skill directory.
type Skill struct {
	Name        string     `json:"name" yaml:"name"`
	Version     *string    `json:"version" yaml:"version"`
	Source      SourceType `json:"source" yaml:"source"`
	Path        string     `json:"path,omitempty" yaml:"path,omitempty"`
	Description *string    `json:"description" yaml:"description"`
}

// GetName implements resolve.Named.
func (s Skill) GetName() string { return s.Name }

// ServerConfig is the command configuration of an MCP server entry.
type ServerConfig struct {
	Command *string           `json:"command" yaml:"command"`
	Args    []string          `json:"args" yaml:"args"`
	Env     map[string]string `json:"env" yaml:"env"`
}

// CommandOr returns the configured command, or def when unset.
func (c *ServerConfig) CommandOr(def string) string {
	if c == nil || c.Command == nil {
		return def
	}
	return *c.Command
}

// Server is a discovered MCP server entry.
type Server struct {
	Name   string           `json:"name" yaml:"name"`
	Status ConnectionStatus `json:"status" yaml:"status"`
	Config *ServerConfig    `json:"config" yaml:"config"`
	Source SourceType       `json:"source" yaml:"source"`
}

// GetName implements resolve.Named.
func (s Server) GetName() string { return s.Name }

// Listing groups both kinds of entries.
type Listing struct {
	Skills  []Skill  `json:"skills" yaml:"skills"`
	Servers []Server `json:"mcps" yaml:"mcps"`
}

// IsEmpty reports whether the listing holds no entries at all.
func (l Listing) IsEmpty() bool {
	return len(l.Skills) == 0 && len(l.Servers) == 0
}

// SkillDetail is a fully parsed skill descriptor.
type SkillDetail struct {
	Name     string               `json:"name" yaml:"name"`
	Preamble frontmatter.Preamble `json:"start_matter" yaml:"start_matter"`
	Content  string               `json:"content" yaml:"content"`
	Path     string               `json:"path" yaml:"path"`
}

// ServerDetail is a server entry together with the settings file it came from.
type ServerDetail struct {
	Name       string       `json:"name" yaml:"name"`
	Config     ServerConfig `json:"config" yaml:"config"`
	SourcePath string       `json:"source_path" yaml:"source_path"`
	SourceType string       `json:"source_type" yaml:"source_type"`
}

// DetailItem holds exactly one of a skill or a server detail.
type DetailItem struct {
	Skill  *SkillDetail  `json:"skill,omitempty" yaml:"skill,omitempty"`
	Server *ServerDetail `json:"mcp,omitempty" yaml:"mcp,omitempty"`
}
