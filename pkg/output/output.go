// Package output renders catalog listings and detail items as tables, JSON,
// or YAML.
package output

import (
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/jingkaihe/claudelist/pkg/catalog"
)

// Format names an output format.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// Formatter renders listings and detail items.
type Formatter interface {
	Format(w io.Writer, listing catalog.Listing) error
	// FormatDetail renders item. With raw set, skill descriptors are
	// rendered from their on-disk content rather than the parsed fields.
	FormatDetail(w io.Writer, item catalog.DetailItem, raw bool) error
}

// ParseFormat validates a format name. An empty name selects the table format.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case "", FormatTable:
		return FormatTable, nil
	case FormatJSON, FormatYAML:
		return Format(name), nil
	default:
		return "", errors.Errorf("unsupported output format '%s' (supported: table, json, yaml)", name)
	}
}

// New returns the formatter for format. verbose only affects tables.
func New(format Format, verbose bool) Formatter {
	switch format {
	case FormatJSON:
		return NewJSONFormatter()
	case FormatYAML:
		return NewYAMLFormatter()
	default:
		return NewTableFormatter().WithVerbose(verbose)
	}
}

// readRaw returns the unparsed descriptor of a skill detail.
func readRaw(detail *catalog.SkillDetail) (string, error) {
	content, err := os.ReadFile(detail.Path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read %s", detail.Path)
	}
	return string(content), nil
}

// rawDetail is the serialized shape of a detail item, with the raw skill
// content attached when requested.
type rawDetail struct {
	Skill  *rawSkill             `json:"skill,omitempty" yaml:"skill,omitempty"`
	Server *catalog.ServerDetail `json:"mcp,omitempty" yaml:"mcp,omitempty"`
}

type rawSkill struct {
	catalog.SkillDetail `yaml:",inline"`
	RawContent          string `json:"raw_content,omitempty" yaml:"raw_content,omitempty"`
}

func toRawDetail(item catalog.DetailItem, raw bool) (rawDetail, error) {
	out := rawDetail{Server: item.Server}
	if item.Skill == nil {
		return out, nil
	}

	out.Skill = &rawSkill{SkillDetail: *item.Skill}
	if raw {
		content, err := readRaw(item.Skill)
		if err != nil {
			return out, err
		}
		out.Skill.RawContent = content
	}
	return out, nil
}
