package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/jingkaihe/claudelist/pkg/catalog"
)

const (
	descriptionWidth        = 60
	verboseDescriptionWidth = 50
	placeholder             = "-"
)

// TableFormatter renders boxed ASCII tables and markdown-like detail views.
// An empty listing renders nothing.
type TableFormatter struct {
	verbose bool
}

// NewTableFormatter creates a TableFormatter.
func NewTableFormatter() *TableFormatter {
	return &TableFormatter{}
}

// WithVerbose toggles the extra listing columns.
func (f *TableFormatter) WithVerbose(verbose bool) *TableFormatter {
	f.verbose = verbose
	return f
}

func (f *TableFormatter) Format(w io.Writer, listing catalog.Listing) error {
	var sb strings.Builder

	if len(listing.Skills) > 0 {
		sb.WriteString("Skills:\n")
		sb.WriteString(f.skillsTable(listing.Skills))
		sb.WriteString("\n\n")
	}

	if len(listing.Servers) > 0 {
		sb.WriteString("MCP Servers:\n")
		sb.WriteString(f.serversTable(listing.Servers))
		sb.WriteString("\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func (f *TableFormatter) skillsTable(skills []catalog.Skill) string {
	if f.verbose {
		rows := make([][]string, 0, len(skills))
		for _, s := range skills {
			rows = append(rows, []string{
				s.Name,
				valueOr(s.Version, placeholder),
				string(s.Source),
				truncate(valueOr(s.Description, placeholder), verboseDescriptionWidth),
			})
		}
		return renderTable([]string{"Name", "Version", "Source", "Description"}, rows)
	}

	hasDescriptions := false
	for _, s := range skills {
		if s.Description != nil {
			hasDescriptions = true
			break
		}
	}

	rows := make([][]string, 0, len(skills))
	if !hasDescriptions {
		for _, s := range skills {
			rows = append(rows, []string{s.Name})
		}
		return renderTable([]string{"Name"}, rows)
	}

	for _, s := range skills {
		rows = append(rows, []string{s.Name, truncate(valueOr(s.Description, placeholder), descriptionWidth)})
	}
	return renderTable([]string{"Name", "Description"}, rows)
}

func (f *TableFormatter) serversTable(servers []catalog.Server) string {
	rows := make([][]string, 0, len(servers))
	if f.verbose {
		for _, s := range servers {
			rows = append(rows, []string{s.Name, string(s.Status), s.Config.CommandOr(placeholder)})
		}
		return renderTable([]string{"Name", "Status", "Command"}, rows)
	}

	for _, s := range servers {
		rows = append(rows, []string{s.Name, string(s.Status)})
	}
	return renderTable([]string{"Name", "Status"}, rows)
}

func renderTable(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.ASCIIBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(_, _ int) lipgloss.Style {
			return lipgloss.NewStyle().Padding(0, 1)
		})
	return t.String()
}

func (f *TableFormatter) FormatDetail(w io.Writer, item catalog.DetailItem, raw bool) error {
	switch {
	case item.Skill != nil:
		if raw {
			content, err := readRaw(item.Skill)
			if err != nil {
				return err
			}
			_, err = io.WriteString(w, content)
			return err
		}
		_, err := io.WriteString(w, formatSkillDetail(item.Skill))
		return err
	case item.Server != nil:
		_, err := io.WriteString(w, formatServerDetail(item.Server))
		return err
	default:
		return nil
	}
}

func formatSkillDetail(skill *catalog.SkillDetail) string {
	var sb strings.Builder

	header := "Skill: " + skill.Name
	fmt.Fprintf(&sb, "%s\n%s\n\n", header, strings.Repeat("=", len(header)))

	if description := skill.Preamble.DescriptionOr(""); description != "" {
		fmt.Fprintf(&sb, "## Description\n\n%s\n\n", description)
	}

	fmt.Fprintf(&sb, "## Content\n\n%s\n", skill.Content)
	fmt.Fprintf(&sb, "\n---\nPath: %s\n", skill.Path)

	return sb.String()
}

func formatServerDetail(server *catalog.ServerDetail) string {
	var sb strings.Builder

	header := "MCP Server: " + server.Name
	fmt.Fprintf(&sb, "%s\n%s\n\n", header, strings.Repeat("=", len(header)))

	fmt.Fprintf(&sb, "Source: %s\n", server.SourceType)
	fmt.Fprintf(&sb, "Config Path: %s\n\n", server.SourcePath)
	sb.WriteString("## Configuration\n\n")

	if server.Config.Command != nil {
		fmt.Fprintf(&sb, "Command: `%s`\n\n", *server.Config.Command)
	}

	if len(server.Config.Args) > 0 {
		sb.WriteString("Arguments:\n")
		for _, arg := range server.Config.Args {
			fmt.Fprintf(&sb, "  - `%s`\n", arg)
		}
		sb.WriteString("\n")
	}

	if len(server.Config.Env) > 0 {
		keys := make([]string, 0, len(server.Config.Env))
		for k := range server.Config.Env {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		sb.WriteString("Environment Variables:\n")
		for _, k := range keys {
			fmt.Fprintf(&sb, "  - `%s`: `%s`\n", k, server.Config.Env[k])
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func valueOr(v *string, def string) string {
	if v == nil {
		return def
	}
	return *v
}

// truncate shortens s to at most maxRunes runes, ending in "...".
func truncate(s string, maxRunes int) string {
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	keep := maxRunes - 3
	if keep < 0 {
		keep = 0
	}
	return string(runes[:keep]) + "..."
}
