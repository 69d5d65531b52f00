package main

import (
	"github.com/spf13/cobra"

	"github.com/jingkaihe/claudelist/pkg/output"
)

type ShowConfig struct {
	Raw bool
}

func NewShowConfig() *ShowConfig {
	return &ShowConfig{
		Raw: false,
	}
}

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show the details of a skill or MCP server",
	Long: `Show the details of a skill or MCP server.

The name is matched case-insensitively as a substring. Skills are searched
first; MCP servers are only searched when no skill name contains the query.
An exact name wins when several entries match.

Examples:
  claudelist show code-reviewer
  claudelist show review --raw
  claudelist show github --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShow(cmd, args[0], getShowConfigFromFlags(cmd))
	},
}

func init() {
	defaults := NewShowConfig()
	showCmd.Flags().BoolP("raw", "r", defaults.Raw, "Print the unparsed SKILL.md of a skill")
}

func getShowConfigFromFlags(cmd *cobra.Command) *ShowConfig {
	config := NewShowConfig()
	if raw, err := cmd.Flags().GetBool("raw"); err == nil {
		config.Raw = raw
	}
	return config
}

func runShow(cmd *cobra.Command, name string, config *ShowConfig) error {
	ctx := cmd.Context()

	global, err := getGlobalConfig()
	if err != nil {
		return err
	}

	svc, err := newService(ctx, global.Config)
	if err != nil {
		return err
	}

	item, err := svc.Show(ctx, name)
	if err != nil {
		return err
	}

	return output.New(global.Format, global.Verbose).FormatDetail(cmd.OutOrStdout(), item, config.Raw)
}
