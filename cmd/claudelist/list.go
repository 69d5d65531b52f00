package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jingkaihe/claudelist/pkg/catalog"
	"github.com/jingkaihe/claudelist/pkg/output"
	"github.com/jingkaihe/claudelist/pkg/presenter"
	"github.com/jingkaihe/claudelist/pkg/service"
)

// ListConfig holds the flags of the listing commands.
type ListConfig struct {
	Filter string
}

func NewListConfig() *ListConfig {
	return &ListConfig{
		Filter: "",
	}
}

const emptyListingHint = "No skills or MCP servers found.\nMake sure Claude Code is installed and configured."

type lister func(ctx context.Context, svc *service.Service, opts service.ListOptions) (catalog.Listing, error)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List skills and MCP servers",
	Long: `List every installed skill and configured MCP server.

Examples:
  claudelist list
  claudelist list --filter 'code-*'
  claudelist list -o yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runList(cmd, listAll)
	},
}

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "List skills only",
	Long:  `List the skills installed in the skills directory.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runList(cmd, listSkills)
	},
}

var mcpsCmd = &cobra.Command{
	Use:     "mcps",
	Aliases: []string{"servers"},
	Short:   "List MCP servers only",
	Long:    `List the MCP servers configured in the primary and secondary settings files.`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runList(cmd, listServers)
	},
}

func init() {
	defaults := NewListConfig()
	for _, cmd := range []*cobra.Command{listCmd, skillsCmd, mcpsCmd} {
		cmd.Flags().StringP("filter", "f", defaults.Filter, "Only show entries whose name matches this glob (case-insensitive)")
	}
}

func getListConfigFromFlags(cmd *cobra.Command) *ListConfig {
	config := NewListConfig()
	if filter, err := cmd.Flags().GetString("filter"); err == nil {
		config.Filter = filter
	}
	return config
}

func listAll(ctx context.Context, svc *service.Service, opts service.ListOptions) (catalog.Listing, error) {
	return svc.ListAll(ctx, opts)
}

func listSkills(ctx context.Context, svc *service.Service, opts service.ListOptions) (catalog.Listing, error) {
	skills, err := svc.ListSkills(ctx, opts)
	if err != nil {
		return catalog.Listing{}, err
	}
	return catalog.Listing{Skills: skills}, nil
}

func listServers(ctx context.Context, svc *service.Service, opts service.ListOptions) (catalog.Listing, error) {
	servers, err := svc.ListServers(ctx, opts)
	if err != nil {
		return catalog.Listing{}, err
	}
	return catalog.Listing{Servers: servers}, nil
}

func runList(cmd *cobra.Command, list lister) error {
	ctx := cmd.Context()

	global, err := getGlobalConfig()
	if err != nil {
		return err
	}
	config := getListConfigFromFlags(cmd)

	svc, err := newService(ctx, global.Config)
	if err != nil {
		return err
	}

	listing, err := list(ctx, svc, service.ListOptions{Filter: config.Filter})
	if err != nil {
		return err
	}

	if err := output.New(global.Format, global.Verbose).Format(cmd.OutOrStdout(), listing); err != nil {
		return err
	}

	if listing.IsEmpty() && global.Format == output.FormatTable {
		presenter.Warning(emptyListingHint)
	}
	return nil
}
