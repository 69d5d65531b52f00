package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/jingkaihe/claudelist/pkg/output"
)

var schemaCmd = &cobra.Command{
	Use:       "schema [" + strings.Join(output.SchemaKindNames(), "|") + "]",
	Short:     "Print the JSON schema of the JSON output",
	Long:      `Print the JSON schema of the documents written by --json. Defaults to the listing document.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: output.SchemaKindNames(),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind := output.SchemaListing
		if len(args) == 1 {
			kind = output.SchemaKind(args[0])
		}
		return output.WriteSchema(cmd.OutOrStdout(), kind)
	},
}
