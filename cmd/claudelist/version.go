package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jingkaihe/claudelist/pkg/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version information",
	Long:  `Print the version information of claudelist. Use --json for a machine readable form.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		info := version.Get()
		if !viper.GetBool("json") {
			fmt.Fprintln(cmd.OutOrStdout(), info.String())
			return nil
		}

		json, err := info.JSON()
		if err != nil {
			return errors.Wrap(err, "error formatting version info")
		}
		fmt.Fprintln(cmd.OutOrStdout(), json)
		return nil
	},
}
