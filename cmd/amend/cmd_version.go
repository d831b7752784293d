package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/amend"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), "amend", amend.VersionTag())
		return err
	},
}
