package cmd

import (
	"fmt"

	"github.com/kaltdl/kaltdl/entryid"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().BoolP("manifest", "m", false, "Treat the argument as a manifest URL rather than an embed reference")
}

var extractCmd = &cobra.Command{
	Use:   "extract <reference>",
	Short: "Print the entry ID carried by an embed reference or manifest URL",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		extract := entryid.Extract
		if lo.Must(cmd.Flags().GetBool("manifest")) {
			extract = entryid.FromManifest
		}

		id, ok := extract(args[0]).Get()
		if !ok {
			handleErr(fmt.Errorf("no entry id in %q", args[0]))
		}

		fmt.Fprintln(cmd.OutOrStdout(), id)
	},
}
