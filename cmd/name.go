package cmd

import (
	"errors"
	"fmt"

	"github.com/kaltdl/kaltdl/entryid"
	"github.com/kaltdl/kaltdl/naming"
	"github.com/kaltdl/kaltdl/session"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(nameCmd)
	nameCmd.Flags().StringP("title", "t", "", "Page title of the video")
	nameCmd.Flags().StringP("url", "u", "", "Stream manifest URL")
	nameCmd.Flags().StringP("date", "d", "", "Date to stamp, YYYY-MM-DD (default today)")
	lo.Must0(nameCmd.MarkFlagRequired("url"))

	rootCmd.AddCommand(hashCmd)
}

var nameCmd = &cobra.Command{
	Use:   "name",
	Short: "Print the filename a video would be saved under",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			title     = lo.Must(cmd.Flags().GetString("title"))
			streamURL = lo.Must(cmd.Flags().GetString("url"))
		)

		today, err := parseDate(lo.Must(cmd.Flags().GetString("date")))
		handleErr(err)

		opts, err := session.OptionsFromConfig()
		handleErr(err)

		id := entryid.FromManifest(streamURL).OrEmpty()
		if id == "" && opts.Naming.Strategy == naming.StrategyLegacy {
			handleErr(errors.New("the legacy naming strategy needs an entry id in the url"))
		}

		fmt.Fprintln(cmd.OutOrStdout(), naming.NewGenerator(opts.Naming).Name(id, title, streamURL, today))
	},
}

var hashCmd = &cobra.Command{
	Use:   "hash <text>",
	Short: "Print the short hash used to tell apart videos with equal titles",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), naming.ShortHash(args[0]))
	},
}
