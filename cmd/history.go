package cmd

import (
	"encoding/json"

	"github.com/kaltdl/kaltdl/color"
	"github.com/kaltdl/kaltdl/history"
	"github.com/kaltdl/kaltdl/icon"
	"github.com/kaltdl/kaltdl/style"
	"github.com/kaltdl/kaltdl/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	historyCmd.Flags().IntP("limit", "n", 0, "Show at most this many records")
	historyCmd.Flags().StringP("remove", "r", "", "Forget the record for this filename")
}

var historyCmd = &cobra.Command{
	Use:   "history [query]",
	Short: "List generated commands, newest first",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if filename := lo.Must(cmd.Flags().GetString("remove")); filename != "" {
			handleErr(history.Remove(filename))
			cmd.Printf("%s forgot %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), filename)
			return
		}

		var query string
		if len(args) > 0 {
			query = args[0]
		}

		records, err := history.Search(query)
		handleErr(err)

		if limit := lo.Must(cmd.Flags().GetInt("limit")); limit > 0 && len(records) > limit {
			records = records[:limit]
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(records))
			return
		}

		if len(records) == 0 {
			cmd.Printf("%s no commands generated yet\n", icon.Get(icon.Warn))
			return
		}

		for i, r := range records {
			cmd.Printf("%s %s\n", style.Fg(color.Purple)(icon.Get(icon.Video)), style.Bold(r.Filename))
			cmd.Printf("  %s\n", style.Faint(r.SavedAt.Format("2006-01-02 15:04")+" · "+util.Quantify(r.Count, "time", "times")))
			cmd.Printf("  %s\n", style.Command(r.Command))

			if i < len(records)-1 {
				cmd.Println()
			}
		}
	},
}
