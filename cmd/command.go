package cmd

import (
	"fmt"

	"github.com/kaltdl/kaltdl/color"
	"github.com/kaltdl/kaltdl/command"
	"github.com/kaltdl/kaltdl/entryid"
	"github.com/kaltdl/kaltdl/history"
	"github.com/kaltdl/kaltdl/icon"
	"github.com/kaltdl/kaltdl/key"
	"github.com/kaltdl/kaltdl/log"
	"github.com/kaltdl/kaltdl/registry"
	"github.com/kaltdl/kaltdl/session"
	"github.com/kaltdl/kaltdl/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(commandCmd)
	commandCmd.Flags().StringP("title", "t", "", "Page title of the video")
	commandCmd.Flags().StringP("url", "u", "", "Stream manifest URL")
	commandCmd.Flags().StringP("date", "d", "", "Date to stamp, YYYY-MM-DD (default today)")
	commandCmd.Flags().BoolP("copy", "c", false, "Copy the command to the clipboard")
	lo.Must0(commandCmd.MarkFlagRequired("url"))
}

var commandCmd = &cobra.Command{
	Use:   "command",
	Short: "Print the ffmpeg command that saves a stream",
	Example: `  kaltdl command --title "Kapitel 6 - Teil 1 | Moodle ZHAW" \
    --url "https://api.kaltura.switch.ch/p/111/sp/11100/playManifest/entryId/0_dwokpxlc/format/applehttp/a.m3u8"`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			title     = lo.Must(cmd.Flags().GetString("title"))
			streamURL = lo.Must(cmd.Flags().GetString("url"))
		)

		today, err := parseDate(lo.Must(cmd.Flags().GetString("date")))
		handleErr(err)

		id, ok := entryid.FromManifest(streamURL).Get()
		if !ok {
			handleErr(fmt.Errorf("no entry id in %q", streamURL))
		}

		opts, err := session.OptionsFromConfig()
		handleErr(err)
		// an explicitly given url is trusted whatever its host
		opts.Hosts = nil

		sess := session.New(opts)
		sess.OnCandidateRequest(streamURL, registry.Primary)
		if sess.Resolve(id).IsAbsent() {
			handleErr(fmt.Errorf("%q is not a stream manifest", streamURL))
		}

		result, err := sess.Request(id, title, today)
		handleErr(err)

		if err := history.Save(result, title); err != nil {
			log.Entry(id).Warnf("could not save history: %s", err)
		}

		copyToClipboard := flagOrConfig(cmd, "copy", key.ClipboardCopy)

		sinks := command.Sinks{command.WriterSink{W: cmd.OutOrStdout()}}
		if copyToClipboard {
			sinks = append(sinks, command.ClipboardSink{})
		}
		handleErr(sinks.Deliver(cmd.Context(), result))

		if copyToClipboard {
			cmd.PrintErrf("%s copied to clipboard\n", style.Fg(color.Green)(icon.Get(icon.Copy)))
		}
	},
}
