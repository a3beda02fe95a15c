package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kaltdl/kaltdl/auth"
	"github.com/kaltdl/kaltdl/color"
	"github.com/kaltdl/kaltdl/command"
	"github.com/kaltdl/kaltdl/icon"
	"github.com/kaltdl/kaltdl/key"
	"github.com/kaltdl/kaltdl/log"
	"github.com/kaltdl/kaltdl/server"
	"github.com/kaltdl/kaltdl/session"
	"github.com/kaltdl/kaltdl/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("host", "", "Address to listen on")
	lo.Must0(viper.BindPFlag(key.ServerHost, serveCmd.Flags().Lookup("host")))

	serveCmd.Flags().IntP("port", "p", 0, "Port to listen on, 0 picks a free one")
	lo.Must0(viper.BindPFlag(key.ServerPort, serveCmd.Flags().Lookup("port")))

	serveCmd.Flags().BoolP("copy", "c", false, "Copy every generated command to the clipboard")

	serveCmd.Flags().Bool("reset-token", false, "Generate a new token for the extension")
	serveCmd.Flags().Bool("print-token", false, "Print the token the extension must present")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the local bridge the browser extension talks to",
	Long: `Run the local bridge the browser extension talks to.

The bridge keeps the stream URLs captured during this run in memory only.
Stopping it forgets them.`,
	Run: func(cmd *cobra.Command, args []string) {
		lock, err := server.Lock()
		handleErr(err)
		defer func() {
			_ = lock.Unlock()
		}()

		if lo.Must(cmd.Flags().GetBool("reset-token")) {
			handleErr(auth.DeleteToken())
		}

		token, err := auth.EnsureToken()
		handleErr(err)

		opts, err := session.OptionsFromConfig()
		handleErr(err)

		port, ln, err := server.Listen(viper.GetString(key.ServerHost), viper.GetInt(key.ServerPort))
		handleErr(err)

		if err := server.SavePort(port); err != nil {
			log.Warnf("could not write port file: %s", err)
		}
		defer func() {
			if err := server.RemovePort(); err != nil {
				log.Warnf("could not remove port file: %s", err)
			}
		}()

		var serverOpts = []server.Option{server.WithPort(port)}
		if flagOrConfig(cmd, "copy", key.ClipboardCopy) {
			serverOpts = append(serverOpts, server.WithSink(command.ClipboardSink{}))
		}

		cmd.Printf("%s bridge listening on %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Bold(ln.Addr().String()),
		)
		if lo.Must(cmd.Flags().GetBool("print-token")) {
			cmd.Printf("%s token %s\n", icon.Get(icon.Link), style.Fg(color.Yellow)(token))
		}
		log.Infof("bridge listening on %s", ln.Addr())

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv := server.New(session.New(opts), token, serverOpts...)
		if err := srv.Serve(ctx, ln); err != nil {
			handleErr(fmt.Errorf("bridge stopped: %w", err))
		}

		cmd.Printf("%s bridge stopped\n", icon.Get(icon.Success))
	},
}
