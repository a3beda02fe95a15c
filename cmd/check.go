package cmd

import (
	"fmt"
	"net/http"
	"os/exec"
	"runtime"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/kaltdl/kaltdl/constant"
	"github.com/kaltdl/kaltdl/icon"
	"github.com/kaltdl/kaltdl/key"
	"github.com/kaltdl/kaltdl/network"
	"github.com/kaltdl/kaltdl/server"
	"github.com/kaltdl/kaltdl/style"
	"github.com/kaltdl/kaltdl/util"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that ffmpeg is installed and whether the bridge is running",
	Run: func(cmd *cobra.Command, args []string) {
		binary := viper.GetString(key.CommandBinary)

		path, err := exec.LookPath(binary)
		if err != nil {
			cmd.Println(missingDependency(binary))
		} else {
			cmd.Println(icon.Line(icon.Success, fmt.Sprintf("%s found at %s", binary, path)))
		}

		if port, ok := bridgePort(); ok {
			cmd.Println(icon.Line(icon.Success, "bridge running on port "+strconv.Itoa(port)))
		} else {
			cmd.Println(icon.Line(icon.Warn, "bridge not running, start it with "+style.Bold(constant.Kaltdl+" serve")))
		}

		if err != nil {
			handleErr(fmt.Errorf("%s is required to run generated commands", binary))
		}
	},
}

// bridgePort returns the advertised port when a bridge answers on it.
func bridgePort() (int, bool) {
	port, err := server.ReadPort()
	if err != nil {
		return 0, false
	}

	resp, err := network.Client.Get(fmt.Sprintf("http://127.0.0.1:%d/health", port))
	if err != nil {
		return 0, false
	}
	defer util.Ignore(resp.Body.Close)

	return port, resp.StatusCode == http.StatusOK
}

func missingDependency(dep string) string {
	title := style.New().Bold(true).Foreground(style.ErrorColor).Render(fmt.Sprintf("%s Missing dependency", icon.Get(icon.Fail)))
	body := style.New().Foreground(style.Text).Render(fmt.Sprintf("'%s' was not found in your PATH.", dep))

	suggestion := ""
	if hint, ok := constant.FFmpegInstallHints[runtime.GOOS]; ok && dep == constant.DefaultBinary {
		suggestion = fmt.Sprintf("\n\nTo install it, try running:\n  %s", style.New().Foreground(style.AccentColor).Bold(true).Render(hint))
	}

	return style.Box(style.ErrorColor, lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		body+suggestion,
	))
}
