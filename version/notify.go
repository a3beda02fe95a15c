package version

import (
	"fmt"

	"github.com/kaltdl/kaltdl/constant"
	"github.com/kaltdl/kaltdl/icon"
	"github.com/kaltdl/kaltdl/key"
	"github.com/kaltdl/kaltdl/style"
	"github.com/kaltdl/kaltdl/util"
	"github.com/spf13/viper"
)

// Notify prints a notice when a newer release than the running one exists.
// Network failures are silent; the check is a courtesy.
func Notify() {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	erase := util.PrintErasable(icon.Line(icon.Progress, "Checking for a new version..."))
	latest, err := Latest()
	erase()
	if err != nil {
		return
	}

	if newer, err := Compare(latest, constant.Version); err != nil || newer <= 0 {
		return
	}

	fmt.Println()
	fmt.Println(icon.Line(icon.Link, fmt.Sprintf("%s %s is out, you are on %s",
		constant.Kaltdl,
		style.Bold(latest),
		style.Faint(constant.Version),
	)))
	fmt.Println(style.Faint(ReleasesURL + "/tag/v" + latest))
	fmt.Println()
}
