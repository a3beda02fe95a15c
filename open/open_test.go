package open

import (
	"testing"

	"github.com/kaltdl/kaltdl/constant"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCommand(t *testing.T) {
	Convey("Command should pick the platform opener", t, func() {
		cmd, err := Command(constant.Linux, "/home/u/.config/kaltdl/kaltdl.toml")
		So(err, ShouldBeNil)
		So(cmd.Args, ShouldResemble, []string{"xdg-open", "/home/u/.config/kaltdl/kaltdl.toml"})

		cmd, err = Command(constant.Darwin, "/x")
		So(err, ShouldBeNil)
		So(cmd.Args, ShouldResemble, []string{"open", "/x"})

		cmd, err = Command(constant.Windows, "C:\\x")
		So(err, ShouldBeNil)
		So(cmd.Args[1:], ShouldResemble, []string{"url.dll,FileProtocolHandler", "C:\\x"})

		_, err = Command("plan9", "/x")
		So(err, ShouldNotBeNil)
	})
}
