package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kaltdl/kaltdl/config"
	"github.com/kaltdl/kaltdl/filesystem"
	"github.com/kaltdl/kaltdl/key"
	"github.com/kaltdl/kaltdl/where"
	. "github.com/smartystreets/goconvey/convey"
)

const manifest = "https://api.kaltura.switch.ch/p/111/sp/11100/playManifest/entryId/0_dwokpxlc/format/applehttp/a.m3u8"

func init() {
	filesystem.SetMemMapFs()
	if err := config.Setup(); err != nil {
		panic(err)
	}
}

func run(args ...string) string {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	So(rootCmd.Execute(), ShouldBeNil)
	return strings.TrimSpace(buf.String())
}

func TestHashCommand(t *testing.T) {
	Convey("hash should print the short hash", t, func() {
		So(run("hash", "https://host/test.m3u8"), ShouldEqual, "00vqe1vx")
	})
}

func TestExtractCommand(t *testing.T) {
	Convey("extract should print the entry id", t, func() {
		So(run("extract", "https://example.com/entryid%2F0_abc%2F"), ShouldEqual, "0_abc")
		So(run("extract", "--manifest", manifest), ShouldEqual, "0_dwokpxlc")
	})
}

func TestNameCommand(t *testing.T) {
	Convey("name should print the generated filename", t, func() {
		out := run("name", "--title", "Test Video: Part 1 | Moodle ZHAW", "--url", "https://host/test.m3u8", "--date", "2024-01-01")
		So(out, ShouldEqual, "test_video_part_1_2024-01-01_00vqe1vx.mp4")
	})
}

func TestCommandCommand(t *testing.T) {
	Convey("command should print the ffmpeg invocation", t, func() {
		out := run("command", "--title", "Test Video: Part 1 | Moodle ZHAW", "--url", manifest, "--date", "2024-01-01", "--copy=false")
		So(out, ShouldEqual, "ffmpeg -i '"+manifest+"' -c copy ~/Downloads/test_video_part_1_2024-01-01_00yt9eu9.mp4")
	})
}

func TestParseDate(t *testing.T) {
	Convey("parseDate", t, func() {
		d, err := parseDate("2024-03-05")
		So(err, ShouldBeNil)
		So(d.Format("2006-01-02"), ShouldEqual, "2024-03-05")

		_, err = parseDate("05.03.2024")
		So(err, ShouldNotBeNil)

		d, err = parseDate("")
		So(err, ShouldBeNil)
		So(d.IsZero(), ShouldBeFalse)
	})
}

func TestEnvNames(t *testing.T) {
	Convey("envNames should expose every key plus the config path override", t, func() {
		names := envNames()
		So(names, ShouldContain, "KALTDL_COMMAND_QUOTE_POLICY")
		So(names, ShouldContain, "KALTDL_CAPTURE_HOSTS")
		So(names, ShouldContain, where.EnvConfigPath)
	})
}

func TestParseValue(t *testing.T) {
	Convey("parseValue should follow the default's type", t, func() {
		v, err := parseValue(config.Default[key.NamingMaxLength], []string{"60"})
		So(err, ShouldBeNil)
		So(v, ShouldEqual, 60)

		_, err = parseValue(config.Default[key.NamingMaxLength], []string{"sixty"})
		So(err, ShouldNotBeNil)

		v, err = parseValue(config.Default[key.ClipboardCopy], []string{"true"})
		So(err, ShouldBeNil)
		So(v, ShouldEqual, true)

		v, err = parseValue(config.Default[key.CaptureHosts], []string{"a.example", "b.example"})
		So(err, ShouldBeNil)
		So(v, ShouldResemble, []string{"a.example", "b.example"})

		v, err = parseValue(config.Default[key.CommandQuotePolicy], []string{"escape"})
		So(err, ShouldBeNil)
		So(v, ShouldEqual, "escape")
	})
}
