package entryid

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

const (
	ltiLaunch = "https://moodle.zhaw.ch/filter/kaltura/lti_launch.php?source=https%3A%2F%2Fmoodle.kaltura.zhaw.ch%2Fbrowseandembed%2Findex%2Fmedia%2Fentryid%2F0_dwokpxlc%2F"
	manifest  = "https://api.kaltura.switch.ch/p/111/sp/11100/playManifest/entryId/0_dwokpxlc/format/applehttp/a.m3u8"
)

func TestExtract(t *testing.T) {
	Convey("Extract", t, func() {
		Convey("Should read the percent-encoded form of an iframe source", func() {
			So(Extract(ltiLaunch).MustGet(), ShouldEqual, "0_dwokpxlc")
		})

		Convey("Should read the plain path form", func() {
			So(Extract("https://example.com/entryid/0_abcd1234/").MustGet(), ShouldEqual, "0_abcd1234")
			So(Extract(manifest).MustGet(), ShouldEqual, "0_dwokpxlc")
		})

		Convey("Should match the marker case-insensitively", func() {
			So(Extract("https://example.com/ENTRYID/1_x").MustGet(), ShouldEqual, "1_x")
			So(Extract("https://example.com/EntryId%2f1_y%2F").MustGet(), ShouldEqual, "1_y")
		})

		Convey("Should stop the token at / % and &", func() {
			So(Extract("https://e.com/entryid/0_a&b=c").MustGet(), ShouldEqual, "0_a")
			So(Extract("https://e.com/entryid%2F0_b%3Fx").MustGet(), ShouldEqual, "0_b")
		})

		Convey("Should prefer the percent-encoded form when both appear", func() {
			ref := "https://e.com/entryid/plain_id?src=entryid%2Fencoded_id%2F"
			So(Extract(ref).MustGet(), ShouldEqual, "encoded_id")
		})

		Convey("Should be idempotent", func() {
			So(Extract(ltiLaunch), ShouldResemble, Extract(ltiLaunch))
		})

		Convey("Should report absence without failing", func() {
			So(Extract("https://example.com/video/42").IsAbsent(), ShouldBeTrue)
			So(Extract("").IsAbsent(), ShouldBeTrue)
			So(Extract("https://e.com/entryid/").IsAbsent(), ShouldBeTrue)
		})

		Convey("Should ignore the query form used only by manifests", func() {
			So(Extract("https://e.com/x?entryId=0_q").IsAbsent(), ShouldBeTrue)
		})
	})
}

func TestFromManifest(t *testing.T) {
	Convey("FromManifest", t, func() {
		So(FromManifest(manifest).MustGet(), ShouldEqual, "0_dwokpxlc")
		So(FromManifest("https://api.kaltura.switch.ch/playManifest?entryId=0_q&flavor=1").MustGet(), ShouldEqual, "0_q")
		So(FromManifest("https://api.kaltura.switch.ch/a.m3u8").IsAbsent(), ShouldBeTrue)
		So(Has(manifest), ShouldBeTrue)
		So(Has("https://api.kaltura.switch.ch/a.m3u8"), ShouldBeFalse)
	})
}
