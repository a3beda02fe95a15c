package util

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/kaltdl/kaltdl/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "command", "commands"), ShouldEqual, "1 command")
		So(Quantify(0, "command", "commands"), ShouldEqual, "0 commands")
		So(Quantify(2, "command", "commands"), ShouldEqual, "2 commands")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("history file"), ShouldEqual, "History file")
		So(Capitalize("über"), ShouldEqual, "Über")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestPrintErasable(t *testing.T) {
	Convey("The eraser should blank exactly what was printed", t, func() {
		var buf bytes.Buffer
		erase := printErasable(&buf, "Grüße")
		So(buf.String(), ShouldEqual, "\rGrüße")

		buf.Reset()
		erase()
		So(buf.String(), ShouldEqual, "\r     \r")
	})
}

func TestIgnore(t *testing.T) {
	Convey("Ignore should call the function", t, func() {
		called := false
		Ignore(func() error {
			called = true
			return errors.New("ignored")
		})
		So(called, ShouldBeTrue)
	})
}

func TestDelete(t *testing.T) {
	Convey("Delete", t, func() {
		fs := filesystem.API()
		dir := filepath.Join("/tmp", "kaltdl-delete")
		file := filepath.Join(dir, "history.json")
		So(fs.MkdirAll(dir, 0o755), ShouldBeNil)
		So(fs.WriteFile(file, []byte("{}"), 0o644), ShouldBeNil)

		Convey("Should remove a single file", func() {
			So(Delete(file), ShouldBeNil)
			exists, _ := fs.Exists(file)
			So(exists, ShouldBeFalse)
		})

		Convey("Should remove a directory tree", func() {
			So(Delete(dir), ShouldBeNil)
			exists, _ := fs.Exists(dir)
			So(exists, ShouldBeFalse)
		})

		Convey("Should report missing paths", func() {
			So(Delete(filepath.Join(dir, "missing")), ShouldNotBeNil)
		})
	})
}
