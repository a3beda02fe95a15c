package filesystem

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestApi(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Should default to OsFs", func() {
			SetOsFs()
			So(API().Name(), ShouldEqual, "OsFs")
		})

		Convey("Should switch to MemMapFs", func() {
			SetMemMapFs()
			So(API().Name(), ShouldEqual, "MemMapFS")
		})
	})
}

func TestWriteAtomic(t *testing.T) {
	Convey("Given an in-memory backend", t, func() {
		SetMemMapFs()
		So(API().MkdirAll("/state", 0o755), ShouldBeNil)

		Convey("WriteAtomic leaves only the final file behind", func() {
			So(WriteAtomic("/state/port", []byte("17170"), 0o644), ShouldBeNil)

			data, err := API().ReadFile("/state/port")
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "17170")

			exists, err := API().Exists("/state/port.tmp")
			So(err, ShouldBeNil)
			So(exists, ShouldBeFalse)
		})
	})
}

func TestNewCache(t *testing.T) {
	Convey("Given a cache created before switching backends", t, func() {
		SetOsFs()
		cache := NewCache[map[string]int]("/cache/counts.json", 0)
		SetMemMapFs()

		Convey("Set writes JSON through the active backend", func() {
			So(cache.Set(map[string]int{"0_abc": 2}), ShouldBeNil)

			data, err := API().ReadFile("/cache/counts.json")
			So(err, ShouldBeNil)
			So(string(data), ShouldContainSubstring, `"0_abc":2`)

			Convey("Get returns the value without expiring it", func() {
				counts, expired, err := cache.Get()
				So(err, ShouldBeNil)
				So(expired, ShouldBeFalse)
				So(counts["0_abc"], ShouldEqual, 2)
			})
		})
	})
}
