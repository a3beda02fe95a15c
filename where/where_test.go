package where

import (
	"path/filepath"
	"testing"

	"github.com/kaltdl/kaltdl/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		for name, resolve := range map[string]func() string{
			"Config": Config,
			"Cache":  Cache,
			"Logs":   Logs,
			"State":  State,
		} {
			Convey(name+"() should create the directory", func() {
				path := resolve()
				So(path, ShouldNotBeEmpty)
				So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
			})
		}

		Convey("Config() honours the override variable", func() {
			t.Setenv(EnvConfigPath, "/custom/kaltdl")
			So(Config(), ShouldEqual, "/custom/kaltdl")
			So(History(), ShouldEqual, filepath.Join("/custom/kaltdl", "history.json"))
		})

		Convey("Runtime() prefers XDG_RUNTIME_DIR", func() {
			t.Setenv("XDG_RUNTIME_DIR", "/run/user/1000")
			So(Runtime(), ShouldEqual, filepath.Join("/run/user/1000", "kaltdl"))
			So(LockFile(), ShouldEqual, filepath.Join("/run/user/1000", "kaltdl", "serve.lock"))
		})
	})
}
