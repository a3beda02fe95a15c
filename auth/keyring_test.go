package auth

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/kaltdl/kaltdl/filesystem"
	"github.com/kaltdl/kaltdl/where"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/zalando/go-keyring"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestKeyringToken(t *testing.T) {
	Convey("Given a working keyring", t, func() {
		keyring.MockInit()
		_ = DeleteToken()

		Convey("EnsureToken should generate a uuid once and then reuse it", func() {
			first, err := EnsureToken()
			So(err, ShouldBeNil)
			_, err = uuid.Parse(first)
			So(err, ShouldBeNil)

			second, err := EnsureToken()
			So(err, ShouldBeNil)
			So(second, ShouldEqual, first)
		})

		Convey("GetToken should report a missing token", func() {
			_, err := GetToken()
			So(errors.Is(err, keyring.ErrNotFound), ShouldBeTrue)
		})

		Convey("DeleteToken should force a new token", func() {
			first, _ := EnsureToken()
			So(DeleteToken(), ShouldBeNil)

			second, err := EnsureToken()
			So(err, ShouldBeNil)
			So(second, ShouldNotEqual, first)
		})
	})
}

func TestFileFallback(t *testing.T) {
	Convey("Given a keyring that refuses every call", t, func() {
		keyring.MockInitWithError(errors.New("no dbus session"))
		_ = DeleteToken()

		Convey("EnsureToken should fall back to a private file", func() {
			token, err := EnsureToken()
			So(err, ShouldBeNil)

			data, err := filesystem.API().ReadFile(where.TokenFile())
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, token)

			info, err := filesystem.API().Stat(where.TokenFile())
			So(err, ShouldBeNil)
			So(info.Mode().Perm(), ShouldEqual, 0o600)

			again, err := EnsureToken()
			So(err, ShouldBeNil)
			So(again, ShouldEqual, token)
		})
	})
}
