package icon

import (
	"testing"

	"github.com/kaltdl/kaltdl/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestGet(t *testing.T) {
	Convey("Given a registered icon", t, func() {
		target := Copy

		Convey("It renders correctly for each variant", func() {
			for _, variant := range AvailableVariants() {
				Convey("variant="+variant, func() {
					viper.Set(key.IconsVariant, variant)
					result := Get(target)
					So(result, ShouldNotBeEmpty)
				})
			}
		})

		Convey("It returns empty for an unknown variant", func() {
			viper.Set(key.IconsVariant, "")
			result := Get(target)
			So(result, ShouldBeEmpty)
		})
	})
}

func TestLine(t *testing.T) {
	Convey("Line", t, func() {
		viper.Set(key.IconsVariant, "plain")
		So(Line(Success, "copied"), ShouldEqual, "OK copied")

		viper.Set(key.IconsVariant, "")
		So(Line(Success, "copied"), ShouldEqual, "copied")
	})
}

func TestRegistry(t *testing.T) {
	Convey("Every icon should define every variant", t, func() {
		for i, g := range icons {
			So(len(g), ShouldEqual, len(AvailableVariants()))
			for _, variant := range AvailableVariants() {
				So(icons[i][variant], ShouldNotBeEmpty)
			}
		}
	})

	Convey("Variants should be listed in a stable order", t, func() {
		So(AvailableVariants(), ShouldResemble, []string{emoji, kaomoji, nerd, plain, squares})
	})
}
