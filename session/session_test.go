package session

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/kaltdl/kaltdl/command"
	"github.com/kaltdl/kaltdl/config"
	"github.com/kaltdl/kaltdl/filesystem"
	"github.com/kaltdl/kaltdl/key"
	"github.com/kaltdl/kaltdl/naming"
	"github.com/kaltdl/kaltdl/registry"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

const (
	manifest  = "https://api.kaltura.switch.ch/p/111/sp/11100/playManifest/entryId/0_dwokpxlc/format/applehttp/a.m3u8"
	ltiLaunch = "https://moodle.zhaw.ch/filter/kaltura/lti_launch.php?source=https%3A%2F%2Fmoodle.kaltura.zhaw.ch%2Fbrowseandembed%2Findex%2Fmedia%2Fentryid%2F0_dwokpxlc%2F"
)

var today = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func init() {
	filesystem.SetMemMapFs()
}

func TestRequest(t *testing.T) {
	Convey("Given a session that saw a manifest request", t, func() {
		s := New(DefaultOptions())
		So(s.OnCandidateRequest(manifest, registry.Primary).MustGet(), ShouldEqual, "0_dwokpxlc")

		Convey("Resolve should return the manifest", func() {
			So(s.Resolve("0_dwokpxlc").MustGet(), ShouldEqual, manifest)
		})

		Convey("Request should produce the filename and command", func() {
			result, err := s.Request("0_dwokpxlc", "Test Video: Part 1 | Moodle ZHAW", today)
			So(err, ShouldBeNil)
			So(result.EntryID, ShouldEqual, "0_dwokpxlc")
			So(result.StreamURL, ShouldEqual, manifest)
			So(result.Filename, ShouldEqual, "test_video_part_1_2024-01-01_00yt9eu9.mp4")
			So(result.Command, ShouldEqual, "ffmpeg -i '"+manifest+"' -c copy ~/Downloads/test_video_part_1_2024-01-01_00yt9eu9.mp4")
		})

		Convey("Request for an entry never captured should ask for playback", func() {
			_, err := s.Request("unknown_id", "Whatever", today)
			So(errors.Is(err, ErrNotFound), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "play video first")
		})

		Convey("A fallback observation should not displace the primary one", func() {
			other := "https://api.kaltura.switch.ch/p/111/sp/11100/playManifest/entryId/0_dwokpxlc/format/applehttp/b.m3u8"
			So(s.OnCandidateRequest(other, registry.Fallback).IsAbsent(), ShouldBeTrue)
			So(s.Resolve("0_dwokpxlc").MustGet(), ShouldEqual, manifest)
		})

		Convey("Unsafe stream URLs should surface the command error", func() {
			quoted := "https://api.kaltura.switch.ch/p/1/playManifest/entryId/1_q/it's.m3u8"
			So(s.OnCandidateRequest(quoted, registry.Primary).IsPresent(), ShouldBeTrue)

			_, err := s.Request("1_q", "Title", today)
			So(errors.Is(err, command.ErrUnsafeInput), ShouldBeTrue)
		})
	})

	Convey("Sessions should not share state", t, func() {
		a, b := New(DefaultOptions()), New(DefaultOptions())
		a.OnCandidateRequest(manifest, registry.Primary)

		So(a.Resolve("0_dwokpxlc").IsPresent(), ShouldBeTrue)
		So(b.Resolve("0_dwokpxlc").IsPresent(), ShouldBeFalse)
	})

	Convey("The legacy strategy should key filenames on the entry", t, func() {
		opts := DefaultOptions()
		opts.Naming.Strategy = naming.StrategyLegacy

		s := New(opts)
		s.OnCandidateRequest(manifest, registry.Primary)

		result, err := s.Request("0_dwokpxlc", "Ignored", today)
		So(err, ShouldBeNil)
		So(result.Filename, ShouldEqual, "kaltura_0_dwokpxlc_2024-01-01.mp4")
	})

	Convey("Host restrictions should drop foreign manifests", t, func() {
		opts := DefaultOptions()
		opts.Hosts = []string{"*.kaltura.switch.ch"}

		s := New(opts)
		So(s.OnCandidateRequest("https://cdn.example.com/entryId/0_x/a.m3u8", registry.Primary).IsAbsent(), ShouldBeTrue)
		So(s.OnCandidateRequest(manifest, registry.Primary).IsPresent(), ShouldBeTrue)
	})
}

func TestOnEmbedDiscovered(t *testing.T) {
	Convey("OnEmbedDiscovered", t, func() {
		s := New(DefaultOptions())

		Convey("Should extract the entry id once per reference", func() {
			id, err := s.OnEmbedDiscovered(ltiLaunch)
			So(err, ShouldBeNil)
			So(id, ShouldEqual, "0_dwokpxlc")

			id, err = s.OnEmbedDiscovered(ltiLaunch)
			So(errors.Is(err, ErrDuplicateEmbed), ShouldBeTrue)
			So(id, ShouldEqual, "0_dwokpxlc")

			So(s.Embeds(), ShouldResemble, []string{"0_dwokpxlc"})
		})

		Convey("Should list an entry once even when embedded twice", func() {
			_, _ = s.OnEmbedDiscovered(ltiLaunch)
			_, err := s.OnEmbedDiscovered("https://example.com/embed/entryid/0_dwokpxlc/")
			So(err, ShouldBeNil)
			_, _ = s.OnEmbedDiscovered("https://example.com/embed/entryid/1_other/")

			So(s.Embeds(), ShouldResemble, []string{"0_dwokpxlc", "1_other"})
		})

		Convey("Should reject references without an entry id", func() {
			_, err := s.OnEmbedDiscovered("https://www.youtube.com/embed/dQw4w9WgXcQ")
			So(errors.Is(err, ErrMalformedReference), ShouldBeTrue)
			So(s.Embeds(), ShouldBeEmpty)
		})

		Convey("Embeds should return a copy", func() {
			_, _ = s.OnEmbedDiscovered(ltiLaunch)
			embeds := s.Embeds()
			embeds[0] = "tampered"
			So(s.Embeds()[0], ShouldEqual, "0_dwokpxlc")
		})
	})
}

func TestConcurrentSession(t *testing.T) {
	Convey("Concurrent capture and requests should be safe", t, func() {
		s := New(DefaultOptions())

		var wg sync.WaitGroup
		for i := 0; i < 32; i++ {
			wg.Add(2)
			go func(i int) {
				defer wg.Done()
				s.OnCandidateRequest(fmt.Sprintf("https://h/playManifest/entryId/0_%d/a.m3u8", i), registry.Primary)
			}(i)
			go func(i int) {
				defer wg.Done()
				_, _ = s.OnEmbedDiscovered(fmt.Sprintf("https://h/entryid/0_%d/", i))
			}(i)
		}
		wg.Wait()

		So(s.Snapshot(), ShouldHaveLength, 32)
		So(s.Embeds(), ShouldHaveLength, 32)
	})
}

func TestOptionsFromConfig(t *testing.T) {
	Convey("OptionsFromConfig", t, func() {
		So(config.Setup(), ShouldBeNil)

		Convey("Should read the defaults", func() {
			opts, err := OptionsFromConfig()
			So(err, ShouldBeNil)
			So(opts.Naming.Strategy, ShouldEqual, naming.StrategyTitle)
			So(opts.Naming.MaxLength, ShouldEqual, 80)
			So(opts.Command.Policy, ShouldEqual, command.Reject)
			So(opts.Hosts, ShouldContain, "api.kaltura.switch.ch")
		})

		Convey("Should reject unknown values", func() {
			viper.Set(key.CommandQuotePolicy, "sometimes")
			defer viper.Set(key.CommandQuotePolicy, "reject")

			_, err := OptionsFromConfig()
			So(err, ShouldNotBeNil)
		})
	})
}
