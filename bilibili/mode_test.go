package bilibili

import (
	"testing"

	"github.com/samber/lo"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParseMode(t *testing.T) {
	Convey("ParseMode", t, func() {
		Convey("Accepts every mode name case-insensitively", func() {
			for _, m := range Modes() {
				parsed, err := ParseMode(m.String())
				So(err, ShouldBeNil)
				So(parsed, ShouldEqual, m)
			}

			parsed, err := ParseMode("  Ranking ")
			So(err, ShouldBeNil)
			So(parsed, ShouldEqual, ModeRanking)
		})

		Convey("Suggests the closest mode for typos", func() {
			_, err := ParseMode("populr")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, `did you mean "popular"`)
		})

		Convey("Lists names in display order", func() {
			So(ModeNames(), ShouldResemble, []string{"auto", "ranking", "popular"})
		})
	})
}

func TestModeFeeds(t *testing.T) {
	Convey("Mode.Feeds", t, func() {
		Convey("Auto tries ranking before popular", func() {
			names := lo.Map(ModeAuto.Feeds(), func(f Feed, _ int) string { return f.Name })
			So(names, ShouldResemble, []string{"ranking", "popular"})
		})

		Convey("Explicit modes consult a single feed", func() {
			So(ModeRanking.Feeds(), ShouldHaveLength, 1)
			So(ModePopular.Feeds()[0].Name, ShouldEqual, "popular")
		})

		Convey("Feed URLs keep the upstream parameter order", func() {
			So(Ranking.URL(), ShouldEqual, "https://api.bilibili.com/x/web-interface/ranking/v2?rid=0&type=all&day=1")
			So(Popular.URL(), ShouldEqual, "https://api.bilibili.com/x/web-interface/popular?ps=20&pn=1")
		})
	})
}
