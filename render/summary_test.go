package render

import (
	"bytes"
	"testing"

	"github.com/bilihot/bilihot/bilibili"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestPrinter(t *testing.T) {
	Convey("Printer", t, func() {
		var buf bytes.Buffer
		p := &Printer{Out: &buf}

		Convey("Summary prints the fixed layout", func() {
			v := bilibili.Video{
				Title:     "A",
				Author:    "X",
				BVID:      "BV1",
				URL:       "https://www.bilibili.com/video/BV1",
				ViewCount: mo.Some[int64](2500),
				LikeCount: mo.Some[int64](1_200_000),
				CoinCount: mo.Some[int64](0),
			}

			So(p.Summary(v), ShouldBeNil)
			So(buf.String(), ShouldEqual, "Hottest video today\n"+
				"- Title:  A\n"+
				"- Author: X\n"+
				"- URL:    https://www.bilibili.com/video/BV1\n"+
				"- Stats:  views 2.5K, likes 1.2M, coins 0, favorites -, shares -\n")
		})

		Convey("NotFound prints the plain message", func() {
			So(p.NotFound(), ShouldBeNil)
			So(buf.String(), ShouldEqual, "No video found.\n")
		})

		Convey("Saved names the path", func() {
			So(p.Saved("out.json"), ShouldBeNil)
			So(buf.String(), ShouldEqual, "Saved JSON to out.json\n")
		})
	})
}
