package bilibili

import (
	"context"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

const (
	rankingHit = `{"data":{"list":{"list":[{"title":"R","bvid":"BVr"}]}}}`
	popularHit = `{"data":{"list":[{"title":"P","bvid":"BVp"}]}}`
)

func TestSelectorPick(t *testing.T) {
	Convey("Selector.Pick", t, func() {
		ctx := context.Background()
		f := newFakeFetcher()

		var fallbacks []error
		s := &Selector{Fetcher: f, OnFallback: func(cause error) { fallbacks = append(fallbacks, cause) }}

		Convey("auto returns ranking when it has an entry", func() {
			f.on(Ranking, rankingHit).on(Popular, popularHit)

			out := s.Pick(ctx, ModeAuto)
			So(out.Status, ShouldEqual, Found)
			So(out.Video.Title, ShouldEqual, "R")
			So(f.calls, ShouldResemble, []string{Ranking.Endpoint})
			So(fallbacks, ShouldBeEmpty)
		})

		Convey("auto falls back once when ranking is empty", func() {
			f.on(Ranking, `{"data":{"list":{"list":[]}}}`).on(Popular, popularHit)

			out := s.Pick(ctx, ModeAuto)
			So(out.Status, ShouldEqual, Found)
			So(out.Video.Title, ShouldEqual, "P")
			So(f.calls, ShouldResemble, []string{Ranking.Endpoint, Popular.Endpoint})
			So(fallbacks, ShouldHaveLength, 1)
			So(fallbacks[0], ShouldBeNil)
		})

		for name, cause := range map[string]error{
			"network": &NetworkError{Err: errors.New("connection reset")},
			"http":    &HTTPError{StatusCode: 412, Status: "412 Precondition Failed"},
			"decode":  &DecodeError{Err: errors.New("invalid character '<'")},
		} {
			cause := cause
			Convey("auto falls back once after a "+name+" error", func() {
				f.fail(Ranking, cause).on(Popular, popularHit)

				out := s.Pick(ctx, ModeAuto)
				So(out.Status, ShouldEqual, Found)
				So(out.Video.BVID, ShouldEqual, "BVp")
				So(f.calls, ShouldResemble, []string{Ranking.Endpoint, Popular.Endpoint})
				So(fallbacks, ShouldResemble, []error{cause})
			})
		}

		Convey("auto surfaces the popular outcome unchanged", func() {
			Convey("when popular is empty", func() {
				f.fail(Ranking, &HTTPError{StatusCode: 500, Status: "500"}).on(Popular, `{"data":{"list":[]}}`)

				out := s.Pick(ctx, ModeAuto)
				So(out.Status, ShouldEqual, NotFound)
				So(out.Err, ShouldBeNil)
			})

			Convey("when popular fails", func() {
				popularErr := &HTTPError{StatusCode: 503, Status: "503 Service Unavailable"}
				f.on(Ranking, `{"data":{"list":{"list":[]}}}`).fail(Popular, popularErr)

				out := s.Pick(ctx, ModeAuto)
				So(out.Status, ShouldEqual, Failed)
				So(out.Err, ShouldEqual, popularErr)
				So(f.calls, ShouldHaveLength, 2)
			})
		})

		Convey("ranking never falls back", func() {
			f.fail(Ranking, &NetworkError{Err: errors.New("timeout")}).on(Popular, popularHit)

			out := s.Pick(ctx, ModeRanking)
			So(out.Status, ShouldEqual, Failed)
			So(errors.Is(out.Err, ErrNetwork), ShouldBeTrue)
			So(f.calls, ShouldResemble, []string{Ranking.Endpoint})
			So(fallbacks, ShouldBeEmpty)
		})

		Convey("ranking empty is not found without fallback", func() {
			f.on(Ranking, `{"data":{"list":{"list":[]}}}`).on(Popular, popularHit)

			out := s.Pick(ctx, ModeRanking)
			So(out.Status, ShouldEqual, NotFound)
			So(f.calls, ShouldHaveLength, 1)
		})

		Convey("popular 503 fails with the HTTP status", func() {
			f.fail(Popular, &HTTPError{StatusCode: 503, Status: "503 Service Unavailable"})

			out := s.Pick(ctx, ModePopular)
			So(out.Status, ShouldEqual, Failed)

			var httpErr *HTTPError
			So(errors.As(out.Err, &httpErr), ShouldBeTrue)
			So(httpErr.StatusCode, ShouldEqual, 503)
			So(f.calls, ShouldResemble, []string{Popular.Endpoint})
		})

		Convey("unknown modes fail without fetching", func() {
			out := s.Pick(ctx, Mode(42))
			So(out.Status, ShouldEqual, Failed)
			So(f.calls, ShouldBeEmpty)
		})
	})
}

func TestPick(t *testing.T) {
	Convey("Pick without a hook", t, func() {
		f := newFakeFetcher().on(Popular, popularHit)
		out := Pick(context.Background(), f, ModeAuto)
		So(out.Status, ShouldEqual, Found)
		So(out.Status.String(), ShouldEqual, "found")
	})
}
