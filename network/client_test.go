package network

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/bilihot/bilihot/constant"
	"github.com/bilihot/bilihot/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestNew(t *testing.T) {
	Convey("New", t, func() {
		Convey("Defaults to the fixed request timeout and a cookie jar", func() {
			client, err := New(Options{})
			So(err, ShouldBeNil)
			So(client.Timeout, ShouldEqual, constant.RequestTimeout)
			So(client.Jar, ShouldNotBeNil)
		})

		Convey("Routes through a configured proxy", func() {
			client, err := New(Options{Proxy: "http://127.0.0.1:8080", Timeout: time.Second})
			So(err, ShouldBeNil)

			transport := client.Transport.(*http.Transport)
			req, _ := http.NewRequest(http.MethodGet, constant.RankingURL, nil)
			proxy, err := transport.Proxy(req)
			So(err, ShouldBeNil)
			So(proxy.String(), ShouldEqual, "http://127.0.0.1:8080")
		})

		Convey("Rejects a relative proxy as client unavailable", func() {
			_, err := New(Options{Proxy: "127.0.0.1:8080"})
			So(errors.Is(err, ErrClientUnavailable), ShouldBeTrue)
		})

		Convey("Rejects an unparsable proxy as client unavailable", func() {
			_, err := New(Options{Proxy: "http://[::1"})
			So(errors.Is(err, ErrClientUnavailable), ShouldBeTrue)
		})

		Convey("Fingerprinting installs the custom dialer and disables h2", func() {
			client, err := New(Options{TLSFingerprint: true})
			So(err, ShouldBeNil)

			transport := client.Transport.(*http.Transport)
			So(transport.DialTLSContext, ShouldNotBeNil)
			So(transport.ForceAttemptHTTP2, ShouldBeFalse)
		})

		Convey("Keeps cookies set by the upstream within a run", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.SetCookie(w, &http.Cookie{Name: "buvid3", Value: "abc", Path: "/"})
			}))
			defer srv.Close()

			client, err := New(Options{})
			So(err, ShouldBeNil)

			resp, err := client.Get(srv.URL)
			So(err, ShouldBeNil)
			resp.Body.Close()

			u, _ := url.Parse(srv.URL)
			So(client.Jar.Cookies(u), ShouldHaveLength, 1)
		})
	})
}

func TestOptionsFromConfig(t *testing.T) {
	Convey("OptionsFromConfig", t, func() {
		viper.Set(key.NetProxy, "socks5://127.0.0.1:1080")
		viper.Set(key.NetTLSFingerprint, true)

		opts := OptionsFromConfig()
		So(opts.Proxy, ShouldEqual, "socks5://127.0.0.1:1080")
		So(opts.TLSFingerprint, ShouldBeTrue)
		So(opts.Timeout, ShouldEqual, constant.RequestTimeout)

		Reset(func() {
			viper.Set(key.NetProxy, "")
			viper.Set(key.NetTLSFingerprint, false)
		})
	})
}
