package cmd

import (
	"testing"

	"github.com/bilihot/bilihot/config"
	"github.com/bilihot/bilihot/key"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParseValue(t *testing.T) {
	Convey("parseValue", t, func() {
		Convey("Follows the type of the default value", func() {
			v, err := parseValue(config.Default[key.NetTLSFingerprint], "true")
			So(err, ShouldBeNil)
			So(v, ShouldEqual, true)

			v, err = parseValue(config.Default[key.DefaultSources], "popular")
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "popular")

			v, err = parseValue(config.Field{Key: "n", Value: 0}, "12")
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 12)
		})

		Convey("Rejects malformed booleans", func() {
			_, err := parseValue(config.Default[key.LogsWrite], "maybe")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestValidateValue(t *testing.T) {
	Convey("validateValue", t, func() {
		Convey("Accepts known sources and suggests on typos", func() {
			So(validateValue(key.DefaultSources, "ranking"), ShouldBeNil)

			err := validateValue(key.DefaultSources, "rankng")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, `"ranking"`)
		})

		Convey("Checks icon variants", func() {
			So(validateValue(key.IconsVariant, "emoji"), ShouldBeNil)
			So(validateValue(key.IconsVariant, "ascii"), ShouldNotBeNil)
		})

		Convey("Checks proxy URLs", func() {
			So(validateValue(key.NetProxy, ""), ShouldBeNil)
			So(validateValue(key.NetProxy, "http://127.0.0.1:8080"), ShouldBeNil)
			So(validateValue(key.NetProxy, "127.0.0.1"), ShouldNotBeNil)
		})

		Convey("Leaves other keys alone", func() {
			So(validateValue(key.LogsJson, true), ShouldBeNil)
		})
	})
}

func TestErrUnknownKey(t *testing.T) {
	Convey("errUnknownKey suggests the closest key", t, func() {
		err := errUnknownKey("net.proxi")
		So(err.Error(), ShouldContainSubstring, key.NetProxy)
	})
}
