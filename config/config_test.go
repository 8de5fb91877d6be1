package config

import (
	"os"
	"testing"

	"github.com/bilihot/bilihot/filesystem"
	"github.com/bilihot/bilihot/key"
	"github.com/bilihot/bilihot/where"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		filesystem.SetMemMapFs()
		t.Setenv(where.EnvConfigPath, "/cfg")

		Convey("Should initialize without a config file", func() {
			So(Setup(), ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			So(Setup(), ShouldBeNil)
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
			So(viper.GetString(key.DefaultSources), ShouldEqual, "auto")
		})

		Convey("Should read values from the TOML file", func() {
			err := filesystem.API().WriteFile("/cfg/bilihot.toml", []byte("[sources]\ndefault = \"popular\"\n"), 0o644)
			So(err, ShouldBeNil)
			So(Setup(), ShouldBeNil)
			So(viper.GetString(key.DefaultSources), ShouldEqual, "popular")
		})

		Convey("Environment variables override defaults", func() {
			t.Setenv("BILIHOT_NET_PROXY", "http://127.0.0.1:8080")
			So(Setup(), ShouldBeNil)
			So(viper.GetString(key.NetProxy), ShouldEqual, "http://127.0.0.1:8080")
		})

		Convey("Dotenv files in the config directory are exported", func() {
			defer os.Unsetenv("BILIHOT_LOGS_LEVEL")
			t.Setenv("BILIHOT_NET_PROXY", "http://10.0.0.1:3128")

			err := filesystem.API().WriteFile("/cfg/.env", []byte("BILIHOT_LOGS_LEVEL=debug\nBILIHOT_NET_PROXY=http://ignored:1\n"), 0o644)
			So(err, ShouldBeNil)
			So(Setup(), ShouldBeNil)
			So(viper.GetString(key.LogsLevel), ShouldEqual, "debug")
			So(viper.GetString(key.NetProxy), ShouldEqual, "http://10.0.0.1:3128")
		})

		Convey("Malformed dotenv files fail Setup", func() {
			err := filesystem.API().WriteFile("/cfg/.env.local", []byte("BILIHOT_LOGS_LEVEL='unterminated\n"), 0o644)
			So(err, ShouldBeNil)
			So(Setup(), ShouldNotBeNil)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("net.tls_fingerprint"), ShouldEqual, "net_tls_fingerprint")
		})

		Reset(func() {
			viper.Reset()
			filesystem.SetOsFs()
		})
	})
}

func TestField(t *testing.T) {
	Convey("Field", t, func() {
		f := Default[key.NetTLSFingerprint]

		Convey("Env is prefixed and upper-cased", func() {
			So(f.Env(), ShouldEqual, "BILIHOT_NET_TLS_FINGERPRINT")
		})

		Convey("typeName reflects the default value", func() {
			So(f.typeName(), ShouldEqual, "bool")
			src := Default[key.DefaultSources]
			So(src.typeName(), ShouldEqual, "string")
		})

		Convey("Pretty mentions the key", func() {
			So(f.Pretty(), ShouldContainSubstring, key.NetTLSFingerprint)
		})
	})
}
