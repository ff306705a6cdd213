package config

import (
	"testing"

	"github.com/liberta-cli/liberta/filesystem"
	"github.com/liberta-cli/liberta/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
		})

		Convey("Should default to the member site base URL", func() {
			_ = Setup()
			So(viper.GetString(key.SourceBaseURL), ShouldEqual, "https://membro.icl.com.br")
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("download.preferred.quality")
			So(result, ShouldEqual, "download_preferred_quality")
		})
	})
}

func TestFieldEnv(t *testing.T) {
	Convey("Field Env", t, func() {
		f := Field{Key: key.DownloadPreferredQuality}
		So(f.Env(), ShouldEqual, "LIBERTA_DOWNLOAD_PREFERRED_QUALITY")
	})
}
