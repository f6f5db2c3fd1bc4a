package logger

import (
	"log/slog"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestFieldConstructors(t *testing.T) {
	Convey("Given the field constructors", t, func() {
		So(String("k", "v"), ShouldResemble, Field{Key: "k", Value: "v"})
		So(Int("n", 7).Value, ShouldEqual, 7)
		So(Float64("f", 1.5).Value, ShouldEqual, 1.5)
		So(Bool("b", true).Value, ShouldEqual, true)

		Convey("Error fields use the conventional key", func() {
			So(Error(nil).Key, ShouldEqual, "error")
		})
	})
}

func TestSetLevelString(t *testing.T) {
	Convey("Given level names", t, func() {
		Convey("Known names parse", func() {
			So(SetLevelString("debug"), ShouldBeNil)
			So(levelVar.Level(), ShouldEqual, slog.LevelDebug)

			So(SetLevelString("WARN"), ShouldBeNil)
			So(levelVar.Level(), ShouldEqual, slog.LevelWarn)

			So(SetLevelString(" warning "), ShouldBeNil)
			So(levelVar.Level(), ShouldEqual, slog.LevelWarn)
		})

		Convey("Blank means info", func() {
			So(SetLevelString(""), ShouldBeNil)
			So(levelVar.Level(), ShouldEqual, slog.LevelInfo)
		})

		Convey("Unknown names are rejected", func() {
			So(SetLevelString("verbose"), ShouldNotBeNil)
		})
	})
}

func TestInitAndNamed(t *testing.T) {
	Convey("Given an initialized logger", t, func() {
		So(Init("json"), ShouldBeNil)

		Convey("Get returns it and Named derives from it", func() {
			So(Get(), ShouldNotBeNil)
			So(Named("worker"), ShouldNotBeNil)
		})
	})
}
