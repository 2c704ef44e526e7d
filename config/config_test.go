package config

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLoad(t *testing.T) {
	Convey("Given a YAML config file wrapping an engine def", t, func() {
		dir := t.TempDir()
		path := filepath.Join(dir, "game.yaml")
		contents := `
kind: engine
def:
  initGrid: "3,1,10,0\n0,1,5\n"
  magicWallSteps: 50
  blobChance: 0.05
  blobMaxPercentage: 0.2
  seed: 7
  obsShowIds: false
`
		So(os.WriteFile(path, []byte(contents), 0o644), ShouldBeNil)

		Convey("Load decodes the init grid and params", func() {
			initGrid, params, err := Load(path)
			So(err, ShouldBeNil)
			So(initGrid, ShouldEqual, "3,1,10,0\n0,1,5\n")
			So(params.MagicWallSteps, ShouldEqual, 50)
			So(params.BlobChance, ShouldEqual, 0.05)
			So(params.Seed, ShouldEqual, 7)
			So(params.ObsShowIDs, ShouldBeFalse)
		})
	})

	Convey("Given a config file of the wrong kind", t, func() {
		dir := t.TempDir()
		path := filepath.Join(dir, "bad.yaml")
		So(os.WriteFile(path, []byte("kind: other\ndef: {}\n"), 0o644), ShouldBeNil)

		Convey("Load reports an error", func() {
			_, _, err := Load(path)
			So(err, ShouldNotBeNil)
		})
	})
}
