package cell

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestToVisibleProjection(t *testing.T) {
	Convey("Given the hidden-to-visible projection table", t, func() {
		Convey("falling variants collapse to their stationary visible kind", func() {
			So(ToVisible[StoneFalling], ShouldEqual, ToVisible[Stone])
			So(ToVisible[DiamondFalling], ShouldEqual, ToVisible[Diamond])
		})

		Convey("all four facings of an enemy collapse to one visible kind", func() {
			So(ToVisible[FireflyUp], ShouldEqual, VFirefly)
			So(ToVisible[FireflyLeft], ShouldEqual, VFirefly)
			So(ToVisible[FireflyDown], ShouldEqual, VFirefly)
			So(ToVisible[FireflyRight], ShouldEqual, VFirefly)
		})

		Convey("dormant and expired magic walls both project to off", func() {
			So(ToVisible[WallMagicDormant], ShouldEqual, VWallMagicOff)
			So(ToVisible[WallMagicExpired], ShouldEqual, VWallMagicOff)
			So(ToVisible[WallMagicOn], ShouldNotEqual, VWallMagicOff)
		})

		Convey("all three explosion kinds collapse to one visible kind", func() {
			So(ToVisible[ExplosionDiamond], ShouldEqual, VExplosion)
			So(ToVisible[ExplosionBoulder], ShouldEqual, VExplosion)
			So(ToVisible[ExplosionEmpty], ShouldEqual, VExplosion)
		})

		Convey("every hidden kind except Null has a projection entry", func() {
			for h := Hidden(0); h < NumHidden; h++ {
				_, ok := ToVisible[h]
				So(ok, ShouldBeTrue)
			}
		})
	})
}

func TestProperties(t *testing.T) {
	Convey("Given element properties", t, func() {
		Convey("a falling stone is consumable but not rounded", func() {
			So(Has(StoneFalling, PropConsumable), ShouldBeTrue)
			So(Has(StoneFalling, PropRounded), ShouldBeFalse)
		})

		Convey("a stationary stone is rounded", func() {
			So(Has(Stone, PropRounded), ShouldBeTrue)
		})

		Convey("steel walls have no properties", func() {
			So(PropertiesOf[WallSteel], ShouldEqual, PropNone)
		})
	})
}
