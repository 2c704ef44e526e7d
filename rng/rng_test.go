package rng

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestDeterminism(t *testing.T) {
	Convey("Given two sources seeded identically", t, func() {
		a := New(42)
		b := New(42)

		Convey("they produce identical sequences", func() {
			for i := 0; i < 100; i++ {
				So(a.Intn(1000), ShouldEqual, b.Intn(1000))
			}
		})
	})

	Convey("Given a source and its clone", t, func() {
		a := New(7)
		_ = a.Intn(10)
		_ = a.Intn(10)
		b := a.Clone()

		Convey("the clone continues independently but identically from the clone point", func() {
			for i := 0; i < 20; i++ {
				So(a.Intn(500), ShouldEqual, b.Intn(500))
			}
		})

		Convey("advancing one does not advance the other", func() {
			before := b.state
			a.Intn(10)
			So(b.state, ShouldEqual, before)
		})
	})
}
