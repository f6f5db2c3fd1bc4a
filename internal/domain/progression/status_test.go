package progression_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/sangsom/minime/internal/domain/model"
	"github.com/sangsom/minime/internal/domain/progression"
)

func TestApplyHomeworkReward(t *testing.T) {
	Convey("Given a fresh profile", t, func() {
		e := progression.New()
		p := model.NewProfile("p-1")

		Convey("Completing homework grants the full reward", func() {
			got := e.ApplyHomeworkReward(p)

			So(got.Experience, ShouldEqual, 10)
			So(got.Coins, ShouldEqual, 105)
			So(got.Happiness, ShouldEqual, 80)
			So(got.HomeworkDone, ShouldEqual, 1)

			Convey("And the input profile is untouched", func() {
				So(p.Experience, ShouldEqual, 0)
				So(p.Coins, ShouldEqual, 100)
			})
		})

		Convey("Happiness never exceeds its upper bound", func() {
			p.Happiness = 98
			got := e.ApplyHomeworkReward(p)
			So(got.Happiness, ShouldEqual, 100)
		})
	})
}

func TestSpendCoins(t *testing.T) {
	Convey("Given a balance of 100", t, func() {
		e := progression.New()

		Convey("Spending within the balance succeeds", func() {
			balance, ok := e.SpendCoins(100, 40)
			So(ok, ShouldBeTrue)
			So(balance, ShouldEqual, 60)
		})

		Convey("Spending the whole balance succeeds", func() {
			balance, ok := e.SpendCoins(100, 100)
			So(ok, ShouldBeTrue)
			So(balance, ShouldEqual, 0)
		})

		Convey("Overdrafts are refused and the balance is unchanged", func() {
			balance, ok := e.SpendCoins(100, 101)
			So(ok, ShouldBeFalse)
			So(balance, ShouldEqual, 100)
		})

		Convey("Negative amounts are refused", func() {
			balance, ok := e.SpendCoins(100, -5)
			So(ok, ShouldBeFalse)
			So(balance, ShouldEqual, 100)
		})
	})
}

func TestApplyEvent(t *testing.T) {
	Convey("Given an engine and a fresh profile", t, func() {
		e := progression.New()
		p := model.NewProfile("p-1")

		Convey("A homework event applies the standard reward", func() {
			got := e.ApplyEvent(p, model.StateEvent{Kind: model.KindHomeworkCompleted})
			So(got.Experience, ShouldEqual, 10)
			So(got.Coins, ShouldEqual, 105)
			So(got.HomeworkDone, ShouldEqual, 1)
		})

		Convey("A happiness delta is applied and clamped", func() {
			got := e.ApplyEvent(p, model.StateEvent{Kind: model.KindHappinessDelta, Amount: 50})
			So(got.Happiness, ShouldEqual, 100)

			got = e.ApplyEvent(p, model.StateEvent{Kind: model.KindHappinessDelta, Amount: -200})
			So(got.Happiness, ShouldEqual, 0)
		})

		Convey("An XP gain raises experience", func() {
			got := e.ApplyEvent(p, model.StateEvent{Kind: model.KindExperienceGained, Amount: 250})
			So(got.Experience, ShouldEqual, 250)
		})

		Convey("A negative XP amount is ignored", func() {
			got := e.ApplyEvent(p, model.StateEvent{Kind: model.KindExperienceGained, Amount: -40})
			So(got.Experience, ShouldEqual, 0)
		})

		Convey("A positive coins delta adds to the balance", func() {
			got := e.ApplyEvent(p, model.StateEvent{Kind: model.KindCoinsDelta, Amount: 25})
			So(got.Coins, ShouldEqual, 125)
		})

		Convey("A negative coins delta spends, refusing overdrafts", func() {
			got := e.ApplyEvent(p, model.StateEvent{Kind: model.KindCoinsDelta, Amount: -60})
			So(got.Coins, ShouldEqual, 40)

			got = e.ApplyEvent(p, model.StateEvent{Kind: model.KindCoinsDelta, Amount: -500})
			So(got.Coins, ShouldEqual, 100)
		})

		Convey("An eye scale set is clamped into range", func() {
			got := e.ApplyEvent(p, model.StateEvent{Kind: model.KindEyeScaleSet, Amount: 9})
			So(got.EyeScale, ShouldEqual, 2.0)

			got = e.ApplyEvent(p, model.StateEvent{Kind: model.KindEyeScaleSet, Amount: 0.1})
			So(got.EyeScale, ShouldEqual, 0.5)
		})

		Convey("Playing a dance raises happiness by the bonus", func() {
			got := e.ApplyEvent(p, model.StateEvent{Kind: model.KindAnimationPlayed, Animation: "dance"})
			So(got.Happiness, ShouldEqual, 77)
		})

		Convey("Playing a non-dance animation changes nothing", func() {
			got := e.ApplyEvent(p, model.StateEvent{Kind: model.KindAnimationPlayed, Animation: "wave"})
			So(got, ShouldResemble, p)
		})

		Convey("An unknown animation name changes nothing", func() {
			got := e.ApplyEvent(p, model.StateEvent{Kind: model.KindAnimationPlayed, Animation: "backflip"})
			So(got, ShouldResemble, p)
		})

		Convey("An outfit set normalizes the name", func() {
			got := e.ApplyEvent(p, model.StateEvent{Kind: model.KindOutfitSet, Item: "  School_Uniform "})
			So(got.Outfit, ShouldEqual, "school_uniform")
		})

		Convey("An accessory set normalizes the name", func() {
			got := e.ApplyEvent(p, model.StateEvent{Kind: model.KindAccessorySet, Item: "Glasses"})
			So(got.Accessory, ShouldEqual, "glasses")
		})

		Convey("A blank customization item changes nothing", func() {
			got := e.ApplyEvent(p, model.StateEvent{Kind: model.KindOutfitSet, Item: "   "})
			So(got, ShouldResemble, p)
		})

		Convey("An unknown event kind changes nothing", func() {
			got := e.ApplyEvent(p, model.StateEvent{Kind: model.EventKind("mystery")})
			So(got, ShouldResemble, p)
		})
	})
}

func TestDeriveStatus(t *testing.T) {
	Convey("Given a profile with some progress", t, func() {
		e := progression.New()
		p := model.NewProfile("p-1")
		p.Experience = 250
		p.Coins = 1500
		p.Happiness = 85
		p.HomeworkDone = 7
		p.Outfit = "party"
		p.Accessory = "hat"

		Convey("The derived status reflects every facet", func() {
			s := e.DeriveStatus(p, 9)

			So(s.ProfileID, ShouldEqual, "p-1")
			So(s.Level, ShouldEqual, 3)
			So(s.LevelProgress, ShouldEqual, 0.5)
			So(s.Experience, ShouldEqual, 250)
			So(s.LevelText, ShouldEqual, "Level 3 (50/100 XP)")
			So(s.Coins, ShouldEqual, 1500)
			So(s.CoinsText, ShouldEqual, "1.5K")
			So(s.Happiness, ShouldEqual, 85)
			So(s.Mood, ShouldEqual, "Very Happy")
			So(s.MoodEmoji, ShouldNotBeEmpty)
			So(s.MoodColor.G, ShouldBeGreaterThan, s.MoodColor.R)
			So(s.EyeScale, ShouldEqual, 1.0)
			So(s.Outfit, ShouldEqual, "party")
			So(s.Accessory, ShouldEqual, "hat")
			So(s.Greeting, ShouldEqual, "Good morning")
			So(s.Motivation, ShouldEqual, e.HomeworkMotivation(7))
		})
	})
}
