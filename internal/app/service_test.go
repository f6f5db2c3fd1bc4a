package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/sangsom/minime/internal/adapters/repository"
	service "github.com/sangsom/minime/internal/app"
	"github.com/sangsom/minime/internal/domain/model"
	"github.com/sangsom/minime/pkg/logger"
)

func init() {
	if err := logger.Init("text"); err != nil {
		panic(err)
	}
}

func fixedClock() time.Time {
	return time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
}

func startService(opts ...service.Option) *service.Service {
	opts = append([]service.Option{
		service.WithWorkerCount(2),
		service.WithQueueSize(64),
		service.WithDedupeSize(128),
		service.WithClock(fixedClock),
	}, opts...)
	s := service.New(opts...)
	So(s.Start(context.Background()), ShouldBeNil)
	return s
}

func waitForStatus(s *service.Service, profileID string, ready func(xp int) bool) bool {
	deadline := time.After(2 * time.Second)
	for {
		st, err := s.Status(context.Background(), profileID)
		if err == nil && ready(st.Experience) {
			return true
		}
		select {
		case <-deadline:
			return false
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestServiceLifecycle(t *testing.T) {
	Convey("Given a fresh service", t, func() {
		s := startService()
		defer s.Stop()

		Convey("Starting twice is harmless", func() {
			So(s.Start(context.Background()), ShouldBeNil)
		})

		Convey("Stats report the configuration", func() {
			stats := s.GetStats()
			So(stats["started"], ShouldEqual, true)
			So(stats["workerCount"], ShouldEqual, 2)
			So(stats["queueSize"], ShouldEqual, 64)
		})
	})
}

func TestEventPipeline(t *testing.T) {
	Convey("Given a running service", t, func() {
		s := startService()
		defer s.Stop()
		ctx := context.Background()

		Convey("An enqueued homework event lands in the status store", func() {
			ev := model.StateEvent{
				EventID:   uuid.NewString(),
				ProfileID: "p-1",
				Kind:      model.KindHomeworkCompleted,
				TS:        time.Now(),
			}
			So(s.Enqueue(ctx, ev), ShouldBeTrue)
			So(waitForStatus(s, "p-1", func(xp int) bool { return xp == 10 }), ShouldBeTrue)

			st, err := s.Status(ctx, "p-1")
			So(err, ShouldBeNil)
			So(st.Coins, ShouldEqual, 105)
			So(st.Greeting, ShouldEqual, "Good afternoon")
		})

		Convey("Duplicate ids are flagged by the deduper", func() {
			id := uuid.NewString()
			So(s.SeenAndRecord(ctx, id), ShouldBeFalse)
			So(s.SeenAndRecord(ctx, id), ShouldBeTrue)
			So(s.Size(), ShouldEqual, 1)

			Convey("And Unrecord clears the flag", func() {
				s.Unrecord(ctx, id)
				So(s.SeenAndRecord(ctx, id), ShouldBeFalse)
			})
		})

		Convey("A missing profile yields ErrNotFound from Status", func() {
			_, err := s.Status(ctx, "nobody")
			So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
		})
	})
}

func TestBoard(t *testing.T) {
	Convey("Given a service with a few progressed profiles", t, func() {
		s := startService()
		defer s.Stop()
		ctx := context.Background()

		for id, xp := range map[string]float64{"p-a": 300, "p-b": 100, "p-c": 200} {
			So(s.Enqueue(ctx, model.StateEvent{
				EventID:   uuid.NewString(),
				ProfileID: id,
				Kind:      model.KindExperienceGained,
				Amount:    xp,
			}), ShouldBeTrue)
		}
		So(waitForStatus(s, "p-a", func(xp int) bool { return xp == 300 }), ShouldBeTrue)
		So(waitForStatus(s, "p-b", func(xp int) bool { return xp == 100 }), ShouldBeTrue)
		So(waitForStatus(s, "p-c", func(xp int) bool { return xp == 200 }), ShouldBeTrue)

		Convey("The board ranks by experience", func() {
			board, err := s.Board(ctx, 10)
			So(err, ShouldBeNil)
			So(board, ShouldHaveLength, 3)
			So(board[0].ProfileID, ShouldEqual, "p-a")
			So(board[0].Rank, ShouldEqual, 1)
			So(board[2].ProfileID, ShouldEqual, "p-b")
		})

		Convey("The limit truncates the board", func() {
			board, err := s.Board(ctx, 2)
			So(err, ShouldBeNil)
			So(board, ShouldHaveLength, 2)
		})
	})
}

func TestDeriveAndText(t *testing.T) {
	Convey("Given a running service", t, func() {
		s := startService()
		defer s.Stop()

		Convey("Derive computes a snapshot without storing it", func() {
			p := model.NewProfile("ad-hoc")
			p.Experience = 250
			st := s.Derive(p, 9)

			So(st.LevelText, ShouldEqual, "Level 3 (50/100 XP)")
			So(st.Greeting, ShouldEqual, "Good morning")

			_, err := s.Status(context.Background(), "ad-hoc")
			So(err, ShouldNotBeNil)
		})

		Convey("Greeting and RandomAnimation pass through the engine", func() {
			So(s.Greeting(8), ShouldEqual, "Good morning")
			So(s.RandomAnimation(), ShouldNotEqual, "idle")
			So(s.RandomAnimation(), ShouldNotBeEmpty)
		})
	})
}
