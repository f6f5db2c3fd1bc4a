package worker_test

import (
	"context"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/sangsom/minime/internal/adapters/mq/queue"
	"github.com/sangsom/minime/internal/adapters/mq/worker"
	"github.com/sangsom/minime/internal/adapters/repository"
	"github.com/sangsom/minime/internal/domain/model"
	"github.com/sangsom/minime/internal/domain/progression"
	"github.com/sangsom/minime/pkg/logger"
)

func init() {
	if err := logger.Init("text"); err != nil {
		panic(err)
	}
}

func fixedClock() time.Time {
	return time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
}

func waitForProfile(ctx context.Context, store repository.Store, profileID string) (repository.Record, bool) {
	deadline := time.After(2 * time.Second)
	for {
		rec, err := store.Get(ctx, profileID)
		if err == nil {
			return rec, true
		}
		select {
		case <-deadline:
			return repository.Record{}, false
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestWorkerProcessesEvents(t *testing.T) {
	Convey("Given a running worker", t, func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		q := queue.NewInMemoryQueue(queue.WithCapacity(16))
		store := repository.NewMemStore()
		engine := progression.New()

		w := worker.NewInMemoryWorker(q, engine, store, worker.WithClock(fixedClock))
		go w.Run(ctx)

		Convey("A homework event creates and rewards the profile", func() {
			ok := q.Enqueue(ctx, worker.Event{
				EventID:   "ev-1",
				ProfileID: "p-1",
				Kind:      model.KindHomeworkCompleted,
			})
			So(ok, ShouldBeTrue)

			rec, found := waitForProfile(ctx, store, "p-1")
			So(found, ShouldBeTrue)
			So(rec.Profile.Experience, ShouldEqual, 10)
			So(rec.Profile.Coins, ShouldEqual, 105)
			So(rec.Profile.HomeworkDone, ShouldEqual, 1)

			Convey("And the stored status is fully derived", func() {
				So(rec.Status.Level, ShouldEqual, 1)
				So(rec.Status.Mood, ShouldEqual, "Very Happy")
				So(rec.Status.Greeting, ShouldEqual, "Good morning")
				So(rec.Status.CoinsText, ShouldEqual, "105")
			})
		})

		Convey("Shutdown returns once the worker stops", func() {
			shutdownCtx, stop := context.WithTimeout(context.Background(), time.Second)
			defer stop()
			So(w.Shutdown(shutdownCtx), ShouldBeNil)
		})
	})
}

func TestPoolSerializesPerProfile(t *testing.T) {
	Convey("Given a pool with several workers", t, func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		q := queue.NewInMemoryQueue(queue.WithCapacity(256))
		store := repository.NewMemStore()
		engine := progression.New()

		p := worker.NewPool(4, q, engine, store, worker.WithClock(fixedClock))
		So(p.Size(), ShouldEqual, 4)
		p.Start(ctx)

		Convey("A burst of XP events for one profile all land", func() {
			const n = 50
			for i := 0; i < n; i++ {
				ok := q.Enqueue(ctx, worker.Event{
					EventID:   "ev-" + string(rune('a'+i%26)) + "-" + time.Now().String(),
					ProfileID: "p-1",
					Kind:      model.KindExperienceGained,
					Amount:    10,
				})
				So(ok, ShouldBeTrue)
			}

			deadline := time.After(3 * time.Second)
			for {
				rec, err := store.Get(ctx, "p-1")
				if err == nil && rec.Profile.Experience == n*10 {
					So(rec.Profile.Experience, ShouldEqual, n*10)
					So(rec.Status.Level, ShouldEqual, 6)
					break
				}
				select {
				case <-deadline:
					So("timed out waiting for all events to apply", ShouldBeEmpty)
					return
				case <-time.After(10 * time.Millisecond):
				}
			}
		})

		Convey("Shutdown drains and stops the pool", func() {
			So(p.Shutdown(context.Background()), ShouldBeNil)
		})
	})
}
