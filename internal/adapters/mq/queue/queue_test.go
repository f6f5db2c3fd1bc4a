package queue_test

import (
	"context"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/sangsom/minime/internal/adapters/mq/queue"
	"github.com/sangsom/minime/internal/domain/model"
)

func event(id string) queue.Event {
	return queue.Event{EventID: id, ProfileID: "p-1", Kind: model.KindExperienceGained, Amount: 10}
}

func TestEnqueueDequeue(t *testing.T) {
	Convey("Given a small queue", t, func() {
		q := queue.NewInMemoryQueue(queue.WithCapacity(4))
		ctx := context.Background()

		Convey("Enqueued events come back in order", func() {
			So(q.Enqueue(ctx, event("a")), ShouldBeTrue)
			So(q.Enqueue(ctx, event("b")), ShouldBeTrue)
			So(q.Len(ctx), ShouldEqual, 2)

			out := q.Dequeue(ctx)
			So((<-out).EventID, ShouldEqual, "a")
			So((<-out).EventID, ShouldEqual, "b")
		})

		Convey("A full queue refuses further events", func() {
			for i := 0; i < 4; i++ {
				So(q.Enqueue(ctx, event("x")), ShouldBeTrue)
			}
			So(q.Enqueue(ctx, event("overflow")), ShouldBeFalse)
		})
	})
}

func TestClose(t *testing.T) {
	Convey("Given a queue with one buffered event", t, func() {
		q := queue.NewInMemoryQueue(queue.WithCapacity(4))
		ctx := context.Background()
		So(q.Enqueue(ctx, event("a")), ShouldBeTrue)

		Convey("Close drains the buffer then ends the stream", func() {
			So(q.Close(), ShouldBeNil)
			So(q.IsClosed(), ShouldBeTrue)

			out := q.Dequeue(ctx)
			e, ok := <-out
			So(ok, ShouldBeTrue)
			So(e.EventID, ShouldEqual, "a")

			_, ok = <-out
			So(ok, ShouldBeFalse)
		})

		Convey("Enqueue after Close fails", func() {
			So(q.Close(), ShouldBeNil)
			So(q.Enqueue(ctx, event("late")), ShouldBeFalse)
		})

		Convey("Closing twice is harmless", func() {
			So(q.Close(), ShouldBeNil)
			So(q.Close(), ShouldBeNil)
		})
	})
}

func TestDequeueRespectsContext(t *testing.T) {
	Convey("Given a consumer with a cancelled context", t, func() {
		q := queue.NewInMemoryQueue(queue.WithCapacity(4))
		ctx, cancel := context.WithCancel(context.Background())

		out := q.Dequeue(ctx)
		cancel()
		So(q.Close(), ShouldBeNil)

		Convey("The stream ends instead of delivering", func() {
			select {
			case _, ok := <-out:
				So(ok, ShouldBeFalse)
			case <-time.After(time.Second):
				So("timed out waiting for channel close", ShouldBeEmpty)
			}
		})
	})
}
