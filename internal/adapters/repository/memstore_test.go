package repository_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/sangsom/minime/internal/adapters/repository"
	"github.com/sangsom/minime/internal/domain/model"
	"github.com/sangsom/minime/internal/domain/types"
)

func record(id string, xp int) (model.Profile, types.Status) {
	p := model.NewProfile(id)
	p.Experience = xp
	return p, types.Status{ProfileID: id, Experience: xp}
}

func TestUpsertAndGet(t *testing.T) {
	Convey("Given an empty store", t, func() {
		s := repository.NewMemStore()
		ctx := context.Background()

		Convey("Getting a missing profile returns ErrNotFound", func() {
			_, err := s.Get(ctx, "nobody")
			So(err, ShouldEqual, repository.ErrNotFound)
		})

		Convey("A blank id is rejected on both paths", func() {
			_, err := s.Get(ctx, "")
			So(err, ShouldEqual, repository.ErrEmptyProfileID)

			err = s.Upsert(ctx, model.Profile{}, types.Status{})
			So(err, ShouldEqual, repository.ErrEmptyProfileID)
		})

		Convey("An upserted record can be read back", func() {
			p, st := record("p-1", 120)
			So(s.Upsert(ctx, p, st), ShouldBeNil)

			got, err := s.Get(ctx, "p-1")
			So(err, ShouldBeNil)
			So(got.Profile, ShouldResemble, p)
			So(got.Status, ShouldResemble, st)
			So(s.Count(ctx), ShouldEqual, 1)

			Convey("And a second upsert replaces it", func() {
				p2, st2 := record("p-1", 300)
				So(s.Upsert(ctx, p2, st2), ShouldBeNil)

				got, err := s.Get(ctx, "p-1")
				So(err, ShouldBeNil)
				So(got.Profile.Experience, ShouldEqual, 300)
				So(s.Count(ctx), ShouldEqual, 1)
			})
		})
	})
}

func TestTopByExperience(t *testing.T) {
	Convey("Given a store with several profiles", t, func() {
		s := repository.NewMemStore()
		ctx := context.Background()

		for i, xp := range []int{50, 300, 300, 120} {
			p, st := record(fmt.Sprintf("p-%d", i+1), xp)
			So(s.Upsert(ctx, p, st), ShouldBeNil)
		}

		Convey("Records come back ordered by experience descending", func() {
			top, err := s.TopByExperience(ctx, 10)
			So(err, ShouldBeNil)
			So(top, ShouldHaveLength, 4)
			So(top[0].Profile.Experience, ShouldEqual, 300)
			So(top[3].Profile.Experience, ShouldEqual, 50)

			Convey("Ties break by profile id", func() {
				So(top[0].Profile.ProfileID, ShouldEqual, "p-2")
				So(top[1].Profile.ProfileID, ShouldEqual, "p-3")
			})
		})

		Convey("The limit truncates the result", func() {
			top, err := s.TopByExperience(ctx, 2)
			So(err, ShouldBeNil)
			So(top, ShouldHaveLength, 2)
		})

		Convey("A non-positive limit yields nothing", func() {
			top, err := s.TopByExperience(ctx, 0)
			So(err, ShouldBeNil)
			So(top, ShouldBeEmpty)
		})
	})
}

func TestConcurrentUpserts(t *testing.T) {
	Convey("Given concurrent writers on distinct profiles", t, func() {
		s := repository.NewMemStore(repository.WithInitialCapacity(64))
		ctx := context.Background()

		var wg sync.WaitGroup
		for i := 0; i < 64; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				p, st := record(fmt.Sprintf("p-%d", i), i)
				_ = s.Upsert(ctx, p, st)
			}(i)
		}
		wg.Wait()

		Convey("Every profile is stored", func() {
			So(s.Count(ctx), ShouldEqual, 64)
		})
	})
}
