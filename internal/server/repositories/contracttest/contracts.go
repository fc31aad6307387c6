// Package contracttest holds behavioural suites every repository adapter
// must pass, whatever the backing store.
package contracttest

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/hikekeeper/internal/common"
	"github.com/dmitrijs2005/hikekeeper/internal/server/models"
	"github.com/dmitrijs2005/hikekeeper/internal/server/repositories/profiles"
	"github.com/dmitrijs2005/hikekeeper/internal/server/repositories/trails"
	"github.com/dmitrijs2005/hikekeeper/internal/server/repositories/users"
)

type CleanupFunc = func()

type UserRepoFactory func(t *testing.T) (users.Repository, CleanupFunc)
type ProfileRepoFactory func(t *testing.T) (profiles.Repository, CleanupFunc)
type TrailRepoFactory func(t *testing.T) (trails.Repository, CleanupFunc)

// baseTime is truncated to milliseconds so that stores with coarser time
// resolution still round-trip it exactly.
var baseTime = time.Date(2025, 6, 1, 7, 30, 0, 0, time.UTC)

func fields(distance float64) models.HikeFields {
	return models.HikeFields{
		StartedAt:  baseTime,
		EndedAt:    baseTime.Add(time.Hour),
		DistanceM:  distance,
		DurationS:  3600,
		PointsJSON: `[[46.5,7.9],[46.6,8.0]]`,
	}
}

func RunUserRepo(t *testing.T, newRepo UserRepoFactory) {
	t.Helper()
	ctx := context.Background()

	repo, cleanup := newRepo(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	u := &models.User{ID: uuid.NewString(), UserName: "hiker-" + uuid.NewString()[:8], PasswordHash: "hash-1", CreatedAt: baseTime}
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("Create: %v", err)
	}

	dup := &models.User{ID: uuid.NewString(), UserName: u.UserName, PasswordHash: "x", CreatedAt: baseTime}
	if err := repo.Create(ctx, dup); !errors.Is(err, common.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists for taken user name, got %v", err)
	}

	got, err := repo.GetByUserName(ctx, u.UserName)
	if err != nil {
		t.Fatalf("GetByUserName: %v", err)
	}
	if got.ID != u.ID || got.PasswordHash != "hash-1" || !got.CreatedAt.Equal(baseTime) {
		t.Fatalf("unexpected user: %+v", got)
	}

	if _, err := repo.GetByUserName(ctx, "nobody-"+uuid.NewString()); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := repo.UpdatePasswordHash(ctx, u.ID, "hash-2"); err != nil {
		t.Fatalf("UpdatePasswordHash: %v", err)
	}
	got, err = repo.GetByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.PasswordHash != "hash-2" || got.UserName != u.UserName {
		t.Fatalf("expected updated hash only, got %+v", got)
	}

	if err := repo.UpdatePasswordHash(ctx, uuid.NewString(), "h"); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown id, got %v", err)
	}
}

func RunProfileRepo(t *testing.T, newRepo ProfileRepoFactory) {
	t.Helper()
	ctx := context.Background()

	repo, cleanup := newRepo(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	u := &models.User{ID: uuid.NewString(), UserName: "walker", CreatedAt: baseTime}
	p := models.NewProfile(u)
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.Get(ctx, u.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Mode != models.ModeRegistered || got.HeightMm != nil || got.WeightGrams != nil || got.Unit != nil || got.TimePreference != nil {
		t.Fatalf("new profile must have null measurements, got %+v", got)
	}

	h, w := int64(1803), int64(72500)
	m := models.Measurements{HeightMm: &h, WeightGrams: &w, Unit: models.UnitMetric, TimePreference: models.TimePreferencePace}
	if err := repo.UpdateMeasurements(ctx, u.ID, m); err != nil {
		t.Fatalf("UpdateMeasurements: %v", err)
	}
	got, err = repo.Get(ctx, u.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.HeightMm == nil || *got.HeightMm != h || got.WeightGrams == nil || *got.WeightGrams != w {
		t.Fatalf("unexpected measurements: %+v", got)
	}
	if got.Unit == nil || *got.Unit != models.UnitMetric || got.TimePreference == nil || *got.TimePreference != models.TimePreferencePace {
		t.Fatalf("unexpected preferences: %+v", got)
	}

	// Full overwrite: nil clears.
	m2 := models.Measurements{Unit: models.UnitImperial, TimePreference: models.TimePreferenceSpeed}
	if err := repo.UpdateMeasurements(ctx, u.ID, m2); err != nil {
		t.Fatalf("UpdateMeasurements: %v", err)
	}
	got, err = repo.Get(ctx, u.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.HeightMm != nil || got.WeightGrams != nil || *got.Unit != models.UnitImperial {
		t.Fatalf("expected cleared measurements, got %+v", got)
	}

	if err := repo.UpdateMeasurements(ctx, uuid.NewString(), m); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := repo.Get(ctx, uuid.NewString()); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func RunTrailRepo(t *testing.T, newRepo TrailRepoFactory) {
	t.Helper()

	t.Run("missing log is not found", func(t *testing.T) {
		repo := open(t, newRepo)
		if _, err := repo.Get(context.Background(), uuid.NewString()); !errors.Is(err, common.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("append creates log lazily", func(t *testing.T) {
		ctx := context.Background()
		repo := open(t, newRepo)
		owner := uuid.NewString()

		ok, err := repo.AppendIfAbsent(ctx, owner, models.NewHikeRecord("trail-42", fields(5000), baseTime))
		if err != nil || !ok {
			t.Fatalf("AppendIfAbsent: ok=%v err=%v", ok, err)
		}

		log, err := repo.Get(ctx, owner)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if len(log.Hikes) != 1 {
			t.Fatalf("expected 1 hike, got %d", len(log.Hikes))
		}
		h := log.Hikes[0]
		if h.TrailID != "trail-42" || h.DistanceM != 5000 || h.PointsJSON != fields(0).PointsJSON {
			t.Fatalf("unexpected hike: %+v", h)
		}
		if !h.CreatedAt.Equal(baseTime) || !h.UpdatedAt.Equal(baseTime) || !h.StartedAt.Equal(baseTime) {
			t.Fatalf("unexpected timestamps: %+v", h)
		}
	})

	t.Run("append is a no-op when trailId present", func(t *testing.T) {
		ctx := context.Background()
		repo := open(t, newRepo)
		owner := uuid.NewString()

		mustAppend(t, repo, owner, "trail-1", 1000)
		ok, err := repo.AppendIfAbsent(ctx, owner, models.NewHikeRecord("trail-1", fields(9999), baseTime.Add(time.Minute)))
		if err != nil {
			t.Fatalf("AppendIfAbsent: %v", err)
		}
		if ok {
			t.Fatalf("expected no modification for duplicate trailId")
		}

		log, err := repo.Get(ctx, owner)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if len(log.Hikes) != 1 || log.Hikes[0].DistanceM != 1000 {
			t.Fatalf("duplicate append must not change log: %+v", log.Hikes)
		}
	})

	t.Run("update overwrites fields and keeps created_at", func(t *testing.T) {
		ctx := context.Background()
		repo := open(t, newRepo)
		owner := uuid.NewString()

		mustAppend(t, repo, owner, "trail-42", 5000)
		later := baseTime.Add(2 * time.Hour)
		f := fields(5200)
		f.DurationS = 3700
		ok, err := repo.UpdateMatching(ctx, owner, "trail-42", f, later)
		if err != nil || !ok {
			t.Fatalf("UpdateMatching: ok=%v err=%v", ok, err)
		}

		log, err := repo.Get(ctx, owner)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if len(log.Hikes) != 1 {
			t.Fatalf("expected 1 hike, got %d", len(log.Hikes))
		}
		h := log.Hikes[0]
		if h.DistanceM != 5200 || h.DurationS != 3700 || h.TrailID != "trail-42" {
			t.Fatalf("fields not overwritten: %+v", h)
		}
		if !h.CreatedAt.Equal(baseTime) || !h.UpdatedAt.Equal(later) {
			t.Fatalf("unexpected timestamps: created=%v updated=%v", h.CreatedAt, h.UpdatedAt)
		}
	})

	t.Run("update keeps the points form sent last", func(t *testing.T) {
		ctx := context.Background()
		repo := open(t, newRepo)
		owner := uuid.NewString()

		raw := fields(1)
		raw.PointsRaw = true
		if _, err := repo.AppendIfAbsent(ctx, owner, models.NewHikeRecord("trail-7", raw, baseTime)); err != nil {
			t.Fatalf("AppendIfAbsent: %v", err)
		}
		log, err := repo.Get(ctx, owner)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if !log.Hikes[0].PointsRaw || log.Hikes[0].PointsJSON != raw.PointsJSON {
			t.Fatalf("raw points not stored: %+v", log.Hikes[0])
		}

		if _, err := repo.UpdateMatching(ctx, owner, "trail-7", fields(2), baseTime.Add(time.Hour)); err != nil {
			t.Fatalf("UpdateMatching: %v", err)
		}
		log, err = repo.Get(ctx, owner)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if log.Hikes[0].PointsRaw {
			t.Fatalf("points form not overwritten: %+v", log.Hikes[0])
		}
	})

	t.Run("update without match reports false", func(t *testing.T) {
		ctx := context.Background()
		repo := open(t, newRepo)
		owner := uuid.NewString()

		ok, err := repo.UpdateMatching(ctx, owner, "trail-x", fields(1), baseTime)
		if err != nil || ok {
			t.Fatalf("missing log: ok=%v err=%v", ok, err)
		}

		mustAppend(t, repo, owner, "trail-a", 1)
		ok, err = repo.UpdateMatching(ctx, owner, "trail-x", fields(1), baseTime)
		if err != nil || ok {
			t.Fatalf("missing trail: ok=%v err=%v", ok, err)
		}
	})

	t.Run("order is preserved and other elements untouched", func(t *testing.T) {
		ctx := context.Background()
		repo := open(t, newRepo)
		owner := uuid.NewString()

		for i, id := range []string{"a", "b", "c"} {
			mustAppend(t, repo, owner, id, float64(i+1))
		}
		if _, err := repo.UpdateMatching(ctx, owner, "b", fields(20), baseTime.Add(time.Hour)); err != nil {
			t.Fatalf("UpdateMatching: %v", err)
		}

		log, err := repo.Get(ctx, owner)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		var got []string
		for _, h := range log.Hikes {
			got = append(got, fmt.Sprintf("%s:%g", h.TrailID, h.DistanceM))
		}
		want := []string{"a:1", "b:20", "c:3"}
		if fmt.Sprint(got) != fmt.Sprint(want) {
			t.Fatalf("got %v, want %v", got, want)
		}
	})

	t.Run("owners are isolated", func(t *testing.T) {
		ctx := context.Background()
		repo := open(t, newRepo)
		a, b := uuid.NewString(), uuid.NewString()

		mustAppend(t, repo, a, "shared-id", 1)
		mustAppend(t, repo, b, "shared-id", 2)

		la, err := repo.Get(ctx, a)
		if err != nil {
			t.Fatalf("Get a: %v", err)
		}
		lb, err := repo.Get(ctx, b)
		if err != nil {
			t.Fatalf("Get b: %v", err)
		}
		if len(la.Hikes) != 1 || la.Hikes[0].DistanceM != 1 || len(lb.Hikes) != 1 || lb.Hikes[0].DistanceM != 2 {
			t.Fatalf("logs leaked between owners: a=%+v b=%+v", la.Hikes, lb.Hikes)
		}
	})

	t.Run("concurrent appends of one trailId insert once", func(t *testing.T) {
		ctx := context.Background()
		repo := open(t, newRepo)
		owner := uuid.NewString()

		const n = 16
		var (
			wg       sync.WaitGroup
			mu       sync.Mutex
			inserted int
			errs     []error
		)
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				ok, err := repo.AppendIfAbsent(ctx, owner, models.NewHikeRecord("race", fields(float64(i)), baseTime))
				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					errs = append(errs, err)
				}
				if ok {
					inserted++
				}
			}(i)
		}
		wg.Wait()

		if len(errs) > 0 {
			t.Fatalf("unexpected errors: %v", errs)
		}
		if inserted != 1 {
			t.Fatalf("expected exactly one insert, got %d", inserted)
		}
		log, err := repo.Get(ctx, owner)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if len(log.Hikes) != 1 {
			t.Fatalf("expected a single record, got %d", len(log.Hikes))
		}
	})

	t.Run("concurrent appends of distinct trailIds all land", func(t *testing.T) {
		ctx := context.Background()
		repo := open(t, newRepo)
		owner := uuid.NewString()

		const n = 16
		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, _ = repo.AppendIfAbsent(ctx, owner, models.NewHikeRecord(fmt.Sprintf("t-%d", i), fields(1), baseTime))
			}(i)
		}
		wg.Wait()

		log, err := repo.Get(ctx, owner)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if len(log.Hikes) != n {
			t.Fatalf("expected %d hikes, got %d", n, len(log.Hikes))
		}
	})
}

func open(t *testing.T, newRepo TrailRepoFactory) trails.Repository {
	t.Helper()
	repo, cleanup := newRepo(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}
	return repo
}

func mustAppend(t *testing.T, repo trails.Repository, owner, trailID string, distance float64) {
	t.Helper()
	ok, err := repo.AppendIfAbsent(context.Background(), owner, models.NewHikeRecord(trailID, fields(distance), baseTime))
	if err != nil || !ok {
		t.Fatalf("AppendIfAbsent(%s): ok=%v err=%v", trailID, ok, err)
	}
}
