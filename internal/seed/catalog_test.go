package seed

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/iliyamo/cinevision/internal/model"
)

func fixedSpread(n int) CatalogOption {
	return WithCitySpread(func() int { return n })
}

func outcome(t *testing.T, rep Report, name string) CollectionResult {
	t.Helper()
	res, ok := rep.Result(name)
	require.True(t, ok, "collection %s missing from report", name)
	return res
}

func TestCatalogSeeder_EmptyDatabase(t *testing.T) {
	mem := newMemCatalog()
	rep := NewCatalogSeeder(mem.stores(), zap.NewNop(), fixedSpread(3)).Run(context.Background())

	assert.Empty(t, rep.Failed())
	want := map[string]int64{
		CollectionCategories:  10,
		CollectionDirectors:   10,
		CollectionMovies:      5,
		CollectionCities:      15,
		CollectionSaloons:     10,
		CollectionMovieImages: 5,
		CollectionActors:      25,
		CollectionComments:    7,
		CollectionShowtimes:   60, // 4 displayed movies x 3 saloons x 5 slots
	}
	for name, n := range want {
		res := outcome(t, rep, name)
		assert.Equal(t, OutcomeSeeded, res.Outcome, name)
		assert.Equal(t, int(n), res.Inserted, name)
		assert.Equal(t, n, res.Count, name)
	}
	assert.False(t, rep.FinishedAt.Before(rep.StartedAt))
}

func TestCatalogSeeder_ReportOrder(t *testing.T) {
	mem := newMemCatalog()
	rep := NewCatalogSeeder(mem.stores(), zap.NewNop(), fixedSpread(3)).Run(context.Background())

	var names []string
	for _, c := range rep.Collections {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{
		CollectionCategories, CollectionDirectors, CollectionMovies,
		CollectionCities, CollectionSaloons, CollectionMovieImages,
		CollectionActors, CollectionComments, CollectionShowtimes,
	}, names)
}

func TestCatalogSeeder_RerunSkipsEverything(t *testing.T) {
	mem := newMemCatalog()
	s := NewCatalogSeeder(mem.stores(), zap.NewNop(), fixedSpread(4))
	s.Run(context.Background())
	before := len(mem.showtimes.rows)

	rep := s.Run(context.Background())
	for _, c := range rep.Collections {
		assert.Equal(t, OutcomeSkipped, c.Outcome, c.Name)
		assert.Zero(t, c.Inserted, c.Name)
	}
	assert.Len(t, mem.showtimes.rows, before)
	assert.Len(t, mem.cities.rows, 20)
}

func TestCatalogSeeder_MovieReferences(t *testing.T) {
	mem := newMemCatalog()
	NewCatalogSeeder(mem.stores(), zap.NewNop(), fixedSpread(3)).Run(context.Background())

	movies := mem.movies.rows
	require.Len(t, movies, 5)
	// Inception and The Dark Knight share the first category and director.
	assert.Equal(t, mem.categories.rows[0].ID, movies[0].CategoryID)
	assert.Equal(t, mem.directors.rows[0].ID, movies[0].DirectorID)
	assert.Equal(t, mem.categories.rows[1].ID, movies[2].CategoryID)
	assert.Equal(t, mem.directors.rows[2].ID, movies[2].DirectorID)
	assert.False(t, movies[3].IsDisplay)

	for _, sal := range mem.saloons.rows {
		assert.Equal(t, mem.cities.rows[0].ID, sal.CityID)
	}
	for i, img := range mem.images.rows {
		assert.Equal(t, movies[i].ID, img.MovieID)
	}
	for _, st := range mem.showtimes.rows {
		assert.NotEqual(t, movies[3].ID, st.MovieID, "non displayed movie got a showtime")
		assert.LessOrEqual(t, st.SaloonID, mem.saloons.rows[2].ID)
	}
}

func TestCatalogSeeder_CommentsCycleMovies(t *testing.T) {
	mem := newMemCatalog()
	f := DefaultCatalogFixtures()
	f.Movies = f.Movies[:2]
	NewCatalogSeeder(mem.stores(), zap.NewNop(), WithFixtures(f), fixedSpread(3)).Run(context.Background())

	// Two movies allow at most four comments, alternating between them.
	require.Len(t, mem.comments.rows, 4)
	ids := []uint64{}
	for _, c := range mem.comments.rows {
		ids = append(ids, c.MovieID)
	}
	assert.Equal(t, []uint64{1, 2, 1, 2}, ids)
	assert.Equal(t, f.Comments[3].Text, mem.comments.rows[3].Text)
}

func TestCatalogSeeder_IndexFallback(t *testing.T) {
	mem := newMemCatalog()
	f := DefaultCatalogFixtures()
	f.Categories = f.Categories[:1]
	f.Directors = f.Directors[:1]
	NewCatalogSeeder(mem.stores(), zap.NewNop(), WithFixtures(f), fixedSpread(3)).Run(context.Background())

	for _, m := range mem.movies.rows {
		assert.Equal(t, uint64(1), m.CategoryID)
		assert.Equal(t, uint64(1), m.DirectorID)
	}
}

func TestCatalogSeeder_NoMoviesMeansMissingDependency(t *testing.T) {
	mem := newMemCatalog()
	f := DefaultCatalogFixtures()
	f.Movies = nil
	rep := NewCatalogSeeder(mem.stores(), zap.NewNop(), WithFixtures(f), fixedSpread(3)).Run(context.Background())

	assert.Empty(t, rep.Failed())
	for _, name := range []string{CollectionCities, CollectionSaloons, CollectionMovieImages, CollectionActors, CollectionComments, CollectionShowtimes} {
		res := outcome(t, rep, name)
		assert.Equal(t, OutcomeMissingDependency, res.Outcome, name)
		assert.Zero(t, res.Count, name)
	}
}

func TestCatalogSeeder_FailureIsIsolated(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	mem := newMemCatalog()
	mem.actors.createErr = errors.New("connection reset")

	rep := NewCatalogSeeder(mem.stores(), zap.New(core), fixedSpread(3)).Run(context.Background())

	failed := rep.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, CollectionActors, failed[0].Name)
	assert.Contains(t, failed[0].Error, "connection reset")

	assert.Equal(t, OutcomeSeeded, outcome(t, rep, CollectionComments).Outcome)
	assert.Equal(t, OutcomeSeeded, outcome(t, rep, CollectionShowtimes).Outcome)
	assert.Equal(t, 1, logs.FilterMessage("seed collection").FilterField(zap.String("collection", CollectionActors)).Len())
	assert.Equal(t, 9, logs.FilterMessage("collection summary").Len())
}

func TestCatalogSeeder_PartialInsertKept(t *testing.T) {
	mem := newMemCatalog()
	mem.categories.failAfter = 4

	rep := NewCatalogSeeder(mem.stores(), zap.NewNop(), fixedSpread(3)).Run(context.Background())

	res := outcome(t, rep, CollectionCategories)
	assert.Equal(t, OutcomeFailed, res.Outcome)
	assert.Equal(t, 4, res.Inserted)
	assert.Equal(t, int64(4), res.Count)
	// Movies still resolve against the categories that were written.
	assert.Equal(t, OutcomeSeeded, outcome(t, rep, CollectionMovies).Outcome)
}

func TestCatalogSeeder_CountErrorFailsCollection(t *testing.T) {
	mem := newMemCatalog()
	mem.directors.countErr = errors.New("timeout")

	rep := NewCatalogSeeder(mem.stores(), zap.NewNop(), fixedSpread(3)).Run(context.Background())

	assert.Equal(t, OutcomeFailed, outcome(t, rep, CollectionDirectors).Outcome)
	assert.Equal(t, OutcomeMissingDependency, outcome(t, rep, CollectionMovies).Outcome)
}

type panickingMovies struct{ *memCollection[model.Movie] }

func (panickingMovies) Create(context.Context, *model.Movie) error { panic("boom") }

func TestCatalogSeeder_PanicIsRecovered(t *testing.T) {
	mem := newMemCatalog()
	stores := mem.stores()
	stores.Movies = panickingMovies{mem.movies}

	rep := NewCatalogSeeder(stores, zap.NewNop(), fixedSpread(3)).Run(context.Background())

	res := outcome(t, rep, CollectionMovies)
	assert.Equal(t, OutcomeFailed, res.Outcome)
	assert.Equal(t, "boom", res.Error)
	assert.Equal(t, OutcomeSeeded, outcome(t, rep, CollectionCategories).Outcome)
}

func TestCatalogSeeder_DefaultSpreadBounds(t *testing.T) {
	mem := newMemCatalog()
	NewCatalogSeeder(mem.stores(), zap.NewNop()).Run(context.Background())

	perMovie := map[uint64]int{}
	for _, c := range mem.cities.rows {
		perMovie[c.MovieID]++
	}
	require.Len(t, perMovie, 5)
	for id, n := range perMovie {
		assert.True(t, n >= 3 && n <= 5, "movie %d got %d cities", id, n)
	}
}

func TestCatalogSeeder_ImagePoolActorsAndFewSaloons(t *testing.T) {
	mem := newMemCatalog()
	f := DefaultCatalogFixtures()
	base := f.Movies
	f.Movies = nil
	for i := range 14 {
		m := base[i%len(base)]
		m.Name = fmt.Sprintf("%s %d", m.Name, i)
		f.Movies = append(f.Movies, m)
	}
	f.Saloons = f.Saloons[:2]
	displayed := 0
	for _, m := range f.Movies {
		if m.IsDisplay {
			displayed++
		}
	}

	rep := NewCatalogSeeder(mem.stores(), zap.NewNop(), WithFixtures(f), fixedSpread(3)).Run(context.Background())
	require.Empty(t, rep.Failed())

	// 14 movies share a pool of 12 URLs.
	images := mem.images.rows
	require.Len(t, images, 14)
	assert.Equal(t, images[0].ImageURL, images[12].ImageURL)
	assert.Equal(t, images[1].ImageURL, images[13].ImageURL)

	// Only the first five movies have an actor set.
	require.Len(t, mem.actors.rows, 25)
	for _, a := range mem.actors.rows {
		assert.LessOrEqual(t, a.MovieID, mem.movies.rows[4].ID)
	}

	assert.Len(t, mem.comments.rows, 7)

	require.Len(t, mem.showtimes.rows, displayed*2*5)
	for _, st := range mem.showtimes.rows {
		assert.LessOrEqual(t, st.SaloonID, mem.saloons.rows[1].ID)
	}
}

func TestCatalogSeeder_ShowtimesOnlyForDisplayedMovies(t *testing.T) {
	mem := newMemCatalog()
	f := DefaultCatalogFixtures()
	for i := range f.Movies {
		f.Movies[i].IsDisplay = i < 2
	}

	NewCatalogSeeder(mem.stores(), zap.NewNop(), WithFixtures(f), fixedSpread(3)).Run(context.Background())

	require.Len(t, mem.showtimes.rows, 30)
	perMovie := map[uint64]int{}
	for _, st := range mem.showtimes.rows {
		perMovie[st.MovieID]++
	}
	assert.Equal(t, map[uint64]int{mem.movies.rows[0].ID: 15, mem.movies.rows[1].ID: 15}, perMovie)
}

// flakyActors stores rows until limit is reached and then panics.
type flakyActors struct {
	*memCollection[model.Actor]
	limit int
}

func (f flakyActors) Create(ctx context.Context, a *model.Actor) error {
	if len(f.rows) >= f.limit {
		panic("driver crashed")
	}
	return f.memCollection.Create(ctx, a)
}

func TestCatalogSeeder_PanicKeepsInsertedCount(t *testing.T) {
	mem := newMemCatalog()
	stores := mem.stores()
	stores.Actors = flakyActors{memCollection: mem.actors, limit: 3}

	rep := NewCatalogSeeder(stores, zap.NewNop(), fixedSpread(3)).Run(context.Background())

	res := outcome(t, rep, CollectionActors)
	assert.Equal(t, OutcomeFailed, res.Outcome)
	assert.Equal(t, "driver crashed", res.Error)
	assert.Equal(t, 3, res.Inserted)
	assert.Equal(t, int64(3), res.Count)
	assert.Equal(t, OutcomeSeeded, outcome(t, rep, CollectionComments).Outcome)
}
