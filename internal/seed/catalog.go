// Package seed populates the service databases with reference data on
// startup.  Seeding is a one-time bootstrap: a collection that already has
// rows is left untouched.
package seed

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/iliyamo/cinevision/internal/model"
)

// Collection is the storage surface the catalog seeder needs for one
// entity type.  List must return rows in insertion order.
type Collection[T any] interface {
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, v *T) error
}

// CatalogStores bundles the nine catalog collections.
type CatalogStores struct {
	Categories  Collection[model.Category]
	Directors   Collection[model.Director]
	Movies      Collection[model.Movie]
	Cities      Collection[model.City]
	Saloons     Collection[model.Saloon]
	MovieImages Collection[model.MovieImage]
	Actors      Collection[model.Actor]
	Comments    Collection[model.Comment]
	Showtimes   Collection[model.MovieSaloonTime]
}

// Collection names used in logs and reports.
const (
	CollectionCategories  = "categories"
	CollectionDirectors   = "directors"
	CollectionMovies      = "movies"
	CollectionCities      = "cities"
	CollectionSaloons     = "saloons"
	CollectionMovieImages = "movie_images"
	CollectionActors      = "actors"
	CollectionComments    = "comments"
	CollectionShowtimes   = "showtimes"
)

const maxSaloonsPerMovie = 3

var errMissingDependency = errors.New("missing dependency")

// CatalogSeeder fills an empty catalog database.  Each collection is
// seeded independently; a failure in one is logged and recorded in the
// Report and the run continues with the next collection.
type CatalogSeeder struct {
	stores     CatalogStores
	fixtures   CatalogFixtures
	log        *zap.Logger
	citySpread func() int
}

// CatalogOption customizes a CatalogSeeder.
type CatalogOption func(*CatalogSeeder)

// WithFixtures replaces the default data set.
func WithFixtures(f CatalogFixtures) CatalogOption {
	return func(s *CatalogSeeder) { s.fixtures = f }
}

// WithCitySpread sets how many cities each movie receives.  The default
// picks 3 to 5 at random.
func WithCitySpread(fn func() int) CatalogOption {
	return func(s *CatalogSeeder) { s.citySpread = fn }
}

func NewCatalogSeeder(stores CatalogStores, log *zap.Logger, opts ...CatalogOption) *CatalogSeeder {
	s := &CatalogSeeder{
		stores:     stores,
		fixtures:   DefaultCatalogFixtures(),
		log:        log,
		citySpread: func() int { return 3 + rand.IntN(3) },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type step struct {
	name  string
	count func(context.Context) (int64, error)
	// seed adds one to *inserted per stored row, including rows stored
	// before an error or a panic.
	seed func(ctx context.Context, inserted *int) error
}

func (s *CatalogSeeder) steps() []step {
	st := s.stores
	return []step{
		{CollectionCategories, st.Categories.Count, s.seedCategories},
		{CollectionDirectors, st.Directors.Count, s.seedDirectors},
		{CollectionMovies, st.Movies.Count, s.seedMovies},
		{CollectionCities, st.Cities.Count, s.seedCities},
		{CollectionSaloons, st.Saloons.Count, s.seedSaloons},
		{CollectionMovieImages, st.MovieImages.Count, s.seedMovieImages},
		{CollectionActors, st.Actors.Count, s.seedActors},
		{CollectionComments, st.Comments.Count, s.seedComments},
		{CollectionShowtimes, st.Showtimes.Count, s.seedShowtimes},
	}
}

// Run seeds every empty collection in dependency order and logs a summary
// of the final row counts.  It never returns an error; inspect
// Report.Failed instead.
func (s *CatalogSeeder) Run(ctx context.Context) Report {
	rep := Report{StartedAt: time.Now().UTC()}
	steps := s.steps()
	for _, st := range steps {
		rep.Collections = append(rep.Collections, s.runStep(ctx, st))
	}

	s.log.Info("catalog seeding finished")
	for i, st := range steps {
		n, err := st.count(ctx)
		if err != nil {
			s.log.Warn("count collection", zap.String("collection", st.name), zap.Error(err))
			continue
		}
		rep.Collections[i].Count = n
		s.log.Info("collection summary", zap.String("collection", st.name), zap.Int64("count", n))
	}
	rep.FinishedAt = time.Now().UTC()
	return rep
}

func (s *CatalogSeeder) runStep(ctx context.Context, st step) (res CollectionResult) {
	res = CollectionResult{Name: st.name}
	log := s.log.With(zap.String("collection", st.name))
	defer func() {
		if r := recover(); r != nil {
			res.Outcome = OutcomeFailed
			res.Error = fmt.Sprint(r)
			log.Error("seeding panicked", zap.Int("inserted", res.Inserted), zap.Any("panic", r))
		}
	}()

	n, err := st.count(ctx)
	if err != nil {
		res.Outcome, res.Error = OutcomeFailed, err.Error()
		log.Error("count collection", zap.Error(err))
		return res
	}
	if n > 0 {
		res.Outcome = OutcomeSkipped
		log.Info("collection already seeded, skipping", zap.Int64("count", n))
		return res
	}

	log.Info("seeding collection")
	err = st.seed(ctx, &res.Inserted)
	switch {
	case errors.Is(err, errMissingDependency):
		res.Outcome = OutcomeMissingDependency
		log.Warn("skipping collection", zap.Error(err))
	case err != nil:
		res.Outcome, res.Error = OutcomeFailed, err.Error()
		log.Error("seed collection", zap.Int("inserted", res.Inserted), zap.Error(err))
	default:
		res.Outcome = OutcomeSeeded
		log.Info("collection seeded", zap.Int("inserted", res.Inserted))
	}
	return res
}

// pick returns list[i], falling back to the first element when i is out
// of range.  list must not be empty.
func pick[T any](list []T, i int) T {
	if i >= 0 && i < len(list) {
		return list[i]
	}
	return list[0]
}

func (s *CatalogSeeder) seedCategories(ctx context.Context, inserted *int) error {
	for _, name := range s.fixtures.Categories {
		if err := s.stores.Categories.Create(ctx, &model.Category{Name: name}); err != nil {
			return err
		}
		*inserted++
	}
	return nil
}

func (s *CatalogSeeder) seedDirectors(ctx context.Context, inserted *int) error {
	for _, name := range s.fixtures.Directors {
		if err := s.stores.Directors.Create(ctx, &model.Director{Name: name}); err != nil {
			return err
		}
		*inserted++
	}
	return nil
}

func (s *CatalogSeeder) seedMovies(ctx context.Context, inserted *int) error {
	categories, err := s.stores.Categories.List(ctx)
	if err != nil {
		return err
	}
	directors, err := s.stores.Directors.List(ctx)
	if err != nil {
		return err
	}
	if len(categories) == 0 || len(directors) == 0 {
		return fmt.Errorf("%w: categories or directors not found", errMissingDependency)
	}

	for _, f := range s.fixtures.Movies {
		m := model.Movie{
			Name:        f.Name,
			Description: f.Description,
			DurationMin: f.DurationMin,
			ReleaseDate: f.ReleaseDate,
			IsDisplay:   f.IsDisplay,
			TrailerURL:  f.TrailerURL,
			CategoryID:  pick(categories, f.CategoryIndex).ID,
			DirectorID:  pick(directors, f.DirectorIndex).ID,
		}
		if err := s.stores.Movies.Create(ctx, &m); err != nil {
			return err
		}
		*inserted++
	}
	return nil
}

// listMovies loads the stored movies and reports errMissingDependency when
// there are none.
func (s *CatalogSeeder) listMovies(ctx context.Context) ([]model.Movie, error) {
	movies, err := s.stores.Movies.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(movies) == 0 {
		return nil, fmt.Errorf("%w: no movies found", errMissingDependency)
	}
	return movies, nil
}

func (s *CatalogSeeder) seedCities(ctx context.Context, inserted *int) error {
	movies, err := s.listMovies(ctx)
	if err != nil {
		return err
	}
	names := s.fixtures.Cities
	if len(names) == 0 {
		return nil
	}
	for _, m := range movies {
		for i := range s.citySpread() {
			c := model.City{Name: names[i%len(names)], MovieID: m.ID}
			if err := s.stores.Cities.Create(ctx, &c); err != nil {
				return err
			}
			*inserted++
		}
	}
	return nil
}

func (s *CatalogSeeder) seedSaloons(ctx context.Context, inserted *int) error {
	cities, err := s.stores.Cities.List(ctx)
	if err != nil {
		return err
	}
	if len(cities) == 0 {
		return fmt.Errorf("%w: no cities found", errMissingDependency)
	}
	home := cities[0]
	for _, name := range s.fixtures.Saloons {
		if err := s.stores.Saloons.Create(ctx, &model.Saloon{Name: name, CityID: home.ID}); err != nil {
			return err
		}
		*inserted++
	}
	return nil
}

func (s *CatalogSeeder) seedMovieImages(ctx context.Context, inserted *int) error {
	movies, err := s.listMovies(ctx)
	if err != nil {
		return err
	}
	pool := s.fixtures.ImageURLs
	if len(pool) == 0 {
		return nil
	}
	for i, m := range movies {
		img := model.MovieImage{ImageURL: pool[i%len(pool)], MovieID: m.ID}
		if err := s.stores.MovieImages.Create(ctx, &img); err != nil {
			return err
		}
		*inserted++
	}
	return nil
}

func (s *CatalogSeeder) seedActors(ctx context.Context, inserted *int) error {
	movies, err := s.listMovies(ctx)
	if err != nil {
		return err
	}
	for i := range min(len(movies), len(s.fixtures.ActorSets)) {
		for _, name := range s.fixtures.ActorSets[i] {
			if err := s.stores.Actors.Create(ctx, &model.Actor{Name: name, MovieID: movies[i].ID}); err != nil {
				return err
			}
			*inserted++
		}
	}
	return nil
}

func (s *CatalogSeeder) seedComments(ctx context.Context, inserted *int) error {
	movies, err := s.listMovies(ctx)
	if err != nil {
		return err
	}
	templates := s.fixtures.Comments
	for i := range min(len(templates), len(movies)*2) {
		t := templates[i%len(templates)]
		c := model.Comment{
			Text:       t.Text,
			AuthorID:   t.AuthorID,
			AuthorName: t.AuthorName,
			MovieID:    movies[i%len(movies)].ID,
		}
		if err := s.stores.Comments.Create(ctx, &c); err != nil {
			return err
		}
		*inserted++
	}
	return nil
}

func (s *CatalogSeeder) seedShowtimes(ctx context.Context, inserted *int) error {
	movies, err := s.stores.Movies.List(ctx)
	if err != nil {
		return err
	}
	saloons, err := s.stores.Saloons.List(ctx)
	if err != nil {
		return err
	}
	if len(movies) == 0 || len(saloons) == 0 {
		return fmt.Errorf("%w: movies or saloons not found", errMissingDependency)
	}

	for _, m := range movies {
		if !m.IsDisplay {
			continue
		}
		for _, sal := range saloons[:min(maxSaloonsPerMovie, len(saloons))] {
			for _, slot := range s.fixtures.ShowtimeSlots {
				st := model.MovieSaloonTime{BeginTime: slot, MovieID: m.ID, SaloonID: sal.ID}
				if err := s.stores.Showtimes.Create(ctx, &st); err != nil {
					return err
				}
				*inserted++
			}
		}
	}
	return nil
}
