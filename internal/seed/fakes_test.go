package seed

import (
	"context"
	"errors"
	"sync"

	"github.com/iliyamo/cinevision/internal/model"
	"github.com/iliyamo/cinevision/internal/repository"
)

// memCollection is an in-memory Collection that assigns sequential IDs.
type memCollection[T any] struct {
	mu        sync.Mutex
	rows      []T
	setID     func(*T, uint64)
	createErr error
	countErr  error
	failAfter int // when > 0, Create fails once this many rows exist
}

func newMem[T any](setID func(*T, uint64)) *memCollection[T] {
	return &memCollection[T]{setID: setID}
}

func (m *memCollection[T]) Count(context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.countErr != nil {
		return 0, m.countErr
	}
	return int64(len(m.rows)), nil
}

func (m *memCollection[T]) List(context.Context) ([]T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]T(nil), m.rows...), nil
}

func (m *memCollection[T]) Create(_ context.Context, v *T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	if m.failAfter > 0 && len(m.rows) >= m.failAfter {
		return errors.New("disk full")
	}
	m.setID(v, uint64(len(m.rows)+1))
	m.rows = append(m.rows, *v)
	return nil
}

type memCatalog struct {
	categories *memCollection[model.Category]
	directors  *memCollection[model.Director]
	movies     *memCollection[model.Movie]
	cities     *memCollection[model.City]
	saloons    *memCollection[model.Saloon]
	images     *memCollection[model.MovieImage]
	actors     *memCollection[model.Actor]
	comments   *memCollection[model.Comment]
	showtimes  *memCollection[model.MovieSaloonTime]
}

func newMemCatalog() *memCatalog {
	return &memCatalog{
		categories: newMem(func(v *model.Category, id uint64) { v.ID = id }),
		directors:  newMem(func(v *model.Director, id uint64) { v.ID = id }),
		movies:     newMem(func(v *model.Movie, id uint64) { v.ID = id }),
		cities:     newMem(func(v *model.City, id uint64) { v.ID = id }),
		saloons:    newMem(func(v *model.Saloon, id uint64) { v.ID = id }),
		images:     newMem(func(v *model.MovieImage, id uint64) { v.ID = id }),
		actors:     newMem(func(v *model.Actor, id uint64) { v.ID = id }),
		comments:   newMem(func(v *model.Comment, id uint64) { v.ID = id }),
		showtimes:  newMem(func(v *model.MovieSaloonTime, id uint64) { v.ID = id }),
	}
}

func (c *memCatalog) stores() CatalogStores {
	return CatalogStores{
		Categories:  c.categories,
		Directors:   c.directors,
		Movies:      c.movies,
		Cities:      c.cities,
		Saloons:     c.saloons,
		MovieImages: c.images,
		Actors:      c.actors,
		Comments:    c.comments,
		Showtimes:   c.showtimes,
	}
}

// memClaims and memUsers back the identity seeder tests.
type memClaims struct {
	byName    map[string]*model.Claim
	creates   int
	lookupErr error
}

func newMemClaims() *memClaims { return &memClaims{byName: map[string]*model.Claim{}} }

func (m *memClaims) GetByName(_ context.Context, name string) (*model.Claim, error) {
	if m.lookupErr != nil {
		return nil, m.lookupErr
	}
	c, ok := m.byName[name]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return c, nil
}

func (m *memClaims) Create(_ context.Context, c *model.Claim) error {
	m.creates++
	c.ID = uint64(len(m.byName) + 1)
	m.byName[c.Name] = c
	return nil
}

type memUsers struct {
	rows      []model.User
	listErr   error
	setErr    error
	claimByID map[uint64]*model.Claim
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for i := range m.rows {
		if m.rows[i].Email == email {
			u := m.rows[i]
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memUsers) List(context.Context) ([]model.User, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return append([]model.User(nil), m.rows...), nil
}

func (m *memUsers) Create(_ context.Context, u *model.User) error {
	u.ID = uint64(len(m.rows) + 1)
	m.rows = append(m.rows, *u)
	return nil
}

func (m *memUsers) SetClaim(_ context.Context, userID, claimID uint64) error {
	if m.setErr != nil {
		return m.setErr
	}
	for i := range m.rows {
		if m.rows[i].ID == userID {
			id := claimID
			m.rows[i].ClaimID = &id
			m.rows[i].Claim = m.claimByID[claimID]
			return nil
		}
	}
	return repository.ErrNotFound
}

type prefixHasher struct{ err error }

func (h prefixHasher) Hash(plain string) (string, error) {
	if h.err != nil {
		return "", h.err
	}
	return "hashed:" + plain, nil
}
