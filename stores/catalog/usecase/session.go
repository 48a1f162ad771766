package usecase

import (
	"sync"

	"github.com/planhaus/storefront/base/ctx"
	"github.com/planhaus/storefront/domain/listing"
)

// Session is the shared observable between the search input and the
// catalog view: one state store both sides talk to instead of a
// broadcast event. Every input change recomputes the page synchronously
// and notifies every subscriber with the fresh result.
type Session struct {
	mu      sync.Mutex
	catalog listing.CatalogUsecase
	dataset listing.Dataset
	query   listing.CatalogQuery

	nextSub int
	subs    map[int]func(*listing.CatalogPage)
}

func NewSession(catalog listing.CatalogUsecase, dataset listing.Dataset) *Session {
	return &Session{
		catalog: catalog,
		dataset: dataset,
		query: listing.CatalogQuery{
			Sort:     listing.SortNewest,
			Page:     1,
			PageSize: DefaultPageSize,
		},
		subs: map[int]func(*listing.CatalogPage){},
	}
}

// Subscribe registers fn and returns an unsubscribe func.
func (s *Session) Subscribe(fn func(*listing.CatalogPage)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// Query returns a copy of the current pipeline inputs.
func (s *Session) Query() listing.CatalogQuery {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

func (s *Session) SetFilters(c ctx.Ctx, f listing.FilterCriteria) (*listing.CatalogPage, error) {
	s.mu.Lock()
	s.query.Filters = f
	s.query.Page = 1
	s.mu.Unlock()
	return s.recompute(c)
}

func (s *Session) ClearFilters(c ctx.Ctx) (*listing.CatalogPage, error) {
	return s.SetFilters(c, listing.FilterCriteria{})
}

func (s *Session) SetSort(c ctx.Ctx, key listing.SortKey) (*listing.CatalogPage, error) {
	s.mu.Lock()
	s.query.Sort = key
	s.mu.Unlock()
	return s.recompute(c)
}

// SetSearch updates the search string and resets the page to 1.
func (s *Session) SetSearch(c ctx.Ctx, search string) (*listing.CatalogPage, error) {
	s.mu.Lock()
	s.query.Search = search
	s.query.Page = 1
	s.mu.Unlock()
	return s.recompute(c)
}

func (s *Session) SetPage(c ctx.Ctx, page int) (*listing.CatalogPage, error) {
	s.mu.Lock()
	if page < 1 {
		page = 1
	}
	s.query.Page = page
	s.mu.Unlock()
	return s.recompute(c)
}

func (s *Session) recompute(c ctx.Ctx) (*listing.CatalogPage, error) {
	s.mu.Lock()
	q := s.query
	s.mu.Unlock()

	page, err := s.catalog.Page(c, s.dataset, q)
	if err != nil {
		c.WithField("err", err).Error("catalog.Page failed")
		return nil, err
	}

	s.mu.Lock()
	subs := make([]func(*listing.CatalogPage), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(page)
	}
	return page, nil
}
