package usecase

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/planhaus/storefront/base/ctx"
	"github.com/planhaus/storefront/domain/listing"
)

func TestSessionSearchResetsPage(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	seven := make([]*listing.Listing, 0, 7)
	for i := int64(1); i <= 7; i++ {
		seven = append(seven, &listing.Listing{Id: i, Title: "Plan"})
	}
	repo := &stubRepo{listings: seven}
	s := NewSession(New(repo), listing.DatasetBuiltHomes)

	page, err := s.SetPage(c, 2)
	req.NoError(err)
	req.Equal(2, page.Page)
	req.Len(page.Items, 1)

	// search input change propagates and resets to page 1
	page, err = s.SetSearch(c, "plan")
	req.NoError(err)
	req.Equal(1, page.Page)
	req.Len(page.Items, 6)
	req.Equal(1, s.Query().Page)
}

func TestSessionNotifiesSubscribers(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	repo := &stubRepo{listings: []*listing.Listing{{Id: 1, Title: "Aloe"}, {Id: 2, Title: "Baobab"}}}
	s := NewSession(New(repo), listing.DatasetBuiltHomes)

	var seen []*listing.CatalogPage
	unsubscribe := s.Subscribe(func(p *listing.CatalogPage) {
		seen = append(seen, p)
	})

	_, err := s.SetSearch(c, "aloe")
	req.NoError(err)
	req.Len(seen, 1)
	req.Equal(1, seen[0].Total)

	unsubscribe()
	_, err = s.SetSearch(c, "")
	req.NoError(err)
	req.Len(seen, 1)
}

type stubRepo struct {
	listings []*listing.Listing
}

func (s *stubRepo) List(c ctx.Ctx, dataset listing.Dataset) ([]*listing.Listing, error) {
	return s.listings, nil
}

func (s *stubRepo) FindOne(c ctx.Ctx, id int64) (*listing.Listing, error) {
	for _, l := range s.listings {
		if l.Id == id {
			return l, nil
		}
	}
	return nil, nil
}
