package repository

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/planhaus/storefront/base/ctx"
	"github.com/planhaus/storefront/domain"
	"github.com/planhaus/storefront/domain/listing"
	mPlanapi "github.com/planhaus/storefront/service/planapi/mocks"
)

func TestListCachesSnapshot(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	api := &mPlanapi.Client{}
	api.On("ListHousePlans", mock.Anything).Return([]*listing.Listing{{Id: 1, Title: "Aloe Cottage"}}, nil).Once()
	repo := NewListingRepo(api)

	first, err := repo.List(c, listing.DatasetHousePlans)
	req.NoError(err)
	req.Len(first, 1)

	// second read is served from the snapshot
	second, err := repo.List(c, listing.DatasetHousePlans)
	req.NoError(err)
	req.Len(second, 1)
	api.AssertExpectations(t)
}

func TestListFallsBackToLastGood(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	api := &mPlanapi.Client{}
	api.On("ListBuiltHomes", mock.Anything).Return([]*listing.Listing{{Id: 7, Title: "Dune House"}}, nil).Once()
	repo := NewListingRepo(api)

	warm, err := repo.List(c, listing.DatasetBuiltHomes)
	req.NoError(err)
	req.Len(warm, 1)

	// expire the snapshot and break the upstream
	im := repo.(*impl)
	req.NoError(im.snapshots.Del(c, string(listing.DatasetBuiltHomes)))
	api.On("ListBuiltHomes", mock.Anything).Return(nil, domain.ErrUpstreamUnreachable)

	stale, err := repo.List(c, listing.DatasetBuiltHomes)
	req.NoError(err)
	req.Len(stale, 1)
	req.Equal(int64(7), stale[0].Id)
}

func TestListNoFallbackAvailable(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	api := &mPlanapi.Client{}
	api.On("ListHousePlans", mock.Anything).Return(nil, domain.ErrUpstreamUnreachable)
	repo := NewListingRepo(api)

	_, err := repo.List(c, listing.DatasetHousePlans)
	req.ErrorIs(err, domain.ErrUpstreamUnreachable)
}

func TestFindOnePrefersSnapshot(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	api := &mPlanapi.Client{}
	api.On("ListHousePlans", mock.Anything).Return([]*listing.Listing{{Id: 3, Title: "Cypress Villa"}}, nil).Once()
	repo := NewListingRepo(api)

	_, err := repo.List(c, listing.DatasetHousePlans)
	req.NoError(err)

	found, err := repo.FindOne(c, 3)
	req.NoError(err)
	req.Equal("Cypress Villa", found.Title)
	api.AssertNotCalled(t, "GetHousePlan", mock.Anything, mock.Anything)
}

func TestFindOneFetchesMiss(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	api := &mPlanapi.Client{}
	api.On("GetHousePlan", mock.Anything, int64(9)).Return(&listing.Listing{Id: 9, Title: "Baobab Manor"}, nil)
	repo := NewListingRepo(api)

	found, err := repo.FindOne(c, 9)
	req.NoError(err)
	req.Equal(int64(9), found.Id)

	api.On("GetHousePlan", mock.Anything, int64(10)).Return(nil, domain.ErrNotFound)
	_, err = repo.FindOne(c, 10)
	req.ErrorIs(err, domain.ErrNotFound)
}
