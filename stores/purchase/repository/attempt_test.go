package repository

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/planhaus/storefront/base/ctx"
	"github.com/planhaus/storefront/domain"
	"github.com/planhaus/storefront/domain/purchase"
)

func TestAttemptRepoLifecycle(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	repo := NewAttemptRepo()

	attempt := &purchase.Attempt{Id: "a-1", ListingId: 7, State: purchase.StateCollectingInfo}
	req.NoError(repo.Create(c, attempt))
	req.False(attempt.CreatedAt.IsZero())

	found, err := repo.FindOne(c, "a-1")
	req.NoError(err)
	req.Equal(purchase.StateCollectingInfo, found.State)

	found.State = purchase.StatePersisting
	req.NoError(repo.Update(c, found))

	again, err := repo.FindOne(c, "a-1")
	req.NoError(err)
	req.Equal(purchase.StatePersisting, again.State)

	req.NoError(repo.Delete(c, "a-1"))
	_, err = repo.FindOne(c, "a-1")
	req.ErrorIs(err, domain.ErrAttemptNotFound)
}

func TestAttemptRepoReturnsCopies(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	repo := NewAttemptRepo()

	req.NoError(repo.Create(c, &purchase.Attempt{Id: "a-2", State: purchase.StateCollectingInfo}))

	leaked, err := repo.FindOne(c, "a-2")
	req.NoError(err)
	leaked.State = purchase.StateSucceeded

	stored, err := repo.FindOne(c, "a-2")
	req.NoError(err)
	req.Equal(purchase.StateCollectingInfo, stored.State)
}

func TestAttemptRepoUpdateMissing(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	repo := NewAttemptRepo()

	err := repo.Update(c, &purchase.Attempt{Id: "nope"})
	req.ErrorIs(err, domain.ErrAttemptNotFound)

	err = repo.Delete(c, "nope")
	req.ErrorIs(err, domain.ErrAttemptNotFound)
}
