package usecase

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"

	"github.com/planhaus/storefront/base/ctx"
	"github.com/planhaus/storefront/domain"
	"github.com/planhaus/storefront/domain/listing"
	mListing "github.com/planhaus/storefront/domain/listing/mocks"
	"github.com/planhaus/storefront/domain/purchase"
	"github.com/planhaus/storefront/service/planapi"
	mPlanapi "github.com/planhaus/storefront/service/planapi/mocks"
	"github.com/planhaus/storefront/stores/purchase/repository"
)

func price(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func contact() purchase.ContactInfo {
	return purchase.ContactInfo{
		FullName:    "Thandi Nkosi",
		Email:       "thandi@example.com",
		PhoneNumber: "0821234567",
		Province:    "Gauteng",
		City:        "Johannesburg",
	}
}

func setup(t *testing.T) (*mListing.Repo, *mPlanapi.Client, purchase.Usecase) {
	listings := &mListing.Repo{}
	api := &mPlanapi.Client{}
	uc := New(repository.NewAttemptRepo(), listings, api)
	return listings, api, uc
}

func TestBegin(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	listings, _, uc := setup(t)
	listings.On("FindOne", mock.Anything, int64(7)).Return(&listing.Listing{Id: 7, Title: "Aloe Cottage", Price: price("450000")}, nil)

	attempt, err := uc.Begin(c, 7)
	req.NoError(err)
	req.NotEmpty(attempt.Id)
	req.Equal(purchase.StateCollectingInfo, attempt.State)
	req.Equal("Aloe Cottage", attempt.ListingTitle)
	req.True(attempt.Price.Equal(price("450000")))
}

func TestBeginUnknownListing(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	listings, _, uc := setup(t)
	listings.On("FindOne", mock.Anything, int64(404)).Return(nil, domain.ErrNotFound)

	_, err := uc.Begin(c, 404)
	req.ErrorIs(err, domain.ErrNotFound)
}

func TestSubmit(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	listings, api, uc := setup(t)
	listings.On("FindOne", mock.Anything, int64(7)).Return(&listing.Listing{Id: 7, Title: "Aloe Cottage", Price: price("450000.50")}, nil)
	api.On("GetPublicKey", mock.Anything).Return("pk_test_abc", nil)
	api.On("CreatePurchase", mock.Anything, mock.MatchedBy(func(r *planapi.CreatePurchaseRequest) bool {
		return r.HousePlanId == 7 && r.FullName == "Thandi Nkosi" && r.PhoneNumber == "0821234567"
	})).Return(int64(31), nil)

	attempt, err := uc.Begin(c, 7)
	req.NoError(err)

	params, err := uc.Submit(c, attempt.Id, contact())
	req.NoError(err)
	req.Equal("pk_test_abc", params.PublicKey)
	req.Equal(int64(45000050), params.AmountInCents)
	req.Equal("ZAR", params.Currency)
	req.Equal("Built Home Purchase", params.Name)
	req.Equal("Aloe Cottage", params.Description)

	after, err := uc.Get(c, attempt.Id)
	req.NoError(err)
	req.Equal(purchase.StateAwaitingPayment, after.State)
	req.NotNil(after.PurchaseId)
	req.Equal(int64(31), *after.PurchaseId)
}

func TestSubmitPaymentKeyUnavailable(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	listings, api, uc := setup(t)
	listings.On("FindOne", mock.Anything, int64(7)).Return(&listing.Listing{Id: 7, Title: "Aloe Cottage", Price: price("450000")}, nil)
	api.On("GetPublicKey", mock.Anything).Return("", xerrors.Errorf("key fetch: %w", domain.ErrPaymentUnavailable))

	attempt, err := uc.Begin(c, 7)
	req.NoError(err)

	_, err = uc.Submit(c, attempt.Id, contact())
	req.ErrorIs(err, domain.ErrPaymentUnavailable)

	// no upstream write happened and the form is still open
	api.AssertNotCalled(t, "CreatePurchase", mock.Anything, mock.Anything)
	after, err := uc.Get(c, attempt.Id)
	req.NoError(err)
	req.Equal(purchase.StateCollectingInfo, after.State)
}

func TestSubmitUpstreamRejectedThenRetry(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	listings, api, uc := setup(t)
	listings.On("FindOne", mock.Anything, int64(7)).Return(&listing.Listing{Id: 7, Title: "Aloe Cottage", Price: price("450000")}, nil)
	api.On("GetPublicKey", mock.Anything).Return("pk_test_abc", nil)
	api.On("CreatePurchase", mock.Anything, mock.Anything).Return(int64(0), domain.ErrUpstreamRejected).Once()

	attempt, err := uc.Begin(c, 7)
	req.NoError(err)

	_, err = uc.Submit(c, attempt.Id, contact())
	req.ErrorIs(err, domain.ErrUpstreamRejected)

	after, err := uc.Get(c, attempt.Id)
	req.NoError(err)
	req.Equal(purchase.StateFailed, after.State)

	// the same attempt accepts a corrected resubmission
	api.On("CreatePurchase", mock.Anything, mock.Anything).Return(int64(32), nil)
	params, err := uc.Submit(c, attempt.Id, contact())
	req.NoError(err)
	req.Equal(attempt.Id, params.AttemptId)
}

func TestCompletePayment(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	listings, api, uc := setup(t)
	listings.On("FindOne", mock.Anything, int64(7)).Return(&listing.Listing{Id: 7, Title: "Aloe Cottage", Price: price("450000")}, nil)
	api.On("GetPublicKey", mock.Anything).Return("pk_test_abc", nil)
	api.On("CreatePurchase", mock.Anything, mock.Anything).Return(int64(31), nil)
	api.On("ProcessPayment", mock.Anything, int64(31), "tok_123").Return(nil)

	attempt, err := uc.Begin(c, 7)
	req.NoError(err)
	_, err = uc.Submit(c, attempt.Id, contact())
	req.NoError(err)

	receipt, err := uc.CompletePayment(c, attempt.Id, purchase.WidgetResult{Id: "tok_123"})
	req.NoError(err)
	req.Equal("Aloe Cottage", receipt.ListingTitle)
	req.Equal("thandi@example.com", receipt.Email)

	after, err := uc.Get(c, attempt.Id)
	req.NoError(err)
	req.Equal(purchase.StateSucceeded, after.State)
}

func TestCompletePaymentWidgetError(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	listings, api, uc := setup(t)
	listings.On("FindOne", mock.Anything, int64(7)).Return(&listing.Listing{Id: 7, Title: "Aloe Cottage", Price: price("450000")}, nil)
	api.On("GetPublicKey", mock.Anything).Return("pk_test_abc", nil)
	api.On("CreatePurchase", mock.Anything, mock.Anything).Return(int64(31), nil)

	attempt, err := uc.Begin(c, 7)
	req.NoError(err)
	_, err = uc.Submit(c, attempt.Id, contact())
	req.NoError(err)

	_, err = uc.CompletePayment(c, attempt.Id, purchase.WidgetResult{Error: &purchase.WidgetError{Message: "card declined"}})
	req.ErrorIs(err, domain.ErrPaymentFailed)
	req.Contains(err.Error(), "card declined")

	// no confirmation call for a widget failure
	api.AssertNotCalled(t, "ProcessPayment", mock.Anything, mock.Anything, mock.Anything)
	after, err := uc.Get(c, attempt.Id)
	req.NoError(err)
	req.Equal(purchase.StateFailed, after.State)
}

func TestCompletePaymentConfirmFails(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	listings, api, uc := setup(t)
	listings.On("FindOne", mock.Anything, int64(7)).Return(&listing.Listing{Id: 7, Title: "Aloe Cottage", Price: price("450000")}, nil)
	api.On("GetPublicKey", mock.Anything).Return("pk_test_abc", nil)
	api.On("CreatePurchase", mock.Anything, mock.Anything).Return(int64(31), nil)
	api.On("ProcessPayment", mock.Anything, int64(31), "tok_bad").Return(domain.ErrUpstreamRejected)

	attempt, err := uc.Begin(c, 7)
	req.NoError(err)
	_, err = uc.Submit(c, attempt.Id, contact())
	req.NoError(err)

	_, err = uc.CompletePayment(c, attempt.Id, purchase.WidgetResult{Id: "tok_bad"})
	req.ErrorIs(err, domain.ErrUpstreamRejected)

	after, err := uc.Get(c, attempt.Id)
	req.NoError(err)
	req.Equal(purchase.StateFailed, after.State)
}

func TestCancel(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	listings, api, uc := setup(t)
	listings.On("FindOne", mock.Anything, int64(7)).Return(&listing.Listing{Id: 7, Title: "Aloe Cottage", Price: price("450000")}, nil)
	api.On("GetPublicKey", mock.Anything).Return("pk_test_abc", nil)
	api.On("CreatePurchase", mock.Anything, mock.Anything).Return(int64(31), nil)
	api.On("ProcessPayment", mock.Anything, int64(31), "tok_123").Return(nil)

	attempt, err := uc.Begin(c, 7)
	req.NoError(err)
	req.NoError(uc.Cancel(c, attempt.Id))

	after, err := uc.Get(c, attempt.Id)
	req.NoError(err)
	req.Equal(purchase.StateCancelled, after.State)

	// a settled attempt cannot be cancelled
	second, err := uc.Begin(c, 7)
	req.NoError(err)
	_, err = uc.Submit(c, second.Id, contact())
	req.NoError(err)
	_, err = uc.CompletePayment(c, second.Id, purchase.WidgetResult{Id: "tok_123"})
	req.NoError(err)
	req.ErrorIs(uc.Cancel(c, second.Id), domain.ErrInvalidStateTransition)
}
