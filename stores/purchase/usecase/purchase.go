package usecase

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"

	"github.com/planhaus/storefront/base/ctx"
	"github.com/planhaus/storefront/base/metrics"
	"github.com/planhaus/storefront/base/ptr"
	"github.com/planhaus/storefront/domain"
	"github.com/planhaus/storefront/domain/listing"
	"github.com/planhaus/storefront/domain/purchase"
	"github.com/planhaus/storefront/service/planapi"
)

const (
	checkoutCurrency = "ZAR"
	checkoutName     = "Built Home Purchase"
)

type impl struct {
	attempts purchase.AttemptRepo
	listings listing.Repo
	api      planapi.Client
	met      metrics.Service
}

func New(attempts purchase.AttemptRepo, listings listing.Repo, api planapi.Client) purchase.Usecase {
	return &impl{
		attempts: attempts,
		listings: listings,
		api:      api,
		met:      metrics.New("purchase"),
	}
}

func (im *impl) Begin(c ctx.Ctx, listingId int64) (*purchase.Attempt, error) {
	l, err := im.listings.FindOne(c, listingId)
	if err != nil {
		c.WithField("err", err).WithField("listingId", listingId).Error("listings.FindOne failed")
		return nil, err
	}

	attempt := &purchase.Attempt{
		Id:           uuid.NewString(),
		ListingId:    l.Id,
		ListingTitle: l.Title,
		Price:        l.Price,
		State:        purchase.StateCollectingInfo,
	}
	if err := im.attempts.Create(c, attempt); err != nil {
		c.WithField("err", err).Error("attempts.Create failed")
		return nil, err
	}

	im.met.BumpSum("begin.count", 1)

	return attempt, nil
}

func (im *impl) Submit(c ctx.Ctx, attemptId string, contact purchase.ContactInfo) (*purchase.PaymentParams, error) {
	attempt, err := im.attempts.FindOne(c, attemptId)
	if err != nil {
		return nil, err
	}

	// a failed attempt re-enters the form before resubmitting
	if attempt.State == purchase.StateFailed {
		if err := im.moveTo(c, attempt, purchase.StateCollectingInfo); err != nil {
			return nil, err
		}
	}

	if !attempt.State.CanTransition(purchase.StatePersisting) {
		return nil, domain.ErrInvalidStateTransition
	}

	// fetch the payment key before writing anything upstream, so an
	// unavailable payment provider never strands a persisted purchase
	publicKey, err := im.api.GetPublicKey(c)
	if err != nil {
		c.WithField("err", err).Error("api.GetPublicKey failed")
		return nil, err
	}

	attempt.Contact = &contact
	if err := im.moveTo(c, attempt, purchase.StatePersisting); err != nil {
		return nil, err
	}

	purchaseId, err := im.api.CreatePurchase(c, &planapi.CreatePurchaseRequest{
		HousePlanId: attempt.ListingId,
		FullName:    contact.FullName,
		Email:       contact.Email,
		PhoneNumber: contact.PhoneNumber,
		Province:    contact.Province,
		City:        contact.City,
		PickUpPoint: contact.PickUpPoint,
		AreaMall:    contact.AreaMall,
	})
	if err != nil {
		c.WithField("err", err).Error("api.CreatePurchase failed")
		im.met.BumpSum("submit.err", 1)
		im.fail(c, attempt)
		return nil, err
	}

	attempt.PurchaseId = ptr.Int64(purchaseId)
	if err := im.moveTo(c, attempt, purchase.StateAwaitingPayment); err != nil {
		return nil, err
	}

	im.met.BumpSum("submit.count", 1)

	return &purchase.PaymentParams{
		AttemptId:     attempt.Id,
		PublicKey:     publicKey,
		AmountInCents: amountInCents(attempt.Price),
		Currency:      checkoutCurrency,
		Name:          checkoutName,
		Description:   attempt.ListingTitle,
	}, nil
}

func (im *impl) CompletePayment(c ctx.Ctx, attemptId string, result purchase.WidgetResult) (*purchase.Receipt, error) {
	attempt, err := im.attempts.FindOne(c, attemptId)
	if err != nil {
		return nil, err
	}

	if !attempt.State.CanTransition(purchase.StateConfirming) {
		return nil, domain.ErrInvalidStateTransition
	}

	// the widget reported an error, nothing was charged and nothing is
	// sent upstream
	if result.Error != nil {
		c.WithField("widgetErr", result.Error.Message).Warn("payment widget failed")
		im.met.BumpSum("payment.widgetErr", 1)
		im.fail(c, attempt)
		return nil, xerrors.Errorf("%s: %w", result.Error.Message, domain.ErrPaymentFailed)
	}

	if err := im.moveTo(c, attempt, purchase.StateConfirming); err != nil {
		return nil, err
	}

	if attempt.PurchaseId == nil {
		im.fail(c, attempt)
		return nil, domain.ErrInternalServerError
	}

	if err := im.api.ProcessPayment(c, *attempt.PurchaseId, result.Id); err != nil {
		c.WithField("err", err).Error("api.ProcessPayment failed")
		im.met.BumpSum("payment.err", 1)
		im.fail(c, attempt)
		return nil, err
	}

	if err := im.moveTo(c, attempt, purchase.StateSucceeded); err != nil {
		return nil, err
	}

	im.met.BumpSum("payment.count", 1)

	receipt := &purchase.Receipt{
		ListingTitle: attempt.ListingTitle,
		Price:        attempt.Price,
	}
	if attempt.Contact != nil {
		receipt.Email = attempt.Contact.Email
	}
	return receipt, nil
}

func (im *impl) Cancel(c ctx.Ctx, attemptId string) error {
	attempt, err := im.attempts.FindOne(c, attemptId)
	if err != nil {
		return err
	}

	if !attempt.State.CanTransition(purchase.StateCancelled) {
		return domain.ErrInvalidStateTransition
	}

	im.met.BumpSum("cancel.count", 1)

	return im.moveTo(c, attempt, purchase.StateCancelled)
}

func (im *impl) Get(c ctx.Ctx, attemptId string) (*purchase.Attempt, error) {
	return im.attempts.FindOne(c, attemptId)
}

func (im *impl) moveTo(c ctx.Ctx, attempt *purchase.Attempt, next purchase.State) error {
	if !attempt.State.CanTransition(next) {
		return domain.ErrInvalidStateTransition
	}
	attempt.State = next
	if err := im.attempts.Update(c, attempt); err != nil {
		c.WithField("err", err).WithField("state", next).Error("attempts.Update failed")
		return err
	}
	return nil
}

// fail is best effort, the original error is what callers see.
func (im *impl) fail(c ctx.Ctx, attempt *purchase.Attempt) {
	if err := im.moveTo(c, attempt, purchase.StateFailed); err != nil {
		c.WithField("err", err).Warn("marking attempt failed")
	}
}

// amountInCents converts the display price into the integer minor unit
// the payment widget expects.
func amountInCents(price decimal.Decimal) int64 {
	return price.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
