package purchase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/planhaus/storefront/base/ctx"
)

// State of a single purchase attempt. One attempt spans one modal open;
// a failed attempt is terminal for that attempt but the buyer may begin
// a fresh one for the same listing.
type State string

const (
	StateIdle            State = "idle"
	StateCollectingInfo  State = "collecting_info"
	StatePersisting      State = "persisting"
	StateAwaitingPayment State = "awaiting_payment"
	StateConfirming      State = "confirming"
	StateSucceeded       State = "succeeded"
	StateFailed          State = "failed"
	StateCancelled       State = "cancelled"
)

var transitions = map[State][]State{
	StateIdle:            {StateCollectingInfo},
	StateCollectingInfo:  {StatePersisting, StateCancelled},
	StatePersisting:      {StateAwaitingPayment, StateFailed},
	StateAwaitingPayment: {StateConfirming, StateFailed, StateCancelled},
	StateConfirming:      {StateSucceeded, StateFailed},
	// persist and confirm failures drop the buyer back into the form
	StateFailed: {StateCollectingInfo},
}

// CanTransition reports whether moving to next is allowed.
func (s State) CanTransition(next State) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ContactInfo is the buyer form. The backend stays the source of truth
// for validation; these tags only enforce the obvious required fields.
type ContactInfo struct {
	FullName    string `json:"fullName" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	Province    string `json:"province"`
	City        string `json:"city"`
	PickUpPoint string `json:"pickUpPoint"`
	AreaMall    string `json:"areaMall"`
}

// Attempt is the in-memory purchase flow record. PurchaseId is the
// backend assigned identifier, retained only to attach the payment
// confirmation call.
type Attempt struct {
	Id           string          `json:"id"`
	ListingId    int64           `json:"listingId"`
	ListingTitle string          `json:"listingTitle"`
	Price        decimal.Decimal `json:"price"`
	State        State           `json:"state"`
	Contact      *ContactInfo    `json:"contact,omitempty"`
	PurchaseId   *int64          `json:"purchaseId,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// PaymentParams configures the hosted card widget for one attempt.
type PaymentParams struct {
	AttemptId     string `json:"attemptId"`
	PublicKey     string `json:"publicKey"`
	AmountInCents int64  `json:"amountInCents"`
	Currency      string `json:"currency"`
	Name          string `json:"name"`
	Description   string `json:"description"`
}

// WidgetError is the error half of the widget callback contract.
type WidgetError struct {
	Message string `json:"message"`
}

// WidgetResult is what the hosted widget reports back, exactly once per
// invocation: either an error or a payment token id.
type WidgetResult struct {
	Error *WidgetError `json:"error,omitempty"`
	Id    string       `json:"id,omitempty"`
}

// Receipt is the success acknowledgment shown to the buyer.
type Receipt struct {
	ListingTitle string          `json:"listingTitle"`
	Price        decimal.Decimal `json:"price"`
	Email        string          `json:"email"`
}

// AttemptRepo stores transient attempts for the lifetime of the flow.
type AttemptRepo interface {
	Create(c ctx.Ctx, attempt *Attempt) error
	FindOne(c ctx.Ctx, id string) (*Attempt, error)
	Update(c ctx.Ctx, attempt *Attempt) error
	Delete(c ctx.Ctx, id string) error
}

// Usecase drives the purchase flow state machine.
type Usecase interface {
	// Begin opens a flow for a listing and moves it to collecting_info.
	Begin(c ctx.Ctx, listingId int64) (*Attempt, error)
	// Submit persists the purchase upstream and, on success, returns the
	// widget parameters with the attempt in awaiting_payment.
	Submit(c ctx.Ctx, attemptId string, contact ContactInfo) (*PaymentParams, error)
	// CompletePayment consumes the widget callback result. A token is
	// confirmed upstream; an error fails the attempt without any
	// confirmation call.
	CompletePayment(c ctx.Ctx, attemptId string, result WidgetResult) (*Receipt, error)
	// Cancel abandons the attempt before payment confirmation.
	Cancel(c ctx.Ctx, attemptId string) error
	Get(c ctx.Ctx, attemptId string) (*Attempt, error)
}
