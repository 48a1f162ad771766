package inquiry

import (
	"github.com/planhaus/storefront/base/ctx"
)

// ContactMessage is a free-form message forwarded to the plans backend.
type ContactMessage struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message" validate:"required"`
}

// QuoteRequest asks for a build quote on a specific plan.
type QuoteRequest struct {
	HousePlanId int64  `json:"housePlanId" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required"`
	Location    string `json:"location"`
	Message     string `json:"message"`
}

// Usecase forwards inquiries upstream.
type Usecase interface {
	SendContactMessage(c ctx.Ctx, msg *ContactMessage) error
	SendQuoteRequest(c ctx.Ctx, quote *QuoteRequest) error
}
