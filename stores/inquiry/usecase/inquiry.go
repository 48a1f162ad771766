package usecase

import (
	"github.com/planhaus/storefront/base/ctx"
	"github.com/planhaus/storefront/base/metrics"
	"github.com/planhaus/storefront/domain/inquiry"
	"github.com/planhaus/storefront/service/planapi"
)

type impl struct {
	api planapi.Client
	met metrics.Service
}

func New(api planapi.Client) inquiry.Usecase {
	return &impl{
		api: api,
		met: metrics.New("inquiry"),
	}
}

func (im *impl) SendContactMessage(c ctx.Ctx, msg *inquiry.ContactMessage) error {
	err := im.api.CreateContactMessage(c, &planapi.ContactMessageRequest{
		Name:    msg.Name,
		Email:   msg.Email,
		Phone:   msg.Phone,
		Subject: msg.Subject,
		Message: msg.Message,
	})
	if err != nil {
		c.WithField("err", err).Error("api.CreateContactMessage failed")
		return err
	}

	im.met.BumpSum("contactMessage.count", 1)

	return nil
}

func (im *impl) SendQuoteRequest(c ctx.Ctx, quote *inquiry.QuoteRequest) error {
	err := im.api.CreateQuoteRequest(c, &planapi.QuoteRequestRequest{
		HousePlanId: quote.HousePlanId,
		Name:        quote.Name,
		Email:       quote.Email,
		Phone:       quote.Phone,
		Location:    quote.Location,
		Message:     quote.Message,
	})
	if err != nil {
		c.WithField("err", err).Error("api.CreateQuoteRequest failed")
		return err
	}

	im.met.BumpSum("quoteRequest.count", 1)

	return nil
}
