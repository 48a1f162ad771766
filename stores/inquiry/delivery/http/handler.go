package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	bCtx "github.com/planhaus/storefront/base/ctx"
	"github.com/planhaus/storefront/base/delivery"
	"github.com/planhaus/storefront/domain/inquiry"
)

type handler struct {
	inquiry inquiry.Usecase
}

func New(e *echo.Echo, uc inquiry.Usecase) {
	h := &handler{uc}

	g := e.Group("/inquiries")

	g.POST("/contact-message", h.contactMessage)

	g.POST("/quote-request", h.quoteRequest)
}

func (h *handler) contactMessage(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	p := &inquiry.ContactMessage{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	if err := h.inquiry.SendContactMessage(ctx, p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusCreated, "ok")
}

func (h *handler) quoteRequest(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	p := &inquiry.QuoteRequest{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	if err := h.inquiry.SendQuoteRequest(ctx, p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusCreated, "ok")
}
