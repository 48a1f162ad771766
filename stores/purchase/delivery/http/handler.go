package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	bCtx "github.com/planhaus/storefront/base/ctx"
	"github.com/planhaus/storefront/base/delivery"
	"github.com/planhaus/storefront/domain/purchase"
)

type handler struct {
	purchase purchase.Usecase
}

func New(e *echo.Echo, uc purchase.Usecase) {
	h := &handler{uc}

	g := e.Group("/purchase-flows")

	g.POST("", h.begin)

	g.GET("/:id", h.get)

	g.POST("/:id/submit", h.submit)

	g.POST("/:id/payment", h.payment)

	g.POST("/:id/cancel", h.cancel)
}

type beginParams struct {
	ListingId int64 `json:"listingId" validate:"required"`
}

func (h *handler) begin(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	p := &beginParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	attempt, err := h.purchase.Begin(ctx, p.ListingId)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusCreated, attempt)
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	attempt, err := h.purchase.Get(ctx, c.Param("id"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, attempt)
}

func (h *handler) submit(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	p := &purchase.ContactInfo{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	params, err := h.purchase.Submit(ctx, c.Param("id"), *p)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, params)
}

func (h *handler) payment(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	p := &purchase.WidgetResult{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if p.Error == nil && p.Id == "" {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "widget result needs an error or a token id")
	}

	receipt, err := h.purchase.CompletePayment(ctx, c.Param("id"), *p)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, receipt)
}

func (h *handler) cancel(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	if err := h.purchase.Cancel(ctx, c.Param("id")); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}
