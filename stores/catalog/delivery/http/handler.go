package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	bCtx "github.com/planhaus/storefront/base/ctx"
	"github.com/planhaus/storefront/base/delivery"
	"github.com/planhaus/storefront/base/math"
	"github.com/planhaus/storefront/base/metrics"
	"github.com/planhaus/storefront/domain/listing"
	"github.com/planhaus/storefront/middleware"
	"github.com/planhaus/storefront/service/planapi"
)

var met metrics.Service

type handler struct {
	catalog listing.CatalogUsecase
	api     planapi.Client
}

func New(e *echo.Echo, catalog listing.CatalogUsecase, api planapi.Client) {
	met = metrics.New("catalog")

	h := &handler{catalog, api}

	g := e.Group("/catalog")

	g.GET("/house-plans", h.housePlans, middleware.CacheHttp(30*time.Second))

	g.GET("/house-plans/:id", h.detail, middleware.CacheHttp(1*time.Minute))

	g.GET("/built-homes", h.builtHomes, middleware.CacheHttp(30*time.Second))

	g.GET("/sections/:name", h.section, middleware.CacheHttp(1*time.Minute))

	e.GET("/site-settings", h.siteSettings, middleware.CacheHttp(5*time.Minute))
}

type pageParams struct {
	PriceMin     *string  `query:"priceMin"`
	PriceMax     *string  `query:"priceMax"`
	FloorAreaMin *float64 `query:"floorAreaMin"`
	FloorAreaMax *float64 `query:"floorAreaMax"`
	Bedrooms     []int    `query:"bedrooms"`
	Bathrooms    []int    `query:"bathrooms"`
	Garage       []int    `query:"garage"`
	Levels       []int    `query:"levels"`
	Styles       []string `query:"styles"`
	Search       string   `query:"search"`
	Sort         string   `query:"sort"`
	Page         int      `query:"page"`
	PageSize     int      `query:"pageSize"`
}

func (p *pageParams) toQuery() (listing.CatalogQuery, error) {
	q := listing.CatalogQuery{
		Filters: listing.FilterCriteria{
			FloorAreaMin: p.FloorAreaMin,
			FloorAreaMax: p.FloorAreaMax,
			Bedrooms:     p.Bedrooms,
			Bathrooms:    p.Bathrooms,
			Garage:       p.Garage,
			Levels:       p.Levels,
			Styles:       p.Styles,
		},
		Search:   p.Search,
		Sort:     listing.SortKey(p.Sort),
		Page:     p.Page,
		PageSize: p.PageSize,
	}
	if p.PriceMin != nil {
		min, err := decimal.NewFromString(*p.PriceMin)
		if err != nil {
			return q, err
		}
		q.Filters.PriceMin = &min
	}
	if p.PriceMax != nil {
		max, err := decimal.NewFromString(*p.PriceMax)
		if err != nil {
			return q, err
		}
		q.Filters.PriceMax = &max
	}
	return q, nil
}

func (h *handler) housePlans(c echo.Context) error {
	return h.page(c, listing.DatasetHousePlans)
}

func (h *handler) builtHomes(c echo.Context) error {
	return h.page(c, listing.DatasetBuiltHomes)
}

func (h *handler) page(c echo.Context, dataset listing.Dataset) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	p := &pageParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	q, err := p.toQuery()
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid price bound")
	}

	page, err := h.catalog.Page(ctx, dataset, q)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	// an out of range page request lands on the nearest valid page
	// instead of an empty one
	if page.TotalPages > 0 && q.Page != math.ClampInt(q.Page, 1, page.TotalPages) {
		q.Page = math.ClampInt(q.Page, 1, page.TotalPages)
		if page, err = h.catalog.Page(ctx, dataset, q); err != nil {
			return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
		}
	}

	met.BumpSum("page.count", 1, "dataset", string(dataset))

	return delivery.MakeJsonResp(c, http.StatusOK, page)
}

func (h *handler) detail(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid id")
	}

	l, err := h.catalog.FindOne(ctx, id)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, l)
}

func (h *handler) section(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	items, err := h.catalog.Section(ctx, listing.SectionName(c.Param("name")))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, items)
}

func (h *handler) siteSettings(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	settings, err := h.api.GetSiteSettings(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, settings)
}
