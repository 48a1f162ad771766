package planapi

import (
	"errors"
	"net/http"
	"strings"
	"time"

	bCtx "github.com/planhaus/storefront/base/ctx"
	"github.com/planhaus/storefront/domain"
	"github.com/planhaus/storefront/domain/listing"
)

var (
	ErrStatusCodeNotOk = errors.New("http.status not in 2xx")
)

// Client talks to the plans backend. Every storefront read and write goes
// through here; nothing else in the service issues upstream requests.
type Client interface {
	ListHousePlans(c bCtx.Ctx) ([]*listing.Listing, error)
	ListBuiltHomes(c bCtx.Ctx) ([]*listing.Listing, error)
	GetHousePlan(c bCtx.Ctx, id int64) (*listing.Listing, error)
	CreatePurchase(c bCtx.Ctx, req *CreatePurchaseRequest) (int64, error)
	// GetPublicKey returns the payment provider public key, cached for a
	// short period since it only changes on redeploys.
	GetPublicKey(c bCtx.Ctx) (string, error)
	ProcessPayment(c bCtx.Ctx, purchaseId int64, token string) error
	CreateContactMessage(c bCtx.Ctx, req *ContactMessageRequest) error
	CreateQuoteRequest(c bCtx.Ctx, req *QuoteRequestRequest) error
	GetSiteSettings(c bCtx.Ctx) (map[string]interface{}, error)
}

type ClientCfg struct {
	HttpClient http.Client
	Timeout    time.Duration
	Endpoints  Endpoints
}

// Endpoints enumerates every upstream path. Each one is independently
// overridable; empty entries resolve against BaseUrl with the default
// path, so a deployment can reroute a single endpoint without touching
// the rest.
type Endpoints struct {
	BaseUrl        string
	Plans          string
	PlanDetail     string // contains the :id token
	BuiltHomes     string
	Purchase       string
	PublicKey      string
	ProcessPayment string
	ContactMessage string
	QuoteRequest   string
	SiteSettings   string
}

const defaultBaseUrl = "http://localhost:8000"

// WithDefaults fills unset entries from BaseUrl plus the stock paths.
func (e Endpoints) WithDefaults() Endpoints {
	if e.BaseUrl == "" {
		e.BaseUrl = defaultBaseUrl
	}
	defaults := map[*string]string{
		&e.Plans:          "/api/house-plans/",
		&e.PlanDetail:     "/api/house-plans/:id/",
		&e.BuiltHomes:     "/api/built-homes/",
		&e.Purchase:       "/api/purchase/",
		&e.PublicKey:      "/api/yoco-public-key/",
		&e.ProcessPayment: "/api/process-payment/",
		&e.ContactMessage: "/api/contact-message/",
		&e.QuoteRequest:   "/api/quote-request/",
		&e.SiteSettings:   "/api/site-settings/",
	}
	for field, path := range defaults {
		if *field == "" {
			*field = e.BaseUrl + path
		}
	}
	return e
}

func (e Endpoints) planDetail(id string) string {
	return strings.Replace(e.PlanDetail, ":id", id, 1)
}

// CreatePurchaseRequest is the upstream purchase payload, field names
// fixed by the backend contract.
type CreatePurchaseRequest struct {
	HousePlanId int64  `json:"house_plan_id"`
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Province    string `json:"province"`
	City        string `json:"city"`
	PickUpPoint string `json:"pick_up_point"`
	AreaMall    string `json:"area_mall"`
}

type ContactMessageRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type QuoteRequestRequest struct {
	HousePlanId int64  `json:"house_plan_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Location    string `json:"location"`
	Message     string `json:"message"`
}

// UpstreamError carries the backend supplied message so callers can
// surface it verbatim. It matches domain.ErrUpstreamRejected in errors.Is.
type UpstreamError struct {
	Message string
}

func (e *UpstreamError) Error() string {
	return e.Message
}

func (e *UpstreamError) Unwrap() error {
	return domain.ErrUpstreamRejected
}
