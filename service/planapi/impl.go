package planapi

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/xerrors"

	bCtx "github.com/planhaus/storefront/base/ctx"
	"github.com/planhaus/storefront/base/log"
	"github.com/planhaus/storefront/base/metrics"
	"github.com/planhaus/storefront/domain"
	"github.com/planhaus/storefront/domain/keys"
	"github.com/planhaus/storefront/domain/listing"
	"github.com/planhaus/storefront/service/cache"
	"github.com/planhaus/storefront/service/cache/provider/primitive"
)

const publicKeyCacheTtl = time.Hour

func NewClient(cfg *ClientCfg) Client {
	return &client{
		client:    cfg.HttpClient,
		timeout:   cfg.Timeout,
		endpoints: cfg.Endpoints.WithDefaults(),
		met:       metrics.New("planapi"),
		cache: cache.New(cache.ServiceConfig{
			Ttl:   publicKeyCacheTtl,
			Pfx:   keys.PfxPlanApi,
			Cache: primitive.NewPrimitive("planapi_cache", 1),
		}),
	}
}

type client struct {
	client    http.Client
	timeout   time.Duration
	endpoints Endpoints
	cache     cache.Service
	met       metrics.Service
}

// successEnvelope is the backend's write-endpoint response shape.
type successEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Id      int64  `json:"id"`
}

func (s *successEnvelope) err() error {
	if s.Success {
		return nil
	}
	if s.Error == "" {
		return &UpstreamError{Message: domain.ErrUpstreamRejected.Error()}
	}
	return &UpstreamError{Message: s.Error}
}

func (cl *client) ListHousePlans(c bCtx.Ctx) ([]*listing.Listing, error) {
	return cl.fetchListings(c, cl.endpoints.Plans)
}

func (cl *client) ListBuiltHomes(c bCtx.Ctx) ([]*listing.Listing, error) {
	return cl.fetchListings(c, cl.endpoints.BuiltHomes)
}

// fetchListings accepts both a bare array and a {results: [...]} wrapper.
func (cl *client) fetchListings(c bCtx.Ctx, url string) ([]*listing.Listing, error) {
	data, err := cl.get(c, url)
	if err != nil {
		c.WithFields(log.Fields{"url": url, "err": err}).Error("fetchListings get failed")
		return nil, err
	}

	raws := []*listing.RawListing{}
	if err := json.Unmarshal(data, &raws); err != nil {
		wrapped := struct {
			Results []*listing.RawListing `json:"results"`
		}{}
		if err := json.Unmarshal(data, &wrapped); err != nil {
			c.WithField("err", err).Error("json.Unmarshal failed")
			return nil, err
		}
		raws = wrapped.Results
	}

	return listing.FromRawList(raws), nil
}

func (cl *client) GetHousePlan(c bCtx.Ctx, id int64) (*listing.Listing, error) {
	url := cl.endpoints.planDetail(strconv.FormatInt(id, 10))
	data, err := cl.get(c, url)
	if err != nil {
		c.WithFields(log.Fields{"url": url, "err": err}).Error("GetHousePlan get failed")
		return nil, err
	}

	raw := &listing.RawListing{}
	if err := json.Unmarshal(data, raw); err != nil {
		c.WithField("err", err).Error("json.Unmarshal failed")
		return nil, err
	}
	return listing.FromRaw(raw), nil
}

func (cl *client) CreatePurchase(c bCtx.Ctx, req *CreatePurchaseRequest) (int64, error) {
	resp := &successEnvelope{}
	if err := cl.postJson(c, cl.endpoints.Purchase, req, resp); err != nil {
		return 0, err
	}
	if err := resp.err(); err != nil {
		c.WithField("err", err).Error("CreatePurchase rejected")
		return 0, err
	}
	return resp.Id, nil
}

func (cl *client) GetPublicKey(c bCtx.Ctx) (string, error) {
	var key string
	err := cl.cache.GetByFunc(c, "publicKey", &key, func() (interface{}, error) {
		data, err := cl.get(c, cl.endpoints.PublicKey)
		if err != nil {
			return nil, err
		}
		resp := struct {
			PublicKey string `json:"public_key"`
		}{}
		if err := json.Unmarshal(data, &resp); err != nil {
			return nil, err
		}
		// an empty key must not enter the cache, the next call probes again
		if resp.PublicKey == "" {
			return nil, domain.ErrPaymentUnavailable
		}
		return &resp.PublicKey, nil
	})
	if err != nil {
		c.WithField("err", err).Error("GetPublicKey failed")
		return "", xerrors.Errorf("get public key: %w", domain.ErrPaymentUnavailable)
	}
	return key, nil
}

func (cl *client) ProcessPayment(c bCtx.Ctx, purchaseId int64, token string) error {
	payload := struct {
		PurchaseId int64  `json:"purchase_id"`
		Token      string `json:"token"`
	}{purchaseId, token}

	resp := &successEnvelope{}
	if err := cl.postJson(c, cl.endpoints.ProcessPayment, &payload, resp); err != nil {
		return err
	}
	if err := resp.err(); err != nil {
		c.WithFields(log.Fields{"purchaseId": purchaseId, "err": err}).Error("ProcessPayment rejected")
		return err
	}
	return nil
}

func (cl *client) CreateContactMessage(c bCtx.Ctx, req *ContactMessageRequest) error {
	resp := &successEnvelope{}
	if err := cl.postJson(c, cl.endpoints.ContactMessage, req, resp); err != nil {
		return err
	}
	return resp.err()
}

func (cl *client) CreateQuoteRequest(c bCtx.Ctx, req *QuoteRequestRequest) error {
	resp := &successEnvelope{}
	if err := cl.postJson(c, cl.endpoints.QuoteRequest, req, resp); err != nil {
		return err
	}
	return resp.err()
}

func (cl *client) GetSiteSettings(c bCtx.Ctx) (map[string]interface{}, error) {
	data, err := cl.get(c, cl.endpoints.SiteSettings)
	if err != nil {
		return nil, err
	}
	settings := map[string]interface{}{}
	if err := json.Unmarshal(data, &settings); err != nil {
		c.WithField("err", err).Error("json.Unmarshal failed")
		return nil, err
	}
	return settings, nil
}

func (cl *client) get(c bCtx.Ctx, url string) ([]byte, error) {
	defer cl.met.BumpTime("get.latency").End()

	ctx, cancel := bCtx.WithTimeout(c, cl.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	return cl.do(c, req)
}

func (cl *client) postJson(c bCtx.Ctx, url string, payload interface{}, container interface{}) error {
	defer cl.met.BumpTime("post.latency").End()

	body, err := json.Marshal(payload)
	if err != nil {
		c.WithField("err", err).Error("json.Marshal failed")
		return err
	}

	ctx, cancel := bCtx.WithTimeout(c, cl.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	data, err := cl.do(c, req)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, container); err != nil {
		c.WithField("err", err).Error("json.Unmarshal failed")
		return err
	}
	return nil
}

func (cl *client) do(c bCtx.Ctx, req *http.Request) ([]byte, error) {
	resp, err := cl.client.Do(req)
	if err != nil {
		cl.met.BumpSum("request.err", 1)
		c.WithFields(log.Fields{"url": req.URL.String(), "err": err}).Error("client.Do failed")
		return nil, xerrors.Errorf("%v: %w", err, domain.ErrUpstreamUnreachable)
	}
	defer resp.Body.Close()

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		c.WithFields(log.Fields{"url": req.URL.String(), "err": err}).Error("failed to read body")
		return nil, err
	}

	// write endpoints report rejection with 4xx plus a success:false body;
	// let the caller decode the envelope in that case
	if resp.StatusCode >= http.StatusInternalServerError {
		cl.met.BumpSum("request.err", 1, "status", strconv.Itoa(resp.StatusCode))
		c.WithFields(log.Fields{"url": req.URL.String(), "statusCode": resp.StatusCode}).Error("resp.StatusCode not ok")
		return nil, ErrStatusCodeNotOk
	}
	if resp.StatusCode >= http.StatusMultipleChoices && req.Method == http.MethodGet {
		c.WithFields(log.Fields{"url": req.URL.String(), "statusCode": resp.StatusCode}).Error("resp.StatusCode not ok")
		if resp.StatusCode == http.StatusNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, ErrStatusCodeNotOk
	}

	return body, nil
}
