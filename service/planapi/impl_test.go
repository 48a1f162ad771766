package planapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	bCtx "github.com/planhaus/storefront/base/ctx"
	"github.com/planhaus/storefront/domain"
)

func newTestClient(t *testing.T, handler http.Handler) (Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewClient(&ClientCfg{
		HttpClient: http.Client{},
		Timeout:    5 * time.Second,
		Endpoints:  Endpoints{BaseUrl: srv.URL},
	})
	return c, srv
}

func TestEndpointsWithDefaults(t *testing.T) {
	req := require.New(t)

	e := Endpoints{}.WithDefaults()
	req.Equal("http://localhost:8000/api/house-plans/", e.Plans)
	req.Equal("http://localhost:8000/api/built-homes/", e.BuiltHomes)
	req.Equal("http://localhost:8000/api/yoco-public-key/", e.PublicKey)
	req.Equal("http://localhost:8000/api/house-plans/7/", e.planDetail("7"))

	// single endpoint override leaves the rest on the base url
	e = Endpoints{BuiltHomes: "http://other:9000/v2/homes/"}.WithDefaults()
	req.Equal("http://other:9000/v2/homes/", e.BuiltHomes)
	req.Equal("http://localhost:8000/api/purchase/", e.Purchase)
}

func TestListBuiltHomesBareArray(t *testing.T) {
	req := require.New(t)
	cl, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req.Equal("/api/built-homes/", r.URL.Path)
		w.Write([]byte(`[{"id":1,"title":"A","price":"100.00"},{"id":2,"title":"B","price":250}]`))
	}))

	homes, err := cl.ListBuiltHomes(bCtx.Background())
	req.NoError(err)
	req.Len(homes, 2)
	req.Equal("A", homes[0].Title)
	req.Equal("100", homes[0].Price.String())
	req.Equal("250", homes[1].Price.String())
}

func TestListBuiltHomesResultsWrapper(t *testing.T) {
	req := require.New(t)
	cl, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[{"id":3,"title":"C","price":"1.50"}]}`))
	}))

	homes, err := cl.ListBuiltHomes(bCtx.Background())
	req.NoError(err)
	req.Len(homes, 1)
	req.Equal(int64(3), homes[0].Id)
}

func TestCreatePurchase(t *testing.T) {
	req := require.New(t)
	cl, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req.Equal(http.MethodPost, r.Method)
		req.Equal("/api/purchase/", r.URL.Path)
		body := map[string]interface{}{}
		req.NoError(json.NewDecoder(r.Body).Decode(&body))
		req.Equal(float64(9), body["house_plan_id"])
		req.Equal("Jane Doe", body["full_name"])
		w.Write([]byte(`{"success":true,"id":42}`))
	}))

	id, err := cl.CreatePurchase(bCtx.Background(), &CreatePurchaseRequest{
		HousePlanId: 9,
		FullName:    "Jane Doe",
		Email:       "jane@example.com",
		PhoneNumber: "0820000000",
	})
	req.NoError(err)
	req.Equal(int64(42), id)
}

func TestCreatePurchaseRejected(t *testing.T) {
	req := require.New(t)
	cl, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"success":false,"error":"Invalid phone"}`))
	}))

	_, err := cl.CreatePurchase(bCtx.Background(), &CreatePurchaseRequest{HousePlanId: 9})
	req.Error(err)
	// backend message surfaces verbatim
	req.Equal("Invalid phone", err.Error())
	req.True(errors.Is(err, domain.ErrUpstreamRejected))
}

func TestGetPublicKeyCached(t *testing.T) {
	req := require.New(t)
	calls := 0
	cl, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{"public_key":"pk_test_123"}`))
	}))

	c := bCtx.Background()
	key, err := cl.GetPublicKey(c)
	req.NoError(err)
	req.Equal("pk_test_123", key)

	key, err = cl.GetPublicKey(c)
	req.NoError(err)
	req.Equal("pk_test_123", key)
	req.Equal(1, calls)
}

func TestGetPublicKeyUnavailable(t *testing.T) {
	req := require.New(t)
	cl, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"public_key":""}`))
	}))

	_, err := cl.GetPublicKey(bCtx.Background())
	req.True(errors.Is(err, domain.ErrPaymentUnavailable))
}

func TestGetPublicKeyEmptyNotCached(t *testing.T) {
	req := require.New(t)
	key := ""
	cl, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req.NoError(json.NewEncoder(w).Encode(map[string]string{"public_key": key}))
	}))

	c := bCtx.Background()
	_, err := cl.GetPublicKey(c)
	req.True(errors.Is(err, domain.ErrPaymentUnavailable))

	// upstream recovers; the earlier miss must not stick for the cache ttl
	key = "pk_test_456"
	got, err := cl.GetPublicKey(c)
	req.NoError(err)
	req.Equal("pk_test_456", got)
}

func TestProcessPayment(t *testing.T) {
	req := require.New(t)
	cl, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := map[string]interface{}{}
		req.NoError(json.NewDecoder(r.Body).Decode(&body))
		req.Equal(float64(42), body["purchase_id"])
		req.Equal("tok_abc", body["token"])
		w.Write([]byte(`{"success":true}`))
	}))

	req.NoError(cl.ProcessPayment(bCtx.Background(), 42, "tok_abc"))
}

func TestProcessPaymentRejected(t *testing.T) {
	req := require.New(t)
	cl, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"error":"card declined"}`))
	}))

	err := cl.ProcessPayment(bCtx.Background(), 42, "tok_abc")
	req.Error(err)
	req.Equal("card declined", err.Error())
}

func TestGetHousePlanNotFound(t *testing.T) {
	req := require.New(t)
	cl, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := cl.GetHousePlan(bCtx.Background(), 99)
	req.True(errors.Is(err, domain.ErrNotFound))
}

func TestUnreachableBackend(t *testing.T) {
	req := require.New(t)
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	cl := NewClient(&ClientCfg{
		HttpClient: http.Client{},
		Timeout:    time.Second,
		Endpoints:  Endpoints{BaseUrl: url},
	})
	_, err := cl.ListHousePlans(bCtx.Background())
	req.True(errors.Is(err, domain.ErrUpstreamUnreachable))
}
