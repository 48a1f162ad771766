package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/planhaus/storefront/base/ctx"
	"github.com/planhaus/storefront/service/cache/provider/primitive"
)

type payload struct {
	Name string `json:"name"`
	N    int    `json:"n"`
}

func TestGetByFunc(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	svc := New(ServiceConfig{
		Ttl:   time.Minute,
		Pfx:   "test",
		Cache: primitive.NewPrimitive("test", 1),
	})

	calls := 0
	getter := func() (interface{}, error) {
		calls++
		return &payload{Name: "a", N: 1}, nil
	}

	var got payload
	req.NoError(svc.GetByFunc(c, "k", &got, getter))
	req.Equal(payload{Name: "a", N: 1}, got)
	req.Equal(1, calls)

	// second read is a cache hit, getter is not consulted again
	var again payload
	req.NoError(svc.GetByFunc(c, "k", &again, getter))
	req.Equal(got, again)
	req.Equal(1, calls)
}

func TestSetGetDel(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	svc := New(ServiceConfig{
		Ttl:   time.Minute,
		Pfx:   "test",
		Cache: primitive.NewPrimitive("test", 1),
	})

	req.NoError(svc.Set(c, "k", &payload{Name: "b", N: 2}))
	var got payload
	req.NoError(svc.Get(c, "k", &got))
	req.Equal(payload{Name: "b", N: 2}, got)

	req.NoError(svc.Del(c, "k"))
	req.Equal(ErrNotFound, svc.Get(c, "k", &got))
}
