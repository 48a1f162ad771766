package repository

import (
	"sync"
	"time"

	"github.com/viney-shih/goroutines"

	"github.com/planhaus/storefront/base/backoff"
	"github.com/planhaus/storefront/base/ctx"
	"github.com/planhaus/storefront/base/goroutine"
	"github.com/planhaus/storefront/base/metrics"
	"github.com/planhaus/storefront/domain"
	"github.com/planhaus/storefront/domain/keys"
	"github.com/planhaus/storefront/domain/listing"
	"github.com/planhaus/storefront/service/cache"
	"github.com/planhaus/storefront/service/cache/provider/primitive"
	"github.com/planhaus/storefront/service/planapi"
)

const (
	snapshotTtl     = 5 * time.Minute
	refreshPoolSize = 4
)

type impl struct {
	api planapi.Client
	met metrics.Service

	snapshots cache.Service
	pool      *goroutines.Pool

	// lastGood is the static fallback served when the upstream is down
	// and the snapshot has expired
	mu       sync.RWMutex
	lastGood map[listing.Dataset][]*listing.Listing
}

// NewListingRepo builds a listing source over the plans backend with an
// in-process snapshot cache.
func NewListingRepo(api planapi.Client) listing.Repo {
	return &impl{
		api: api,
		met: metrics.New("catalogRepo"),
		snapshots: cache.New(cache.ServiceConfig{
			Ttl:   snapshotTtl,
			Pfx:   keys.PfxCatalog,
			Cache: primitive.NewPrimitive("catalog_snapshots", 8),
		}),
		pool:     goroutines.NewPool(refreshPoolSize),
		lastGood: map[listing.Dataset][]*listing.Listing{},
	}
}

func (im *impl) List(c ctx.Ctx, dataset listing.Dataset) ([]*listing.Listing, error) {
	snapshot := []*listing.Listing{}
	err := im.snapshots.GetByFunc(c, string(dataset), &snapshot, func() (interface{}, error) {
		fresh, err := im.fetch(c, dataset)
		if err != nil {
			return nil, err
		}
		return &fresh, nil
	})
	if err == nil {
		im.storeLastGood(dataset, snapshot)
		return snapshot, nil
	}

	c.WithField("err", err).WithField("dataset", dataset).Warn("falling back to last good snapshot")
	im.met.BumpSum("fallback.warn", 1, "dataset", string(dataset))

	im.mu.RLock()
	fallback, ok := im.lastGood[dataset]
	im.mu.RUnlock()
	if !ok {
		return nil, err
	}
	return fallback, nil
}

func (im *impl) FindOne(c ctx.Ctx, id int64) (*listing.Listing, error) {
	// serve from whichever snapshot already holds the record before
	// paying for an upstream round trip
	for _, dataset := range []listing.Dataset{listing.DatasetHousePlans, listing.DatasetBuiltHomes} {
		im.mu.RLock()
		snapshot := im.lastGood[dataset]
		im.mu.RUnlock()
		for _, l := range snapshot {
			if l.Id == id {
				return l, nil
			}
		}
	}

	l, err := im.api.GetHousePlan(c, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, domain.ErrNotFound
	}
	return l, nil
}

func (im *impl) fetch(c ctx.Ctx, dataset listing.Dataset) ([]*listing.Listing, error) {
	defer im.met.BumpTime("fetch.latency", "dataset", string(dataset)).End()

	switch dataset {
	case listing.DatasetBuiltHomes:
		return im.api.ListBuiltHomes(c)
	default:
		return im.api.ListHousePlans(c)
	}
}

func (im *impl) storeLastGood(dataset listing.Dataset, snapshot []*listing.Listing) {
	im.mu.Lock()
	im.lastGood[dataset] = snapshot
	im.mu.Unlock()
}

// StartRefresher keeps the snapshots warm so catalog pages rarely pay
// the upstream latency. It runs until c is cancelled, backing off
// exponentially while the upstream is unreachable.
func StartRefresher(c ctx.Ctx, repo listing.Repo, interval time.Duration) {
	im, ok := repo.(*impl)
	if !ok {
		return
	}
	if interval <= 0 {
		interval = snapshotTtl
	}

	goroutine.RecoverableGo(func() {
		wait := backoff.NewExponential(time.Second, interval)
		for {
			if err := im.refreshAll(c); err != nil {
				if err := wait.Backoff(c); err != nil {
					return
				}
				continue
			}
			wait.Reset()

			select {
			case <-c.Done():
				return
			case <-time.After(interval):
			}
		}
	})
}

func (im *impl) refreshAll(c ctx.Ctx) error {
	defer im.met.BumpTime("refresh.time").End()

	datasets := []listing.Dataset{listing.DatasetHousePlans, listing.DatasetBuiltHomes}
	errChan := make(chan error, len(datasets))
	for _, dataset := range datasets {
		dataset := dataset
		im.pool.Schedule(func() {
			fresh, err := im.fetch(c, dataset)
			if err != nil {
				errChan <- err
				return
			}
			if err := im.snapshots.Set(c, string(dataset), &fresh); err != nil {
				errChan <- err
				return
			}
			im.storeLastGood(dataset, fresh)
			errChan <- nil
		})
	}

	var firstErr error
	for range datasets {
		if err := <-errChan; err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if firstErr != nil {
		c.WithField("err", firstErr).Warn("refreshAll failed")
	}
	return firstErr
}
