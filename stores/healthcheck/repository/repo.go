package repository

import (
	"time"

	"github.com/planhaus/storefront/base/ctx"
	hcdomain "github.com/planhaus/storefront/domain/healthcheck"
	"github.com/planhaus/storefront/service/planapi"
)

type impl struct {
	api planapi.Client
}

// New creates new healthCheckRepo object representation of HealthCheckRepo interface
func New(api planapi.Client) hcdomain.HealthCheckRepo {
	return &impl{
		api: api,
	}
}

func (im *impl) PingUpstream(context ctx.Ctx) error {
	ctx, cancel := ctx.WithTimeout(context, 2*time.Second)
	defer cancel()
	if _, err := im.api.GetSiteSettings(ctx); err != nil {
		context.WithField("err", err).Error("ping plans backend error")
		return err
	}
	return nil
}
