package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/planhaus/storefront/base/ctx"
	"github.com/planhaus/storefront/base/log"
	bValidator "github.com/planhaus/storefront/base/validator"
	mmiddleware "github.com/planhaus/storefront/middleware"
	"github.com/planhaus/storefront/service/planapi"
	catalog_delivery "github.com/planhaus/storefront/stores/catalog/delivery/http"
	catalog_repository "github.com/planhaus/storefront/stores/catalog/repository"
	catalog_usecase "github.com/planhaus/storefront/stores/catalog/usecase"
	hc_delivery "github.com/planhaus/storefront/stores/healthcheck/delivery/http"
	hc_repo "github.com/planhaus/storefront/stores/healthcheck/repository"
	hc_usecase "github.com/planhaus/storefront/stores/healthcheck/usecase"
	inquiry_delivery "github.com/planhaus/storefront/stores/inquiry/delivery/http"
	inquiry_usecase "github.com/planhaus/storefront/stores/inquiry/usecase"
	purchase_delivery "github.com/planhaus/storefront/stores/purchase/delivery/http"
	purchase_repository "github.com/planhaus/storefront/stores/purchase/repository"
	purchase_usecase "github.com/planhaus/storefront/stores/purchase/usecase"
)

func init() {
	configPath := pflag.String("config", "infra/configs/config.yaml", "path to config file")
	pflag.Parse()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(*configPath)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	mmiddleware.SetupCache()

	// init plans backend client
	context.Info("init plans backend client")
	httpTimeout := viper.GetDuration("http.timeout")
	planApiClient := planapi.NewClient(&planapi.ClientCfg{
		HttpClient: http.Client{},
		Timeout:    httpTimeout,
		Endpoints: planapi.Endpoints{
			BaseUrl:        viper.GetString("upstream.baseUrl"),
			Plans:          viper.GetString("upstream.endpoints.plans"),
			PlanDetail:     viper.GetString("upstream.endpoints.planDetail"),
			BuiltHomes:     viper.GetString("upstream.endpoints.builtHomes"),
			Purchase:       viper.GetString("upstream.endpoints.purchase"),
			PublicKey:      viper.GetString("upstream.endpoints.publicKey"),
			ProcessPayment: viper.GetString("upstream.endpoints.processPayment"),
			ContactMessage: viper.GetString("upstream.endpoints.contactMessage"),
			QuoteRequest:   viper.GetString("upstream.endpoints.quoteRequest"),
			SiteSettings:   viper.GetString("upstream.endpoints.siteSettings"),
		},
	})

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(planApiClient)
	listingRepo := catalog_repository.NewListingRepo(planApiClient)
	attemptRepo := purchase_repository.NewAttemptRepo()

	healthCheck := hc_usecase.New(hcRepo)
	catalog := catalog_usecase.New(listingRepo)
	purchase := purchase_usecase.New(attemptRepo, listingRepo, planApiClient)
	inquiry := inquiry_usecase.New(planApiClient)

	hc_delivery.New(e, healthCheck)
	catalog_delivery.New(e, catalog, planApiClient)
	purchase_delivery.New(e, purchase)
	inquiry_delivery.New(e, inquiry)

	// keep catalog snapshots warm in the background
	refreshCtx, stopRefresh := ctx.WithCancel(context)
	catalog_repository.StartRefresher(refreshCtx, listingRepo, viper.GetDuration("catalog.refreshInterval"))

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	stopRefresh()
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
