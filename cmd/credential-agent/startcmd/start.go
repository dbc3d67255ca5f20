/*
Copyright Velocity Network Foundation. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/alexliesenfeld/health"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	"github.com/trustbloc/logutil-go/pkg/log"
	"go.opentelemetry.io/otel"

	"github.com/velocitynetwork/credential-agent/cmd/common"
	"github.com/velocitynetwork/credential-agent/internal/logfields"
	"github.com/velocitynetwork/credential-agent/pkg/observability/health/healthchecks"
	"github.com/velocitynetwork/credential-agent/pkg/observability/health/healthutil"
	"github.com/velocitynetwork/credential-agent/pkg/observability/metrics"
	"github.com/velocitynetwork/credential-agent/pkg/observability/metrics/noop"
	prometheusmetrics "github.com/velocitynetwork/credential-agent/pkg/observability/metrics/prometheus"
	"github.com/velocitynetwork/credential-agent/pkg/restapi/resterr"
	"github.com/velocitynetwork/credential-agent/pkg/restapi/v1/healthcheck"
	"github.com/velocitynetwork/credential-agent/pkg/restapi/v1/holder"
	"github.com/velocitynetwork/credential-agent/pkg/restapi/v1/mw"
	"github.com/velocitynetwork/credential-agent/pkg/restapi/v1/operator"
	"github.com/velocitynetwork/credential-agent/pkg/service/credentialcheck"
	"github.com/velocitynetwork/credential-agent/pkg/service/exchange"
	"github.com/velocitynetwork/credential-agent/pkg/service/identitymatcher"
	"github.com/velocitynetwork/credential-agent/pkg/service/presentation"
	"github.com/velocitynetwork/credential-agent/pkg/service/push"
	"github.com/velocitynetwork/credential-agent/pkg/service/vendorwebhook"
	"github.com/velocitynetwork/credential-agent/pkg/storage/mongodb"
	"github.com/velocitynetwork/credential-agent/pkg/storage/mongodb/disclosurestore"
	"github.com/velocitynetwork/credential-agent/pkg/storage/mongodb/exchangestore"
	"github.com/velocitynetwork/credential-agent/pkg/storage/mongodb/feedstore"
	"github.com/velocitynetwork/credential-agent/pkg/storage/mongodb/vendoruserstore"
	"github.com/velocitynetwork/credential-agent/pkg/storage/redis"
	"github.com/velocitynetwork/credential-agent/pkg/storage/redis/noncestore"
	"github.com/velocitynetwork/credential-agent/pkg/tenant"
)

var logger = log.New("credential-agent-startcmd")

const (
	healthCheckEndpoint = "/healthcheck"

	defaultHTTPTimeout      = 30 * time.Second
	defaultShutdownTimeout  = 10 * time.Second
	healthCheckCacheTimeout = 2 * time.Second
)

// GetStartCmd returns the Cobra start command.
func GetStartCmd() *cobra.Command {
	startCmd := createStartCmd()

	createFlags(startCmd)

	return startCmd
}

func createStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start credential-agent",
		Long:  "Start the Velocity Network credential agent REST server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			params, err := getParameters(cmd)
			if err != nil {
				return err
			}

			return runStartCmd(cmd.Context(), params)
		},
	}
}

func runStartCmd(ctx context.Context, params *agentParameters) error { //nolint:funlen
	common.SetDefaultLogLevel(logger, params.logLevel)

	mongoClient, err := mongodb.New(params.mongoDBURL, params.databaseName)
	if err != nil {
		return fmt.Errorf("connect to mongodb: %w", err)
	}

	defer func() {
		if closeErr := mongoClient.Close(); closeErr != nil {
			logger.Warn("Failed to close mongodb client", log.WithError(closeErr))
		}
	}()

	redisOpts := []redis.Opt{redis.WithTraceProvider(otel.GetTracerProvider())}
	if params.redisPassword != "" {
		redisOpts = append(redisOpts, redis.WithPassword(params.redisPassword))
	}

	redisClient, err := redis.New(params.redisURLs, redisOpts...)
	if err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}

	defer func() {
		if closeErr := redisClient.Close(); closeErr != nil {
			logger.Warn("Failed to close redis client", log.WithError(closeErr))
		}
	}()

	tenantRegistry, err := tenant.NewRegistry(params.tenantsFilePath)
	if err != nil {
		return fmt.Errorf("load tenants: %w", err)
	}

	exchangeStore := exchangestore.New(mongoClient)
	disclosureStore := disclosurestore.New(mongoClient)
	vendorUserStore := vendoruserstore.New(mongoClient)
	feedStore := feedstore.New(mongoClient)
	nonceStore := noncestore.New(redisClient)

	indexCtx, cancelIndex := mongoClient.ContextWithTimeout()
	defer cancelIndex()

	if err = vendorUserStore.EnsureIndexes(indexCtx); err != nil {
		return fmt.Errorf("ensure vendor user indexes: %w", err)
	}

	metricsProvider, err := createMetricsProvider(params)
	if err != nil {
		return err
	}

	defer metricsProvider.Destroy() //nolint: errcheck

	presentationService, err := presentation.New(&presentation.Config{
		EnablePresentationContextValidation: true,
		EnableDeactivatedDisclosure:         true,
	})
	if err != nil {
		return fmt.Errorf("create presentation validator: %w", err)
	}

	httpClient := &http.Client{Timeout: defaultHTTPTimeout}

	exchangeService := exchange.New(&exchange.Config{
		ExchangeStore:         exchangeStore,
		DisclosureStore:       disclosureStore,
		VendorUserStore:       vendorUserStore,
		FeedStore:             feedStore,
		NonceStore:            nonceStore,
		TenantRegistry:        tenantRegistry,
		PresentationValidator: presentationService,
		CredentialChecker: credentialcheck.New(&credentialcheck.Config{
			Verifier: credentialcheck.NewRemoteVerifier(&credentialcheck.RemoteVerifierConfig{
				HTTPClient: httpClient,
				VerifyURL:  params.credentialCheckURL,
			}),
			AutoIdentityCheck: params.autoIdentityCheck,
		}),
		IdentityMatcher: identitymatcher.New(),
		Webhook: vendorwebhook.New(&vendorwebhook.Config{
			HTTPClient:           httpClient,
			DefaultVendorBaseURL: params.defaultVendorBaseURL,
			RequestTimeout:       defaultHTTPTimeout,
		}),
		Push: push.New(&push.Config{
			HTTPClient: httpClient,
		}),
		Metrics:  metricsProvider.Metrics(),
		NonceTTL: params.nonceTTL,
	})

	e := buildEcho(params, exchangeService, nonceStore, disclosureStore)

	internalEcho := echo.New()
	internalEcho.HideBanner = true

	ready := newReadinessController(internalEcho)

	if params.metricsProviderName == metricsProviderPrometheus {
		promHandler := prometheusmetrics.NewHandler()
		internalEcho.GET(promHandler.Path(), echo.WrapHandler(promHandler.Handler()))
	}

	internalAddr, err := internalHostAddr(params)
	if err != nil {
		return err
	}

	return serve(ctx, e, internalEcho, ready, params.hostURL, internalAddr)
}

func buildEcho(
	params *agentParameters,
	exchangeService *exchange.Service,
	nonceStore *noncestore.Store,
	disclosureStore *disclosurestore.Store,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = resterr.HTTPErrorHandler

	e.Use(echomw.Recover())

	healthcheckController := &healthcheck.Controller{}
	e.GET(healthCheckEndpoint, healthcheckController.GetHealthcheck)
	e.GET("/health", newHealthHandler(params))

	holderController := holder.NewController(&holder.Config{
		ExchangeService: exchangeService,
		NonceResolver:   nonceStore,
	})

	e.POST("/oidc/holder/inspect/submit-presentation", holderController.SubmitPresentation)
	e.POST("/oidc/holder/issue/submit-identification", holderController.SubmitIdentification)

	operatorController := operator.NewController(&operator.Config{
		ExchangeService: exchangeService,
		DisclosureStore: disclosureStore,
	})

	operatorGroup := e.Group("/operator", mw.APIKeyAuth(params.apiKey))
	operatorGroup.POST("/tenants/:tenantID/exchanges", operatorController.CreateExchange)
	operatorGroup.GET("/tenants/:tenantID/exchanges/:exchangeID", operatorController.GetExchange)
	operatorGroup.PUT("/tenants/:tenantID/disclosures/:disclosureID", operatorController.PutDisclosure)
	operatorGroup.GET("/tenants/:tenantID/disclosures/:disclosureID", operatorController.GetDisclosure)
	operatorGroup.GET("/tenants/:tenantID/disclosures", operatorController.ListDisclosures)

	return e
}

func newHealthHandler(params *agentParameters) echo.HandlerFunc {
	responseTimes := healthutil.NewResponseTimes()

	opts := []health.CheckerOption{
		health.WithCacheDuration(healthCheckCacheTimeout),
		health.WithTimeout(defaultHTTPTimeout),
		health.WithInterceptors(responseTimes.Interceptor()),
	}

	for _, check := range healthchecks.Get(&healthchecks.Config{
		MongoDBURL: params.mongoDBURL,
		RedisAddrs: params.redisURLs,
		RedisPass:  params.redisPassword,
	}) {
		opts = append(opts, health.WithCheck(check))
	}

	return echo.WrapHandler(health.NewHandler(health.NewChecker(opts...),
		health.WithResultWriter(responseTimes.ResultWriter())))
}

func createMetricsProvider(params *agentParameters) (metrics.Provider, error) {
	switch params.metricsProviderName {
	case "":
		return noop.NewMetricsProvider(), nil
	case metricsProviderPrometheus:
		return prometheusmetrics.NewPrometheusProvider(nil), nil
	default:
		return nil, fmt.Errorf("unsupported metrics provider: %s", params.metricsProviderName)
	}
}

func internalHostAddr(params *agentParameters) (string, error) {
	if params.internalHostURL != "" {
		return params.internalHostURL, nil
	}

	host, port, err := net.SplitHostPort(params.hostURL)
	if err != nil {
		return "", fmt.Errorf("parse host url: %w", err)
	}

	portNum, err := strconv.Atoi(port)
	if err != nil {
		return "", fmt.Errorf("parse host url port: %w", err)
	}

	return net.JoinHostPort(host, strconv.Itoa(portNum+1)), nil
}

func serve(
	ctx context.Context,
	e, internalEcho *echo.Echo,
	ready *readiness,
	addr, internalAddr string,
) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 2) //nolint:mnd

	go func() {
		if err := internalEcho.Start(internalAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("start internal server: %w", err)
		}
	}()

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("start server: %w", err)
		}
	}()

	ready.Ready(true)

	logger.Info("credential-agent started", logfields.WithAddress(addr))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	ready.Ready(false)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Warn("Failed to shut down server", log.WithError(err))
	}

	if err := internalEcho.Shutdown(shutdownCtx); err != nil {
		logger.Warn("Failed to shut down internal server", log.WithError(err))
	}

	return nil
}
