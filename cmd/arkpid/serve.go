package main

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/arkforge/arkpid/internal/config"
	"github.com/arkforge/arkpid/internal/infra/database"
	"github.com/arkforge/arkpid/internal/infra/repository"
	"github.com/arkforge/arkpid/internal/present/rest"
	restmw "github.com/arkforge/arkpid/internal/present/rest/middleware"
	"github.com/arkforge/arkpid/internal/service"
	"github.com/arkforge/arkpid/internal/usecase"
)

func buildServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the resolver/minter HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	conf, err := config.Load(configPath)
	if err != nil {
		return err
	}

	db, err := database.NewPostgres(conf.Server.PostgresDsn)
	if err != nil {
		return err
	}
	if err := database.MigratePostgres(db); err != nil {
		return err
	}

	var cache usecase.TargetCache
	if conf.Server.RedisAddr != "" {
		rdb := database.NewRedis(conf.Server.RedisAddr, conf.Server.RedisPassword, conf.Server.RedisDB)
		cache = service.NewTargetCache(rdb, time.Duration(conf.Resolver.CacheTTLSeconds)*time.Second)
	}

	authorityRepo := repository.NewAuthorityRepository(db)
	shoulderRepo := repository.NewShoulderRepository(db)
	mappingRepo := repository.NewMappingRepository(db)

	globalResolver := conf.Resolver.GlobalResolver
	if conf.Resolver.DisableGlobalFallback {
		globalResolver = ""
	}

	minter := usecase.NewMinter(authorityRepo, shoulderRepo, mappingRepo, cache, conf.Mint.DefaultTemplate)
	resolver := usecase.NewResolver(shoulderRepo, mappingRepo, cache, globalResolver)
	auditor := usecase.NewAuditor(shoulderRepo, mappingRepo, conf.Mint.DefaultTemplate)

	handler := rest.NewHandler(minter, resolver, auditor)
	admin := restmw.NewAdminAuthMiddleware(conf.Admin.Token)

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	if conf.Server.EnableTrace {
		shutdown, err := setupTracing(ctx, conf.Server.TraceEndpoint)
		if err != nil {
			return err
		}
		defer shutdown(context.Background())
		e.Use(otelecho.Middleware("arkpid"))
	}

	handler.RegisterRoutes(e, admin)

	e.Logger.Fatal(e.Start(conf.Server.Listen))
	return nil
}

func setupTracing(ctx context.Context, endpoint string) (func(context.Context) error, error) {
	opts := []otlptracehttp.Option{}
	if endpoint != "" {
		opts = append(opts, otlptracehttp.WithEndpoint(endpoint))
	}

	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, err
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(sdkresource.NewSchemaless(
			semconv.ServiceName("arkpid"),
		)),
	)
	otel.SetTracerProvider(provider)

	return provider.Shutdown, nil
}
