package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/KamrujjamanRony/sura-tools-serverside/config"
	"github.com/KamrujjamanRony/sura-tools-serverside/internal/controller"
	paymentgateway "github.com/KamrujjamanRony/sura-tools-serverside/internal/infrastructure/payment-gateway"
	"github.com/KamrujjamanRony/sura-tools-serverside/internal/infrastructure/tracing"
	appmiddleware "github.com/KamrujjamanRony/sura-tools-serverside/internal/middleware"
	"github.com/KamrujjamanRony/sura-tools-serverside/internal/repository"
	"github.com/KamrujjamanRony/sura-tools-serverside/internal/service"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
)

type App struct {
	DB     *mongo.Database
	Config *config.Config
	Server *echo.Echo
}

func (app *App) Start() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	e := echo.New()

	defer setupTracing(e, app.Config.TracingConfig.CollectorHost, logger)()

	// Used empty string so that metrics are not prefixed with the service name
	e.Use(echoprometheus.NewMiddleware(""))

	go func() {
		metrics := echo.New()
		metrics.GET("/metrics", echoprometheus.NewHandler())
		if err := metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start metrics server")
		}
	}()

	e.Use(appmiddleware.Logger)

	// Defined but applied to no route, matching the behavior being
	// reproduced; see DESIGN.md.
	isLoggedIn := appmiddleware.Auth(app.Config.JWTSecret)

	repo := repository.CreateNewMongoDBRepository(app.DB)
	gateway := paymentgateway.CreateStripeGateway(app.Config)

	toolSvc := service.CreateToolService(repo)
	orderSvc := service.CreateOrderService(repo)
	userSvc := service.CreateUserService(repo, *app.Config)
	reviewSvc := service.CreateReviewService(repo)
	paymentSvc := service.CreatePaymentService(gateway)

	controller.CreateToolController(e, toolSvc, isLoggedIn)
	controller.CreateOrderController(e, orderSvc, isLoggedIn)
	controller.CreateUserController(e, userSvc, isLoggedIn)
	controller.CreateReviewController(e, reviewSvc)
	controller.CreatePaymentController(e, paymentSvc)

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Hello from the SuraTools server!")
	})

	app.Server = e

	if err := e.Start(fmt.Sprintf(":%s", app.Config.ServicePort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}

// setupTracing wires the span middleware and returns a shutdown func. When
// the exporter cannot be created the server still comes up untraced, so the
// returned func is always safe to call.
func setupTracing(e *echo.Echo, collectorHost string, logger zerolog.Logger) func() {
	traceProvider, err := tracing.InitTracing(collectorHost)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize tracing")
		return func() {}
	}

	tracer := traceProvider.Tracer("sura-tools-serverside")

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
			defer span.End()

			req := c.Request()
			c.SetRequest(req.WithContext(ctx))

			return next(c)
		}
	})

	return func() {
		if err := traceProvider.Shutdown(context.Background()); err != nil {
			logger.Error().Err(err).Msg("Failed to shutdown tracing")
		}
	}
}

func (app *App) StopServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return app.Server.Shutdown(ctx)
}
