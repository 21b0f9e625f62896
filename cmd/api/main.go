package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	zlog "github.com/rs/zerolog/log"

	_ "github.com/jhoicas/calculadora-promedio/docs"
	"github.com/jhoicas/calculadora-promedio/internal/application/auth"
	"github.com/jhoicas/calculadora-promedio/internal/application/calculator"
	"github.com/jhoicas/calculadora-promedio/internal/application/usecase"
	"github.com/jhoicas/calculadora-promedio/internal/domain/theme"
	"github.com/jhoicas/calculadora-promedio/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/calculadora-promedio/internal/infrastructure/pdf"
	"github.com/jhoicas/calculadora-promedio/internal/infrastructure/storage"
	"github.com/jhoicas/calculadora-promedio/internal/infrastructure/xmlexport"
	httpRouter "github.com/jhoicas/calculadora-promedio/internal/interfaces/http"
	"github.com/jhoicas/calculadora-promedio/internal/interfaces/live"
	"github.com/jhoicas/calculadora-promedio/pkg/config"
	"github.com/jhoicas/calculadora-promedio/pkg/logger"
)

// @title Calculadora de Promedio API
// @version 1.0
// @description Cálculo del precio promedio al ampliar una posición, captura decimal y reportes.
// @BasePath /
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	settings := calculator.NewSettingsStore(calculator.DefaultSettings())

	// La recarga usa el logger global de zerolog, que logger.New redirige.
	cfg, err := config.Watch(func(next *config.Config, e fsnotify.Event) {
		settings.Set(calculator.FromConfig(next.Calc))
		logger.SetLevel(next.Log.Level)
		zlog.Info().Str("file", e.Name).Str("input_mode", next.Calc.InputMode).Msg("configuración recargada")
	})
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	settings.Set(calculator.FromConfig(cfg.Calc))

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	repos, err := storage.Open(ctx, cfg.Storage, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Storage.Driver).Msg("abrir almacenamiento")
	}
	defer repos.Close()

	reg := metrics.New(metrics.DefaultConfig())

	calculationUC := usecase.NewCalculationUseCase(
		repos.Calculations, settings,
		infrapdf.NewMarotoReportGenerator(theme.ModeLight),
		xmlexport.New(2),
		reg,
	)
	inputUC := usecase.NewInputUseCase(settings, reg)
	authUC := auth.NewAuthUseCase(repos.Users, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.MetricsMiddleware(reg))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: cfg.HTTP.SwaggerPath,
		Path:     "docs",
		Title:    "Calculadora de Promedio API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "storage": repos.Driver})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CalculationUC: calculationUC,
		InputUC:       inputUC,
		AuthUC:        authUC,
		UserUC:        usecase.NewUserUseCase(repos.Users),
		JWTSecret:     cfg.JWT.Secret,
	})

	// Sesiones en vivo y /metrics en un listener aparte
	liveSrv := live.NewServer(settings, reg, log.Component("live"))
	liveSrv.AllowedOrigins = cfg.Live.AllowedOrigins
	liveHTTP := &http.Server{
		Addr:              cfg.Live.Addr(),
		Handler:           liveSrv.Mux(reg.Handler()),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()
	go func() {
		log.Info().Str("addr", liveHTTP.Addr).Msg("servidor en vivo escuchando")
		if err := liveHTTP.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("servidor en vivo finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidores...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor HTTP")
	}
	liveSrv.Close()
	if err := liveHTTP.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor en vivo")
	}

	log.Info().Msg("aplicación detenida")
}
