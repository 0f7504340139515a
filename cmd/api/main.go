package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/almacen-api/internal/application/auth"
	"github.com/tu-usuario/almacen-api/internal/application/inventory"
	"github.com/tu-usuario/almacen-api/internal/application/usecase"
	infrapdf "github.com/tu-usuario/almacen-api/internal/infrastructure/pdf"
	"github.com/tu-usuario/almacen-api/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/almacen-api/internal/interfaces/http"
	"github.com/tu-usuario/almacen-api/pkg/config"
	"github.com/tu-usuario/almacen-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.CreateSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("crear esquema")
	}
	if err := postgres.SeedAdmin(ctx, pool, config.LoadSeed()); err != nil {
		log.Fatal().Err(err).Msg("seed de usuario admin")
	}

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	detailRepo := postgres.NewDetailLogRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool, cfg.DB.LockTimeoutMS)

	recordMovementUC := inventory.NewRecordMovementUseCase(txRunner, productRepo)
	productUC := usecase.NewProductUseCase(productRepo, recordMovementUC)
	userUC := usecase.NewUserUseCase(userRepo)
	stockUC := usecase.NewStockUseCase(stockRepo)
	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	reportUC := usecase.NewReportUseCase(reportRepo, detailRepo, pdfGenerator)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
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

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Almacén API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		UserUC:         userUC,
		ProductUC:      productUC,
		RecordMovement: recordMovementUC,
		StockUC:        stockUC,
		ReportUC:       reportUC,
		JWTSecret:      cfg.JWT.Secret,
	})

	httpLog := log.WithComponent("http")
	go func() {
		httpLog.Info().Str("addr", cfg.HTTP.Addr()).Msg("servidor escuchando")
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			httpLog.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
