package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/padoca/padoca-api/internal/application/notification"
	"github.com/padoca/padoca-api/internal/application/usecase"
	"github.com/padoca/padoca-api/internal/infrastructure/memory"
	infrapdf "github.com/padoca/padoca-api/internal/infrastructure/pdf"
	"github.com/padoca/padoca-api/internal/infrastructure/seed"
	"github.com/padoca/padoca-api/internal/infrastructure/sms"
	"github.com/padoca/padoca-api/internal/metrics"
	httpRouter "github.com/padoca/padoca-api/internal/interfaces/http"
	"github.com/padoca/padoca-api/pkg/config"
	"github.com/padoca/padoca-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	// Estado inteiro em memória, carregado com os dados de demonstração.
	store := memory.New(seed.State())
	met := metrics.New()

	// Transporte de SMS: simulado em desenvolvimento, Twilio em produção.
	var transport notification.Transport
	switch cfg.SMS.Provider {
	case "twilio":
		transport = sms.NewTwilioClient(cfg.SMS.AccountSID, cfg.SMS.AuthToken, cfg.SMS.FromNumber)
		log.Info().Str("from", cfg.SMS.FromNumber).Msg("transporte de SMS: Twilio")
	default:
		transport = sms.NewSimulatedTransport(cfg.SMS.SimDelay)
		log.Info().Dur("delay", cfg.SMS.SimDelay).Msg("transporte de SMS: simulado")
	}

	dispatcher := notification.NewDispatcher(store, transport, notification.Config{
		Cooldown:      cfg.Notify.Cooldown,
		Timeout:       cfg.Notify.Timeout,
		MaxConcurrent: cfg.Notify.MaxConcurrent,
	}, log, met)

	customerUC := usecase.NewCustomerUseCase(store, met)
	productUC := usecase.NewProductUseCase(store)
	saleUC := usecase.NewSaleUseCase(store, log, met)
	expenseUC := usecase.NewExpenseUseCase(store)
	dashboardUC := usecase.NewDashboardUseCase(store)
	statementUC := usecase.NewStatementUseCase(store, infrapdf.NewMarotoStatementGenerator())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI em local: http://localhost:<port>/docs
	mountSwagger(app, log, "./docs/swagger.json")

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		CustomerUC:  customerUC,
		StatementUC: statementUC,
		ProductUC:   productUC,
		SaleUC:      saleUC,
		ExpenseUC:   expenseUC,
		DashboardUC: dashboardUC,
		Dispatcher:  dispatcher,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação parada")
}

// mountSwagger registra a UI do Swagger quando o arquivo de especificação
// existe. O middleware do contrib entra em pânico com o arquivo ausente, então
// sem ele o servidor sobe sem a UI, com um aviso no log.
func mountSwagger(app *fiber.App, log *logger.Logger, filePath string) {
	if _, err := os.Stat(filePath); err != nil {
		log.Warn().Str("file", filePath).Msg("swagger.json não encontrado; Swagger UI desabilitada")
		return
	}
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: filePath,
		Path:     "docs",
		Title:    "Padoca API",
	}))
}
