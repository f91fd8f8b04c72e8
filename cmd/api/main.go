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

	"github.com/autotech/taller-api/internal/application/analytics"
	"github.com/autotech/taller-api/internal/application/billing"
	"github.com/autotech/taller-api/internal/application/usecase"
	"github.com/autotech/taller-api/internal/application/workshop"
	infraexcel "github.com/autotech/taller-api/internal/infrastructure/excel"
	infrapdf "github.com/autotech/taller-api/internal/infrastructure/pdf"
	"github.com/autotech/taller-api/internal/infrastructure/postgres"
	httpRouter "github.com/autotech/taller-api/internal/interfaces/http"
	"github.com/autotech/taller-api/pkg/config"
	"github.com/autotech/taller-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if cfg.DB.Migrate {
		if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
			log.Fatal().Err(err).Msg("migraciones de base de datos")
		}
		log.Info().Msg("esquema de base de datos al día")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	clientRepo := postgres.NewClientRepository(pool)
	vehicleRepo := postgres.NewVehicleRepository(pool)
	brandRepo := postgres.NewBrandRepository(pool)
	vehicleTypeRepo := postgres.NewVehicleTypeRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	roleRepo := postgres.NewRoleRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	serviceRepo := postgres.NewCatalogServiceRepository(pool)
	cannedJobRepo := postgres.NewCannedJobRepository(pool)
	tagRepo := postgres.NewTagRepository(pool)
	repairOrderRepo := postgres.NewRepairOrderRepository(pool)
	appointmentRepo := postgres.NewAppointmentRepository(pool)
	calendarConfigRepo := postgres.NewCalendarConfigRepository(pool)
	inspectionRepo := postgres.NewInspectionRepository(pool)
	templateRepo := postgres.NewInspectionTemplateRepository(pool)
	problemRepo := postgres.NewCommonProblemRepository(pool)
	estimateRepo := postgres.NewEstimateRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	auditRepo := postgres.NewPaymentAuditRepository(pool)
	bankAccountRepo := postgres.NewBankAccountRepository(pool)
	bankRepo := postgres.NewBankRepository(pool)
	dashboardConfigRepo := postgres.NewDashboardConfigRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	clientUC := usecase.NewClientUseCase(clientRepo)
	vehicleUC := usecase.NewVehicleUseCase(vehicleRepo, clientRepo, brandRepo, vehicleTypeRepo, repairOrderRepo)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo, roleRepo)
	catalogUC := usecase.NewCatalogUseCase(productRepo, serviceRepo, cannedJobRepo, tagRepo)
	repairOrderUC := workshop.NewRepairOrderUseCase(repairOrderRepo, clientRepo, vehicleRepo, employeeRepo, tagRepo)
	appointmentUC := workshop.NewAppointmentUseCase(appointmentRepo, clientRepo, vehicleRepo, calendarConfigRepo)
	inspectionUC := workshop.NewInspectionUseCase(inspectionRepo, templateRepo, repairOrderRepo, problemRepo)
	estimateUC := billing.NewEstimateUseCase(estimateRepo, clientRepo, vehicleRepo, repairOrderRepo, inspectionRepo)

	// PDF: comprobante imprimible de la factura
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Name)
	invoiceUC := billing.NewInvoiceUseCase(invoiceRepo, estimateRepo, clientRepo, pdfGenerator)
	paymentUC := billing.NewPaymentUseCase(txRunner, paymentRepo, invoiceRepo, auditRepo, bankAccountRepo)
	bankAccountUC := billing.NewBankAccountUseCase(bankAccountRepo, bankRepo)

	dashboardUC := analytics.NewDashboardUseCase(
		repairOrderRepo, estimateRepo, invoiceRepo, paymentRepo,
		clientRepo, appointmentRepo, employeeRepo, dashboardConfigRepo,
	)
	exportUC := analytics.NewExportUseCase(dashboardUC, clientRepo, employeeRepo, infraexcel.NewExporter())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Taller API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ClientUC:      clientUC,
		VehicleUC:     vehicleUC,
		EmployeeUC:    employeeUC,
		CatalogUC:     catalogUC,
		RepairOrderUC: repairOrderUC,
		AppointmentUC: appointmentUC,
		InspectionUC:  inspectionUC,
		EstimateUC:    estimateUC,
		InvoiceUC:     invoiceUC,
		PaymentUC:     paymentUC,
		BankAccountUC: bankAccountUC,
		DashboardUC:   dashboardUC,
		ExportUC:      exportUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
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
