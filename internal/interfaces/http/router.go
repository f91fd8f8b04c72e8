package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/autotech/taller-api/internal/application/analytics"
	"github.com/autotech/taller-api/internal/application/billing"
	"github.com/autotech/taller-api/internal/application/usecase"
	"github.com/autotech/taller-api/internal/application/workshop"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ClientUC      *usecase.ClientUseCase
	VehicleUC     *usecase.VehicleUseCase
	EmployeeUC    *usecase.EmployeeUseCase
	CatalogUC     *usecase.CatalogUseCase
	RepairOrderUC *workshop.RepairOrderUseCase
	AppointmentUC *workshop.AppointmentUseCase
	InspectionUC  *workshop.InspectionUseCase
	EstimateUC    *billing.EstimateUseCase
	InvoiceUC     *billing.InvoiceUseCase
	PaymentUC     *billing.PaymentUseCase
	BankAccountUC *billing.BankAccountUseCase
	DashboardUC   *analytics.DashboardUseCase
	ExportUC      *analytics.ExportUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Clientes
	clients := api.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Patch("/:id/upgrade", clientHandler.Upgrade)
	clients.Delete("/:id", clientHandler.Delete)

	// Vehículos, marcas y tipos
	vehicleHandler := NewVehicleHandler(deps.VehicleUC)
	clients.Get("/:id/vehicles", vehicleHandler.ListByClient)
	vehicles := api.Group("/vehicles")
	vehicles.Post("/", vehicleHandler.Create)
	vehicles.Get("/", vehicleHandler.List)
	vehicles.Get("/:id", vehicleHandler.GetByID)
	vehicles.Put("/:id", vehicleHandler.Update)
	vehicles.Delete("/:id", vehicleHandler.Delete)
	vehicles.Get("/:id/work-history", vehicleHandler.WorkHistory)

	brands := api.Group("/brands")
	brands.Get("/", vehicleHandler.ListBrands)
	brands.Post("/", vehicleHandler.CreateBrand)
	brands.Delete("/:id", vehicleHandler.DeleteBrand)
	api.Get("/vehicle-types", vehicleHandler.ListVehicleTypes)

	// Empleados y roles
	employees := api.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/", employeeHandler.List)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", employeeHandler.Delete)
	api.Get("/roles", employeeHandler.ListRoles)

	// Catálogo: productos, servicios, trabajos predefinidos y etiquetas
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	products := api.Group("/products")
	products.Post("/", catalogHandler.CreateProduct)
	products.Get("/", catalogHandler.ListProducts)
	products.Put("/:id", catalogHandler.UpdateProduct)
	products.Delete("/:id", catalogHandler.DeleteProduct)

	services := api.Group("/services")
	services.Post("/", catalogHandler.CreateService)
	services.Get("/", catalogHandler.ListServices)
	services.Put("/:id", catalogHandler.UpdateService)
	services.Delete("/:id", catalogHandler.DeleteService)

	cannedJobs := api.Group("/canned-jobs")
	cannedJobs.Post("/", catalogHandler.CreateCannedJob)
	cannedJobs.Get("/", catalogHandler.ListCannedJobs)
	cannedJobs.Get("/:id", catalogHandler.GetCannedJob)
	cannedJobs.Delete("/:id", catalogHandler.DeleteCannedJob)

	tags := api.Group("/tags")
	tags.Get("/", catalogHandler.ListTags)
	tags.Post("/", catalogHandler.CreateTag)
	tags.Delete("/:id", catalogHandler.DeleteTag)

	// Órdenes de trabajo y tablero Kanban
	orders := api.Group("/repair-orders")
	orderHandler := NewRepairOrderHandler(deps.RepairOrderUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/board", orderHandler.Board)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Put("/:id", orderHandler.Update)
	orders.Patch("/:id/status", orderHandler.UpdateStatus)
	orders.Delete("/:id", orderHandler.Delete)

	// Calendario de citas
	appointmentHandler := NewAppointmentHandler(deps.AppointmentUC)
	clients.Get("/:id/appointments", appointmentHandler.ListByClient)
	appointments := api.Group("/appointments")
	appointments.Post("/", appointmentHandler.Create)
	appointments.Get("/", appointmentHandler.List)
	appointments.Get("/range", appointmentHandler.Range)
	appointments.Get("/:id", appointmentHandler.GetByID)
	appointments.Put("/:id", appointmentHandler.Update)
	appointments.Patch("/:id/client-arrived", appointmentHandler.ClientArrived)
	appointments.Patch("/:id/vehicle-arrived", appointmentHandler.VehicleArrived)
	appointments.Patch("/:id/vehicle-picked-up", appointmentHandler.VehiclePickedUp)
	appointments.Delete("/:id", appointmentHandler.Delete)
	api.Get("/calendar/config", appointmentHandler.GetCalendarConfig)
	api.Put("/calendar/config", appointmentHandler.SaveCalendarConfig)

	// Inspecciones de ingreso
	inspectionHandler := NewInspectionHandler(deps.InspectionUC)
	orders.Get("/:id/inspection", inspectionHandler.GetByRepairOrder)
	inspections := api.Group("/inspections")
	inspections.Post("/", inspectionHandler.Create)
	inspections.Put("/:id", inspectionHandler.Update)
	inspections.Delete("/:id", inspectionHandler.Delete)
	templates := api.Group("/inspection-templates")
	templates.Post("/", inspectionHandler.CreateTemplate)
	templates.Get("/", inspectionHandler.ListTemplates)
	templates.Get("/:id", inspectionHandler.GetTemplate)
	templates.Put("/:id", inspectionHandler.UpdateTemplate)
	templates.Post("/:id/duplicate", inspectionHandler.DuplicateTemplate)
	templates.Delete("/:id", inspectionHandler.DeleteTemplate)
	problems := api.Group("/common-problems")
	problems.Get("/", inspectionHandler.ListCommonProblems)
	problems.Post("/", inspectionHandler.CreateCommonProblem)
	problems.Delete("/:id", inspectionHandler.DeleteCommonProblem)

	// Presupuestos
	estimateHandler := NewEstimateHandler(deps.EstimateUC)
	orders.Get("/:id/estimate", estimateHandler.GetByRepairOrder)
	estimates := api.Group("/estimates")
	estimates.Post("/", estimateHandler.Create)
	estimates.Get("/", estimateHandler.List)
	estimates.Get("/:id", estimateHandler.GetByID)
	estimates.Put("/:id", estimateHandler.Update)
	estimates.Get("/:id/invoice-data", estimateHandler.InvoiceData)
	estimates.Post("/:id/approve", estimateHandler.Approve)
	estimates.Post("/:id/reject", estimateHandler.Reject)
	estimates.Delete("/:id", estimateHandler.Delete)

	// Facturas, pagos y auditoría
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC)
	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	orders.Get("/:id/invoice", invoiceHandler.GetByRepairOrder)
	invoices := api.Group("/invoices")
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Delete("/:id", invoiceHandler.Delete)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)
	invoices.Get("/:id/payments", paymentHandler.ListByInvoice)
	invoices.Get("/:id/payments/audit", paymentHandler.AuditTrail)

	payments := api.Group("/payments")
	payments.Post("/", paymentHandler.Create)
	payments.Put("/:id", paymentHandler.Update)
	payments.Delete("/:id", paymentHandler.Delete)

	// Cuentas bancarias y bancos
	bankAccountHandler := NewBankAccountHandler(deps.BankAccountUC)
	bankAccounts := api.Group("/bank-accounts")
	bankAccounts.Post("/", bankAccountHandler.Create)
	bankAccounts.Get("/", bankAccountHandler.List)
	bankAccounts.Patch("/:id/active", bankAccountHandler.SetActive)
	bankAccounts.Delete("/:id", bankAccountHandler.Delete)
	api.Get("/banks", bankAccountHandler.ListBanks)

	// Panel, reportes y exportaciones
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.ExportUC)
	dashboard := api.Group("/dashboard")
	dashboard.Get("/summary", dashboardHandler.Summary)
	dashboard.Get("/financiero", dashboardHandler.Financial)
	dashboard.Get("/productividad", dashboardHandler.Productivity)
	dashboard.Get("/config", dashboardHandler.GetConfig)
	dashboard.Put("/config", dashboardHandler.SaveConfig)

	exports := api.Group("/exports")
	exports.Get("/clients", dashboardHandler.ExportClients)
	exports.Get("/employees", dashboardHandler.ExportEmployees)
	exports.Get("/financiero", dashboardHandler.ExportFinancial)
	exports.Get("/productividad", dashboardHandler.ExportProductivity)
}
