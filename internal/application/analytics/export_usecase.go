package analytics

import (
	"github.com/autotech/taller-api/internal/domain/entity"
	"github.com/autotech/taller-api/internal/domain/repository"
	"github.com/autotech/taller-api/internal/domain/schedule"
)

// ReportExporter genera planillas descargables a partir de los reportes.
type ReportExporter interface {
	ExportClients(clients []*entity.Client) ([]byte, error)
	ExportEmployees(employees []*entity.Employee) ([]byte, error)
	ExportFinancial(report *entity.FinancialReport) ([]byte, error)
	ExportProductivity(report *entity.ProductivityReport) ([]byte, error)
}

// ExportUseCase descarga de reportes en formato planilla.
type ExportUseCase struct {
	dashboard *DashboardUseCase
	clients   repository.ClientRepository
	employees repository.EmployeeRepository
	exporter  ReportExporter
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(
	dashboard *DashboardUseCase,
	clients repository.ClientRepository,
	employees repository.EmployeeRepository,
	exporter ReportExporter,
) *ExportUseCase {
	return &ExportUseCase{dashboard: dashboard, clients: clients, employees: employees, exporter: exporter}
}

// Clients exporta el padrón completo de clientes.
func (uc *ExportUseCase) Clients() ([]byte, error) {
	clients, _, err := uc.clients.List(repository.ClientFilter{Limit: 10000})
	if err != nil {
		return nil, err
	}
	return uc.exporter.ExportClients(clients)
}

// Employees exporta el plantel completo de empleados.
func (uc *ExportUseCase) Employees() ([]byte, error) {
	employees, _, err := uc.employees.List(repository.EmployeeFilter{Limit: 10000})
	if err != nil {
		return nil, err
	}
	return uc.exporter.ExportEmployees(employees)
}

// Financial exporta el reporte financiero del rango.
func (uc *ExportUseCase) Financial(r schedule.Range) ([]byte, error) {
	report, err := uc.dashboard.Financial(r)
	if err != nil {
		return nil, err
	}
	return uc.exporter.ExportFinancial(report)
}

// Productivity exporta el reporte de productividad del rango.
func (uc *ExportUseCase) Productivity(r schedule.Range) ([]byte, error) {
	report, err := uc.dashboard.Productivity(r)
	if err != nil {
		return nil, err
	}
	return uc.exporter.ExportProductivity(report)
}
