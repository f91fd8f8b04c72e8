// Package excel genera planillas xlsx descargables para los reportes del taller.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/autotech/taller-api/internal/application/analytics"
	"github.com/autotech/taller-api/internal/domain/entity"
)

var _ analytics.ReportExporter = (*Exporter)(nil)

// Exporter implementación de ReportExporter sobre excelize.
type Exporter struct{}

func NewExporter() *Exporter {
	return &Exporter{}
}

func newSheet(name string, headers []string) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", name); err != nil {
		return nil, err
	}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(name, cell, h); err != nil {
			return nil, err
		}
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(name, "A1", last, style); err != nil {
		return nil, err
	}
	return f, nil
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}

func toBytes(f *excelize.File) ([]byte, error) {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("escribir planilla: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportClients padrón de clientes.
func (e *Exporter) ExportClients(clients []*entity.Client) ([]byte, error) {
	const sheet = "Clientes"
	f, err := newSheet(sheet, []string{
		"ID", "Nombre", "Apellido", "DNI", "Tipo", "Email", "Teléfono",
		"Dirección", "Provincia", "País", "Fecha de ingreso",
	})
	if err != nil {
		return nil, err
	}
	for i, c := range clients {
		entry := ""
		if c.EntryDate != nil {
			entry = c.EntryDate.Format("2006-01-02")
		}
		if err := writeRow(f, sheet, i+2, []any{
			c.ID, c.FirstName, c.LastName, c.DNI, c.ClientType, c.Email, c.Phone,
			c.Address, c.Province, c.Country, entry,
		}); err != nil {
			return nil, err
		}
	}
	return toBytes(f)
}

// ExportEmployees plantel de empleados con sus roles.
func (e *Exporter) ExportEmployees(employees []*entity.Employee) ([]byte, error) {
	const sheet = "Empleados"
	f, err := newSheet(sheet, []string{
		"ID", "Nombre", "Apellido", "DNI", "Email", "Teléfono", "Estado",
		"Roles", "Fecha de ingreso",
	})
	if err != nil {
		return nil, err
	}
	for i, emp := range employees {
		roles := ""
		for j, r := range emp.Roles {
			if j > 0 {
				roles += ", "
			}
			roles += r.Name
		}
		entry := ""
		if emp.EntryDate != nil {
			entry = emp.EntryDate.Format("2006-01-02")
		}
		if err := writeRow(f, sheet, i+2, []any{
			emp.ID, emp.FirstName, emp.LastName, emp.DNI, emp.Email, emp.Phone,
			emp.Status, roles, entry,
		}); err != nil {
			return nil, err
		}
	}
	return toBytes(f)
}

// ExportFinancial reporte financiero: resumen, deuda por antigüedad y
// recaudación por medio de pago.
func (e *Exporter) ExportFinancial(report *entity.FinancialReport) ([]byte, error) {
	const sheet = "Financiero"
	f, err := newSheet(sheet, []string{"Concepto", "Valor"})
	if err != nil {
		return nil, err
	}
	rows := [][]any{
		{"Desde", report.From.Format("2006-01-02")},
		{"Hasta", report.To.Format("2006-01-02")},
		{"Facturado", report.Invoiced.InexactFloat64()},
		{"Cobrado", report.Collected.InexactFloat64()},
		{"Por cobrar", report.Outstanding.InexactFloat64()},
		{"Presupuestos emitidos", report.EstimatesIssued},
		{"Presupuestos aceptados", report.EstimatesAccepted},
		{"Tasa de conversión (%)", report.ConversionRate.InexactFloat64()},
	}
	row := 2
	for _, r := range rows {
		if err := writeRow(f, sheet, row, r); err != nil {
			return nil, err
		}
		row++
	}

	row++
	if err := writeRow(f, sheet, row, []any{"Deuda por antigüedad", "Facturas", "Monto"}); err != nil {
		return nil, err
	}
	row++
	for _, b := range report.DebtAging {
		if err := writeRow(f, sheet, row, []any{b.Label, b.Count, b.Amount.InexactFloat64()}); err != nil {
			return nil, err
		}
		row++
	}

	row++
	if err := writeRow(f, sheet, row, []any{"Medio de pago", "Monto"}); err != nil {
		return nil, err
	}
	row++
	for method, amount := range report.RevenueByMethod {
		if err := writeRow(f, sheet, row, []any{method, amount.InexactFloat64()}); err != nil {
			return nil, err
		}
		row++
	}
	return toBytes(f)
}

// ExportProductivity reporte de productividad por empleado.
func (e *Exporter) ExportProductivity(report *entity.ProductivityReport) ([]byte, error) {
	const sheet = "Productividad"
	f, err := newSheet(sheet, []string{
		"Empleado", "Órdenes asignadas", "Órdenes entregadas", "Participación (%)",
	})
	if err != nil {
		return nil, err
	}
	for i, emp := range report.Employees {
		if err := writeRow(f, sheet, i+2, []any{
			emp.EmployeeName, emp.OrdersAssigned, emp.OrdersDelivered,
			emp.RevenueShare.InexactFloat64(),
		}); err != nil {
			return nil, err
		}
	}
	return toBytes(f)
}
