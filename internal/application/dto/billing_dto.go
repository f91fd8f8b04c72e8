package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/autotech/taller-api/internal/domain/billing"
	"github.com/autotech/taller-api/internal/domain/entity"
)

// BillingItemDTO línea de presupuesto o factura.
type BillingItemDTO struct {
	Description string          `json:"description" validate:"required"`
	Quantity    int             `json:"quantity" validate:"min=1"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	IsService   bool            `json:"isService"`
}

// CreateEstimateRequest entrada para crear un presupuesto. La orden de
// trabajo es opcional; cliente y vehículo son obligatorios.
type CreateEstimateRequest struct {
	ClientID        int64            `json:"clientId" validate:"required"`
	VehicleID       int64            `json:"vehicleId" validate:"required"`
	RepairOrderID   *int64           `json:"repairOrderId"`
	Items           []BillingItemDTO `json:"items" validate:"required,min=1"`
	DiscountPercent decimal.Decimal  `json:"discountPercent"`
	TaxPercent      decimal.Decimal  `json:"taxPercent"`
	Observations    string           `json:"observations"`
	ReportedIssues  string           `json:"reportedIssues"`
}

// UpdateEstimateRequest entrada para editar un presupuesto pendiente.
type UpdateEstimateRequest struct {
	Items           []BillingItemDTO `json:"items"`
	DiscountPercent *decimal.Decimal `json:"discountPercent"`
	TaxPercent      *decimal.Decimal `json:"taxPercent"`
	Observations    *string          `json:"observations"`
	ReportedIssues  *string          `json:"reportedIssues"`
}

// EstimateResponse salida de un presupuesto con su desglose monetario.
type EstimateResponse struct {
	ID              int64            `json:"id"`
	ClientID        int64            `json:"clientId"`
	VehicleID       int64            `json:"vehicleId"`
	RepairOrderID   *int64           `json:"repairOrderId,omitempty"`
	ClientName      string           `json:"clientName,omitempty"`
	Plate           string           `json:"plate,omitempty"`
	Status          string           `json:"status"`
	Items           []BillingItemDTO `json:"items"`
	Subtotal        decimal.Decimal  `json:"subtotal"`
	DiscountPercent decimal.Decimal  `json:"discountPercent"`
	DiscountAmount  decimal.Decimal  `json:"discountAmount"`
	TaxPercent      decimal.Decimal  `json:"taxPercent"`
	TaxAmount       decimal.Decimal  `json:"taxAmount"`
	Total           decimal.Decimal  `json:"total"`
	Observations    string           `json:"observations,omitempty"`
	ReportedIssues  string           `json:"reportedIssues,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

// NewEstimateResponse proyecta la entidad calculando el desglose.
func NewEstimateResponse(e *entity.Estimate) EstimateResponse {
	items := make([]BillingItemDTO, 0, len(e.Items))
	for _, it := range e.Items {
		items = append(items, BillingItemDTO{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			IsService:   it.IsService,
		})
	}
	totals := billing.ComputeTotal(e.Subtotal(), e.DiscountPercent, e.TaxPercent)
	resp := EstimateResponse{
		ID:              e.ID,
		ClientID:        e.ClientID,
		VehicleID:       e.VehicleID,
		RepairOrderID:   e.RepairOrderID,
		Status:          e.Status,
		Items:           items,
		Subtotal:        totals.Subtotal,
		DiscountPercent: e.DiscountPercent,
		DiscountAmount:  totals.DiscountAmount,
		TaxPercent:      e.TaxPercent,
		TaxAmount:       totals.TaxAmount,
		Total:           totals.Total,
		Observations:    e.Observations,
		ReportedIssues:  e.ReportedIssues,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
	if e.Client != nil {
		resp.ClientName = e.Client.FullName()
	}
	if e.Vehicle != nil {
		resp.Plate = e.Vehicle.Plate
	}
	return resp
}

// EstimateInvoiceDataResponse datos de facturación precargados desde un
// presupuesto aceptado.
type EstimateInvoiceDataResponse struct {
	ClientID        int64            `json:"clientId"`
	RepairOrderID   *int64           `json:"repairOrderId,omitempty"`
	EstimateID      int64            `json:"estimateId"`
	Items           []BillingItemDTO `json:"items"`
	DiscountPercent decimal.Decimal  `json:"discountPercent"`
	TaxPercent      decimal.Decimal  `json:"taxPercent"`
	Total           decimal.Decimal  `json:"total"`
}

// NewEstimateResponses proyecta una lista de presupuestos.
func NewEstimateResponses(estimates []*entity.Estimate) []EstimateResponse {
	out := make([]EstimateResponse, 0, len(estimates))
	for _, e := range estimates {
		out = append(out, NewEstimateResponse(e))
	}
	return out
}

// CreateInvoiceRequest entrada para emitir una factura, manual o desde un
// presupuesto aceptado.
type CreateInvoiceRequest struct {
	ClientID        int64            `json:"clientId" validate:"required"`
	RepairOrderID   *int64           `json:"repairOrderId"`
	EstimateID      *int64           `json:"estimateId"`
	Items           []BillingItemDTO `json:"items"`
	DiscountPercent decimal.Decimal  `json:"discountPercent"`
	TaxPercent      decimal.Decimal  `json:"taxPercent"`
	DueDate         *time.Time       `json:"dueDate"`
	Notes           string           `json:"notes"`
}

// InvoiceResponse salida de una factura con su estado de cobro.
type InvoiceResponse struct {
	ID              int64            `json:"id"`
	Number          string           `json:"number"`
	ClientID        int64            `json:"clientId"`
	ClientName      string           `json:"clientName,omitempty"`
	RepairOrderID   *int64           `json:"repairOrderId,omitempty"`
	EstimateID      *int64           `json:"estimateId,omitempty"`
	Status          string           `json:"status"`
	Items           []BillingItemDTO `json:"items"`
	Subtotal        decimal.Decimal  `json:"subtotal"`
	DiscountPercent decimal.Decimal  `json:"discountPercent"`
	DiscountAmount  decimal.Decimal  `json:"discountAmount"`
	TaxPercent      decimal.Decimal  `json:"taxPercent"`
	TaxAmount       decimal.Decimal  `json:"taxAmount"`
	Total           decimal.Decimal  `json:"total"`
	PaidAmount      decimal.Decimal  `json:"paidAmount"`
	Remaining       decimal.Decimal  `json:"remaining"`
	IssuedAt        time.Time        `json:"issuedAt"`
	DueDate         *time.Time       `json:"dueDate,omitempty"`
	Notes           string           `json:"notes,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

// NewInvoiceResponse proyecta la entidad al DTO de salida.
func NewInvoiceResponse(v *entity.Invoice) InvoiceResponse {
	items := make([]BillingItemDTO, 0, len(v.Items))
	for _, it := range v.Items {
		items = append(items, BillingItemDTO{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			IsService:   it.IsService,
		})
	}
	return InvoiceResponse{
		ID:              v.ID,
		Number:          v.Number,
		ClientID:        v.ClientID,
		ClientName:      v.Client.FullName(),
		RepairOrderID:   v.RepairOrderID,
		EstimateID:      v.EstimateID,
		Status:          v.Status,
		Items:           items,
		Subtotal:        v.Subtotal,
		DiscountPercent: v.DiscountPercent,
		DiscountAmount:  v.DiscountAmount,
		TaxPercent:      v.TaxPercent,
		TaxAmount:       v.TaxAmount,
		Total:           v.Total,
		PaidAmount:      v.PaidAmount,
		Remaining:       v.Remaining(),
		IssuedAt:        v.IssuedAt,
		DueDate:         v.DueDate,
		Notes:           v.Notes,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

// NewInvoiceResponses proyecta una lista de facturas.
func NewInvoiceResponses(invoices []*entity.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(invoices))
	for _, v := range invoices {
		out = append(out, NewInvoiceResponse(v))
	}
	return out
}

// CreatePaymentRequest entrada para registrar un pago sobre una factura.
type CreatePaymentRequest struct {
	InvoiceID              int64           `json:"invoiceId" validate:"required"`
	Amount                 decimal.Decimal `json:"amount"`
	PayerName              string          `json:"payerName"`
	PaymentType            string          `json:"paymentType" validate:"required"`
	BankAccountID          *int64          `json:"bankAccountId"`
	RegisteredByEmployeeID *int64          `json:"registeredByEmployeeId"`
	PaidAt                 *time.Time      `json:"paidAt"`
}

// UpdatePaymentRequest entrada para corregir un pago registrado.
type UpdatePaymentRequest struct {
	Amount                 *decimal.Decimal `json:"amount"`
	PayerName              *string          `json:"payerName"`
	PaymentType            *string          `json:"paymentType"`
	BankAccountID          *int64           `json:"bankAccountId"`
	RegisteredByEmployeeID *int64           `json:"registeredByEmployeeId"`
	PaidAt                 *time.Time       `json:"paidAt"`
}

// PaymentResponse salida de un pago.
type PaymentResponse struct {
	ID                     int64           `json:"id"`
	InvoiceID              int64           `json:"invoiceId"`
	Amount                 decimal.Decimal `json:"amount"`
	PayerName              string          `json:"payerName,omitempty"`
	PaymentType            string          `json:"paymentType"`
	BankAccountID          *int64          `json:"bankAccountId,omitempty"`
	RegisteredByEmployeeID *int64          `json:"registeredByEmployeeId,omitempty"`
	PaidAt                 time.Time       `json:"paidAt"`
	CreatedAt              time.Time       `json:"createdAt"`
}

// NewPaymentResponse proyecta la entidad al DTO de salida.
func NewPaymentResponse(p *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                     p.ID,
		InvoiceID:              p.InvoiceID,
		Amount:                 p.Amount,
		PayerName:              p.PayerName,
		PaymentType:            p.PaymentType,
		BankAccountID:          p.BankAccountID,
		RegisteredByEmployeeID: p.RegisteredByEmployeeID,
		PaidAt:                 p.PaidAt,
		CreatedAt:              p.CreatedAt,
	}
}

// NewPaymentResponses proyecta una lista de pagos.
func NewPaymentResponses(payments []*entity.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, NewPaymentResponse(p))
	}
	return out
}

// CreateBankAccountRequest entrada para registrar una cuenta bancaria.
type CreateBankAccountRequest struct {
	BankID        int64  `json:"bankId" validate:"required"`
	AccountNumber string `json:"accountNumber" validate:"required"`
	AccountType   string `json:"accountType"`
	HolderName    string `json:"holderName" validate:"required"`
	Alias         string `json:"alias"`
}

// BankAccountResponse salida de una cuenta bancaria.
type BankAccountResponse struct {
	ID            int64  `json:"id"`
	BankID        int64  `json:"bankId"`
	BankName      string `json:"bankName,omitempty"`
	AccountNumber string `json:"accountNumber"`
	AccountType   string `json:"accountType,omitempty"`
	HolderName    string `json:"holderName"`
	Alias         string `json:"alias,omitempty"`
	Active        bool   `json:"active"`
}

// NewBankAccountResponse proyecta la entidad al DTO de salida.
func NewBankAccountResponse(a *entity.BankAccount) BankAccountResponse {
	resp := BankAccountResponse{
		ID:            a.ID,
		BankID:        a.BankID,
		AccountNumber: a.AccountNumber,
		AccountType:   a.AccountType,
		HolderName:    a.HolderName,
		Alias:         a.Alias,
		Active:        a.Active,
	}
	if a.Bank != nil {
		resp.BankName = a.Bank.Name
	}
	return resp
}
