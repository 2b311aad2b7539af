package mapping

import (
	"github.com/finbooks/accounting_backend/internal/core/domain"
	"github.com/finbooks/accounting_backend/internal/models"
)

// ToModelReceipt converts a domain Receipt to a model Receipt
func ToModelReceipt(d domain.Receipt) models.Receipt {
	return models.Receipt{
		ReceiptID:   d.ReceiptID,
		Amount:      d.Amount,
		ReceivedAt:  d.ReceivedAt,
		State:       models.RecordState(d.State),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainReceipt converts a model Receipt to a domain Receipt
func ToDomainReceipt(m models.Receipt) domain.Receipt {
	return domain.Receipt{
		ReceiptID:   m.ReceiptID,
		Amount:      m.Amount,
		ReceivedAt:  m.ReceivedAt,
		State:       domain.RecordState(m.State),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelAllocation converts a domain ReceiptAllocation to a model ReceiptAllocation
func ToModelAllocation(d domain.ReceiptAllocation) models.ReceiptAllocation {
	return models.ReceiptAllocation{
		AllocationID: d.AllocationID,
		ReceiptID:    d.ReceiptID,
		InvoiceID:    d.InvoiceID,
		Amount:       d.Amount,
		State:        models.RecordState(d.State),
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAllocation converts a model ReceiptAllocation to a domain ReceiptAllocation
func ToDomainAllocation(m models.ReceiptAllocation) domain.ReceiptAllocation {
	return domain.ReceiptAllocation{
		AllocationID: m.AllocationID,
		ReceiptID:    m.ReceiptID,
		InvoiceID:    m.InvoiceID,
		Amount:       m.Amount,
		State:        domain.RecordState(m.State),
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelInvoice converts a domain Invoice to a model Invoice
func ToModelInvoice(d domain.Invoice) models.Invoice {
	return models.Invoice{
		InvoiceID:   d.InvoiceID,
		TotalAmount: d.TotalAmount,
		Status:      string(d.Status),
		IssuedAt:    d.IssuedAt,
		State:       models.RecordState(d.State),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainInvoice converts a model Invoice to a domain Invoice
func ToDomainInvoice(m models.Invoice) domain.Invoice {
	return domain.Invoice{
		InvoiceID:   m.InvoiceID,
		TotalAmount: m.TotalAmount,
		Status:      domain.InvoiceStatus(m.Status),
		IssuedAt:    m.IssuedAt,
		State:       domain.RecordState(m.State),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
