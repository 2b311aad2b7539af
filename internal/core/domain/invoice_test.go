package domain_test

import (
	"testing"

	"github.com/finbooks/accounting_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestInvoice_StatusAfterUnapplying(t *testing.T) {
	tests := []struct {
		name      string
		total     decimal.Decimal
		unapplied decimal.Decimal
		want      domain.InvoiceStatus
	}{
		{
			name:      "receipt fully covers invoice",
			total:     decimal.NewFromFloat(500.00),
			unapplied: decimal.NewFromFloat(500.00),
			want:      domain.InvoicePost,
		},
		{
			name:      "receipt covers part of invoice",
			total:     decimal.NewFromFloat(1000.00),
			unapplied: decimal.NewFromFloat(400.00),
			want:      domain.InvoicePartiallyPaid,
		},
		{
			name:      "exact decimal comparison, no epsilon",
			total:     decimal.RequireFromString("500.0000000001"),
			unapplied: decimal.NewFromFloat(500.00),
			want:      domain.InvoicePartiallyPaid,
		},
		{
			name:      "equal values with different exponents still settle",
			total:     decimal.RequireFromString("500.00"),
			unapplied: decimal.RequireFromString("500"),
			want:      domain.InvoicePost,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := domain.Invoice{TotalAmount: tt.total, Status: domain.InvoicePartiallyPaid}
			got := inv.StatusAfterUnapplying(tt.unapplied)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJournalLineItem_SignedAmount(t *testing.T) {
	amount := decimal.NewFromFloat(42.50)

	debit := domain.JournalLineItem{Amount: amount, LineType: domain.Debit}
	assert.True(t, debit.SignedAmount().Equal(amount))

	credit := domain.JournalLineItem{Amount: amount, LineType: domain.Credit}
	assert.True(t, credit.SignedAmount().Equal(amount.Neg()))
}
