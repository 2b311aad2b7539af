package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/finbooks/accounting_backend/internal/apperrors"
	"github.com/finbooks/accounting_backend/internal/core/domain"
	portssvc "github.com/finbooks/accounting_backend/internal/core/ports/services"
	"github.com/finbooks/accounting_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReconciliationServiceTestSuite struct {
	suite.Suite
	receiptRepo    *MockReceiptRepository
	allocationRepo *MockAllocationRepository
	invoiceRepo    *MockInvoiceRepository
	journalRepo    *MockJournalRepository
	postingSvc     *MockPostingService
	service        portssvc.ReconciliationSvcFacade
	ctx            context.Context
}

func (s *ReconciliationServiceTestSuite) SetupTest() {
	s.receiptRepo = new(MockReceiptRepository)
	s.allocationRepo = new(MockAllocationRepository)
	s.invoiceRepo = new(MockInvoiceRepository)
	s.journalRepo = new(MockJournalRepository)
	s.postingSvc = new(MockPostingService)
	s.service = services.NewReconciliationService(
		s.receiptRepo,
		s.allocationRepo,
		s.invoiceRepo,
		s.journalRepo,
		s.postingSvc,
	)
	s.ctx = context.Background()
}

func (s *ReconciliationServiceTestSuite) assertAllExpectations() {
	s.receiptRepo.AssertExpectations(s.T())
	s.allocationRepo.AssertExpectations(s.T())
	s.invoiceRepo.AssertExpectations(s.T())
	s.journalRepo.AssertExpectations(s.T())
	s.postingSvc.AssertExpectations(s.T())
}

func (s *ReconciliationServiceTestSuite) activeReceipt(id string, amount string) *domain.Receipt {
	return &domain.Receipt{
		ReceiptID: id,
		Amount:    decimal.RequireFromString(amount),
		State:     domain.Active,
	}
}

func (s *ReconciliationServiceTestSuite) TestDeleteReceipts_NilInputIsNoOp() {
	err := s.service.DeleteReceipts(s.ctx, nil, "user-1")

	s.NoError(err)
	s.receiptRepo.AssertNotCalled(s.T(), "FindReceiptByID", mock.Anything, mock.Anything)
	s.receiptRepo.AssertNotCalled(s.T(), "UpdateReceipt", mock.Anything, mock.Anything)
}

func (s *ReconciliationServiceTestSuite) TestDeleteReceipts_EmptyInputIsNoOp() {
	err := s.service.DeleteReceipts(s.ctx, []string{}, "user-1")

	s.NoError(err)
	s.receiptRepo.AssertNotCalled(s.T(), "FindReceiptByID", mock.Anything, mock.Anything)
	s.receiptRepo.AssertNotCalled(s.T(), "UpdateReceipt", mock.Anything, mock.Anything)
}

func (s *ReconciliationServiceTestSuite) TestDeleteReceipts_UnknownReceiptSkippedSilently() {
	s.receiptRepo.On("FindReceiptByID", mock.Anything, "r-missing").Return(nil, apperrors.ErrNotFound)

	err := s.service.DeleteReceipts(s.ctx, []string{"r-missing"}, "user-1")

	s.NoError(err)
	s.receiptRepo.AssertNotCalled(s.T(), "UpdateReceipt", mock.Anything, mock.Anything)
	s.allocationRepo.AssertNotCalled(s.T(), "FindAllocationsByReceiptID", mock.Anything, mock.Anything)
	s.assertAllExpectations()
}

func (s *ReconciliationServiceTestSuite) TestDeleteReceipts_AlreadyDeletedReceiptIsNoOp() {
	deleted := &domain.Receipt{
		ReceiptID: "r-dead",
		Amount:    decimal.RequireFromString("300.00"),
		State:     domain.Deleted,
	}
	s.receiptRepo.On("FindReceiptByID", mock.Anything, "r-dead").Return(deleted, nil)

	err := s.service.DeleteReceipts(s.ctx, []string{"r-dead"}, "user-1")

	s.NoError(err)
	s.receiptRepo.AssertNotCalled(s.T(), "UpdateReceipt", mock.Anything, mock.Anything)
	s.allocationRepo.AssertNotCalled(s.T(), "FindAllocationsByReceiptID", mock.Anything, mock.Anything)
	s.journalRepo.AssertNotCalled(s.T(), "FindActiveLineItemsByReference", mock.Anything, mock.Anything, mock.Anything)
	s.postingSvc.AssertNotCalled(s.T(), "DeleteJournals", mock.Anything, mock.Anything, mock.Anything)
	s.assertAllExpectations()
}

func (s *ReconciliationServiceTestSuite) TestDeleteReceipts_FullSettlementMarksInvoicePost() {
	// Receipt of 500.00 fully covering an invoice total of 500.00.
	receipt := s.activeReceipt("r-1", "500.00")
	allocation := domain.ReceiptAllocation{
		AllocationID: "al-1",
		ReceiptID:    "r-1",
		InvoiceID:    "inv-1",
		Amount:       receipt.Amount,
		State:        domain.Active,
	}
	invoice := &domain.Invoice{
		InvoiceID:   "inv-1",
		TotalAmount: decimal.RequireFromString("500.00"),
		Status:      domain.InvoicePartiallyPaid,
		State:       domain.Active,
	}

	s.receiptRepo.On("FindReceiptByID", mock.Anything, "r-1").Return(receipt, nil)
	s.allocationRepo.On("FindAllocationsByReceiptID", mock.Anything, "r-1").
		Return([]domain.ReceiptAllocation{allocation}, nil)
	s.allocationRepo.On("UpdateAllocation", mock.Anything, mock.MatchedBy(func(a domain.ReceiptAllocation) bool {
		return a.AllocationID == "al-1" && a.State == domain.Deleted
	})).Return(nil)
	s.invoiceRepo.On("FindInvoiceByID", mock.Anything, "inv-1").Return(invoice, nil)
	s.invoiceRepo.On("UpdateInvoice", mock.Anything, mock.MatchedBy(func(inv domain.Invoice) bool {
		return inv.InvoiceID == "inv-1" && inv.Status == domain.InvoicePost
	})).Return(nil)
	s.journalRepo.On("FindActiveLineItemsByReference", mock.Anything, domain.RefReceipt, "r-1").
		Return([]domain.JournalLineItem{}, nil)
	s.receiptRepo.On("UpdateReceipt", mock.Anything, mock.MatchedBy(func(r domain.Receipt) bool {
		return r.ReceiptID == "r-1" && r.State == domain.Deleted
	})).Return(nil)

	err := s.service.DeleteReceipts(s.ctx, []string{"r-1"}, "user-1")

	s.NoError(err)
	s.assertAllExpectations()
}

func (s *ReconciliationServiceTestSuite) TestDeleteReceipts_PartialSettlementMarksInvoicePartiallyPaid() {
	// Receipt of 400.00 against an invoice total of 1000.00.
	receipt := s.activeReceipt("r-2", "400.00")
	allocation := domain.ReceiptAllocation{
		AllocationID: "al-2",
		ReceiptID:    "r-2",
		InvoiceID:    "inv-2",
		Amount:       receipt.Amount,
		State:        domain.Active,
	}
	invoice := &domain.Invoice{
		InvoiceID:   "inv-2",
		TotalAmount: decimal.RequireFromString("1000.00"),
		Status:      domain.InvoicePost,
		State:       domain.Active,
	}

	s.receiptRepo.On("FindReceiptByID", mock.Anything, "r-2").Return(receipt, nil)
	s.allocationRepo.On("FindAllocationsByReceiptID", mock.Anything, "r-2").
		Return([]domain.ReceiptAllocation{allocation}, nil)
	s.allocationRepo.On("UpdateAllocation", mock.Anything, mock.Anything).Return(nil)
	s.invoiceRepo.On("FindInvoiceByID", mock.Anything, "inv-2").Return(invoice, nil)
	s.invoiceRepo.On("UpdateInvoice", mock.Anything, mock.MatchedBy(func(inv domain.Invoice) bool {
		return inv.Status == domain.InvoicePartiallyPaid
	})).Return(nil)
	s.journalRepo.On("FindActiveLineItemsByReference", mock.Anything, domain.RefReceipt, "r-2").
		Return([]domain.JournalLineItem{}, nil)
	s.receiptRepo.On("UpdateReceipt", mock.Anything, mock.Anything).Return(nil)

	err := s.service.DeleteReceipts(s.ctx, []string{"r-2"}, "user-1")

	s.NoError(err)
	s.assertAllExpectations()
}

func (s *ReconciliationServiceTestSuite) TestDeleteReceipts_EachAllocationEvaluatedIndependently() {
	// One receipt split across two invoices: the status rule runs once per
	// allocation record, not once per invoice batch.
	receipt := s.activeReceipt("r-3", "300.00")
	allocations := []domain.ReceiptAllocation{
		{AllocationID: "al-3a", ReceiptID: "r-3", InvoiceID: "inv-3a", Amount: receipt.Amount, State: domain.Active},
		{AllocationID: "al-3b", ReceiptID: "r-3", InvoiceID: "inv-3b", Amount: receipt.Amount, State: domain.Active},
	}
	fullyCovered := &domain.Invoice{
		InvoiceID:   "inv-3a",
		TotalAmount: decimal.RequireFromString("300.00"),
		Status:      domain.InvoicePartiallyPaid,
	}
	partlyCovered := &domain.Invoice{
		InvoiceID:   "inv-3b",
		TotalAmount: decimal.RequireFromString("750.00"),
		Status:      domain.InvoicePost,
	}

	s.receiptRepo.On("FindReceiptByID", mock.Anything, "r-3").Return(receipt, nil)
	s.allocationRepo.On("FindAllocationsByReceiptID", mock.Anything, "r-3").Return(allocations, nil)
	s.allocationRepo.On("UpdateAllocation", mock.Anything, mock.Anything).Return(nil).Times(2)
	s.invoiceRepo.On("FindInvoiceByID", mock.Anything, "inv-3a").Return(fullyCovered, nil)
	s.invoiceRepo.On("FindInvoiceByID", mock.Anything, "inv-3b").Return(partlyCovered, nil)
	s.invoiceRepo.On("UpdateInvoice", mock.Anything, mock.MatchedBy(func(inv domain.Invoice) bool {
		return inv.InvoiceID == "inv-3a" && inv.Status == domain.InvoicePost
	})).Return(nil)
	s.invoiceRepo.On("UpdateInvoice", mock.Anything, mock.MatchedBy(func(inv domain.Invoice) bool {
		return inv.InvoiceID == "inv-3b" && inv.Status == domain.InvoicePartiallyPaid
	})).Return(nil)
	s.journalRepo.On("FindActiveLineItemsByReference", mock.Anything, domain.RefReceipt, "r-3").
		Return([]domain.JournalLineItem{}, nil)
	s.receiptRepo.On("UpdateReceipt", mock.Anything, mock.Anything).Return(nil)

	err := s.service.DeleteReceipts(s.ctx, []string{"r-3"}, "user-1")

	s.NoError(err)
	s.assertAllExpectations()
}

func (s *ReconciliationServiceTestSuite) TestDeleteReceipts_JournalCascadeCalledOnlyWhenLineItemsExist() {
	receipt := s.activeReceipt("r-4", "120.00")
	lineItems := []domain.JournalLineItem{
		{LineItemID: "li-1", JournalID: "j-1", ReferenceType: domain.RefReceipt, ReferenceID: "r-4", State: domain.Active},
		{LineItemID: "li-2", JournalID: "j-1", ReferenceType: domain.RefReceipt, ReferenceID: "r-4", State: domain.Active},
		{LineItemID: "li-3", JournalID: "j-2", ReferenceType: domain.RefReceipt, ReferenceID: "r-4", State: domain.Active},
	}

	s.receiptRepo.On("FindReceiptByID", mock.Anything, "r-4").Return(receipt, nil)
	s.allocationRepo.On("FindAllocationsByReceiptID", mock.Anything, "r-4").
		Return([]domain.ReceiptAllocation{}, nil)
	s.journalRepo.On("FindActiveLineItemsByReference", mock.Anything, domain.RefReceipt, "r-4").
		Return(lineItems, nil)
	// Distinct parent journal ids, in first-seen order.
	s.postingSvc.On("DeleteJournals", mock.Anything, []string{"j-1", "j-2"}, "user-1").Return(nil)
	s.receiptRepo.On("UpdateReceipt", mock.Anything, mock.Anything).Return(nil)

	err := s.service.DeleteReceipts(s.ctx, []string{"r-4"}, "user-1")

	s.NoError(err)
	s.assertAllExpectations()
}

func (s *ReconciliationServiceTestSuite) TestDeleteReceipts_GatewayNotCalledWithoutLineItems() {
	receipt := s.activeReceipt("r-5", "80.00")

	s.receiptRepo.On("FindReceiptByID", mock.Anything, "r-5").Return(receipt, nil)
	s.allocationRepo.On("FindAllocationsByReceiptID", mock.Anything, "r-5").
		Return([]domain.ReceiptAllocation{}, nil)
	s.journalRepo.On("FindActiveLineItemsByReference", mock.Anything, domain.RefReceipt, "r-5").
		Return([]domain.JournalLineItem{}, nil)
	s.receiptRepo.On("UpdateReceipt", mock.Anything, mock.Anything).Return(nil)

	err := s.service.DeleteReceipts(s.ctx, []string{"r-5"}, "user-1")

	s.NoError(err)
	s.postingSvc.AssertNotCalled(s.T(), "DeleteJournals", mock.Anything, mock.Anything, mock.Anything)
	s.assertAllExpectations()
}

func (s *ReconciliationServiceTestSuite) TestDeleteReceipts_BatchContinuesPastMissingID() {
	// r-b is unknown; r-a and r-c must still be processed.
	receiptA := s.activeReceipt("r-a", "10.00")
	receiptC := s.activeReceipt("r-c", "20.00")

	for _, r := range []*domain.Receipt{receiptA, receiptC} {
		s.receiptRepo.On("FindReceiptByID", mock.Anything, r.ReceiptID).Return(r, nil)
		s.allocationRepo.On("FindAllocationsByReceiptID", mock.Anything, r.ReceiptID).
			Return([]domain.ReceiptAllocation{}, nil)
		s.journalRepo.On("FindActiveLineItemsByReference", mock.Anything, domain.RefReceipt, r.ReceiptID).
			Return([]domain.JournalLineItem{}, nil)
	}
	s.receiptRepo.On("FindReceiptByID", mock.Anything, "r-b").Return(nil, apperrors.ErrNotFound)
	s.receiptRepo.On("UpdateReceipt", mock.Anything, mock.MatchedBy(func(r domain.Receipt) bool {
		return r.State == domain.Deleted && (r.ReceiptID == "r-a" || r.ReceiptID == "r-c")
	})).Return(nil).Times(2)

	err := s.service.DeleteReceipts(s.ctx, []string{"r-a", "r-b", "r-c"}, "user-1")

	s.NoError(err)
	s.assertAllExpectations()
}

func (s *ReconciliationServiceTestSuite) TestDeleteReceipts_StoreFailurePropagates() {
	receipt := s.activeReceipt("r-6", "60.00")
	allocation := domain.ReceiptAllocation{
		AllocationID: "al-6", ReceiptID: "r-6", InvoiceID: "inv-6", Amount: receipt.Amount, State: domain.Active,
	}
	storeErr := errors.New("connection reset")

	s.receiptRepo.On("FindReceiptByID", mock.Anything, "r-6").Return(receipt, nil)
	s.allocationRepo.On("FindAllocationsByReceiptID", mock.Anything, "r-6").
		Return([]domain.ReceiptAllocation{allocation}, nil)
	s.allocationRepo.On("UpdateAllocation", mock.Anything, mock.Anything).Return(nil)
	s.invoiceRepo.On("FindInvoiceByID", mock.Anything, "inv-6").Return(nil, storeErr)

	err := s.service.DeleteReceipts(s.ctx, []string{"r-6"}, "user-1")

	s.Error(err)
	s.ErrorIs(err, storeErr)
	s.receiptRepo.AssertNotCalled(s.T(), "UpdateReceipt", mock.Anything, mock.Anything)
}

func TestReconciliationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReconciliationServiceTestSuite))
}

func TestNewReconciliationService(t *testing.T) {
	svc := services.NewReconciliationService(
		new(MockReceiptRepository),
		new(MockAllocationRepository),
		new(MockInvoiceRepository),
		new(MockJournalRepository),
		new(MockPostingService),
	)
	assert.NotNil(t, svc)
}
