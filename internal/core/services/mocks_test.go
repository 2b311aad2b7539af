package services_test

import (
	"context"
	"time"

	"github.com/finbooks/accounting_backend/internal/core/domain"
	portsrepo "github.com/finbooks/accounting_backend/internal/core/ports/repositories"
	portssvc "github.com/finbooks/accounting_backend/internal/core/ports/services"
	"github.com/stretchr/testify/mock"
)

// --- Mock SnapshotRepository ---

type MockSnapshotRepository struct {
	mock.Mock
}

var _ portsrepo.SnapshotRepositoryFacade = (*MockSnapshotRepository)(nil)

func (m *MockSnapshotRepository) SaveSnapshot(ctx context.Context, snapshot domain.ClosingBalanceSnapshot) error {
	args := m.Called(ctx, snapshot)
	return args.Error(0)
}

func (m *MockSnapshotRepository) FindSnapshotsInRange(ctx context.Context, categoryID string, from, to time.Time) ([]domain.ClosingBalanceSnapshot, error) {
	args := m.Called(ctx, categoryID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ClosingBalanceSnapshot), args.Error(1)
}

func (m *MockSnapshotRepository) FindSnapshotsAtOrAfter(ctx context.Context, categoryID string, ts time.Time) ([]domain.ClosingBalanceSnapshot, error) {
	args := m.Called(ctx, categoryID, ts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ClosingBalanceSnapshot), args.Error(1)
}

func (m *MockSnapshotRepository) FindSnapshotsAtOrBeforeDesc(ctx context.Context, categoryID string, ts time.Time) ([]domain.ClosingBalanceSnapshot, error) {
	args := m.Called(ctx, categoryID, ts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ClosingBalanceSnapshot), args.Error(1)
}

func (m *MockSnapshotRepository) FindFirstSnapshot(ctx context.Context, categoryID string) (*domain.ClosingBalanceSnapshot, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClosingBalanceSnapshot), args.Error(1)
}

func (m *MockSnapshotRepository) FindLastSnapshot(ctx context.Context, categoryID string) (*domain.ClosingBalanceSnapshot, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClosingBalanceSnapshot), args.Error(1)
}

// --- Mock ReceiptRepository ---

type MockReceiptRepository struct {
	mock.Mock
}

var _ portsrepo.ReceiptRepositoryFacade = (*MockReceiptRepository)(nil)

func (m *MockReceiptRepository) FindReceiptByID(ctx context.Context, receiptID string) (*domain.Receipt, error) {
	args := m.Called(ctx, receiptID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Receipt), args.Error(1)
}

func (m *MockReceiptRepository) UpdateReceipt(ctx context.Context, receipt domain.Receipt) error {
	args := m.Called(ctx, receipt)
	return args.Error(0)
}

// --- Mock AllocationRepository ---

type MockAllocationRepository struct {
	mock.Mock
}

var _ portsrepo.AllocationRepositoryFacade = (*MockAllocationRepository)(nil)

func (m *MockAllocationRepository) SaveAllocation(ctx context.Context, allocation domain.ReceiptAllocation) error {
	args := m.Called(ctx, allocation)
	return args.Error(0)
}

func (m *MockAllocationRepository) FindAllocationsByReceiptID(ctx context.Context, receiptID string) ([]domain.ReceiptAllocation, error) {
	args := m.Called(ctx, receiptID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReceiptAllocation), args.Error(1)
}

func (m *MockAllocationRepository) UpdateAllocation(ctx context.Context, allocation domain.ReceiptAllocation) error {
	args := m.Called(ctx, allocation)
	return args.Error(0)
}

// --- Mock InvoiceRepository ---

type MockInvoiceRepository struct {
	mock.Mock
}

var _ portsrepo.InvoiceRepositoryFacade = (*MockInvoiceRepository)(nil)

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

// --- Mock JournalRepository ---

type MockJournalRepository struct {
	mock.Mock
}

var _ portsrepo.JournalRepositoryFacade = (*MockJournalRepository)(nil)

func (m *MockJournalRepository) SaveJournal(ctx context.Context, journal domain.Journal, lineItems []domain.JournalLineItem) error {
	args := m.Called(ctx, journal, lineItems)
	return args.Error(0)
}

func (m *MockJournalRepository) FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	args := m.Called(ctx, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}

func (m *MockJournalRepository) FindLineItemsByJournalID(ctx context.Context, journalID string) ([]domain.JournalLineItem, error) {
	args := m.Called(ctx, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalLineItem), args.Error(1)
}

func (m *MockJournalRepository) FindActiveLineItemsByReference(ctx context.Context, refType domain.ReferenceType, refID string) ([]domain.JournalLineItem, error) {
	args := m.Called(ctx, refType, refID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalLineItem), args.Error(1)
}

func (m *MockJournalRepository) SoftDeleteJournals(ctx context.Context, journalIDs []string, deletedBy string, deletedAt time.Time) error {
	args := m.Called(ctx, journalIDs, deletedBy, deletedAt)
	return args.Error(0)
}

// --- Mock AggregationRepository ---

type MockAggregationRepository struct {
	mock.Mock
}

var _ portsrepo.AggregationRepositoryFacade = (*MockAggregationRepository)(nil)

func (m *MockAggregationRepository) AggregateCreditDebit(ctx context.Context, kind domain.ReportKind, from, to time.Time) ([]domain.AggregationRow, error) {
	args := m.Called(ctx, kind, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AggregationRow), args.Error(1)
}

// --- Mock CategoryRepository ---

type MockCategoryRepository struct {
	mock.Mock
}

var _ portsrepo.CategoryRepositoryFacade = (*MockCategoryRepository)(nil)

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.TransactionCategory, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionCategory), args.Error(1)
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context) ([]domain.TransactionCategory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TransactionCategory), args.Error(1)
}

// --- Mock PostingService ---

type MockPostingService struct {
	mock.Mock
}

var _ portssvc.PostingSvcFacade = (*MockPostingService)(nil)

func (m *MockPostingService) CreateJournalForDocument(ctx context.Context, req portssvc.CreateJournalRequest) (*domain.Journal, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}

func (m *MockPostingService) DeleteJournals(ctx context.Context, journalIDs []string, deletedBy string) error {
	args := m.Called(ctx, journalIDs, deletedBy)
	return args.Error(0)
}
