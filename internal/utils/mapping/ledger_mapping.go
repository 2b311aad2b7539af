package mapping

import (
	"github.com/finbooks/accounting_backend/internal/core/domain"
	"github.com/finbooks/accounting_backend/internal/models"
)

// ToModelSnapshot converts a domain ClosingBalanceSnapshot to a model ClosingBalanceSnapshot
func ToModelSnapshot(d domain.ClosingBalanceSnapshot) models.ClosingBalanceSnapshot {
	return models.ClosingBalanceSnapshot{
		SnapshotID:  d.SnapshotID,
		CategoryID:  d.CategoryID,
		AsOf:        d.AsOf,
		Balance:     d.Balance,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSnapshot converts a model ClosingBalanceSnapshot to a domain ClosingBalanceSnapshot
func ToDomainSnapshot(m models.ClosingBalanceSnapshot) domain.ClosingBalanceSnapshot {
	return domain.ClosingBalanceSnapshot{
		SnapshotID:  m.SnapshotID,
		CategoryID:  m.CategoryID,
		AsOf:        m.AsOf,
		Balance:     m.Balance,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelJournal converts a domain Journal to a model Journal
func ToModelJournal(d domain.Journal) models.Journal {
	return models.Journal{
		JournalID:   d.JournalID,
		JournalDate: d.JournalDate,
		Description: d.Description,
		State:       models.RecordState(d.State),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournal converts a model Journal to a domain Journal
func ToDomainJournal(m models.Journal) domain.Journal {
	return domain.Journal{
		JournalID:   m.JournalID,
		JournalDate: m.JournalDate,
		Description: m.Description,
		State:       domain.RecordState(m.State),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelLineItem converts a domain JournalLineItem to a model JournalLineItem
func ToModelLineItem(d domain.JournalLineItem) models.JournalLineItem {
	return models.JournalLineItem{
		LineItemID:    d.LineItemID,
		JournalID:     d.JournalID,
		CategoryID:    d.CategoryID,
		Amount:        d.Amount,
		LineType:      string(d.LineType),
		ReferenceType: string(d.ReferenceType),
		ReferenceID:   d.ReferenceID,
		State:         models.RecordState(d.State),
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLineItem converts a model JournalLineItem to a domain JournalLineItem
func ToDomainLineItem(m models.JournalLineItem) domain.JournalLineItem {
	return domain.JournalLineItem{
		LineItemID:    m.LineItemID,
		JournalID:     m.JournalID,
		CategoryID:    m.CategoryID,
		Amount:        m.Amount,
		LineType:      domain.LineType(m.LineType),
		ReferenceType: domain.ReferenceType(m.ReferenceType),
		ReferenceID:   m.ReferenceID,
		State:         domain.RecordState(m.State),
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCategory converts a model TransactionCategory to a domain TransactionCategory
func ToDomainCategory(m models.TransactionCategory) domain.TransactionCategory {
	return domain.TransactionCategory{
		CategoryID:       m.CategoryID,
		Name:             m.Name,
		Code:             m.Code,
		ParentCategoryID: m.ParentCategoryID,
		AccountID:        m.AccountID,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}
