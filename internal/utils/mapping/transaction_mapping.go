package mapping

import (
	"github.com/vinayak20130/dino-ventures-assignment/internal/core/domain"
	"github.com/vinayak20130/dino-ventures-assignment/internal/models"
)

// ToModelTransaction converts a domain MonetaryTransaction to its model form.
func ToModelTransaction(d domain.MonetaryTransaction) models.MonetaryTransaction {
	return models.MonetaryTransaction{
		TransactionID:       d.TransactionID,
		IdempotencyKey:      d.IdempotencyKey,
		Type:                models.TransactionType(d.Type),
		Status:              models.TransactionStatus(d.Status),
		SourceWalletID:      d.SourceWalletID,
		DestinationWalletID: d.DestinationWalletID,
		Amount:              d.Amount,
		ReferenceID:         d.ReferenceID,
		Metadata:            d.Metadata,
		ErrorMessage:        d.ErrorMessage,
		AuditFields:         ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model MonetaryTransaction to its domain form.
func ToDomainTransaction(m models.MonetaryTransaction) domain.MonetaryTransaction {
	return domain.MonetaryTransaction{
		TransactionID:       m.TransactionID,
		IdempotencyKey:      m.IdempotencyKey,
		Type:                domain.TransactionType(m.Type),
		Status:              domain.TransactionStatus(m.Status),
		SourceWalletID:      m.SourceWalletID,
		DestinationWalletID: m.DestinationWalletID,
		Amount:              m.Amount,
		ReferenceID:         m.ReferenceID,
		Metadata:            m.Metadata,
		ErrorMessage:        m.ErrorMessage,
		AuditFields:         ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts a slice of model transactions.
func ToDomainTransactionSlice(ms []models.MonetaryTransaction) []domain.MonetaryTransaction {
	ds := make([]domain.MonetaryTransaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
