package interfaces

import (
	"context"
	"time"

	"pesquisa_precos/internal/domain/entities"
)

// IQuotationRepository abstracts DynamoDB persistence for Quotation.
//
// Finalize must be conditional on the quotation still being open so that two
// concurrent finalize calls cannot both succeed; a lost condition returns the
// zero Quotation, mirroring the not-found convention used across repositories.

type IQuotationRepository interface {
	Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error)
	GetByID(ctx context.Context, id string) (entities.Quotation, error)
	UpdateStatus(ctx context.Context, id string, status entities.QuotationStatus) (entities.Quotation, error)
	Finalize(ctx context.Context, id string, justification string, at time.Time) (entities.Quotation, error)
	Delete(ctx context.Context, id string) error
}
