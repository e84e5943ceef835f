package dto

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/vinayak20130/dino-ventures-assignment/internal/apperrors"
)

const maxIdempotencyKeyLength = 255

// maxAmountFractionalDigits matches the NUMERIC(18,4) column scale.
const maxAmountFractionalDigits = 4

// MovementRequest is the payload for the top-up, bonus and purchase endpoints.
// The idempotency key arrives via the Idempotency-Key header and is attached
// by the handler before the request reaches the service.
type MovementRequest struct {
	UserID        string            `json:"userID" binding:"required"`
	AssetTypeCode string            `json:"assetTypeCode" binding:"required"`
	Amount        decimal.Decimal   `json:"amount" binding:"required"`
	ReferenceID   *string           `json:"referenceID,omitempty"`
	Metadata      map[string]string `json:"metadata,omitempty"`

	IdempotencyKey string `json:"-"`
}

// Validate applies the request contract checks the core assumes already done:
// strictly positive amount with at most four fractional digits, and a
// non-empty idempotency key of bounded length.
func (r *MovementRequest) Validate() error {
	if r.IdempotencyKey == "" {
		return fmt.Errorf("%w: idempotency key is required", apperrors.ErrValidation)
	}
	if len(r.IdempotencyKey) > maxIdempotencyKeyLength {
		return fmt.Errorf("%w: idempotency key must be at most %d characters", apperrors.ErrValidation, maxIdempotencyKeyLength)
	}
	if r.Amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: amount must be strictly positive", apperrors.ErrValidation)
	}
	if r.Amount.Exponent() < -maxAmountFractionalDigits {
		return fmt.Errorf("%w: amount supports at most %d fractional digits", apperrors.ErrValidation, maxAmountFractionalDigits)
	}
	return nil
}
