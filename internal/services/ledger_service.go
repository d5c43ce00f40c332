package services

import (
	"database/sql"
	"errors"

	"stockroom/internal/apperrors"
	"stockroom/internal/domain"
	applog "stockroom/internal/log"
	"stockroom/internal/repos"
	"stockroom/pkg/validator"
)

// LedgerService records stock movements. A movement and the SKU quantity
// fold it implies are one atomic unit; there is no partial application.
type LedgerService struct {
	Skus *repos.SKURepo
	Txs  *repos.TransactionRepo
}

func NewLedgerService(skus *repos.SKURepo, txs *repos.TransactionRepo) *LedgerService {
	return &LedgerService{Skus: skus, Txs: txs}
}

type RecordRequest struct {
	SKUID           int64                  `json:"sku_id" validate:"required"`
	TransactionType domain.TransactionType `json:"transaction_type" validate:"required,oneof=PURCHASE SALE DAMAGE RETURN"`
	Quantity        int                    `json:"quantity" validate:"required,gt=0"`
	Reason          string                 `json:"reason"`
	Notes           string                 `json:"notes"`
}

func (s *LedgerService) Record(req RecordRequest) (domain.RecordedTransaction, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return domain.RecordedTransaction{}, validationError(errs)
	}

	// All validation happens before any write.
	if _, err := s.Skus.Get(req.SKUID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.RecordedTransaction{}, apperrors.ErrNotFound("SKU")
		}
		return domain.RecordedTransaction{}, apperrors.ErrStorage(err)
	}

	rec, err := s.Txs.Record(req.SKUID, req.TransactionType, req.Quantity, req.Reason, req.Notes)
	if err != nil {
		return domain.RecordedTransaction{}, apperrors.ErrStorage(err)
	}

	// Stock going negative is allowed (backorders); warn, don't reject.
	if rec.NewQuantity < 0 {
		applog.Warn(nil, "ledger.negative_stock", map[string]any{
			"sku_id":       req.SKUID,
			"new_quantity": rec.NewQuantity,
			"type":         string(req.TransactionType),
		})
	}

	return rec, nil
}

func (s *LedgerService) List(f repos.TxFilter) ([]domain.TransactionRow, error) {
	if f.Type != "" && !f.Type.Valid() {
		return nil, apperrors.ErrValidation("invalid transaction type")
	}
	out, err := s.Txs.List(f)
	if err != nil {
		return nil, apperrors.ErrStorage(err)
	}
	return out, nil
}
