package services

import (
	"database/sql"
	"errors"
	"fmt"

	"stockroom/internal/apperrors"
	"stockroom/internal/domain"
	"stockroom/internal/repos"
	"stockroom/pkg/validator"
)

// RegistryService owns the SKU catalog. It never touches
// current_quantity directly; that column belongs to the ledger.
type RegistryService struct {
	Skus *repos.SKURepo
}

func NewRegistryService(skus *repos.SKURepo) *RegistryService {
	return &RegistryService{Skus: skus}
}

type CreateSKURequest struct {
	Name            string   `json:"name" validate:"required"`
	Category        string   `json:"category" validate:"required"`
	ReorderLevel    *int     `json:"reorder_level" validate:"omitempty,gte=0"`
	CurrentQuantity *int     `json:"current_quantity"`
	UnitPrice       *float64 `json:"unit_price" validate:"omitempty,gte=0"`
}

type UpdateSKURequest struct {
	Name         *string  `json:"name" validate:"omitempty,min=1"`
	Category     *string  `json:"category" validate:"omitempty,min=1"`
	ReorderLevel *int     `json:"reorder_level" validate:"omitempty,gte=0"`
	UnitPrice    *float64 `json:"unit_price" validate:"omitempty,gte=0"`
}

func validationError(errs []*validator.ErrorResponse) error {
	first := errs[0]
	return apperrors.ErrValidation(fmt.Sprintf("field '%s' failed on '%s'", first.FailedField, first.Tag))
}

func (s *RegistryService) Create(req CreateSKURequest) (domain.SKU, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return domain.SKU{}, validationError(errs)
	}

	reorder := 10
	if req.ReorderLevel != nil {
		reorder = *req.ReorderLevel
	}
	qty := 0
	if req.CurrentQuantity != nil {
		qty = *req.CurrentQuantity
	}
	price := 0.0
	if req.UnitPrice != nil {
		price = *req.UnitPrice
	}

	sku, err := s.Skus.Create(req.Name, req.Category, reorder, qty, price)
	if err != nil {
		return domain.SKU{}, apperrors.ErrStorage(err)
	}
	return sku, nil
}

func (s *RegistryService) Get(id int64) (domain.SKU, error) {
	sku, err := s.Skus.Get(id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.SKU{}, apperrors.ErrNotFound("SKU")
	}
	if err != nil {
		return domain.SKU{}, apperrors.ErrStorage(err)
	}
	return sku, nil
}

func (s *RegistryService) List(f repos.SKUFilter) ([]domain.SKU, error) {
	out, err := s.Skus.List(f)
	if err != nil {
		return nil, apperrors.ErrStorage(err)
	}
	return out, nil
}

func (s *RegistryService) Categories() ([]string, error) {
	out, err := s.Skus.Categories()
	if err != nil {
		return nil, apperrors.ErrStorage(err)
	}
	return out, nil
}

func (s *RegistryService) Update(id int64, req UpdateSKURequest) (domain.SKU, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return domain.SKU{}, validationError(errs)
	}
	patch := repos.SKUPatch{
		Name:         req.Name,
		Category:     req.Category,
		ReorderLevel: req.ReorderLevel,
		UnitPrice:    req.UnitPrice,
	}
	if patch.Empty() {
		return domain.SKU{}, apperrors.ErrValidation("no fields to update")
	}

	sku, err := s.Skus.Update(id, patch)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.SKU{}, apperrors.ErrNotFound("SKU")
	}
	if err != nil {
		return domain.SKU{}, apperrors.ErrStorage(err)
	}
	return sku, nil
}

// Delete refuses to remove a SKU the ledger still references; the
// transaction history is the audit trail and must stay intact.
func (s *RegistryService) Delete(id int64) error {
	n, err := s.Skus.TransactionCount(id)
	if err != nil {
		return apperrors.ErrStorage(err)
	}
	if n > 0 {
		return apperrors.ErrConflict("cannot delete SKU with transactions")
	}

	err = s.Skus.Delete(id)
	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.ErrNotFound("SKU")
	}
	if err != nil {
		return apperrors.ErrStorage(err)
	}
	return nil
}
