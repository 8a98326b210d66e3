package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"tlapaleria/internal/model"
	"tlapaleria/internal/repository"
	"tlapaleria/pkg/validator"
)

// ConfirmFunc is asked before deleting a product that has recorded sales.
// Returning false aborts the deletion without touching any row.
type ConfirmFunc func(product *model.Product, salesCount int64) bool

type CatalogService interface {
	AddProduct(product *model.Product) error
	ListProducts(limit int) ([]model.Product, error)
	SearchProducts(term string) ([]model.Product, error)
	UpdateStock(id int64, newStock int) (*model.Product, error)
	ListLowStock() ([]model.Product, error)
	DeleteProduct(id int64, confirm ConfirmFunc) (*model.Product, bool, error)
}

type catalogService struct {
	productRepo repository.ProductRepository
	saleRepo    repository.SaleRepository
	db          *gorm.DB
}

func NewCatalogService(pRepo repository.ProductRepository, sRepo repository.SaleRepository, db *gorm.DB) CatalogService {
	return &catalogService{
		productRepo: pRepo,
		saleRepo:    sRepo,
		db:          db,
	}
}

func (s *catalogService) AddProduct(product *model.Product) error {
	if errs := validator.ValidateStruct(product); len(errs) > 0 {
		first := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", first.FailedField, first.Tag)
	}

	// Pre-check the barcode so the caller gets a classified error instead of
	// a raw unique-constraint failure. The unique index stays as the backstop.
	if product.Barcode != nil {
		existing, err := s.productRepo.FindByBarcode(*product.Barcode)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return storageErr("check barcode", err)
		}
		if existing != nil {
			return fmt.Errorf("%w: %s (product %d)", ErrDuplicateBarcode, *product.Barcode, existing.ID)
		}
	}

	if err := s.productRepo.Create(product); err != nil {
		return storageErr("create product", err)
	}
	return nil
}

func (s *catalogService) ListProducts(limit int) ([]model.Product, error) {
	if limit <= 0 {
		limit = 50
	}
	products, err := s.productRepo.List(limit)
	if err != nil {
		return nil, storageErr("list products", err)
	}
	return products, nil
}

func (s *catalogService) SearchProducts(term string) ([]model.Product, error) {
	products, err := s.productRepo.Search(term)
	if err != nil {
		return nil, storageErr("search products", err)
	}
	return products, nil
}

// UpdateStock is the administrative override: it sets the stock to the given
// value without a lower-bound check. A sale never goes through here.
func (s *catalogService) UpdateStock(id int64, newStock int) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrProductNotFound, id)
		}
		return nil, storageErr("find product", err)
	}

	if err := s.productRepo.SetStock(s.db, id, newStock); err != nil {
		return nil, storageErr("set stock", err)
	}

	product.Stock = newStock
	return product, nil
}

func (s *catalogService) ListLowStock() ([]model.Product, error) {
	products, err := s.productRepo.ListLowStock()
	if err != nil {
		return nil, storageErr("list low stock", err)
	}
	return products, nil
}

// DeleteProduct removes a product row and returns the product it acted on.
// When the product has recorded sales the confirm callback decides; declining
// returns (product, false, nil) and changes nothing. Sales rows are never
// touched: the ledger keeps its history even when the product row goes away.
func (s *catalogService) DeleteProduct(id int64, confirm ConfirmFunc) (*model.Product, bool, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, fmt.Errorf("%w: id %d", ErrProductNotFound, id)
		}
		return nil, false, storageErr("find product", err)
	}

	salesCount, err := s.saleRepo.CountByProduct(id)
	if err != nil {
		return nil, false, storageErr("count sales", err)
	}

	if salesCount > 0 {
		if confirm == nil || !confirm(product, salesCount) {
			return product, false, nil
		}
	}

	if err := s.productRepo.Delete(id); err != nil {
		return nil, false, storageErr("delete product", err)
	}
	return product, true, nil
}
