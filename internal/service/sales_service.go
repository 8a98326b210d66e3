package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tlapaleria/internal/model"
	"tlapaleria/internal/repository"
)

type SalesService interface {
	RegisterSale(productID int64, quantity int, userID int64) (*model.Sale, error)
}

type salesService struct {
	productRepo repository.ProductRepository
	saleRepo    repository.SaleRepository
	db          *gorm.DB
}

func NewSalesService(pRepo repository.ProductRepository, sRepo repository.SaleRepository, db *gorm.DB) SalesService {
	return &salesService{
		productRepo: pRepo,
		saleRepo:    sRepo,
		db:          db,
	}
}

// RegisterSale inserts the sale row and decrements the product's stock as one
// atomic unit. The stock check runs inside the transaction, after the product
// read, so a concurrent writer cannot slip a second sale past the same stock.
// Any error returned from the closure rolls the whole unit back.
func (s *salesService) RegisterSale(productID int64, quantity int, userID int64) (*model.Sale, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("validation failed: quantity must be positive, got %d", quantity)
	}
	if userID == 0 {
		userID = model.DefaultUserID
	}

	var sale *model.Sale
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var product model.Product
		if err := tx.First(&product, "id = ?", productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: id %d", ErrProductNotFound, productID)
			}
			return storageErr("find product", err)
		}

		if quantity > product.Stock {
			return fmt.Errorf("%w: available %d, requested %d", ErrInsufficientStock, product.Stock, quantity)
		}

		// Price captured now; later price changes never touch this row.
		folio := uuid.NewString()
		sale = &model.Sale{
			ProductID: product.ID,
			UserID:    userID,
			Quantity:  quantity,
			UnitPrice: product.Price,
			Total:     product.Price * float64(quantity),
			Folio:     &folio,
		}

		if err := s.saleRepo.Create(tx, sale); err != nil {
			return storageErr("insert sale", err)
		}
		if err := s.productRepo.SetStock(tx, product.ID, product.Stock-quantity); err != nil {
			return storageErr("decrement stock", err)
		}

		product.Stock -= quantity
		sale.Product = &product
		return nil
	})
	if err != nil {
		return nil, err
	}

	return sale, nil
}
