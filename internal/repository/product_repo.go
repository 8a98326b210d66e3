package repository

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"tlapaleria/internal/model"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindByID(id int64) (*model.Product, error)
	FindByBarcode(barcode string) (*model.Product, error)
	List(limit int) ([]model.Product, error)
	Search(term string) ([]model.Product, error)
	ListLowStock() ([]model.Product, error)
	SetStock(tx *gorm.DB, id int64, newStock int) error
	Delete(id int64) error
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) FindByID(id int64) (*model.Product, error) {
	var product model.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) FindByBarcode(barcode string) (*model.Product, error) {
	var product model.Product
	if err := r.db.First(&product, "codigo_barras = ?", barcode).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) List(limit int) ([]model.Product, error) {
	var products []model.Product
	err := r.db.Order("nombre ASC").Limit(limit).Find(&products).Error
	return products, errors.Wrap(err, "list products")
}

func (r *productRepo) Search(term string) ([]model.Product, error) {
	var products []model.Product
	pattern := "%" + term + "%"
	err := r.db.
		Where("nombre LIKE ? OR codigo_barras LIKE ? OR descripcion LIKE ?", pattern, pattern, pattern).
		Find(&products).Error
	return products, errors.Wrap(err, "search products")
}

func (r *productRepo) ListLowStock() ([]model.Product, error) {
	var products []model.Product
	err := r.db.
		Where("stock_actual <= stock_minimo").
		Order("stock_actual ASC").
		Find(&products).Error
	return products, errors.Wrap(err, "list low stock")
}

// SetStock takes the *gorm.DB handle so callers can run it inside a transaction.
// gorm refreshes fecha_actualizacion (autoUpdateTime) on the same UPDATE.
func (r *productRepo) SetStock(tx *gorm.DB, id int64, newStock int) error {
	err := tx.Model(&model.Product{}).
		Where("id = ?", id).
		Update("stock_actual", newStock).Error
	return errors.Wrap(err, "set stock")
}

func (r *productRepo) Delete(id int64) error {
	err := r.db.Delete(&model.Product{}, "id = ?", id).Error
	return errors.Wrap(err, "delete product")
}
