package repository

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"tlapaleria/internal/model"
)

type SaleRepository interface {
	Create(tx *gorm.DB, sale *model.Sale) error
	FindByID(id int64) (*model.Sale, error)
	CountByProduct(productID int64) (int64, error)
	GetSummaryStats() (*SummaryStats, error)
}

// SummaryStats is the estadisticas report payload.
type SummaryStats struct {
	TotalProducts  int64       `json:"total_productos"`
	InventoryValue float64     `json:"valor_inventario"`
	LowStockCount  int64       `json:"productos_stock_bajo"`
	TotalSales     int64       `json:"total_ventas"`
	SalesRevenue   float64     `json:"monto_ventas"`
	BestSeller     *BestSeller `json:"mas_vendido,omitempty"`
}

// BestSeller is the product with the highest summed sale quantity. Ties are
// broken by ascending product id (first row under that order).
type BestSeller struct {
	ProductID int64  `json:"producto_id"`
	Name      string `json:"nombre"`
	UnitsSold int64  `json:"unidades_vendidas"`
}

type saleRepo struct {
	db *gorm.DB
}

func NewSaleRepo(db *gorm.DB) SaleRepository {
	return &saleRepo{db}
}

// Create takes the *gorm.DB handle so the insert joins the caller's transaction.
func (r *saleRepo) Create(tx *gorm.DB, sale *model.Sale) error {
	return tx.Create(sale).Error
}

func (r *saleRepo) FindByID(id int64) (*model.Sale, error) {
	var sale model.Sale
	if err := r.db.Preload("Product").Preload("User").First(&sale, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &sale, nil
}

func (r *saleRepo) CountByProduct(productID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Sale{}).Where("producto_id = ?", productID).Count(&count).Error
	return count, errors.Wrap(err, "count sales by product")
}

func (r *saleRepo) GetSummaryStats() (*SummaryStats, error) {
	var stats SummaryStats

	if err := r.db.Model(&model.Product{}).Count(&stats.TotalProducts).Error; err != nil {
		return nil, errors.Wrap(err, "count products")
	}

	err := r.db.Model(&model.Product{}).
		Select("COALESCE(SUM(precio * stock_actual), 0)").
		Scan(&stats.InventoryValue).Error
	if err != nil {
		return nil, errors.Wrap(err, "inventory value")
	}

	err = r.db.Model(&model.Product{}).
		Where("stock_actual <= stock_minimo").
		Count(&stats.LowStockCount).Error
	if err != nil {
		return nil, errors.Wrap(err, "low stock count")
	}

	if err := r.db.Model(&model.Sale{}).Count(&stats.TotalSales).Error; err != nil {
		return nil, errors.Wrap(err, "count sales")
	}

	err = r.db.Model(&model.Sale{}).
		Select("COALESCE(SUM(total), 0)").
		Scan(&stats.SalesRevenue).Error
	if err != nil {
		return nil, errors.Wrap(err, "sales revenue")
	}

	var best BestSeller
	err = r.db.Raw(`
		SELECT p.id AS product_id, p.nombre AS name, SUM(v.cantidad) AS units_sold
		FROM ventas v
		JOIN productos p ON p.id = v.producto_id
		GROUP BY v.producto_id
		ORDER BY units_sold DESC, p.id ASC
		LIMIT 1
	`).Scan(&best).Error
	if err != nil {
		return nil, errors.Wrap(err, "best seller")
	}
	if best.ProductID != 0 {
		stats.BestSeller = &best
	}

	return &stats, nil
}
