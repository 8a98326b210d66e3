package service_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"tlapaleria/internal/model"
	"tlapaleria/internal/repository"
	"tlapaleria/internal/service"
)

// brokenStockRepo delegates everything to the real repository but fails the
// stock decrement, simulating a storage fault after the sale row was written.
type brokenStockRepo struct {
	repository.ProductRepository
	err error
}

func (r brokenStockRepo) SetStock(tx *gorm.DB, id int64, newStock int) error {
	return r.err
}

func TestRegisterSale(t *testing.T) {
	catalog, sales, db := setupCatalog(t)

	p := seedProduct(t, catalog, model.Product{
		Name:     "Martillo de carpintero",
		Price:    250.50,
		Stock:    20,
		MinStock: 10,
	})

	sale, err := sales.RegisterSale(p.ID, 5, 0)
	require.NoError(t, err)
	require.NotNil(t, sale)

	assert.Equal(t, 5, sale.Quantity)
	assert.InDelta(t, 250.50, sale.UnitPrice, 0.001)
	assert.InDelta(t, 1252.50, sale.Total, 0.001)
	assert.Equal(t, model.DefaultUserID, sale.UserID)
	require.NotNil(t, sale.Folio)
	assert.NotEmpty(t, *sale.Folio)
	require.NotNil(t, sale.Product)
	assert.Equal(t, 15, sale.Product.Stock)

	var stored model.Product
	require.NoError(t, db.First(&stored, "id = ?", p.ID).Error)
	assert.Equal(t, 15, stored.Stock)

	var saleCount int64
	require.NoError(t, db.Model(&model.Sale{}).Count(&saleCount).Error)
	assert.Equal(t, int64(1), saleCount)
}

func TestRegisterSaleInsufficientStock(t *testing.T) {
	catalog, sales, db := setupCatalog(t)

	p := seedProduct(t, catalog, model.Product{Name: "Pintura blanca 1L", Price: 180, Stock: 8, MinStock: 10})

	_, err := sales.RegisterSale(p.ID, 10, 0)
	require.ErrorIs(t, err, service.ErrInsufficientStock)
	assert.Contains(t, err.Error(), "available 8")
	assert.Contains(t, err.Error(), "requested 10")

	// No trace: stock unchanged, zero sale rows.
	var stored model.Product
	require.NoError(t, db.First(&stored, "id = ?", p.ID).Error)
	assert.Equal(t, 8, stored.Stock)

	var saleCount int64
	require.NoError(t, db.Model(&model.Sale{}).Count(&saleCount).Error)
	assert.Equal(t, int64(0), saleCount)
}

func TestRegisterSaleExactStock(t *testing.T) {
	catalog, sales, db := setupCatalog(t)

	p := seedProduct(t, catalog, model.Product{Name: "Brocha", Price: 65, Stock: 12})

	sale, err := sales.RegisterSale(p.ID, 12, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, sale.Product.Stock)

	var stored model.Product
	require.NoError(t, db.First(&stored, "id = ?", p.ID).Error)
	assert.Equal(t, 0, stored.Stock, "selling the whole stock leaves exactly zero")
}

func TestRegisterSaleProductNotFound(t *testing.T) {
	_, sales, db := setupCatalog(t)

	_, err := sales.RegisterSale(9999, 1, 0)
	require.ErrorIs(t, err, service.ErrProductNotFound)

	var saleCount int64
	require.NoError(t, db.Model(&model.Sale{}).Count(&saleCount).Error)
	assert.Equal(t, int64(0), saleCount)
}

func TestRegisterSaleInvalidQuantity(t *testing.T) {
	catalog, sales, db := setupCatalog(t)

	p := seedProduct(t, catalog, model.Product{Name: "Clavos", Price: 45.5, Stock: 30})

	for _, qty := range []int{0, -3} {
		_, err := sales.RegisterSale(p.ID, qty, 0)
		require.Error(t, err)
	}

	var saleCount int64
	require.NoError(t, db.Model(&model.Sale{}).Count(&saleCount).Error)
	assert.Equal(t, int64(0), saleCount)
}

func TestRegisterSalePriceSnapshot(t *testing.T) {
	catalog, sales, db := setupCatalog(t)

	p := seedProduct(t, catalog, model.Product{Name: "Cinta metrica 5m", Price: 95, Stock: 10})

	sale, err := sales.RegisterSale(p.ID, 2, 0)
	require.NoError(t, err)

	// A later price change must never retroactively alter the recorded sale.
	require.NoError(t, db.Model(&model.Product{}).Where("id = ?", p.ID).Update("precio", 120.0).Error)

	var stored model.Sale
	require.NoError(t, db.First(&stored, "id = ?", sale.ID).Error)
	assert.InDelta(t, 95.0, stored.UnitPrice, 0.001)
	assert.InDelta(t, 190.0, stored.Total, 0.001)
}

func TestRegisterSaleAttributedUser(t *testing.T) {
	catalog, sales, db := setupCatalog(t)

	require.NoError(t, db.Create(&model.User{
		ID:    2,
		Email: "vendedor@tlapaleria.local",
		Name:  "Vendedor",
		Role:  model.RoleWorker,
	}).Error)

	p := seedProduct(t, catalog, model.Product{Name: "Sierra", Price: 145, Stock: 8})

	sale, err := sales.RegisterSale(p.ID, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), sale.UserID)
}

func TestRegisterSaleStorageFailureRollsBack(t *testing.T) {
	catalog, _, db := setupCatalog(t)

	p := seedProduct(t, catalog, model.Product{Name: "Lija", Price: 28, Stock: 5})

	// The stock decrement fails after the sale insert succeeded inside the
	// same transaction; the whole unit must roll back.
	productRepo := brokenStockRepo{
		ProductRepository: repository.NewProductRepo(db),
		err:               errors.New("disk I/O error"),
	}
	sales := service.NewSalesService(productRepo, repository.NewSaleRepo(db), db)

	_, err := sales.RegisterSale(p.ID, 2, 0)
	require.ErrorIs(t, err, service.ErrStorage)

	var stored model.Product
	require.NoError(t, db.First(&stored, "id = ?", p.ID).Error)
	assert.Equal(t, 5, stored.Stock, "stock must be exactly as before the attempt")

	var saleCount int64
	require.NoError(t, db.Model(&model.Sale{}).Count(&saleCount).Error)
	assert.Equal(t, int64(0), saleCount, "no sale row survives the rollback")
}

func TestRegisterSaleOnLegacyStore(t *testing.T) {
	db := setupLegacyDB(t)

	productRepo := repository.NewProductRepo(db)
	saleRepo := repository.NewSaleRepo(db)
	sales := service.NewSalesService(productRepo, saleRepo, db)

	// The pre-existing sale row has no folio.
	legacy, err := saleRepo.FindByID(1)
	require.NoError(t, err)
	assert.Nil(t, legacy.Folio)

	// New sales against the migrated store work and carry one.
	sale, err := sales.RegisterSale(1, 2, 0)
	require.NoError(t, err)
	require.NotNil(t, sale.Folio)

	var stored model.Product
	require.NoError(t, db.First(&stored, "id = ?", 1).Error)
	assert.Equal(t, 18, stored.Stock)
}

func TestRegisterSaleSequence(t *testing.T) {
	catalog, sales, db := setupCatalog(t)

	p := seedProduct(t, catalog, model.Product{Name: "Tornillos", Price: 38, Stock: 25})

	for i := 0; i < 3; i++ {
		_, err := sales.RegisterSale(p.ID, 5, 0)
		require.NoError(t, err)
	}

	var stored model.Product
	require.NoError(t, db.First(&stored, "id = ?", p.ID).Error)
	assert.Equal(t, 10, stored.Stock)

	var saleCount int64
	require.NoError(t, db.Model(&model.Sale{}).Count(&saleCount).Error)
	assert.Equal(t, int64(3), saleCount)

	// Stock never goes below zero even when the next request would.
	_, err := sales.RegisterSale(p.ID, 11, 0)
	require.ErrorIs(t, err, service.ErrInsufficientStock)
	require.NoError(t, db.First(&stored, "id = ?", p.ID).Error)
	assert.GreaterOrEqual(t, stored.Stock, 0)
	assert.Equal(t, 10, stored.Stock)
}
