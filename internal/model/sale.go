package model

import "time"

// Sale is an immutable ledger row: quantity of a product sold at a captured
// unit price. Rows are only ever inserted, never updated or deleted.
type Sale struct {
	ID        int64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ProductID int64    `gorm:"column:producto_id;not null;index" json:"producto_id" validate:"required"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"producto,omitempty" validate:"-"`
	UserID    int64    `gorm:"column:usuario_id;not null;index" json:"usuario_id"`
	User      *User    `gorm:"foreignKey:UserID" json:"usuario,omitempty" validate:"-"`

	Quantity  int     `gorm:"column:cantidad;not null" json:"cantidad" validate:"required,gt=0"`
	UnitPrice float64 `gorm:"column:precio_unitario;not null" json:"precio_unitario"` // snapshot at sale time
	Total     float64 `gorm:"column:total;not null" json:"total"`                     // UnitPrice * Quantity

	// Folio is the printable receipt reference. Nullable so the column can be
	// added to a populated legacy store; rows written before the column exist
	// simply have none. SQLite keeps the unique index NULL-tolerant.
	Folio *string `gorm:"column:folio;size:36;uniqueIndex" json:"folio,omitempty"`

	SoldAt time.Time `gorm:"column:fecha_venta;autoCreateTime" json:"fecha_venta"`
}

func (Sale) TableName() string { return "ventas" }
