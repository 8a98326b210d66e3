package model

import "time"

// Product is a catalog item. Column and table names keep the original
// tlapaleria.db schema so the binary operates on an existing store file.
type Product struct {
	ID          int64   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"column:nombre;not null" json:"nombre" validate:"required"`
	Description *string `gorm:"column:descripcion" json:"descripcion,omitempty"`
	Barcode     *string `gorm:"column:codigo_barras;uniqueIndex" json:"codigo_barras,omitempty"`
	Price       float64 `gorm:"column:precio;not null" json:"precio" validate:"gte=0"`
	Stock       int     `gorm:"column:stock_actual;default:0" json:"stock_actual"`
	MinStock    int     `gorm:"column:stock_minimo;default:10" json:"stock_minimo"`
	Category    *string `gorm:"column:categoria" json:"categoria,omitempty"`
	Location    *string `gorm:"column:ubicacion" json:"ubicacion,omitempty"`
	Supplier    *string `gorm:"column:proveedor" json:"proveedor,omitempty"`

	CreatedAt time.Time `gorm:"column:fecha_creacion;autoCreateTime" json:"fecha_creacion"`
	UpdatedAt time.Time `gorm:"column:fecha_actualizacion;autoUpdateTime" json:"fecha_actualizacion"`

	Sales []Sale `gorm:"foreignKey:ProductID" json:"ventas,omitempty"`
}

func (Product) TableName() string { return "productos" }

// LowStock reports whether the product is at or below its minimum threshold.
func (p *Product) LowStock() bool { return p.Stock <= p.MinStock }
