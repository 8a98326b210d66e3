package model

import "time"

// Role codes as stored in the rol column.
const (
	RoleWorker = "trabajador"
	RoleAdmin  = "admin"
)

// DefaultUserID is the system user sales are attributed to when the caller
// does not name one. Seeded by cmd/initdb.
const DefaultUserID int64 = 1

// User exists for sale attribution only; no authorization logic reads it.
type User struct {
	ID       int64   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	GoogleID *string `gorm:"column:google_id;uniqueIndex" json:"google_id,omitempty"`
	Email    string  `gorm:"column:email;uniqueIndex;not null" json:"email" validate:"required,email"`
	Name     string  `gorm:"column:nombre;not null" json:"nombre" validate:"required"`
	Photo    *string `gorm:"column:foto" json:"foto,omitempty"`
	Role     string  `gorm:"column:rol;default:trabajador" json:"rol"`

	CreatedAt time.Time `gorm:"column:fecha_creacion;autoCreateTime" json:"fecha_creacion"`
}

func (User) TableName() string { return "usuarios" }
