// internal/models/syndicate.go
package models

import "time"

// Syndicate represents a transport cooperative ("sindicato") that
// owns and operates one or more lines.
type Syndicate struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"column:nombre;uniqueIndex;not null" json:"nombre" binding:"required,min=2"`
	CreatedAt time.Time `gorm:"column:fecha_creacion" json:"-"`

	Lines []Line `gorm:"foreignKey:SyndicateID" json:"lineas,omitempty"`
}

// TableName keeps the table of the existing schema.
func (Syndicate) TableName() string { return "sindicatos" }
