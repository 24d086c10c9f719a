package models

import "time"

// Line lifecycle states. The column is an open enum; only ACTIVO is
// ever written by the registry.
const (
	LineStatusActive = "ACTIVO"
)

// Line represents a registered transit line: a named service owned by a
// syndicate, with a fixed departure frequency, an ordered route polyline
// and an ordered list of stops.
type Line struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	SyndicateID uint      `gorm:"column:sindicato_id;index;not null" json:"sindicato_id"`
	Syndicate   Syndicate `gorm:"foreignKey:SyndicateID" json:"-"`

	Name         string  `gorm:"column:nombre;not null" json:"nombre"`
	Key          *string `gorm:"column:clave;uniqueIndex" json:"clave"`
	Number       *int    `gorm:"column:numero" json:"numero"`
	FrequencyMin int     `gorm:"column:frecuencia_min;not null" json:"frecuencia_min"`
	Status       string  `gorm:"column:estado;not null" json:"estado"`

	CreatedBy  string     `gorm:"column:usuario_creacion" json:"usuario_creacion"`
	CreatedAt  time.Time  `gorm:"column:fecha_creacion" json:"fecha_creacion"`
	ModifiedBy *string    `gorm:"column:usuario_modificacion" json:"usuario_modificacion,omitempty"`
	ModifiedAt *time.Time `gorm:"column:fecha_modificacion" json:"fecha_modificacion,omitempty"`

	// Associations. Geometry rows cascade with the line; audit rows do
	// not reference the line with a constraint so they outlive it.
	RoutePoints []RoutePoint `gorm:"foreignKey:LineID;constraint:OnDelete:CASCADE" json:"recorrido,omitempty"`
	Stops       []Stop       `gorm:"foreignKey:LineID;constraint:OnDelete:CASCADE" json:"paradas,omitempty"`
}

func (Line) TableName() string { return "lineas" }
