package models

// Stop is an ordered boarding point on a line. The name is optional;
// Seq follows the same dense 1-based ordering invariant as RoutePoint,
// numbered independently from it.
type Stop struct {
	ID     uint    `gorm:"primaryKey" json:"id"`
	LineID uint    `gorm:"column:linea_id;not null;index;uniqueIndex:uix_paradas_linea_orden" json:"-"`
	Name   *string `gorm:"column:nombre" json:"nombre"`
	Lat    float64 `gorm:"not null" json:"lat"`
	Lng    float64 `gorm:"not null" json:"lng"`
	Seq    int     `gorm:"column:orden;not null;uniqueIndex:uix_paradas_linea_orden" json:"orden"`
}

func (Stop) TableName() string { return "paradas" }
