package models

// RoutePoint is one vertex of a line's path polyline.
// Seq is a dense 1-based sequence unique per line; it defines the vertex
// order of the polyline, not merely the insertion order.
type RoutePoint struct {
	ID     uint    `gorm:"primaryKey" json:"-"`
	LineID uint    `gorm:"column:linea_id;not null;index;uniqueIndex:uix_recorrido_linea_orden" json:"-"`
	Lat    float64 `gorm:"not null" json:"lat"`
	Lng    float64 `gorm:"not null" json:"lng"`
	Seq    int     `gorm:"column:orden;not null;uniqueIndex:uix_recorrido_linea_orden" json:"orden"`
}

func (RoutePoint) TableName() string { return "recorrido_puntos" }
