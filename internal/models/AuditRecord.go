package models

import "time"

// Audit actions, one per registry write.
const (
	AuditActionCreate = "CREAR"
	AuditActionUpdate = "MODIFICAR"
	AuditActionDelete = "ELIMINAR"
)

// AuditRecord is an append-only log entry of a line mutation. LineID is
// a plain column without a foreign-key constraint: DELETE records must
// survive the line they describe.
type AuditRecord struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	LineID    uint      `gorm:"column:linea_id;index;not null" json:"linea_id"`
	Action    string    `gorm:"column:accion;not null" json:"accion"`
	Payload   string    `gorm:"column:datos;type:text" json:"datos"`
	Actor     string    `gorm:"column:usuario;not null" json:"usuario"`
	CreatedAt time.Time `gorm:"column:fecha" json:"fecha"`
}

func (AuditRecord) TableName() string { return "auditoria_lineas" }
