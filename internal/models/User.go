package models

import "time"

// User roles recognised by the write guard.
const (
	RoleAdmin  = "ADMIN"
	RoleEditor = "EDITOR"
	RoleViewer = "USUARIO"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"column:password_hash;not null" json:"-"`
	Role         string    `gorm:"not null" json:"role"` // "ADMIN", "EDITOR", "USUARIO"
	Status       string    `gorm:"column:estado;default:ACTIVO" json:"estado"`
	CreatedAt    time.Time `gorm:"column:fecha_creacion" json:"-"`
}

func (User) TableName() string { return "usuarios" }
